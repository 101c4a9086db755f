package truck

type CreateTruckRequest struct {
	UnitNumber string `json:"unit_number" binding:"required"`
	VIN        string `json:"vin"`
	Plate      string `json:"plate"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
}

type UpdateTruckRequest struct {
	UnitNumber string `json:"unit_number"`
	VIN        string `json:"vin"`
	Plate      string `json:"plate"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Status     string `json:"status" binding:"omitempty,oneof=active maintenance retired"`
}

type TruckResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	UnitNumber string `json:"unit_number"`
	VIN        string `json:"vin,omitempty"`
	Plate      string `json:"plate,omitempty"`
	Make       string `json:"make,omitempty"`
	Model      string `json:"model,omitempty"`
	Year       int    `json:"year,omitempty"`
	Status     string `json:"status"`
}
