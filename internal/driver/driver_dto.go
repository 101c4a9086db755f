package driver

type CreateDriverRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	LicenseNumber string `json:"license_number" binding:"required"`
	LicenseClass  string `json:"license_class"`
	LicenseExpiry string `json:"license_expiry"`
	PayRate       string `json:"pay_rate"`
	PayType       string `json:"pay_type" binding:"omitempty,oneof=per_mile percentage hourly flat"`
}

type UpdateDriverRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	LicenseNumber string `json:"license_number"`
	LicenseClass  string `json:"license_class"`
	LicenseExpiry string `json:"license_expiry"`
	PayRate       string `json:"pay_rate"`
	PayType       string `json:"pay_type" binding:"omitempty,oneof=per_mile percentage hourly flat"`
}

type SetDriverStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available assigned driving off_duty inactive"`
}

type DriverResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	LicenseNumber  string  `json:"license_number"`
	LicenseClass   string  `json:"license_class,omitempty"`
	LicenseExpiry  *string `json:"license_expiry,omitempty"`
	PayRate        string  `json:"pay_rate"`
	PayType        string  `json:"pay_type"`
	Status         string  `json:"status"`
	HoursRemaining float64 `json:"hours_remaining"`
}
