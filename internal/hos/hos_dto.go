package hos

type StartDutyRequest struct {
	DriverID string  `json:"driver_id" binding:"required,uuid"`
	Notes    *string `json:"notes"`
}

type EndDutyRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
}

type DutyLogResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	DriverID       string  `json:"driver_id"`
	DutyDate       string  `json:"duty_date"`
	StartedAt      string  `json:"started_at"`
	EndedAt        *string `json:"ended_at,omitempty"`
	HoursUsed      float64 `json:"hours_used"`
	HoursRemaining float64 `json:"hours_remaining"`
}
