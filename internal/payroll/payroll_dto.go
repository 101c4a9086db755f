package payroll

type CreateRunRequest struct {
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type PaystubResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	GrossPay   string `json:"gross_pay"`
	Deductions string `json:"deductions"`
	NetPay     string `json:"net_pay"`
	YTDGross   string `json:"ytd_gross"`
	YTDNet     string `json:"ytd_net"`
}

type RunResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
	TotalGross      string  `json:"total_gross"`
	TotalDeductions string  `json:"total_deductions"`
	TotalNet        string  `json:"total_net"`
	Status          string  `json:"status"`
	CreatedBy       string  `json:"created_by"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	PaidAt          *string `json:"paid_at,omitempty"`

	Paystubs []PaystubResponse `json:"paystubs,omitempty"`
}
