package recurring

import "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

type CreateTemplateRequest struct {
	CustomerName string      `json:"customer_name" binding:"required"`
	Description  string      `json:"description"`
	Amount       money.Money `json:"amount"`
	Frequency    string      `json:"frequency" binding:"required,oneof=weekly biweekly monthly quarterly yearly"`
	PaymentTerms string      `json:"payment_terms"`
	StartDate    string      `json:"start_date" binding:"required"`
	EndDate      string      `json:"end_date"`
}

type TemplateResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	CustomerName string  `json:"customer_name"`
	Description  string  `json:"description,omitempty"`
	Amount       string  `json:"amount"`
	Frequency    string  `json:"frequency"`
	PaymentTerms string  `json:"payment_terms"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	NextRunDate  string  `json:"next_run_date"`
	InvoiceCount int     `json:"invoice_count"`
	IsActive     bool    `json:"is_active"`
}

// ProcessResult summarizes one scheduler pass.
type ProcessResult struct {
	Processed int `json:"processed"`
	Generated int `json:"generated"`
	Failed    int `json:"failed"`
}
