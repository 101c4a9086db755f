package accounting

import "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

type CreateInvoiceRequest struct {
	CustomerName string      `json:"customer_name" binding:"required"`
	LoadID       string      `json:"load_id" binding:"omitempty,uuid"`
	IssueDate    string      `json:"issue_date" binding:"required"`
	DueDate      string      `json:"due_date"`
	Amount       money.Money `json:"amount"`
	Notes        string      `json:"notes"`
}

type SetInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid overdue void"`
}

type CreateBillRequest struct {
	VendorName string      `json:"vendor_name" binding:"required"`
	Category   string      `json:"category"`
	IssueDate  string      `json:"issue_date" binding:"required"`
	DueDate    string      `json:"due_date"`
	Amount     money.Money `json:"amount"`
	Notes      string      `json:"notes"`
}

type SetBillStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid overdue"`
}

type InvoiceResponse struct {
	ID            string  `json:"id"`
	CompanyID     string  `json:"company_id"`
	InvoiceNumber string  `json:"invoice_number"`
	CustomerName  string  `json:"customer_name"`
	LoadID        *string `json:"load_id,omitempty"`
	IssueDate     string  `json:"issue_date"`
	DueDate       string  `json:"due_date"`
	Amount        string  `json:"amount"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
}

type BillResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	VendorName string `json:"vendor_name"`
	Category   string `json:"category,omitempty"`
	IssueDate  string `json:"issue_date"`
	DueDate    string `json:"due_date"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

// DashboardSummaryResponse is the accounting roll-up for the dashboard:
// receivables, payables and a simple margin over the received amounts.
type DashboardSummaryResponse struct {
	TotalReceivable  string `json:"total_receivable"`
	TotalPayable     string `json:"total_payable"`
	PaidThisMonth    string `json:"paid_this_month"`
	OutstandingCount int64  `json:"outstanding_count"`
	OverdueCount     int64  `json:"overdue_count"`
	TotalRevenue     string `json:"total_revenue"`
	TotalCosts       string `json:"total_costs"`
	Margin           string `json:"margin"`
	MarginPercent    string `json:"margin_percent"`
}
