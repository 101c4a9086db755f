package billing

import "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

type SetBaseRateRequest struct {
	BaseRate money.Money `json:"base_rate"`
}

type AddAccessorialRequest struct {
	Type        string      `json:"type" binding:"required"`
	Description string      `json:"description"`
	Amount      money.Money `json:"amount"`
}

type AddExpenseRequest struct {
	Category    string      `json:"category" binding:"required"`
	Description string      `json:"description"`
	Amount      money.Money `json:"amount"`
}

type AccessorialResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

type BillingResponse struct {
	ID        string `json:"id"`
	LoadID    string `json:"load_id"`
	CompanyID string `json:"company_id"`

	BaseRate          string `json:"base_rate"`
	Subtotal          string `json:"subtotal"`
	TotalAccessorials string `json:"total_accessorials"`
	TotalExpenses     string `json:"total_expenses"`
	TotalAmount       string `json:"total_amount"`

	Status string `json:"status"`

	Accessorials []AccessorialResponse `json:"accessorials"`
	Expenses     []ExpenseResponse     `json:"expenses"`
}
