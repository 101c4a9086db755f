package domain

// Built-in role names seeded for every new company.
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleAccountant = "accountant"
	RoleDriver     = "driver"
)

type EnforceRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}
