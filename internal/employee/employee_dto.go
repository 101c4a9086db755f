package employee

import "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

type CreateEmployeeRequest struct {
	EmployeeNumber string      `json:"employee_number"`
	FullName       string      `json:"full_name" binding:"required"`
	Email          string      `json:"email" binding:"required,email"`
	Phone          string      `json:"phone"`
	Title          string      `json:"title"`
	PayRate        money.Money `json:"pay_rate"`
	PayType        string      `json:"pay_type" binding:"omitempty,oneof=salary hourly"`
	HireDate       string      `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName string      `json:"full_name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Phone    string      `json:"phone"`
	Title    string      `json:"title"`
	PayRate  money.Money `json:"pay_rate"`
	PayType  string      `json:"pay_type" binding:"omitempty,oneof=salary hourly"`
	Status   string      `json:"status" binding:"omitempty,oneof=active on_leave terminated"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Title          string `json:"title,omitempty"`
	PayRate        string `json:"pay_rate"`
	PayType        string `json:"pay_type"`
	Status         string `json:"status"`
	HireDate       string `json:"hire_date"`
}
