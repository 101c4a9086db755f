package user

type InviteUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=admin dispatcher accountant driver"`
	Password string `json:"password" binding:"required,min=8"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin dispatcher accountant driver"`
}

type UserResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}
