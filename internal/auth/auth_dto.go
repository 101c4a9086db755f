package auth

// SignupRequest creates a new tenant: the company and its first admin user.
type SignupRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	DOTNumber   string `json:"dot_number"`
	MCNumber    string `json:"mc_number"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
