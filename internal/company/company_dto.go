package company

type UpdateCompanyRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	DOTNumber string `json:"dot_number"`
	MCNumber  string `json:"mc_number"`
	IsActive  *bool  `json:"is_active"`
}

type CompanyResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	DOTNumber          string `json:"dot_number"`
	MCNumber           string `json:"mc_number"`
	SubscriptionTier   string `json:"subscription_tier"`
	SubscriptionStatus string `json:"subscription_status"`
	WalletBalance      string `json:"wallet_balance"`
	IsActive           bool   `json:"is_active"`
}
