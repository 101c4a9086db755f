package subscription

import "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required,oneof=starter professional enterprise"`
}

type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=starter professional enterprise"`
}

type AddAddonRequest struct {
	Name         string      `json:"name" binding:"required"`
	MonthlyPrice money.Money `json:"monthly_price"`
}

type AddonResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MonthlyPrice string `json:"monthly_price"`
}

type SubscriptionResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	Plan             string          `json:"plan"`
	Status           string          `json:"status"`
	CurrentPeriodEnd *string         `json:"current_period_end,omitempty"`
	Addons           []AddonResponse `json:"addons"`
}
