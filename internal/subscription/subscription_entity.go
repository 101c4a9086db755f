package subscription

import (
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
)

const (
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"

	StatusTrialing  = "trialing"
	StatusActive    = "active"
	StatusPastDue   = "past_due"
	StatusCancelled = "cancelled"
)

// Subscription is one-per-company, enforced by the unique index on
// company_id.
type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subscriptions_company"`

	Plan   string `gorm:"type:varchar(30);not null"`
	Status string `gorm:"type:varchar(20);not null;default:'active'"`

	StripeCustomerID     *string `gorm:"type:varchar(60)"`
	StripeSubscriptionID *string `gorm:"type:varchar(60)"`

	CurrentPeriodEnd *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Subscription) TableName() string {
	return "subscriptions"
}

type SubscriptionAddon struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name         string      `gorm:"type:varchar(80);not null"`
	MonthlyPrice money.Money `gorm:"type:numeric(12,2);not null;default:0"`

	CreatedAt time.Time
}

func (SubscriptionAddon) TableName() string {
	return "subscription_addons"
}

func validPlan(p string) bool {
	switch p {
	case PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}
