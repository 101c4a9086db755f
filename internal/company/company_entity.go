package company

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subscription tiers and statuses mirrored onto the tenant row so the
// dashboard can gate features without a join.
const (
	TierStarter    = "starter"
	TierPro        = "pro"
	TierEnterprise = "enterprise"

	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
	SubscriptionTrialing = "trialing"
)

// Company is the tenant root. Every other row in the schema carries this
// id. Companies are deactivated, never hard-deleted.
type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `gorm:"type:varchar(150);not null"`
	Email   string    `gorm:"type:varchar(255);index"`
	Phone   string    `gorm:"type:varchar(30)"`
	Address string    `gorm:"type:text"`

	// FMCSA operating authority
	DOTNumber string `gorm:"type:varchar(20);column:dot_number"`
	MCNumber  string `gorm:"type:varchar(20);column:mc_number"`

	SubscriptionTier   string          `gorm:"type:varchar(20);not null;default:'starter'"`
	SubscriptionStatus string          `gorm:"type:varchar(20);not null;default:'trialing'"`
	WalletBalance      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
