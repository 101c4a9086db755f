package billing

import (
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
)

// LoadBilling is the 1:1 financial close-out record of a load. The total
// columns are stored, not generated: every child mutation recomputes and
// persists them in the same transaction.
type LoadBilling struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_load_billing_load"`

	BaseRate money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	Subtotal          money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	TotalAccessorials money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	TotalExpenses     money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	TotalAmount       money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;default:'draft'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LoadBilling) TableName() string {
	return "load_billings"
}

// LoadAccessorial is one billable add-on charge (detention, lumper, tarp
// fee) attached to a billing record.
type LoadAccessorial struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	BillingID uuid.UUID `gorm:"type:uuid;not null;index"`

	Type        string      `gorm:"type:varchar(40);not null"`
	Description string      `gorm:"type:varchar(255)"`
	Amount      money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LoadAccessorial) TableName() string {
	return "load_accessorials"
}

// LoadExpense is one pass-through cost (fuel, tolls) attached to a billing
// record.
type LoadExpense struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	BillingID uuid.UUID `gorm:"type:uuid;not null;index"`

	Category    string      `gorm:"type:varchar(40);not null"`
	Description string      `gorm:"type:varchar(255)"`
	Amount      money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LoadExpense) TableName() string {
	return "load_expenses"
}

// recomputeTotals derives the stored total columns from the billing's
// current children. Expenses are billed through to the customer, so they
// add to the grand total alongside accessorials.
func recomputeTotals(b *LoadBilling, accessorials []LoadAccessorial, expenses []LoadExpense) {
	totalAcc := money.Zero()
	for _, a := range accessorials {
		totalAcc = totalAcc.Add(a.Amount)
	}
	totalExp := money.Zero()
	for _, e := range expenses {
		totalExp = totalExp.Add(e.Amount)
	}

	b.Subtotal = b.BaseRate
	b.TotalAccessorials = totalAcc
	b.TotalExpenses = totalExp
	b.TotalAmount = b.Subtotal.Add(totalAcc).Add(totalExp)
}
