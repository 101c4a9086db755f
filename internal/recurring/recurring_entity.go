package recurring

import (
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
)

const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// RecurringTemplate is a persisted invoice schedule. The scheduler scans
// active templates whose next_run_date has passed and materializes one
// invoice per run, so the schedule survives process restarts.
type RecurringTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	CustomerName string      `gorm:"type:varchar(150);not null"`
	Description  string      `gorm:"type:varchar(255)"`
	Amount       money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	Frequency    string `gorm:"type:varchar(20);not null"`
	PaymentTerms string `gorm:"type:varchar(20);not null;default:'Net 30'"`

	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     *time.Time `gorm:"type:date"`
	NextRunDate time.Time  `gorm:"type:date;not null;index"`

	InvoiceCount int  `gorm:"not null;default:0"`
	IsActive     bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecurringTemplate) TableName() string {
	return "recurring_templates"
}

func validFrequency(f string) bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}
