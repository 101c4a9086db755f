package driver

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusAvailable = "available"
	StatusAssigned  = "assigned"
	StatusDriving   = "driving"
	StatusOffDuty   = "off_duty"
	StatusInactive  = "inactive"

	PayTypePerMile    = "per_mile"
	PayTypePercentage = "percentage"
	PayTypeHourly     = "hourly"
	PayTypeFlat       = "flat"
)

// DailyDriveLimitHours is the per-shift driving allowance used as the
// hours-remaining ceiling. Kept as a variable so tests can pin it.
var DailyDriveLimitHours = 11.0

type Driver struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name  string `gorm:"type:varchar(150);not null"`
	Phone string `gorm:"type:varchar(30)"`
	Email string `gorm:"type:varchar(255)"`

	LicenseNumber string     `gorm:"type:varchar(40)"`
	LicenseClass  string     `gorm:"type:varchar(10)"`
	LicenseExpiry *time.Time `gorm:"type:date"`

	PayRate decimal.Decimal `gorm:"type:numeric(12,4);not null;default:0"`
	PayType string          `gorm:"type:varchar(20);not null;default:'per_mile'"`

	Status         string  `gorm:"type:varchar(20);not null;default:'available';index"`
	HoursRemaining float64 `gorm:"not null;default:11"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Driver) TableName() string {
	return "drivers"
}
