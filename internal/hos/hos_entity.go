package hos

import (
	"time"

	"github.com/google/uuid"
)

// DutyLog is one on-duty stretch for a driver. EndedAt is nil while the
// driver is still on duty.
type DutyLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index:idx_driver_date"`

	DutyDate  time.Time  `gorm:"type:date;not null;index:idx_driver_date"`
	StartedAt time.Time  `gorm:"not null"`
	EndedAt   *time.Time `gorm:"index"`
	HoursUsed float64    `gorm:"not null;default:0"`
	Notes     *string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DutyLog) TableName() string {
	return "duty_logs"
}
