package truck

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"
)

type Truck struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	UnitNumber string `gorm:"type:varchar(30);not null"`
	VIN        string `gorm:"type:varchar(20)"`
	Plate      string `gorm:"type:varchar(15)"`
	Make       string `gorm:"type:varchar(50)"`
	Model      string `gorm:"type:varchar(50)"`
	Year       int

	Status string `gorm:"type:varchar(20);not null;default:'active';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Truck) TableName() string {
	return "trucks"
}
