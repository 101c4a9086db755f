package employee

import (
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PayTypeSalary = "salary"
	PayTypeHourly = "hourly"

	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

// Employee covers office and yard staff. Drivers live in their own table
// because dispatch needs HOS and licensing fields that do not apply here.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	EmployeeNumber string `gorm:"type:varchar(20);not null;index:uq_employee_number,unique,composite:company_id"`
	FullName       string `gorm:"type:varchar(150);not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex:uq_employee_email"`
	Phone          string `gorm:"type:varchar(30)"`
	Title          string `gorm:"type:varchar(80)"`

	PayRate money.Money `gorm:"type:numeric(12,2);not null;default:0"`
	PayType string      `gorm:"type:varchar(10);not null;default:'salary'"`

	Status   string    `gorm:"type:varchar(20);not null;default:'active';index"`
	HireDate time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
