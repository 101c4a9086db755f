package payroll

import (
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft    = "DRAFT"
	StatusApproved = "APPROVED"
	StatusPaid     = "PAID"
)

// PayrollRun covers one pay period for a whole company. Totals are stored
// columns recomputed when the run is generated.
type PayrollRun struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_payroll_runs_company_status"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	TotalGross      money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	TotalNet        money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	Status    string    `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_payroll_runs_company_status"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time `gorm:"index"`
	PaidAt     *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// EmployeePaystub is one employee's slice of a run. Year-to-date figures
// are accumulated from the employee's prior stubs in the same calendar
// year at generation time, inside the run's transaction.
type EmployeePaystub struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PayrollRunID uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`

	PeriodEnd time.Time `gorm:"type:date;not null;index"`

	GrossPay   money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	Deductions money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay     money.Money `gorm:"type:numeric(14,2);not null;default:0"`

	YTDGross money.Money `gorm:"column:ytd_gross;type:numeric(14,2);not null;default:0"`
	YTDNet   money.Money `gorm:"column:ytd_net;type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
}

func (EmployeePaystub) TableName() string {
	return "employee_paystubs"
}
