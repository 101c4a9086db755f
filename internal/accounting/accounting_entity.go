package accounting

import (
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
)

const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
	InvoiceStatusVoid    = "void"

	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// Invoice is a receivable. InvoiceNumber is tenant-unique, issued from the
// company counter.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	InvoiceNumber string    `gorm:"type:varchar(20);not null;index:idx_invoices_company_number,unique,composite:company_id"`

	CustomerName string     `gorm:"type:varchar(150);not null"`
	LoadID       *uuid.UUID `gorm:"type:uuid"`

	IssueDate time.Time `gorm:"type:date;not null"`
	DueDate   time.Time `gorm:"type:date;not null"`

	Amount money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	Status string      `gorm:"type:varchar(20);not null;default:'draft';index"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Invoice) TableName() string {
	return "invoices"
}

// Bill is a payable owed to a vendor.
type Bill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	VendorName string `gorm:"type:varchar(150);not null"`
	Category   string `gorm:"type:varchar(40)"`

	IssueDate time.Time `gorm:"type:date;not null"`
	DueDate   time.Time `gorm:"type:date;not null"`

	Amount money.Money `gorm:"type:numeric(14,2);not null;default:0"`
	Status string      `gorm:"type:varchar(20);not null;default:'pending';index"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Bill) TableName() string {
	return "bills"
}

func validInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusVoid:
		return true
	}
	return false
}
