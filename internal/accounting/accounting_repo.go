package accounting

import (
	"context"
	"database/sql"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateInvoice(ctx context.Context, inv *Invoice) error
	FindInvoices(ctx context.Context, companyID, status string) ([]Invoice, error)
	FindInvoiceByID(ctx context.Context, companyID, id string) (*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error

	CreateBill(ctx context.Context, b *Bill) error
	FindBills(ctx context.Context, companyID, status string) ([]Bill, error)
	FindBillByID(ctx context.Context, companyID, id string) (*Bill, error)
	UpdateBill(ctx context.Context, b *Bill) error

	SumInvoicesByStatus(ctx context.Context, companyID string, statuses []string) (float64, error)
	SumBillsByStatus(ctx context.Context, companyID string, statuses []string) (float64, error)
	SumInvoicesPaidSince(ctx context.Context, companyID string, since time.Time) (float64, error)
	CountInvoicesByStatus(ctx context.Context, companyID string, statuses []string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn routes the query through the active transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) CreateInvoice(ctx context.Context, inv *Invoice) error {
	return r.conn(ctx).Create(inv).Error
}

func (r *repository) FindInvoices(ctx context.Context, companyID, status string) ([]Invoice, error) {
	var rows []Invoice
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("issue_date DESC, created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindInvoiceByID(ctx context.Context, companyID, id string) (*Invoice, error) {
	var inv Invoice
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) UpdateInvoice(ctx context.Context, inv *Invoice) error {
	return r.conn(ctx).Save(inv).Error
}

func (r *repository) CreateBill(ctx context.Context, b *Bill) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) FindBills(ctx context.Context, companyID, status string) ([]Bill, error) {
	var rows []Bill
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("issue_date DESC, created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindBillByID(ctx context.Context, companyID, id string) (*Bill, error) {
	var b Bill
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) UpdateBill(ctx context.Context, b *Bill) error {
	return r.conn(ctx).Save(b).Error
}

func (r *repository) SumInvoicesByStatus(ctx context.Context, companyID string, statuses []string) (float64, error) {
	var total float64
	err := r.conn(ctx).
		Model(&Invoice{}).
		Scopes(tenant.Scope(companyID)).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) SumBillsByStatus(ctx context.Context, companyID string, statuses []string) (float64, error) {
	var total float64
	err := r.conn(ctx).
		Model(&Bill{}).
		Scopes(tenant.Scope(companyID)).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) SumInvoicesPaidSince(ctx context.Context, companyID string, since time.Time) (float64, error) {
	var total float64
	err := r.conn(ctx).
		Model(&Invoice{}).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", InvoiceStatusPaid).
		Where("updated_at >= ?", since).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) CountInvoicesByStatus(ctx context.Context, companyID string, statuses []string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Invoice{}).
		Scopes(tenant.Scope(companyID)).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count, err
}
