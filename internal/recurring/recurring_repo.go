package recurring

import (
	"context"
	"database/sql"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *RecurringTemplate) error
	FindAllByCompany(ctx context.Context, companyID string) ([]RecurringTemplate, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*RecurringTemplate, error)
	FindDue(ctx context.Context, asOf time.Time) ([]RecurringTemplate, error)
	Update(ctx context.Context, t *RecurringTemplate) error
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

func (r *repository) Create(ctx context.Context, t *RecurringTemplate) error {
	return r.conn(ctx).Create(t).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]RecurringTemplate, error) {
	var rows []RecurringTemplate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*RecurringTemplate, error) {
	var t RecurringTemplate
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindDue scans across all tenants: the scheduler runs once per process,
// not per company.
func (r *repository) FindDue(ctx context.Context, asOf time.Time) ([]RecurringTemplate, error) {
	var rows []RecurringTemplate
	err := r.conn(ctx).
		Where("is_active = true").
		Where("next_run_date <= ?", asOf).
		Where("end_date IS NULL OR next_run_date <= end_date").
		Order("next_run_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, t *RecurringTemplate) error {
	return r.conn(ctx).Save(t).Error
}
