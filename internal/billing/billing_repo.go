package billing

import (
	"context"
	"database/sql"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, b *LoadBilling) error
	FindByLoadID(ctx context.Context, companyID, loadID string) (*LoadBilling, error)
	FindByID(ctx context.Context, companyID, id string) (*LoadBilling, error)
	Update(ctx context.Context, b *LoadBilling) error

	CreateAccessorial(ctx context.Context, a *LoadAccessorial) error
	DeleteAccessorial(ctx context.Context, companyID, id string) error
	FindAccessorials(ctx context.Context, companyID, billingID string) ([]LoadAccessorial, error)

	CreateExpense(ctx context.Context, e *LoadExpense) error
	DeleteExpense(ctx context.Context, companyID, id string) error
	FindExpenses(ctx context.Context, companyID, billingID string) ([]LoadExpense, error)
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

func (r *repository) Create(ctx context.Context, b *LoadBilling) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) FindByLoadID(ctx context.Context, companyID, loadID string) (*LoadBilling, error) {
	var b LoadBilling
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "load_id = ?", loadID).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*LoadBilling, error) {
	var b LoadBilling
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *LoadBilling) error {
	return r.conn(ctx).Save(b).Error
}

func (r *repository) CreateAccessorial(ctx context.Context, a *LoadAccessorial) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) DeleteAccessorial(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&LoadAccessorial{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindAccessorials(ctx context.Context, companyID, billingID string) ([]LoadAccessorial, error) {
	var rows []LoadAccessorial
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("billing_id = ?", billingID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateExpense(ctx context.Context, e *LoadExpense) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) DeleteExpense(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&LoadExpense{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindExpenses(ctx context.Context, companyID, billingID string) ([]LoadExpense, error) {
	var rows []LoadExpense
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("billing_id = ?", billingID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
