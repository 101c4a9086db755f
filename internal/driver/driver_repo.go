package driver

import (
	"context"
	"database/sql"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Driver) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Driver, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Driver, error)
	FindByStatus(ctx context.Context, companyID, status string) ([]Driver, error)
	Update(ctx context.Context, d *Driver) error
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, d *Driver) error {
	return r.conn(ctx).Create(d).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Driver, error) {
	var drivers []Driver
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&drivers).Error
	return drivers, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Driver, error) {
	var d Driver
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByStatus(ctx context.Context, companyID, status string) ([]Driver, error) {
	var drivers []Driver
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", status).
		Order("name ASC").
		Find(&drivers).Error
	return drivers, err
}

func (r *repository) Update(ctx context.Context, d *Driver) error {
	return r.conn(ctx).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Driver{}, "id = ?", id).Error
}
