package hos

import (
	"context"
	"database/sql"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *DutyLog) error
	FindOpenByDriver(ctx context.Context, companyID, driverID string) (*DutyLog, error)
	FindByDriverAndDate(ctx context.Context, companyID, driverID string, date time.Time) ([]DutyLog, error)
	FindAllByDriver(ctx context.Context, companyID, driverID string) ([]DutyLog, error)
	Update(ctx context.Context, log *DutyLog) error
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

func (r *repository) Create(ctx context.Context, log *DutyLog) error {
	return r.conn(ctx).Create(log).Error
}

func (r *repository) FindOpenByDriver(ctx context.Context, companyID, driverID string) (*DutyLog, error) {
	var log DutyLog
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("driver_id = ? AND ended_at IS NULL", driverID).
		Order("started_at DESC").
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *repository) FindByDriverAndDate(ctx context.Context, companyID, driverID string, date time.Time) ([]DutyLog, error) {
	var logs []DutyLog
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("driver_id = ? AND duty_date = ?", driverID, date).
		Order("started_at ASC").
		Find(&logs).Error
	return logs, err
}

func (r *repository) FindAllByDriver(ctx context.Context, companyID, driverID string) ([]DutyLog, error) {
	var logs []DutyLog
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("driver_id = ?", driverID).
		Order("started_at DESC").
		Limit(100).
		Find(&logs).Error
	return logs, err
}

func (r *repository) Update(ctx context.Context, log *DutyLog) error {
	return r.conn(ctx).Save(log).Error
}
