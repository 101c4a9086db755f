package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRun(ctx context.Context, run *PayrollRun) error
	CreateStubs(ctx context.Context, stubs []EmployeePaystub) error
	FindRunsByCompany(ctx context.Context, companyID string) ([]PayrollRun, error)
	FindRunByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error)
	FindStubsByRun(ctx context.Context, companyID string, runID string) ([]EmployeePaystub, error)
	SumYearToDate(ctx context.Context, companyID string, employeeID string, before time.Time) (gross money.Money, net money.Money, err error)
	UpdateRun(ctx context.Context, run *PayrollRun) error
	DeleteRun(ctx context.Context, companyID string, id string) error
	HasOverlappingRun(ctx context.Context, companyID string, periodStart time.Time, periodEnd time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn routes the query through the active transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.conn(ctx).Create(run).Error
}

func (r *repository) CreateStubs(ctx context.Context, stubs []EmployeePaystub) error {
	if len(stubs) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&stubs).Error
}

func (r *repository) FindRunsByCompany(ctx context.Context, companyID string) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_start DESC").
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *repository) FindRunByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindStubsByRun(ctx context.Context, companyID string, runID string) ([]EmployeePaystub, error) {
	var stubs []EmployeePaystub
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_run_id = ?", runID).
		Order("created_at ASC").
		Find(&stubs).Error
	if err != nil {
		return nil, err
	}
	return stubs, nil
}

// SumYearToDate totals stubs from the same calendar year as before,
// strictly earlier than it. Runs inside the payroll transaction so a
// concurrent run cannot double count.
func (r *repository) SumYearToDate(ctx context.Context, companyID string, employeeID string, before time.Time) (money.Money, money.Money, error) {
	yearStart := time.Date(before.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	var row struct {
		Gross money.Money
		Net   money.Money
	}
	err := r.conn(ctx).
		Model(&EmployeePaystub{}).
		Select("COALESCE(SUM(gross_pay), 0) AS gross, COALESCE(SUM(net_pay), 0) AS net").
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period_end >= ? AND period_end < ?", yearStart, before).
		Scan(&row).Error
	if err != nil {
		return money.Zero(), money.Zero(), err
	}
	return row.Gross, row.Net, nil
}

func (r *repository) UpdateRun(ctx context.Context, run *PayrollRun) error {
	return r.conn(ctx).Save(run).Error
}

func (r *repository) DeleteRun(ctx context.Context, companyID string, id string) error {
	result := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&PayrollRun{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasOverlappingRun(ctx context.Context, companyID string, periodStart time.Time, periodEnd time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(companyID)).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
