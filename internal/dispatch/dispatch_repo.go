package dispatch

import (
	"context"
	"database/sql"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

// CalendarRow is one joined leg→load→driver→truck row for the dispatch
// calendar view.
type CalendarRow struct {
	LegID         string
	LoadID        string
	LoadNumber    string
	LegOrder      int
	ActionType    string
	Location      string
	ScheduledDate *time.Time
	ETA           *time.Time
	Completed     bool
	DriverID      string
	DriverName    string
	TruckID       *string
	TruckUnit     *string
	CustomerName  string
}

// MobileLegRow is one incomplete leg joined with its load, for the driver
// mobile view.
type MobileLegRow struct {
	LegID            string
	LegOrder         int
	ActionType       string
	Location         string
	ScheduledDate    *time.Time
	ETA              *time.Time
	LoadID           string
	LoadNumber       string
	CustomerName     string
	PickupLocation   string
	DeliveryLocation string
	Commodity        string
	LoadStatus       string
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateLoad(ctx context.Context, l *Load) error
	FindLoadsByCompany(ctx context.Context, companyID, status string) ([]Load, error)
	FindLoadByID(ctx context.Context, companyID, id string) (*Load, error)
	UpdateLoad(ctx context.Context, l *Load) error

	CreateLegs(ctx context.Context, legs []DispatchLeg) error
	FindLegsByLoad(ctx context.Context, companyID, loadID string) ([]DispatchLeg, error)
	FindLegByID(ctx context.Context, companyID, legID string) (*DispatchLeg, error)
	UpdateLeg(ctx context.Context, leg *DispatchLeg) error
	CountIncompleteLegs(ctx context.Context, companyID, loadID string) (int64, error)

	CreateAssignments(ctx context.Context, assignments []LoadAssignment) error
	FindAssignmentsByDriver(ctx context.Context, companyID, driverID string) ([]LoadAssignment, error)
	FindAssignmentsByLoad(ctx context.Context, companyID, loadID string) ([]LoadAssignment, error)

	FindCalendarRows(ctx context.Context, companyID string, start, end time.Time) ([]CalendarRow, error)
	FindIncompleteLegsByDriver(ctx context.Context, companyID, driverID string) ([]MobileLegRow, error)
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

func (r *repository) CreateLoad(ctx context.Context, l *Load) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindLoadsByCompany(ctx context.Context, companyID, status string) ([]Load, error) {
	var loads []Load
	q := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&loads).Error
	return loads, err
}

func (r *repository) FindLoadByID(ctx context.Context, companyID, id string) (*Load, error) {
	var l Load
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpdateLoad(ctx context.Context, l *Load) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) CreateLegs(ctx context.Context, legs []DispatchLeg) error {
	if len(legs) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&legs).Error
}

func (r *repository) FindLegsByLoad(ctx context.Context, companyID, loadID string) ([]DispatchLeg, error) {
	var legs []DispatchLeg
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("load_id = ?", loadID).
		Order("leg_order ASC").
		Find(&legs).Error
	return legs, err
}

func (r *repository) FindLegByID(ctx context.Context, companyID, legID string) (*DispatchLeg, error) {
	var leg DispatchLeg
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&leg, "id = ?", legID).Error
	if err != nil {
		return nil, err
	}
	return &leg, nil
}

func (r *repository) UpdateLeg(ctx context.Context, leg *DispatchLeg) error {
	return r.conn(ctx).Save(leg).Error
}

func (r *repository) CountIncompleteLegs(ctx context.Context, companyID, loadID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&DispatchLeg{}).
		Scopes(tenant.Scope(companyID)).
		Where("load_id = ? AND completed = false", loadID).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateAssignments(ctx context.Context, assignments []LoadAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&assignments).Error
}

func (r *repository) FindAssignmentsByDriver(ctx context.Context, companyID, driverID string) ([]LoadAssignment, error) {
	var rows []LoadAssignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("driver_id = ?", driverID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAssignmentsByLoad(ctx context.Context, companyID, loadID string) ([]LoadAssignment, error) {
	var rows []LoadAssignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("load_id = ?", loadID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCalendarRows(ctx context.Context, companyID string, start, end time.Time) ([]CalendarRow, error) {
	var rows []CalendarRow
	err := r.conn(ctx).
		Table("dispatch_legs AS dl").
		Select(`dl.id AS leg_id, dl.load_id, l.load_number, dl.leg_order,
			dl.action_type, dl.location, dl.scheduled_date, dl.eta, dl.completed,
			dl.driver_id, d.name AS driver_name,
			dl.truck_id, t.unit_number AS truck_unit,
			l.customer_name`).
		Joins("JOIN loads l ON l.id = dl.load_id").
		Joins("LEFT JOIN drivers d ON d.id = dl.driver_id").
		Joins("LEFT JOIN trucks t ON t.id = dl.truck_id").
		Where("dl.company_id = ?", companyID).
		Where("dl.scheduled_date BETWEEN ? AND ?", start, end).
		Order("dl.scheduled_date ASC, dl.leg_order ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindIncompleteLegsByDriver(ctx context.Context, companyID, driverID string) ([]MobileLegRow, error) {
	var rows []MobileLegRow
	err := r.conn(ctx).
		Table("dispatch_legs AS dl").
		Select(`dl.id AS leg_id, dl.leg_order, dl.action_type, dl.location,
			dl.scheduled_date, dl.eta,
			dl.load_id, l.load_number, l.customer_name,
			l.pickup_location, l.delivery_location, l.commodity,
			l.status AS load_status`).
		Joins("JOIN loads l ON l.id = dl.load_id").
		Where("dl.company_id = ?", companyID).
		Where("dl.driver_id = ?", driverID).
		Where("dl.completed = false").
		Order("dl.scheduled_date ASC, dl.leg_order ASC").
		Scan(&rows).Error
	return rows, err
}
