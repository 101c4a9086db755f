package reporting

import (
	"context"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveredLoadRow is the flattened read model the aggregation works on.
type DeliveredLoadRow struct {
	LoadID           uuid.UUID
	LoadNumber       string
	Rate             money.Money
	Miles            float64
	PickupLocation   string
	DeliveryLocation string
	DeliveryDate     *time.Time
	CreatedAt        time.Time
	DriverID         *uuid.UUID
	DriverName       string
}

type Repository interface {
	FindDeliveredLoads(ctx context.Context, companyID string, start, end time.Time) ([]DeliveredLoadRow, error)
	CountLoads(ctx context.Context, companyID string) (int64, error)
	CountLoadsByStatus(ctx context.Context, companyID, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindDeliveredLoads(ctx context.Context, companyID string, start, end time.Time) ([]DeliveredLoadRow, error) {
	var rows []DeliveredLoadRow
	err := r.db.WithContext(ctx).
		Table("loads AS l").
		Select(`l.id AS load_id, l.load_number, l.rate, l.miles,
			l.pickup_location, l.delivery_location, l.delivery_date, l.created_at,
			l.assigned_driver_id AS driver_id, d.name AS driver_name`).
		Joins("LEFT JOIN drivers d ON d.id = l.assigned_driver_id").
		Where("l.company_id = ?", companyID).
		Where("l.status = ?", "delivered").
		Where("COALESCE(l.delivery_date, l.created_at) BETWEEN ? AND ?", start, end).
		Order("l.delivery_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountLoads(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("loads").
		Scopes(tenant.Scope(companyID)).
		Count(&count).Error
	return count, err
}

func (r *repository) CountLoadsByStatus(ctx context.Context, companyID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("loads").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
