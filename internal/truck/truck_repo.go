package truck

import (
	"context"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, t *Truck) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Truck, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Truck, error)
	Update(ctx context.Context, t *Truck) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Truck) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Truck, error) {
	var trucks []Truck
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("unit_number ASC").
		Find(&trucks).Error
	return trucks, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Truck, error) {
	var t Truck
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Truck) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Truck{}, "id = ?", id).Error
}
