package subscription

import (
	"context"
	"database/sql"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Subscription) error
	FindByCompany(ctx context.Context, companyID string) (*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
	CreateAddon(ctx context.Context, a *SubscriptionAddon) error
	DeleteAddon(ctx context.Context, companyID, id string) error
	FindAddons(ctx context.Context, companyID, subscriptionID string) ([]SubscriptionAddon, error)
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

func (r *repository) Create(ctx context.Context, s *Subscription) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindByCompany(ctx context.Context, companyID string) (*Subscription, error) {
	var s Subscription
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Subscription) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) CreateAddon(ctx context.Context, a *SubscriptionAddon) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) DeleteAddon(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&SubscriptionAddon{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindAddons(ctx context.Context, companyID, subscriptionID string) ([]SubscriptionAddon, error) {
	var addons []SubscriptionAddon
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC").
		Find(&addons).Error
	return addons, err
}
