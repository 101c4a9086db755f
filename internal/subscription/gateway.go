package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GatewayResult carries the provider-side identifiers back into the local
// subscription row.
type GatewayResult struct {
	CustomerID       string
	SubscriptionID   string
	CurrentPeriodEnd time.Time
}

// PaymentGateway is the billing-provider port. The Stripe implementation
// lives outside this package; LocalGateway serves installs that bill
// out-of-band.
type PaymentGateway interface {
	CreateSubscription(ctx context.Context, companyID, plan string) (GatewayResult, error)
	UpdateSubscription(ctx context.Context, providerSubID, plan string) error
	CancelSubscription(ctx context.Context, providerSubID string) error
}

// LocalGateway issues synthetic identifiers and never talks to a provider.
type LocalGateway struct{}

func NewLocalGateway() PaymentGateway {
	return &LocalGateway{}
}

func (g *LocalGateway) CreateSubscription(ctx context.Context, companyID, plan string) (GatewayResult, error) {
	return GatewayResult{
		CustomerID:       "cus_local_" + uuid.NewString()[:8],
		SubscriptionID:   "sub_local_" + uuid.NewString()[:8],
		CurrentPeriodEnd: time.Now().UTC().AddDate(0, 1, 0),
	}, nil
}

func (g *LocalGateway) UpdateSubscription(ctx context.Context, providerSubID, plan string) error {
	return nil
}

func (g *LocalGateway) CancelSubscription(ctx context.Context, providerSubID string) error {
	return nil
}
