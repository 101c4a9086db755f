package subscription

import (
	"context"
	"database/sql"
	"testing"

	subscriptionerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/subscription/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type memRepo struct {
	subs   map[string]*Subscription
	addons map[string]*SubscriptionAddon
}

func newMemRepo() *memRepo {
	return &memRepo{
		subs:   map[string]*Subscription{},
		addons: map[string]*SubscriptionAddon{},
	}
}

func (m *memRepo) WithTx(tx *sql.Tx) Repository { return m }

func (m *memRepo) Create(ctx context.Context, s *Subscription) error {
	copy := *s
	m.subs[s.CompanyID.String()] = &copy
	return nil
}

func (m *memRepo) FindByCompany(ctx context.Context, companyID string) (*Subscription, error) {
	s, ok := m.subs[companyID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s
	return &copy, nil
}

func (m *memRepo) Update(ctx context.Context, s *Subscription) error {
	copy := *s
	m.subs[s.CompanyID.String()] = &copy
	return nil
}

func (m *memRepo) CreateAddon(ctx context.Context, a *SubscriptionAddon) error {
	copy := *a
	m.addons[a.ID.String()] = &copy
	return nil
}

func (m *memRepo) DeleteAddon(ctx context.Context, companyID, id string) error {
	a, ok := m.addons[id]
	if !ok || a.CompanyID.String() != companyID {
		return gorm.ErrRecordNotFound
	}
	delete(m.addons, id)
	return nil
}

func (m *memRepo) FindAddons(ctx context.Context, companyID, subscriptionID string) ([]SubscriptionAddon, error) {
	var out []SubscriptionAddon
	for _, a := range m.addons {
		if a.CompanyID.String() == companyID && a.SubscriptionID.String() == subscriptionID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeGateway struct {
	created   []string
	updated   []string
	cancelled []string
	createErr error
}

func (g *fakeGateway) CreateSubscription(ctx context.Context, companyID, plan string) (GatewayResult, error) {
	if g.createErr != nil {
		return GatewayResult{}, g.createErr
	}
	g.created = append(g.created, plan)
	return GatewayResult{CustomerID: "cus_test", SubscriptionID: "sub_test"}, nil
}

func (g *fakeGateway) UpdateSubscription(ctx context.Context, providerSubID, plan string) error {
	g.updated = append(g.updated, plan)
	return nil
}

func (g *fakeGateway) CancelSubscription(ctx context.Context, providerSubID string) error {
	g.cancelled = append(g.cancelled, providerSubID)
	return nil
}

func TestService_Subscribe_OnePerCompany(t *testing.T) {
	repo := newMemRepo()
	gw := &fakeGateway{}
	svc := NewService(repo, gw)
	companyID := uuid.NewString()

	resp, err := svc.Subscribe(context.Background(), companyID, SubscribeRequest{Plan: PlanProfessional})
	assert.NoError(t, err)
	assert.Equal(t, PlanProfessional, resp.Plan)
	assert.Equal(t, StatusActive, resp.Status)
	assert.Equal(t, []string{PlanProfessional}, gw.created)

	_, err = svc.Subscribe(context.Background(), companyID, SubscribeRequest{Plan: PlanStarter})
	assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionExists)
}

func TestService_ChangePlan_UpdatesGatewayAndRow(t *testing.T) {
	repo := newMemRepo()
	gw := &fakeGateway{}
	svc := NewService(repo, gw)
	companyID := uuid.NewString()

	_, err := svc.Subscribe(context.Background(), companyID, SubscribeRequest{Plan: PlanStarter})
	assert.NoError(t, err)

	resp, err := svc.ChangePlan(context.Background(), companyID, ChangePlanRequest{Plan: PlanEnterprise})
	assert.NoError(t, err)
	assert.Equal(t, PlanEnterprise, resp.Plan)
	assert.Equal(t, []string{PlanEnterprise}, gw.updated)
}

func TestService_Cancel_IsTerminal(t *testing.T) {
	repo := newMemRepo()
	gw := &fakeGateway{}
	svc := NewService(repo, gw)
	companyID := uuid.NewString()

	_, err := svc.Subscribe(context.Background(), companyID, SubscribeRequest{Plan: PlanStarter})
	assert.NoError(t, err)

	resp, err := svc.Cancel(context.Background(), companyID)
	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, resp.Status)
	assert.Equal(t, []string{"sub_test"}, gw.cancelled)

	_, err = svc.Cancel(context.Background(), companyID)
	assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionCancelled)

	_, err = svc.ChangePlan(context.Background(), companyID, ChangePlanRequest{Plan: PlanEnterprise})
	assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionCancelled)
}

func TestService_Addons_AddAndRemove(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, &fakeGateway{})
	companyID := uuid.NewString()

	_, err := svc.Subscribe(context.Background(), companyID, SubscribeRequest{Plan: PlanStarter})
	assert.NoError(t, err)

	resp, err := svc.AddAddon(context.Background(), companyID, AddAddonRequest{Name: "ELD integration"})
	assert.NoError(t, err)
	assert.Len(t, resp.Addons, 1)

	resp, err = svc.RemoveAddon(context.Background(), companyID, resp.Addons[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, resp.Addons)

	_, err = svc.RemoveAddon(context.Background(), companyID, uuid.NewString())
	assert.ErrorIs(t, err, subscriptionerrors.ErrAddonNotFound)
}

func TestService_GetForCompany_NotFound(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeGateway{})

	_, err := svc.GetForCompany(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, subscriptionerrors.ErrSubscriptionNotFound)
}

func TestService_Addons_CrossTenantRemoveFails(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, &fakeGateway{})
	companyA := uuid.NewString()
	companyB := uuid.NewString()

	_, err := svc.Subscribe(context.Background(), companyA, SubscribeRequest{Plan: PlanStarter})
	assert.NoError(t, err)
	_, err = svc.Subscribe(context.Background(), companyB, SubscribeRequest{Plan: PlanStarter})
	assert.NoError(t, err)

	respA, err := svc.AddAddon(context.Background(), companyA, AddAddonRequest{Name: "ELD integration"})
	assert.NoError(t, err)

	_, err = svc.RemoveAddon(context.Background(), companyB, respA.Addons[0].ID)
	assert.ErrorIs(t, err, subscriptionerrors.ErrAddonNotFound)
}

func TestService_Subscribe_RejectsMalformedCompanyID(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeGateway{})

	_, err := svc.Subscribe(context.Background(), "not-a-uuid", SubscribeRequest{Plan: PlanStarter})
	assert.ErrorIs(t, err, subscriptionerrors.ErrInvalidCompanyID)
}
