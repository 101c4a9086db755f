package subscription

import (
	"context"
	"errors"

	subscriptionerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/subscription/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetForCompany(ctx context.Context, companyID string) (SubscriptionResponse, error)
	Subscribe(ctx context.Context, companyID string, req SubscribeRequest) (SubscriptionResponse, error)
	ChangePlan(ctx context.Context, companyID string, req ChangePlanRequest) (SubscriptionResponse, error)
	Cancel(ctx context.Context, companyID string) (SubscriptionResponse, error)
	AddAddon(ctx context.Context, companyID string, req AddAddonRequest) (SubscriptionResponse, error)
	RemoveAddon(ctx context.Context, companyID, addonID string) (SubscriptionResponse, error)
}

type service struct {
	repo    Repository
	gateway PaymentGateway
	logger  *zap.Logger
}

func NewService(repo Repository, gateway PaymentGateway, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("subscription.service")
	}
	if gateway == nil {
		gateway = NewLocalGateway()
	}
	return &service{repo: repo, gateway: gateway, logger: l}
}

func (s *service) GetForCompany(ctx context.Context, companyID string) (SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, companyID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	return s.toResponse(ctx, sub)
}

func (s *service) Subscribe(ctx context.Context, companyID string, req SubscribeRequest) (SubscriptionResponse, error) {
	if !validPlan(req.Plan) {
		return SubscriptionResponse{}, subscriptionerrors.ErrInvalidPlan
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SubscriptionResponse{}, subscriptionerrors.ErrInvalidCompanyID
	}

	if _, err := s.repo.FindByCompany(ctx, companyID); err == nil {
		return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SubscriptionResponse{}, err
	}

	result, err := s.gateway.CreateSubscription(ctx, companyID, req.Plan)
	if err != nil {
		s.logger.Error("gateway subscription create failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return SubscriptionResponse{}, err
	}

	sub := &Subscription{
		ID:                   uuid.New(),
		CompanyID:            companyUUID,
		Plan:                 req.Plan,
		Status:               StatusActive,
		StripeCustomerID:     &result.CustomerID,
		StripeSubscriptionID: &result.SubscriptionID,
		CurrentPeriodEnd:     &result.CurrentPeriodEnd,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return SubscriptionResponse{}, err
	}

	s.logger.Info("subscription created",
		zap.String("company_id", companyID),
		zap.String("plan", req.Plan),
	)
	return s.toResponse(ctx, sub)
}

func (s *service) ChangePlan(ctx context.Context, companyID string, req ChangePlanRequest) (SubscriptionResponse, error) {
	if !validPlan(req.Plan) {
		return SubscriptionResponse{}, subscriptionerrors.ErrInvalidPlan
	}

	sub, err := s.findSubscription(ctx, companyID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	if sub.Status == StatusCancelled {
		return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionCancelled
	}

	if sub.StripeSubscriptionID != nil {
		if err := s.gateway.UpdateSubscription(ctx, *sub.StripeSubscriptionID, req.Plan); err != nil {
			s.logger.Error("gateway plan change failed",
				zap.String("company_id", companyID),
				zap.Error(err),
			)
			return SubscriptionResponse{}, err
		}
	}

	sub.Plan = req.Plan
	if err := s.repo.Update(ctx, sub); err != nil {
		return SubscriptionResponse{}, err
	}
	return s.toResponse(ctx, sub)
}

func (s *service) Cancel(ctx context.Context, companyID string) (SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, companyID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	if sub.Status == StatusCancelled {
		return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionCancelled
	}

	if sub.StripeSubscriptionID != nil {
		if err := s.gateway.CancelSubscription(ctx, *sub.StripeSubscriptionID); err != nil {
			s.logger.Error("gateway subscription cancel failed",
				zap.String("company_id", companyID),
				zap.Error(err),
			)
			return SubscriptionResponse{}, err
		}
	}

	sub.Status = StatusCancelled
	if err := s.repo.Update(ctx, sub); err != nil {
		return SubscriptionResponse{}, err
	}

	s.logger.Info("subscription cancelled", zap.String("company_id", companyID))
	return s.toResponse(ctx, sub)
}

func (s *service) AddAddon(ctx context.Context, companyID string, req AddAddonRequest) (SubscriptionResponse, error) {
	if req.MonthlyPrice.IsNegative() {
		return SubscriptionResponse{}, subscriptionerrors.ErrNegativePrice
	}

	sub, err := s.findSubscription(ctx, companyID)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	if sub.Status == StatusCancelled {
		return SubscriptionResponse{}, subscriptionerrors.ErrSubscriptionCancelled
	}

	addon := &SubscriptionAddon{
		ID:             uuid.New(),
		CompanyID:      sub.CompanyID,
		SubscriptionID: sub.ID,
		Name:           req.Name,
		MonthlyPrice:   req.MonthlyPrice,
	}
	if err := s.repo.CreateAddon(ctx, addon); err != nil {
		return SubscriptionResponse{}, err
	}
	return s.toResponse(ctx, sub)
}

func (s *service) RemoveAddon(ctx context.Context, companyID, addonID string) (SubscriptionResponse, error) {
	sub, err := s.findSubscription(ctx, companyID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	if err := s.repo.DeleteAddon(ctx, companyID, addonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubscriptionResponse{}, subscriptionerrors.ErrAddonNotFound
		}
		return SubscriptionResponse{}, err
	}
	return s.toResponse(ctx, sub)
}

func (s *service) findSubscription(ctx context.Context, companyID string) (*Subscription, error) {
	sub, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscriptionerrors.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *service) toResponse(ctx context.Context, sub *Subscription) (SubscriptionResponse, error) {
	addons, err := s.repo.FindAddons(ctx, sub.CompanyID.String(), sub.ID.String())
	if err != nil {
		return SubscriptionResponse{}, err
	}

	resp := SubscriptionResponse{
		ID:        sub.ID.String(),
		CompanyID: sub.CompanyID.String(),
		Plan:      sub.Plan,
		Status:    sub.Status,
		Addons:    make([]AddonResponse, 0, len(addons)),
	}
	if sub.CurrentPeriodEnd != nil {
		v := sub.CurrentPeriodEnd.Format("2006-01-02")
		resp.CurrentPeriodEnd = &v
	}
	for _, a := range addons {
		resp.Addons = append(resp.Addons, AddonResponse{
			ID:           a.ID.String(),
			Name:         a.Name,
			MonthlyPrice: a.MonthlyPrice.String(),
		})
	}
	return resp, nil
}
