package company

import (
	"context"

	companyerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/company/errors"

	"github.com/google/uuid"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return s.mapToResponse(comp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		comp.Name = req.Name
	}
	if req.Phone != "" {
		comp.Phone = req.Phone
	}
	if req.Address != "" {
		comp.Address = req.Address
	}
	if req.DOTNumber != "" {
		comp.DOTNumber = req.DOTNumber
	}
	if req.MCNumber != "" {
		comp.MCNumber = req.MCNumber
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}

	err = s.repo.Update(ctx, comp)
	if err != nil {
		return nil, err
	}

	return s.mapToResponse(comp), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return err
	}

	comp.IsActive = false
	return s.repo.Update(ctx, comp)
}

func (s *service) mapToResponse(comp *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                 comp.ID.String(),
		Name:               comp.Name,
		Email:              comp.Email,
		Phone:              comp.Phone,
		Address:            comp.Address,
		DOTNumber:          comp.DOTNumber,
		MCNumber:           comp.MCNumber,
		SubscriptionTier:   comp.SubscriptionTier,
		SubscriptionStatus: comp.SubscriptionStatus,
		WalletBalance:      comp.WalletBalance.StringFixed(2),
		IsActive:           comp.IsActive,
	}
}
