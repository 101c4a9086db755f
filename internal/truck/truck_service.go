package truck

import (
	"context"

	truckerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/truck/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateTruckRequest) (TruckResponse, error)
	GetAll(ctx context.Context, companyID string) ([]TruckResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TruckResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateTruckRequest) (TruckResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateTruckRequest) (TruckResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TruckResponse{}, truckerrors.ErrInvalidTruckID
	}

	t := &Truck{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		UnitNumber: req.UnitNumber,
		VIN:        req.VIN,
		Plate:      req.Plate,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Status:     StatusActive,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return TruckResponse{}, err
	}

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]TruckResponse, error) {
	trucks, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]TruckResponse, len(trucks))
	for i, t := range trucks {
		resp[i] = mapToResponse(t)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TruckResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TruckResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateTruckRequest) (TruckResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TruckResponse{}, err
	}

	if req.UnitNumber != "" {
		t.UnitNumber = req.UnitNumber
	}
	if req.VIN != "" {
		t.VIN = req.VIN
	}
	if req.Plate != "" {
		t.Plate = req.Plate
	}
	if req.Make != "" {
		t.Make = req.Make
	}
	if req.Model != "" {
		t.Model = req.Model
	}
	if req.Year != 0 {
		t.Year = req.Year
	}
	if req.Status != "" {
		t.Status = req.Status
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return TruckResponse{}, err
	}

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	return s.repo.Delete(ctx, companyID, id)
}

func mapToResponse(t Truck) TruckResponse {
	return TruckResponse{
		ID:         t.ID.String(),
		CompanyID:  t.CompanyID.String(),
		UnitNumber: t.UnitNumber,
		VIN:        t.VIN,
		Plate:      t.Plate,
		Make:       t.Make,
		Model:      t.Model,
		Year:       t.Year,
		Status:     t.Status,
	}
}
