package driver

import (
	"context"
	"errors"
	"time"

	drivererrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, companyID string, req CreateDriverRequest) (DriverResponse, error)
	GetAll(ctx context.Context, companyID string) ([]DriverResponse, error)
	GetAvailable(ctx context.Context, companyID string) ([]DriverResponse, error)
	GetByID(ctx context.Context, companyID, id string) (DriverResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateDriverRequest) (DriverResponse, error)
	SetStatus(ctx context.Context, companyID, id string, req SetDriverStatusRequest) (DriverResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateDriverRequest) (DriverResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return DriverResponse{}, drivererrors.ErrInvalidDriverID
	}

	payRate := decimal.Zero
	if req.PayRate != "" {
		payRate, err = decimal.NewFromString(req.PayRate)
		if err != nil {
			return DriverResponse{}, errors.New("invalid pay_rate, expected a decimal number")
		}
	}

	payType := req.PayType
	if payType == "" {
		payType = PayTypePerMile
	}

	d := &Driver{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		LicenseNumber:  req.LicenseNumber,
		LicenseClass:   req.LicenseClass,
		PayRate:        payRate,
		PayType:        payType,
		Status:         StatusAvailable,
		HoursRemaining: DailyDriveLimitHours,
	}

	if req.LicenseExpiry != "" {
		expiry, err := time.Parse("2006-01-02", req.LicenseExpiry)
		if err != nil {
			return DriverResponse{}, errors.New("invalid license_expiry format, expected YYYY-MM-DD")
		}
		d.LicenseExpiry = &expiry
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return DriverResponse{}, err
	}

	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]DriverResponse, error) {
	drivers, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(drivers), nil
}

func (s *service) GetAvailable(ctx context.Context, companyID string) ([]DriverResponse, error) {
	drivers, err := s.repo.FindByStatus(ctx, companyID, StatusAvailable)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(drivers), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (DriverResponse, error) {
	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DriverResponse{}, err
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateDriverRequest) (DriverResponse, error) {
	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DriverResponse{}, err
	}

	if req.Name != "" {
		d.Name = req.Name
	}
	if req.Phone != "" {
		d.Phone = req.Phone
	}
	if req.Email != "" {
		d.Email = req.Email
	}
	if req.LicenseNumber != "" {
		d.LicenseNumber = req.LicenseNumber
	}
	if req.LicenseClass != "" {
		d.LicenseClass = req.LicenseClass
	}
	if req.LicenseExpiry != "" {
		expiry, err := time.Parse("2006-01-02", req.LicenseExpiry)
		if err != nil {
			return DriverResponse{}, errors.New("invalid license_expiry format, expected YYYY-MM-DD")
		}
		d.LicenseExpiry = &expiry
	}
	if req.PayRate != "" {
		payRate, err := decimal.NewFromString(req.PayRate)
		if err != nil {
			return DriverResponse{}, errors.New("invalid pay_rate, expected a decimal number")
		}
		d.PayRate = payRate
	}
	if req.PayType != "" {
		d.PayType = req.PayType
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return DriverResponse{}, err
	}

	return mapToResponse(*d), nil
}

func (s *service) SetStatus(ctx context.Context, companyID, id string, req SetDriverStatusRequest) (DriverResponse, error) {
	switch req.Status {
	case StatusAvailable, StatusAssigned, StatusDriving, StatusOffDuty, StatusInactive:
	default:
		return DriverResponse{}, drivererrors.ErrInvalidStatus
	}

	d, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DriverResponse{}, err
	}

	d.Status = req.Status
	if err := s.repo.Update(ctx, d); err != nil {
		return DriverResponse{}, err
	}

	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	return s.repo.Delete(ctx, companyID, id)
}

func mapToResponse(d Driver) DriverResponse {
	resp := DriverResponse{
		ID:             d.ID.String(),
		CompanyID:      d.CompanyID.String(),
		Name:           d.Name,
		Phone:          d.Phone,
		Email:          d.Email,
		LicenseNumber:  d.LicenseNumber,
		LicenseClass:   d.LicenseClass,
		PayRate:        d.PayRate.String(),
		PayType:        d.PayType,
		Status:         d.Status,
		HoursRemaining: d.HoursRemaining,
	}

	if d.LicenseExpiry != nil {
		v := d.LicenseExpiry.Format("2006-01-02")
		resp.LicenseExpiry = &v
	}

	return resp
}

func mapToListResponse(drivers []Driver) []DriverResponse {
	resp := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		resp[i] = mapToResponse(d)
	}
	return resp
}
