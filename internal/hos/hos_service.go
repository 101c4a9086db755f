package hos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver"
	hoserrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/hos/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	StartDuty(ctx context.Context, companyID string, req StartDutyRequest) (DutyLogResponse, error)
	EndDuty(ctx context.Context, companyID string, req EndDutyRequest) (DutyLogResponse, error)
	GetDriverLogs(ctx context.Context, companyID, driverID string) ([]DutyLogResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	driverRepo driver.Repository
}

func NewService(db *sql.DB, repo Repository, driverRepo driver.Repository) Service {
	return &service{db: db, repo: repo, driverRepo: driverRepo}
}

// StartDuty opens a duty period. The first start of a new calendar day
// resets the driver's hours-remaining to the daily limit.
func (s *service) StartDuty(ctx context.Context, companyID string, req StartDutyRequest) (DutyLogResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DutyLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	driverQtx := s.driverRepo.WithTx(tx)

	d, err := driverQtx.FindByIDAndCompany(ctx, companyID, req.DriverID)
	if err != nil {
		return DutyLogResponse{}, err
	}

	open, err := qtx.FindOpenByDriver(ctx, companyID, req.DriverID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DutyLogResponse{}, err
	}
	if open != nil {
		return DutyLogResponse{}, hoserrors.ErrAlreadyOnDuty
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	sameDay, err := qtx.FindByDriverAndDate(ctx, companyID, req.DriverID, today)
	if err != nil {
		return DutyLogResponse{}, err
	}
	if len(sameDay) == 0 {
		d.HoursRemaining = driver.DailyDriveLimitHours
	}

	log := &DutyLog{
		ID:        uuid.New(),
		CompanyID: d.CompanyID,
		DriverID:  d.ID,
		DutyDate:  today,
		StartedAt: now,
		Notes:     req.Notes,
	}

	if err := qtx.Create(ctx, log); err != nil {
		return DutyLogResponse{}, err
	}

	d.Status = driver.StatusDriving
	if err := driverQtx.Update(ctx, d); err != nil {
		return DutyLogResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DutyLogResponse{}, err
	}

	return mapToResponse(*log, d.HoursRemaining), nil
}

// EndDuty closes the open duty period and deducts the elapsed hours from
// the driver's remaining allowance, clamping at zero.
func (s *service) EndDuty(ctx context.Context, companyID string, req EndDutyRequest) (DutyLogResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DutyLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	driverQtx := s.driverRepo.WithTx(tx)

	d, err := driverQtx.FindByIDAndCompany(ctx, companyID, req.DriverID)
	if err != nil {
		return DutyLogResponse{}, err
	}

	log, err := qtx.FindOpenByDriver(ctx, companyID, req.DriverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DutyLogResponse{}, hoserrors.ErrNotOnDuty
		}
		return DutyLogResponse{}, err
	}

	now := time.Now().UTC()
	hoursUsed := now.Sub(log.StartedAt).Hours()

	log.EndedAt = &now
	log.HoursUsed = hoursUsed
	if err := qtx.Update(ctx, log); err != nil {
		return DutyLogResponse{}, err
	}

	d.HoursRemaining -= hoursUsed
	if d.HoursRemaining < 0 {
		d.HoursRemaining = 0
	}
	d.Status = driver.StatusOffDuty
	if err := driverQtx.Update(ctx, d); err != nil {
		return DutyLogResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DutyLogResponse{}, err
	}

	return mapToResponse(*log, d.HoursRemaining), nil
}

func (s *service) GetDriverLogs(ctx context.Context, companyID, driverID string) ([]DutyLogResponse, error) {
	d, err := s.driverRepo.FindByIDAndCompany(ctx, companyID, driverID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.FindAllByDriver(ctx, companyID, driverID)
	if err != nil {
		return nil, err
	}

	resp := make([]DutyLogResponse, len(logs))
	for i, log := range logs {
		resp[i] = mapToResponse(log, d.HoursRemaining)
	}
	return resp, nil
}

func mapToResponse(log DutyLog, hoursRemaining float64) DutyLogResponse {
	resp := DutyLogResponse{
		ID:             log.ID.String(),
		CompanyID:      log.CompanyID.String(),
		DriverID:       log.DriverID.String(),
		DutyDate:       log.DutyDate.Format("2006-01-02"),
		StartedAt:      log.StartedAt.Format(time.RFC3339),
		HoursUsed:      log.HoursUsed,
		HoursRemaining: hoursRemaining,
	}
	if log.EndedAt != nil {
		v := log.EndedAt.Format(time.RFC3339)
		resp.EndedAt = &v
	}
	return resp
}
