package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/employee"
	payrollerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/payroll/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Flat withholding applied to every stub. Jurisdiction-aware tax tables
// would replace this constant.
var withholdingRate = decimal.NewFromFloat(0.22)

// Hourly employees are paid for a standard day per weekday in the period.
const hoursPerWeekday = 8

type Service interface {
	CreateRun(ctx context.Context, companyID, actorID string, req CreateRunRequest) (RunResponse, error)
	GetAll(ctx context.Context, companyID string) ([]RunResponse, error)
	GetByID(ctx context.Context, companyID, id string) (RunResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (RunResponse, error)
	MarkPaid(ctx context.Context, companyID, actorID, id string) (RunResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	sync         SyncProvider
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	sync SyncProvider,
	logger ...*zap.Logger,
) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if sync == nil {
		sync = NewNoopSyncProvider()
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		sync:         sync,
		logger:       l.Named("payroll.service"),
	}
}

func (s *service) CreateRun(ctx context.Context, companyID, actorID string, req CreateRunRequest) (RunResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	periodStart, err := time.Parse(dateLayout, req.PeriodStart)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	periodEnd, err := time.Parse(dateLayout, req.PeriodEnd)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	if periodEnd.Before(periodStart) {
		return RunResponse{}, payrollerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingRun(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return RunResponse{}, err
	}
	if overlap {
		return RunResponse{}, payrollerrors.ErrRunOverlap
	}

	employees, err := s.employeeRepo.FindActiveByCompany(ctx, companyID)
	if err != nil {
		return RunResponse{}, err
	}
	if len(employees) == 0 {
		return RunResponse{}, payrollerrors.ErrNoActiveEmployees
	}

	run := &PayrollRun{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      StatusDraft,
		CreatedBy:   actorUUID,
	}

	stubs := make([]EmployeePaystub, 0, len(employees))
	totalGross := money.Zero()
	totalDeductions := money.Zero()
	totalNet := money.Zero()

	weekdays := countWeekdays(periodStart, periodEnd)
	for _, emp := range employees {
		gross := grossFor(emp, weekdays)
		deductions := gross.Mul(withholdingRate)
		net := gross.Sub(deductions)

		ytdGross, ytdNet, err := qtx.SumYearToDate(ctx, companyID, emp.ID.String(), periodEnd)
		if err != nil {
			return RunResponse{}, err
		}

		stubs = append(stubs, EmployeePaystub{
			ID:           uuid.New(),
			CompanyID:    companyUUID,
			PayrollRunID: run.ID,
			EmployeeID:   emp.ID,
			PeriodEnd:    periodEnd,
			GrossPay:     gross,
			Deductions:   deductions,
			NetPay:       net,
			YTDGross:     ytdGross.Add(gross),
			YTDNet:       ytdNet.Add(net),
		})

		totalGross = totalGross.Add(gross)
		totalDeductions = totalDeductions.Add(deductions)
		totalNet = totalNet.Add(net)
	}

	run.TotalGross = totalGross
	run.TotalDeductions = totalDeductions
	run.TotalNet = totalNet

	if err := qtx.CreateRun(ctx, run); err != nil {
		return RunResponse{}, err
	}
	if err := qtx.CreateStubs(ctx, stubs); err != nil {
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("payroll run created",
		zap.String("run_id", run.ID.String()),
		zap.String("company_id", companyID),
		zap.Int("paystubs", len(stubs)),
		zap.String("total_net", totalNet.String()),
	)

	return toRunResponse(run, stubs), nil
}

// grossFor treats a salaried pay rate as the amount per pay period.
func grossFor(emp employee.Employee, weekdays int) money.Money {
	if emp.PayType == employee.PayTypeHourly {
		hours := decimal.NewFromInt(int64(weekdays * hoursPerWeekday))
		return emp.PayRate.Mul(hours)
	}
	return emp.PayRate
}

func countWeekdays(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]RunResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, payrollerrors.ErrInvalidCompanyID
	}
	runs, err := s.repo.FindRunsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	responses := make([]RunResponse, 0, len(runs))
	for i := range runs {
		responses = append(responses, toRunResponse(&runs[i], nil))
	}
	return responses, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RunResponse, error) {
	run, err := s.findRun(ctx, companyID, id)
	if err != nil {
		return RunResponse{}, err
	}
	stubs, err := s.repo.FindStubsByRun(ctx, companyID, id)
	if err != nil {
		return RunResponse{}, err
	}
	return toRunResponse(run, stubs), nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (RunResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	run, err := s.findRun(ctx, companyID, id)
	if err != nil {
		return RunResponse{}, err
	}
	if run.Status != StatusDraft {
		return RunResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	run.Status = StatusApproved
	run.ApprovedBy = &actorUUID
	run.ApprovedAt = &now

	if err := s.repo.UpdateRun(ctx, run); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("payroll run approved",
		zap.String("run_id", run.ID.String()),
		zap.String("approved_by", actorID),
	)
	return toRunResponse(run, nil), nil
}

func (s *service) MarkPaid(ctx context.Context, companyID, actorID, id string) (RunResponse, error) {
	if _, err := uuid.Parse(actorID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}
	run, err := s.findRun(ctx, companyID, id)
	if err != nil {
		return RunResponse{}, err
	}
	if run.Status != StatusApproved {
		return RunResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := time.Now().UTC()
	run.Status = StatusPaid
	run.PaidAt = &now

	if err := s.repo.UpdateRun(ctx, run); err != nil {
		return RunResponse{}, err
	}

	stubs, err := s.repo.FindStubsByRun(ctx, companyID, id)
	if err != nil {
		s.logger.Warn("payroll sync skipped, could not load paystubs",
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
		return toRunResponse(run, nil), nil
	}

	// External sync is best effort. The run stays PAID either way.
	if err := s.sync.SyncRun(ctx, run, stubs); err != nil {
		s.logger.Warn("payroll provider sync failed",
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
	}

	return toRunResponse(run, stubs), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	run, err := s.findRun(ctx, companyID, id)
	if err != nil {
		return err
	}
	if run.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}
	if err := s.repo.DeleteRun(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payrollerrors.ErrRunNotFound
		}
		return err
	}
	return nil
}

func (s *service) findRun(ctx context.Context, companyID, id string) (*PayrollRun, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, payrollerrors.ErrInvalidCompanyID
	}
	run, err := s.repo.FindRunByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

func toRunResponse(run *PayrollRun, stubs []EmployeePaystub) RunResponse {
	resp := RunResponse{
		ID:              run.ID.String(),
		CompanyID:       run.CompanyID.String(),
		PeriodStart:     run.PeriodStart.Format(dateLayout),
		PeriodEnd:       run.PeriodEnd.Format(dateLayout),
		TotalGross:      run.TotalGross.String(),
		TotalDeductions: run.TotalDeductions.String(),
		TotalNet:        run.TotalNet.String(),
		Status:          run.Status,
		CreatedBy:       run.CreatedBy.String(),
	}
	if run.ApprovedBy != nil {
		v := run.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if run.ApprovedAt != nil {
		v := run.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if run.PaidAt != nil {
		v := run.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	for _, stub := range stubs {
		resp.Paystubs = append(resp.Paystubs, PaystubResponse{
			ID:         stub.ID.String(),
			EmployeeID: stub.EmployeeID.String(),
			GrossPay:   stub.GrossPay.String(),
			Deductions: stub.Deductions.String(),
			NetPay:     stub.NetPay.String(),
			YTDGross:   stub.YTDGross.String(),
			YTDNet:     stub.YTDNet.String(),
		})
	}
	return resp
}
