package payroll_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/employee"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/payroll"
	payrollerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/payroll/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollRepo struct {
	createRunFn   func(ctx context.Context, run *payroll.PayrollRun) error
	createStubsFn func(ctx context.Context, stubs []payroll.EmployeePaystub) error
	findRunsFn    func(ctx context.Context, companyID string) ([]payroll.PayrollRun, error)
	findRunFn     func(ctx context.Context, companyID, id string) (*payroll.PayrollRun, error)
	findStubsFn   func(ctx context.Context, companyID, runID string) ([]payroll.EmployeePaystub, error)
	sumYTDFn      func(ctx context.Context, companyID, employeeID string, before time.Time) (money.Money, money.Money, error)
	updateRunFn   func(ctx context.Context, run *payroll.PayrollRun) error
	deleteRunFn   func(ctx context.Context, companyID, id string) error
	hasOverlapFn  func(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (bool, error)
}

func (f *fakePayrollRepo) WithTx(tx *sql.Tx) payroll.Repository { return f }
func (f *fakePayrollRepo) CreateRun(ctx context.Context, run *payroll.PayrollRun) error {
	return f.createRunFn(ctx, run)
}
func (f *fakePayrollRepo) CreateStubs(ctx context.Context, stubs []payroll.EmployeePaystub) error {
	return f.createStubsFn(ctx, stubs)
}
func (f *fakePayrollRepo) FindRunsByCompany(ctx context.Context, companyID string) ([]payroll.PayrollRun, error) {
	return f.findRunsFn(ctx, companyID)
}
func (f *fakePayrollRepo) FindRunByIDAndCompany(ctx context.Context, companyID, id string) (*payroll.PayrollRun, error) {
	return f.findRunFn(ctx, companyID, id)
}
func (f *fakePayrollRepo) FindStubsByRun(ctx context.Context, companyID, runID string) ([]payroll.EmployeePaystub, error) {
	return f.findStubsFn(ctx, companyID, runID)
}
func (f *fakePayrollRepo) SumYearToDate(ctx context.Context, companyID, employeeID string, before time.Time) (money.Money, money.Money, error) {
	if f.sumYTDFn == nil {
		return money.Zero(), money.Zero(), nil
	}
	return f.sumYTDFn(ctx, companyID, employeeID, before)
}
func (f *fakePayrollRepo) UpdateRun(ctx context.Context, run *payroll.PayrollRun) error {
	return f.updateRunFn(ctx, run)
}
func (f *fakePayrollRepo) DeleteRun(ctx context.Context, companyID, id string) error {
	return f.deleteRunFn(ctx, companyID, id)
}
func (f *fakePayrollRepo) HasOverlappingRun(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (bool, error) {
	if f.hasOverlapFn == nil {
		return false, nil
	}
	return f.hasOverlapFn(ctx, companyID, periodStart, periodEnd)
}

type fakeEmployeeRepo struct {
	employee.Repository
	activeFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.activeFn(ctx, companyID)
}

type fakeSync struct {
	synced []string
	err    error
}

func (f *fakeSync) SyncRun(ctx context.Context, run *payroll.PayrollRun, stubs []payroll.EmployeePaystub) error {
	if f.err != nil {
		return f.err
	}
	f.synced = append(f.synced, run.ID.String())
	return nil
}

func activeStaff(hourly, salaried uuid.UUID) []employee.Employee {
	return []employee.Employee{
		{ID: hourly, PayRate: money.FromFloat(20), PayType: employee.PayTypeHourly},
		{ID: salaried, PayRate: money.FromFloat(3000), PayType: employee.PayTypeSalary},
	}
}

func TestPayrollService_CreateRun_GeneratesStubsWithYTD(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	hourlyID := uuid.New()
	salariedID := uuid.New()

	var createdRun *payroll.PayrollRun
	var createdStubs []payroll.EmployeePaystub
	repo := &fakePayrollRepo{
		createRunFn: func(ctx context.Context, run *payroll.PayrollRun) error {
			createdRun = run
			return nil
		},
		createStubsFn: func(ctx context.Context, stubs []payroll.EmployeePaystub) error {
			createdStubs = stubs
			return nil
		},
		sumYTDFn: func(ctx context.Context, companyID, employeeID string, before time.Time) (money.Money, money.Money, error) {
			if employeeID == hourlyID.String() {
				return money.FromFloat(1000), money.FromFloat(780), nil
			}
			return money.Zero(), money.Zero(), nil
		},
	}
	employees := &fakeEmployeeRepo{
		activeFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
			return activeStaff(hourlyID, salariedID), nil
		},
	}

	svc := payroll.NewService(db, repo, employees, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	// Mon 2026-03-02 through Fri 2026-03-06, five weekdays.
	resp, err := svc.CreateRun(context.Background(), uuid.NewString(), uuid.NewString(), payroll.CreateRunRequest{
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-06",
	})
	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusDraft, resp.Status)

	// Hourly: 20 x 40h = 800 gross. Salaried: 3000 per period.
	assert.Equal(t, "3800.00", resp.TotalGross)
	assert.Equal(t, "836.00", resp.TotalDeductions)
	assert.Equal(t, "2964.00", resp.TotalNet)

	assert.NotNil(t, createdRun)
	assert.Len(t, createdStubs, 2)

	byEmployee := map[string]payroll.EmployeePaystub{}
	for _, s := range createdStubs {
		byEmployee[s.EmployeeID.String()] = s
	}
	hourlyStub := byEmployee[hourlyID.String()]
	assert.Equal(t, "800.00", hourlyStub.GrossPay.String())
	assert.Equal(t, "176.00", hourlyStub.Deductions.String())
	assert.Equal(t, "624.00", hourlyStub.NetPay.String())
	assert.Equal(t, "1800.00", hourlyStub.YTDGross.String())
	assert.Equal(t, "1404.00", hourlyStub.YTDNet.String())

	salariedStub := byEmployee[salariedID.String()]
	assert.Equal(t, "3000.00", salariedStub.GrossPay.String())
	assert.Equal(t, "3000.00", salariedStub.YTDGross.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollService_CreateRun_RejectsOverlap(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakePayrollRepo{
		hasOverlapFn: func(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (bool, error) {
			return true, nil
		},
	}
	svc := payroll.NewService(db, repo, &fakeEmployeeRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.CreateRun(context.Background(), uuid.NewString(), uuid.NewString(), payroll.CreateRunRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrRunOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollService_CreateRun_RequiresActiveEmployees(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakePayrollRepo{}
	employees := &fakeEmployeeRepo{
		activeFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
			return nil, nil
		},
	}
	svc := payroll.NewService(db, repo, employees, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.CreateRun(context.Background(), uuid.NewString(), uuid.NewString(), payroll.CreateRunRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrNoActiveEmployees)
}

func TestPayrollService_CreateRun_RejectsInvertedPeriod(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := payroll.NewService(db, &fakePayrollRepo{}, &fakeEmployeeRepo{}, nil)

	_, err := svc.CreateRun(context.Background(), uuid.NewString(), uuid.NewString(), payroll.CreateRunRequest{
		PeriodStart: "2026-03-15",
		PeriodEnd:   "2026-03-01",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)
}

func TestPayrollService_ApproveThenMarkPaid(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	run := &payroll.PayrollRun{
		ID:        uuid.New(),
		CompanyID: companyID,
		Status:    payroll.StatusDraft,
		CreatedBy: uuid.New(),
	}
	repo := &fakePayrollRepo{
		findRunFn: func(ctx context.Context, cid, id string) (*payroll.PayrollRun, error) {
			return run, nil
		},
		findStubsFn: func(ctx context.Context, cid, runID string) ([]payroll.EmployeePaystub, error) {
			return []payroll.EmployeePaystub{{ID: uuid.New()}}, nil
		},
		updateRunFn: func(ctx context.Context, r *payroll.PayrollRun) error {
			run = r
			return nil
		},
	}
	sync := &fakeSync{}
	svc := payroll.NewService(db, repo, &fakeEmployeeRepo{}, sync)

	actorID := uuid.NewString()
	approved, err := svc.Approve(context.Background(), companyID.String(), actorID, run.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, actorID, *approved.ApprovedBy)

	paid, err := svc.MarkPaid(context.Background(), companyID.String(), actorID, run.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)
	assert.Equal(t, []string{run.ID.String()}, sync.synced)
}

func TestPayrollService_MarkPaid_RequiresApproved(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakePayrollRepo{
		findRunFn: func(ctx context.Context, cid, id string) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: uuid.New(), Status: payroll.StatusDraft}, nil
		},
	}
	svc := payroll.NewService(db, repo, &fakeEmployeeRepo{}, nil)

	_, err := svc.MarkPaid(context.Background(), uuid.NewString(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
}

func TestPayrollService_MarkPaid_SyncFailureStillPaid(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	run := &payroll.PayrollRun{ID: uuid.New(), Status: payroll.StatusApproved}
	repo := &fakePayrollRepo{
		findRunFn: func(ctx context.Context, cid, id string) (*payroll.PayrollRun, error) {
			return run, nil
		},
		findStubsFn: func(ctx context.Context, cid, runID string) ([]payroll.EmployeePaystub, error) {
			return nil, nil
		},
		updateRunFn: func(ctx context.Context, r *payroll.PayrollRun) error { return nil },
	}
	sync := &fakeSync{err: errors.New("provider unavailable")}
	svc := payroll.NewService(db, repo, &fakeEmployeeRepo{}, sync)

	resp, err := svc.MarkPaid(context.Background(), uuid.NewString(), uuid.NewString(), run.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, resp.Status)
}

func TestPayrollService_Delete_OnlyDraft(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakePayrollRepo{
		findRunFn: func(ctx context.Context, cid, id string) (*payroll.PayrollRun, error) {
			return &payroll.PayrollRun{ID: uuid.New(), Status: payroll.StatusPaid}, nil
		},
	}
	svc := payroll.NewService(db, repo, &fakeEmployeeRepo{}, nil)

	err := svc.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, payrollerrors.ErrDeleteOnlyDraft)
}
