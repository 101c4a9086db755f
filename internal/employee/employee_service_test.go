package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/employee"
	employeeerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/employee/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, e *employee.Employee) error
	findAllFn     func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findActiveFn  func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findOptionsFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findByIDFn    func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn      func(ctx context.Context, e *employee.Employee) error
	deleteFn      func(ctx context.Context, companyID, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, e *employee.Employee) error {
	return f.createFn(ctx, e)
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.findAllFn(ctx, companyID)
}
func (f *fakeRepo) FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.findActiveFn(ctx, companyID)
}
func (f *fakeRepo) FindOptionsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.findOptionsFn(ctx, companyID)
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, companyID, id)
}
func (f *fakeRepo) Update(ctx context.Context, e *employee.Employee) error {
	return f.updateFn(ctx, e)
}
func (f *fakeRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func TestEmployeeService_Create_GeneratesNumberAndEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var created *employee.Employee
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		},
	}
	outbox := &fakeOutbox{}
	svc := employee.NewServiceWithOutbox(db, repo, &fakeCounter{}, outbox, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), uuid.NewString(), employee.CreateEmployeeRequest{
		FullName: "Dana Whitfield",
		Email:    "dana@freightops.test",
		Title:    "Dispatcher",
		PayRate:  money.FromFloat(28.50),
		PayType:  employee.PayTypeHourly,
		HireDate: "2026-03-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000001", resp.EmployeeNumber)
	assert.Equal(t, employee.StatusActive, resp.Status)
	assert.Equal(t, "28.50", resp.PayRate)
	assert.Equal(t, "2026-03-15", resp.HireDate)

	assert.NotNil(t, created)
	assert.Len(t, outbox.created, 1)
	assert.Equal(t, "employee_created", outbox.created[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Create_KeepsSuppliedNumber(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *employee.Employee) error { return nil },
	}
	svc := employee.NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(context.Background(), uuid.NewString(), employee.CreateEmployeeRequest{
		EmployeeNumber: "EMP-900001",
		FullName:       "Dana Whitfield",
		Email:          "dana@freightops.test",
		HireDate:       "2026-03-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP-900001", resp.EmployeeNumber)
	assert.Equal(t, employee.PayTypeSalary, resp.PayType)
}

func TestEmployeeService_Create_RejectsNegativePayRate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := employee.NewService(db, &fakeRepo{}, &fakeCounter{}, nil)

	_, err := svc.Create(context.Background(), uuid.NewString(), employee.CreateEmployeeRequest{
		FullName: "Dana Whitfield",
		Email:    "dana@freightops.test",
		PayRate:  money.FromFloat(-1),
		HireDate: "2026-03-15",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrNegativePayRate)
}

func TestEmployeeService_Create_MapsDuplicateEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
		},
	}
	svc := employee.NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), uuid.NewString(), employee.CreateEmployeeRequest{
		FullName: "Dana Whitfield",
		Email:    "dana@freightops.test",
		HireDate: "2026-03-15",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, companyID, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := employee.NewService(db, repo, &fakeCounter{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update_AppliesStatusChange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	existing := &employee.Employee{
		ID:             uuid.New(),
		CompanyID:      uuid.New(),
		EmployeeNumber: "EMP-000007",
		FullName:       "Dana Whitfield",
		Email:          "dana@freightops.test",
		PayType:        employee.PayTypeSalary,
		Status:         employee.StatusActive,
	}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, companyID, id string) (*employee.Employee, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, e *employee.Employee) error { return nil },
	}
	svc := employee.NewService(db, repo, &fakeCounter{}, nil)

	resp, err := svc.Update(context.Background(), existing.CompanyID.String(), existing.ID.String(), employee.UpdateEmployeeRequest{
		FullName: "Dana Whitfield",
		Email:    "dana@freightops.test",
		PayRate:  money.FromFloat(72000),
		Status:   employee.StatusOnLeave,
	})
	assert.NoError(t, err)
	assert.Equal(t, employee.StatusOnLeave, resp.Status)
	assert.Equal(t, "72000.00", resp.PayRate)
}

func TestEmployeeService_GetOptions_WorksWithoutRedis(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context, companyID string) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: uuid.New(), CompanyID: uuid.New(), FullName: "Dana Whitfield", EmployeeNumber: "EMP-000001"},
			}, nil
		},
	}
	svc := employee.NewService(db, repo, &fakeCounter{}, nil)

	resp, err := svc.GetOptions(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Dana Whitfield", resp[0].FullName)
}
