package hos_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/hos"
	hoserrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/hos/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLogRepo struct {
	createFn      func(ctx context.Context, log *hos.DutyLog) error
	findOpenFn    func(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error)
	findByDateFn  func(ctx context.Context, companyID, driverID string, date time.Time) ([]hos.DutyLog, error)
	findAllFn     func(ctx context.Context, companyID, driverID string) ([]hos.DutyLog, error)
	updateFn      func(ctx context.Context, log *hos.DutyLog) error
}

func (f *fakeLogRepo) WithTx(tx *sql.Tx) hos.Repository { return f }
func (f *fakeLogRepo) Create(ctx context.Context, log *hos.DutyLog) error {
	return f.createFn(ctx, log)
}
func (f *fakeLogRepo) FindOpenByDriver(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error) {
	return f.findOpenFn(ctx, companyID, driverID)
}
func (f *fakeLogRepo) FindByDriverAndDate(ctx context.Context, companyID, driverID string, date time.Time) ([]hos.DutyLog, error) {
	return f.findByDateFn(ctx, companyID, driverID, date)
}
func (f *fakeLogRepo) FindAllByDriver(ctx context.Context, companyID, driverID string) ([]hos.DutyLog, error) {
	return f.findAllFn(ctx, companyID, driverID)
}
func (f *fakeLogRepo) Update(ctx context.Context, log *hos.DutyLog) error {
	return f.updateFn(ctx, log)
}

type fakeDriverRepo struct {
	driver.Repository
	byID    *driver.Driver
	updated *driver.Driver
}

func (f *fakeDriverRepo) WithTx(tx *sql.Tx) driver.Repository { return f }
func (f *fakeDriverRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*driver.Driver, error) {
	return f.byID, nil
}
func (f *fakeDriverRepo) Update(ctx context.Context, d *driver.Driver) error {
	f.updated = d
	return nil
}

func TestHOSService_StartDuty_ResetsDailyAllowance(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	d := &driver.Driver{ID: uuid.New(), CompanyID: uuid.New(), HoursRemaining: 3.0}
	repo := &fakeLogRepo{
		findOpenFn: func(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error) {
			return nil, gorm.ErrRecordNotFound
		},
		findByDateFn: func(ctx context.Context, companyID, driverID string, date time.Time) ([]hos.DutyLog, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, log *hos.DutyLog) error { return nil },
	}
	drivers := &fakeDriverRepo{byID: d}
	svc := hos.NewService(db, repo, drivers)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.StartDuty(context.Background(), d.CompanyID.String(), hos.StartDutyRequest{
		DriverID: d.ID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, driver.DailyDriveLimitHours, resp.HoursRemaining)
	assert.NotNil(t, drivers.updated)
	assert.Equal(t, driver.StatusDriving, drivers.updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHOSService_StartDuty_RejectsWhenAlreadyOnDuty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	d := &driver.Driver{ID: uuid.New(), CompanyID: uuid.New()}
	repo := &fakeLogRepo{
		findOpenFn: func(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error) {
			return &hos.DutyLog{ID: uuid.New(), DriverID: d.ID}, nil
		},
	}
	svc := hos.NewService(db, repo, &fakeDriverRepo{byID: d})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.StartDuty(context.Background(), d.CompanyID.String(), hos.StartDutyRequest{
		DriverID: d.ID.String(),
	})
	assert.ErrorIs(t, err, hoserrors.ErrAlreadyOnDuty)
}

func TestHOSService_EndDuty_DeductsElapsedHours(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	d := &driver.Driver{ID: uuid.New(), CompanyID: uuid.New(), HoursRemaining: 11.0, Status: driver.StatusDriving}
	started := time.Now().UTC().Add(-2 * time.Hour)
	open := &hos.DutyLog{ID: uuid.New(), CompanyID: d.CompanyID, DriverID: d.ID, StartedAt: started}

	var closed *hos.DutyLog
	repo := &fakeLogRepo{
		findOpenFn: func(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error) {
			return open, nil
		},
		updateFn: func(ctx context.Context, log *hos.DutyLog) error {
			closed = log
			return nil
		},
	}
	drivers := &fakeDriverRepo{byID: d}
	svc := hos.NewService(db, repo, drivers)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.EndDuty(context.Background(), d.CompanyID.String(), hos.EndDutyRequest{
		DriverID: d.ID.String(),
	})
	assert.NoError(t, err)
	assert.NotNil(t, closed)
	assert.NotNil(t, closed.EndedAt)
	assert.InDelta(t, 2.0, closed.HoursUsed, 0.05)
	assert.InDelta(t, 9.0, resp.HoursRemaining, 0.05)
	assert.Equal(t, driver.StatusOffDuty, drivers.updated.Status)
}

func TestHOSService_EndDuty_ClampsRemainingAtZero(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	d := &driver.Driver{ID: uuid.New(), CompanyID: uuid.New(), HoursRemaining: 2.0}
	open := &hos.DutyLog{
		ID:        uuid.New(),
		CompanyID: d.CompanyID,
		DriverID:  d.ID,
		StartedAt: time.Now().UTC().Add(-5 * time.Hour),
	}
	repo := &fakeLogRepo{
		findOpenFn: func(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error) {
			return open, nil
		},
		updateFn: func(ctx context.Context, log *hos.DutyLog) error { return nil },
	}
	svc := hos.NewService(db, repo, &fakeDriverRepo{byID: d})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.EndDuty(context.Background(), d.CompanyID.String(), hos.EndDutyRequest{
		DriverID: d.ID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, resp.HoursRemaining)
}

func TestHOSService_EndDuty_NotOnDuty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	d := &driver.Driver{ID: uuid.New(), CompanyID: uuid.New()}
	repo := &fakeLogRepo{
		findOpenFn: func(ctx context.Context, companyID, driverID string) (*hos.DutyLog, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := hos.NewService(db, repo, &fakeDriverRepo{byID: d})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.EndDuty(context.Background(), d.CompanyID.String(), hos.EndDutyRequest{
		DriverID: d.ID.String(),
	})
	assert.ErrorIs(t, err, hoserrors.ErrNotOnDuty)
}
