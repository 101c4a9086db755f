package driver_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver"
	drivererrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, d *driver.Driver) error
	findByIDFn func(ctx context.Context, companyID, id string) (*driver.Driver, error)
	updateFn   func(ctx context.Context, d *driver.Driver) error
	byStatusFn func(ctx context.Context, companyID, status string) ([]driver.Driver, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) driver.Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, d *driver.Driver) error {
	return f.createFn(ctx, d)
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]driver.Driver, error) {
	return nil, nil
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*driver.Driver, error) {
	return f.findByIDFn(ctx, companyID, id)
}
func (f *fakeRepo) FindByStatus(ctx context.Context, companyID, status string) ([]driver.Driver, error) {
	return f.byStatusFn(ctx, companyID, status)
}
func (f *fakeRepo) Update(ctx context.Context, d *driver.Driver) error {
	return f.updateFn(ctx, d)
}
func (f *fakeRepo) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

func TestDriverService_Create_Defaults(t *testing.T) {
	var created *driver.Driver
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *driver.Driver) error {
			created = d
			return nil
		},
	}
	svc := driver.NewService(repo)

	resp, err := svc.Create(context.Background(), uuid.NewString(), driver.CreateDriverRequest{
		Name:          "Ray Calloway",
		LicenseNumber: "CDL-55821",
		PayRate:       "0.62",
	})
	assert.NoError(t, err)
	assert.Equal(t, driver.StatusAvailable, resp.Status)
	assert.Equal(t, driver.PayTypePerMile, resp.PayType)
	assert.Equal(t, driver.DailyDriveLimitHours, resp.HoursRemaining)
	assert.NotNil(t, created)
	assert.Equal(t, "0.62", created.PayRate.String())
}

func TestDriverService_Create_RejectsBadPayRate(t *testing.T) {
	svc := driver.NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), uuid.NewString(), driver.CreateDriverRequest{
		Name:          "Ray Calloway",
		LicenseNumber: "CDL-55821",
		PayRate:       "sixty cents",
	})
	assert.Error(t, err)
}

func TestDriverService_SetStatus(t *testing.T) {
	d := &driver.Driver{ID: uuid.New(), CompanyID: uuid.New(), Status: driver.StatusAvailable}
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, companyID, id string) (*driver.Driver, error) {
			return d, nil
		},
		updateFn: func(ctx context.Context, updated *driver.Driver) error { return nil },
	}
	svc := driver.NewService(repo)

	resp, err := svc.SetStatus(context.Background(), d.CompanyID.String(), d.ID.String(), driver.SetDriverStatusRequest{
		Status: driver.StatusAssigned,
	})
	assert.NoError(t, err)
	assert.Equal(t, driver.StatusAssigned, resp.Status)
}

func TestDriverService_SetStatus_RejectsUnknown(t *testing.T) {
	svc := driver.NewService(&fakeRepo{})

	_, err := svc.SetStatus(context.Background(), uuid.NewString(), uuid.NewString(), driver.SetDriverStatusRequest{
		Status: "vacation",
	})
	assert.ErrorIs(t, err, drivererrors.ErrInvalidStatus)
}

func TestDriverService_GetAvailable_FiltersByStatus(t *testing.T) {
	repo := &fakeRepo{
		byStatusFn: func(ctx context.Context, companyID, status string) ([]driver.Driver, error) {
			assert.Equal(t, driver.StatusAvailable, status)
			return []driver.Driver{{ID: uuid.New(), Name: "Ray Calloway", Status: status}}, nil
		},
	}
	svc := driver.NewService(repo)

	resp, err := svc.GetAvailable(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, driver.StatusAvailable, resp[0].Status)
}
