package dispatch

import (
	"context"
	"database/sql"
	"testing"
	"time"

	dispatcherrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn              func(tx *sql.Tx) Repository
	createLoadFn          func(ctx context.Context, l *Load) error
	findLoadsFn           func(ctx context.Context, companyID, status string) ([]Load, error)
	findLoadByIDFn        func(ctx context.Context, companyID, id string) (*Load, error)
	updateLoadFn          func(ctx context.Context, l *Load) error
	createLegsFn          func(ctx context.Context, legs []DispatchLeg) error
	findLegsByLoadFn      func(ctx context.Context, companyID, loadID string) ([]DispatchLeg, error)
	findLegByIDFn         func(ctx context.Context, companyID, legID string) (*DispatchLeg, error)
	updateLegFn           func(ctx context.Context, leg *DispatchLeg) error
	countIncompleteFn     func(ctx context.Context, companyID, loadID string) (int64, error)
	createAssignmentsFn   func(ctx context.Context, assignments []LoadAssignment) error
	findAssignByDriverFn  func(ctx context.Context, companyID, driverID string) ([]LoadAssignment, error)
	findAssignByLoadFn    func(ctx context.Context, companyID, loadID string) ([]LoadAssignment, error)
	findCalendarFn        func(ctx context.Context, companyID string, start, end time.Time) ([]CalendarRow, error)
	findIncompleteByDrvFn func(ctx context.Context, companyID, driverID string) ([]MobileLegRow, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) CreateLoad(ctx context.Context, l *Load) error { return f.createLoadFn(ctx, l) }
func (f *fakeRepo) FindLoadsByCompany(ctx context.Context, companyID, status string) ([]Load, error) {
	return f.findLoadsFn(ctx, companyID, status)
}
func (f *fakeRepo) FindLoadByID(ctx context.Context, companyID, id string) (*Load, error) {
	return f.findLoadByIDFn(ctx, companyID, id)
}
func (f *fakeRepo) UpdateLoad(ctx context.Context, l *Load) error { return f.updateLoadFn(ctx, l) }
func (f *fakeRepo) CreateLegs(ctx context.Context, legs []DispatchLeg) error {
	return f.createLegsFn(ctx, legs)
}
func (f *fakeRepo) FindLegsByLoad(ctx context.Context, companyID, loadID string) ([]DispatchLeg, error) {
	return f.findLegsByLoadFn(ctx, companyID, loadID)
}
func (f *fakeRepo) FindLegByID(ctx context.Context, companyID, legID string) (*DispatchLeg, error) {
	return f.findLegByIDFn(ctx, companyID, legID)
}
func (f *fakeRepo) UpdateLeg(ctx context.Context, leg *DispatchLeg) error {
	return f.updateLegFn(ctx, leg)
}
func (f *fakeRepo) CountIncompleteLegs(ctx context.Context, companyID, loadID string) (int64, error) {
	return f.countIncompleteFn(ctx, companyID, loadID)
}
func (f *fakeRepo) CreateAssignments(ctx context.Context, assignments []LoadAssignment) error {
	return f.createAssignmentsFn(ctx, assignments)
}
func (f *fakeRepo) FindAssignmentsByDriver(ctx context.Context, companyID, driverID string) ([]LoadAssignment, error) {
	return f.findAssignByDriverFn(ctx, companyID, driverID)
}
func (f *fakeRepo) FindAssignmentsByLoad(ctx context.Context, companyID, loadID string) ([]LoadAssignment, error) {
	return f.findAssignByLoadFn(ctx, companyID, loadID)
}
func (f *fakeRepo) FindCalendarRows(ctx context.Context, companyID string, start, end time.Time) ([]CalendarRow, error) {
	return f.findCalendarFn(ctx, companyID, start, end)
}
func (f *fakeRepo) FindIncompleteLegsByDriver(ctx context.Context, companyID, driverID string) ([]MobileLegRow, error) {
	return f.findIncompleteByDrvFn(ctx, companyID, driverID)
}

type fakeDriverRepo struct {
	drivers map[string]*driver.Driver
	updated []string
}

func (f *fakeDriverRepo) WithTx(tx *sql.Tx) driver.Repository { return f }
func (f *fakeDriverRepo) Create(ctx context.Context, d *driver.Driver) error {
	return nil
}
func (f *fakeDriverRepo) FindAllByCompany(ctx context.Context, companyID string) ([]driver.Driver, error) {
	return nil, nil
}
func (f *fakeDriverRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*driver.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}
func (f *fakeDriverRepo) FindByStatus(ctx context.Context, companyID, status string) ([]driver.Driver, error) {
	return nil, nil
}
func (f *fakeDriverRepo) Update(ctx context.Context, d *driver.Driver) error {
	f.updated = append(f.updated, d.ID.String())
	return nil
}
func (f *fakeDriverRepo) Delete(ctx context.Context, companyID, id string) error { return nil }

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

func newTestDriver(companyID uuid.UUID) *driver.Driver {
	return &driver.Driver{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      "Test Driver",
		Status:    driver.StatusAvailable,
	}
}

func TestService_CreateLoadWithDispatch_MultiDriver(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	d1 := newTestDriver(companyID)
	d2 := newTestDriver(companyID)

	var savedLoad Load
	var savedLegs []DispatchLeg
	var savedAssignments []LoadAssignment

	repo := &fakeRepo{}
	repo.createLoadFn = func(ctx context.Context, l *Load) error { savedLoad = *l; return nil }
	repo.updateLoadFn = func(ctx context.Context, l *Load) error { savedLoad = *l; return nil }
	repo.createLegsFn = func(ctx context.Context, legs []DispatchLeg) error { savedLegs = legs; return nil }
	repo.createAssignmentsFn = func(ctx context.Context, assignments []LoadAssignment) error {
		savedAssignments = assignments
		return nil
	}

	driverRepo := &fakeDriverRepo{drivers: map[string]*driver.Driver{
		d1.ID.String(): d1,
		d2.ID.String(): d2,
	}}
	outbox := &fakeOutbox{}

	svc := NewService(db, repo, driverRepo, &fakeCounter{}, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := CreateLoadRequest{
		CustomerName:      "Acme Produce",
		PickupLocation:    "Los Angeles, CA",
		DeliveryLocation:  "Phoenix, AZ",
		TrailerType:       TrailerTypeDryVan,
		Rate:              "2500.00",
		IsMultiDriverLoad: true,
		DispatchLegs: []DispatchLegInput{
			{ActionType: LegActionPickup, Location: "A", DriverID: d1.ID.String()},
			{ActionType: LegActionDropoff, Location: "B", DriverID: d1.ID.String()},
			{ActionType: LegActionPickup, Location: "C", DriverID: d2.ID.String()},
		},
	}

	resp, err := svc.CreateLoadWithDispatch(context.Background(), companyID.String(), req)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "LD-000001", resp.LoadNumber)
	assert.Equal(t, LoadStatusPending, resp.Status)
	assert.Equal(t, DispatchStatusAssigned, savedLoad.DispatchStatus)

	assert.Len(t, savedLegs, 3)
	for i, leg := range savedLegs {
		assert.Equal(t, i+1, leg.LegOrder)
		assert.Equal(t, savedLoad.ID, leg.LoadID)
		assert.Equal(t, companyID, leg.CompanyID)
	}

	assert.Len(t, savedAssignments, 2)
	assert.Equal(t, d1.ID, savedAssignments[0].DriverID)
	assert.Equal(t, d2.ID, savedAssignments[1].DriverID)

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, "load_created", outbox.created[0].EventType)
}

func TestService_CreateLoadWithDispatch_SingleDriverCreatesNoChildren(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()

	legsCalled := false
	repo := &fakeRepo{}
	repo.createLoadFn = func(ctx context.Context, l *Load) error { return nil }
	repo.createLegsFn = func(ctx context.Context, legs []DispatchLeg) error { legsCalled = true; return nil }
	repo.createAssignmentsFn = func(ctx context.Context, assignments []LoadAssignment) error {
		legsCalled = true
		return nil
	}

	svc := NewService(db, repo, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.CreateLoadWithDispatch(context.Background(), companyID.String(), CreateLoadRequest{
		CustomerName:     "Acme Produce",
		PickupLocation:   "A",
		DeliveryLocation: "B",
		TrailerType:      TrailerTypeFlatbed,
	})
	assert.NoError(t, err)
	assert.False(t, legsCalled)
	assert.Equal(t, DispatchStatusPlanning, resp.DispatchStatus)
	assert.Empty(t, resp.DispatchLegs)
	assert.Empty(t, resp.Assignments)
}

func TestService_CreateLoadWithDispatch_MultiDriverRequiresLegs(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})

	_, err := svc.CreateLoadWithDispatch(context.Background(), uuid.NewString(), CreateLoadRequest{
		CustomerName:      "Acme",
		PickupLocation:    "A",
		DeliveryLocation:  "B",
		TrailerType:       TrailerTypeDryVan,
		IsMultiDriverLoad: true,
	})
	assert.ErrorIs(t, err, dispatcherrors.ErrLegsRequired)
}

func TestService_CreateLoad_ContainerChassisDefaults(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var savedLoad Load
	repo := &fakeRepo{}
	repo.createLoadFn = func(ctx context.Context, l *Load) error { savedLoad = *l; return nil }

	svc := NewService(db, repo, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	ssl := "Maersk"
	containerNo := "MSKU1234567"
	_, err := svc.CreateLoadWithDispatch(context.Background(), uuid.NewString(), CreateLoadRequest{
		CustomerName:     "Pacific Imports",
		PickupLocation:   "Port of LA",
		DeliveryLocation: "Ontario, CA",
		TrailerType:      TrailerTypeContainer,
		SSL:              &ssl,
		ContainerNumber:  &containerNo,
		// Reefer fields on a container load must be ignored.
		TempMin: floatPtr(-10),
	})
	assert.NoError(t, err)

	if assert.NotNil(t, savedLoad.ChassisProvider) {
		assert.Equal(t, "DCLI", *savedLoad.ChassisProvider)
	}
	if assert.NotNil(t, savedLoad.ChassisType) {
		assert.Equal(t, "40ft Standard", *savedLoad.ChassisType)
	}
	assert.Nil(t, savedLoad.TempMin)
}

func TestService_CompleteDispatchLeg_Idempotent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	loadID := uuid.New()
	leg := DispatchLeg{
		ID:        uuid.New(),
		CompanyID: companyID,
		LoadID:    loadID,
		LegOrder:  1,
		Completed: false,
	}
	load := Load{ID: loadID, CompanyID: companyID, DispatchStatus: DispatchStatusAssigned}

	outbox := &fakeOutbox{}
	repo := &fakeRepo{}
	repo.findLegByIDFn = func(ctx context.Context, cid, legID string) (*DispatchLeg, error) {
		copy := leg
		return &copy, nil
	}
	repo.updateLegFn = func(ctx context.Context, l *DispatchLeg) error { leg = *l; return nil }
	repo.countIncompleteFn = func(ctx context.Context, cid, lid string) (int64, error) { return 0, nil }
	repo.findLoadByIDFn = func(ctx context.Context, cid, id string) (*Load, error) {
		copy := load
		return &copy, nil
	}
	repo.updateLoadFn = func(ctx context.Context, l *Load) error { load = *l; return nil }

	svc := NewService(db, repo, &fakeDriverRepo{}, &fakeCounter{}, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()
	first, err := svc.CompleteDispatchLeg(context.Background(), companyID.String(), leg.ID.String())
	assert.NoError(t, err)
	assert.True(t, first.Completed)
	assert.NotNil(t, first.ActualArrival)
	assert.Equal(t, DispatchStatusCompleted, load.DispatchStatus)
	assert.Len(t, outbox.created, 1)

	// Completing again succeeds and does not queue a second event.
	mock.ExpectBegin()
	mock.ExpectCommit()
	second, err := svc.CompleteDispatchLeg(context.Background(), companyID.String(), leg.ID.String())
	assert.NoError(t, err)
	assert.True(t, second.Completed)
	assert.Len(t, outbox.created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateLoadStatus_Transitions(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New()
	load := Load{ID: uuid.New(), CompanyID: companyID, Status: LoadStatusPending}

	repo := &fakeRepo{}
	repo.findLoadByIDFn = func(ctx context.Context, cid, id string) (*Load, error) {
		copy := load
		return &copy, nil
	}
	repo.updateLoadFn = func(ctx context.Context, l *Load) error { load = *l; return nil }

	svc := NewService(db, repo, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})
	ctx := context.Background()

	resp, err := svc.UpdateLoadStatus(ctx, companyID.String(), load.ID.String(), UpdateLoadStatusRequest{Status: LoadStatusDispatched})
	assert.NoError(t, err)
	assert.Equal(t, LoadStatusDispatched, resp.Status)

	// Skipping straight to delivered is illegal.
	_, err = svc.UpdateLoadStatus(ctx, companyID.String(), load.ID.String(), UpdateLoadStatusRequest{Status: LoadStatusDelivered})
	assert.ErrorIs(t, err, dispatcherrors.ErrInvalidStatusTransition)

	// Cancel, then verify the load is terminal.
	_, err = svc.UpdateLoadStatus(ctx, companyID.String(), load.ID.String(), UpdateLoadStatusRequest{Status: LoadStatusCancelled})
	assert.NoError(t, err)

	_, err = svc.UpdateLoadStatus(ctx, companyID.String(), load.ID.String(), UpdateLoadStatusRequest{Status: LoadStatusInTransit})
	assert.ErrorIs(t, err, dispatcherrors.ErrLoadTerminal)
}

func TestService_GetDispatchCalendar_AppliesRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{}
	repo.findCalendarFn = func(ctx context.Context, companyID string, start, end time.Time) ([]CalendarRow, error) {
		gotStart, gotEnd = start, end
		return []CalendarRow{{LegID: uuid.NewString(), LoadNumber: "LD-000001"}}, nil
	}

	svc := NewService(db, repo, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})

	rows, err := svc.GetDispatchCalendar(context.Background(), uuid.NewString(), "2026-09-01", "2026-09-07")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2026-09-01", gotStart.Format("2006-01-02"))
	assert.Equal(t, "2026-09-07", gotEnd.Format("2006-01-02"))

	_, err = svc.GetDispatchCalendar(context.Background(), uuid.NewString(), "2026-09-07", "2026-09-01")
	assert.ErrorIs(t, err, dispatcherrors.ErrInvalidDateRange)
}

func floatPtr(v float64) *float64 { return &v }

func TestService_CreateLoad_RejectsMalformedDriverID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})

	_, err := svc.CreateLoadWithDispatch(context.Background(), uuid.NewString(), CreateLoadRequest{
		CustomerName:     "Acme",
		PickupLocation:   "A",
		DeliveryLocation: "B",
		TrailerType:      TrailerTypeDryVan,
		AssignedDriverID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, dispatcherrors.ErrInvalidDriverID)
}

func TestService_CreateLoad_RejectsMalformedTruckID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeDriverRepo{}, &fakeCounter{}, &fakeOutbox{})

	_, err := svc.CreateLoadWithDispatch(context.Background(), uuid.NewString(), CreateLoadRequest{
		CustomerName:     "Acme",
		PickupLocation:   "A",
		DeliveryLocation: "B",
		TrailerType:      TrailerTypeDryVan,
		AssignedTruckID:  "definitely-not-a-uuid",
	})
	assert.ErrorIs(t, err, dispatcherrors.ErrInvalidTruckID)
}
