package dispatch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch"
	dispatcherrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn      func(ctx context.Context, companyID string, req dispatch.CreateLoadRequest) (dispatch.LoadResponse, error)
	getLoadsFn    func(ctx context.Context, companyID, status string) ([]dispatch.LoadResponse, error)
	getLoadFn     func(ctx context.Context, companyID, id string) (dispatch.LoadResponse, error)
	updateStatFn  func(ctx context.Context, companyID, id string, req dispatch.UpdateLoadStatusRequest) (dispatch.LoadResponse, error)
	getLegsFn     func(ctx context.Context, companyID, loadID string) ([]dispatch.DispatchLegResponse, error)
	getAssignsFn  func(ctx context.Context, companyID, driverID string) ([]dispatch.LoadAssignmentResponse, error)
	completeLegFn func(ctx context.Context, companyID, legID string) (dispatch.DispatchLegResponse, error)
	calendarFn    func(ctx context.Context, companyID, startDate, endDate string) ([]dispatch.CalendarEntryResponse, error)
	mobileFn      func(ctx context.Context, companyID, driverID string) ([]dispatch.DriverMobileLegResponse, error)
}

func (f *fakeService) CreateLoadWithDispatch(ctx context.Context, companyID string, req dispatch.CreateLoadRequest) (dispatch.LoadResponse, error) {
	return f.createFn(ctx, companyID, req)
}
func (f *fakeService) GetLoads(ctx context.Context, companyID, status string) ([]dispatch.LoadResponse, error) {
	return f.getLoadsFn(ctx, companyID, status)
}
func (f *fakeService) GetLoadByID(ctx context.Context, companyID, id string) (dispatch.LoadResponse, error) {
	return f.getLoadFn(ctx, companyID, id)
}
func (f *fakeService) UpdateLoadStatus(ctx context.Context, companyID, id string, req dispatch.UpdateLoadStatusRequest) (dispatch.LoadResponse, error) {
	return f.updateStatFn(ctx, companyID, id, req)
}
func (f *fakeService) GetDispatchLegs(ctx context.Context, companyID, loadID string) ([]dispatch.DispatchLegResponse, error) {
	return f.getLegsFn(ctx, companyID, loadID)
}
func (f *fakeService) GetDriverAssignments(ctx context.Context, companyID, driverID string) ([]dispatch.LoadAssignmentResponse, error) {
	return f.getAssignsFn(ctx, companyID, driverID)
}
func (f *fakeService) CompleteDispatchLeg(ctx context.Context, companyID, legID string) (dispatch.DispatchLegResponse, error) {
	return f.completeLegFn(ctx, companyID, legID)
}
func (f *fakeService) GetDispatchCalendar(ctx context.Context, companyID, startDate, endDate string) ([]dispatch.CalendarEntryResponse, error) {
	return f.calendarFn(ctx, companyID, startDate, endDate)
}
func (f *fakeService) GetDriverMobileData(ctx context.Context, companyID, driverID string) ([]dispatch.DriverMobileLegResponse, error) {
	return f.mobileFn(ctx, companyID, driverID)
}

func TestHandler_CreateLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, cid string, req dispatch.CreateLoadRequest) (dispatch.LoadResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, "Acme Produce", req.CustomerName)
			return dispatch.LoadResponse{ID: uuid.NewString(), LoadNumber: "LD-000042"}, nil
		},
	}
	h := dispatch.NewHandler(svc)

	body := `{
		"customer_name": "Acme Produce",
		"pickup_location": "Los Angeles, CA",
		"delivery_location": "Phoenix, AZ",
		"trailer_type": "dry_van"
	}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Request = httptest.NewRequest(http.MethodPost, "/loads", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.CreateLoad(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "LD-000042")
}

func TestHandler_CreateLoad_ValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := dispatch.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/loads", strings.NewReader(`{"trailer_type":"hovercraft"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.CreateLoad(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetLoadByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getLoadFn: func(ctx context.Context, cid, id string) (dispatch.LoadResponse, error) {
			return dispatch.LoadResponse{}, dispatcherrors.ErrLoadNotFound
		},
	}
	h := dispatch.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/loads/x", nil)
	h.GetLoadByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_GetDispatchCalendar_PassesRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		calendarFn: func(ctx context.Context, cid, startDate, endDate string) ([]dispatch.CalendarEntryResponse, error) {
			assert.Equal(t, "2026-09-01", startDate)
			assert.Equal(t, "2026-09-07", endDate)
			return []dispatch.CalendarEntryResponse{}, nil
		},
	}
	h := dispatch.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodGet, "/dispatch/calendar?start_date=2026-09-01&end_date=2026-09-07", nil)
	h.GetDispatchCalendar(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
