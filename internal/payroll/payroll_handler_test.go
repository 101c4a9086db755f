package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/payroll"
	payrollerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRunService struct {
	createRunFn func(ctx context.Context, companyID, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error)
	getAllFn    func(ctx context.Context, companyID string) ([]payroll.RunResponse, error)
	getByIDFn   func(ctx context.Context, companyID, id string) (payroll.RunResponse, error)
	approveFn   func(ctx context.Context, companyID, actorID, id string) (payroll.RunResponse, error)
	markPaidFn  func(ctx context.Context, companyID, actorID, id string) (payroll.RunResponse, error)
	deleteFn    func(ctx context.Context, companyID, id string) error
}

func (f *fakeRunService) CreateRun(ctx context.Context, companyID, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	return f.createRunFn(ctx, companyID, actorID, req)
}
func (f *fakeRunService) GetAll(ctx context.Context, companyID string) ([]payroll.RunResponse, error) {
	return f.getAllFn(ctx, companyID)
}
func (f *fakeRunService) GetByID(ctx context.Context, companyID, id string) (payroll.RunResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}
func (f *fakeRunService) Approve(ctx context.Context, companyID, actorID, id string) (payroll.RunResponse, error) {
	return f.approveFn(ctx, companyID, actorID, id)
}
func (f *fakeRunService) MarkPaid(ctx context.Context, companyID, actorID, id string) (payroll.RunResponse, error) {
	return f.markPaidFn(ctx, companyID, actorID, id)
}
func (f *fakeRunService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", uuid.NewString())
	c.Set("user_id_validated", uuid.NewString())
	return c, w
}

func TestPayrollHandler_CreateRun(t *testing.T) {
	svc := &fakeRunService{
		createRunFn: func(ctx context.Context, companyID, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
			return payroll.RunResponse{
				ID:          uuid.NewString(),
				PeriodStart: req.PeriodStart,
				PeriodEnd:   req.PeriodEnd,
				Status:      payroll.StatusDraft,
				TotalNet:    "2964.00",
			}, nil
		},
	}
	handler := payroll.NewHandler(svc)

	body := `{"period_start":"2026-03-02","period_end":"2026-03-06"}`
	c, w := newTestContext(t, http.MethodPost, "/payroll/runs", body)

	handler.CreateRun(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data payroll.RunResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, payroll.StatusDraft, resp.Data.Status)
	assert.Equal(t, "2964.00", resp.Data.TotalNet)
}

func TestPayrollHandler_CreateRun_ValidationError(t *testing.T) {
	handler := payroll.NewHandler(&fakeRunService{})

	c, w := newTestContext(t, http.MethodPost, "/payroll/runs", `{"period_start":"2026-03-02"}`)

	handler.CreateRun(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_GetById_NotFound(t *testing.T) {
	svc := &fakeRunService{
		getByIDFn: func(ctx context.Context, companyID, id string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrRunNotFound
		},
	}
	handler := payroll.NewHandler(svc)

	c, w := newTestContext(t, http.MethodGet, "/payroll/runs/"+uuid.NewString(), "")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

	handler.GetById(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayrollHandler_Approve_InvalidTransition(t *testing.T) {
	svc := &fakeRunService{
		approveFn: func(ctx context.Context, companyID, actorID, id string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrInvalidStatusTransition
		},
	}
	handler := payroll.NewHandler(svc)

	c, w := newTestContext(t, http.MethodPost, "/payroll/runs/"+uuid.NewString()+"/approve", "")
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

	handler.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_MarkPaid(t *testing.T) {
	svc := &fakeRunService{
		markPaidFn: func(ctx context.Context, companyID, actorID, id string) (payroll.RunResponse, error) {
			return payroll.RunResponse{ID: id, Status: payroll.StatusPaid}, nil
		},
	}
	handler := payroll.NewHandler(svc)

	runID := uuid.NewString()
	c, w := newTestContext(t, http.MethodPost, "/payroll/runs/"+runID+"/mark-paid", "")
	c.Params = gin.Params{{Key: "id", Value: runID}}

	handler.MarkPaid(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data payroll.RunResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, payroll.StatusPaid, resp.Data.Status)
}
