package accounting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	accountingerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/accounting/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/contextutil"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/counter"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateInvoice(ctx context.Context, companyID string, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoices(ctx context.Context, companyID, status string) ([]InvoiceResponse, error)
	GetInvoiceByID(ctx context.Context, companyID, id string) (InvoiceResponse, error)
	SetInvoiceStatus(ctx context.Context, companyID, id string, req SetInvoiceStatusRequest) (InvoiceResponse, error)

	CreateBill(ctx context.Context, companyID string, req CreateBillRequest) (BillResponse, error)
	GetBills(ctx context.Context, companyID, status string) ([]BillResponse, error)
	SetBillStatus(ctx context.Context, companyID, id string, req SetBillStatusRequest) (BillResponse, error)

	GetDashboardSummary(ctx context.Context, companyID string) (DashboardSummaryResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accounting.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, logger: l}
}

func (s *service) CreateInvoice(ctx context.Context, companyID string, req CreateInvoiceRequest) (InvoiceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return InvoiceResponse{}, accountingerrors.ErrInvalidCompanyID
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return InvoiceResponse{}, errors.New("invalid issue_date format, expected YYYY-MM-DD")
	}
	dueDate := issueDate.AddDate(0, 0, 30)
	if req.DueDate != "" {
		dueDate, err = time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return InvoiceResponse{}, errors.New("invalid due_date format, expected YYYY-MM-DD")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return InvoiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, companyID, counter.TypeInvoiceNumber)
	if err != nil {
		s.logger.Error("create invoice generate number failed", zap.Error(err))
		return InvoiceResponse{}, err
	}

	inv := &Invoice{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		InvoiceNumber: fmt.Sprintf("INV-%06d", nextVal),
		CustomerName:  req.CustomerName,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Amount:        req.Amount,
		Status:        InvoiceStatusDraft,
		Notes:         req.Notes,
	}
	if req.LoadID != "" {
		id, err := uuid.Parse(req.LoadID)
		if err != nil {
			return InvoiceResponse{}, accountingerrors.ErrInvalidLoadID
		}
		inv.LoadID = &id
	}

	if err := qtx.CreateInvoice(ctx, inv); err != nil {
		s.logger.Error("create invoice persist failed", zap.Error(err))
		return InvoiceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return InvoiceResponse{}, err
	}

	s.logger.Info("invoice created",
		zap.String("request_id", rid),
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
	)
	return mapInvoiceToResponse(*inv), nil
}

func (s *service) GetInvoices(ctx context.Context, companyID, status string) ([]InvoiceResponse, error) {
	if status != "" && !validInvoiceStatus(status) {
		return nil, accountingerrors.ErrInvalidInvoiceStatus
	}
	rows, err := s.repo.FindInvoices(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	out := make([]InvoiceResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, mapInvoiceToResponse(inv))
	}
	return out, nil
}

func (s *service) GetInvoiceByID(ctx context.Context, companyID, id string) (InvoiceResponse, error) {
	inv, err := s.repo.FindInvoiceByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceResponse{}, accountingerrors.ErrInvoiceNotFound
		}
		return InvoiceResponse{}, err
	}
	return mapInvoiceToResponse(*inv), nil
}

func (s *service) SetInvoiceStatus(ctx context.Context, companyID, id string, req SetInvoiceStatusRequest) (InvoiceResponse, error) {
	inv, err := s.repo.FindInvoiceByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceResponse{}, accountingerrors.ErrInvoiceNotFound
		}
		return InvoiceResponse{}, err
	}
	if inv.Status == InvoiceStatusVoid {
		return InvoiceResponse{}, accountingerrors.ErrInvoiceVoid
	}

	inv.Status = req.Status
	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return InvoiceResponse{}, err
	}
	return mapInvoiceToResponse(*inv), nil
}

func (s *service) CreateBill(ctx context.Context, companyID string, req CreateBillRequest) (BillResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return BillResponse{}, accountingerrors.ErrInvalidCompanyID
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return BillResponse{}, errors.New("invalid issue_date format, expected YYYY-MM-DD")
	}
	dueDate := issueDate.AddDate(0, 0, 30)
	if req.DueDate != "" {
		dueDate, err = time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return BillResponse{}, errors.New("invalid due_date format, expected YYYY-MM-DD")
		}
	}

	b := &Bill{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		VendorName: req.VendorName,
		Category:   req.Category,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Amount:     req.Amount,
		Status:     BillStatusPending,
		Notes:      req.Notes,
	}
	if err := s.repo.CreateBill(ctx, b); err != nil {
		return BillResponse{}, err
	}
	return mapBillToResponse(*b), nil
}

func (s *service) GetBills(ctx context.Context, companyID, status string) ([]BillResponse, error) {
	rows, err := s.repo.FindBills(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	out := make([]BillResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, mapBillToResponse(b))
	}
	return out, nil
}

func (s *service) SetBillStatus(ctx context.Context, companyID, id string, req SetBillStatusRequest) (BillResponse, error) {
	b, err := s.repo.FindBillByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillResponse{}, accountingerrors.ErrBillNotFound
		}
		return BillResponse{}, err
	}

	b.Status = req.Status
	if err := s.repo.UpdateBill(ctx, b); err != nil {
		return BillResponse{}, err
	}
	return mapBillToResponse(*b), nil
}

// GetDashboardSummary reduces invoices and bills into the dashboard
// metrics. Errors are logged and rethrown for the handler to translate.
func (s *service) GetDashboardSummary(ctx context.Context, companyID string) (DashboardSummaryResponse, error) {
	receivable, err := s.repo.SumInvoicesByStatus(ctx, companyID, []string{InvoiceStatusSent, InvoiceStatusOverdue})
	if err != nil {
		s.logger.Error("dashboard receivable sum failed", zap.Error(err))
		return DashboardSummaryResponse{}, err
	}
	payable, err := s.repo.SumBillsByStatus(ctx, companyID, []string{BillStatusPending, BillStatusOverdue})
	if err != nil {
		s.logger.Error("dashboard payable sum failed", zap.Error(err))
		return DashboardSummaryResponse{}, err
	}

	monthStart := time.Now().UTC()
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	paidThisMonth, err := s.repo.SumInvoicesPaidSince(ctx, companyID, monthStart)
	if err != nil {
		s.logger.Error("dashboard paid-this-month sum failed", zap.Error(err))
		return DashboardSummaryResponse{}, err
	}

	outstanding, err := s.repo.CountInvoicesByStatus(ctx, companyID, []string{InvoiceStatusSent, InvoiceStatusOverdue})
	if err != nil {
		return DashboardSummaryResponse{}, err
	}
	overdue, err := s.repo.CountInvoicesByStatus(ctx, companyID, []string{InvoiceStatusOverdue})
	if err != nil {
		return DashboardSummaryResponse{}, err
	}

	revenue, err := s.repo.SumInvoicesByStatus(ctx, companyID, []string{InvoiceStatusPaid})
	if err != nil {
		return DashboardSummaryResponse{}, err
	}
	costs, err := s.repo.SumBillsByStatus(ctx, companyID, []string{BillStatusPaid})
	if err != nil {
		return DashboardSummaryResponse{}, err
	}

	rev := money.FromFloat(revenue)
	cost := money.FromFloat(costs)
	margin := rev.Sub(cost)
	marginPct := decimal.Zero
	if !rev.IsZero() {
		marginPct = margin.Decimal().Div(rev.Decimal()).Mul(decimal.NewFromInt(100))
	}

	return DashboardSummaryResponse{
		TotalReceivable:  money.FromFloat(receivable).String(),
		TotalPayable:     money.FromFloat(payable).String(),
		PaidThisMonth:    money.FromFloat(paidThisMonth).String(),
		OutstandingCount: outstanding,
		OverdueCount:     overdue,
		TotalRevenue:     rev.String(),
		TotalCosts:       cost.String(),
		Margin:           margin.String(),
		MarginPercent:    marginPct.StringFixed(2),
	}, nil
}

func mapInvoiceToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID.String(),
		CompanyID:     inv.CompanyID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Amount:        inv.Amount.String(),
		Status:        inv.Status,
		Notes:         inv.Notes,
	}
	if inv.LoadID != nil {
		s := inv.LoadID.String()
		resp.LoadID = &s
	}
	return resp
}

func mapBillToResponse(b Bill) BillResponse {
	return BillResponse{
		ID:         b.ID.String(),
		CompanyID:  b.CompanyID.String(),
		VendorName: b.VendorName,
		Category:   b.Category,
		IssueDate:  b.IssueDate.Format("2006-01-02"),
		DueDate:    b.DueDate.Format("2006-01-02"),
		Amount:     b.Amount.String(),
		Status:     b.Status,
		Notes:      b.Notes,
	}
}
