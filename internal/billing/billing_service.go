package billing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	billingerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/billing/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/events"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/contextutil"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	EnsureForLoad(ctx context.Context, companyID, loadID string) error
	GetByLoad(ctx context.Context, companyID, loadID string) (BillingResponse, error)
	SetBaseRate(ctx context.Context, companyID, loadID string, req SetBaseRateRequest) (BillingResponse, error)
	AddAccessorial(ctx context.Context, companyID, loadID string, req AddAccessorialRequest) (BillingResponse, error)
	RemoveAccessorial(ctx context.Context, companyID, loadID, accessorialID string) (BillingResponse, error)
	AddExpense(ctx context.Context, companyID, loadID string, req AddExpenseRequest) (BillingResponse, error)
	RemoveExpense(ctx context.Context, companyID, loadID, expenseID string) (BillingResponse, error)
	Finalize(ctx context.Context, companyID, loadID string) (BillingResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	loadRepo dispatch.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	loadRepo dispatch.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("billing.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		loadRepo: loadRepo,
		outbox:   outboxRepo,
		logger:   l,
	}
}

// EnsureForLoad creates the billing skeleton for a load, seeded with the
// load's rate. Racing creations are fine: a unique violation on load_id
// means another worker got there first, which is success.
func (s *service) EnsureForLoad(ctx context.Context, companyID, loadID string) error {
	_, err := s.repo.FindByLoadID(ctx, companyID, loadID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	l, err := s.loadRepo.FindLoadByID(ctx, companyID, loadID)
	if err != nil {
		return err
	}

	b := &LoadBilling{
		ID:        uuid.New(),
		CompanyID: l.CompanyID,
		LoadID:    l.ID,
		BaseRate:  money.New(l.Rate),
		Status:    StatusDraft,
	}
	recomputeTotals(b, nil, nil)

	if err := s.repo.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			s.logger.Debug("billing already exists for load", zap.String("load_id", loadID))
			return nil
		}
		return err
	}

	s.logger.Info("billing created for load",
		zap.String("load_id", loadID),
		zap.String("billing_id", b.ID.String()),
	)
	return nil
}

func (s *service) GetByLoad(ctx context.Context, companyID, loadID string) (BillingResponse, error) {
	b, err := s.repo.FindByLoadID(ctx, companyID, loadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillingResponse{}, billingerrors.ErrBillingNotFound
		}
		return BillingResponse{}, err
	}
	return s.assembleResponse(ctx, companyID, b)
}

func (s *service) SetBaseRate(ctx context.Context, companyID, loadID string, req SetBaseRateRequest) (BillingResponse, error) {
	if req.BaseRate.IsNegative() {
		return BillingResponse{}, billingerrors.ErrNegativeAmount
	}
	return s.mutate(ctx, companyID, loadID, func(ctx context.Context, qtx Repository, b *LoadBilling) error {
		b.BaseRate = req.BaseRate
		return nil
	})
}

func (s *service) AddAccessorial(ctx context.Context, companyID, loadID string, req AddAccessorialRequest) (BillingResponse, error) {
	if req.Amount.IsNegative() {
		return BillingResponse{}, billingerrors.ErrNegativeAmount
	}
	return s.mutate(ctx, companyID, loadID, func(ctx context.Context, qtx Repository, b *LoadBilling) error {
		return qtx.CreateAccessorial(ctx, &LoadAccessorial{
			ID:          uuid.New(),
			CompanyID:   b.CompanyID,
			BillingID:   b.ID,
			Type:        req.Type,
			Description: req.Description,
			Amount:      req.Amount,
		})
	})
}

func (s *service) RemoveAccessorial(ctx context.Context, companyID, loadID, accessorialID string) (BillingResponse, error) {
	return s.mutate(ctx, companyID, loadID, func(ctx context.Context, qtx Repository, b *LoadBilling) error {
		if err := qtx.DeleteAccessorial(ctx, companyID, accessorialID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return billingerrors.ErrAccessorialNotFound
			}
			return err
		}
		return nil
	})
}

func (s *service) AddExpense(ctx context.Context, companyID, loadID string, req AddExpenseRequest) (BillingResponse, error) {
	if req.Amount.IsNegative() {
		return BillingResponse{}, billingerrors.ErrNegativeAmount
	}
	return s.mutate(ctx, companyID, loadID, func(ctx context.Context, qtx Repository, b *LoadBilling) error {
		return qtx.CreateExpense(ctx, &LoadExpense{
			ID:          uuid.New(),
			CompanyID:   b.CompanyID,
			BillingID:   b.ID,
			Category:    req.Category,
			Description: req.Description,
			Amount:      req.Amount,
		})
	})
}

func (s *service) RemoveExpense(ctx context.Context, companyID, loadID, expenseID string) (BillingResponse, error) {
	return s.mutate(ctx, companyID, loadID, func(ctx context.Context, qtx Repository, b *LoadBilling) error {
		if err := qtx.DeleteExpense(ctx, companyID, expenseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return billingerrors.ErrExpenseNotFound
			}
			return err
		}
		return nil
	})
}

// Finalize freezes the billing record and queues the finalized event. The
// totals are recomputed one last time inside the same transaction.
func (s *service) Finalize(ctx context.Context, companyID, loadID string) (BillingResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BillingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindByLoadID(ctx, companyID, loadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillingResponse{}, billingerrors.ErrBillingNotFound
		}
		return BillingResponse{}, err
	}
	if b.Status == StatusFinalized {
		return BillingResponse{}, billingerrors.ErrBillingFinalized
	}

	accessorials, expenses, err := s.children(ctx, qtx, companyID, b.ID.String())
	if err != nil {
		return BillingResponse{}, err
	}
	recomputeTotals(b, accessorials, expenses)
	b.Status = StatusFinalized

	if err := qtx.Update(ctx, b); err != nil {
		return BillingResponse{}, err
	}

	if s.outbox != nil {
		event := events.LoadBillingFinalizedEvent{
			EventType:   "load_billing_finalized",
			BillingID:   b.ID.String(),
			LoadID:      b.LoadID.String(),
			CompanyID:   companyID,
			TotalAmount: b.TotalAmount.String(),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return BillingResponse{}, err
		}
		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "load_billing",
			AggregateID:   b.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LoadBillingFinalizedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return BillingResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return BillingResponse{}, err
	}

	s.logger.Info("billing finalized",
		zap.String("request_id", rid),
		zap.String("billing_id", b.ID.String()),
		zap.String("total_amount", b.TotalAmount.String()),
	)
	return mapBillingToResponse(*b, accessorials, expenses), nil
}

// mutate runs one billing mutation inside a transaction: load the billing,
// reject if finalized, apply the change, recompute the stored totals from
// the surviving children, persist.
func (s *service) mutate(
	ctx context.Context,
	companyID, loadID string,
	apply func(ctx context.Context, qtx Repository, b *LoadBilling) error,
) (BillingResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BillingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindByLoadID(ctx, companyID, loadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BillingResponse{}, billingerrors.ErrBillingNotFound
		}
		return BillingResponse{}, err
	}
	if b.Status == StatusFinalized {
		return BillingResponse{}, billingerrors.ErrBillingFinalized
	}

	if err := apply(ctx, qtx, b); err != nil {
		return BillingResponse{}, err
	}

	accessorials, expenses, err := s.children(ctx, qtx, companyID, b.ID.String())
	if err != nil {
		return BillingResponse{}, err
	}
	recomputeTotals(b, accessorials, expenses)

	if err := qtx.Update(ctx, b); err != nil {
		return BillingResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return BillingResponse{}, err
	}

	return mapBillingToResponse(*b, accessorials, expenses), nil
}

func (s *service) children(ctx context.Context, repo Repository, companyID, billingID string) ([]LoadAccessorial, []LoadExpense, error) {
	accessorials, err := repo.FindAccessorials(ctx, companyID, billingID)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := repo.FindExpenses(ctx, companyID, billingID)
	if err != nil {
		return nil, nil, err
	}
	return accessorials, expenses, nil
}

func (s *service) assembleResponse(ctx context.Context, companyID string, b *LoadBilling) (BillingResponse, error) {
	accessorials, expenses, err := s.children(ctx, s.repo, companyID, b.ID.String())
	if err != nil {
		return BillingResponse{}, err
	}
	return mapBillingToResponse(*b, accessorials, expenses), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func mapBillingToResponse(b LoadBilling, accessorials []LoadAccessorial, expenses []LoadExpense) BillingResponse {
	resp := BillingResponse{
		ID:                b.ID.String(),
		LoadID:            b.LoadID.String(),
		CompanyID:         b.CompanyID.String(),
		BaseRate:          b.BaseRate.String(),
		Subtotal:          b.Subtotal.String(),
		TotalAccessorials: b.TotalAccessorials.String(),
		TotalExpenses:     b.TotalExpenses.String(),
		TotalAmount:       b.TotalAmount.String(),
		Status:            b.Status,
		Accessorials:      []AccessorialResponse{},
		Expenses:          []ExpenseResponse{},
	}
	for _, a := range accessorials {
		resp.Accessorials = append(resp.Accessorials, AccessorialResponse{
			ID:          a.ID.String(),
			Type:        a.Type,
			Description: a.Description,
			Amount:      a.Amount.String(),
		})
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, ExpenseResponse{
			ID:          e.ID.String(),
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount.String(),
		})
	}
	return resp
}
