package recurring

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/accounting"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/events"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	recurringerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/recurring/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateTemplate(ctx context.Context, companyID string, req CreateTemplateRequest) (TemplateResponse, error)
	GetTemplates(ctx context.Context, companyID string) ([]TemplateResponse, error)
	GetTemplateByID(ctx context.Context, companyID, id string) (TemplateResponse, error)
	DeactivateTemplate(ctx context.Context, companyID, id string) (TemplateResponse, error)
	ProcessDue(ctx context.Context) (ProcessResult, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	invoiceRepo accounting.Repository
	counter     counter.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	invoiceRepo accounting.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recurring.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		invoiceRepo: invoiceRepo,
		counter:     counterRepo,
		outbox:      outboxRepo,
		logger:      l,
	}
}

func (s *service) CreateTemplate(ctx context.Context, companyID string, req CreateTemplateRequest) (TemplateResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TemplateResponse{}, recurringerrors.ErrInvalidCompanyID
	}
	if !validFrequency(req.Frequency) {
		return TemplateResponse{}, recurringerrors.ErrInvalidFrequency
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return TemplateResponse{}, errors.New("invalid start_date format, expected YYYY-MM-DD")
	}

	terms := req.PaymentTerms
	if terms == "" {
		terms = "Net 30"
	}

	t := &RecurringTemplate{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		CustomerName: req.CustomerName,
		Description:  req.Description,
		Amount:       req.Amount,
		Frequency:    req.Frequency,
		PaymentTerms: terms,
		StartDate:    startDate,
		NextRunDate:  startDate,
		IsActive:     true,
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return TemplateResponse{}, errors.New("invalid end_date format, expected YYYY-MM-DD")
		}
		t.EndDate = &endDate
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return TemplateResponse{}, err
	}

	s.logger.Info("recurring template created",
		zap.String("template_id", t.ID.String()),
		zap.String("frequency", t.Frequency),
	)
	return mapTemplateToResponse(*t), nil
}

func (s *service) GetTemplates(ctx context.Context, companyID string) ([]TemplateResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]TemplateResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, mapTemplateToResponse(t))
	}
	return out, nil
}

func (s *service) GetTemplateByID(ctx context.Context, companyID, id string) (TemplateResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TemplateResponse{}, recurringerrors.ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}
	return mapTemplateToResponse(*t), nil
}

func (s *service) DeactivateTemplate(ctx context.Context, companyID, id string) (TemplateResponse, error) {
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TemplateResponse{}, recurringerrors.ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}
	if !t.IsActive {
		return TemplateResponse{}, recurringerrors.ErrTemplateInactive
	}

	t.IsActive = false
	if err := s.repo.Update(ctx, t); err != nil {
		return TemplateResponse{}, err
	}
	return mapTemplateToResponse(*t), nil
}

// ProcessDue materializes one invoice per due template and advances each
// template's schedule. One template failing is logged and skipped; the
// scan continues, so a bad template cannot starve the rest.
func (s *service) ProcessDue(ctx context.Context) (ProcessResult, error) {
	now := time.Now().UTC()
	due, err := s.repo.FindDue(ctx, now)
	if err != nil {
		return ProcessResult{}, err
	}

	result := ProcessResult{Processed: len(due)}
	for i := range due {
		if err := s.generateForTemplate(ctx, &due[i]); err != nil {
			result.Failed++
			s.logger.Error("recurring invoice generation failed",
				zap.String("template_id", due[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		result.Generated++
	}

	if result.Processed > 0 {
		s.logger.Info("recurring scheduler pass finished",
			zap.Int("processed", result.Processed),
			zap.Int("generated", result.Generated),
			zap.Int("failed", result.Failed),
		)
	}
	return result, nil
}

func (s *service) generateForTemplate(ctx context.Context, t *RecurringTemplate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	invoiceQtx := s.invoiceRepo.WithTx(tx)
	templateQtx := s.repo.WithTx(tx)
	companyID := t.CompanyID.String()

	nextVal, err := s.counter.GetNextValue(ctx, companyID, counter.TypeInvoiceNumber)
	if err != nil {
		return err
	}

	invoiceDate := t.NextRunDate
	inv := &accounting.Invoice{
		ID:            uuid.New(),
		CompanyID:     t.CompanyID,
		InvoiceNumber: fmt.Sprintf("INV-%06d", nextVal),
		CustomerName:  t.CustomerName,
		IssueDate:     invoiceDate,
		DueDate:       DueDate(invoiceDate, t.PaymentTerms),
		Amount:        t.Amount,
		Status:        accounting.InvoiceStatusDraft,
		Notes:         t.Description,
	}
	if err := invoiceQtx.CreateInvoice(ctx, inv); err != nil {
		return err
	}

	t.NextRunDate = NextRunDate(t.NextRunDate, t.Frequency)
	t.InvoiceCount++
	if t.EndDate != nil && t.NextRunDate.After(*t.EndDate) {
		t.IsActive = false
	}
	if err := templateQtx.Update(ctx, t); err != nil {
		return err
	}

	if s.outbox != nil {
		event := events.InvoiceGeneratedEvent{
			EventType:  "invoice_generated",
			InvoiceID:  inv.ID.String(),
			TemplateID: t.ID.String(),
			CompanyID:  companyID,
			Amount:     inv.Amount.String(),
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			AggregateType: "invoice",
			AggregateID:   inv.ID.String(),
			EventType:     event.EventType,
			Topic:         events.InvoiceGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func mapTemplateToResponse(t RecurringTemplate) TemplateResponse {
	resp := TemplateResponse{
		ID:           t.ID.String(),
		CompanyID:    t.CompanyID.String(),
		CustomerName: t.CustomerName,
		Description:  t.Description,
		Amount:       t.Amount.String(),
		Frequency:    t.Frequency,
		PaymentTerms: t.PaymentTerms,
		StartDate:    t.StartDate.Format("2006-01-02"),
		NextRunDate:  t.NextRunDate.Format("2006-01-02"),
		InvoiceCount: t.InvoiceCount,
		IsActive:     t.IsActive,
	}
	if t.EndDate != nil {
		s := t.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}
