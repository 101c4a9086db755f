package dispatch

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dispatcherrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/events"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/contextutil"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateLoadWithDispatch(ctx context.Context, companyID string, req CreateLoadRequest) (LoadResponse, error)
	GetLoads(ctx context.Context, companyID, status string) ([]LoadResponse, error)
	GetLoadByID(ctx context.Context, companyID, id string) (LoadResponse, error)
	UpdateLoadStatus(ctx context.Context, companyID, id string, req UpdateLoadStatusRequest) (LoadResponse, error)
	GetDispatchLegs(ctx context.Context, companyID, loadID string) ([]DispatchLegResponse, error)
	GetDriverAssignments(ctx context.Context, companyID, driverID string) ([]LoadAssignmentResponse, error)
	CompleteDispatchLeg(ctx context.Context, companyID, legID string) (DispatchLegResponse, error)
	GetDispatchCalendar(ctx context.Context, companyID, startDate, endDate string) ([]CalendarEntryResponse, error)
	GetDriverMobileData(ctx context.Context, companyID, driverID string) ([]DriverMobileLegResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	driverRepo driver.Repository
	counter    counter.Repository
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	driverRepo driver.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dispatch.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		driverRepo: driverRepo,
		counter:    counterRepo,
		outbox:     outboxRepo,
		logger:     l,
	}
}

// CreateLoadWithDispatch inserts the load, its legs and its per-driver
// assignments in one transaction, so a load is never left without its
// dispatch plan on partial failure.
func (s *service) CreateLoadWithDispatch(ctx context.Context, companyID string, req CreateLoadRequest) (LoadResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create load requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("trailer_type", req.TrailerType),
		zap.Bool("multi_driver", req.IsMultiDriverLoad),
		zap.Int("legs", len(req.DispatchLegs)),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LoadResponse{}, dispatcherrors.ErrInvalidCompanyID
	}
	if !validTrailerType(req.TrailerType) {
		return LoadResponse{}, dispatcherrors.ErrInvalidTrailerType
	}
	if req.IsMultiDriverLoad && len(req.DispatchLegs) == 0 {
		return LoadResponse{}, dispatcherrors.ErrLegsRequired
	}
	if !req.IsMultiDriverLoad && len(req.DispatchLegs) > 0 {
		return LoadResponse{}, dispatcherrors.ErrLegsNotAllowed
	}

	rate := decimal.Zero
	if req.Rate != "" {
		rate, err = decimal.NewFromString(req.Rate)
		if err != nil {
			return LoadResponse{}, errors.New("invalid rate, expected a decimal number")
		}
	}

	l := &Load{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		CustomerName:      req.CustomerName,
		CustomerRef:       req.CustomerRef,
		PickupLocation:    req.PickupLocation,
		DeliveryLocation:  req.DeliveryLocation,
		Commodity:         req.Commodity,
		Weight:            req.Weight,
		Pieces:            req.Pieces,
		TrailerType:       req.TrailerType,
		Rate:              rate,
		Miles:             req.Miles,
		Status:            LoadStatusPending,
		IsMultiDriverLoad: req.IsMultiDriverLoad,
		DispatchStatus:    DispatchStatusPlanning,
	}

	if l.PickupDate, err = parseDatePtr(req.PickupDate, "pickup_date"); err != nil {
		return LoadResponse{}, err
	}
	if l.DeliveryDate, err = parseDatePtr(req.DeliveryDate, "delivery_date"); err != nil {
		return LoadResponse{}, err
	}

	applyTrailerFields(l, req)

	if req.AssignedDriverID != "" {
		id, err := uuid.Parse(req.AssignedDriverID)
		if err != nil {
			return LoadResponse{}, dispatcherrors.ErrInvalidDriverID
		}
		l.AssignedDriverID = &id
	}
	if req.AssignedTruckID != "" {
		id, err := uuid.Parse(req.AssignedTruckID)
		if err != nil {
			return LoadResponse{}, dispatcherrors.ErrInvalidTruckID
		}
		l.AssignedTruckID = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create load begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LoadResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	driverQtx := s.driverRepo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, companyID, counter.TypeLoadNumber)
	if err != nil {
		s.logger.Error("create load generate number failed", zap.Error(err))
		return LoadResponse{}, err
	}
	l.LoadNumber = fmt.Sprintf("LD-%06d", nextVal)

	if err := qtx.CreateLoad(ctx, l); err != nil {
		s.logger.Error("create load persist failed", zap.Error(err))
		return LoadResponse{}, err
	}

	var legs []DispatchLeg
	var assignments []LoadAssignment
	if req.IsMultiDriverLoad {
		legs, assignments, err = s.buildDispatchPlan(ctx, driverQtx, l, req.DispatchLegs)
		if err != nil {
			return LoadResponse{}, err
		}

		if err := qtx.CreateLegs(ctx, legs); err != nil {
			s.logger.Error("create dispatch legs persist failed", zap.Error(err))
			return LoadResponse{}, err
		}
		if err := qtx.CreateAssignments(ctx, assignments); err != nil {
			s.logger.Error("create load assignments persist failed", zap.Error(err))
			return LoadResponse{}, err
		}

		l.DispatchStatus = DispatchStatusAssigned
		if err := qtx.UpdateLoad(ctx, l); err != nil {
			return LoadResponse{}, err
		}
	}

	event := events.LoadCreatedEvent{
		EventType:     "load_created",
		LoadID:        l.ID.String(),
		LoadNumber:    l.LoadNumber,
		CompanyID:     companyID,
		IsMultiDriver: l.IsMultiDriverLoad,
		OccurredAt:    time.Now().UTC(),
	}
	if s.outbox != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			return LoadResponse{}, err
		}
		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "load",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LoadCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create load outbox persist failed",
				zap.String("load_id", l.ID.String()),
				zap.Error(err),
			)
			return LoadResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create load commit failed", zap.String("request_id", rid), zap.Error(err))
		return LoadResponse{}, err
	}

	s.logger.Info("load created",
		zap.String("request_id", rid),
		zap.String("load_id", l.ID.String()),
		zap.String("load_number", l.LoadNumber),
		zap.Int("legs", len(legs)),
		zap.Int("assignments", len(assignments)),
	)

	return mapLoadToResponse(*l, legs, assignments), nil
}

// buildDispatchPlan turns the request legs into persisted rows. Leg order
// is always derived from slice position, never taken from the caller, so
// the sequence is contiguous from 1 by construction. One assignment row is
// produced per unique driver, in first-seen order.
func (s *service) buildDispatchPlan(
	ctx context.Context,
	driverQtx driver.Repository,
	l *Load,
	inputs []DispatchLegInput,
) ([]DispatchLeg, []LoadAssignment, error) {
	legs := make([]DispatchLeg, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	var assignments []LoadAssignment

	for i, in := range inputs {
		d, err := driverQtx.FindByIDAndCompany(ctx, l.CompanyID.String(), in.DriverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("dispatch leg %d: driver %s not found", i+1, in.DriverID)
			}
			return nil, nil, err
		}

		leg := DispatchLeg{
			ID:         uuid.New(),
			CompanyID:  l.CompanyID,
			LoadID:     l.ID,
			LegOrder:   i + 1,
			ActionType: in.ActionType,
			Location:   in.Location,
			DriverID:   d.ID,
		}
		if in.TruckID != "" {
			id, err := uuid.Parse(in.TruckID)
			if err != nil {
				return nil, nil, dispatcherrors.ErrInvalidTruckID
			}
			leg.TruckID = &id
		}
		if leg.ScheduledDate, err = parseDatePtr(in.ScheduledDate, "scheduled_date"); err != nil {
			return nil, nil, err
		}
		if leg.ETA, err = parseTimePtr(in.ETA, "eta"); err != nil {
			return nil, nil, err
		}
		if leg.ETD, err = parseTimePtr(in.ETD, "etd"); err != nil {
			return nil, nil, err
		}
		legs = append(legs, leg)

		if !seen[in.DriverID] {
			seen[in.DriverID] = true
			assignments = append(assignments, LoadAssignment{
				ID:        uuid.New(),
				CompanyID: l.CompanyID,
				LoadID:    l.ID,
				DriverID:  d.ID,
				Status:    AssignmentStatusAssigned,
			})

			if d.Status == driver.StatusAvailable {
				d.Status = driver.StatusAssigned
				if err := driverQtx.Update(ctx, d); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return legs, assignments, nil
}

func (s *service) GetLoads(ctx context.Context, companyID, status string) ([]LoadResponse, error) {
	loads, err := s.repo.FindLoadsByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	out := make([]LoadResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, mapLoadToResponse(l, nil, nil))
	}
	return out, nil
}

func (s *service) GetLoadByID(ctx context.Context, companyID, id string) (LoadResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LoadResponse{}, dispatcherrors.ErrInvalidLoadID
	}
	l, err := s.repo.FindLoadByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoadResponse{}, dispatcherrors.ErrLoadNotFound
		}
		return LoadResponse{}, err
	}

	legs, err := s.repo.FindLegsByLoad(ctx, companyID, id)
	if err != nil {
		return LoadResponse{}, err
	}
	assignments, err := s.repo.FindAssignmentsByLoad(ctx, companyID, id)
	if err != nil {
		return LoadResponse{}, err
	}

	return mapLoadToResponse(*l, legs, assignments), nil
}

func (s *service) UpdateLoadStatus(ctx context.Context, companyID, id string, req UpdateLoadStatusRequest) (LoadResponse, error) {
	l, err := s.repo.FindLoadByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoadResponse{}, dispatcherrors.ErrLoadNotFound
		}
		return LoadResponse{}, err
	}

	if l.Status == LoadStatusDelivered || l.Status == LoadStatusCancelled {
		return LoadResponse{}, dispatcherrors.ErrLoadTerminal
	}
	if !canTransition(l.Status, req.Status) {
		return LoadResponse{}, dispatcherrors.ErrInvalidStatusTransition
	}

	l.Status = req.Status
	if req.Status == LoadStatusInTransit && l.IsMultiDriverLoad {
		l.DispatchStatus = DispatchStatusInProgress
	}
	if err := s.repo.UpdateLoad(ctx, l); err != nil {
		return LoadResponse{}, err
	}

	s.logger.Info("load status updated",
		zap.String("load_id", l.ID.String()),
		zap.String("status", l.Status),
	)
	return mapLoadToResponse(*l, nil, nil), nil
}

func (s *service) GetDispatchLegs(ctx context.Context, companyID, loadID string) ([]DispatchLegResponse, error) {
	legs, err := s.repo.FindLegsByLoad(ctx, companyID, loadID)
	if err != nil {
		return nil, err
	}
	out := make([]DispatchLegResponse, 0, len(legs))
	for _, leg := range legs {
		out = append(out, mapLegToResponse(leg))
	}
	return out, nil
}

func (s *service) GetDriverAssignments(ctx context.Context, companyID, driverID string) ([]LoadAssignmentResponse, error) {
	rows, err := s.repo.FindAssignmentsByDriver(ctx, companyID, driverID)
	if err != nil {
		return nil, err
	}
	out := make([]LoadAssignmentResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, mapAssignmentToResponse(a))
	}
	return out, nil
}

// CompleteDispatchLeg is idempotent: completing an already-completed leg
// re-stamps actual_arrival and succeeds. Legs may be completed in any
// order. When the last leg of a load completes, the load's dispatch status
// flips to completed and a legs-completed event is queued.
func (s *service) CompleteDispatchLeg(ctx context.Context, companyID, legID string) (DispatchLegResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DispatchLegResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	leg, err := qtx.FindLegByID(ctx, companyID, legID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DispatchLegResponse{}, dispatcherrors.ErrLegNotFound
		}
		return DispatchLegResponse{}, err
	}

	now := time.Now().UTC()
	leg.Completed = true
	leg.ActualArrival = &now
	if err := qtx.UpdateLeg(ctx, leg); err != nil {
		return DispatchLegResponse{}, err
	}

	remaining, err := qtx.CountIncompleteLegs(ctx, companyID, leg.LoadID.String())
	if err != nil {
		return DispatchLegResponse{}, err
	}

	if remaining == 0 {
		l, err := qtx.FindLoadByID(ctx, companyID, leg.LoadID.String())
		if err != nil {
			return DispatchLegResponse{}, err
		}
		if l.DispatchStatus != DispatchStatusCompleted {
			l.DispatchStatus = DispatchStatusCompleted
			if err := qtx.UpdateLoad(ctx, l); err != nil {
				return DispatchLegResponse{}, err
			}

			if s.outbox != nil {
				event := events.LoadLegsCompletedEvent{
					EventType:  "load_legs_completed",
					LoadID:     l.ID.String(),
					CompanyID:  companyID,
					OccurredAt: now,
				}
				payload, err := json.Marshal(event)
				if err != nil {
					return DispatchLegResponse{}, err
				}
				outboxRepo := s.outbox.WithTx(tx)
				if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
					ID:            uuid.NewString(),
					RequestID:     rid,
					AggregateType: "load",
					AggregateID:   l.ID.String(),
					EventType:     event.EventType,
					Topic:         events.LoadLegsCompletedTopic,
					Payload:       payload,
					Status:        kafka.OutboxStatusPending,
				}); err != nil {
					return DispatchLegResponse{}, err
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return DispatchLegResponse{}, err
	}

	s.logger.Info("dispatch leg completed",
		zap.String("request_id", rid),
		zap.String("leg_id", leg.ID.String()),
		zap.String("load_id", leg.LoadID.String()),
		zap.Int64("remaining", remaining),
	)
	return mapLegToResponse(*leg), nil
}

// GetDispatchCalendar applies the requested date range. When the range is
// omitted it defaults to the seven days starting today.
func (s *service) GetDispatchCalendar(ctx context.Context, companyID, startDate, endDate string) ([]CalendarEntryResponse, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	start := today
	end := today.AddDate(0, 0, 6)

	var err error
	if startDate != "" {
		start, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, errors.New("invalid start_date format, expected YYYY-MM-DD")
		}
	}
	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, errors.New("invalid end_date format, expected YYYY-MM-DD")
		}
	}
	if end.Before(start) {
		return nil, dispatcherrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindCalendarRows(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]CalendarEntryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, CalendarEntryResponse{
			LegID:         row.LegID,
			LoadID:        row.LoadID,
			LoadNumber:    row.LoadNumber,
			LegOrder:      row.LegOrder,
			ActionType:    row.ActionType,
			Location:      row.Location,
			ScheduledDate: formatDatePtr(row.ScheduledDate),
			ETA:           formatTimePtr(row.ETA),
			Completed:     row.Completed,
			DriverID:      row.DriverID,
			DriverName:    row.DriverName,
			TruckID:       row.TruckID,
			TruckUnit:     row.TruckUnit,
			CustomerName:  row.CustomerName,
		})
	}
	return out, nil
}

func (s *service) GetDriverMobileData(ctx context.Context, companyID, driverID string) ([]DriverMobileLegResponse, error) {
	rows, err := s.repo.FindIncompleteLegsByDriver(ctx, companyID, driverID)
	if err != nil {
		return nil, err
	}
	out := make([]DriverMobileLegResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, DriverMobileLegResponse{
			LegID:            row.LegID,
			LegOrder:         row.LegOrder,
			ActionType:       row.ActionType,
			Location:         row.Location,
			ScheduledDate:    formatDatePtr(row.ScheduledDate),
			ETA:              formatTimePtr(row.ETA),
			LoadID:           row.LoadID,
			LoadNumber:       row.LoadNumber,
			CustomerName:     row.CustomerName,
			PickupLocation:   row.PickupLocation,
			DeliveryLocation: row.DeliveryLocation,
			Commodity:        row.Commodity,
			LoadStatus:       row.LoadStatus,
		})
	}
	return out, nil
}

// applyTrailerFields copies only the field group matching the trailer type;
// other groups stay NULL no matter what the caller sent. Container loads
// without an explicit chassis fall back to the steamship line's default
// chassis pool.
func applyTrailerFields(l *Load, req CreateLoadRequest) {
	switch req.TrailerType {
	case TrailerTypeContainer:
		l.ContainerNumber = req.ContainerNumber
		l.SSL = req.SSL
		l.ChassisProvider = req.ChassisProvider
		l.ChassisType = req.ChassisType
		l.PortOfLoading = req.PortOfLoading
		l.PortOfDischarge = req.PortOfDischarge
		l.BookingNumber = req.BookingNumber

		if req.SSL != nil && (l.ChassisProvider == nil || l.ChassisType == nil) {
			if d, ok := lookupChassisDefaults(*req.SSL); ok {
				if l.ChassisProvider == nil {
					l.ChassisProvider = &d.Provider
				}
				if l.ChassisType == nil {
					l.ChassisType = &d.Type
				}
			}
		}
	case TrailerTypeReefer:
		l.TempMin = req.TempMin
		l.TempMax = req.TempMax
		l.IsFSMACompliant = req.IsFSMACompliant
	case TrailerTypeTanker:
		l.LiquidType = req.LiquidType
		l.IsHazmat = req.IsHazmat
		l.UNNumber = req.UNNumber
	case TrailerTypeFlatbed:
		l.TarpRequired = req.TarpRequired
		l.OversizePermit = req.OversizePermit
	case TrailerTypeDryVan:
		l.SealNumber = req.SealNumber
	}
}

func parseDatePtr(v, field string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format, expected YYYY-MM-DD", field)
	}
	return &t, nil
}

func parseTimePtr(v, field string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format, expected RFC3339", field)
	}
	return &t, nil
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func mapLoadToResponse(l Load, legs []DispatchLeg, assignments []LoadAssignment) LoadResponse {
	resp := LoadResponse{
		ID:                l.ID.String(),
		CompanyID:         l.CompanyID.String(),
		LoadNumber:        l.LoadNumber,
		CustomerName:      l.CustomerName,
		CustomerRef:       l.CustomerRef,
		PickupLocation:    l.PickupLocation,
		PickupDate:        formatDatePtr(l.PickupDate),
		DeliveryLocation:  l.DeliveryLocation,
		DeliveryDate:      formatDatePtr(l.DeliveryDate),
		Commodity:         l.Commodity,
		Weight:            l.Weight,
		Pieces:            l.Pieces,
		TrailerType:       l.TrailerType,
		ContainerNumber:   l.ContainerNumber,
		SSL:               l.SSL,
		ChassisProvider:   l.ChassisProvider,
		ChassisType:       l.ChassisType,
		PortOfLoading:     l.PortOfLoading,
		PortOfDischarge:   l.PortOfDischarge,
		BookingNumber:     l.BookingNumber,
		TempMin:           l.TempMin,
		TempMax:           l.TempMax,
		IsFSMACompliant:   l.IsFSMACompliant,
		LiquidType:        l.LiquidType,
		IsHazmat:          l.IsHazmat,
		UNNumber:          l.UNNumber,
		TarpRequired:      l.TarpRequired,
		OversizePermit:    l.OversizePermit,
		SealNumber:        l.SealNumber,
		Rate:              l.Rate.StringFixed(2),
		Miles:             l.Miles,
		Status:            l.Status,
		IsMultiDriverLoad: l.IsMultiDriverLoad,
		DispatchStatus:    l.DispatchStatus,
	}
	if l.AssignedDriverID != nil {
		s := l.AssignedDriverID.String()
		resp.AssignedDriverID = &s
	}
	if l.AssignedTruckID != nil {
		s := l.AssignedTruckID.String()
		resp.AssignedTruckID = &s
	}
	for _, leg := range legs {
		resp.DispatchLegs = append(resp.DispatchLegs, mapLegToResponse(leg))
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, mapAssignmentToResponse(a))
	}
	return resp
}

func mapLegToResponse(leg DispatchLeg) DispatchLegResponse {
	resp := DispatchLegResponse{
		ID:              leg.ID.String(),
		LoadID:          leg.LoadID.String(),
		LegOrder:        leg.LegOrder,
		ActionType:      leg.ActionType,
		Location:        leg.Location,
		DriverID:        leg.DriverID.String(),
		ScheduledDate:   formatDatePtr(leg.ScheduledDate),
		ETA:             formatTimePtr(leg.ETA),
		ETD:             formatTimePtr(leg.ETD),
		ActualArrival:   formatTimePtr(leg.ActualArrival),
		ActualDeparture: formatTimePtr(leg.ActualDeparture),
		Completed:       leg.Completed,
	}
	if leg.TruckID != nil {
		s := leg.TruckID.String()
		resp.TruckID = &s
	}
	return resp
}

func mapAssignmentToResponse(a LoadAssignment) LoadAssignmentResponse {
	return LoadAssignmentResponse{
		ID:       a.ID.String(),
		LoadID:   a.LoadID.String(),
		DriverID: a.DriverID.String(),
		Status:   a.Status,
		Notes:    a.Notes,
	}
}
