package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/accounting"
	reportingerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/reporting/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	RevenueSummaryKeyPrefix = "reports:revenue:"
	revenueSummaryTTL       = 5 * time.Minute

	topN             = 10
	defaultRangeDays = 30
	kpiRangeDays     = 90
)

func GetRevenueSummaryKey(companyID, start, end string) string {
	return RevenueSummaryKeyPrefix + companyID + ":" + start + ":" + end
}

type Service interface {
	GetRevenueSummary(ctx context.Context, companyID, start, end string) (RevenueSummaryResponse, error)
	GetKPIScores(ctx context.Context, companyID string) (KPIScoresResponse, error)
	ExportRevenueReport(ctx context.Context, companyID, start, end string) ([]byte, string, error)
}

type service struct {
	repo           Repository
	accountingRepo accounting.Repository
	rdb            *redis.Client
	sf             *singleflight.Group
	logger         *zap.Logger
}

func NewService(
	repo Repository,
	accountingRepo accounting.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.service")
	}
	return &service{
		repo:           repo,
		accountingRepo: accountingRepo,
		rdb:            rdb,
		sf:             &singleflight.Group{},
		logger:         l,
	}
}

func (s *service) GetRevenueSummary(ctx context.Context, companyID, start, end string) (RevenueSummaryResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return RevenueSummaryResponse{}, reportingerrors.ErrInvalidCompanyID
	}
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return RevenueSummaryResponse{}, err
	}

	cacheKey := GetRevenueSummaryKey(companyID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp RevenueSummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Dashboards poll this endpoint; singleflight collapses the stampede
	// after a cache miss.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.buildSummary(ctx, companyID, startDate, endDate)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, revenueSummaryTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("revenue summary failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return RevenueSummaryResponse{}, err
	}

	return v.(RevenueSummaryResponse), nil
}

func (s *service) buildSummary(ctx context.Context, companyID string, startDate, endDate time.Time) (RevenueSummaryResponse, error) {
	rows, err := s.repo.FindDeliveredLoads(ctx, companyID, startDate, endDate)
	if err != nil {
		return RevenueSummaryResponse{}, err
	}
	return aggregate(rows, startDate, endDate), nil
}

func (s *service) GetKPIScores(ctx context.Context, companyID string) (KPIScoresResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return KPIScoresResponse{}, reportingerrors.ErrInvalidCompanyID
	}

	revenue, err := s.accountingRepo.SumInvoicesByStatus(ctx, companyID, []string{accounting.InvoiceStatusPaid})
	if err != nil {
		s.logger.Error("kpi revenue sum failed", zap.Error(err))
		return KPIScoresResponse{}, err
	}
	costs, err := s.accountingRepo.SumBillsByStatus(ctx, companyID, []string{accounting.BillStatusPaid})
	if err != nil {
		s.logger.Error("kpi costs sum failed", zap.Error(err))
		return KPIScoresResponse{}, err
	}

	marginPct := 0.0
	if revenue > 0 {
		marginPct = (revenue - costs) / revenue * 100
	}

	delivered, err := s.repo.CountLoadsByStatus(ctx, companyID, "delivered")
	if err != nil {
		return KPIScoresResponse{}, err
	}
	total, err := s.repo.CountLoads(ctx, companyID)
	if err != nil {
		return KPIScoresResponse{}, err
	}

	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	startDate := endDate.AddDate(0, 0, -kpiRangeDays)
	summary, err := s.buildSummary(ctx, companyID, startDate, endDate)
	if err != nil {
		return KPIScoresResponse{}, err
	}
	revPerMile, _ := summary.revenuePerMileFloat()

	profitability := profitabilityScore(marginPct)
	utilization := utilizationScore(delivered, total)
	efficiency := efficiencyScore(revPerMile)

	return KPIScoresResponse{
		Profitability:  profitability,
		Utilization:    utilization,
		Efficiency:     efficiency,
		Overall:        (profitability + utilization + efficiency) / 3,
		MarginPercent:  decimal.NewFromFloat(marginPct).Round(2).StringFixed(2),
		DeliveredLoads: delivered,
		TotalLoads:     total,
	}, nil
}

func (s *service) ExportRevenueReport(ctx context.Context, companyID, start, end string) ([]byte, string, error) {
	summary, err := s.GetRevenueSummary(ctx, companyID, start, end)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Revenue"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Period")
	f.SetCellValue(sheet, "B1", summary.StartDate+" to "+summary.EndDate)
	f.SetCellValue(sheet, "A2", "Total Loads")
	f.SetCellValue(sheet, "B2", summary.TotalLoads)
	f.SetCellValue(sheet, "A3", "Total Revenue")
	f.SetCellValue(sheet, "B3", summary.TotalRevenue)
	f.SetCellValue(sheet, "A4", "Total Miles")
	f.SetCellValue(sheet, "B4", summary.TotalMiles)
	f.SetCellValue(sheet, "A5", "Revenue Per Mile")
	f.SetCellValue(sheet, "B5", summary.RevenuePerMile)

	row := 7
	f.SetCellValue(sheet, cell("A", row), "Lane")
	f.SetCellValue(sheet, cell("B", row), "Loads")
	f.SetCellValue(sheet, cell("C", row), "Revenue")
	for _, lane := range summary.TopLanes {
		row++
		f.SetCellValue(sheet, cell("A", row), lane.Lane)
		f.SetCellValue(sheet, cell("B", row), lane.LoadCount)
		f.SetCellValue(sheet, cell("C", row), lane.Revenue)
	}

	row += 2
	f.SetCellValue(sheet, cell("A", row), "Driver")
	f.SetCellValue(sheet, cell("B", row), "Loads")
	f.SetCellValue(sheet, cell("C", row), "Revenue")
	for _, d := range summary.TopDrivers {
		row++
		f.SetCellValue(sheet, cell("A", row), d.DriverName)
		f.SetCellValue(sheet, cell("B", row), d.LoadCount)
		f.SetCellValue(sheet, cell("C", row), d.Revenue)
	}

	row += 2
	f.SetCellValue(sheet, cell("A", row), "Month")
	f.SetCellValue(sheet, cell("B", row), "Loads")
	f.SetCellValue(sheet, cell("C", row), "Revenue")
	for _, m := range summary.MonthlyTrend {
		row++
		f.SetCellValue(sheet, cell("A", row), m.Month)
		f.SetCellValue(sheet, cell("B", row), m.LoadCount)
		f.SetCellValue(sheet, cell("C", row), m.Revenue)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("revenue export write failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("revenue_%s_%s.xlsx", summary.StartDate, summary.EndDate)
	return buf.Bytes(), filename, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	endDate := time.Now().UTC().Truncate(24 * time.Hour)
	startDate := endDate.AddDate(0, 0, -defaultRangeDays)

	var err error
	if start != "" {
		if startDate, err = time.Parse("2006-01-02", start); err != nil {
			return time.Time{}, time.Time{}, reportingerrors.ErrInvalidDateRange
		}
	}
	if end != "" {
		if endDate, err = time.Parse("2006-01-02", end); err != nil {
			return time.Time{}, time.Time{}, reportingerrors.ErrInvalidDateRange
		}
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, reportingerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

type revenueBucket struct {
	count   int
	revenue money.Money
}

func aggregate(rows []DeliveredLoadRow, startDate, endDate time.Time) RevenueSummaryResponse {
	totalRevenue := money.Zero()
	totalMiles := 0.0

	lanes := map[string]*revenueBucket{}
	months := map[string]*revenueBucket{}
	drivers := map[string]*revenueBucket{}
	driverNames := map[string]string{}

	for _, r := range rows {
		totalRevenue = totalRevenue.Add(r.Rate)
		totalMiles += r.Miles

		lane := r.PickupLocation + " → " + r.DeliveryLocation
		bump(lanes, lane, r.Rate)

		monthSource := r.CreatedAt
		if r.DeliveryDate != nil {
			monthSource = *r.DeliveryDate
		}
		bump(months, monthSource.Format("2006-01"), r.Rate)

		if r.DriverID != nil {
			id := r.DriverID.String()
			bump(drivers, id, r.Rate)
			driverNames[id] = r.DriverName
		}
	}

	revenuePerMile := money.Zero()
	if totalMiles > 0 {
		revenuePerMile = totalRevenue.Div(decimal.NewFromFloat(totalMiles))
	}

	resp := RevenueSummaryResponse{
		StartDate:      startDate.Format("2006-01-02"),
		EndDate:        endDate.Format("2006-01-02"),
		TotalLoads:     len(rows),
		TotalRevenue:   totalRevenue.String(),
		TotalMiles:     totalMiles,
		RevenuePerMile: revenuePerMile.String(),
		TopLanes:       make([]LaneStat, 0, topN),
		MonthlyTrend:   make([]MonthStat, 0, len(months)),
		TopDrivers:     make([]DriverStat, 0, topN),
	}

	for _, key := range topKeysByRevenue(lanes, topN) {
		b := lanes[key]
		resp.TopLanes = append(resp.TopLanes, LaneStat{Lane: key, LoadCount: b.count, Revenue: b.revenue.String()})
	}

	monthKeys := make([]string, 0, len(months))
	for k := range months {
		monthKeys = append(monthKeys, k)
	}
	sort.Strings(monthKeys)
	for _, key := range monthKeys {
		b := months[key]
		resp.MonthlyTrend = append(resp.MonthlyTrend, MonthStat{Month: key, LoadCount: b.count, Revenue: b.revenue.String()})
	}

	for _, key := range topKeysByRevenue(drivers, topN) {
		b := drivers[key]
		resp.TopDrivers = append(resp.TopDrivers, DriverStat{
			DriverID:   key,
			DriverName: driverNames[key],
			LoadCount:  b.count,
			Revenue:    b.revenue.String(),
		})
	}

	return resp
}

func bump(m map[string]*revenueBucket, key string, amount money.Money) {
	b, ok := m[key]
	if !ok {
		b = &revenueBucket{revenue: money.Zero()}
		m[key] = b
	}
	b.count++
	b.revenue = b.revenue.Add(amount)
}

// topKeysByRevenue sorts descending by revenue, key ascending as the
// tiebreak so output is deterministic.
func topKeysByRevenue(m map[string]*revenueBucket, n int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		cmp := m[keys[i]].revenue.Decimal().Cmp(m[keys[j]].revenue.Decimal())
		if cmp != 0 {
			return cmp > 0
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func (r RevenueSummaryResponse) revenuePerMileFloat() (float64, error) {
	d, err := decimal.NewFromString(r.RevenuePerMile)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}
