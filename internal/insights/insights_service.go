package insights

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/reporting"

	"go.uber.org/zap"
)

const insightsPrompt = `You are a financial analyst for a trucking company.
Given the JSON metrics below, identify notable trends, risks, and anomalies.
Respond with ONLY a JSON array where each element has the shape
{"category": string, "title": string, "detail": string, "severity": "low"|"medium"|"high", "confidence": number between 0 and 1}.

Metrics:
`

type Service interface {
	GetFinancialInsights(ctx context.Context, companyID string) ([]Insight, error)
}

type service struct {
	reporting reporting.Service
	completer ChatCompleter
	logger    *zap.Logger
}

func NewService(reportingService reporting.Service, completer ChatCompleter, logger ...*zap.Logger) Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insights.service")
	}
	return &service{
		reporting: reportingService,
		completer: completer,
		logger:    l,
	}
}

// GetFinancialInsights narrates the company's recent metrics. Every failure
// path degrades to an empty slice; an empty result means "no insights", not
// "no anomalies".
func (s *service) GetFinancialInsights(ctx context.Context, companyID string) ([]Insight, error) {
	summary, err := s.reporting.GetRevenueSummary(ctx, companyID, "", "")
	if err != nil {
		s.logger.Error("insights revenue summary failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return []Insight{}, nil
	}
	kpis, err := s.reporting.GetKPIScores(ctx, companyID)
	if err != nil {
		s.logger.Error("insights kpi scores failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return []Insight{}, nil
	}

	payload, err := json.Marshal(struct {
		Revenue reporting.RevenueSummaryResponse `json:"revenue"`
		KPIs    reporting.KPIScoresResponse      `json:"kpis"`
	}{Revenue: summary, KPIs: kpis})
	if err != nil {
		s.logger.Error("insights payload marshal failed", zap.Error(err))
		return []Insight{}, nil
	}

	raw, err := s.completer.Complete(ctx, insightsPrompt+string(payload))
	if err != nil {
		s.logger.Error("insights completion failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return []Insight{}, nil
	}

	parsed, err := parseInsights(raw)
	if err != nil {
		s.logger.Error("insights parse failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return []Insight{}, nil
	}

	s.logger.Info("financial insights generated",
		zap.String("company_id", companyID),
		zap.Int("count", len(parsed)),
	)
	return parsed, nil
}

// parseInsights pulls the first JSON array out of the model's reply. Models
// wrap output in code fences or prose often enough that a strict unmarshal
// of the whole body is not workable.
func parseInsights(raw string) ([]Insight, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON array in completion")
	}

	var out []Insight
	if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err != nil {
		return nil, err
	}
	return out, nil
}
