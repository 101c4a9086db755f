package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/reporting"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReporting struct {
	summary reporting.RevenueSummaryResponse
	kpis    reporting.KPIScoresResponse
	err     error
}

func (f *fakeReporting) GetRevenueSummary(ctx context.Context, companyID, start, end string) (reporting.RevenueSummaryResponse, error) {
	return f.summary, f.err
}

func (f *fakeReporting) GetKPIScores(ctx context.Context, companyID string) (reporting.KPIScoresResponse, error) {
	return f.kpis, f.err
}

func (f *fakeReporting) ExportRevenueReport(ctx context.Context, companyID, start, end string) ([]byte, string, error) {
	return nil, "", f.err
}

type fakeCompleter struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestService_GetFinancialInsights(t *testing.T) {
	rep := &fakeReporting{
		summary: reporting.RevenueSummaryResponse{TotalRevenue: "48200.00"},
		kpis:    reporting.KPIScoresResponse{Profitability: 62},
	}
	completer := &fakeCompleter{
		reply: "Here is the analysis:\n```json\n" +
			`[{"category":"revenue","title":"Lane concentration","detail":"Top lane carries 40% of revenue","severity":"medium","confidence":0.8}]` +
			"\n```",
	}
	svc := NewService(rep, completer)

	out, err := svc.GetFinancialInsights(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Lane concentration", out[0].Title)
	assert.Equal(t, "medium", out[0].Severity)
	assert.InDelta(t, 0.8, out[0].Confidence, 0.001)

	// The aggregated metrics ride along in the prompt.
	assert.True(t, strings.Contains(completer.prompt, "48200.00"))
}

func TestService_GetFinancialInsights_CompletionErrorIsEmpty(t *testing.T) {
	svc := NewService(&fakeReporting{}, &fakeCompleter{err: errors.New("rate limited")})

	out, err := svc.GetFinancialInsights(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestService_GetFinancialInsights_GarbledReplyIsEmpty(t *testing.T) {
	svc := NewService(&fakeReporting{}, &fakeCompleter{reply: "I could not find anything unusual."})

	out, err := svc.GetFinancialInsights(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestService_GetFinancialInsights_ReportingErrorIsEmpty(t *testing.T) {
	svc := NewService(&fakeReporting{err: errors.New("db down")}, &fakeCompleter{})

	out, err := svc.GetFinancialInsights(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseInsights_RejectsNonArray(t *testing.T) {
	_, err := parseInsights(`{"category":"x"}`)
	assert.Error(t, err)
}
