package accounting

import (
	"context"
	"database/sql"
	"testing"
	"time"

	accountingerrors "github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/accounting/errors"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	invoices map[string]Invoice
	bills    map[string]Bill

	sumInvoicesFn func(statuses []string) float64
	sumBillsFn    func(statuses []string) float64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		invoices: map[string]Invoice{},
		bills:    map[string]Bill{},
	}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) CreateInvoice(ctx context.Context, inv *Invoice) error {
	f.invoices[inv.ID.String()] = *inv
	return nil
}
func (f *fakeRepo) FindInvoices(ctx context.Context, companyID, status string) ([]Invoice, error) {
	var out []Invoice
	for _, inv := range f.invoices {
		if status == "" || inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (f *fakeRepo) FindInvoiceByID(ctx context.Context, companyID, id string) (*Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}
func (f *fakeRepo) UpdateInvoice(ctx context.Context, inv *Invoice) error {
	f.invoices[inv.ID.String()] = *inv
	return nil
}
func (f *fakeRepo) CreateBill(ctx context.Context, b *Bill) error {
	f.bills[b.ID.String()] = *b
	return nil
}
func (f *fakeRepo) FindBills(ctx context.Context, companyID, status string) ([]Bill, error) {
	var out []Bill
	for _, b := range f.bills {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeRepo) FindBillByID(ctx context.Context, companyID, id string) (*Bill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}
func (f *fakeRepo) UpdateBill(ctx context.Context, b *Bill) error {
	f.bills[b.ID.String()] = *b
	return nil
}
func (f *fakeRepo) SumInvoicesByStatus(ctx context.Context, companyID string, statuses []string) (float64, error) {
	if f.sumInvoicesFn != nil {
		return f.sumInvoicesFn(statuses), nil
	}
	return 0, nil
}
func (f *fakeRepo) SumBillsByStatus(ctx context.Context, companyID string, statuses []string) (float64, error) {
	if f.sumBillsFn != nil {
		return f.sumBillsFn(statuses), nil
	}
	return 0, nil
}
func (f *fakeRepo) SumInvoicesPaidSince(ctx context.Context, companyID string, since time.Time) (float64, error) {
	return 0, nil
}
func (f *fakeRepo) CountInvoicesByStatus(ctx context.Context, companyID string, statuses []string) (int64, error) {
	return int64(len(f.invoices)), nil
}

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestService_CreateInvoice_NumbersAndDefaults(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo, &fakeCounter{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CreateInvoice(context.Background(), uuid.NewString(), CreateInvoiceRequest{
		CustomerName: "Acme Produce",
		IssueDate:    "2026-09-01",
		Amount:       money.FromFloat(1200),
	})
	assert.NoError(t, err)
	assert.Equal(t, "INV-000001", resp.InvoiceNumber)
	assert.Equal(t, InvoiceStatusDraft, resp.Status)
	// Due date defaults to net 30.
	assert.Equal(t, "2026-10-01", resp.DueDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_SetInvoiceStatus_VoidIsTerminal(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	inv := Invoice{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Status:    InvoiceStatusVoid,
		Amount:    money.FromFloat(100),
		IssueDate: time.Now(),
		DueDate:   time.Now(),
	}
	repo.invoices[inv.ID.String()] = inv

	svc := NewService(db, repo, &fakeCounter{})

	_, err := svc.SetInvoiceStatus(context.Background(), inv.CompanyID.String(), inv.ID.String(), SetInvoiceStatusRequest{
		Status: InvoiceStatusPaid,
	})
	assert.ErrorIs(t, err, accountingerrors.ErrInvoiceVoid)
}

func TestService_GetDashboardSummary_Margin(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.sumInvoicesFn = func(statuses []string) float64 {
		for _, s := range statuses {
			if s == InvoiceStatusPaid {
				return 1000
			}
		}
		return 400
	}
	repo.sumBillsFn = func(statuses []string) float64 {
		for _, s := range statuses {
			if s == BillStatusPaid {
				return 250
			}
		}
		return 100
	}

	svc := NewService(db, repo, &fakeCounter{})

	resp, err := svc.GetDashboardSummary(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Equal(t, "400.00", resp.TotalReceivable)
	assert.Equal(t, "100.00", resp.TotalPayable)
	assert.Equal(t, "1000.00", resp.TotalRevenue)
	assert.Equal(t, "250.00", resp.TotalCosts)
	assert.Equal(t, "750.00", resp.Margin)
	assert.Equal(t, "75.00", resp.MarginPercent)
}

func TestService_GetDashboardSummary_ZeroRevenue(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), &fakeCounter{})

	resp, err := svc.GetDashboardSummary(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Equal(t, "0.00", resp.MarginPercent)
}
