package payroll

import "context"

// SyncProvider pushes a paid run to an external payroll processor.
// The Gusto integration plugs in here; the default provider does nothing.
type SyncProvider interface {
	SyncRun(ctx context.Context, run *PayrollRun, stubs []EmployeePaystub) error
}

type noopSyncProvider struct{}

func NewNoopSyncProvider() SyncProvider {
	return noopSyncProvider{}
}

func (noopSyncProvider) SyncRun(ctx context.Context, run *PayrollRun, stubs []EmployeePaystub) error {
	return nil
}
