package events

import "time"

const LoadBillingFinalizedTopic = "billing.load_billing.finalized.v1"

type LoadBillingFinalizedEvent struct {
	EventType   string    `json:"event_type"`
	BillingID   string    `json:"billing_id"`
	LoadID      string    `json:"load_id"`
	CompanyID   string    `json:"company_id"`
	TotalAmount string    `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
