package events

import "time"

const InvoiceGeneratedTopic = "billing.invoice.generated.v1"

type InvoiceGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	InvoiceID  string    `json:"invoice_id"`
	TemplateID string    `json:"template_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	Amount     string    `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
