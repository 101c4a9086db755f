package events

import "time"

const LoadCreatedTopic = "tms.load.lifecycle.v1"

type LoadCreatedEvent struct {
	EventType     string    `json:"event_type"`
	LoadID        string    `json:"load_id"`
	LoadNumber    string    `json:"load_number"`
	CompanyID     string    `json:"company_id"`
	IsMultiDriver bool      `json:"is_multi_driver"`
	OccurredAt    time.Time `json:"occurred_at"`
}
