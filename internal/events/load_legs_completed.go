package events

import "time"

const LoadLegsCompletedTopic = "tms.load.legs_completed.v1"

type LoadLegsCompletedEvent struct {
	EventType  string    `json:"event_type"`
	LoadID     string    `json:"load_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
