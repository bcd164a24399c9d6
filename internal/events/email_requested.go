package events

import "time"

const EmailRequestedTopic = "optitrack.notification.email.v1"

// EmailRequestedEvent asks the notification consumer to deliver one email.
type EmailRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurred_at"`
}
