package producer

import (
	"context"
	"encoding/json"
	"time"

	"optitrack/internal/events"
	"optitrack/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// EmailPublisher hands email requests to the notification topic.
// It satisfies notification.Sender; delivery happens in the consumer.
type EmailPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

func NewEmailPublisher(writer MessageWriter) *EmailPublisher {
	return &EmailPublisher{writer: writer, now: time.Now}
}

func (p *EmailPublisher) Send(ctx context.Context, to, subject, body string) error {
	event := events.EmailRequestedEvent{
		EventType:  "email_requested",
		RequestID:  contextutil.GetRequestID(ctx),
		To:         to,
		Subject:    subject,
		Body:       body,
		OccurredAt: p.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(to),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
