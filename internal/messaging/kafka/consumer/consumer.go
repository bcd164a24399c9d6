package consumer

import (
	"context"
	"encoding/json"

	"optitrack/internal/events"
	"optitrack/internal/metrics"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Deliverer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsumeEmailRequests delivers queued emails until ctx is cancelled.
// Every message is committed after one attempt; failed deliveries are logged, not retried.
func ConsumeEmailRequests(ctx context.Context, reader MessageReader, deliverer Deliverer, logger *zap.Logger) {
	log := logger.Named("kafka.consumer.email")
	log.Info("email consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("email consumer stopped")
				return
			}
			log.Error("fetch email message failed", zap.Error(err))
			continue
		}

		var event events.EmailRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			metrics.EmailsDelivered.WithLabelValues("malformed").Inc()
			log.Error("decode email_requested event failed", zap.Error(err))
		} else if err := deliverer.Send(ctx, event.To, event.Subject, event.Body); err != nil {
			metrics.EmailsDelivered.WithLabelValues("failed").Inc()
			log.Warn("email delivery failed",
				zap.String("request_id", event.RequestID),
				zap.String("to", event.To),
				zap.String("subject", event.Subject),
				zap.Error(err),
			)
		} else {
			metrics.EmailsDelivered.WithLabelValues("delivered").Inc()
			log.Info("email delivered",
				zap.String("request_id", event.RequestID),
				zap.String("to", event.To),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit email message failed", zap.Error(err))
		}
	}
}
