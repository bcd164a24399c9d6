package app

import (
	"context"
	"fmt"

	"optitrack/internal/config"
	"optitrack/internal/events"
	"optitrack/internal/messaging/kafka/consumer"
	"optitrack/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer delivers queued email requests until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	var deliverer consumer.Deliverer
	if cfg.Mail.ResendAPIKey != "" {
		deliverer = notification.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.From)
	} else {
		logger.Warn("RESEND_API_KEY not set, emails are only logged")
		deliverer = notification.NewNoopSender(logger)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmailRequestedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeEmailRequests(ctx, reader, deliverer, logger)

	logger.Info("consumer shutting down")
	return nil
}
