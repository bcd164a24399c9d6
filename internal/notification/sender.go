package notification

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a plain text message to one recipient.
// Callers treat delivery as best effort: errors are logged, never retried.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NoopSender only logs. It is used when no broker or mail provider is configured.
type NoopSender struct {
	logger *zap.Logger
}

func NewNoopSender(logger ...*zap.Logger) *NoopSender {
	l := zap.L().Named("notification.noop")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.noop")
	}
	return &NoopSender{logger: l}
}

func (n *NoopSender) Send(_ context.Context, to, subject, _ string) error {
	n.logger.Info("notification dropped, no sender configured",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// SendAsync fires Send on its own goroutine and logs the outcome.
// ctx values are kept but its cancellation is not, so the send outlives the request.
func SendAsync(ctx context.Context, sender Sender, logger *zap.Logger, to, subject, body string) {
	if sender == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := sender.Send(detached, to, subject, body); err != nil {
			logger.Warn("notification send failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}()
}
