package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// NoopSender logs sends without delivering anything. It is the default when
// no provider key is configured, and the sender used in tests.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the message and reports success.
// POST: no delivery is attempted
func (s *NoopSender) Send(_ context.Context, msg Message) (Receipt, error) {
	slog.Info("email_event", "event", "noop_send", "to", msg.To, "subject", msg.Subject)
	return Receipt{
		MessageID: "noop-" + uuid.New().String(),
		SentAt:    time.Now(),
	}, nil
}
