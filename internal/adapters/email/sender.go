// Package email delivers outbound notifications through an external provider.
// The app sends one message at a time (maintenance alerts), so the interface is
// deliberately a single Send.
package email

import (
	"context"
	"time"
)

// Message is one outbound email.
type Message struct {
	To      []string // Recipient email addresses
	From    string   // Sender address (e.g. "Quarters Desk <noreply@quarters.example>"); provider default when empty
	Subject string
	HTML    string // HTML body
	ReplyTo string // Reply-to address, optional
}

// Receipt is the provider's acknowledgement of an accepted message.
type Receipt struct {
	MessageID string    // Provider's message ID for tracking
	SentAt    time.Time // When the send was accepted
}

// Sender delivers messages via an external provider.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}
