package email

import (
	"context"
	"testing"
)

func TestNoopSenderSend(t *testing.T) {
	s := NewNoopSender()

	rcpt, err := s.Send(context.Background(), Message{
		To:      []string{"facilities@quarters.example"},
		Subject: "Maintenance issue at Falcon Camp",
		HTML:    "<p>leak</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if rcpt.MessageID == "" {
		t.Error("receipt should carry a message ID")
	}
	if rcpt.SentAt.IsZero() {
		t.Error("receipt should carry a timestamp")
	}
}
