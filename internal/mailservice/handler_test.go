package mailservice

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService(body string) (*MailService, *MockMailer) {
	mockMailer := &MockMailer{}
	ctx, cancel := context.WithCancel(context.Background())

	s := &MailService{
		mb:         &MockMessageConsumer{Body: body},
		m:          mockMailer,
		ownerEmail: "owner@studio.example",
		logger:     slog.New(slog.NewTextHandler(os.Stdout, nil)),
		ctx:        ctx,
		cancel:     cancel,
	}

	return s, mockMailer
}

func TestSendContactNotifications(t *testing.T) {
	s, mailer := newTestService(`{"name": "Jane", "email": "jane@example.com", "subject": "Hi", "message": "Hello"}`)
	t.Cleanup(s.Close)

	s.SendContactNotifications()

	assert.Eventually(t, mailer.IsCalled, 2*time.Second, 50*time.Millisecond)
	assert.Equal(t, "owner@studio.example", mailer.GetRecipient())
}

func TestSendWelcomeEmails(t *testing.T) {
	s, mailer := newTestService(`{"email": "reader@example.com"}`)
	t.Cleanup(s.Close)

	s.SendWelcomeEmails()

	assert.Eventually(t, mailer.IsCalled, 2*time.Second, 50*time.Millisecond)
	assert.Equal(t, "reader@example.com", mailer.GetRecipient())
}
