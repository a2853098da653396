package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	"github.com/draftwerk/studiohub/internal/common"
)

func NewMailService(mb common.MessageConsumer, host, username, password, sender, ownerEmail string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:         mb,
		m:          NewMailer(host, port, username, password, sender, NewTemplate()),
		ownerEmail: ownerEmail,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SendContactNotifications forwards contact-form submissions to the site owner.
func (s *MailService) SendContactNotifications() {
	s.consume(common.ContactCreatedKey, common.ContactCreatedQueue, "contact_notification.html", func(body []byte) (string, any, error) {
		var data struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Subject string `json:"subject"`
			Message string `json:"message"`
		}

		if err := json.Unmarshal(body, &data); err != nil {
			return "", nil, err
		}

		return s.ownerEmail, data, nil
	})
}

// SendEnquiryNotifications forwards service enquiries to the site owner.
func (s *MailService) SendEnquiryNotifications() {
	s.consume(common.EnquiryCreatedKey, common.EnquiryCreatedQueue, "enquiry_notification.html", func(body []byte) (string, any, error) {
		var data struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Service string `json:"service"`
			Budget  string `json:"budget"`
			Message string `json:"message"`
		}

		if err := json.Unmarshal(body, &data); err != nil {
			return "", nil, err
		}

		return s.ownerEmail, data, nil
	})
}

// SendWelcomeEmails greets new newsletter subscribers.
func (s *MailService) SendWelcomeEmails() {
	s.consume(common.NewsletterSubscribeKey, common.NewsletterSubscribeQueue, "welcome_email.html", func(body []byte) (string, any, error) {
		var data struct {
			Email string `json:"email"`
		}

		if err := json.Unmarshal(body, &data); err != nil {
			return "", nil, err
		}

		return data.Email, data, nil
	})
}

// consume drains one queue, mapping each delivery to a recipient and template
// payload. Sending retries with exponential backoff and jitter; a delivery is
// acked either way so a poisoned message cannot wedge the queue.
func (s *MailService) consume(key common.BindingKey, queue common.Queue, templateFile string, decode func([]byte) (string, any, error)) {
	msgs, err := s.mb.Consume(key, common.EngagementExchange, queue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("queue", string(queue)), slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				recipient, payload, err := decode(msg.Body)
				if err != nil {
					s.logger.Error("could not unmarshal message", slog.String("queue", string(queue)), slog.String("error", err.Error()))
					msg.Ack(false)
					continue
				}

				const maxRetries = 5
				const baseDelay = 500 * time.Millisecond

				var attempt int
				for attempt = 0; attempt < maxRetries; attempt++ {
					err = s.m.send(recipient, payload, templateFile)
					if err == nil {
						s.logger.Info("email sent", slog.String("template", templateFile), slog.String("recipient", recipient))
						break
					}

					delay := time.Duration(rand.Int63n(int64(baseDelay) << uint(attempt)))
					s.logger.Info("delaying email", slog.String("recipient", recipient), slog.Int("attempt", attempt), slog.Duration("delay", delay))
					time.Sleep(delay)
				}

				if attempt == maxRetries {
					s.logger.Error("could not send email", slog.String("template", templateFile), slog.String("recipient", recipient))
				}

				msg.Ack(false)

			case <-s.ctx.Done():
				s.logger.Info("stopping mail consumer", slog.String("queue", string(queue)))
				return
			}
		}
	}()
}

func (s *MailService) Close() {
	s.cancel()
}
