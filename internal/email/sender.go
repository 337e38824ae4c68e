// internal/email/sender.go
package email

import (
	"context"
	"time"

	stderrors "astral-content/internal/common/errors"
	"astral-content/internal/common/logger"
	"astral-content/internal/subscriber"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the slice of the SES client the mailer needs.
type SESAPI interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// Mailer renders and dispatches subscriber email over SES. When disabled by
// config it logs the message instead of sending, which keeps local
// development from needing AWS credentials.
type Mailer struct {
	client   SESAPI
	renderer *Renderer
	from     string
	enabled  bool
	logger   logger.Logger
}

func NewMailer(client SESAPI, renderer *Renderer, from string, enabled bool, log logger.Logger) *Mailer {
	return &Mailer{
		client:   client,
		renderer: renderer,
		from:     from,
		enabled:  enabled,
		logger:   log.WithFields(map[string]interface{}{"component": "mailer"}),
	}
}

// SendWelcome renders and sends the welcome email for a new subscriber.
func (m *Mailer) SendWelcome(ctx context.Context, sub *subscriber.Subscriber) error {
	subject, body := m.renderer.RenderWelcome(ctx, sub)
	return m.send(ctx, "welcome", sub.Email, subject, body)
}

// SendDaily renders and sends a daily newsletter email.
func (m *Mailer) SendDaily(ctx context.Context, sub *subscriber.Subscriber, content string) error {
	subject, body := m.renderer.RenderDaily(ctx, sub, content, time.Now())
	return m.send(ctx, "daily", sub.Email, subject, body)
}

func (m *Mailer) send(ctx context.Context, messageType, to, subject, body string) error {
	if !m.enabled {
		m.logger.Info("email delivery disabled, skipping send", map[string]interface{}{
			"type": messageType,
			"to":   to,
		})
		return nil
	}

	input := &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return stderrors.NewEmailSendFailedError(messageType, err)
	}

	m.logger.Info("email sent", map[string]interface{}{
		"type": messageType,
		"to":   to,
	})
	return nil
}
