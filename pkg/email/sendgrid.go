package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/umputun/delta/pkg/config"
)

// SendGridProvider sends mail through the SendGrid API
type SendGridProvider struct {
	from   string
	client *sendgrid.Client
}

// NewSendGridProvider creates a SendGrid provider from the email config
func NewSendGridProvider(cfg config.EmailConfig) *SendGridProvider {
	return &SendGridProvider{
		from:   cfg.From,
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
	}
}

// Send delivers the message through SendGrid
func (p *SendGridProvider) Send(ctx context.Context, msg Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}

	from := mail.NewEmail("", p.from)
	to := mail.NewEmail("", msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")

	resp, err := p.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}

	// sendgrid reports success with 2xx
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
