// Package email sends plain-text messages through a configurable transport,
// either direct SMTP or the SendGrid API.
package email

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/umputun/delta/pkg/config"
)

// Message is one outgoing email. The sender address comes from the provider
// configuration.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Provider sends messages through a concrete transport
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// New creates the provider selected by cfg.Provider
func New(cfg config.EmailConfig) (Provider, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPProvider(cfg), nil
	case "sendgrid":
		return NewSendGridProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

// validateMessage rejects messages with a bad recipient or no subject and
// body at all
func validateMessage(msg Message) error {
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	if msg.Subject == "" && msg.Body == "" {
		return fmt.Errorf("message needs a subject or a body")
	}
	return nil
}
