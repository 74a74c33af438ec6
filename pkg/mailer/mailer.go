// Package mailer adapts the transactional email provider.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ErrEmptyRecipient is returned when a message has no recipient
var ErrEmptyRecipient = errors.New("recipient is required")

// Message is a single outbound email
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers one message and returns the provider's message id
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// ResendMailer sends through the Resend API
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer returns nil when apiKey is empty so callers can treat
// the newsletter as not configured.
func NewResendMailer(apiKey string) *ResendMailer {
	if apiKey == "" {
		return nil
	}
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send implements Sender
func (m *ResendMailer) Send(ctx context.Context, msg *Message) (string, error) {
	if msg.To == "" {
		return "", ErrEmptyRecipient
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
