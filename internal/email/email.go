// Package email delivers transactional notifications over SMTP.
package email

import (
	"context"

	"leadgenie_backend/internal/config"
)

// HotLeadAlert carries everything the sales inbox needs to act on a hot
// lead without opening the portal.
type HotLeadAlert struct {
	LeadName    string
	LeadEmail   string
	Company     string
	Score       int
	Category    string
	Reasoning   string
	NextActions []string
}

// Sender delivers notification emails.
type Sender interface {
	SendHotLeadAlert(ctx context.Context, toEmail string, alert HotLeadAlert) error
}

// NewSender returns the configured sender: SMTP when email is enabled,
// otherwise a no-op that only logs would-be deliveries.
func NewSender(cfg *config.Config) (Sender, error) {
	if !cfg.EmailEnabled {
		return &NoopSender{}, nil
	}
	return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFromAddress, cfg.EmailFromName), nil
}

// NoopSender drops all emails. Used in development and tests.
type NoopSender struct{}

func (s *NoopSender) SendHotLeadAlert(ctx context.Context, toEmail string, alert HotLeadAlert) error {
	return nil
}
