package app

import (
	"taskflow_backend/internal/logger"
)

// LogEmailProvider stands in for SMTP in environments without mail
// credentials. Messages go to the log and are reported as sent.
type LogEmailProvider struct{}

func (p *LogEmailProvider) Send(to, subject, textBody, htmlBody string) error {
	logger.Info("email (not sent, SMTP disabled)", "to", to, "subject", subject, "body", textBody)
	return nil
}

func (p *LogEmailProvider) SendPasswordReset(to, resetURL string) error {
	logger.Info("password reset email (not sent, SMTP disabled)", "to", to, "reset_url", resetURL)
	return nil
}
