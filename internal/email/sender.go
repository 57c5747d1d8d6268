package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"taskflow_backend/internal/config"
)

// GomailSender is the SMTP-backed Provider.
type GomailSender struct {
	cfg *config.Config
}

func NewGomailSender(cfg *config.Config) *GomailSender {
	return &GomailSender{cfg: cfg}
}

func (s *GomailSender) Send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Email.FromEmail, s.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func (s *GomailSender) SendPasswordReset(to, resetURL string) error {
	htmlBody, err := renderPasswordReset(resetURL)
	if err != nil {
		return fmt.Errorf("render reset template: %w", err)
	}

	textBody := fmt.Sprintf(
		"You requested a password reset. Click: %s\nIf you didn't request, ignore.",
		resetURL,
	)

	return s.Send(to, "TaskFlow Password Reset", textBody, htmlBody)
}
