package email

// Provider sends outbound mail. The auth service only ever depends on this
// interface; the SMTP dialer lives behind it.
type Provider interface {
	// Send delivers a message with a plain-text and an HTML body.
	Send(to, subject, textBody, htmlBody string) error

	// SendPasswordReset delivers the reset link for a pending reset token.
	SendPasswordReset(to, resetURL string) error
}
