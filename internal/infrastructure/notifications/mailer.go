package notifications

import (
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mailer sends a single HTML email synchronously.
type Mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer over SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPMailer creates a new SMTP mailer. With an empty host the mailer logs
// messages instead of sending, which keeps local development working without
// an SMTP account.
func NewSMTPMailer(host string, port int, username, password, from string, logger *slog.Logger) *SMTPMailer {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	}
	return &SMTPMailer{
		dialer: dialer,
		from:   from,
		logger: logger,
	}
}

// SendEmail implements Mailer
func (m *SMTPMailer) SendEmail(to, subject, htmlBody string) error {
	if m.dialer == nil {
		m.logger.Info("mock email", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
