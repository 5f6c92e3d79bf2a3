package notifications

import (
	"fmt"
	"time"

	"github.com/you/scandine/domain"
)

// Dispatcher implements domain.NotificationDispatcher. Each dispatch runs in
// its own goroutine and reports exactly one outcome on the returned channel,
// so callers decide whether delivery failure matters to them. The timeout
// bounds how long a caller that does await can block on a stuck transport.
type Dispatcher struct {
	mailer  Mailer
	sms     SMSSender
	timeout time.Duration
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(mailer Mailer, sms SMSSender, timeout time.Duration) domain.NotificationDispatcher {
	return &Dispatcher{
		mailer:  mailer,
		sms:     sms,
		timeout: timeout,
	}
}

// DispatchEmail implements domain.NotificationDispatcher
func (d *Dispatcher) DispatchEmail(to, subject, htmlBody string) <-chan error {
	return d.dispatch(func() error {
		return d.mailer.SendEmail(to, subject, htmlBody)
	})
}

// DispatchSMS implements domain.NotificationDispatcher
func (d *Dispatcher) DispatchSMS(to, body string) <-chan error {
	return d.dispatch(func() error {
		return d.sms.SendSMS(to, body)
	})
}

func (d *Dispatcher) dispatch(send func() error) <-chan error {
	result := make(chan error, 1)
	done := make(chan error, 1)

	go func() {
		done <- send()
	}()

	go func() {
		select {
		case err := <-done:
			result <- err
		case <-time.After(d.timeout):
			result <- fmt.Errorf("notification dispatch timed out after %s", d.timeout)
		}
	}()

	return result
}
