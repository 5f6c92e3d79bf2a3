package notifications

import (
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender sends a single SMS synchronously.
type SMSSender interface {
	SendSMS(to, body string) error
}

// TwilioSMSSender implements SMSSender via Twilio
type TwilioSMSSender struct {
	client     *twilio.RestClient
	fromNumber string
	logger     *slog.Logger
}

// NewTwilioSMSSender creates a new Twilio SMS sender. With an empty from
// number the sender logs messages instead of sending.
func NewTwilioSMSSender(accountSID, authToken, fromNumber string, logger *slog.Logger) *TwilioSMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSMSSender{
		client:     client,
		fromNumber: fromNumber,
		logger:     logger,
	}
}

// SendSMS implements SMSSender
func (t *TwilioSMSSender) SendSMS(to, body string) error {
	if t.fromNumber == "" {
		t.logger.Info("mock sms", "to", to)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}
