package mocks

import (
	"context"
	"time"

	"github.com/you/scandine/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(userID string, sessionEpoch int64) (string, time.Time, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) Issue(userID string, sessionEpoch int64) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, sessionEpoch)
	}
	return "token_" + userID, time.Now().Add(time.Hour), nil
}

func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil, domain.ErrTokenMalformed
}

// MockTokenBlacklist implements domain.TokenBlacklist for testing
type MockTokenBlacklist struct {
	RevokeFunc    func(ctx context.Context, token string, ttl time.Duration) error
	IsRevokedFunc func(ctx context.Context, token string) (bool, error)
}

func (m *MockTokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token, ttl)
	}
	return nil
}

func (m *MockTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, token)
	}
	return false, nil
}

// MockNotificationDispatcher implements domain.NotificationDispatcher for
// testing. Dispatches are recorded and always succeed unless a func is set.
type MockNotificationDispatcher struct {
	DispatchEmailFunc func(to, subject, htmlBody string) <-chan error
	DispatchSMSFunc   func(to, body string) <-chan error

	Emails []MockEmail
	SMSes  []MockSMS
}

type MockEmail struct {
	To      string
	Subject string
	Body    string
}

type MockSMS struct {
	To   string
	Body string
}

func (m *MockNotificationDispatcher) DispatchEmail(to, subject, htmlBody string) <-chan error {
	if m.DispatchEmailFunc != nil {
		return m.DispatchEmailFunc(to, subject, htmlBody)
	}
	m.Emails = append(m.Emails, MockEmail{To: to, Subject: subject, Body: htmlBody})
	return closedErrChan(nil)
}

func (m *MockNotificationDispatcher) DispatchSMS(to, body string) <-chan error {
	if m.DispatchSMSFunc != nil {
		return m.DispatchSMSFunc(to, body)
	}
	m.SMSes = append(m.SMSes, MockSMS{To: to, Body: body})
	return closedErrChan(nil)
}

func closedErrChan(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	close(ch)
	return ch
}

// MockQRGenerator implements domain.QRGenerator for testing
type MockQRGenerator struct {
	DataURIFunc func(url string) (string, error)
	URLs        []string
}

func (m *MockQRGenerator) DataURI(url string) (string, error) {
	if m.DataURIFunc != nil {
		return m.DataURIFunc(url)
	}
	m.URLs = append(m.URLs, url)
	return "data:image/png;base64,qr_" + url, nil
}

// MockCache implements domain.Cache for testing
type MockCache struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	Deleted []string
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.Deleted = append(m.Deleted, key)
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService        = (*MockPasswordService)(nil)
	_ domain.TokenService           = (*MockTokenService)(nil)
	_ domain.TokenBlacklist         = (*MockTokenBlacklist)(nil)
	_ domain.NotificationDispatcher = (*MockNotificationDispatcher)(nil)
	_ domain.QRGenerator            = (*MockQRGenerator)(nil)
	_ domain.Cache                  = (*MockCache)(nil)
)
