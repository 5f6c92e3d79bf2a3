package mocks

import (
	"context"
	"time"

	"github.com/you/scandine/domain"
)

// MockAuthService implements domain.AuthService for handler tests
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, fullName, email, mobile, password string) (*domain.User, error)
	VerifyOTPFunc     func(ctx context.Context, userID, code string) error
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc        func(ctx context.Context, token string) error
	ProfileFunc       func(ctx context.Context, userID string) (*domain.User, error)
	DeleteAccountFunc func(ctx context.Context, userID string) error
}

func (m *MockAuthService) Register(ctx context.Context, fullName, email, mobile, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, fullName, email, mobile, password)
	}
	return &domain.User{
		ID:       "user-1",
		FullName: fullName,
		Email:    email,
		Mobile:   mobile,
	}, nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, userID, code string) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, userID, code)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:      &domain.User{ID: "user-1", Email: email, IsVerified: true},
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) DeleteAccount(ctx context.Context, userID string) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
