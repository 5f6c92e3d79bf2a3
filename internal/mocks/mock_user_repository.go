package mocks

import (
	"context"

	"github.com/you/scandine/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	FindByMobileFunc     func(ctx context.Context, mobile string) (*domain.User, error)
	FindByIDFunc         func(ctx context.Context, id string) (*domain.User, error)
	MarkVerifiedFunc     func(ctx context.Context, userID string) error
	BumpSessionEpochFunc func(ctx context.Context, userID string) (int64, error)
	DeleteFunc           func(ctx context.Context, userID string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// FindByMobile finds a user by mobile number
func (m *MockUserRepository) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// MarkVerified marks a user verified and clears the OTP fields
func (m *MockUserRepository) MarkVerified(ctx context.Context, userID string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID)
	}
	return nil
}

// BumpSessionEpoch increments the session epoch
func (m *MockUserRepository) BumpSessionEpoch(ctx context.Context, userID string) (int64, error) {
	if m.BumpSessionEpochFunc != nil {
		return m.BumpSessionEpochFunc(ctx, userID)
	}
	return 1, nil
}

// Delete deletes a user
func (m *MockUserRepository) Delete(ctx context.Context, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
