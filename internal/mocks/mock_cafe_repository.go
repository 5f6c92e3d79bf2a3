package mocks

import (
	"context"

	"github.com/you/scandine/domain"
)

// MockCafeRepository implements domain.CafeRepository interface for testing
type MockCafeRepository struct {
	CreateFunc         func(ctx context.Context, cafe *domain.Cafe) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.Cafe, error)
	FindByUserIDFunc   func(ctx context.Context, userID string) (*domain.Cafe, error)
	FindAllFunc        func(ctx context.Context) ([]*domain.Cafe, error)
	UpdateQRCodeFunc   func(ctx context.Context, cafeID, dataURI string) error
	DeleteByUserIDFunc func(ctx context.Context, userID string) error
}

// NewMockCafeRepository creates a new MockCafeRepository with default behaviors
func NewMockCafeRepository() *MockCafeRepository {
	return &MockCafeRepository{}
}

// Create creates a new cafe
func (m *MockCafeRepository) Create(ctx context.Context, cafe *domain.Cafe) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cafe)
	}
	return nil
}

// FindByID finds a cafe by ID
func (m *MockCafeRepository) FindByID(ctx context.Context, id string) (*domain.Cafe, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCafeNotFound
}

// FindByUserID finds the cafe owned by a user
func (m *MockCafeRepository) FindByUserID(ctx context.Context, userID string) (*domain.Cafe, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrCafeNotFound
}

// FindAll returns all cafes
func (m *MockCafeRepository) FindAll(ctx context.Context) ([]*domain.Cafe, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// UpdateQRCode stores a cafe's QR code
func (m *MockCafeRepository) UpdateQRCode(ctx context.Context, cafeID, dataURI string) error {
	if m.UpdateQRCodeFunc != nil {
		return m.UpdateQRCodeFunc(ctx, cafeID, dataURI)
	}
	return nil
}

// DeleteByUserID deletes the cafe owned by a user
func (m *MockCafeRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CafeRepository = (*MockCafeRepository)(nil)
