package mocks

import (
	"context"

	"github.com/you/scandine/domain"
)

// MockMenuRepository implements domain.MenuRepository interface for testing
type MockMenuRepository struct {
	CreateFunc                func(ctx context.Context, item *domain.MenuItem) error
	FindByCafeIDFunc          func(ctx context.Context, cafeID string) ([]*domain.MenuItem, error)
	FindAvailableByCafeIDFunc func(ctx context.Context, cafeID string) ([]*domain.MenuItem, error)
	FindByIDForCafeFunc       func(ctx context.Context, itemID, cafeID string) (*domain.MenuItem, error)
	UpdateFieldsFunc          func(ctx context.Context, itemID, cafeID string, fields map[string]any) (*domain.MenuItem, error)
	DeleteFunc                func(ctx context.Context, itemID, cafeID string) error
	HasChefSpecialFunc        func(ctx context.Context, cafeID string) (bool, error)
	DeleteByCafeIDFunc        func(ctx context.Context, cafeID string) error
}

// NewMockMenuRepository creates a new MockMenuRepository with default behaviors
func NewMockMenuRepository() *MockMenuRepository {
	return &MockMenuRepository{}
}

// Create creates a menu item
func (m *MockMenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

// FindByCafeID returns every item for a cafe
func (m *MockMenuRepository) FindByCafeID(ctx context.Context, cafeID string) ([]*domain.MenuItem, error) {
	if m.FindByCafeIDFunc != nil {
		return m.FindByCafeIDFunc(ctx, cafeID)
	}
	return nil, nil
}

// FindAvailableByCafeID returns a cafe's available items
func (m *MockMenuRepository) FindAvailableByCafeID(ctx context.Context, cafeID string) ([]*domain.MenuItem, error) {
	if m.FindAvailableByCafeIDFunc != nil {
		return m.FindAvailableByCafeIDFunc(ctx, cafeID)
	}
	return nil, nil
}

// FindByIDForCafe finds an item scoped by its owning cafe
func (m *MockMenuRepository) FindByIDForCafe(ctx context.Context, itemID, cafeID string) (*domain.MenuItem, error) {
	if m.FindByIDForCafeFunc != nil {
		return m.FindByIDForCafeFunc(ctx, itemID, cafeID)
	}
	return nil, domain.ErrMenuItemNotFound
}

// UpdateFields updates an item scoped by its owning cafe
func (m *MockMenuRepository) UpdateFields(ctx context.Context, itemID, cafeID string, fields map[string]any) (*domain.MenuItem, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, itemID, cafeID, fields)
	}
	return nil, domain.ErrMenuItemNotFound
}

// Delete deletes an item scoped by its owning cafe
func (m *MockMenuRepository) Delete(ctx context.Context, itemID, cafeID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, itemID, cafeID)
	}
	return nil
}

// HasChefSpecial reports whether a cafe has a chef-special item
func (m *MockMenuRepository) HasChefSpecial(ctx context.Context, cafeID string) (bool, error) {
	if m.HasChefSpecialFunc != nil {
		return m.HasChefSpecialFunc(ctx, cafeID)
	}
	return false, nil
}

// DeleteByCafeID deletes every item for a cafe
func (m *MockMenuRepository) DeleteByCafeID(ctx context.Context, cafeID string) error {
	if m.DeleteByCafeIDFunc != nil {
		return m.DeleteByCafeIDFunc(ctx, cafeID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.MenuRepository = (*MockMenuRepository)(nil)
