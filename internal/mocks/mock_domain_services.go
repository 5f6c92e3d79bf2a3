package mocks

import (
	"context"

	"github.com/you/scandine/domain"
)

// MockCafeService implements domain.CafeService for handler tests
type MockCafeService struct {
	CreateCafeFunc   func(ctx context.Context, owner *domain.User, name, address, phoneNo, description string) (*domain.Cafe, error)
	MyCafeFunc       func(ctx context.Context, userID string) (*domain.Cafe, error)
	EnsureQRCodeFunc func(ctx context.Context, userID string) (*domain.Cafe, error)
}

func (m *MockCafeService) CreateCafe(ctx context.Context, owner *domain.User, name, address, phoneNo, description string) (*domain.Cafe, error) {
	if m.CreateCafeFunc != nil {
		return m.CreateCafeFunc(ctx, owner, name, address, phoneNo, description)
	}
	return &domain.Cafe{ID: "cafe-1", UserID: owner.ID, Name: name}, nil
}

func (m *MockCafeService) MyCafe(ctx context.Context, userID string) (*domain.Cafe, error) {
	if m.MyCafeFunc != nil {
		return m.MyCafeFunc(ctx, userID)
	}
	return nil, domain.ErrCafeNotFound
}

func (m *MockCafeService) EnsureQRCode(ctx context.Context, userID string) (*domain.Cafe, error) {
	if m.EnsureQRCodeFunc != nil {
		return m.EnsureQRCodeFunc(ctx, userID)
	}
	return nil, domain.ErrCafeNotFound
}

// MockMenuService implements domain.MenuService for handler tests
type MockMenuService struct {
	AddItemFunc            func(ctx context.Context, cafeID string, item *domain.MenuItem) (*domain.MenuItem, error)
	ItemsForCafeFunc       func(ctx context.Context, cafeID string) ([]*domain.MenuItem, error)
	UpdateItemFunc         func(ctx context.Context, cafeID, itemID string, update domain.MenuItemUpdate) (*domain.MenuItem, error)
	DeleteItemFunc         func(ctx context.Context, cafeID, itemID string) error
	ToggleAvailabilityFunc func(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error)
}

func (m *MockMenuService) AddItem(ctx context.Context, cafeID string, item *domain.MenuItem) (*domain.MenuItem, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, cafeID, item)
	}
	item.ID = "item-1"
	item.CafeID = cafeID
	return item, nil
}

func (m *MockMenuService) ItemsForCafe(ctx context.Context, cafeID string) ([]*domain.MenuItem, error) {
	if m.ItemsForCafeFunc != nil {
		return m.ItemsForCafeFunc(ctx, cafeID)
	}
	return nil, nil
}

func (m *MockMenuService) UpdateItem(ctx context.Context, cafeID, itemID string, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, cafeID, itemID, update)
	}
	return nil, domain.ErrMenuItemNotFound
}

func (m *MockMenuService) DeleteItem(ctx context.Context, cafeID, itemID string) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, cafeID, itemID)
	}
	return nil
}

func (m *MockMenuService) ToggleAvailability(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error) {
	if m.ToggleAvailabilityFunc != nil {
		return m.ToggleAvailabilityFunc(ctx, cafeID, itemID)
	}
	return nil, domain.ErrMenuItemNotFound
}

// MockPublicService implements domain.PublicService for handler tests
type MockPublicService struct {
	ListCafesFunc func(ctx context.Context) (*domain.CafeListing, error)
	MenuFunc      func(ctx context.Context, cafeID string) (*domain.PublicMenu, error)
}

func (m *MockPublicService) ListCafes(ctx context.Context) (*domain.CafeListing, error) {
	if m.ListCafesFunc != nil {
		return m.ListCafesFunc(ctx)
	}
	return &domain.CafeListing{Cafes: []domain.CafeSummary{}}, nil
}

func (m *MockPublicService) Menu(ctx context.Context, cafeID string) (*domain.PublicMenu, error) {
	if m.MenuFunc != nil {
		return m.MenuFunc(ctx, cafeID)
	}
	return &domain.PublicMenu{Categories: []domain.MenuCategory{}}, nil
}

// Compile-time interface compliance verification
var (
	_ domain.CafeService   = (*MockCafeService)(nil)
	_ domain.MenuService   = (*MockMenuService)(nil)
	_ domain.PublicService = (*MockPublicService)(nil)
)
