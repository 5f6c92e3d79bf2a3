package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/infrastructure/cache"
)

// MenuServiceImpl implements domain.MenuService. Every mutation invalidates
// the cafe's public menu cache key synchronously, in the same request, after
// the store write commits.
type MenuServiceImpl struct {
	menuRepo domain.MenuRepository
	cache    domain.Cache
	logger   *slog.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo domain.MenuRepository, cacheStore domain.Cache, logger *slog.Logger) domain.MenuService {
	return &MenuServiceImpl{
		menuRepo: menuRepo,
		cache:    cacheStore,
		logger:   logger,
	}
}

// AddItem implements domain.MenuService
func (s *MenuServiceImpl) AddItem(ctx context.Context, cafeID string, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.CafeID = cafeID
	item.IsAvailable = true
	if item.Image == "" {
		item.Image = CategoryImage(item.Category)
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.invalidateMenu(ctx, cafeID)
	return item, nil
}

// ItemsForCafe implements domain.MenuService
func (s *MenuServiceImpl) ItemsForCafe(ctx context.Context, cafeID string) ([]*domain.MenuItem, error) {
	return s.menuRepo.FindByCafeID(ctx, cafeID)
}

// UpdateItem implements domain.MenuService
func (s *MenuServiceImpl) UpdateItem(ctx context.Context, cafeID, itemID string, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	if update.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	fields := map[string]any{}
	if update.DishName != nil {
		fields["dish_name"] = *update.DishName
	}
	if update.Category != nil {
		fields["category"] = *update.Category
		fields["image"] = CategoryImage(*update.Category)
	}
	if update.HalfPrice != nil {
		fields["half_price"] = *update.HalfPrice
	}
	if update.FullPrice != nil {
		fields["full_price"] = *update.FullPrice
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.IsChefSpecial != nil {
		fields["is_chef_special"] = *update.IsChefSpecial
	}

	item, err := s.menuRepo.UpdateFields(ctx, itemID, cafeID, fields)
	if err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx, cafeID)
	return item, nil
}

// DeleteItem implements domain.MenuService
func (s *MenuServiceImpl) DeleteItem(ctx context.Context, cafeID, itemID string) error {
	if err := s.menuRepo.Delete(ctx, itemID, cafeID); err != nil {
		return err
	}

	s.invalidateMenu(ctx, cafeID)
	return nil
}

// ToggleAvailability implements domain.MenuService
func (s *MenuServiceImpl) ToggleAvailability(ctx context.Context, cafeID, itemID string) (*domain.MenuItem, error) {
	item, err := s.menuRepo.FindByIDForCafe(ctx, itemID, cafeID)
	if err != nil {
		return nil, err
	}

	updated, err := s.menuRepo.UpdateFields(ctx, itemID, cafeID, map[string]any{
		"is_available": !item.IsAvailable,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx, cafeID)
	return updated, nil
}

// invalidateMenu deletes the cafe's public menu cache entry. The write to the
// store already committed; a failed delete only means the entry can stay
// stale until its TTL, so it is logged rather than failing the request.
func (s *MenuServiceImpl) invalidateMenu(ctx context.Context, cafeID string) {
	if err := s.cache.Delete(ctx, cache.MenuKey(cafeID)); err != nil {
		s.logger.Warn("menu cache invalidation failed", "cafe_id", cafeID, "error", err)
	}
}
