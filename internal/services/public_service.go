package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/infrastructure/cache"
)

// PublicServiceImpl implements domain.PublicService. Both reads go through
// the cache; the loaders are the authoritative store queries and run only on
// a miss.
type PublicServiceImpl struct {
	cafeRepo domain.CafeRepository
	menuRepo domain.MenuRepository
	cache    domain.Cache
	cafesTTL time.Duration
	menuTTL  time.Duration
	logger   *slog.Logger
}

// NewPublicService creates a new public read service
func NewPublicService(
	cafeRepo domain.CafeRepository,
	menuRepo domain.MenuRepository,
	cacheStore domain.Cache,
	cafesTTL, menuTTL time.Duration,
	logger *slog.Logger,
) domain.PublicService {
	return &PublicServiceImpl{
		cafeRepo: cafeRepo,
		menuRepo: menuRepo,
		cache:    cacheStore,
		cafesTTL: cafesTTL,
		menuTTL:  menuTTL,
		logger:   logger,
	}
}

// ListCafes implements domain.PublicService
func (s *PublicServiceImpl) ListCafes(ctx context.Context) (*domain.CafeListing, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.CafeListKey(), s.cafesTTL, s.loadCafes)
}

func (s *PublicServiceImpl) loadCafes(ctx context.Context) (*domain.CafeListing, error) {
	cafes, err := s.cafeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cafes: %w", err)
	}

	summaries := make([]domain.CafeSummary, 0, len(cafes))
	for _, cafe := range cafes {
		hasSpecial, err := s.menuRepo.HasChefSpecial(ctx, cafe.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check chef special for cafe %s: %w", cafe.ID, err)
		}
		summaries = append(summaries, domain.CafeSummary{
			Cafe:           cafe,
			HasChefSpecial: hasSpecial,
		})
	}

	return &domain.CafeListing{Cafes: summaries}, nil
}

// Menu implements domain.PublicService. Empty menus are cached too, so a
// cafe without items does not hammer the store.
func (s *PublicServiceImpl) Menu(ctx context.Context, cafeID string) (*domain.PublicMenu, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.MenuKey(cafeID), s.menuTTL, func(ctx context.Context) (*domain.PublicMenu, error) {
		return s.loadMenu(ctx, cafeID)
	})
}

func (s *PublicServiceImpl) loadMenu(ctx context.Context, cafeID string) (*domain.PublicMenu, error) {
	items, err := s.menuRepo.FindAvailableByCafeID(ctx, cafeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu for cafe %s: %w", cafeID, err)
	}

	// Group by category, preserving the order categories first appear in.
	order := make([]string, 0)
	grouped := make(map[string][]*domain.MenuItem)
	for _, item := range items {
		if _, seen := grouped[item.Category]; !seen {
			order = append(order, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	categories := make([]domain.MenuCategory, 0, len(order))
	for _, category := range order {
		categories = append(categories, domain.MenuCategory{
			Category: category,
			Items:    grouped[category],
		})
	}

	return &domain.PublicMenu{Categories: categories}, nil
}
