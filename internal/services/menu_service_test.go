package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/mocks"
)

func TestMenuServiceImpl_AddItem(t *testing.T) {
	menuRepo := mocks.NewMockMenuRepository()
	cacheStore := &mocks.MockCache{}
	svc := NewMenuService(menuRepo, cacheStore, testLogger())

	price := 120.0
	item, err := svc.AddItem(context.Background(), "cafe-1", &domain.MenuItem{
		DishName:  "Paneer Tikka",
		Category:  "Starters",
		FullPrice: &price,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if item.CafeID != "cafe-1" {
		t.Errorf("expected the item bound to the cafe, got %q", item.CafeID)
	}
	if !item.IsAvailable {
		t.Error("expected a new item to start available")
	}
	if item.Image == "" {
		t.Error("expected a category image to be filled in")
	}
	if len(cacheStore.Deleted) != 1 || cacheStore.Deleted[0] != "public:menu:cafe-1" {
		t.Errorf("expected the cafe's public menu key invalidated, got %v", cacheStore.Deleted)
	}
}

func TestMenuServiceImpl_AddItemKeepsExplicitImage(t *testing.T) {
	menuRepo := mocks.NewMockMenuRepository()
	svc := NewMenuService(menuRepo, &mocks.MockCache{}, testLogger())

	item, err := svc.AddItem(context.Background(), "cafe-1", &domain.MenuItem{
		DishName: "Paneer Tikka",
		Category: "Starters",
		Image:    "https://cdn.example.com/custom.png",
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.Image != "https://cdn.example.com/custom.png" {
		t.Errorf("expected the explicit image kept, got %q", item.Image)
	}
}

func TestMenuServiceImpl_UpdateItem(t *testing.T) {
	t.Run("empty update is rejected without touching the store", func(t *testing.T) {
		menuRepo := mocks.NewMockMenuRepository()
		menuRepo.UpdateFieldsFunc = func(ctx context.Context, itemID, cafeID string, fields map[string]any) (*domain.MenuItem, error) {
			t.Error("store must not be called for an empty update")
			return nil, nil
		}
		cacheStore := &mocks.MockCache{}
		svc := NewMenuService(menuRepo, cacheStore, testLogger())

		_, err := svc.UpdateItem(context.Background(), "cafe-1", "item-1", domain.MenuItemUpdate{})
		if err != domain.ErrNoFieldsToUpdate {
			t.Errorf("expected ErrNoFieldsToUpdate, got %v", err)
		}
		if len(cacheStore.Deleted) != 0 {
			t.Error("expected no invalidation on a rejected update")
		}
	})

	t.Run("update is scoped to the owning cafe", func(t *testing.T) {
		menuRepo := mocks.NewMockMenuRepository()
		var gotItemID, gotCafeID string
		var gotFields map[string]any
		menuRepo.UpdateFieldsFunc = func(ctx context.Context, itemID, cafeID string, fields map[string]any) (*domain.MenuItem, error) {
			gotItemID, gotCafeID, gotFields = itemID, cafeID, fields
			return &domain.MenuItem{ID: itemID, CafeID: cafeID}, nil
		}
		cacheStore := &mocks.MockCache{}
		svc := NewMenuService(menuRepo, cacheStore, testLogger())

		name := "Paneer Tikka Masala"
		category := "Main Course"
		_, err := svc.UpdateItem(context.Background(), "cafe-1", "item-1", domain.MenuItemUpdate{
			DishName: &name,
			Category: &category,
		})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}

		if gotItemID != "item-1" || gotCafeID != "cafe-1" {
			t.Errorf("expected the update scoped to item-1/cafe-1, got %s/%s", gotItemID, gotCafeID)
		}
		if gotFields["dish_name"] != "Paneer Tikka Masala" {
			t.Errorf("expected the new dish name, got %v", gotFields["dish_name"])
		}
		// Changing the category refreshes the stock image with it.
		if gotFields["image"] == nil || gotFields["image"] == "" {
			t.Error("expected a category change to refresh the image")
		}
		if len(cacheStore.Deleted) != 1 || cacheStore.Deleted[0] != "public:menu:cafe-1" {
			t.Errorf("expected the menu key invalidated, got %v", cacheStore.Deleted)
		}
	})

	t.Run("item owned by another cafe is not found", func(t *testing.T) {
		menuRepo := mocks.NewMockMenuRepository()
		cacheStore := &mocks.MockCache{}
		svc := NewMenuService(menuRepo, cacheStore, testLogger())

		name := "Paneer Tikka"
		_, err := svc.UpdateItem(context.Background(), "cafe-1", "item-1", domain.MenuItemUpdate{DishName: &name})
		if err != domain.ErrMenuItemNotFound {
			t.Errorf("expected ErrMenuItemNotFound, got %v", err)
		}
		if len(cacheStore.Deleted) != 0 {
			t.Error("expected no invalidation when nothing changed")
		}
	})
}

func TestMenuServiceImpl_DeleteItem(t *testing.T) {
	t.Run("delete invalidates the menu key", func(t *testing.T) {
		menuRepo := mocks.NewMockMenuRepository()
		cacheStore := &mocks.MockCache{}
		svc := NewMenuService(menuRepo, cacheStore, testLogger())

		if err := svc.DeleteItem(context.Background(), "cafe-1", "item-1"); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		if len(cacheStore.Deleted) != 1 || cacheStore.Deleted[0] != "public:menu:cafe-1" {
			t.Errorf("expected the menu key invalidated, got %v", cacheStore.Deleted)
		}
	})

	t.Run("missing item propagates and skips invalidation", func(t *testing.T) {
		menuRepo := mocks.NewMockMenuRepository()
		menuRepo.DeleteFunc = func(ctx context.Context, itemID, cafeID string) error {
			return domain.ErrMenuItemNotFound
		}
		cacheStore := &mocks.MockCache{}
		svc := NewMenuService(menuRepo, cacheStore, testLogger())

		if err := svc.DeleteItem(context.Background(), "cafe-1", "item-1"); err != domain.ErrMenuItemNotFound {
			t.Errorf("expected ErrMenuItemNotFound, got %v", err)
		}
		if len(cacheStore.Deleted) != 0 {
			t.Error("expected no invalidation for a missing item")
		}
	})
}

func TestMenuServiceImpl_ToggleAvailability(t *testing.T) {
	menuRepo := mocks.NewMockMenuRepository()
	menuRepo.FindByIDForCafeFunc = func(ctx context.Context, itemID, cafeID string) (*domain.MenuItem, error) {
		return &domain.MenuItem{ID: itemID, CafeID: cafeID, IsAvailable: true}, nil
	}
	var gotFields map[string]any
	menuRepo.UpdateFieldsFunc = func(ctx context.Context, itemID, cafeID string, fields map[string]any) (*domain.MenuItem, error) {
		gotFields = fields
		return &domain.MenuItem{ID: itemID, CafeID: cafeID, IsAvailable: false}, nil
	}
	cacheStore := &mocks.MockCache{}
	svc := NewMenuService(menuRepo, cacheStore, testLogger())

	item, err := svc.ToggleAvailability(context.Background(), "cafe-1", "item-1")
	if err != nil {
		t.Fatalf("ToggleAvailability failed: %v", err)
	}

	if gotFields["is_available"] != false {
		t.Errorf("expected availability flipped to false, got %v", gotFields["is_available"])
	}
	if item.IsAvailable {
		t.Error("expected the returned item to reflect the toggle")
	}
	if len(cacheStore.Deleted) != 1 {
		t.Errorf("expected one invalidation, got %v", cacheStore.Deleted)
	}
}

func TestMenuServiceImpl_InvalidationFailureDoesNotFailTheWrite(t *testing.T) {
	menuRepo := mocks.NewMockMenuRepository()
	cacheStore := &mocks.MockCache{}
	cacheStore.DeleteFunc = func(ctx context.Context, key string) error {
		return errors.New("redis down")
	}
	svc := NewMenuService(menuRepo, cacheStore, testLogger())

	// The store write committed; a failed invalidation only leaves the entry
	// to age out by TTL.
	if err := svc.DeleteItem(context.Background(), "cafe-1", "item-1"); err != nil {
		t.Errorf("expected the write to succeed despite invalidation failure, got %v", err)
	}
}
