package repositories

import (
	"context"
	"testing"

	"github.com/you/scandine/domain"
	"gorm.io/gorm"
)

func seedCafe(t *testing.T, db *gorm.DB, userID, name string) *domain.Cafe {
	t.Helper()

	cafe := &domain.Cafe{
		UserID:  userID,
		Name:    name,
		Address: "12 MG Road",
		PhoneNo: "+911112223334",
	}
	if err := NewCafeRepository(db).Create(context.Background(), cafe); err != nil {
		t.Fatalf("failed to seed cafe: %v", err)
	}
	return cafe
}

func TestCafeRepositoryImpl_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCafeRepository(db)
	seeded := seedCafe(t, db, "user-1", "Chai Point")
	ctx := context.Background()

	cafe, err := repo.FindByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if cafe.ID != seeded.ID || cafe.Name != "Chai Point" {
		t.Errorf("unexpected cafe %+v", cafe)
	}

	if _, err := repo.FindByUserID(ctx, "user-2"); err != domain.ErrCafeNotFound {
		t.Errorf("expected ErrCafeNotFound, got %v", err)
	}
}

func TestCafeRepositoryImpl_FindAllOrdersByCreation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCafeRepository(db)
	first := seedCafe(t, db, "user-1", "Chai Point")
	second := seedCafe(t, db, "user-2", "Brew Lab")

	cafes, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(cafes) != 2 {
		t.Fatalf("expected two cafes, got %d", len(cafes))
	}
	if cafes[0].ID != first.ID || cafes[1].ID != second.ID {
		t.Errorf("expected creation order, got %s then %s", cafes[0].Name, cafes[1].Name)
	}
}

func TestCafeRepositoryImpl_UpdateQRCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCafeRepository(db)
	seeded := seedCafe(t, db, "user-1", "Chai Point")
	ctx := context.Background()

	if err := repo.UpdateQRCode(ctx, seeded.ID, "data:image/png;base64,abc"); err != nil {
		t.Fatalf("UpdateQRCode failed: %v", err)
	}

	cafe, err := repo.FindByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if cafe.QRCode != "data:image/png;base64,abc" {
		t.Errorf("expected the stored QR code, got %q", cafe.QRCode)
	}

	if err := repo.UpdateQRCode(ctx, "missing", "data:image/png;base64,abc"); err != domain.ErrCafeNotFound {
		t.Errorf("expected ErrCafeNotFound, got %v", err)
	}
}

func TestCafeRepositoryImpl_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCafeRepository(db)
	seedCafe(t, db, "user-1", "Chai Point")
	ctx := context.Background()

	if err := repo.DeleteByUserID(ctx, "user-1"); err != nil {
		t.Fatalf("DeleteByUserID failed: %v", err)
	}
	if _, err := repo.FindByUserID(ctx, "user-1"); err != domain.ErrCafeNotFound {
		t.Errorf("expected the cafe gone, got %v", err)
	}

	// Deleting for a user without a cafe is not an error.
	if err := repo.DeleteByUserID(ctx, "user-2"); err != nil {
		t.Errorf("expected a no-op, got %v", err)
	}
}
