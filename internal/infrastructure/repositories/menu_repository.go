package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/you/scandine/domain"
	"gorm.io/gorm"
)

// MenuRepositoryImpl implements domain.MenuRepository using GORM
type MenuRepositoryImpl struct {
	db *gorm.DB
}

// DBMenuItem represents the database model for MenuItem
type DBMenuItem struct {
	ID            string   `gorm:"primaryKey;size:36"`
	CafeID        string   `gorm:"index;size:36;not null"`
	DishName      string   `gorm:"size:255;not null"`
	Category      string   `gorm:"index;size:128;not null"`
	HalfPrice     *float64 `gorm:"column:half_price"`
	FullPrice     *float64 `gorm:"column:full_price"`
	Description   string   `gorm:"size:1024"`
	Image         string   `gorm:"size:512"`
	IsChefSpecial bool     `gorm:"index"`
	IsAvailable   bool     `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBMenuItem) TableName() string {
	return "menu_items"
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domain.MenuRepository {
	return &MenuRepositoryImpl{db: db}
}

// Create implements domain.MenuRepository
func (r *MenuRepositoryImpl) Create(ctx context.Context, item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	dbItem := r.domainToDB(item)
	if err := r.db.WithContext(ctx).Create(dbItem).Error; err != nil {
		return err
	}
	item.CreatedAt = dbItem.CreatedAt
	item.UpdatedAt = dbItem.UpdatedAt
	return nil
}

// FindByCafeID implements domain.MenuRepository
func (r *MenuRepositoryImpl) FindByCafeID(ctx context.Context, cafeID string) ([]*domain.MenuItem, error) {
	return r.findMany(ctx, r.db.WithContext(ctx).Where("cafe_id = ?", cafeID))
}

// FindAvailableByCafeID implements domain.MenuRepository
func (r *MenuRepositoryImpl) FindAvailableByCafeID(ctx context.Context, cafeID string) ([]*domain.MenuItem, error) {
	return r.findMany(ctx, r.db.WithContext(ctx).Where("cafe_id = ? AND is_available = ?", cafeID, true))
}

func (r *MenuRepositoryImpl) findMany(ctx context.Context, tx *gorm.DB) ([]*domain.MenuItem, error) {
	var dbItems []DBMenuItem
	if err := tx.Order("created_at").Find(&dbItems).Error; err != nil {
		return nil, err
	}
	items := make([]*domain.MenuItem, 0, len(dbItems))
	for i := range dbItems {
		items = append(items, r.dbToDomain(&dbItems[i]))
	}
	return items, nil
}

// FindByIDForCafe implements domain.MenuRepository
func (r *MenuRepositoryImpl) FindByIDForCafe(ctx context.Context, itemID, cafeID string) (*domain.MenuItem, error) {
	var dbItem DBMenuItem
	err := r.db.WithContext(ctx).Where("id = ? AND cafe_id = ?", itemID, cafeID).First(&dbItem).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbItem), nil
}

// UpdateFields implements domain.MenuRepository. The cafe id scoping keeps
// one owner from mutating another cafe's items.
func (r *MenuRepositoryImpl) UpdateFields(ctx context.Context, itemID, cafeID string, fields map[string]any) (*domain.MenuItem, error) {
	res := r.db.WithContext(ctx).Model(&DBMenuItem{}).
		Where("id = ? AND cafe_id = ?", itemID, cafeID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrMenuItemNotFound
	}
	return r.FindByIDForCafe(ctx, itemID, cafeID)
}

// Delete implements domain.MenuRepository
func (r *MenuRepositoryImpl) Delete(ctx context.Context, itemID, cafeID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND cafe_id = ?", itemID, cafeID).Delete(&DBMenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

// HasChefSpecial implements domain.MenuRepository
func (r *MenuRepositoryImpl) HasChefSpecial(ctx context.Context, cafeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBMenuItem{}).
		Where("cafe_id = ? AND is_chef_special = ?", cafeID, true).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByCafeID implements domain.MenuRepository
func (r *MenuRepositoryImpl) DeleteByCafeID(ctx context.Context, cafeID string) error {
	return r.db.WithContext(ctx).Where("cafe_id = ?", cafeID).Delete(&DBMenuItem{}).Error
}

func (r *MenuRepositoryImpl) domainToDB(item *domain.MenuItem) *DBMenuItem {
	return &DBMenuItem{
		ID:            item.ID,
		CafeID:        item.CafeID,
		DishName:      item.DishName,
		Category:      item.Category,
		HalfPrice:     item.HalfPrice,
		FullPrice:     item.FullPrice,
		Description:   item.Description,
		Image:         item.Image,
		IsChefSpecial: item.IsChefSpecial,
		IsAvailable:   item.IsAvailable,
	}
}

func (r *MenuRepositoryImpl) dbToDomain(dbItem *DBMenuItem) *domain.MenuItem {
	return &domain.MenuItem{
		ID:            dbItem.ID,
		CafeID:        dbItem.CafeID,
		DishName:      dbItem.DishName,
		Category:      dbItem.Category,
		HalfPrice:     dbItem.HalfPrice,
		FullPrice:     dbItem.FullPrice,
		Description:   dbItem.Description,
		Image:         dbItem.Image,
		IsChefSpecial: dbItem.IsChefSpecial,
		IsAvailable:   dbItem.IsAvailable,
		CreatedAt:     dbItem.CreatedAt,
		UpdatedAt:     dbItem.UpdatedAt,
	}
}
