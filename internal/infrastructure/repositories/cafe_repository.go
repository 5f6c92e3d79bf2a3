package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/you/scandine/domain"
	"gorm.io/gorm"
)

// CafeRepositoryImpl implements domain.CafeRepository using GORM
type CafeRepositoryImpl struct {
	db *gorm.DB
}

// DBCafe represents the database model for Cafe
type DBCafe struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"uniqueIndex;size:36;not null"`
	Name        string `gorm:"column:cafename;size:255;not null"`
	Address     string `gorm:"size:512;not null"`
	PhoneNo     string `gorm:"size:32;not null"`
	Description string `gorm:"size:1024"`
	QRCode      string `gorm:"column:qr_code;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBCafe) TableName() string {
	return "cafes"
}

// NewCafeRepository creates a new cafe repository
func NewCafeRepository(db *gorm.DB) domain.CafeRepository {
	return &CafeRepositoryImpl{db: db}
}

// Create implements domain.CafeRepository
func (r *CafeRepositoryImpl) Create(ctx context.Context, cafe *domain.Cafe) error {
	if cafe.ID == "" {
		cafe.ID = uuid.NewString()
	}
	dbCafe := r.domainToDB(cafe)
	if err := r.db.WithContext(ctx).Create(dbCafe).Error; err != nil {
		return err
	}
	cafe.CreatedAt = dbCafe.CreatedAt
	cafe.UpdatedAt = dbCafe.UpdatedAt
	return nil
}

// FindByID implements domain.CafeRepository
func (r *CafeRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Cafe, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByUserID implements domain.CafeRepository
func (r *CafeRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.Cafe, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *CafeRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.Cafe, error) {
	var dbCafe DBCafe
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbCafe).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCafeNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCafe), nil
}

// FindAll implements domain.CafeRepository
func (r *CafeRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Cafe, error) {
	var dbCafes []DBCafe
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dbCafes).Error; err != nil {
		return nil, err
	}
	cafes := make([]*domain.Cafe, 0, len(dbCafes))
	for i := range dbCafes {
		cafes = append(cafes, r.dbToDomain(&dbCafes[i]))
	}
	return cafes, nil
}

// UpdateQRCode implements domain.CafeRepository
func (r *CafeRepositoryImpl) UpdateQRCode(ctx context.Context, cafeID, dataURI string) error {
	res := r.db.WithContext(ctx).Model(&DBCafe{}).Where("id = ?", cafeID).Update("qr_code", dataURI)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCafeNotFound
	}
	return nil
}

// DeleteByUserID implements domain.CafeRepository. Deleting for a user
// without a cafe is a no-op.
func (r *CafeRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBCafe{}).Error
}

func (r *CafeRepositoryImpl) domainToDB(cafe *domain.Cafe) *DBCafe {
	return &DBCafe{
		ID:          cafe.ID,
		UserID:      cafe.UserID,
		Name:        cafe.Name,
		Address:     cafe.Address,
		PhoneNo:     cafe.PhoneNo,
		Description: cafe.Description,
		QRCode:      cafe.QRCode,
	}
}

func (r *CafeRepositoryImpl) dbToDomain(dbCafe *DBCafe) *domain.Cafe {
	return &domain.Cafe{
		ID:          dbCafe.ID,
		UserID:      dbCafe.UserID,
		Name:        dbCafe.Name,
		Address:     dbCafe.Address,
		PhoneNo:     dbCafe.PhoneNo,
		Description: dbCafe.Description,
		QRCode:      dbCafe.QRCode,
		CreatedAt:   dbCafe.CreatedAt,
		UpdatedAt:   dbCafe.UpdatedAt,
	}
}
