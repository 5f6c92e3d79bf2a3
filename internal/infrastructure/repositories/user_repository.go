package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/you/scandine/domain"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           string     `gorm:"primaryKey;size:36"`
	FullName     string     `gorm:"size:255;not null"`
	Email        string     `gorm:"uniqueIndex;size:255;not null"`
	Mobile       string     `gorm:"uniqueIndex;size:32;not null"`
	PasswordHash string     `gorm:"column:password;not null"`
	IsVerified   bool       `gorm:"index"`
	OTPHash      string     `gorm:"column:otp_hash;size:64"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry"`
	SessionEpoch int64      `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByMobile implements domain.UserRepository
func (r *UserRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	return r.findOne(ctx, "mobile = ?", mobile)
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// MarkVerified implements domain.UserRepository. The verified flag and the
// OTP fields change in a single UPDATE so a verified user can never retain a
// live passcode.
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]any{
		"is_verified": true,
		"otp_hash":    "",
		"otp_expiry":  nil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// BumpSessionEpoch implements domain.UserRepository. A single statement with
// RETURNING guarantees token issuance reads the committed epoch.
func (r *UserRepositoryImpl) BumpSessionEpoch(ctx context.Context, userID string) (int64, error) {
	var epoch int64
	res := r.db.WithContext(ctx).Raw(
		"UPDATE users SET session_epoch = session_epoch + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ? RETURNING session_epoch",
		userID,
	).Scan(&epoch)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrUserNotFound
	}
	return epoch, nil
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&DBUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Mobile:       user.Mobile,
		PasswordHash: user.PasswordHash,
		IsVerified:   user.IsVerified,
		OTPHash:      user.OTPHash,
		OTPExpiry:    user.OTPExpiry,
		SessionEpoch: user.SessionEpoch,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		FullName:     dbUser.FullName,
		Email:        dbUser.Email,
		Mobile:       dbUser.Mobile,
		PasswordHash: dbUser.PasswordHash,
		IsVerified:   dbUser.IsVerified,
		OTPHash:      dbUser.OTPHash,
		OTPExpiry:    dbUser.OTPExpiry,
		SessionEpoch: dbUser.SessionEpoch,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
