package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByMobile(ctx context.Context, mobile string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	// MarkVerified sets the verified flag and clears the OTP fields in one write.
	MarkVerified(ctx context.Context, userID string) error
	// BumpSessionEpoch atomically increments the session epoch and returns the
	// committed value.
	BumpSessionEpoch(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID string) error
}

// CafeRepository defines cafe data access operations
type CafeRepository interface {
	Create(ctx context.Context, cafe *Cafe) error
	FindByID(ctx context.Context, id string) (*Cafe, error)
	FindByUserID(ctx context.Context, userID string) (*Cafe, error)
	FindAll(ctx context.Context) ([]*Cafe, error)
	UpdateQRCode(ctx context.Context, cafeID, dataURI string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// MenuRepository defines menu item data access operations. Mutating operations
// are scoped by the owning cafe id.
type MenuRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	FindByCafeID(ctx context.Context, cafeID string) ([]*MenuItem, error)
	FindAvailableByCafeID(ctx context.Context, cafeID string) ([]*MenuItem, error)
	FindByIDForCafe(ctx context.Context, itemID, cafeID string) (*MenuItem, error)
	UpdateFields(ctx context.Context, itemID, cafeID string, fields map[string]any) (*MenuItem, error)
	Delete(ctx context.Context, itemID, cafeID string) error
	HasChefSpecial(ctx context.Context, cafeID string) (bool, error)
	DeleteByCafeID(ctx context.Context, cafeID string) error
}

// TokenBlacklist defines the revocation ledger for logged-out tokens
type TokenBlacklist interface {
	// Revoke inserts the raw token; revoking an already-revoked token is not
	// an error. Entries expire with the given TTL.
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Cache defines a key-value cache with TTL-on-write and explicit delete
type Cache interface {
	// Get returns ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete of a non-existent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Issue(userID string, sessionEpoch int64) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}

// NotificationDispatcher dispatches notifications asynchronously. The returned
// channel receives exactly one value: the delivery outcome. Callers may await
// it or detach and log.
type NotificationDispatcher interface {
	DispatchEmail(to, subject, htmlBody string) <-chan error
	DispatchSMS(to, body string) <-chan error
}

// QRGenerator encodes a URL as a QR image data URI
type QRGenerator interface {
	DataURI(url string) (string, error)
}

// AuthService defines account and session business logic
type AuthService interface {
	Register(ctx context.Context, fullName, email, mobile, password string) (*User, error)
	VerifyOTP(ctx context.Context, userID, code string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID string) (*User, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// CafeService defines cafe profile business logic
type CafeService interface {
	CreateCafe(ctx context.Context, owner *User, name, address, phoneNo, description string) (*Cafe, error)
	MyCafe(ctx context.Context, userID string) (*Cafe, error)
	// EnsureQRCode generates and stores the cafe's QR code on first call and
	// returns the stored image on subsequent ones.
	EnsureQRCode(ctx context.Context, userID string) (*Cafe, error)
}

// MenuService defines menu management business logic for a cafe owner
type MenuService interface {
	AddItem(ctx context.Context, cafeID string, item *MenuItem) (*MenuItem, error)
	ItemsForCafe(ctx context.Context, cafeID string) ([]*MenuItem, error)
	UpdateItem(ctx context.Context, cafeID, itemID string, update MenuItemUpdate) (*MenuItem, error)
	DeleteItem(ctx context.Context, cafeID, itemID string) error
	ToggleAvailability(ctx context.Context, cafeID, itemID string) (*MenuItem, error)
}

// PublicService defines the unauthenticated read endpoints backed by the cache
type PublicService interface {
	ListCafes(ctx context.Context) (*CafeListing, error)
	Menu(ctx context.Context, cafeID string) (*PublicMenu, error)
}
