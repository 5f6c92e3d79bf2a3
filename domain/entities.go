package domain

import "time"

// User represents a cafe owner account
type User struct {
	ID           string
	FullName     string
	Email        string
	Mobile       string
	PasswordHash string
	IsVerified   bool
	OTPHash      string
	OTPExpiry    *time.Time
	SessionEpoch int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Cafe represents a cafe profile owned by a user. Cafes serialize directly on
// the public listing, so the field tags are the public API shape.
type Cafe struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"cafename"`
	Address     string    `json:"address"`
	PhoneNo     string    `json:"phoneNo"`
	Description string    `json:"description"`
	QRCode      string    `json:"qrCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MenuItem represents a dish on a cafe's menu
type MenuItem struct {
	ID            string    `json:"id"`
	CafeID        string    `json:"cafeId"`
	DishName      string    `json:"dishName"`
	Category      string    `json:"category"`
	HalfPrice     *float64  `json:"halfPrice"`
	FullPrice     *float64  `json:"fullPrice"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	IsChefSpecial bool      `json:"isChefSpecial"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TokenClaims represents the decoded payload of a session token
type TokenClaims struct {
	UserID       string
	SessionEpoch int64
	IssuedAt     int64
	ExpiresAt    int64
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// CafeSummary is a cafe as shown on the public listing
type CafeSummary struct {
	Cafe           *Cafe `json:"cafe"`
	HasChefSpecial bool  `json:"hasChefSpecial"`
}

// CafeListing is the public cafe listing response shape (cached as a whole)
type CafeListing struct {
	Cafes []CafeSummary `json:"cafes"`
}

// MenuCategory groups public menu items under one category heading
type MenuCategory struct {
	Category string      `json:"category"`
	Items    []*MenuItem `json:"items"`
}

// PublicMenu is the public menu response shape for one cafe (cached as a whole)
type PublicMenu struct {
	Categories []MenuCategory `json:"categories"`
}

// MenuItemUpdate carries the optional fields of a partial menu item update.
// A nil field means "leave unchanged".
type MenuItemUpdate struct {
	DishName      *string
	Category      *string
	HalfPrice     *float64
	FullPrice     *float64
	Description   *string
	IsChefSpecial *bool
}

// IsEmpty reports whether the update would change nothing.
func (u MenuItemUpdate) IsEmpty() bool {
	return u.DishName == nil && u.Category == nil && u.HalfPrice == nil &&
		u.FullPrice == nil && u.Description == nil && u.IsChefSpecial == nil
}
