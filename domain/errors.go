package domain

import "errors"

// Identity errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already in use")
	ErrMobileTaken  = errors.New("mobile number is already in use")
)

// Credential errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OTP errors
var (
	ErrOTPNotIssued = errors.New("otp not generated")
	ErrOTPExpired   = errors.New("otp has expired")
	ErrOTPMismatch  = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrEpochMismatch  = errors.New("token session epoch is stale")
	ErrMissingToken   = errors.New("authentication token is missing")
)

// Cafe and menu errors
var (
	ErrCafeNotFound      = errors.New("cafe not found")
	ErrCafeAlreadyExists = errors.New("user already owns a cafe")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrNoFieldsToUpdate  = errors.New("at least one field is required to update")
)

// Cache errors
var (
	ErrCacheMiss = errors.New("cache miss")
)
