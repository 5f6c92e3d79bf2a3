package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/infrastructure/auth"
	"github.com/you/scandine/internal/infrastructure/cache"
	"github.com/you/scandine/internal/infrastructure/notifications"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	cafeRepo    domain.CafeRepository
	menuRepo    domain.MenuRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	blacklist   domain.TokenBlacklist
	notifier    domain.NotificationDispatcher
	cache       domain.Cache
	otpTTL      time.Duration
	otpLength   int
	tokenTTL    time.Duration
	logger      *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	cafeRepo domain.CafeRepository,
	menuRepo domain.MenuRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	blacklist domain.TokenBlacklist,
	notifier domain.NotificationDispatcher,
	cacheStore domain.Cache,
	otpTTL time.Duration,
	otpLength int,
	tokenTTL time.Duration,
	logger *slog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		cafeRepo:    cafeRepo,
		menuRepo:    menuRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		blacklist:   blacklist,
		notifier:    notifier,
		cache:       cacheStore,
		otpTTL:      otpTTL,
		otpLength:   otpLength,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Register implements domain.AuthService. The account starts unverified with
// a hashed one-time passcode; only the OTP digest and the password hash are
// stored. Delivery failures are logged, never surfaced to the caller.
func (s *AuthServiceImpl) Register(ctx context.Context, fullName, email, mobile, password string) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	if _, err := s.userRepo.FindByMobile(ctx, mobile); err == nil {
		return nil, domain.ErrMobileTaken
	} else if err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check mobile uniqueness: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := auth.GenerateOTP(s.otpLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	otpExpiry := time.Now().Add(s.otpTTL)
	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: hashedPassword,
		IsVerified:   false,
		OTPHash:      auth.HashOTP(code),
		OTPExpiry:    &otpExpiry,
		SessionEpoch: 0,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	validMinutes := int(s.otpTTL.Minutes())
	s.detach("otp email", user.Email,
		s.notifier.DispatchEmail(user.Email, "Verify your ScanDine Account",
			notifications.OTPVerificationEmail(user.FullName, code, validMinutes)))
	s.detach("otp sms", user.Mobile,
		s.notifier.DispatchSMS(user.Mobile, notifications.OTPVerificationSMS(code, validMinutes)))

	return user, nil
}

// VerifyOTP implements domain.AuthService. No state changes until every
// check passes; the success path flips the verified flag and clears the OTP
// fields in one write, so resubmitting the same code fails with ErrOTPNotIssued.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, userID, code string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.OTPHash == "" || user.OTPExpiry == nil {
		return domain.ErrOTPNotIssued
	}

	if time.Now().After(*user.OTPExpiry) {
		return domain.ErrOTPExpired
	}

	if !auth.OTPMatches(user.OTPHash, code) {
		return domain.ErrOTPMismatch
	}

	return s.userRepo.MarkVerified(ctx, user.ID)
}

// Login implements domain.AuthService. The epoch bump commits before the
// token is issued, so the token always carries the fresh epoch and every
// previously issued token turns stale.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	epoch, err := s.userRepo.BumpSessionEpoch(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to bump session epoch: %w", err)
	}
	user.SessionEpoch = epoch

	token, expiresAt, err := s.tokenSvc.Issue(user.ID, epoch)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout implements domain.AuthService. The raw token goes on the revocation
// ledger for its remaining lifetime; revoking twice is harmless.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	ttl := s.tokenTTL
	if claims, err := s.tokenSvc.Verify(token); err == nil {
		ttl = time.Until(time.Unix(claims.ExpiresAt, 0))
	}
	return s.blacklist.Revoke(ctx, token, ttl)
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// DeleteAccount implements domain.AuthService. Menu items, the cafe, and the
// user go in that order; there is no cross-table transaction, so a crash
// mid-way leaves orphan-free data at worst. The cafe's menu key and the cafe
// listing key are invalidated with the data they mirrored.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, userID string) error {
	cafe, err := s.cafeRepo.FindByUserID(ctx, userID)
	if err == nil {
		if err := s.menuRepo.DeleteByCafeID(ctx, cafe.ID); err != nil {
			return fmt.Errorf("failed to delete menu items: %w", err)
		}
		if err := s.cafeRepo.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete cafe: %w", err)
		}
		s.invalidate(ctx, cache.MenuKey(cafe.ID))
		s.invalidate(ctx, cache.CafeListKey())
	} else if err != domain.ErrCafeNotFound {
		return fmt.Errorf("failed to look up cafe: %w", err)
	}

	return s.userRepo.Delete(ctx, userID)
}

// invalidate deletes a public cache entry. The store writes already committed;
// a failed delete only means the entry can stay stale until its TTL, so it is
// logged rather than failing the request.
func (s *AuthServiceImpl) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("cache invalidation failed", "key", key, "error", err)
	}
}

// detach drains a dispatch result in the background, logging failures.
func (s *AuthServiceImpl) detach(kind, recipient string, result <-chan error) {
	go func() {
		if err := <-result; err != nil {
			s.logger.Error("notification delivery failed", "kind", kind, "recipient", recipient, "error", err)
		}
	}()
}
