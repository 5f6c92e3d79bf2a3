package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/you/scandine/domain"
	"github.com/you/scandine/internal/infrastructure/notifications"
)

// CafeServiceImpl implements domain.CafeService
type CafeServiceImpl struct {
	cafeRepo       domain.CafeRepository
	qrGen          domain.QRGenerator
	notifier       domain.NotificationDispatcher
	publicMenuBase string
	logger         *slog.Logger
}

// NewCafeService creates a new cafe service
func NewCafeService(
	cafeRepo domain.CafeRepository,
	qrGen domain.QRGenerator,
	notifier domain.NotificationDispatcher,
	publicMenuBase string,
	logger *slog.Logger,
) domain.CafeService {
	return &CafeServiceImpl{
		cafeRepo:       cafeRepo,
		qrGen:          qrGen,
		notifier:       notifier,
		publicMenuBase: publicMenuBase,
		logger:         logger,
	}
}

// CreateCafe implements domain.CafeService. Each owner gets at most one cafe.
// The confirmation email is dispatched detached; delivery failure never fails
// the registration.
func (s *CafeServiceImpl) CreateCafe(ctx context.Context, owner *domain.User, name, address, phoneNo, description string) (*domain.Cafe, error) {
	if _, err := s.cafeRepo.FindByUserID(ctx, owner.ID); err == nil {
		return nil, domain.ErrCafeAlreadyExists
	} else if err != domain.ErrCafeNotFound {
		return nil, fmt.Errorf("failed to check cafe ownership: %w", err)
	}

	cafe := &domain.Cafe{
		UserID:      owner.ID,
		Name:        name,
		Address:     address,
		PhoneNo:     phoneNo,
		Description: description,
	}

	if err := s.cafeRepo.Create(ctx, cafe); err != nil {
		return nil, fmt.Errorf("failed to create cafe: %w", err)
	}

	result := s.notifier.DispatchEmail(owner.Email,
		"Thank you for registering your cafe with ScanDine",
		notifications.CafeCreatedEmail(owner.FullName, cafe.Name))
	go func() {
		if err := <-result; err != nil {
			s.logger.Error("cafe-created email delivery failed", "recipient", owner.Email, "error", err)
		}
	}()

	return cafe, nil
}

// MyCafe implements domain.CafeService
func (s *CafeServiceImpl) MyCafe(ctx context.Context, userID string) (*domain.Cafe, error) {
	return s.cafeRepo.FindByUserID(ctx, userID)
}

// EnsureQRCode implements domain.CafeService. The image is generated at most
// once per cafe and stored on the cafe record.
func (s *CafeServiceImpl) EnsureQRCode(ctx context.Context, userID string) (*domain.Cafe, error) {
	cafe, err := s.cafeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cafe.QRCode != "" {
		return cafe, nil
	}

	menuURL := fmt.Sprintf("%s/%s", s.publicMenuBase, cafe.ID)
	dataURI, err := s.qrGen.DataURI(menuURL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	if err := s.cafeRepo.UpdateQRCode(ctx, cafe.ID, dataURI); err != nil {
		return nil, fmt.Errorf("failed to store QR code: %w", err)
	}

	cafe.QRCode = dataURI
	return cafe, nil
}
