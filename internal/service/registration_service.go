package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

// RegistrationService defines the user registration contract.
type RegistrationService interface {
	// Register upserts the user keyed by identity.UID. Calling it again with
	// the same UID overwrites the stored email.
	Register(ctx context.Context, identity domain.Identity) error
}

type registrationService struct {
	userRepo port.UserRepository
	logger   *zap.Logger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(userRepo port.UserRepository, logger *zap.Logger) RegistrationService {
	return &registrationService{userRepo: userRepo, logger: logger}
}

func (s *registrationService) Register(ctx context.Context, identity domain.Identity) error {
	user := &domain.User{UID: identity.UID, Email: identity.Email}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		s.logger.Error("registrationService.Register: upsert failed",
			zap.String("uid", identity.UID), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrRegisterFailed, err)
	}

	s.logger.Info("registrationService.Register: user registered", zap.String("uid", identity.UID))
	return nil
}
