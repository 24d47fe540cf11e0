package services

import (
	"context"
	"strings"

	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo   user.Repository
	logger *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo user.Repository, log *logger.Logger) user.Service {
	return &UserService{
		repo:   repo,
		logger: log,
	}
}

// SyncIdentity upserts the user record for an identity. First sight creates
// the row with plan=free and zero kits; later calls refresh name/email and
// the update timestamp and return the same id.
func (s *UserService) SyncIdentity(ctx context.Context, identity auth.Identity) (int64, error) {
	if identity.Subject == "" {
		return 0, errors.Unauthenticated("Missing caller identity")
	}

	var name *string
	if trimmed := strings.TrimSpace(identity.Name); trimmed != "" {
		name = &trimmed
	}

	existing, err := s.repo.GetByIdentityKey(ctx, identity.Subject)
	if err == nil {
		existing.Name = name
		existing.Email = identity.Email
		if err := s.repo.Update(ctx, existing); err != nil {
			s.logger.ErrorWithErr(err, "Failed to update synced user")
			return 0, err
		}
		return existing.ID, nil
	}
	if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.ErrCodeNotFound {
		s.logger.ErrorWithErr(err, "Failed to look up user for sync")
		return 0, err
	}

	u := &user.User{
		IdentityKey:   identity.Subject,
		Email:         identity.Email,
		Name:          name,
		Plan:          user.PlanFree,
		BrandKitCount: 0,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create user")
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":      u.ID,
		"identity_key": u.IdentityKey,
	}).Info("User created")

	return u.ID, nil
}

// GetByIdentity retrieves the user record backing an identity
func (s *UserService) GetByIdentity(ctx context.Context, identity auth.Identity) (*user.User, error) {
	if identity.Subject == "" {
		return nil, errors.Unauthenticated("Missing caller identity")
	}
	u, err := s.repo.GetByIdentityKey(ctx, identity.Subject)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeNotFound {
			return nil, errors.UserNotSynced()
		}
		return nil, err
	}
	return u, nil
}

// ChangePlan moves a user to the given plan tier
func (s *UserService) ChangePlan(ctx context.Context, identity auth.Identity, plan string) error {
	if !user.ValidPlan(plan) {
		return errors.BadRequest("Unknown plan: " + plan)
	}

	u, err := s.GetByIdentity(ctx, identity)
	if err != nil {
		return err
	}

	u.Plan = plan
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to change plan")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"plan":    plan,
	}).Info("User plan changed")

	return nil
}
