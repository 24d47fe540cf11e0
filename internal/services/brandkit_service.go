package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/brandkitai/brandkit/internal/ai"
	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/domain/brandkit"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/pkg/metrics"
)

// BrandKitService implements brandkit.Service
type BrandKitService struct {
	kits      brandkit.Repository
	users     user.Repository
	generator ai.Generator
	logger    *logger.Logger

	// bound on one streamed generation call
	generationTimeout time.Duration
}

// NewBrandKitService creates a new brand-kit service
func NewBrandKitService(
	kits brandkit.Repository,
	users user.Repository,
	generator ai.Generator,
	log *logger.Logger,
	generationTimeout time.Duration,
) brandkit.Service {
	if generationTimeout <= 0 {
		generationTimeout = 60 * time.Second
	}
	return &BrandKitService{
		kits:              kits,
		users:             users,
		generator:         generator,
		logger:            log,
		generationTimeout: generationTimeout,
	}
}

// resolveOwner re-derives the caller's user record from the identity. Every
// mutating operation goes through this before touching any kit.
func (s *BrandKitService) resolveOwner(ctx context.Context, identity auth.Identity) (*user.User, error) {
	if identity.Subject == "" {
		return nil, errors.Unauthenticated("Missing caller identity")
	}
	u, err := s.users.GetByIdentityKey(ctx, identity.Subject)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeNotFound {
			return nil, errors.UserNotSynced()
		}
		return nil, err
	}
	return u, nil
}

// ownedKit loads a kit and verifies the caller owns it
func (s *BrandKitService) ownedKit(ctx context.Context, identity auth.Identity, kitID int64) (*brandkit.BrandKit, error) {
	owner, err := s.resolveOwner(ctx, identity)
	if err != nil {
		return nil, err
	}

	kit, err := s.kits.GetByID(ctx, kitID)
	if err != nil {
		return nil, err
	}
	if kit.UserID != owner.ID {
		return nil, errors.Forbidden("Brand kit belongs to another user")
	}
	return kit, nil
}

// Create inserts a new kit for the caller, enforcing the plan quota
func (s *BrandKitService) Create(ctx context.Context, identity auth.Identity, input brandkit.CreateInput) (int64, error) {
	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		return 0, errors.BadRequest("Business name is required")
	}
	if len(input.Vibe) == 0 {
		return 0, errors.BadRequest("At least one vibe descriptor is required")
	}

	owner, err := s.resolveOwner(ctx, identity)
	if err != nil {
		return 0, err
	}

	kit := &brandkit.BrandKit{
		UserID:         owner.ID,
		BusinessName:   businessName,
		Industry:       input.Industry,
		Description:    input.Description,
		Vibe:           input.Vibe,
		TargetAudience: input.TargetAudience,
		Colors:         []brandkit.Color{},
		Fonts:          []brandkit.Font{},
	}

	id, err := s.kits.CreateWithQuota(ctx, kit)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeQuotaExceeded {
			metrics.RecordQuotaRejection()
		}
		return 0, err
	}

	metrics.RecordKitCreated(owner.Plan)
	s.logger.WithFields(map[string]interface{}{
		"kit_id":  id,
		"user_id": owner.ID,
	}).Info("Brand kit created")

	return id, nil
}

// List returns the caller's kits newest-first. Unknown callers get an empty
// list rather than an error, matching the dashboard's read path.
func (s *BrandKitService) List(ctx context.Context, identity auth.Identity) ([]*brandkit.BrandKit, error) {
	owner, err := s.resolveOwner(ctx, identity)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok &&
			(appErr.Code == errors.ErrCodeUnauthenticated || appErr.Code == errors.ErrCodeUserNotSynced) {
			return []*brandkit.BrandKit{}, nil
		}
		return nil, err
	}
	return s.kits.ListByUser(ctx, owner.ID)
}

// Get returns one kit the caller owns
func (s *BrandKitService) Get(ctx context.Context, identity auth.Identity, kitID int64) (*brandkit.BrandKit, error) {
	return s.ownedKit(ctx, identity, kitID)
}

// Patch merges generated fields onto a kit the caller owns
func (s *BrandKitService) Patch(ctx context.Context, identity auth.Identity, kitID int64, patch *brandkit.GeneratedPatch) error {
	if patch == nil {
		return errors.BadRequest("Empty patch")
	}
	for _, c := range patch.Colors {
		if !c.Role.Valid() {
			return errors.BadRequest("Unknown color role: " + string(c.Role))
		}
	}
	for _, f := range patch.Fonts {
		if !f.Role.Valid() {
			return errors.BadRequest("Unknown font role: " + string(f.Role))
		}
	}

	if _, err := s.ownedKit(ctx, identity, kitID); err != nil {
		return err
	}
	return s.kits.ApplyPatch(ctx, kitID, patch)
}

// GenerateField generates one narrative field for a kit the caller owns,
// accumulating the upstream chunk stream into a single string. Only the
// final concatenation is persisted.
func (s *BrandKitService) GenerateField(ctx context.Context, identity auth.Identity, kitID int64, field brandkit.GeneratableField) (string, error) {
	if !field.Valid() {
		return "", errors.BadRequest("Field is not generatable: " + string(field))
	}

	kit, err := s.ownedKit(ctx, identity, kitID)
	if err != nil {
		return "", err
	}

	prompt, err := ai.BuildPrompt(kit, field)
	if err != nil {
		return "", errors.Internal("Failed to build prompt", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	start := time.Now()
	stream, err := s.generator.GenerateStream(genCtx, prompt)
	if err != nil {
		metrics.RecordGeneration(string(field), "error", 0)
		return "", errors.GenerationFailed(err)
	}
	defer stream.Close()

	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.RecordGeneration(string(field), "error", 0)
			return "", errors.GenerationFailed(err)
		}
		sb.WriteString(chunk)
	}
	result := sb.String()

	if err := s.kits.SetGeneratedField(ctx, kitID, field, result); err != nil {
		return "", err
	}

	metrics.RecordGeneration(string(field), "ok", time.Since(start))
	s.logger.WithFields(map[string]interface{}{
		"kit_id": kitID,
		"field":  string(field),
		"chars":  len(result),
	}).Info("Field generated")

	return result, nil
}
