package brandkit

import (
	"context"

	"github.com/brandkitai/brandkit/internal/auth"
)

// CreateInput carries the user-provided attributes of a new kit.
type CreateInput struct {
	BusinessName   string
	Industry       *string
	Description    *string
	Vibe           []string
	TargetAudience *string
}

// Service defines the interface for brand-kit business logic. Every method
// takes the explicit caller identity and re-derives authorization from it.
type Service interface {
	// Create inserts a new kit for the caller, enforcing the plan quota
	Create(ctx context.Context, identity auth.Identity, input CreateInput) (int64, error)

	// List returns the caller's kits newest-first; empty for unknown callers
	List(ctx context.Context, identity auth.Identity) ([]*BrandKit, error)

	// Get returns one kit the caller owns
	Get(ctx context.Context, identity auth.Identity, kitID int64) (*BrandKit, error)

	// Patch merges generated fields onto a kit the caller owns
	Patch(ctx context.Context, identity auth.Identity, kitID int64, patch *GeneratedPatch) error

	// GenerateField generates one narrative field for a kit the caller
	// owns, persists it, and returns the generated text
	GenerateField(ctx context.Context, identity auth.Identity, kitID int64, field GeneratableField) (string, error)
}
