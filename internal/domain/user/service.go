package user

import (
	"context"

	"github.com/brandkitai/brandkit/internal/auth"
)

// Service defines the interface for user business logic
type Service interface {
	// SyncIdentity upserts the user record for the given identity, creating
	// it with plan=free and zero brand kits on first sight. Returns the
	// user id either way.
	SyncIdentity(ctx context.Context, identity auth.Identity) (int64, error)

	// GetByIdentity retrieves the user record backing an identity
	GetByIdentity(ctx context.Context, identity auth.Identity) (*User, error)

	// ChangePlan moves a user to the given plan tier
	ChangePlan(ctx context.Context, identity auth.Identity, plan string) error
}
