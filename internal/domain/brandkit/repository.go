package brandkit

import "context"

// Repository defines the interface for brand-kit data access
type Repository interface {
	// CreateWithQuota inserts a kit and increments the owner's brand-kit
	// count in one transaction, re-checking the owner's plan quota inside
	// it. Returns the new kit id, or a quota error when the re-check fails.
	CreateWithQuota(ctx context.Context, kit *BrandKit) (int64, error)

	// GetByID retrieves a kit by id
	GetByID(ctx context.Context, id int64) (*BrandKit, error)

	// ListByUser returns all kits owned by a user, newest first
	ListByUser(ctx context.Context, userID int64) ([]*BrandKit, error)

	// ApplyPatch merges generated fields onto a kit and refreshes its
	// update timestamp
	ApplyPatch(ctx context.Context, id int64, patch *GeneratedPatch) error

	// SetGeneratedField writes one narrative field and refreshes the
	// update timestamp
	SetGeneratedField(ctx context.Context, id int64, field GeneratableField, value string) error
}
