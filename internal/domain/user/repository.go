package user

import "context"

// Repository defines the interface for user data access
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByIdentityKey retrieves a user by the identity provider's subject id
	GetByIdentityKey(ctx context.Context, identityKey string) (*User, error)

	// Update updates a user
	Update(ctx context.Context, user *User) error
}
