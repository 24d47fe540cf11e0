package subscription

import "context"

// Repository defines the interface for subscription data access
type Repository interface {
	// Upsert creates or replaces the subscription row for a user
	Upsert(ctx context.Context, sub *Subscription) error

	// GetByUser retrieves a user's subscription, if any
	GetByUser(ctx context.Context, userID int64) (*Subscription, error)
}
