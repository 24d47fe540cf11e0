package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/brandkitai/brandkit/internal/domain/subscription"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
)

// SubscriptionRepository implements subscription.Repository
type SubscriptionRepository struct {
	db *sql.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sql.DB) subscription.Repository {
	return &SubscriptionRepository{db: db}
}

// Upsert creates or replaces the subscription row for a user
func (r *SubscriptionRepository) Upsert(ctx context.Context, s *subscription.Subscription) error {
	now := time.Now()
	s.UpdatedAt = now
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}

	var renewal interface{}
	if s.RenewalDate != nil {
		renewal = s.RenewalDate.Unix()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (
			user_id, stripe_customer_id, stripe_subscription_id,
			status, current_plan, renewal_date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			stripe_customer_id = excluded.stripe_customer_id,
			stripe_subscription_id = excluded.stripe_subscription_id,
			status = excluded.status,
			current_plan = excluded.current_plan,
			renewal_date = excluded.renewal_date,
			updated_at = excluded.updated_at
	`,
		s.UserID, s.StripeCustomerID, s.StripeSubscriptionID,
		s.Status, s.CurrentPlan, renewal, s.CreatedAt.Unix(), s.UpdatedAt.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to upsert subscription", err)
	}
	return nil
}

// GetByUser retrieves a user's subscription, if any
func (r *SubscriptionRepository) GetByUser(ctx context.Context, userID int64) (*subscription.Subscription, error) {
	var s subscription.Subscription
	var custID, subID sql.NullString
	var renewal sql.NullInt64
	var createdAt, updatedAt int64

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, stripe_customer_id, stripe_subscription_id,
			status, current_plan, renewal_date, created_at, updated_at
		FROM subscriptions WHERE user_id = ?
	`, userID).Scan(
		&s.ID, &s.UserID, &custID, &subID,
		&s.Status, &s.CurrentPlan, &renewal, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Subscription")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get subscription", err)
	}

	s.StripeCustomerID = nullableString(custID)
	s.StripeSubscriptionID = nullableString(subID)
	if renewal.Valid {
		t := time.Unix(renewal.Int64, 0)
		s.RenewalDate = &t
	}
	s.CreatedAt = time.Unix(createdAt, 0)
	s.UpdatedAt = time.Unix(updatedAt, 0)

	return &s, nil
}
