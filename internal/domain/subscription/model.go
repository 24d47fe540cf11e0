package subscription

import "time"

// Subscription is the per-user billing record.
type Subscription struct {
	ID                   int64      `json:"id"`
	UserID               int64      `json:"user_id"`
	StripeCustomerID     *string    `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id,omitempty"`
	Status               string     `json:"status"`
	CurrentPlan          string     `json:"current_plan"`
	RenewalDate          *time.Time `json:"renewal_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Subscription statuses
const (
	StatusActive            = "active"
	StatusCanceled          = "canceled"
	StatusPastDue           = "past_due"
	StatusIncomplete        = "incomplete"
	StatusTrialing          = "trialing"
	StatusIncompleteExpired = "incomplete_expired"
)

// ValidStatus reports whether s is a known subscription status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusCanceled, StatusPastDue, StatusIncomplete, StatusTrialing, StatusIncompleteExpired:
		return true
	}
	return false
}
