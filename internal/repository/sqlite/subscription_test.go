package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/brandkitai/brandkit/internal/domain/subscription"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/repository/sqlite"
	"github.com/brandkitai/brandkit/internal/testutil"
)

func TestSubscriptionRepository_Upsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := sqlite.NewUserRepository(db)
	subs := sqlite.NewSubscriptionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "idp_subs", user.PlanFree)

	renewal := time.Now().Add(30 * 24 * time.Hour)
	customerID := "cus_123"
	sub := &subscription.Subscription{
		UserID:           owner.ID,
		StripeCustomerID: &customerID,
		Status:           subscription.StatusActive,
		CurrentPlan:      user.PlanPro,
		RenewalDate:      &renewal,
	}
	if err := subs.Upsert(ctx, sub); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := subs.GetByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("GetByUser() error = %v", err)
	}
	if got.Status != subscription.StatusActive || got.CurrentPlan != user.PlanPro {
		t.Errorf("unexpected subscription: %+v", got)
	}
	if got.StripeCustomerID == nil || *got.StripeCustomerID != "cus_123" {
		t.Errorf("stripe customer id = %v", got.StripeCustomerID)
	}
	if got.RenewalDate == nil {
		t.Error("renewal date not persisted")
	}

	// Second upsert replaces the row in place
	sub.Status = subscription.StatusCanceled
	sub.CurrentPlan = user.PlanFree
	sub.RenewalDate = nil
	if err := subs.Upsert(ctx, sub); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	got, _ = subs.GetByUser(ctx, owner.ID)
	if got.Status != subscription.StatusCanceled || got.CurrentPlan != user.PlanFree {
		t.Errorf("upsert did not replace: %+v", got)
	}
	if got.RenewalDate != nil {
		t.Errorf("renewal date should be cleared, got %v", got.RenewalDate)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM subscriptions WHERE user_id = ?`, owner.ID).Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 subscription row, got %d", count)
	}
}

func TestSubscriptionRepository_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	subs := sqlite.NewSubscriptionRepository(db)

	_, err := subs.GetByUser(context.Background(), 999)
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
