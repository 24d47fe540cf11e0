package services

import (
	"context"
	"testing"

	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/domain/subscription"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
	"github.com/brandkitai/brandkit/internal/testutil"
)

func newBillingFixture(t *testing.T) (*BillingService, *testutil.MockSubscriptionRepository, auth.Identity) {
	t.Helper()

	users := testutil.NewMockUserRepository()
	subs := testutil.NewMockSubscriptionRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	userSvc := NewUserService(users, log)
	billing := NewBillingService(userSvc, subs, log)

	identity := auth.Identity{Subject: "idp_billing", Email: "billing@example.com"}
	if _, err := userSvc.SyncIdentity(context.Background(), identity); err != nil {
		t.Fatalf("SyncIdentity() error = %v", err)
	}
	return billing, subs, identity
}

func TestBillingService_ListPlans(t *testing.T) {
	billing, _, _ := newBillingFixture(t)

	plans := billing.ListPlans(context.Background())
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].ID != "free" || plans[1].ID != "pro" {
		t.Errorf("unexpected plan ids: %s, %s", plans[0].ID, plans[1].ID)
	}
	if plans[0].Price != 0 {
		t.Errorf("free plan price = %v, want 0", plans[0].Price)
	}
}

func TestBillingService_GetInfo_DefaultsToFree(t *testing.T) {
	billing, _, identity := newBillingFixture(t)

	info, err := billing.GetInfo(context.Background(), identity)
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}
	if info.Plan.ID != "free" {
		t.Errorf("plan = %q, want free", info.Plan.ID)
	}
	if info.Subscription != nil {
		t.Error("expected no subscription record before any plan change")
	}
}

func TestBillingService_ChangePlan(t *testing.T) {
	billing, subs, identity := newBillingFixture(t)
	ctx := context.Background()

	if err := billing.ChangePlan(ctx, identity, "pro"); err != nil {
		t.Fatalf("ChangePlan() error = %v", err)
	}

	info, err := billing.GetInfo(ctx, identity)
	if err != nil {
		t.Fatalf("GetInfo() error = %v", err)
	}
	if info.Plan.ID != "pro" {
		t.Errorf("plan = %q, want pro", info.Plan.ID)
	}
	if info.Subscription == nil {
		t.Fatal("expected a subscription record after upgrade")
	}
	if info.Subscription.Status != subscription.StatusActive {
		t.Errorf("status = %q, want active", info.Subscription.Status)
	}
	if info.Subscription.RenewalDate == nil {
		t.Error("pro subscription missing renewal date")
	}

	// Downgrade replaces the same row rather than adding one
	if err := billing.ChangePlan(ctx, identity, "free"); err != nil {
		t.Fatalf("downgrade ChangePlan() error = %v", err)
	}
	if len(subs.Subs) != 1 {
		t.Errorf("expected 1 subscription row, got %d", len(subs.Subs))
	}

	if err := billing.ChangePlan(ctx, identity, "enterprise"); err == nil {
		t.Error("ChangePlan() accepted unknown plan")
	}
}
