package services

import (
	"context"
	"time"

	"github.com/brandkitai/brandkit/internal/auth"
	"github.com/brandkitai/brandkit/internal/domain/subscription"
	"github.com/brandkitai/brandkit/internal/domain/user"
	"github.com/brandkitai/brandkit/internal/pkg/errors"
	"github.com/brandkitai/brandkit/internal/pkg/logger"
)

// Plan describes one purchasable tier.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
}

// BillingInfo is a user's plan plus subscription record, if any.
type BillingInfo struct {
	Plan         Plan                       `json:"plan"`
	Subscription *subscription.Subscription `json:"subscription,omitempty"`
}

// BillingService manages plans and the per-user subscription record.
type BillingService struct {
	users  user.Service
	subs   subscription.Repository
	logger *logger.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(users user.Service, subs subscription.Repository, log *logger.Logger) *BillingService {
	return &BillingService{
		users:  users,
		subs:   subs,
		logger: log,
	}
}

var plans = []Plan{
	{
		ID:          user.PlanFree,
		Name:        "Free",
		Description: "Try BrandKitAI with one brand",
		Price:       0,
		Currency:    "USD",
		Interval:    "month",
		Features: []string{
			"1 brand kit",
			"AI tagline, summary and voice",
			"Color palette and font pairing",
		},
	},
	{
		ID:          user.PlanPro,
		Name:        "Pro",
		Description: "For founders and agencies building many brands",
		Price:       19,
		Currency:    "USD",
		Interval:    "month",
		Features: []string{
			"Unlimited brand kits",
			"Website copy and social bios",
			"Logo prompts",
			"Priority generation",
		},
	},
}

// ListPlans returns the purchasable tiers
func (s *BillingService) ListPlans(ctx context.Context) []Plan {
	return plans
}

// GetInfo returns the caller's current plan and subscription record
func (s *BillingService) GetInfo(ctx context.Context, identity auth.Identity) (*BillingInfo, error) {
	u, err := s.users.GetByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	info := &BillingInfo{}
	for _, p := range plans {
		if p.ID == u.Plan {
			info.Plan = p
		}
	}

	sub, err := s.subs.GetByUser(ctx, u.ID)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.ErrCodeNotFound {
			return nil, err
		}
		// no subscription row yet: implicit free tier
	} else {
		info.Subscription = sub
	}

	return info, nil
}

// ChangePlan moves the caller to a plan and records the subscription
func (s *BillingService) ChangePlan(ctx context.Context, identity auth.Identity, plan string) error {
	if !user.ValidPlan(plan) {
		return errors.BadRequest("Unknown plan: " + plan)
	}

	u, err := s.users.GetByIdentity(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.users.ChangePlan(ctx, identity, plan); err != nil {
		return err
	}

	sub := &subscription.Subscription{
		UserID:      u.ID,
		Status:      subscription.StatusActive,
		CurrentPlan: plan,
	}
	if plan == user.PlanPro {
		renewal := time.Now().Add(30 * 24 * time.Hour)
		sub.RenewalDate = &renewal
	}

	if err := s.subs.Upsert(ctx, sub); err != nil {
		s.logger.ErrorWithErr(err, "Failed to record subscription")
		return err
	}

	return nil
}
