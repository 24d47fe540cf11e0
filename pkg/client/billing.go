package client

import "context"

// BillingService handles plan and subscription API calls
type BillingService struct {
	client *Client
}

// Plans retrieves the purchasable plan tiers
func (s *BillingService) Plans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := s.client.doRequest(ctx, "GET", "/api/v1/billing/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Info retrieves the caller's plan and subscription record
func (s *BillingService) Info(ctx context.Context) (*BillingInfo, error) {
	var info BillingInfo
	if err := s.client.doRequest(ctx, "GET", "/api/v1/billing/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ChangePlan moves the caller to a plan tier ("free" or "pro")
func (s *BillingService) ChangePlan(ctx context.Context, plan string) error {
	req := map[string]string{"plan": plan}
	return s.client.doRequest(ctx, "POST", "/api/v1/billing/subscription", req, nil)
}
