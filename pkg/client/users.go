package client

import "context"

// UserService handles identity sync and profile API calls
type UserService struct {
	client *Client
}

// Sync upserts the caller's user record from the identity token
func (s *UserService) Sync(ctx context.Context) error {
	return s.client.doRequest(ctx, "POST", "/api/v1/users/sync", nil, nil)
}

// Me retrieves the caller's profile
func (s *UserService) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, "GET", "/api/v1/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
