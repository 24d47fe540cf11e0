package client

import (
	"context"
	"fmt"
)

// BrandKitService handles brand kit API calls
type BrandKitService struct {
	client *Client
}

// CreateBrandKitRequest represents a request to create a brand kit
type CreateBrandKitRequest struct {
	BusinessName   string   `json:"businessName"`
	Industry       *string  `json:"industry,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Vibe           []string `json:"vibe"`
	TargetAudience *string  `json:"targetAudience,omitempty"`
}

// PatchBrandKitRequest merges generated fields onto a kit. Absent fields
// are left untouched.
type PatchBrandKitRequest struct {
	Tagline      *string `json:"tagline,omitempty"`
	BrandSummary *string `json:"brandSummary,omitempty"`
	BrandVoice   *string `json:"brandVoice,omitempty"`

	Colors []Color `json:"colors,omitempty"`
	Fonts  []Font  `json:"fonts,omitempty"`

	WebsiteHero       *string  `json:"websiteHero,omitempty"`
	WebsiteSubheading *string  `json:"websiteSubheading,omitempty"`
	WebsiteAbout      *string  `json:"websiteAbout,omitempty"`
	WebsiteServices   []string `json:"websiteServices,omitempty"`
	WebsiteCTA        *string  `json:"websiteCta,omitempty"`

	InstagramBio *string `json:"instagramBio,omitempty"`
	TiktokBio    *string `json:"tiktokBio,omitempty"`
	TwitterBio   *string `json:"twitterBio,omitempty"`

	LogoImageURL   *string `json:"logoImageUrl,omitempty"`
	LogoPromptUsed *string `json:"logoPromptUsed,omitempty"`
}

// GeneratedField carries the output of a single-field generation
type GeneratedField struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// List retrieves the caller's brand kits, newest first
func (s *BrandKitService) List(ctx context.Context) ([]BrandKit, error) {
	var kits []BrandKit
	if err := s.client.doRequest(ctx, "GET", "/api/v1/brand-kits", nil, &kits); err != nil {
		return nil, err
	}
	return kits, nil
}

// Get retrieves a single brand kit by ID
func (s *BrandKitService) Get(ctx context.Context, id int64) (*BrandKit, error) {
	path := fmt.Sprintf("/api/v1/brand-kits/%d", id)

	var kit BrandKit
	if err := s.client.doRequest(ctx, "GET", path, nil, &kit); err != nil {
		return nil, err
	}
	return &kit, nil
}

// Create creates a new brand kit and returns its id
func (s *BrandKitService) Create(ctx context.Context, req CreateBrandKitRequest) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/brand-kits", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Patch merges generated fields onto an existing kit
func (s *BrandKitService) Patch(ctx context.Context, id int64, req PatchBrandKitRequest) error {
	path := fmt.Sprintf("/api/v1/brand-kits/%d", id)
	return s.client.doRequest(ctx, "PATCH", path, req, nil)
}

// Generate produces one narrative field for a kit and returns the text.
// field is one of "tagline", "brandSummary" or "brandVoice".
func (s *BrandKitService) Generate(ctx context.Context, id int64, field string) (*GeneratedField, error) {
	path := fmt.Sprintf("/api/v1/brand-kits/%d/generate", id)

	req := map[string]string{"field": field}
	var result GeneratedField
	if err := s.client.doRequest(ctx, "POST", path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
