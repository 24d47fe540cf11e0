package client

import "time"

// User represents the caller's profile
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	Plan          string `json:"plan"`
	BrandKitCount int    `json:"brandKitCount"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

// Color is one entry of a brand kit's palette
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	Role string `json:"role"`
}

// Font is one entry of a brand kit's font pairing
type Font struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Source string `json:"source,omitempty"`
}

// BrandKit represents one generated bundle of brand assets
type BrandKit struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	BusinessName   string   `json:"business_name"`
	Industry       *string  `json:"industry,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Vibe           []string `json:"vibe"`
	TargetAudience *string  `json:"target_audience,omitempty"`

	Tagline      *string `json:"tagline,omitempty"`
	BrandSummary *string `json:"brand_summary,omitempty"`
	BrandVoice   *string `json:"brand_voice,omitempty"`

	Colors []Color `json:"colors"`
	Fonts  []Font  `json:"fonts"`

	WebsiteHero       *string  `json:"website_hero,omitempty"`
	WebsiteSubheading *string  `json:"website_subheading,omitempty"`
	WebsiteAbout      *string  `json:"website_about,omitempty"`
	WebsiteServices   []string `json:"website_services,omitempty"`
	WebsiteCTA        *string  `json:"website_cta,omitempty"`

	InstagramBio *string `json:"instagram_bio,omitempty"`
	TiktokBio    *string `json:"tiktok_bio,omitempty"`
	TwitterBio   *string `json:"twitter_bio,omitempty"`

	LogoImageURL   *string `json:"logo_image_url,omitempty"`
	LogoPromptUsed *string `json:"logo_prompt_used,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Plan describes one purchasable tier
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
}

// Subscription is the per-user billing record
type Subscription struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Status      string     `json:"status"`
	CurrentPlan string     `json:"current_plan"`
	RenewalDate *time.Time `json:"renewal_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BillingInfo is the caller's plan plus subscription record, if any
type BillingInfo struct {
	Plan         Plan          `json:"plan"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// HealthResponse is the /healthz payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
