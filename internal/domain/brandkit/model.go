package brandkit

import "time"

// ColorRole classifies a palette entry.
type ColorRole string

const (
	ColorRolePrimary    ColorRole = "primary"
	ColorRoleSecondary  ColorRole = "secondary"
	ColorRoleAccent     ColorRole = "accent"
	ColorRoleBackground ColorRole = "background"
	ColorRoleNeutral    ColorRole = "neutral"
)

// Valid reports whether r is a known color role.
func (r ColorRole) Valid() bool {
	switch r {
	case ColorRolePrimary, ColorRoleSecondary, ColorRoleAccent, ColorRoleBackground, ColorRoleNeutral:
		return true
	}
	return false
}

// FontRole classifies a font entry.
type FontRole string

const (
	FontRoleHeading FontRole = "heading"
	FontRoleBody    FontRole = "body"
	FontRoleAccent  FontRole = "accent"
)

// Valid reports whether r is a known font role.
func (r FontRole) Valid() bool {
	switch r {
	case FontRoleHeading, FontRoleBody, FontRoleAccent:
		return true
	}
	return false
}

// Color is one entry of the generated palette.
type Color struct {
	Name string    `json:"name"`
	Hex  string    `json:"hex"`
	Role ColorRole `json:"role"`
}

// Font is one entry of the generated font pairing.
type Font struct {
	Name   string   `json:"name"`
	Role   FontRole `json:"role"`
	Source string   `json:"source"`
}

// BrandKit is one generated bundle of brand assets, owned by exactly one
// user. Generated fields start absent; Colors and Fonts are always present,
// defaulting to empty slices.
type BrandKit struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// User-provided attributes
	BusinessName   string   `json:"business_name"`
	Industry       *string  `json:"industry,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Vibe           []string `json:"vibe"`
	TargetAudience *string  `json:"target_audience,omitempty"`

	// Generated narrative fields
	Tagline      *string `json:"tagline,omitempty"`
	BrandSummary *string `json:"brand_summary,omitempty"`
	BrandVoice   *string `json:"brand_voice,omitempty"`

	// Generated visual fields
	Colors []Color `json:"colors"`
	Fonts  []Font  `json:"fonts"`

	// Generated website copy
	WebsiteHero       *string  `json:"website_hero,omitempty"`
	WebsiteSubheading *string  `json:"website_subheading,omitempty"`
	WebsiteAbout      *string  `json:"website_about,omitempty"`
	WebsiteServices   []string `json:"website_services,omitempty"`
	WebsiteCTA        *string  `json:"website_cta,omitempty"`

	// Generated social bios
	InstagramBio *string `json:"instagram_bio,omitempty"`
	TiktokBio    *string `json:"tiktok_bio,omitempty"`
	TwitterBio   *string `json:"twitter_bio,omitempty"`

	// Logo
	LogoImageURL   *string `json:"logo_image_url,omitempty"`
	LogoPromptUsed *string `json:"logo_prompt_used,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneratedPatch is a merge patch over the generated fields. A nil pointer
// means "leave unchanged"; omission is never treated as "clear this field".
type GeneratedPatch struct {
	Tagline      *string `json:"tagline,omitempty"`
	BrandSummary *string `json:"brand_summary,omitempty"`
	BrandVoice   *string `json:"brand_voice,omitempty"`

	Colors []Color `json:"colors,omitempty"`
	Fonts  []Font  `json:"fonts,omitempty"`

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
}

// Apply merges the patch onto a kit, leaving nil fields untouched.
func (p *GeneratedPatch) Apply(k *BrandKit) {
	if p.Tagline != nil {
		k.Tagline = p.Tagline
	}
	if p.BrandSummary != nil {
		k.BrandSummary = p.BrandSummary
	}
	if p.BrandVoice != nil {
		k.BrandVoice = p.BrandVoice
	}
	if p.Colors != nil {
		k.Colors = p.Colors
	}
	if p.Fonts != nil {
		k.Fonts = p.Fonts
	}
	if p.WebsiteHero != nil {
		k.WebsiteHero = p.WebsiteHero
	}
	if p.WebsiteSubheading != nil {
		k.WebsiteSubheading = p.WebsiteSubheading
	}
	if p.WebsiteAbout != nil {
		k.WebsiteAbout = p.WebsiteAbout
	}
	if p.WebsiteServices != nil {
		k.WebsiteServices = p.WebsiteServices
	}
	if p.WebsiteCTA != nil {
		k.WebsiteCTA = p.WebsiteCTA
	}
	if p.InstagramBio != nil {
		k.InstagramBio = p.InstagramBio
	}
	if p.TiktokBio != nil {
		k.TiktokBio = p.TiktokBio
	}
	if p.TwitterBio != nil {
		k.TwitterBio = p.TwitterBio
	}
	if p.LogoImageURL != nil {
		k.LogoImageURL = p.LogoImageURL
	}
	if p.LogoPromptUsed != nil {
		k.LogoPromptUsed = p.LogoPromptUsed
	}
}

// GeneratableField names a narrative field the single-field generator may write.
type GeneratableField string

const (
	FieldTagline      GeneratableField = "tagline"
	FieldBrandSummary GeneratableField = "brandSummary"
	FieldBrandVoice   GeneratableField = "brandVoice"
)

// Valid reports whether f is a generatable field.
func (f GeneratableField) Valid() bool {
	switch f {
	case FieldTagline, FieldBrandSummary, FieldBrandVoice:
		return true
	}
	return false
}
