package dto

import "github.com/brandkitai/brandkit/internal/domain/brandkit"

// CreateBrandKitRequest is the payload for creating a brand kit
type CreateBrandKitRequest struct {
	BusinessName   string   `json:"businessName" validate:"required,min=2,max=100"`
	Industry       *string  `json:"industry,omitempty" validate:"omitempty,max=100"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Vibe           []string `json:"vibe" validate:"required,min=1,max=10,dive,min=1,max=50"`
	TargetAudience *string  `json:"targetAudience,omitempty" validate:"omitempty,max=500"`
}

// ToInput converts the request to the service input
func (r *CreateBrandKitRequest) ToInput() brandkit.CreateInput {
	return brandkit.CreateInput{
		BusinessName:   r.BusinessName,
		Industry:       r.Industry,
		Description:    r.Description,
		Vibe:           r.Vibe,
		TargetAudience: r.TargetAudience,
	}
}

// ColorRequest is one palette entry in a patch
type ColorRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Hex  string `json:"hex" validate:"required,hexcolor"`
	Role string `json:"role" validate:"required,oneof=primary secondary accent background neutral"`
}

// FontRequest is one font entry in a patch
type FontRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Role   string `json:"role" validate:"required,oneof=heading body accent"`
	Source string `json:"source" validate:"omitempty,max=200"`
}

// PatchBrandKitRequest merges generated fields onto a kit. Absent fields
// are left untouched.
type PatchBrandKitRequest struct {
	Tagline      *string `json:"tagline,omitempty" validate:"omitempty,max=500"`
	BrandSummary *string `json:"brandSummary,omitempty" validate:"omitempty,max=5000"`
	BrandVoice   *string `json:"brandVoice,omitempty" validate:"omitempty,max=5000"`

	Colors []ColorRequest `json:"colors,omitempty" validate:"omitempty,max=10,dive"`
	Fonts  []FontRequest  `json:"fonts,omitempty" validate:"omitempty,max=5,dive"`

	WebsiteHero       *string  `json:"websiteHero,omitempty" validate:"omitempty,max=1000"`
	WebsiteSubheading *string  `json:"websiteSubheading,omitempty" validate:"omitempty,max=1000"`
	WebsiteAbout      *string  `json:"websiteAbout,omitempty" validate:"omitempty,max=5000"`
	WebsiteServices   []string `json:"websiteServices,omitempty" validate:"omitempty,max=20,dive,max=200"`
	WebsiteCTA        *string  `json:"websiteCta,omitempty" validate:"omitempty,max=500"`

	InstagramBio *string `json:"instagramBio,omitempty" validate:"omitempty,max=1000"`
	TiktokBio    *string `json:"tiktokBio,omitempty" validate:"omitempty,max=1000"`
	TwitterBio   *string `json:"twitterBio,omitempty" validate:"omitempty,max=1000"`

	LogoImageURL   *string `json:"logoImageUrl,omitempty" validate:"omitempty,url,max=2000"`
	LogoPromptUsed *string `json:"logoPromptUsed,omitempty" validate:"omitempty,max=5000"`
}

// ToPatch converts the request to the domain merge patch
func (r *PatchBrandKitRequest) ToPatch() *brandkit.GeneratedPatch {
	patch := &brandkit.GeneratedPatch{
		Tagline:           r.Tagline,
		BrandSummary:      r.BrandSummary,
		BrandVoice:        r.BrandVoice,
		WebsiteHero:       r.WebsiteHero,
		WebsiteSubheading: r.WebsiteSubheading,
		WebsiteAbout:      r.WebsiteAbout,
		WebsiteServices:   r.WebsiteServices,
		WebsiteCTA:        r.WebsiteCTA,
		InstagramBio:      r.InstagramBio,
		TiktokBio:         r.TiktokBio,
		TwitterBio:        r.TwitterBio,
		LogoImageURL:      r.LogoImageURL,
		LogoPromptUsed:    r.LogoPromptUsed,
	}
	if r.Colors != nil {
		patch.Colors = make([]brandkit.Color, 0, len(r.Colors))
		for _, c := range r.Colors {
			patch.Colors = append(patch.Colors, brandkit.Color{
				Name: c.Name,
				Hex:  c.Hex,
				Role: brandkit.ColorRole(c.Role),
			})
		}
	}
	if r.Fonts != nil {
		patch.Fonts = make([]brandkit.Font, 0, len(r.Fonts))
		for _, f := range r.Fonts {
			patch.Fonts = append(patch.Fonts, brandkit.Font{
				Name:   f.Name,
				Role:   brandkit.FontRole(f.Role),
				Source: f.Source,
			})
		}
	}
	return patch
}

// GenerateFieldRequest asks the generator to produce one narrative field
type GenerateFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=tagline brandSummary brandVoice"`
}

// GenerateFieldResponse carries the generated text
type GenerateFieldResponse struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// CreateBrandKitResponse carries the new kit id
type CreateBrandKitResponse struct {
	ID int64 `json:"id"`
}
