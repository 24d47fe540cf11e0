package ai

import (
	"fmt"
	"strings"

	"github.com/brandkitai/brandkit/internal/domain/brandkit"
)

// BuildPrompt renders the per-field prompt from a kit's stored attributes.
// Industry defaults to "general" when absent.
func BuildPrompt(kit *brandkit.BrandKit, field brandkit.GeneratableField) (string, error) {
	industry := "general"
	if kit.Industry != nil && *kit.Industry != "" {
		industry = *kit.Industry
	}
	vibe := strings.Join(kit.Vibe, ", ")

	switch field {
	case brandkit.FieldTagline:
		return fmt.Sprintf(
			"Write a short, catchy tagline for %s, a %s business. The brand vibe is: %s. Return only the tagline text.",
			kit.BusinessName, industry, vibe,
		), nil
	case brandkit.FieldBrandSummary:
		return fmt.Sprintf(
			"Write a two to three sentence brand summary for %s, a %s business. The brand vibe is: %s.",
			kit.BusinessName, industry, vibe,
		), nil
	case brandkit.FieldBrandVoice:
		return fmt.Sprintf(
			"Describe the brand voice of %s, a %s business, in one short paragraph a copywriter could follow. The brand vibe is: %s.",
			kit.BusinessName, industry, vibe,
		), nil
	default:
		return "", fmt.Errorf("no prompt template for field %q", field)
	}
}
