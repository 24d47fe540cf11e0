package user

import "time"

// User represents one authenticated identity. Rows are created by the first
// identity sync for a never-seen subject id and updated on every later sync.
type User struct {
	ID            int64     `json:"id"`
	IdentityKey   string    `json:"identity_key"`
	Email         string    `json:"email"`
	Name          *string   `json:"name,omitempty"`
	Plan          string    `json:"plan"`
	BrandKitCount int       `json:"brand_kit_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Plan tiers
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// ValidPlan reports whether p is a known plan tier.
func ValidPlan(p string) bool {
	return p == PlanFree || p == PlanPro
}

// FreePlanKitLimit is the number of brand kits a free-plan user may own.
const FreePlanKitLimit = 1
