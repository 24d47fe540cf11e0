package dto

// UpdatePlanRequest moves the caller to a plan tier
type UpdatePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free pro"`
}
