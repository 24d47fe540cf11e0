package dto

import "github.com/brandkitai/brandkit/internal/domain/user"

// UserResponse is the wire shape of the caller's profile
type UserResponse struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	Plan          string `json:"plan"`
	BrandKitCount int    `json:"brandKitCount"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

// UserFromModel converts a domain user to its response shape
func UserFromModel(u *user.User) *UserResponse {
	resp := &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Plan:          u.Plan,
		BrandKitCount: u.BrandKitCount,
		CreatedAt:     u.CreatedAt.Unix(),
		UpdatedAt:     u.UpdatedAt.Unix(),
	}
	if u.Name != nil {
		resp.Name = *u.Name
	}
	return resp
}
