package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// UpdateProfileRequest is the update variant of the Profile schema.
// Email is identity and cannot be changed through this layer.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,min=1,max=255"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=2048"`
}

// IsEmpty reports whether the patch touches nothing.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.FullName == nil && r.AvatarURL == nil
}

// ProfileResponse is the read shape of a profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfileResponse maps a domain profile to its read shape.
func NewProfileResponse(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
