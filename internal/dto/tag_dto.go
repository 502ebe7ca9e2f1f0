package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateTagRequest is the create variant of the Tag schema.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"required,hexcolor6"`
}

// UpdateTagRequest is the update variant: all fields optional.
type UpdateTagRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color" binding:"omitempty,hexcolor6"`
}

// IsEmpty reports whether the patch touches nothing.
func (r *UpdateTagRequest) IsEmpty() bool {
	return r.Name == nil && r.Color == nil
}

// SetTaskTagsRequest replaces a task's tag set. An empty list clears it.
type SetTaskTagsRequest struct {
	TagIDs []uuid.UUID `json:"tag_ids" binding:"omitempty,dive,uuid"`
}

// TagResponse is the read shape of a tag.
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTagResponse maps a domain tag to its read shape.
func NewTagResponse(t *domain.Tag) *TagResponse {
	return &TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
