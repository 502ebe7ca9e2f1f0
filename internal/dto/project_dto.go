package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// CreateProjectRequest is the create variant of the Project schema. The
// owner is the authenticated user; id and timestamps are server-assigned.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Color       string `json:"color" binding:"omitempty,hexcolor6"`
}

// UpdateProjectRequest is the update variant: all fields optional and the
// owner_id stripped so clients cannot reassign ownership.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Color       *string `json:"color" binding:"omitempty,hexcolor6"`
	IsArchived  *bool   `json:"is_archived"`
}

// IsEmpty reports whether the patch touches nothing.
func (r *UpdateProjectRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Color == nil && r.IsArchived == nil
}

// ProjectQuery is the query variant for project listings.
type ProjectQuery struct {
	ListQuery
	Search          string `form:"search" binding:"max=255"`
	IncludeArchived bool   `form:"include_archived,default=false"`
}

// AddMemberRequest adds a profile to a project with a role.
type AddMemberRequest struct {
	UserID uuid.UUID          `json:"user_id" binding:"required"`
	Role   domain.ProjectRole `json:"role" binding:"required,oneof=owner admin member viewer"`
}

// UpdateMemberRoleRequest changes a member's role.
type UpdateMemberRoleRequest struct {
	Role domain.ProjectRole `json:"role" binding:"required,oneof=owner admin member viewer"`
}

// ProjectResponse is the base read shape of a project.
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Color       string    `json:"color"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectWithDetails extends ProjectResponse with joined read-only fields.
type ProjectWithDetails struct {
	ProjectResponse
	OwnerName   string `json:"owner_name,omitempty"`
	MemberCount int64  `json:"member_count"`
	TaskCount   int64  `json:"task_count"`
}

// MemberResponse is the read shape of a project membership.
type MemberResponse struct {
	ID        uuid.UUID          `json:"id"`
	ProjectID uuid.UUID          `json:"project_id"`
	UserID    uuid.UUID          `json:"user_id"`
	UserName  string             `json:"user_name,omitempty"`
	UserEmail string             `json:"user_email,omitempty"`
	Role      domain.ProjectRole `json:"role"`
	JoinedAt  time.Time          `json:"joined_at"`
}

// ProjectStats summarizes a project's tasks for the reports view.
type ProjectStats struct {
	ProjectID     uuid.UUID        `json:"project_id"`
	TotalTasks    int64            `json:"total_tasks"`
	TasksByStatus map[string]int64 `json:"tasks_by_status"`
	OverdueTasks  int64            `json:"overdue_tasks"`
	MemberCount   int64            `json:"member_count"`
}

// NewProjectResponse maps a domain project to its base read shape.
func NewProjectResponse(p *domain.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Color:       p.Color,
		IsArchived:  p.IsArchived,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewMemberResponse maps a domain membership to its read shape, including
// the joined profile fields when preloaded.
func NewMemberResponse(m *domain.ProjectMember) *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		UserName:  m.User.FullName,
		UserEmail: m.User.Email,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}
