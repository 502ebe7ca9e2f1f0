package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"taskflow-api/internal/domain"
)

// CreateTaskRequest is the create variant of the Task schema. Server-assigned
// fields (id, timestamps, completed_at) and the creator are excluded; the
// creator comes from the authenticated context.
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required,min=1,max=255"`
	Description string              `json:"description" binding:"max=10000"`
	ProjectID   uuid.UUID           `json:"project_id" binding:"required"`
	AssigneeID  *uuid.UUID          `json:"assignee_id"`
	Status      domain.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority    domain.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time          `json:"due_date"`
	TagIDs      []uuid.UUID         `json:"tag_ids" binding:"omitempty,dive,uuid"`
	// AttachmentIDs confirms previously uploaded TEMP attachments against
	// the new task.
	AttachmentIDs []uuid.UUID            `json:"attachment_ids" binding:"omitempty,dive,uuid"`
	CustomFields  map[string]interface{} `json:"custom_fields"`
}

// UpdateTaskRequest is the update variant: every field optional, identity and
// ownership fields (project_id, creator_id) stripped. A body with zero keys
// is a valid no-op. An explicit null assignee_id is not distinguishable from
// absence in JSON, so unassignment uses the zero UUID sentinel.
type UpdateTaskRequest struct {
	Title        *string                `json:"title" binding:"omitempty,min=1,max=255"`
	Description  *string                `json:"description" binding:"omitempty,max=10000"`
	AssigneeID   *uuid.UUID             `json:"assignee_id"`
	Status       *domain.TaskStatus     `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority     *domain.TaskPriority   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate      *time.Time             `json:"due_date"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// IsEmpty reports whether the patch touches nothing.
func (r *UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.AssigneeID == nil &&
		r.Status == nil && r.Priority == nil && r.DueDate == nil && r.CustomFields == nil
}

// TaskQuery is the query variant: filter, sort and pagination parameters
// coerced from the query string.
type TaskQuery struct {
	ListQuery
	ProjectID  *uuid.UUID `form:"project_id"`
	AssigneeID *uuid.UUID `form:"assignee_id"`
	CreatorID  *uuid.UUID `form:"creator_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority   string     `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Search     string     `form:"search" binding:"max=255"`
	DueBefore  *time.Time `form:"due_before" time_format:"2006-01-02T15:04:05Z07:00"`
	DueAfter   *time.Time `form:"due_after" time_format:"2006-01-02T15:04:05Z07:00"`
}

// TaskResponse is the base read shape of a task.
type TaskResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	ProjectID    uuid.UUID           `json:"project_id"`
	CreatorID    uuid.UUID           `json:"creator_id"`
	AssigneeID   *uuid.UUID          `json:"assignee_id"`
	Status       domain.TaskStatus   `json:"status"`
	Priority     domain.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	CustomFields datatypes.JSON      `json:"custom_fields,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TaskWithDetails extends TaskResponse with joined and derived read-only
// fields for the detail view.
type TaskWithDetails struct {
	TaskResponse
	CreatorName     string        `json:"creator_name,omitempty"`
	AssigneeName    string        `json:"assignee_name,omitempty"`
	Tags            []TagResponse `json:"tags"`
	SubtaskCount    int64         `json:"subtask_count"`
	CommentCount    int64         `json:"comment_count"`
	AttachmentCount int64         `json:"attachment_count"`
}

// SubtaskResponse is the read shape of a subtask.
type SubtaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	TaskID      uuid.UUID  `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateSubtaskRequest is the create variant of the Subtask schema; the
// parent task comes from the route, not the body.
type CreateSubtaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=10000"`
}

// UpdateSubtaskRequest is the update variant: all optional, task_id stripped.
type UpdateSubtaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
	IsCompleted *bool   `json:"is_completed"`
}

// NewTaskResponse maps a domain task to its base read shape.
func NewTaskResponse(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		ProjectID:    t.ProjectID,
		CreatorID:    t.CreatorID,
		AssigneeID:   t.AssigneeID,
		Status:       t.Status,
		Priority:     t.Priority,
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		CustomFields: t.CustomFields,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// NewSubtaskResponse maps a domain subtask to its read shape.
func NewSubtaskResponse(s *domain.Subtask) *SubtaskResponse {
	return &SubtaskResponse{
		ID:          s.ID,
		TaskID:      s.TaskID,
		Title:       s.Title,
		Description: s.Description,
		IsCompleted: s.IsCompleted,
		CompletedAt: s.CompletedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
