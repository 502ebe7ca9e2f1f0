package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one of the closed set.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Valid reports whether the priority is one of the closed set.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// Task is the central work unit. A nil AssigneeID means unassigned;
// CompletedAt is set by the service layer when status transitions to done
// and is never accepted from clients.
type Task struct {
	BaseModel
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	ProjectID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"project_id"`
	CreatorID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_creator_id" json:"creator_id"`
	AssigneeID   *uuid.UUID     `gorm:"type:uuid;index:idx_tasks_assignee_id" json:"assignee_id"`
	Status       TaskStatus     `gorm:"type:varchar(50);not null;default:'todo';index:idx_tasks_status" json:"status"`
	Priority     TaskPriority   `gorm:"type:varchar(50);not null;default:'medium';index:idx_tasks_priority" json:"priority"`
	DueDate      *time.Time     `gorm:"type:timestamp;index:idx_tasks_due_date" json:"due_date"`
	CompletedAt  *time.Time     `gorm:"type:timestamp" json:"completed_at"`
	CustomFields datatypes.JSON `gorm:"type:jsonb" json:"custom_fields"`
	Project      Project        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Creator      Profile        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Assignee     *Profile       `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Subtasks     []Subtask      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"subtasks,omitempty"`
	Comments     []Comment      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Tags         []Tag          `gorm:"many2many:task_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	// Attachments are append-only and looked up by the repository separately.
	Attachments []Attachment `gorm:"-" json:"attachments,omitempty"`
}

// Subtask is a checklist item under a task.
type Subtask struct {
	BaseModel
	TaskID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_subtasks_task_id" json:"task_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `gorm:"type:timestamp" json:"completed_at"`
	Task        Task       `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TableName specifies the table name for Subtask
func (Subtask) TableName() string {
	return "subtasks"
}
