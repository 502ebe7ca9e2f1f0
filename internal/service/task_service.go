package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*dto.TaskWithDetails, error)
	ListTasks(ctx context.Context, query *dto.TaskQuery) ([]*dto.TaskResponse, int64, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	SetTags(ctx context.Context, taskID uuid.UUID, req *dto.SetTaskTagsRequest) ([]dto.TagResponse, error)
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	tagRepo        repository.TagRepository
	attachmentRepo repository.AttachmentRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	tagRepo repository.TagRepository,
	attachmentRepo repository.AttachmentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		tagRepo:        tagRepo,
		attachmentRepo: attachmentRepo,
		metrics:        m,
		logger:         logger,
	}
}

// CreateTask creates a task for the authenticated user. Referenced tags must
// exist, and any TEMP attachments listed are confirmed against the new task.
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, notFoundOr(err, "Project")
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		CreatorID:   userID,
		AssigneeID:  req.AssigneeID,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	if status == domain.TaskStatusDone {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}

	if req.CustomFields != nil {
		payload, err := json.Marshal(req.CustomFields)
		if err != nil {
			return nil, apperr.NewValidation("Invalid custom fields", nil)
		}
		task.CustomFields = payload
	}

	var tags []*domain.Tag
	if len(req.TagIDs) > 0 {
		ids := removeDuplicateUUIDs(req.TagIDs)
		found, err := s.tagRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, apperr.FromDBError(err)
		}
		if len(found) != len(ids) {
			return nil, apperr.NewNotFound("Tag")
		}
		tags = found
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, apperr.FromDBError(err)
	}

	if len(tags) > 0 {
		if err := s.taskRepo.ReplaceTags(ctx, task, tags); err != nil {
			return nil, apperr.FromDBError(err)
		}
	}

	if len(req.AttachmentIDs) > 0 {
		for _, attachmentID := range removeDuplicateUUIDs(req.AttachmentIDs) {
			if err := s.attachmentRepo.Confirm(ctx, attachmentID, task.ID); err != nil {
				s.logger.Error("failed to confirm attachment, rolling back task creation",
					zap.String("task_id", task.ID.String()),
					zap.String("attachment_id", attachmentID.String()),
					zap.Error(err))

				if deleteErr := s.taskRepo.Delete(ctx, task.ID); deleteErr != nil {
					s.logger.Error("failed to roll back task after attachment confirmation failure",
						zap.String("task_id", task.ID.String()),
						zap.Error(deleteErr))
				}
				return nil, apperr.NewConflict("Attachment not found or already used")
			}
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("project_id", task.ProjectID.String()))

	return dto.NewTaskResponse(task), nil
}

// GetTask returns the detail view with joined names, tags and counts.
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*dto.TaskWithDetails, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}

	counts, err := s.taskRepo.Counts(ctx, taskID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	tags := make([]dto.TagResponse, len(task.Tags))
	for i := range task.Tags {
		tags[i] = *dto.NewTagResponse(&task.Tags[i])
	}

	details := &dto.TaskWithDetails{
		TaskResponse:    *dto.NewTaskResponse(task),
		CreatorName:     task.Creator.FullName,
		Tags:            tags,
		SubtaskCount:    counts.Subtasks,
		CommentCount:    counts.Comments,
		AttachmentCount: counts.Attachments,
	}
	if task.Assignee != nil {
		details.AssigneeName = task.Assignee.FullName
	}
	return details, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, query *dto.TaskQuery) ([]*dto.TaskResponse, int64, error) {
	query.Normalize()

	tasks, total, err := s.taskRepo.List(ctx, query)
	if err != nil {
		return nil, 0, apperr.FromDBError(err)
	}

	responses := make([]*dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = dto.NewTaskResponse(t)
	}
	return responses, total, nil
}

// UpdateTask applies a partial update. An empty patch is a valid no-op.
// Transitioning status to done stamps completed_at; leaving done clears it.
// The zero UUID as assignee_id unassigns the task.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}

	if req.IsEmpty() {
		return dto.NewTaskResponse(task), nil
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.AssigneeID != nil {
		if *req.AssigneeID == uuid.Nil {
			fields["assignee_id"] = nil
		} else {
			fields["assignee_id"] = *req.AssigneeID
		}
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.CustomFields != nil {
		payload, err := json.Marshal(req.CustomFields)
		if err != nil {
			return nil, apperr.NewValidation("Invalid custom fields", nil)
		}
		fields["custom_fields"] = payload
	}

	if req.Status != nil && *req.Status != task.Status {
		fields["status"] = *req.Status
		switch {
		case *req.Status == domain.TaskStatusDone:
			fields["completed_at"] = time.Now().UTC()
			if s.metrics != nil {
				s.metrics.IncrementTaskCompleted()
			}
		case task.Status == domain.TaskStatusDone:
			fields["completed_at"] = nil
		}
	}

	if err := s.taskRepo.Update(ctx, taskID, fields); err != nil {
		return nil, apperr.FromDBError(err)
	}

	updated, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}
	return dto.NewTaskResponse(updated), nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return notFoundOr(err, "Task")
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return apperr.FromDBError(err)
	}
	s.logger.Info("task deleted", zap.String("task_id", taskID.String()))
	return nil
}

// SetTags replaces the task's tag set. Every referenced tag must exist.
func (s *taskServiceImpl) SetTags(ctx context.Context, taskID uuid.UUID, req *dto.SetTaskTagsRequest) ([]dto.TagResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "Task")
	}

	ids := removeDuplicateUUIDs(req.TagIDs)
	var tags []*domain.Tag
	if len(ids) > 0 {
		tags, err = s.tagRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, apperr.FromDBError(err)
		}
		if len(tags) != len(ids) {
			return nil, apperr.NewNotFound("Tag")
		}
	}

	if err := s.taskRepo.ReplaceTags(ctx, task, tags); err != nil {
		return nil, apperr.FromDBError(err)
	}

	responses := make([]dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = *dto.NewTagResponse(tag)
	}
	return responses, nil
}
