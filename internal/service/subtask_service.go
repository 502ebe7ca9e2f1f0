package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/repository"
)

// SubtaskService defines the interface for subtask business logic
type SubtaskService interface {
	CreateSubtask(ctx context.Context, taskID uuid.UUID, req *dto.CreateSubtaskRequest) (*dto.SubtaskResponse, error)
	ListSubtasks(ctx context.Context, taskID uuid.UUID) ([]*dto.SubtaskResponse, error)
	UpdateSubtask(ctx context.Context, subtaskID uuid.UUID, req *dto.UpdateSubtaskRequest) (*dto.SubtaskResponse, error)
	DeleteSubtask(ctx context.Context, subtaskID uuid.UUID) error
}

// subtaskServiceImpl is the implementation of SubtaskService
type subtaskServiceImpl struct {
	subtaskRepo repository.SubtaskRepository
	taskRepo    repository.TaskRepository
	logger      *zap.Logger
}

// NewSubtaskService creates a new instance of SubtaskService
func NewSubtaskService(subtaskRepo repository.SubtaskRepository, taskRepo repository.TaskRepository, logger *zap.Logger) SubtaskService {
	return &subtaskServiceImpl{
		subtaskRepo: subtaskRepo,
		taskRepo:    taskRepo,
		logger:      logger,
	}
}

func (s *subtaskServiceImpl) CreateSubtask(ctx context.Context, taskID uuid.UUID, req *dto.CreateSubtaskRequest) (*dto.SubtaskResponse, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, notFoundOr(err, "Task")
	}

	subtask := &domain.Subtask{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.subtaskRepo.Create(ctx, subtask); err != nil {
		return nil, apperr.FromDBError(err)
	}
	return dto.NewSubtaskResponse(subtask), nil
}

func (s *subtaskServiceImpl) ListSubtasks(ctx context.Context, taskID uuid.UUID) ([]*dto.SubtaskResponse, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, notFoundOr(err, "Task")
	}

	subtasks, err := s.subtaskRepo.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	responses := make([]*dto.SubtaskResponse, len(subtasks))
	for i, st := range subtasks {
		responses[i] = dto.NewSubtaskResponse(st)
	}
	return responses, nil
}

// UpdateSubtask applies a partial update. Completing a subtask stamps
// completed_at; reopening it clears the stamp.
func (s *subtaskServiceImpl) UpdateSubtask(ctx context.Context, subtaskID uuid.UUID, req *dto.UpdateSubtaskRequest) (*dto.SubtaskResponse, error) {
	subtask, err := s.subtaskRepo.FindByID(ctx, subtaskID)
	if err != nil {
		return nil, notFoundOr(err, "Subtask")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsCompleted != nil && *req.IsCompleted != subtask.IsCompleted {
		fields["is_completed"] = *req.IsCompleted
		if *req.IsCompleted {
			fields["completed_at"] = time.Now().UTC()
		} else {
			fields["completed_at"] = nil
		}
	}

	if len(fields) == 0 {
		return dto.NewSubtaskResponse(subtask), nil
	}

	if err := s.subtaskRepo.Update(ctx, subtaskID, fields); err != nil {
		return nil, apperr.FromDBError(err)
	}

	updated, err := s.subtaskRepo.FindByID(ctx, subtaskID)
	if err != nil {
		return nil, notFoundOr(err, "Subtask")
	}
	return dto.NewSubtaskResponse(updated), nil
}

func (s *subtaskServiceImpl) DeleteSubtask(ctx context.Context, subtaskID uuid.UUID) error {
	if _, err := s.subtaskRepo.FindByID(ctx, subtaskID); err != nil {
		return notFoundOr(err, "Subtask")
	}
	if err := s.subtaskRepo.Delete(ctx, subtaskID); err != nil {
		return apperr.FromDBError(err)
	}
	return nil
}
