package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/repository"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, taskID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, taskID uuid.UUID) ([]*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, logger *zap.Logger) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		logger:      logger,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, taskID, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, notFoundOr(err, "Task")
	}

	comment := &domain.Comment{
		TaskID:  taskID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperr.FromDBError(err)
	}
	return dto.NewCommentResponse(comment), nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, taskID uuid.UUID) ([]*dto.CommentResponse, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, notFoundOr(err, "Task")
	}

	comments, err := s.commentRepo.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	responses := make([]*dto.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = dto.NewCommentResponse(c)
	}
	return responses, nil
}

// DeleteComment removes a comment. Only the author may delete their own
// comment.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return notFoundOr(err, "Comment")
	}

	if comment.UserID != userID {
		return apperr.NewForbidden("Only the author can delete a comment")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return apperr.FromDBError(err)
	}
	return nil
}
