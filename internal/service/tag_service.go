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

// TagService defines the interface for tag business logic
type TagService interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	ListTags(ctx context.Context) ([]*dto.TagResponse, error)
	UpdateTag(ctx context.Context, tagID uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
}

// tagServiceImpl is the implementation of TagService
type tagServiceImpl struct {
	tagRepo repository.TagRepository
	logger  *zap.Logger
}

// NewTagService creates a new instance of TagService
func NewTagService(tagRepo repository.TagRepository, logger *zap.Logger) TagService {
	return &tagServiceImpl{tagRepo: tagRepo, logger: logger}
}

// CreateTag creates a tag. Names are unique; a duplicate surfaces as a
// DUPLICATE_ENTRY conflict from the database classifier.
func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	tag := &domain.Tag{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, apperr.FromDBError(err)
	}
	return dto.NewTagResponse(tag), nil
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]*dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	responses := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = dto.NewTagResponse(tag)
	}
	return responses, nil
}

func (s *tagServiceImpl) UpdateTag(ctx context.Context, tagID uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.FindByID(ctx, tagID)
	if err != nil {
		return nil, notFoundOr(err, "Tag")
	}

	if req.IsEmpty() {
		return dto.NewTagResponse(tag), nil
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}

	if err := s.tagRepo.Update(ctx, tagID, fields); err != nil {
		return nil, apperr.FromDBError(err)
	}

	updated, err := s.tagRepo.FindByID(ctx, tagID)
	if err != nil {
		return nil, notFoundOr(err, "Tag")
	}
	return dto.NewTagResponse(updated), nil
}

func (s *tagServiceImpl) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	if _, err := s.tagRepo.FindByID(ctx, tagID); err != nil {
		return notFoundOr(err, "Tag")
	}
	if err := s.tagRepo.Delete(ctx, tagID); err != nil {
		return apperr.FromDBError(err)
	}
	return nil
}
