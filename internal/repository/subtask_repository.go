package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// SubtaskRepository defines the interface for subtask data access
type SubtaskRepository interface {
	Create(ctx context.Context, subtask *domain.Subtask) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Subtask, error)
	FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Subtask, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// subtaskRepositoryImpl is the GORM implementation of SubtaskRepository
type subtaskRepositoryImpl struct {
	db *gorm.DB
}

// NewSubtaskRepository creates a new instance of SubtaskRepository
func NewSubtaskRepository(db *gorm.DB) SubtaskRepository {
	return &subtaskRepositoryImpl{db: db}
}

func (r *subtaskRepositoryImpl) Create(ctx context.Context, subtask *domain.Subtask) error {
	return r.db.WithContext(ctx).Create(subtask).Error
}

func (r *subtaskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subtask, error) {
	var subtask domain.Subtask
	if err := r.db.WithContext(ctx).First(&subtask, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (r *subtaskRepositoryImpl) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Subtask, error) {
	var subtasks []*domain.Subtask
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&subtasks).Error; err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (r *subtaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Subtask{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *subtaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Subtask{}, "id = ?", id).Error
}
