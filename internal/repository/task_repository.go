package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
)

// TaskCounts holds the derived counters of the task detail view.
type TaskCounts struct {
	Subtasks    int64
	Comments    int64
	Attachments int64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, query *dto.TaskQuery) ([]*domain.Task, int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Counts(ctx context.Context, taskID uuid.UUID) (*TaskCounts, error)
	ReplaceTags(ctx context.Context, task *domain.Task, tags []*domain.Tag) error
	CountByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error)
	CountOverdue(ctx context.Context, projectID uuid.UUID) (int64, error)
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignee").
		Preload("Tags").
		First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List applies the query variant's filters and returns a page plus the
// total match count.
func (r *taskRepositoryImpl) List(ctx context.Context, query *dto.TaskQuery) ([]*domain.Task, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Task{})

	if query.ProjectID != nil {
		base = base.Where("project_id = ?", *query.ProjectID)
	}
	if query.AssigneeID != nil {
		base = base.Where("assignee_id = ?", *query.AssigneeID)
	}
	if query.CreatorID != nil {
		base = base.Where("creator_id = ?", *query.CreatorID)
	}
	if query.Status != "" {
		base = base.Where("status = ?", query.Status)
	}
	if query.Priority != "" {
		base = base.Where("priority = ?", query.Priority)
	}
	if query.Search != "" {
		base = base.Where("title ILIKE ?", "%"+query.Search+"%")
	}
	if query.DueBefore != nil {
		base = base.Where("due_date <= ?", *query.DueBefore)
	}
	if query.DueAfter != nil {
		base = base.Where("due_date >= ?", *query.DueAfter)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*domain.Task
	if err := base.
		Preload("Tags").
		Order(query.OrderClause()).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *taskRepositoryImpl) Counts(ctx context.Context, taskID uuid.UUID) (*TaskCounts, error) {
	var counts TaskCounts

	if err := r.db.WithContext(ctx).
		Model(&domain.Subtask{}).
		Where("task_id = ?", taskID).
		Count(&counts.Subtasks).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("task_id = ?", taskID).
		Count(&counts.Comments).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Attachment{}).
		Where("task_id = ? AND status = ?", taskID, domain.AttachmentStatusConfirmed).
		Count(&counts.Attachments).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

// ReplaceTags swaps the task's tag set atomically.
func (r *taskRepositoryImpl) ReplaceTags(ctx context.Context, task *domain.Task, tags []*domain.Tag) error {
	return r.db.WithContext(ctx).Model(task).Association("Tags").Replace(tags)
}

func (r *taskRepositoryImpl) CountByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row

	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("status, COUNT(*) AS n").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.N
	}
	return counts, nil
}

func (r *taskRepositoryImpl) CountOverdue(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("project_id = ? AND due_date < ? AND status <> ?", projectID, time.Now().UTC(), domain.TaskStatusDone).
		Count(&n).Error
	return n, err
}
