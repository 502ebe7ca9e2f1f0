package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, userID uuid.UUID, query *dto.ProjectQuery) ([]*domain.Project, int64, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	CountMembers(ctx context.Context, projectID uuid.UUID) (int64, error)
	CountTasks(ctx context.Context, projectID uuid.UUID) (int64, error)

	AddMember(ctx context.Context, member *domain.ProjectMember) error
	FindMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	FindMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	UpdateMemberRole(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns the page of projects visible to userID (owned or joined),
// with the total count for pagination.
func (r *projectRepositoryImpl) List(ctx context.Context, userID uuid.UUID, query *dto.ProjectQuery) ([]*domain.Project, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("owner_id = ? OR id IN (?)", userID,
			r.db.Model(&domain.ProjectMember{}).Select("project_id").Where("user_id = ?", userID))

	if !query.IncludeArchived {
		base = base.Where("is_archived = ?", false)
	}
	if query.Search != "" {
		base = base.Where("name ILIKE ?", "%"+query.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*domain.Project
	if err := base.
		Order(query.OrderClause()).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (r *projectRepositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *projectRepositoryImpl) CountMembers(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&n).Error
	return n, err
}

func (r *projectRepositoryImpl) CountTasks(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("project_id = ?", projectID).
		Count(&n).Error
	return n, err
}

func (r *projectRepositoryImpl) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *projectRepositoryImpl) FindMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	var members []*domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *projectRepositoryImpl) FindMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	var member domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *projectRepositoryImpl) UpdateMemberRole(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error {
	return r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role).Error
}

func (r *projectRepositoryImpl) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&domain.ProjectMember{}).Error
}
