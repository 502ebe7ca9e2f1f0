package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
)

// statsCacheTTL bounds the staleness of the project stats view.
const statsCacheTTL = 60 * time.Second

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectWithDetails, error)
	ListProjects(ctx context.Context, userID uuid.UUID, query *dto.ProjectQuery) ([]*dto.ProjectResponse, int64, error)
	UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	ArchiveProject(ctx context.Context, projectID, userID uuid.UUID) error
	GetProjectStats(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectStats, error)

	AddMember(ctx context.Context, projectID, userID uuid.UUID, req *dto.AddMemberRequest) (*dto.MemberResponse, error)
	ListMembers(ctx context.Context, projectID, userID uuid.UUID) ([]*dto.MemberResponse, error)
	UpdateMemberRole(ctx context.Context, projectID, userID, memberID uuid.UUID, req *dto.UpdateMemberRoleRequest) error
	RemoveMember(ctx context.Context, projectID, userID, memberID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	profileRepo repository.ProfileRepository
	taskRepo    repository.TaskRepository
	cache       *redis.Client
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService. cache may be
// nil, in which case stats are computed on every request.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	profileRepo repository.ProfileRepository,
	taskRepo repository.TaskRepository,
	cache *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		taskRepo:    taskRepo,
		cache:       cache,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a project owned by the caller and records the owner
// membership row.
func (s *projectServiceImpl) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	color := req.Color
	if color == "" {
		color = domain.DefaultProjectColor
	}

	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
		Color:       color,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, apperr.FromDBError(err)
	}

	member := &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		Role:      domain.ProjectRoleOwner,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		s.logger.Error("failed to record owner membership",
			zap.String("project_id", project.ID.String()),
			zap.Error(err))
		return nil, apperr.FromDBError(err)
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", userID.String()))

	return dto.NewProjectResponse(project), nil
}

func (s *projectServiceImpl) GetProject(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectWithDetails, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if _, err := s.requireMember(ctx, project, userID); err != nil {
		return nil, err
	}

	memberCount, err := s.projectRepo.CountMembers(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}
	taskCount, err := s.projectRepo.CountTasks(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	details := &dto.ProjectWithDetails{
		ProjectResponse: *dto.NewProjectResponse(project),
		OwnerName:       project.Owner.FullName,
		MemberCount:     memberCount,
		TaskCount:       taskCount,
	}
	return details, nil
}

func (s *projectServiceImpl) ListProjects(ctx context.Context, userID uuid.UUID, query *dto.ProjectQuery) ([]*dto.ProjectResponse, int64, error) {
	query.Normalize()

	projects, total, err := s.projectRepo.List(ctx, userID, query)
	if err != nil {
		return nil, 0, apperr.FromDBError(err)
	}

	responses := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = dto.NewProjectResponse(p)
	}
	return responses, total, nil
}

// UpdateProject applies a partial update. Owners and admins may update; an
// empty patch is a valid no-op.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID, userID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if err := s.requireRole(ctx, project, userID, domain.ProjectRoleOwner, domain.ProjectRoleAdmin); err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return dto.NewProjectResponse(project), nil
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.IsArchived != nil {
		fields["is_archived"] = *req.IsArchived
	}

	if err := s.projectRepo.Update(ctx, projectID, fields); err != nil {
		return nil, apperr.FromDBError(err)
	}

	updated, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}
	return dto.NewProjectResponse(updated), nil
}

// ArchiveProject marks the project archived rather than deleting it. Only
// the owner may archive.
func (s *projectServiceImpl) ArchiveProject(ctx context.Context, projectID, userID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return notFoundOr(err, "Project")
	}

	if project.OwnerID != userID {
		return apperr.NewForbidden("Only the project owner can archive a project")
	}

	if err := s.projectRepo.Update(ctx, projectID, map[string]interface{}{"is_archived": true}); err != nil {
		return apperr.FromDBError(err)
	}

	s.logger.Info("project archived", zap.String("project_id", projectID.String()))
	return nil
}

// GetProjectStats summarizes task counts for a project. Results are cached
// briefly since the reports view polls.
func (s *projectServiceImpl) GetProjectStats(ctx context.Context, projectID, userID uuid.UUID) (*dto.ProjectStats, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if _, err := s.requireMember(ctx, project, userID); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("project:stats:%s", projectID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var stats dto.ProjectStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	byStatus, err := s.taskRepo.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}
	overdue, err := s.taskRepo.CountOverdue(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}
	memberCount, err := s.projectRepo.CountMembers(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	stats := &dto.ProjectStats{
		ProjectID:     projectID,
		TotalTasks:    total,
		TasksByStatus: byStatus,
		OverdueTasks:  overdue,
		MemberCount:   memberCount,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache project stats",
					zap.String("project_id", projectID.String()),
					zap.Error(err))
			}
		}
	}

	return stats, nil
}

// AddMember adds a profile to the project. Owners and admins may add
// members; a project has exactly one owner, assigned at creation.
func (s *projectServiceImpl) AddMember(ctx context.Context, projectID, userID uuid.UUID, req *dto.AddMemberRequest) (*dto.MemberResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if err := s.requireRole(ctx, project, userID, domain.ProjectRoleOwner, domain.ProjectRoleAdmin); err != nil {
		return nil, err
	}

	if req.Role == domain.ProjectRoleOwner {
		return nil, apperr.NewValidation("A project has exactly one owner", nil)
	}

	if _, err := s.profileRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, notFoundOr(err, "Profile")
	}

	member := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      req.Role,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.projectRepo.AddMember(ctx, member); err != nil {
		return nil, apperr.FromDBError(err)
	}

	added, err := s.projectRepo.FindMember(ctx, projectID, req.UserID)
	if err != nil {
		return nil, notFoundOr(err, "Project member")
	}
	return dto.NewMemberResponse(added), nil
}

func (s *projectServiceImpl) ListMembers(ctx context.Context, projectID, userID uuid.UUID) ([]*dto.MemberResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project")
	}

	if _, err := s.requireMember(ctx, project, userID); err != nil {
		return nil, err
	}

	members, err := s.projectRepo.FindMembers(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	responses := make([]*dto.MemberResponse, len(members))
	for i, m := range members {
		responses[i] = dto.NewMemberResponse(m)
	}
	return responses, nil
}

// UpdateMemberRole changes a member's role. The owner role cannot be
// granted or revoked through this operation.
func (s *projectServiceImpl) UpdateMemberRole(ctx context.Context, projectID, userID, memberID uuid.UUID, req *dto.UpdateMemberRoleRequest) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return notFoundOr(err, "Project")
	}

	if err := s.requireRole(ctx, project, userID, domain.ProjectRoleOwner, domain.ProjectRoleAdmin); err != nil {
		return err
	}

	if memberID == project.OwnerID {
		return apperr.NewForbidden("The owner's role cannot be changed")
	}
	if req.Role == domain.ProjectRoleOwner {
		return apperr.NewValidation("A project has exactly one owner", nil)
	}

	if _, err := s.projectRepo.FindMember(ctx, projectID, memberID); err != nil {
		return notFoundOr(err, "Project member")
	}

	if err := s.projectRepo.UpdateMemberRole(ctx, projectID, memberID, req.Role); err != nil {
		return apperr.FromDBError(err)
	}
	return nil
}

// RemoveMember removes a member. Owners and admins may remove anyone but
// the owner; any member may remove themselves.
func (s *projectServiceImpl) RemoveMember(ctx context.Context, projectID, userID, memberID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return notFoundOr(err, "Project")
	}

	if memberID == project.OwnerID {
		return apperr.NewForbidden("The project owner cannot be removed")
	}

	if memberID != userID {
		if err := s.requireRole(ctx, project, userID, domain.ProjectRoleOwner, domain.ProjectRoleAdmin); err != nil {
			return err
		}
	}

	if _, err := s.projectRepo.FindMember(ctx, projectID, memberID); err != nil {
		return notFoundOr(err, "Project member")
	}

	if err := s.projectRepo.RemoveMember(ctx, projectID, memberID); err != nil {
		return apperr.FromDBError(err)
	}
	return nil
}

// requireMember resolves the caller's membership. The owner always counts
// as a member.
func (s *projectServiceImpl) requireMember(ctx context.Context, project *domain.Project, userID uuid.UUID) (domain.ProjectRole, error) {
	if project.OwnerID == userID {
		return domain.ProjectRoleOwner, nil
	}

	member, err := s.projectRepo.FindMember(ctx, project.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NewForbidden("You are not a member of this project")
		}
		return "", apperr.FromDBError(err)
	}
	return member.Role, nil
}

func (s *projectServiceImpl) requireRole(ctx context.Context, project *domain.Project, userID uuid.UUID, roles ...domain.ProjectRole) error {
	role, err := s.requireMember(ctx, project, userID)
	if err != nil {
		return err
	}
	for _, allowed := range roles {
		if role == allowed {
			return nil
		}
	}
	return apperr.NewForbidden("You do not have permission to perform this action")
}
