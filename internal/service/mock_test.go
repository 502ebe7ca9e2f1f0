package service

import (
	"context"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/repository"
)

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc        func(ctx context.Context, task *domain.Task) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFunc          func(ctx context.Context, query *dto.TaskQuery) ([]*domain.Task, int64, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountsFunc        func(ctx context.Context, taskID uuid.UUID) (*repository.TaskCounts, error)
	ReplaceTagsFunc   func(ctx context.Context, task *domain.Task, tags []*domain.Tag) error
	CountByStatusFunc func(ctx context.Context, projectID uuid.UUID) (map[string]int64, error)
	CountOverdueFunc  func(ctx context.Context, projectID uuid.UUID) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) List(ctx context.Context, query *dto.TaskQuery) ([]*domain.Task, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, query)
	}
	return nil, 0, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) Counts(ctx context.Context, taskID uuid.UUID) (*repository.TaskCounts, error) {
	if m.CountsFunc != nil {
		return m.CountsFunc(ctx, taskID)
	}
	return &repository.TaskCounts{}, nil
}

func (m *MockTaskRepository) ReplaceTags(ctx context.Context, task *domain.Task, tags []*domain.Tag) error {
	if m.ReplaceTagsFunc != nil {
		return m.ReplaceTagsFunc(ctx, task, tags)
	}
	return nil
}

func (m *MockTaskRepository) CountByStatus(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTaskRepository) CountOverdue(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.CountOverdueFunc != nil {
		return m.CountOverdueFunc(ctx, projectID)
	}
	return 0, nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListFunc             func(ctx context.Context, userID uuid.UUID, query *dto.ProjectQuery) ([]*domain.Project, int64, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	CountMembersFunc     func(ctx context.Context, projectID uuid.UUID) (int64, error)
	CountTasksFunc       func(ctx context.Context, projectID uuid.UUID) (int64, error)
	AddMemberFunc        func(ctx context.Context, member *domain.ProjectMember) error
	FindMembersFunc      func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	FindMemberFunc       func(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	UpdateMemberRoleFunc func(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error
	RemoveMemberFunc     func(ctx context.Context, projectID, userID uuid.UUID) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) List(ctx context.Context, userID uuid.UUID, query *dto.ProjectQuery) ([]*domain.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, query)
	}
	return nil, 0, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProjectRepository) CountMembers(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.CountMembersFunc != nil {
		return m.CountMembersFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *MockProjectRepository) CountTasks(ctx context.Context, projectID uuid.UUID) (int64, error) {
	if m.CountTasksFunc != nil {
		return m.CountTasksFunc(ctx, projectID)
	}
	return 0, nil
}

func (m *MockProjectRepository) AddMember(ctx context.Context, member *domain.ProjectMember) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, member)
	}
	return nil
}

func (m *MockProjectRepository) FindMembers(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.FindMembersFunc != nil {
		return m.FindMembersFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindMember(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	if m.FindMemberFunc != nil {
		return m.FindMemberFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) UpdateMemberRole(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error {
	if m.UpdateMemberRoleFunc != nil {
		return m.UpdateMemberRoleFunc(ctx, projectID, userID, role)
	}
	return nil
}

func (m *MockProjectRepository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, projectID, userID)
	}
	return nil
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	CreateFunc    func(ctx context.Context, tag *domain.Tag) error
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Tag, error)
	FindAllFunc   func(ctx context.Context) ([]*domain.Tag, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Tag, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTagRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSubtaskRepository is a mock implementation of SubtaskRepository
type MockSubtaskRepository struct {
	CreateFunc       func(ctx context.Context, subtask *domain.Subtask) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Subtask, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Subtask, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSubtaskRepository) Create(ctx context.Context, subtask *domain.Subtask) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, subtask)
	}
	return nil
}

func (m *MockSubtaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subtask, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubtaskRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Subtask, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockSubtaskRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockSubtaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByTaskIDFunc func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	CreateFunc          func(ctx context.Context, attachment *domain.Attachment) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Attachment, error)
	FindByTaskIDFunc    func(ctx context.Context, taskID uuid.UUID) ([]*domain.Attachment, error)
	ConfirmFunc         func(ctx context.Context, id, taskID uuid.UUID) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	FindExpiredTempFunc func(ctx context.Context) ([]*domain.Attachment, error)
	DeleteBatchFunc     func(ctx context.Context, ids []uuid.UUID) error
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attachment)
	}
	return nil
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Attachment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) Confirm(ctx context.Context, id, taskID uuid.UUID) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, id, taskID)
	}
	return nil
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAttachmentRepository) FindExpiredTemp(ctx context.Context) ([]*domain.Attachment, error) {
	if m.FindExpiredTempFunc != nil {
		return m.FindExpiredTempFunc(ctx)
	}
	return nil, nil
}

func (m *MockAttachmentRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

// MockS3Client is a mock implementation of S3Client
type MockS3Client struct {
	GeneratePresignedURLFunc func(ctx context.Context, filename, contentType string) (string, string, error)
	DeleteFileFunc           func(ctx context.Context, key string) error
	GetFileURLFunc           func(key string) string
}

func (m *MockS3Client) GeneratePresignedURL(ctx context.Context, filename, contentType string) (string, string, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, filename, contentType)
	}
	return "https://example.com/upload", "attachments/test-key", nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://example.com/" + key
}
