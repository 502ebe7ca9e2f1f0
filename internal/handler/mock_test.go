package handler

import (
	"context"

	"github.com/google/uuid"

	"taskflow-api/internal/dto"
)

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	CreateTaskFunc func(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTaskFunc    func(ctx context.Context, taskID uuid.UUID) (*dto.TaskWithDetails, error)
	ListTasksFunc  func(ctx context.Context, query *dto.TaskQuery) ([]*dto.TaskResponse, int64, error)
	UpdateTaskFunc func(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTaskFunc func(ctx context.Context, taskID uuid.UUID) error
	SetTagsFunc    func(ctx context.Context, taskID uuid.UUID, req *dto.SetTaskTagsRequest) ([]dto.TagResponse, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, userID, req)
	}
	return &dto.TaskResponse{ID: uuid.New()}, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, taskID uuid.UUID) (*dto.TaskWithDetails, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, taskID)
	}
	return &dto.TaskWithDetails{}, nil
}

func (m *MockTaskService) ListTasks(ctx context.Context, query *dto.TaskQuery) ([]*dto.TaskResponse, int64, error) {
	if m.ListTasksFunc != nil {
		return m.ListTasksFunc(ctx, query)
	}
	return nil, 0, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, taskID, req)
	}
	return &dto.TaskResponse{ID: taskID}, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, taskID)
	}
	return nil
}

func (m *MockTaskService) SetTags(ctx context.Context, taskID uuid.UUID, req *dto.SetTaskTagsRequest) ([]dto.TagResponse, error) {
	if m.SetTagsFunc != nil {
		return m.SetTagsFunc(ctx, taskID, req)
	}
	return nil, nil
}

// MockAttachmentService is a mock implementation of service.AttachmentService
type MockAttachmentService struct {
	GeneratePresignedURLFunc func(ctx context.Context, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error)
	SaveAttachmentFunc       func(ctx context.Context, userID uuid.UUID, req *dto.SaveAttachmentRequest) (*dto.AttachmentResponse, error)
	ListTaskAttachmentsFunc  func(ctx context.Context, taskID uuid.UUID) ([]*dto.AttachmentResponse, error)
	DeleteAttachmentFunc     func(ctx context.Context, attachmentID, userID uuid.UUID) error
}

func (m *MockAttachmentService) GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error) {
	if m.GeneratePresignedURLFunc != nil {
		return m.GeneratePresignedURLFunc(ctx, req)
	}
	return &dto.PresignedURLResponse{UploadURL: "https://example.com/upload", FileKey: "attachments/test-key"}, nil
}

func (m *MockAttachmentService) SaveAttachment(ctx context.Context, userID uuid.UUID, req *dto.SaveAttachmentRequest) (*dto.AttachmentResponse, error) {
	if m.SaveAttachmentFunc != nil {
		return m.SaveAttachmentFunc(ctx, userID, req)
	}
	return &dto.AttachmentResponse{ID: uuid.New()}, nil
}

func (m *MockAttachmentService) ListTaskAttachments(ctx context.Context, taskID uuid.UUID) ([]*dto.AttachmentResponse, error) {
	if m.ListTaskAttachmentsFunc != nil {
		return m.ListTaskAttachmentsFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockAttachmentService) DeleteAttachment(ctx context.Context, attachmentID, userID uuid.UUID) error {
	if m.DeleteAttachmentFunc != nil {
		return m.DeleteAttachmentFunc(ctx, attachmentID, userID)
	}
	return nil
}
