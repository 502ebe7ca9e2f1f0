package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/repository"
)

// S3Client is the object-storage surface the attachment flow needs.
type S3Client interface {
	GeneratePresignedURL(ctx context.Context, filename, contentType string) (uploadURL, fileKey string, err error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

const (
	// MaxFileSize caps uploads at 50MB.
	MaxFileSize = 50 * 1024 * 1024

	// tempAttachmentTTL is how long an unconfirmed upload survives before
	// the cleanup job reaps it.
	tempAttachmentTTL = 1 * time.Hour

	// presignExpirySeconds is the lifetime of the upload URL.
	presignExpirySeconds = 300
)

// AttachmentService defines the interface for attachment business logic
type AttachmentService interface {
	GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error)
	SaveAttachment(ctx context.Context, userID uuid.UUID, req *dto.SaveAttachmentRequest) (*dto.AttachmentResponse, error)
	ListTaskAttachments(ctx context.Context, taskID uuid.UUID) ([]*dto.AttachmentResponse, error)
	DeleteAttachment(ctx context.Context, attachmentID, userID uuid.UUID) error
}

// attachmentServiceImpl is the implementation of AttachmentService
type attachmentServiceImpl struct {
	attachmentRepo repository.AttachmentRepository
	taskRepo       repository.TaskRepository
	s3Client       S3Client
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(
	attachmentRepo repository.AttachmentRepository,
	taskRepo repository.TaskRepository,
	s3Client S3Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) AttachmentService {
	return &attachmentServiceImpl{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		s3Client:       s3Client,
		metrics:        m,
		logger:         logger,
	}
}

// GeneratePresignedURL returns a direct-upload URL and the storage key the
// client must echo back when saving metadata.
func (s *attachmentServiceImpl) GeneratePresignedURL(ctx context.Context, req *dto.PresignedURLRequest) (*dto.PresignedURLResponse, error) {
	if err := validateFilename(req.Filename); err != nil {
		return nil, err
	}

	uploadURL, fileKey, err := s.s3Client.GeneratePresignedURL(ctx, req.Filename, req.ContentType)
	if err != nil {
		return nil, apperr.NewInternal("Failed to generate upload URL", err)
	}

	return &dto.PresignedURLResponse{
		UploadURL: uploadURL,
		FileKey:   fileKey,
		ExpiresIn: presignExpirySeconds,
	}, nil
}

// SaveAttachment records metadata after the direct upload completes. The
// record stays TEMP until a task confirms it; unconfirmed records expire.
func (s *attachmentServiceImpl) SaveAttachment(ctx context.Context, userID uuid.UUID, req *dto.SaveAttachmentRequest) (*dto.AttachmentResponse, error) {
	if err := validateFilename(req.Filename); err != nil {
		return nil, err
	}
	if req.FileSize > MaxFileSize {
		return nil, apperr.NewValidation("File size exceeds the 50MB limit", map[string]interface{}{
			"file_size": "must be at most 52428800 bytes",
		})
	}

	expiresAt := time.Now().UTC().Add(tempAttachmentTTL)
	attachment := &domain.Attachment{
		ID:         uuid.New(),
		Status:     domain.AttachmentStatusTemp,
		Filename:   req.Filename,
		FileURL:    req.FileKey,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		UploadedBy: userID,
		ExpiresAt:  &expiresAt,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, apperr.FromDBError(err)
	}

	if s.metrics != nil {
		s.metrics.IncrementAttachmentUploaded()
	}

	return dto.NewAttachmentResponse(attachment, s.s3Client.GetFileURL(attachment.FileURL)), nil
}

func (s *attachmentServiceImpl) ListTaskAttachments(ctx context.Context, taskID uuid.UUID) ([]*dto.AttachmentResponse, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		return nil, notFoundOr(err, "Task")
	}

	attachments, err := s.attachmentRepo.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, apperr.FromDBError(err)
	}

	responses := make([]*dto.AttachmentResponse, len(attachments))
	for i, a := range attachments {
		responses[i] = dto.NewAttachmentResponse(a, s.s3Client.GetFileURL(a.FileURL))
	}
	return responses, nil
}

// DeleteAttachment removes the stored object and its record. Only the
// uploader may delete.
func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, attachmentID, userID uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindByID(ctx, attachmentID)
	if err != nil {
		return notFoundOr(err, "Attachment")
	}

	if attachment.UploadedBy != userID {
		return apperr.NewForbidden("Only the uploader can delete an attachment")
	}

	if err := s.s3Client.DeleteFile(ctx, attachment.FileURL); err != nil {
		s.logger.Error("failed to delete stored object",
			zap.String("attachment_id", attachmentID.String()),
			zap.String("file_key", attachment.FileURL),
			zap.Error(err))
		return apperr.NewInternal("Failed to delete attachment", err)
	}

	if err := s.attachmentRepo.Delete(ctx, attachmentID); err != nil {
		return apperr.FromDBError(err)
	}
	return nil
}

func validateFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return apperr.NewValidation("File must have an extension", map[string]interface{}{
			"filename": "must include a file extension",
		})
	}
	return nil
}
