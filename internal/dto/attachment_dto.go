package dto

import (
	"time"

	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// PresignedURLRequest asks for a direct-upload URL. The file is uploaded to
// object storage against a TEMP record and confirmed via SaveAttachmentRequest.
type PresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required,min=1,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
}

// PresignedURLResponse carries the upload URL and the storage key the client
// must echo back when saving metadata.
type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	ExpiresIn int    `json:"expires_in"`
}

// SaveAttachmentRequest is the create variant of the Attachment schema.
// It records metadata after the direct upload completes; the record stays
// TEMP until a task create or update confirms it by ID. Attachments are
// append-only: there is no update variant, and created_at is server-assigned.
type SaveAttachmentRequest struct {
	FileKey  string `json:"file_key" binding:"required,max=1024"`
	Filename string `json:"filename" binding:"required,min=1,max=255"`
	FileSize int64  `json:"file_size" binding:"required,gt=0"`
	MimeType string `json:"mime_type" binding:"required,max=100"`
}

// AttachmentResponse is the read shape of an attachment.
type AttachmentResponse struct {
	ID         uuid.UUID               `json:"id"`
	TaskID     *uuid.UUID              `json:"task_id"`
	Status     domain.AttachmentStatus `json:"status"`
	Filename   string                  `json:"filename"`
	FileURL    string                  `json:"file_url"`
	FileSize   int64                   `json:"file_size"`
	MimeType   string                  `json:"mime_type"`
	UploadedBy uuid.UUID               `json:"uploaded_by"`
	ExpiresAt  *time.Time              `json:"expires_at"`
	CreatedAt  time.Time               `json:"created_at"`
}

// NewAttachmentResponse maps a domain attachment to its read shape.
// fileURL is the resolved download URL, not the raw storage key.
func NewAttachmentResponse(a *domain.Attachment, fileURL string) *AttachmentResponse {
	return &AttachmentResponse{
		ID:         a.ID,
		TaskID:     a.TaskID,
		Status:     a.Status,
		Filename:   a.Filename,
		FileURL:    fileURL,
		FileSize:   a.FileSize,
		MimeType:   a.MimeType,
		UploadedBy: a.UploadedBy,
		ExpiresAt:  a.ExpiresAt,
		CreatedAt:  a.CreatedAt,
	}
}
