package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentStatus tracks the upload lifecycle. Files are uploaded to
// object storage against a TEMP record first and confirmed once the
// metadata is linked to a task; expired TEMP records are reaped by the
// cleanup job.
type AttachmentStatus string

const (
	AttachmentStatusTemp      AttachmentStatus = "TEMP"
	AttachmentStatusConfirmed AttachmentStatus = "CONFIRMED"
)

// Attachment is an append-only file record on a task. There is no update
// variant; an attachment is created once and only ever deleted.
type Attachment struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TaskID     *uuid.UUID       `gorm:"type:uuid;index:idx_attachments_task_id" json:"task_id"`
	Status     AttachmentStatus `gorm:"type:varchar(20);not null;default:'TEMP';index:idx_attachments_status" json:"status"`
	Filename   string           `gorm:"type:varchar(255);not null" json:"filename"`
	FileURL    string           `gorm:"type:text;not null" json:"file_url"`
	FileSize   int64            `gorm:"not null" json:"file_size"`
	MimeType   string           `gorm:"type:varchar(100);not null" json:"mime_type"`
	UploadedBy uuid.UUID        `gorm:"type:uuid;not null;index:idx_attachments_uploaded_by" json:"uploaded_by"`
	ExpiresAt  *time.Time       `gorm:"type:timestamp;index:idx_attachments_expires_at" json:"expires_at"`
	CreatedAt  time.Time        `gorm:"type:timestamp;not null" json:"created_at"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
