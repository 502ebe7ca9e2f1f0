package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

func setupAttachmentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create attachments table for SQLite compatibility
	db.Exec(`CREATE TABLE attachments (
		id TEXT PRIMARY KEY,
		task_id TEXT,
		status TEXT NOT NULL DEFAULT 'TEMP',
		filename TEXT NOT NULL,
		file_url TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		mime_type TEXT NOT NULL,
		uploaded_by TEXT NOT NULL,
		expires_at DATETIME,
		created_at DATETIME NOT NULL
	)`)

	return db
}

func newTempAttachment(filename string, expiresAt *time.Time) *domain.Attachment {
	return &domain.Attachment{
		ID:         uuid.New(),
		Status:     domain.AttachmentStatusTemp,
		Filename:   filename,
		FileURL:    "attachments/" + uuid.NewString() + "/" + filename,
		FileSize:   1024,
		MimeType:   "image/jpeg",
		UploadedBy: uuid.New(),
		ExpiresAt:  expiresAt,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestAttachmentRepository_FindExpiredTemp(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	pastTime := now.Add(-2 * time.Hour)
	futureTime := now.Add(2 * time.Hour)

	expired := newTempAttachment("expired.jpg", &pastTime)
	db.Create(expired)

	valid := newTempAttachment("valid.jpg", &futureTime)
	db.Create(valid)

	// Confirmed attachments are never reaped, even past their expiry
	taskID := uuid.New()
	confirmed := newTempAttachment("confirmed.jpg", &pastTime)
	confirmed.Status = domain.AttachmentStatusConfirmed
	confirmed.TaskID = &taskID
	db.Create(confirmed)

	found, err := repo.FindExpiredTemp(ctx)
	if err != nil {
		t.Fatalf("FindExpiredTemp() error = %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 expired temp attachment, got %d", len(found))
	}
	if found[0].ID != expired.ID {
		t.Errorf("expected expired attachment ID %v, got %v", expired.ID, found[0].ID)
	}
}

func TestAttachmentRepository_Confirm(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	futureTime := time.Now().Add(1 * time.Hour)
	attachment := newTempAttachment("file1.jpg", &futureTime)
	db.Create(attachment)

	taskID := uuid.New()
	if err := repo.Confirm(ctx, attachment.ID, taskID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	var updated domain.Attachment
	db.First(&updated, "id = ?", attachment.ID)
	if updated.Status != domain.AttachmentStatusConfirmed {
		t.Errorf("expected status CONFIRMED, got %v", updated.Status)
	}
	if updated.TaskID == nil || *updated.TaskID != taskID {
		t.Errorf("expected task_id %v, got %v", taskID, updated.TaskID)
	}
}

func TestAttachmentRepository_Confirm_AlreadyConfirmed(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	taskID := uuid.New()
	attachment := newTempAttachment("file1.jpg", nil)
	attachment.Status = domain.AttachmentStatusConfirmed
	attachment.TaskID = &taskID
	db.Create(attachment)

	if err := repo.Confirm(ctx, attachment.ID, uuid.New()); err == nil {
		t.Error("Confirm() expected error for already confirmed attachment, got nil")
	}

	// Original task link must be untouched
	var unchanged domain.Attachment
	db.First(&unchanged, "id = ?", attachment.ID)
	if unchanged.TaskID == nil || *unchanged.TaskID != taskID {
		t.Errorf("expected task_id %v to be unchanged, got %v", taskID, unchanged.TaskID)
	}
}

func TestAttachmentRepository_FindByTaskID_OnlyConfirmed(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	taskID := uuid.New()

	confirmed := newTempAttachment("confirmed.jpg", nil)
	confirmed.Status = domain.AttachmentStatusConfirmed
	confirmed.TaskID = &taskID
	db.Create(confirmed)

	// A temp record pointing at the task must not be listed
	futureTime := time.Now().Add(1 * time.Hour)
	temp := newTempAttachment("pending.jpg", &futureTime)
	temp.TaskID = &taskID
	db.Create(temp)

	found, err := repo.FindByTaskID(ctx, taskID)
	if err != nil {
		t.Fatalf("FindByTaskID() error = %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 confirmed attachment, got %d", len(found))
	}
	if found[0].ID != confirmed.ID {
		t.Errorf("expected attachment ID %v, got %v", confirmed.ID, found[0].ID)
	}
}

func TestAttachmentRepository_DeleteBatch(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	attachment1 := newTempAttachment("file1.jpg", nil)
	attachment2 := newTempAttachment("file2.jpg", nil)
	attachment3 := newTempAttachment("file3.jpg", nil)
	db.Create(attachment1)
	db.Create(attachment2)
	db.Create(attachment3)

	err := repo.DeleteBatch(ctx, []uuid.UUID{attachment1.ID, attachment2.ID})
	if err != nil {
		t.Fatalf("DeleteBatch() error = %v", err)
	}

	var count int64
	db.Model(&domain.Attachment{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 remaining attachment, got %d", count)
	}

	var remaining domain.Attachment
	if err := db.First(&remaining, "id = ?", attachment3.ID).Error; err != nil {
		t.Fatalf("failed to query attachment3: %v", err)
	}
}

func TestAttachmentRepository_DeleteBatch_EmptyList(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	if err := repo.DeleteBatch(ctx, []uuid.UUID{}); err != nil {
		t.Fatalf("DeleteBatch() with empty list error = %v", err)
	}
}

func TestAttachmentRepository_FindByID_NotFound(t *testing.T) {
	db := setupAttachmentTestDB(t)
	repo := NewAttachmentRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, uuid.New()); err == nil {
		t.Error("FindByID() expected error for non-existent ID, got nil")
	}
}
