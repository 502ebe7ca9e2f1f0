package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow-api/internal/repository"
)

// ObjectDeleter is the slice of object storage the cleanup job needs.
type ObjectDeleter interface {
	DeleteFile(ctx context.Context, key string) error
}

// CleanupJob reaps temporary attachments whose confirmation window has
// passed. Scheduled hourly; each run deletes the stored objects first and
// removes rows only for objects that were actually deleted.
type CleanupJob struct {
	attachmentRepo repository.AttachmentRepository
	store          ObjectDeleter
	logger         *zap.Logger
}

func NewCleanupJob(attachmentRepo repository.AttachmentRepository, store ObjectDeleter, logger *zap.Logger) *CleanupJob {
	return &CleanupJob{
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

// Run executes one cleanup pass. It satisfies cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	expired, err := j.attachmentRepo.FindExpiredTemp(ctx)
	if err != nil {
		j.logger.Error("failed to find expired temporary attachments", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	j.logger.Info("reaping expired temporary attachments", zap.Int("count", len(expired)))

	var deleted []uuid.UUID
	failCount := 0
	for _, attachment := range expired {
		if err := j.store.DeleteFile(ctx, attachment.FileURL); err != nil {
			j.logger.Error("failed to delete stored object",
				zap.String("attachment_id", attachment.ID.String()),
				zap.String("file_key", attachment.FileURL),
				zap.Error(err))
			failCount++
			continue
		}
		deleted = append(deleted, attachment.ID)
	}

	if len(deleted) > 0 {
		if err := j.attachmentRepo.DeleteBatch(ctx, deleted); err != nil {
			j.logger.Error("failed to delete attachment rows",
				zap.Int("count", len(deleted)),
				zap.Error(err))
			return
		}
	}

	j.logger.Info("cleanup pass completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("deleted", len(deleted)),
		zap.Int("failed", failCount))
}
