package database

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

// modelInfo holds a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

// migratedModels lists every domain model in dependency order. The
// migrations bookkeeping table itself goes first.
var migratedModels = []modelInfo{
	{&domain.Migration{}, "migrations"},
	{&domain.Profile{}, "profiles"},
	{&domain.Project{}, "projects"},
	{&domain.ProjectMember{}, "project_members"},
	{&domain.Task{}, "tasks"},
	{&domain.Subtask{}, "subtasks"},
	{&domain.Tag{}, "tags"},
	{&domain.Comment{}, "comments"},
	{&domain.Attachment{}, "attachments"},
}

// SafeAutoMigrate migrates each model individually, logging progress, so a
// single bad table does not hide which model failed.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	logger.Info("Starting safe auto-migration",
		zap.Int("total_models", len(migratedModels)),
	)

	for _, m := range migratedModels {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		if err := recordMigration(db, m.tableName); err != nil {
			return err
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed",
		zap.Int("tables_migrated", len(migratedModels)),
	)

	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate up to maxRetries times with
// linear backoff.
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}

// recordMigration inserts the bookkeeping row for name if not yet present.
func recordMigration(db *gorm.DB, name string) error {
	var existing domain.Migration
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check migration record %s: %w", name, err)
	}

	record := domain.Migration{Name: name, ExecutedAt: time.Now().UTC()}
	if err := db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}
	return nil
}
