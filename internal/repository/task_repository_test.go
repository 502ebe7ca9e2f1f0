package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/dto"
)

func setupTaskTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create tables for SQLite compatibility
	db.Exec(`CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		title TEXT NOT NULL,
		description TEXT,
		project_id TEXT NOT NULL,
		creator_id TEXT NOT NULL,
		assignee_id TEXT,
		status TEXT NOT NULL DEFAULT 'todo',
		priority TEXT NOT NULL DEFAULT 'medium',
		due_date DATETIME,
		completed_at DATETIME,
		custom_fields TEXT
	)`)
	db.Exec(`CREATE TABLE subtasks (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		task_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		is_completed INTEGER NOT NULL DEFAULT 0,
		completed_at DATETIME
	)`)
	db.Exec(`CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		task_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		content TEXT NOT NULL
	)`)
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
	db.Exec(`CREATE TABLE tags (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		name TEXT NOT NULL UNIQUE,
		color TEXT NOT NULL
	)`)
	db.Exec(`CREATE TABLE task_tags (
		task_id TEXT NOT NULL,
		tag_id TEXT NOT NULL,
		PRIMARY KEY (task_id, tag_id)
	)`)
	db.Exec(`CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT,
		avatar_url TEXT
	)`)

	return db
}

func newTestTask(projectID uuid.UUID, title string, status domain.TaskStatus) *domain.Task {
	return &domain.Task{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Title:     title,
		ProjectID: projectID,
		CreatorID: uuid.New(),
		Status:    status,
		Priority:  domain.TaskPriorityMedium,
	}
}

func TestTaskRepository_List_Filters(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	otherProjectID := uuid.New()

	todo := newTestTask(projectID, "write report", domain.TaskStatusTodo)
	done := newTestTask(projectID, "review report", domain.TaskStatusDone)
	other := newTestTask(otherProjectID, "unrelated", domain.TaskStatusTodo)
	db.Create(todo)
	db.Create(done)
	db.Create(other)

	query := &dto.TaskQuery{ProjectID: &projectID, Status: string(domain.TaskStatusTodo)}
	query.Normalize()

	tasks, total, err := repo.List(ctx, query)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 {
		t.Errorf("expected total 1, got %d", total)
	}
	if len(tasks) != 1 || tasks[0].ID != todo.ID {
		t.Errorf("expected only task %v, got %d tasks", todo.ID, len(tasks))
	}
}

func TestTaskRepository_List_Pagination(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	for i := 0; i < 5; i++ {
		task := newTestTask(projectID, "task", domain.TaskStatusTodo)
		task.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		db.Create(task)
	}

	query := &dto.TaskQuery{ProjectID: &projectID}
	query.Limit = 2
	query.Offset = 2
	query.Normalize()

	tasks, total, err := repo.List(ctx, query)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(tasks) != 2 {
		t.Errorf("expected page of 2 tasks, got %d", len(tasks))
	}
}

func TestTaskRepository_Update_EmptyFields(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTestTask(uuid.New(), "original", domain.TaskStatusTodo)
	db.Create(task)

	// An empty field map is a no-op, not an error
	if err := repo.Update(ctx, task.ID, map[string]interface{}{}); err != nil {
		t.Fatalf("Update() with empty fields error = %v", err)
	}

	var unchanged domain.Task
	db.First(&unchanged, "id = ?", task.ID)
	if unchanged.Title != "original" {
		t.Errorf("expected title unchanged, got %q", unchanged.Title)
	}
}

func TestTaskRepository_Update_UnassignsViaNil(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	assignee := uuid.New()
	task := newTestTask(uuid.New(), "assigned", domain.TaskStatusTodo)
	task.AssigneeID = &assignee
	db.Create(task)

	err := repo.Update(ctx, task.ID, map[string]interface{}{"assignee_id": nil})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var updated domain.Task
	db.First(&updated, "id = ?", task.ID)
	if updated.AssigneeID != nil {
		t.Errorf("expected assignee cleared, got %v", updated.AssigneeID)
	}
}

func TestTaskRepository_Counts(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTestTask(uuid.New(), "counted", domain.TaskStatusTodo)
	db.Create(task)

	db.Create(&domain.Subtask{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		TaskID:    task.ID,
		Title:     "step 1",
	})
	db.Create(&domain.Comment{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		TaskID:    task.ID,
		UserID:    uuid.New(),
		Content:   "looks good",
	})

	// Only confirmed attachments count
	confirmed := newTempAttachment("a.jpg", nil)
	confirmed.Status = domain.AttachmentStatusConfirmed
	confirmed.TaskID = &task.ID
	db.Create(confirmed)

	temp := newTempAttachment("b.jpg", nil)
	temp.TaskID = &task.ID
	db.Create(temp)

	counts, err := repo.Counts(ctx, task.ID)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts.Subtasks != 1 {
		t.Errorf("expected 1 subtask, got %d", counts.Subtasks)
	}
	if counts.Comments != 1 {
		t.Errorf("expected 1 comment, got %d", counts.Comments)
	}
	if counts.Attachments != 1 {
		t.Errorf("expected 1 confirmed attachment, got %d", counts.Attachments)
	}
}

func TestTaskRepository_CountByStatus(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	db.Create(newTestTask(projectID, "a", domain.TaskStatusTodo))
	db.Create(newTestTask(projectID, "b", domain.TaskStatusTodo))
	db.Create(newTestTask(projectID, "c", domain.TaskStatusDone))
	db.Create(newTestTask(uuid.New(), "elsewhere", domain.TaskStatusTodo))

	counts, err := repo.CountByStatus(ctx, projectID)
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if counts["todo"] != 2 {
		t.Errorf("expected 2 todo tasks, got %d", counts["todo"])
	}
	if counts["done"] != 1 {
		t.Errorf("expected 1 done task, got %d", counts["done"])
	}
}

func TestTaskRepository_CountOverdue(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	past := time.Now().UTC().Add(-24 * time.Hour)
	future := time.Now().UTC().Add(24 * time.Hour)

	overdue := newTestTask(projectID, "late", domain.TaskStatusInProgress)
	overdue.DueDate = &past
	db.Create(overdue)

	// Done tasks are never overdue
	finished := newTestTask(projectID, "shipped", domain.TaskStatusDone)
	finished.DueDate = &past
	db.Create(finished)

	upcoming := newTestTask(projectID, "soon", domain.TaskStatusTodo)
	upcoming.DueDate = &future
	db.Create(upcoming)

	n, err := repo.CountOverdue(ctx, projectID)
	if err != nil {
		t.Fatalf("CountOverdue() error = %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 overdue task, got %d", n)
	}
}

func TestTaskRepository_Delete_SoftDeletes(t *testing.T) {
	db := setupTaskTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTestTask(uuid.New(), "gone", domain.TaskStatusTodo)
	db.Create(task)

	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, task.ID); err == nil {
		t.Error("expected deleted task to be invisible, but it was found")
	}

	// Soft delete keeps the row
	var count int64
	db.Unscoped().Model(&domain.Task{}).Where("id = ?", task.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected soft-deleted row to remain, got %d rows", count)
	}
}
