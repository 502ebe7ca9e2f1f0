package dto

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-api/internal/domain"
)

func bindJSON(t *testing.T, body string, obj interface{}) error {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(obj)
}

func TestCreateTaskRequest_ValidInput(t *testing.T) {
	body := `{
		"title": "Ship the quarterly report",
		"description": "Compile and send",
		"project_id": "539167fb-b599-41ba-9ead-344a6d0b3a2f",
		"priority": "high",
		"due_date": "2026-09-30T17:00:00Z"
	}`

	var req CreateTaskRequest
	require.NoError(t, bindJSON(t, body, &req))

	assert.Equal(t, "Ship the quarterly report", req.Title)
	assert.Equal(t, domain.TaskPriority("high"), req.Priority)
	require.NotNil(t, req.DueDate)
	assert.Equal(t, time.Date(2026, 9, 30, 17, 0, 0, 0, time.UTC), req.DueDate.UTC())
}

// Server-assigned fields must not exist on the create variant at all, so a
// caller can never smuggle them through.
func TestCreateTaskRequest_ExcludesServerFields(t *testing.T) {
	body := `{
		"title": "t",
		"project_id": "539167fb-b599-41ba-9ead-344a6d0b3a2f",
		"id": "99999999-9999-9999-9999-999999999999",
		"created_at": "2020-01-01T00:00:00Z",
		"completed_at": "2020-01-01T00:00:00Z"
	}`

	var req CreateTaskRequest
	require.NoError(t, bindJSON(t, body, &req))

	// Unknown keys are dropped; the struct has nowhere to put them.
	assert.Equal(t, "t", req.Title)
}

func TestCreateTaskRequest_MissingRequiredFields(t *testing.T) {
	var req CreateTaskRequest
	err := bindJSON(t, `{"description": "no title, no project"}`, &req)
	require.Error(t, err)
}

func TestCreateTaskRequest_RejectsUnknownEnumValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad status", `{"title":"t","project_id":"539167fb-b599-41ba-9ead-344a6d0b3a2f","status":"blocked"}`},
		{"bad priority", `{"title":"t","project_id":"539167fb-b599-41ba-9ead-344a6d0b3a2f","priority":"critical"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateTaskRequest
			assert.Error(t, bindJSON(t, tt.body, &req))
		})
	}
}

// An empty update payload is a valid no-op patch.
func TestUpdateTaskRequest_EmptyPatch(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, bindJSON(t, `{}`, &req))
	assert.True(t, req.IsEmpty())
}

func TestUpdateTaskRequest_PartialPatch(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, bindJSON(t, `{"status":"done"}`, &req))

	assert.False(t, req.IsEmpty())
	require.NotNil(t, req.Status)
	assert.Equal(t, domain.TaskStatusDone, *req.Status)
	assert.Nil(t, req.Title)
	assert.Nil(t, req.AssigneeID)
}

func TestTaskQuery_BindsFiltersAndCoercesDates(t *testing.T) {
	var q TaskQuery
	raw := "status=in_progress&priority=urgent&due_before=2026-12-31T00%3A00%3A00Z&limit=10"
	require.NoError(t, bindQuery(t, raw, &q))
	q.Normalize()

	assert.Equal(t, "in_progress", q.Status)
	assert.Equal(t, "urgent", q.Priority)
	require.NotNil(t, q.DueBefore)
	assert.Equal(t, 2026, q.DueBefore.Year())
	assert.Equal(t, 10, q.Limit)
}

func TestTaskQuery_RejectsUnknownStatus(t *testing.T) {
	var q TaskQuery
	assert.Error(t, bindQuery(t, "status=archived", &q))
}
