package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow-api/internal/apperr"
	"taskflow-api/internal/response"
)

// userIDKey is the gin context key the auth middleware populates.
const userIDKey = "user_id"

// currentUserID extracts the authenticated user from the gin context.
// Writes a 401 and returns false when the middleware did not run.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		response.SendError(c, http.StatusUnauthorized, apperr.CodeUnauthorized, "Authentication required", nil)
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, apperr.CodeUnauthorized, "Authentication required", nil)
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDParam parses a path parameter as a UUID, writing a 400 on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, apperr.CodeValidation, "Invalid "+name, map[string]interface{}{
			name: "must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}
