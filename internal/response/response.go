package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/apperr"
)

// SuccessResponse is the uniform success envelope for all endpoints.
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the uniform error envelope. Optional fields carry
// omitempty so absent values never serialize as null noise.
type ErrorResponse struct {
	Success   bool                   `json:"success"`
	Error     string                 `json:"error"`
	Code      string                 `json:"code,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp string                 `json:"timestamp"`
	Path      string                 `json:"path,omitempty"`
}

// Pagination describes the window of a list response.
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

// SendSuccess writes a success envelope with the given payload.
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendMessage writes a success envelope carrying only a human-readable message.
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, SuccessResponse{Success: true, Message: message})
}

// SendPaginated writes a success envelope with list data and pagination info.
func SendPaginated(c *gin.Context, status int, data interface{}, total int64, limit, offset int) {
	c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
		Pagination: &Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+limit) < total,
		},
	})
}

// SendError writes an error envelope. Code and details are optional;
// the request path and timestamp are always stamped.
func SendError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      code,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
	})
}

// SendAppError writes the envelope for a typed AppError verbatim.
func SendAppError(c *gin.Context, err *apperr.AppError) {
	SendError(c, err.Status, err.Code, err.Message, err.Details)
}
