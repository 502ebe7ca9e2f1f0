package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/response"
	"taskflow-api/internal/service"
	"taskflow-api/internal/validation"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
	logger            *zap.Logger
}

func NewAttachmentHandler(attachmentService service.AttachmentService, logger *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService, logger: logger}
}

// GeneratePresignedURL hands the client a direct-upload URL. No database
// row is created until the client saves metadata afterwards.
func (h *AttachmentHandler) GeneratePresignedURL(c *gin.Context) {
	var req dto.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	result, err := h.attachmentService.GeneratePresignedURL(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// SaveAttachment records upload metadata. The row stays temporary until a
// task creation confirms it.
func (h *AttachmentHandler) SaveAttachment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SaveAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	attachment, err := h.attachmentService.SaveAttachment(c.Request.Context(), userID, &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, attachment)
}

func (h *AttachmentHandler) ListTaskAttachments(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.ListTaskAttachments(c.Request.Context(), taskID)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, attachments)
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	attachmentID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), attachmentID, userID); err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Attachment deleted")
}
