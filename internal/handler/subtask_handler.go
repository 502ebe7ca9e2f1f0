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

type SubtaskHandler struct {
	subtaskService service.SubtaskService
	logger         *zap.Logger
}

func NewSubtaskHandler(subtaskService service.SubtaskService, logger *zap.Logger) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService, logger: logger}
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(c.Request.Context(), taskID, &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, subtask)
}

func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	subtasks, err := h.subtaskService.ListSubtasks(c.Request.Context(), taskID)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, subtasks)
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	subtaskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(c.Request.Context(), subtaskID, &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, subtask)
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	subtaskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subtaskService.DeleteSubtask(c.Request.Context(), subtaskID); err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Subtask deleted")
}
