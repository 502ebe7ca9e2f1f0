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

type ProjectHandler struct {
	projectService service.ProjectService
	logger         *zap.Logger
}

func NewProjectHandler(projectService service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, logger: logger}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, project)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query dto.ProjectQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	projects, total, err := h.projectService.ListProjects(c.Request.Context(), userID, &query)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendPaginated(c, http.StatusOK, projects, total, query.Limit, query.Offset)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, project)
}

// ArchiveProject soft-archives a project. Archived projects stay readable.
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.ArchiveProject(c.Request.Context(), projectID, userID); err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Project archived")
}

func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.projectService.GetProjectStats(c.Request.Context(), projectID, userID)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, stats)
}

func (h *ProjectHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.projectService.ListMembers(c.Request.Context(), projectID, userID)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, members)
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	member, err := h.projectService.AddMember(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, member)
}

func (h *ProjectHandler) UpdateMemberRole(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAppError(c, validation.FromBindError(err))
		return
	}

	if err := h.projectService.UpdateMemberRole(c.Request.Context(), projectID, userID, memberID, &req); err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Member role updated")
}

func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.projectService.RemoveMember(c.Request.Context(), projectID, userID, memberID); err != nil {
		HandleError(c, h.logger, err)
		return
	}
	response.SendMessage(c, http.StatusOK, "Member removed")
}
