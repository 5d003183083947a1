package handlers

import (
	"net/http"

	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects godoc
// @Summary List projects
// @Description Returns a filtered, sorted page of projects
// @Tags projects
// @Produce json
// @Param search query string false "Case-insensitive substring match on name or description"
// @Param technology query string false "Exact technology name"
// @Param user_id query string false "Member user ID"
// @Param min_rating query number false "Inclusive lower rating bound"
// @Param max_rating query number false "Inclusive upper rating bound"
// @Param language query string false "Exact language match"
// @Param sort query string false "Sort field: name, created_at, updated_at, rating"
// @Param order query string false "Sort order: asc or desc"
// @Param page query int false "Page number, 1-based"
// @Param page_size query int false "Page size, max 100"
// @Success 200 {object} service.ProjectListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var req service.ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, apperrors.NewValidationError("", err.Error()))
		return
	}

	response, err := h.service.ListProjects(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetProject godoc
// @Summary Get a project
// @Description Returns a project with its technologies and members
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.ProjectAggregateResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("id", "must be a valid UUID"))
		return
	}

	response, err := h.service.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateProject godoc
// @Summary Create a project
// @Description Creates a project with optional initial technology and user sets
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project payload"
// @Success 201 {object} service.ProjectAggregateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("", err.Error()))
		return
	}

	response, err := h.service.CreateProject(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// UpdateProject godoc
// @Summary Update a project
// @Description Applies a partial update; non-nil association lists replace the full set atomically
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body service.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} service.ProjectAggregateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("id", "must be a valid UUID"))
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("", err.Error()))
		return
	}

	response, err := h.service.UpdateProject(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Deletes a project together with its association rows
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("id", "must be a valid UUID"))
		return
	}

	if err := h.service.DeleteProject(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
