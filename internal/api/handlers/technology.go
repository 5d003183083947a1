package handlers

import (
	"net/http"

	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TechnologyHandler handles technology endpoints
type TechnologyHandler struct {
	service *service.TechnologyService
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(service *service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{service: service}
}

// ListTechnologies godoc
// @Summary List technologies
// @Tags technologies
// @Produce json
// @Success 200 {array} service.TechnologyResponse
// @Router /api/v1/technologies [get]
func (h *TechnologyHandler) ListTechnologies(c *gin.Context) {
	response, err := h.service.ListTechnologies()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateTechnology godoc
// @Summary Create a technology
// @Tags technologies
// @Accept json
// @Produce json
// @Param technology body service.CreateTechnologyRequest true "Technology payload"
// @Success 201 {object} service.TechnologyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/technologies [post]
func (h *TechnologyHandler) CreateTechnology(c *gin.Context) {
	var req service.CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("", err.Error()))
		return
	}

	response, err := h.service.CreateTechnology(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// DeleteTechnology godoc
// @Summary Delete a technology
// @Description Deletes a technology and detaches it from every project
// @Tags technologies
// @Param id path string true "Technology ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/technologies/{id} [delete]
func (h *TechnologyHandler) DeleteTechnology(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("id", "must be a valid UUID"))
		return
	}

	if err := h.service.DeleteTechnology(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
