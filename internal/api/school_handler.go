package api

import (
	"net/http"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SchoolHandler handles school and technician endpoints
type SchoolHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSchoolHandler creates a new SchoolHandler
func NewSchoolHandler(services *service.Services, log zerolog.Logger) *SchoolHandler {
	return &SchoolHandler{
		services: services,
		log:      log.With().Str("handler", "school").Logger(),
	}
}

// CreateSchool handles POST /v1/schools
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var school models.School
	if err := c.ShouldBindJSON(&school); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Registry.CreateSchool(c.Request.Context(), &school)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// LinkEvents handles PUT /v1/schools/:school_id/events. The actor must
// hold the gerir_escolas capability.
func (h *SchoolHandler) LinkEvents(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.Param("school_id")

	if !h.requirePermission(c, "gerir_escolas") {
		return
	}

	var req struct {
		EventIDs []string `json:"event_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	school, err := h.services.Technician.LinkEvents(ctx, schoolID, req.EventIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, school)
}

// AddTechnician handles POST /v1/schools/:school_id/technicians. The
// actor must hold the gerir_tecnicos capability.
func (h *SchoolHandler) AddTechnician(c *gin.Context) {
	ctx := c.Request.Context()
	schoolID := c.Param("school_id")

	if !h.requirePermission(c, "gerir_tecnicos") {
		return
	}

	var req struct {
		UserID      string   `json:"user_id"`
		ModalityIDs []string `json:"modality_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := h.services.Technician.Add(ctx, schoolID, req.UserID, req.ModalityIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateTechnician handles PUT /v1/technicians/:link_id
func (h *SchoolHandler) UpdateTechnician(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.requirePermission(c, "gerir_tecnicos") {
		return
	}

	var req struct {
		ModalityIDs []string `json:"modality_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := h.services.Technician.UpdatePermissions(ctx, c.Param("link_id"), req.ModalityIDs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// RemoveTechnician handles DELETE /v1/technicians/:link_id
func (h *SchoolHandler) RemoveTechnician(c *gin.Context) {
	if !h.requirePermission(c, "gerir_tecnicos") {
		return
	}

	if err := h.services.Technician.Remove(c.Request.Context(), c.Param("link_id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// requirePermission enforces a global capability gate. It writes the
// error response itself and reports whether to proceed.
func (h *SchoolHandler) requirePermission(c *gin.Context, permission string) bool {
	actor := actorID(c)
	if actor == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Actor-ID header is required"})
		return false
	}
	allowed, err := h.services.Permission.HasGlobalPermission(c.Request.Context(), actor, permission)
	if err != nil {
		respondError(c, h.log, err)
		return false
	}
	if !allowed {
		respondError(c, h.log, service.ErrPermissionDenied)
		return false
	}
	return true
}
