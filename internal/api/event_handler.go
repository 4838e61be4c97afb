package api

import (
	"net/http"

	"github.com/event-registry-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EventHandler handles event endpoints
type EventHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(services *service.Services, log zerolog.Logger) *EventHandler {
	return &EventHandler{
		services: services,
		log:      log.With().Str("handler", "event").Logger(),
	}
}

// CreateEvent handles POST /v1/events. The creator must hold the
// criar_evento capability; admins and producers qualify through their
// roles, everyone else through the legacy capability set.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.CreatorID == "" {
		req.CreatorID = actorID(c)
	}
	if req.CreatorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "creator_id or X-Actor-ID is required"})
		return
	}

	allowed, err := h.services.Permission.HasGlobalPermission(ctx, req.CreatorID, "criar_evento")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !allowed {
		respondError(c, h.log, service.ErrPermissionDenied)
		return
	}

	event, err := h.services.Event.Create(ctx, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetLifecycle handles GET /v1/events/:event_id/lifecycle
func (h *EventHandler) GetLifecycle(c *gin.Context) {
	lc, err := h.services.Event.Lifecycle(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, lc)
}

// SetModalities handles PUT /v1/events/:event_id/modalities
func (h *EventHandler) SetModalities(c *gin.Context) {
	ctx := c.Request.Context()
	eventID := c.Param("event_id")

	actor := actorID(c)
	if actor == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Actor-ID header is required"})
		return
	}

	canManage, err := h.services.Permission.CanManageEvent(ctx, actor, eventID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !canManage {
		respondError(c, h.log, service.ErrPermissionDenied)
		return
	}

	var req struct {
		ModalityIDs []string `json:"modality_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Event.SetModalities(ctx, eventID, req.ModalityIDs); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "modality_ids": req.ModalityIDs})
}
