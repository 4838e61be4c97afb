package api

import (
	"net/http"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TeamHandler handles event team endpoints
type TeamHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(services *service.Services, log zerolog.Logger) *TeamHandler {
	return &TeamHandler{
		services: services,
		log:      log.With().Str("handler", "team").Logger(),
	}
}

// ListMembers handles GET /v1/events/:event_id/team
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.services.Team.Members(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if members == nil {
		members = []*models.TeamMember{}
	}
	c.JSON(http.StatusOK, gin.H{"event_id": c.Param("event_id"), "members": members})
}

// GrantRole handles PUT /v1/events/:event_id/team/:user_id. Only a
// managing actor (owner or assistant, admins implicitly) may grant.
func (h *TeamHandler) GrantRole(c *gin.Context) {
	ctx := c.Request.Context()
	eventID := c.Param("event_id")
	userID := c.Param("user_id")

	if !h.requireManager(c, eventID) {
		return
	}

	var req struct {
		Role models.EventRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.services.Team.AddMember(ctx, userID, eventID, req.Role)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RevokeRole handles DELETE /v1/events/:event_id/team/:user_id
func (h *TeamHandler) RevokeRole(c *gin.Context) {
	eventID := c.Param("event_id")
	userID := c.Param("user_id")

	if !h.requireManager(c, eventID) {
		return
	}

	if err := h.services.Team.RemoveMember(c.Request.Context(), userID, eventID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// requireManager enforces the managing-role gate for team mutations. It
// writes the error response itself and reports whether to proceed.
func (h *TeamHandler) requireManager(c *gin.Context, eventID string) bool {
	actor := actorID(c)
	if actor == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Actor-ID header is required"})
		return false
	}
	canManage, err := h.services.Permission.CanManageEvent(c.Request.Context(), actor, eventID)
	if err != nil {
		respondError(c, h.log, err)
		return false
	}
	if !canManage {
		respondError(c, h.log, service.ErrPermissionDenied)
		return false
	}
	return true
}
