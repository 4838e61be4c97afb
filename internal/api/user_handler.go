package api

import (
	"net/http"

	"github.com/event-registry-api/internal/models"
	"github.com/event-registry-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles user and permission-resolution endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// CreateUser handles POST /v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Registry.CreateUser(c.Request.Context(), &user)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CheckPermission handles GET /v1/users/:user_id/permissions/:permission
func (h *UserHandler) CheckPermission(c *gin.Context) {
	userID := c.Param("user_id")
	permission := c.Param("permission")

	allowed, err := h.services.Permission.HasGlobalPermission(c.Request.Context(), userID, permission)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    userID,
		"permission": permission,
		"allowed":    allowed,
	})
}

// GetEventRole handles GET /v1/users/:user_id/events/:event_id/role
func (h *UserHandler) GetEventRole(c *gin.Context) {
	userID := c.Param("user_id")
	eventID := c.Param("event_id")

	role, err := h.services.Permission.GetEventRole(c.Request.Context(), userID, eventID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    userID,
		"event_id":   eventID,
		"role":       role,
		"can_manage": role.CanManage(),
	})
}
