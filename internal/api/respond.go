package api

import (
	"errors"
	"net/http"

	"github.com/event-registry-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps a service error to its HTTP status. Validation
// failures list the offending ids verbatim so the UI can display them.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var ve *service.ValidationError
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &ve):
		body := gin.H{"error": ve.Message}
		if len(ve.InvalidIDs) > 0 {
			body["invalid_ids"] = ve.InvalidIDs
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case service.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// actorID extracts the acting user from the X-Actor-ID header. Mutating
// endpoints refuse requests without one.
func actorID(c *gin.Context) string {
	return c.GetHeader("X-Actor-ID")
}
