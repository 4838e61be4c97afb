package api

import (
	"net/http"
	"time"

	"github.com/event-registry-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	eventHandler := NewEventHandler(services, log)
	teamHandler := NewTeamHandler(services, log)
	schoolHandler := NewSchoolHandler(services, log)
	userHandler := NewUserHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		events := v1.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:event_id/lifecycle", eventHandler.GetLifecycle)
			events.PUT("/:event_id/modalities", eventHandler.SetModalities)
			events.GET("/:event_id/team", teamHandler.ListMembers)
			events.PUT("/:event_id/team/:user_id", teamHandler.GrantRole)
			events.DELETE("/:event_id/team/:user_id", teamHandler.RevokeRole)
		}

		schools := v1.Group("/schools")
		{
			schools.POST("", schoolHandler.CreateSchool)
			schools.PUT("/:school_id/events", schoolHandler.LinkEvents)
			schools.POST("/:school_id/technicians", schoolHandler.AddTechnician)
		}

		technicians := v1.Group("/technicians")
		{
			technicians.PUT("/:link_id", schoolHandler.UpdateTechnician)
			technicians.DELETE("/:link_id", schoolHandler.RemoveTechnician)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:user_id/permissions/:permission", userHandler.CheckPermission)
			users.GET("/:user_id/events/:event_id/role", userHandler.GetEventRole)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "event-registry-api",
	})
}

// metricsHandler returns per-collection record counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := services.Event.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"collections": counts,
			"timestamp":   time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Actor-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
