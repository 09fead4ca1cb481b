package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/responses"
)

// RegisterHealthRoutes registers the provider health route.
func RegisterHealthRoutes(router gin.IRoutes, handler *handlers.HealthHandler) {
	router.GET("/health", healthCheck(handler))
}

// healthCheck godoc
// @Summary      Health check
// @Description  Reports whether the AI provider is reachable.
// @Tags         Health
// @Produce      json
// @Success      200 {object} responses.HealthResponse
// @Router       /health [get]
func healthCheck(handler *handlers.HealthHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.Check(c.Request.Context()))
	}
}

// RegisterIndexRoutes registers the API index route.
func RegisterIndexRoutes(router gin.IRoutes, cfg *config.Config) {
	index := responses.IndexResponse{
		Message:     cfg.ProjectName + " API",
		Version:     cfg.Version,
		DocsURL:     "/swagger/index.html",
		HealthCheck: cfg.APIPrefix + "/health",
		Endpoints: map[string]string{
			"image_analysis": cfg.APIPrefix + "/images/analyze",
			"text_analysis":  cfg.APIPrefix + "/text/analyze",
			"chat":           cfg.APIPrefix + "/chat/message",
			"conversations":  cfg.APIPrefix + "/chat/conversations",
		},
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, index)
	})
}
