package v1

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/handlers"
)

// Routes holds the v1 route configuration.
type Routes struct {
	handlers *handlers.Provider
	cfg      *config.Config
}

// NewRoutes creates a new v1 routes instance.
func NewRoutes(handlerProvider *handlers.Provider, cfg *config.Config) *Routes {
	return &Routes{
		handlers: handlerProvider,
		cfg:      cfg,
	}
}

// Register registers all v1 routes under the configured API prefix.
func (r *Routes) Register(engine *gin.Engine) {
	v1 := engine.Group(r.cfg.APIPrefix)
	RegisterIndexRoutes(v1, r.cfg)
	RegisterHealthRoutes(v1, r.handlers.Health)
	RegisterChatRoutes(v1, r.handlers.Chat)
	RegisterImageRoutes(v1, r.handlers.Analysis)
	RegisterTextRoutes(v1, r.handlers.Analysis)
}
