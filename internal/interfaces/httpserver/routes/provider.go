package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/handlers"
	v1 "jan-server/services/vision-chat-api/internal/interfaces/httpserver/routes/v1"
)

// Provider holds all route providers.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider, cfg *config.Config) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider, cfg),
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.V1.Register(engine)
}

// RouteProvider provides the route set for wire.
var RouteProvider = wire.NewSet(NewProvider)
