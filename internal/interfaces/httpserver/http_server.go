package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "jan-server/services/vision-chat-api/docs/swagger"
	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/middlewares"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/routes"
)

const readHeaderTimeout = 10 * time.Second

// HTTPServer serves the public API plus probe, metrics and docs routes.
type HTTPServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
	ready  atomic.Bool
}

// New builds the gin engine. Middleware order matters: the request ID must exist
// before tracing and logging read it.
func New(cfg *config.Config, log zerolog.Logger, routeProvider *routes.Provider) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &HTTPServer{
		cfg:    cfg,
		engine: gin.New(),
		log:    log.With().Str("component", "http-server").Logger(),
	}

	s.engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.Tracing(cfg.ServiceName),
		middlewares.Metrics(),
		middlewares.CORS(cfg.CORSOrigins),
		middlewares.RequestLoggerWithLogger(log),
	)

	s.registerCoreRoutes()
	routeProvider.Register(s.engine)
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Ready reports whether the server is accepting traffic.
func (s *HTTPServer) Ready() bool {
	return s.ready.Load()
}

// Run listens on the configured address and blocks until ctx is cancelled or the
// listener fails. On cancellation in-flight requests get ShutdownTimeout to finish.
func (s *HTTPServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", listener.Addr().String()).Msg("HTTP server listening")
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	s.ready.Store(true)
	defer s.ready.Store(false)

	select {
	case err := <-errCh:
		if err != nil {
			s.log.Error().Err(err).Msg("HTTP server error")
		}
		return err
	case <-ctx.Done():
	}

	s.ready.Store(false)
	s.log.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *HTTPServer) registerCoreRoutes() {
	cfg := s.cfg
	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to " + cfg.ProjectName,
			"service": cfg.ServiceName,
			"version": cfg.Version,
			"docs":    "/swagger/index.html",
			"api":     cfg.APIPrefix,
		})
	})

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Ready only while Run is serving.
	s.engine.GET("/readyz", func(c *gin.Context) {
		if !s.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
