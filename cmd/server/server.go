// @title           Vision Chat API
// @version         1.0.0
// @description     Gateway for image, text and chat requests to a generative AI provider.
// @description     Conversations are kept in memory for the lifetime of the process.

// @contact.name   Jan Team
// @contact.url    https://github.com/janhq/jan-server

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/v1

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/config"
	"jan-server/services/vision-chat-api/internal/domain"
	"jan-server/services/vision-chat-api/internal/infrastructure"
	"jan-server/services/vision-chat-api/internal/infrastructure/logger"
	"jan-server/services/vision-chat-api/internal/infrastructure/observability"
	"jan-server/services/vision-chat-api/internal/infrastructure/store"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/routes"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	reporter   *store.Reporter
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, reporter *store.Reporter, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		reporter:   reporter,
		log:        log,
	}
}

// Start runs the application.
func (a *Application) Start(ctx context.Context) error {
	a.reporter.Start(ctx)

	// Run HTTP server (blocks until context cancelled)
	err := a.httpServer.Run(ctx)

	a.reporter.Stop()

	return err
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Initialize AI provider and completion client
	provider, err := infrastructure.ProvideAIProvider(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize AI provider")
	}
	completionClient := domain.ProvideCompletionClient(provider, log)

	// Initialize conversation store (one per process, mutex-based)
	conversationStore := infrastructure.ProvideConversationStore(log)
	reporter := infrastructure.ProvideStoreReporter(conversationStore, cfg, log)

	// Initialize domain services
	conversationService := domain.ProvideConversationService(conversationStore, completionClient, log)
	textService := domain.ProvideTextService(completionClient, log)
	imageService := domain.ProvideImageService(completionClient, cfg, log)
	healthService := domain.ProvideHealthService(completionClient, cfg, log)

	// Initialize HTTP server
	handlerProvider := handlers.NewProviderFromServices(
		conversationService,
		textService,
		imageService,
		domain.ProvideImageRules(cfg),
		healthService,
	)
	httpServer := httpserver.New(cfg, log, routes.NewProvider(handlerProvider, cfg))

	app := NewApplication(httpServer, reporter, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Str("ai_provider", provider.Name()).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
