package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	shelterserver "github.com/Apurer/go-gin-shelter-api/go"

	adoptionobs "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/observability"
	adoptionworkflows "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/workflows"
	adoptionapp "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	platformobservability "github.com/Apurer/go-gin-shelter-api/internal/platform/observability"
)

const shutdownTimeout = 5 * time.Second

// Run boots the shelter adoption HTTP API with observability, catalog storage, and workflows wired.
// It returns when ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	catalogs, cleanupCatalog := BuildCatalogRepository(ctx, cfg, logger)
	defer cleanupCatalog()
	adoptionService := NewAdoptionService(catalogs, instruments)

	var decisionWorkflows adoptionports.WorkflowOrchestrator = adoptionworkflows.NewInlineDecisionWorkflows(adoptionService)
	if temporalClient, err := DialTemporal(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, deciding inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		decisionWorkflows = adoptionworkflows.NewTemporalDecisionWorkflows(temporalClient, cfg.TaskQueue)
		logger.Info("Temporal workflows enabled",
			slog.String("namespace", cfg.TemporalNamespace),
			slog.String("taskQueue", cfg.TaskQueue),
		)
	}

	handlers := shelterserver.ApiHandleFunctions{
		AdoptionAPI: shelterserver.NewAdoptionAPI(adoptionService, decisionWorkflows),
		CatalogAPI:  shelterserver.NewCatalogAPI(adoptionService),
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(cfg.ServiceName))
	router := shelterserver.NewRouterWithGinEngine(engine, handlers)

	return serve(ctx, &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}, logger)
}

// NewAdoptionService builds the adoption application service decorated with observability.
func NewAdoptionService(catalogs adoptionports.CatalogRepository, instruments *platformobservability.Instruments) adoptionports.Service {
	if instruments == nil {
		instruments = platformobservability.Noop()
	}
	return adoptionobs.New(
		adoptionapp.NewService(catalogs),
		adoptionobs.WithLogger(instruments.Logger),
		adoptionobs.WithTracer(instruments.Tracer("internal.adoption.application")),
		adoptionobs.WithMeter(instruments.Meter("internal.adoption.application")),
	)
}

func serve(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("shelter adoption API listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("shelter adoption API exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down shelter adoption API")
		return server.Shutdown(shutdownCtx)
	}
}
