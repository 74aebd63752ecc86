package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-shelter-api/internal/app/api"
	adoptionworkflows "github.com/Apurer/go-gin-shelter-api/internal/durable/temporal/workflows/adoption"
	platformobservability "github.com/Apurer/go-gin-shelter-api/internal/platform/observability"
	adoptionactivities "github.com/Apurer/go-gin-shelter-api/internal/platform/temporal/activities/adoption"
)

func main() {
	ctx := context.Background()
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	serviceName := cfg.ServiceName + "-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	catalogs, cleanupCatalog := api.BuildCatalogRepository(ctx, cfg, logger)
	defer cleanupCatalog()
	decideActivities := adoptionactivities.NewActivities(api.NewAdoptionService(catalogs, instruments))

	temporalClient, err := api.DialTemporal(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(adoptionworkflows.DecisionWorkflow, workflow.RegisterOptions{Name: adoptionworkflows.DecisionWorkflowName})
	w.RegisterActivityWithOptions(decideActivities.Decide, activity.RegisterOptions{Name: adoptionactivities.DecideActivityName})

	logger.Info("worker listening", slog.String("taskQueue", cfg.TaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
