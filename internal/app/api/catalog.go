package api

import (
	"context"
	"log/slog"

	adoptionmemory "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/memory"
	adoptionpostgres "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/persistence/postgres"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	"github.com/Apurer/go-gin-shelter-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-gin-shelter-api/internal/platform/postgres"
)

// BuildCatalogRepository selects the catalog source. Postgres is used when reachable,
// after migrating and optionally seeding the default catalog; otherwise the built-in
// catalog is served from memory.
func BuildCatalogRepository(ctx context.Context, cfg Config, logger *slog.Logger) (adoptionports.CatalogRepository, func()) {
	db, cleanup := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return adoptionmemory.NewCatalogRepository(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to migrate catalog schema, falling back to in-memory catalog", slog.String("error", err.Error()))
		cleanup()
		return adoptionmemory.NewCatalogRepository(), func() {}
	}
	if cfg.SeedCatalog {
		if err := migrations.SeedCatalog(ctx, db, domain.DefaultAnimals()); err != nil {
			logger.Warn("failed to seed default catalog", slog.String("error", err.Error()))
		}
	}
	logger.Info("catalog repository configured with postgres", slog.Bool("seeded", cfg.SeedCatalog))
	return adoptionpostgres.NewCatalogRepository(db), cleanup
}
