//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adoptionpostgres "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/persistence/postgres"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	"github.com/Apurer/go-gin-shelter-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("shelter_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestCatalogRepository_EmptyTableUnavailable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := adoptionpostgres.NewCatalogRepository(db)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrCatalogUnavailable)
}

func TestCatalogRepository_LoadSeededCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, migrations.SeedCatalog(ctx, db, domain.DefaultAnimals()))
	// Seeding twice keeps the first rows.
	require.NoError(t, migrations.SeedCatalog(ctx, db, domain.DefaultAnimals()))

	repo := adoptionpostgres.NewCatalogRepository(db)
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Entity.Len())
	assert.False(t, loaded.Metadata.UpdatedAt.IsZero())

	var got []string
	for _, animal := range loaded.Entity.Animals() {
		got = append(got, animal.Name)
	}
	assert.Equal(t, []string{"Rex", "Mimi", "Fofo", "Zero", "Bola", "Bebe", "Loco"}, got)

	loco, ok := loaded.Entity.Lookup("Loco")
	require.True(t, ok)
	assert.True(t, loco.NeedsCompanion)
	assert.Equal(t, domain.SpeciesTortoise, loco.Species)
	assert.Equal(t, []string{"SKATE", "RATO"}, loco.FavoriteItems)
}

func TestCatalogRepository_DecidesWithStoredCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()
	ctx := context.Background()
	require.NoError(t, migrations.SeedCatalog(ctx, db, domain.DefaultAnimals()))

	loaded, err := adoptionpostgres.NewCatalogRepository(db).Load(ctx)
	require.NoError(t, err)
	engine, err := domain.NewEngine(loaded.Entity)
	require.NoError(t, err)

	outcome, err := engine.Decide(domain.Request{
		FirstInventory: domain.Inventory{"RATO", "BOLA", "SKATE"},
		Animals:        []string{"Rex", "Loco"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Loco - person 1", "Rex - person 1"}, outcome.Lines())
}

func TestCatalogRepository_RejectsCorruptRows(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, db.Exec(
		`INSERT INTO shelter_animals (name, species, favorite_items, needs_companion, position, created_at, updated_at)
		 VALUES ('Polly', 'parrot', '{BOLA}', false, 0, NOW(), NOW())`,
	).Error)

	_, err := adoptionpostgres.NewCatalogRepository(db).Load(ctx)
	assert.ErrorIs(t, err, ports.ErrCatalogUnavailable)
	assert.ErrorIs(t, err, domain.ErrUnknownSpecies)
}
