package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

func TestCatalogRepository_LoadDefault(t *testing.T) {
	repo := NewCatalogRepository()
	fixed := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return fixed })

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, loaded.Entity.Len())
	require.Equal(t, fixed, loaded.Metadata.UpdatedAt)
	require.Equal(t, fixed, loaded.Metadata.CreatedAt)
}

func TestCatalogRepository_NilCatalogUnavailable(t *testing.T) {
	repo := NewCatalogRepositoryWith(nil)
	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ports.ErrCatalogUnavailable)
}
