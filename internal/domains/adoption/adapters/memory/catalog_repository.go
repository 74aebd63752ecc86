package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	"github.com/Apurer/go-gin-shelter-api/internal/shared/projection"
)

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository serves a fixed catalog held in memory, used for demos/tests.
type CatalogRepository struct {
	mu       sync.RWMutex
	catalog  *domain.Catalog
	metadata projection.Metadata
}

// NewCatalogRepository serves the shelter's default catalog.
func NewCatalogRepository() *CatalogRepository {
	return NewCatalogRepositoryWith(domain.DefaultCatalog())
}

// NewCatalogRepositoryWith serves the provided catalog. A nil catalog makes Load fail.
func NewCatalogRepositoryWith(catalog *domain.Catalog) *CatalogRepository {
	timestamp := time.Now()
	return &CatalogRepository{
		catalog:  catalog,
		metadata: projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp},
	}
}

// WithClock restamps the catalog metadata from the given time source for deterministic testing.
func (r *CatalogRepository) WithClock(now func() time.Time) {
	if now == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	timestamp := now()
	r.metadata = projection.Metadata{CreatedAt: timestamp, UpdatedAt: timestamp}
}

// Load returns the catalog together with the time it was installed.
func (r *CatalogRepository) Load(_ context.Context) (*projection.Projection[*domain.Catalog], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.catalog == nil {
		return nil, ports.ErrCatalogUnavailable
	}
	return &projection.Projection[*domain.Catalog]{Entity: r.catalog, Metadata: r.metadata}, nil
}
