package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/shared/projection"
)

// ErrCatalogUnavailable signals the catalog could not be loaded or holds no animals.
var ErrCatalogUnavailable = errors.New("animal catalog unavailable")

// CatalogRepository loads the read-only animal catalog.
type CatalogRepository interface {
	Load(ctx context.Context) (*projection.Projection[*domain.Catalog], error)
}
