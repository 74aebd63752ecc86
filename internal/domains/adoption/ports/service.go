package ports

import (
	"context"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
)

// Service defines the adoption use cases exposed to adapters (inbound/driving port).
type Service interface {
	Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error)
	ListAnimals(ctx context.Context) (*adoptiontypes.CatalogView, error)
}
