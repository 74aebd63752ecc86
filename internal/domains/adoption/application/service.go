package application

import (
	"context"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

// Service orchestrates the adoption bounded context use cases.
type Service struct {
	catalogs ports.CatalogRepository
}

// NewService wires the adoption service with its catalog source.
func NewService(catalogs ports.CatalogRepository) *Service {
	return &Service{catalogs: catalogs}
}

// Decide parses the raw lists and runs the decision engine against the current catalog.
func (s *Service) Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	catalog, err := s.catalogs.Load(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	engine, err := domain.NewEngine(catalog.Entity)
	if err != nil {
		return nil, mapError(err)
	}
	outcome, err := engine.Decide(domain.Request{
		FirstInventory:  domain.Inventory(SplitList(input.FirstAdopterItems)),
		SecondInventory: domain.Inventory(SplitList(input.SecondAdopterItems)),
		Animals:         SplitList(input.Animals),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return adoptiontypes.NewDecisionResult(outcome, catalog.Metadata.UpdatedAt), nil
}

// ListAnimals exposes the catalog entries in catalog order.
func (s *Service) ListAnimals(ctx context.Context) (*adoptiontypes.CatalogView, error) {
	catalog, err := s.catalogs.Load(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if catalog.Entity == nil {
		return nil, ports.ErrCatalogUnavailable
	}
	return &adoptiontypes.CatalogView{
		Animals:  catalog.Entity.Animals(),
		Metadata: adoptiontypes.CatalogMetadata{UpdatedAt: catalog.Metadata.UpdatedAt},
	}, nil
}

var _ ports.Service = (*Service)(nil)
