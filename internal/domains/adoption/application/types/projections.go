package types

import (
	"time"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
)

// CatalogMetadata describes the catalog version a result was computed against.
type CatalogMetadata struct {
	UpdatedAt time.Time
}

// DecisionResult is the successful variant of a decision request.
type DecisionResult struct {
	Decisions []domain.Decision
	Catalog   CatalogMetadata
}

// NewDecisionResult wraps an engine outcome with catalog metadata.
func NewDecisionResult(outcome domain.Outcome, catalogUpdatedAt time.Time) *DecisionResult {
	return &DecisionResult{
		Decisions: append([]domain.Decision{}, outcome.Decisions...),
		Catalog:   CatalogMetadata{UpdatedAt: catalogUpdatedAt},
	}
}

// Lines renders the decisions as "<animal> - <destination>".
func (r *DecisionResult) Lines() []string {
	if r == nil {
		return nil
	}
	return domain.Outcome{Decisions: r.Decisions}.Lines()
}

// CatalogView lists the catalog entries in catalog order.
type CatalogView struct {
	Animals  []domain.Animal
	Metadata CatalogMetadata
}
