package ports

import (
	"context"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
)

// WorkflowOrchestrator runs decision requests either durably or inline.
type WorkflowOrchestrator interface {
	Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error)
}
