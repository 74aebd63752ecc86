package adoption

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

const (
	// DecideActivityName runs one decision request against the current catalog.
	DecideActivityName = "adoption.activities.Decide"
)

// Activities groups activities that operate on the adoption bounded context.
type Activities struct {
	service adoptionports.Service
}

// NewActivities wires the adoption service into the Temporal activities bundle.
func NewActivities(service adoptionports.Service) *Activities {
	return &Activities{service: service}
}

// Decide runs the decision engine. Rejections are permanent and are returned as
// non-retryable application errors typed with the rejection kind.
func (a *Activities) Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("adoption decide activity not initialized")
		return nil, errors.New("adoption decide activity not initialized")
	}
	logger.Info("Decide activity started", "animals", input.Animals)
	result, err := a.service.Decide(ctx, input)
	if err != nil {
		var rejection *domain.RejectionError
		if errors.As(err, &rejection) {
			logger.Info("Decide activity rejected request", "kind", string(rejection.Kind), "detail", rejection.Detail)
			return nil, temporal.NewNonRetryableApplicationError(rejection.Detail, string(rejection.Kind), nil)
		}
		logger.Error("Decide activity failed", "animals", input.Animals, "error", err)
		return nil, err
	}
	logger.Info("Decide activity completed", "decisions", len(result.Decisions))
	return result, nil
}

// RejectionFromError recovers a domain rejection from an error returned by a workflow
// or activity. Errors that do not carry a rejection kind are reported as false.
func RejectionFromError(err error) (*domain.RejectionError, bool) {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return nil, false
	}
	switch kind := domain.RejectionKind(appErr.Type()); kind {
	case domain.KindInvalidAnimal, domain.KindInvalidItem:
		return &domain.RejectionError{Kind: kind, Detail: appErr.Message()}, true
	default:
		return nil, false
	}
}
