package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	adoptionactivities "github.com/Apurer/go-gin-shelter-api/internal/platform/temporal/activities/adoption"
)

// RunDecisionSequence executes the activity that resolves one adoption request.
func RunDecisionSequence(ctx workflow.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("decision sequence started", "animals", input.Animals)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    3,
		},
	}

	var result adoptiontypes.DecisionResult
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), adoptionactivities.DecideActivityName, input).Get(ctx, &result)
	if err != nil {
		logger.Error("decision sequence failed", "animals", input.Animals, "error", err)
		return nil, err
	}
	logger.Info("decision sequence completed", "decisions", len(result.Decisions))
	return &result, nil
}
