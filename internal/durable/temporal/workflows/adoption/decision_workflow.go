package adoption

import (
	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/durable/temporal/sequences"
	"go.temporal.io/sdk/workflow"
)

const (
	// DecisionWorkflowName is the public identifier for registering the workflow.
	DecisionWorkflowName = "adoption.workflows.Decision"
	// DecisionTaskQueue is the default queue consumed by the worker processing decisions.
	DecisionTaskQueue = "ADOPTION_DECISIONS"
)

// DecisionWorkflowInput captures the raw request plus the caller's trace id.
type DecisionWorkflowInput struct {
	Command adoptiontypes.DecideInput
	TraceID string
}

// DecisionWorkflow runs one decision request durably.
func DecisionWorkflow(ctx workflow.Context, input DecisionWorkflowInput) (*adoptiontypes.DecisionResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("DecisionWorkflow started", withTraceID(input.TraceID, "animals", input.Command.Animals)...)
	result, err := sequences.RunDecisionSequence(ctx, input.Command)
	if err != nil {
		logger.Error("DecisionWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("DecisionWorkflow completed", withTraceID(input.TraceID, "decisions", len(result.Decisions))...)
	return result, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
