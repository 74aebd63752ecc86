package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	adoptionworkflows "github.com/Apurer/go-gin-shelter-api/internal/durable/temporal/workflows/adoption"
	adoptionactivities "github.com/Apurer/go-gin-shelter-api/internal/platform/temporal/activities/adoption"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalDecisionWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineDecisionWorkflows)(nil)
)

// TemporalDecisionWorkflows runs decision requests on a Temporal cluster.
type TemporalDecisionWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalDecisionWorkflows wires a Temporal client into the orchestrator.
// An empty task queue selects adoptionworkflows.DecisionTaskQueue.
func NewTemporalDecisionWorkflows(c client.Client, taskQueue string) *TemporalDecisionWorkflows {
	if strings.TrimSpace(taskQueue) == "" {
		taskQueue = adoptionworkflows.DecisionTaskQueue
	}
	return &TemporalDecisionWorkflows{client: c, taskQueue: taskQueue}
}

// Decide starts the decision workflow and waits for its result.
func (o *TemporalDecisionWorkflows) Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal decision workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildDecisionWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		adoptionworkflows.DecisionWorkflowName,
		adoptionworkflows.DecisionWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		// A retried request within the same trace joins the run already in flight.
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var result adoptiontypes.DecisionResult
	if err := run.Get(ctx, &result); err != nil {
		if rejection, ok := adoptionactivities.RejectionFromError(err); ok {
			return nil, rejection
		}
		return nil, err
	}
	return &result, nil
}

// InlineDecisionWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineDecisionWorkflows struct {
	service ports.Service
}

// NewInlineDecisionWorkflows wraps the adoption service for synchronous execution.
func NewInlineDecisionWorkflows(service ports.Service) *InlineDecisionWorkflows {
	return &InlineDecisionWorkflows{service: service}
}

// Decide delegates to the application service without durable orchestration.
func (o *InlineDecisionWorkflows) Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline decision workflows not configured")
	}
	return o.service.Decide(ctx, input)
}

func buildDecisionWorkflowID(input adoptiontypes.DecideInput, traceComponent string) string {
	return fmt.Sprintf("adoption-decision-%s-%s", hashDecisionInput(input), traceComponent)
}

func hashDecisionInput(input adoptiontypes.DecideInput) string {
	sum := sha256.Sum256([]byte(input.FirstAdopterItems + "\x00" + input.SecondAdopterItems + "\x00" + input.Animals))
	// First 16 hex chars keep workflow IDs readable.
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
