package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

const tracerName = "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/observability/service"

// Service decorates the adoption application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Decide runs a decision request with instrumentation.
func (s *Service) Decide(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	ctx, span := s.startSpan(ctx, "Service.Decide", attribute.String("adoption.animals.requested", input.Animals))
	defer span.End()

	s.logInfo(ctx, "deciding adoptions", slog.String("animals", input.Animals))
	result, err := s.inner.Decide(ctx, input)
	if err != nil {
		var rejection *domain.RejectionError
		if errors.As(err, &rejection) {
			s.metrics.recordRejected(ctx, rejection.Kind)
			span.SetAttributes(attribute.String("adoption.rejection.kind", string(rejection.Kind)))
			span.SetStatus(codes.Error, string(rejection.Kind))
			s.logInfo(ctx, "adoption request rejected",
				slog.String("kind", string(rejection.Kind)),
				slog.String("detail", rejection.Detail),
			)
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to decide adoptions", slog.String("animals", input.Animals))
	}
	adopted := 0
	for _, decision := range result.Decisions {
		s.metrics.recordDecision(ctx, decision.Destination)
		if decision.Destination.Adopted() {
			adopted++
		}
	}
	span.SetAttributes(
		attribute.Int("adoption.decisions.count", len(result.Decisions)),
		attribute.Int("adoption.adopted.count", adopted),
	)
	s.logInfo(ctx, "adoptions decided", slog.Int("count", len(result.Decisions)), slog.Int("adopted", adopted))
	return result, nil
}

// ListAnimals exposes the catalog with instrumentation.
func (s *Service) ListAnimals(ctx context.Context) (*adoptiontypes.CatalogView, error) {
	ctx, span := s.startSpan(ctx, "Service.ListAnimals")
	defer span.End()

	result, err := s.inner.ListAnimals(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list animals")
	}
	span.SetAttributes(attribute.Int("adoption.catalog.count", len(result.Animals)))
	s.logInfo(ctx, "listed animals", slog.Int("count", len(result.Animals)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	decisions  metric.Int64Counter
	rejections metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	decisions, _ := m.Int64Counter("adoption.decisions.total", metric.WithDescription("Number of animals decided, by destination"))
	rejections, _ := m.Int64Counter("adoption.rejections.total", metric.WithDescription("Number of rejected decision requests, by kind"))
	return serviceMetrics{decisions: decisions, rejections: rejections}
}

func (m serviceMetrics) recordDecision(ctx context.Context, destination domain.Destination) {
	addCounter(ctx, m.decisions, 1, attribute.String("destination", destination.Label()))
}

func (m serviceMetrics) recordRejected(ctx context.Context, kind domain.RejectionKind) {
	addCounter(ctx, m.rejections, 1, attribute.String("kind", string(kind)))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
