package capacity

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"capplan/pkg/logger"
)

var tracer = otel.Tracer("capplan/capacity")

// Computation names used in spans, logs and metrics.
const (
	OpRequirements    = "requirements"
	OpBalance         = "balance"
	OpRecommendations = "recommendations"
)

// Metrics receives engine observations.
type Metrics interface {
	RecordGap(reason string)
	ObserveComputation(op string, elapsed time.Duration, rows int, err error)
}

// NopMetrics discards all observations.
type NopMetrics struct{}

func (NopMetrics) RecordGap(string) {}
func (NopMetrics) ObserveComputation(string, time.Duration, int, error) {}

// Service exposes the capacity computations.
type Service struct {
	calc    *Calculator
	engine  *Engine
	metrics Metrics
}

// NewService wires a calculator and engine over src.
func NewService(src Source, metrics Metrics) *Service {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	calc := NewCalculator(src, metrics)
	return &Service{
		calc:    calc,
		engine:  NewEngine(calc),
		metrics: metrics,
	}
}

// ComputeRequirements returns requirement rows for r.
func (s *Service) ComputeRequirements(ctx context.Context, r DateRange) ([]RequirementRow, error) {
	var rows []RequirementRow
	err := s.observe(ctx, OpRequirements, r, func(ctx context.Context) (int, error) {
		var err error
		rows, err = s.calc.Compute(ctx, r)
		return len(rows), err
	})
	if err != nil {
		return nil, fmt.Errorf("compute requirements: %w", err)
	}
	return rows, nil
}

// ComputeBalance returns balance rows for r.
func (s *Service) ComputeBalance(ctx context.Context, r DateRange) ([]BalanceRow, error) {
	var rows []BalanceRow
	err := s.observe(ctx, OpBalance, r, func(ctx context.Context) (int, error) {
		var err error
		rows, err = s.engine.Compute(ctx, r)
		return len(rows), err
	})
	if err != nil {
		return nil, fmt.Errorf("compute balance: %w", err)
	}
	return rows, nil
}

// ComputeRecommendations returns recommendations for the balance over r.
func (s *Service) ComputeRecommendations(ctx context.Context, r DateRange) ([]Recommendation, error) {
	var recs []Recommendation
	err := s.observe(ctx, OpRecommendations, r, func(ctx context.Context) (int, error) {
		rows, err := s.engine.Compute(ctx, r)
		if err != nil {
			return 0, err
		}
		recs = Generate(rows)
		return len(recs), nil
	})
	if err != nil {
		return nil, fmt.Errorf("compute recommendations: %w", err)
	}
	return recs, nil
}

func (s *Service) observe(ctx context.Context, op string, r DateRange, fn func(ctx context.Context) (int, error)) error {
	start, end := r.Labels()
	ctx, span := tracer.Start(ctx, "capacity."+op,
		trace.WithAttributes(
			attribute.String("range.start", start),
			attribute.String("range.end", end),
		))
	defer span.End()

	began := time.Now()
	n, err := fn(ctx)
	elapsed := time.Since(began)
	s.metrics.ObserveComputation(op, elapsed, n, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("rows", n))
	logger.Debug(ctx, "capacity computed",
		"operation", op,
		"start", start,
		"end", end,
		"rows", n,
		"duration_ms", elapsed.Milliseconds(),
	)
	return nil
}
