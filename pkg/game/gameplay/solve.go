package gameplay

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gridpath/pkg/engine/search"
	"gridpath/pkg/game/messages"
	"gridpath/pkg/game/state"
	"gridpath/pkg/game/telemetry"
)

// Solve clears the previous overlay and searches from the session source to its
// destination. The session records the overlay first, then metrics, then obs in order.
func Solve(ctx context.Context, s *state.Session, obs ...search.Observer) search.Outcome {
	_, span := telemetry.Tracer().Start(ctx, "gameplay.Solve",
		trace.WithAttributes(
			attribute.String("session", s.ID.String()),
			attribute.String("source", s.Source.String()),
			attribute.String("destination", s.Destination.String()),
			attribute.Int("rows", s.Grid.Rows()),
			attribute.Int("cols", s.Grid.Cols()),
		),
	)
	defer span.End()

	s.ClearOverlay()

	observers := search.Observers{s, telemetry.Observer{}}
	observers = append(observers, obs...)

	start := time.Now()
	out := search.Search(s.Grid, s.Source, s.Destination, observers, search.WithLogger(slog.Default()))
	duration := time.Since(start)

	telemetry.ObserveDuration(out.Status, duration)
	s.Outcome = out
	s.Solves++

	span.SetAttributes(
		attribute.String("status", out.Status.String()),
		attribute.Int("expanded", out.Expanded),
		attribute.Int("relaxed", out.Relaxed),
		attribute.Int64("duration_us", duration.Microseconds()),
	)
	if err := out.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, out.Status.String())
	} else {
		span.SetAttributes(attribute.Int("steps", out.Steps()), attribute.Float64("cost", out.Cost))
		span.SetStatus(codes.Ok, "path found")
	}

	s.AddMessage(messages.Current().Outcome(out))
	if out.Found() {
		logMessage(s, messages.PathCost, out.Steps(), out.Cost, out.Expanded)
	}

	return out
}
