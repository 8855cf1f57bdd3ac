package pipe

import (
	"context"
	"time"

	"github.com/kbukum/pipekit/observability"
)

// WithMetrics returns a Middleware that records call count, duration and
// errors for the stage.
func WithMetrics[I, O any](metrics *observability.Metrics, stage string) Middleware[I, O] {
	return func(inner Transform[I, O]) Transform[I, O] {
		return func(ctx context.Context, in I) (O, error) {
			start := time.Now()
			out, err := inner(ctx, in)
			duration := time.Since(start)

			status := "ok"
			if err != nil {
				status = "error"
				metrics.RecordError(ctx, stage)
			}
			metrics.RecordStage(ctx, stage, status, duration)

			return out, err
		}
	}
}
