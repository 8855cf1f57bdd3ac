package pipe

import (
	"context"
	"time"

	"github.com/kbukum/pipekit/logger"
)

// WithLogging returns a Middleware that logs each call of the stage.
// Successful calls are logged at debug level, failures at error level.
func WithLogging[I, O any](log *logger.Logger, stage string) Middleware[I, O] {
	return func(inner Transform[I, O]) Transform[I, O] {
		return func(ctx context.Context, in I) (O, error) {
			start := time.Now()
			out, err := inner(ctx, in)

			fields := logger.DurationFields("apply", time.Since(start))
			fields[logger.FieldStage] = stage
			if err != nil {
				fields[logger.FieldError] = err.Error()
				log.Error("stage failed", fields)
			} else {
				log.Debug("stage ok", fields)
			}
			return out, err
		}
	}
}
