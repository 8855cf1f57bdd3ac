package pipe

import (
	"context"

	"github.com/kbukum/pipekit/observability"
)

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each call. The span name is "pipekit.stage.{stage}".
func WithTracing[I, O any](stage string) Middleware[I, O] {
	return func(inner Transform[I, O]) Transform[I, O] {
		return func(ctx context.Context, in I) (O, error) {
			ctx, span := observability.StartSpan(ctx, observability.SpanStage+"."+stage)
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrStageName, stage)

			out, err := inner(ctx, in)
			if err != nil {
				observability.SetSpanError(ctx, err)
				observability.SetSpanAttribute(ctx, observability.AttrStatus, "error")
			} else {
				observability.SetSpanAttribute(ctx, observability.AttrStatus, "ok")
			}
			return out, err
		}
	}
}
