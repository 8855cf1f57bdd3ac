// Package observability provides OpenTelemetry tracing and metrics integration
// for pipekit stages.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("pipesdemo"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "caesar.encrypt")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("pipesdemo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("pipesdemo"))
//	metrics.RecordStage(ctx, "shift", "ok", duration)
//
// The pipe package exposes both as middlewares (pipe.WithTracing,
// pipe.WithMetrics), so instrumented stages compose like any other
// transformation.
package observability
