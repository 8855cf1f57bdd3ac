package bootstrap

import (
	"context"

	"github.com/kbukum/pipekit/config"
	"github.com/kbukum/pipekit/observability"
)

// telemetryHook starts the OTLP exporters enabled in cfg and registers their
// shutdown as OnStop hooks.
func (a *App[C]) telemetryHook(cfg *config.ServiceConfig) Hook {
	return func(ctx context.Context) error {
		if cfg.Tracing.Enabled {
			tp, err := observability.InitTracer(ctx, cfg.TracerConfig())
			if err != nil {
				return err
			}
			a.OnStop(tp.Shutdown)
		}
		if cfg.Metrics.Enabled {
			mp, err := observability.InitMeter(ctx, cfg.MeterConfig())
			if err != nil {
				return err
			}
			a.OnStop(mp.Shutdown)
		}
		return nil
	}
}
