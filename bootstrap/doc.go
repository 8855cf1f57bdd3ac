// Package bootstrap runs pipekit commands: it applies config defaults,
// validates the config, initializes logging and the OTLP exporters the config
// enables, runs a task with signal-driven cancellation, and shuts everything
// down again.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    return run(ctx, app.Logger)
//	})
package bootstrap
