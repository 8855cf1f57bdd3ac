// Command pipesdemo runs the pipekit examples: a Collatz pipe, a quadratic
// equation splitter, a Caesar cipher pipeline and a student statistics flow.
//
// Usage:
//
//	pipesdemo [--example all|pipe|splitter|pipeline|flow] [--config config.yml] [flags]
//
// Every setting can also come from config.yml or PIPESDEMO_* environment
// variables, e.g. PIPESDEMO_CAESAR_KEY=3.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/bootstrap"
	"github.com/kbukum/pipekit/config"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/version"
)

const serviceName = "pipesdemo"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pipesdemo:", err)
		os.Exit(1)
	}
}

// newFlagSets returns the command line and, sharing its flags, the subset
// that maps onto configuration keys.
func newFlagSets() (cmd, settings *pflag.FlagSet) {
	settings = pflag.NewFlagSet("settings", pflag.ContinueOnError)
	settings.String("example", "all", "example to run: all, pipe, splitter, pipeline, flow")
	settings.String("logging.level", "", "log level")
	settings.String("logging.output", "stderr", "log output: stdout or stderr")
	settings.Int("collatz.start", 12, "Collatz start value")
	settings.Int("collatz.steps", 9, "number of Collatz steps")
	settings.Float64("quadratic.a", 1, "coefficient a")
	settings.Float64("quadratic.b", -1, "coefficient b")
	settings.Float64("quadratic.c", -6, "coefficient c")
	settings.String("caesar.text", "Hello", "text to encrypt")
	settings.Int("caesar.key", 5, "Caesar shift")

	cmd = pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	cmd.String("config", "", "path to config.yml")
	cmd.String("env-file", "", "path to a .env file")
	cmd.Bool("version", false, "print version and exit")
	cmd.AddFlagSet(settings)
	return cmd, settings
}

// run parses args, loads the configuration and runs the selected examples,
// writing their output to out.
func run(ctx context.Context, args []string, out io.Writer, opts ...bootstrap.Option) error {
	fs, settings := newFlagSets()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	info := version.Get()
	if showVersion, _ := fs.GetBool("version"); showVersion {
		fmt.Fprintf(out, "%s %s\n", serviceName, info)
		return nil
	}

	configFile, _ := fs.GetString("config")
	envFile, _ := fs.GetString("env-file")
	var cfg DemoConfig
	err := config.LoadConfig(serviceName, &cfg,
		config.WithConfigFile(configFile),
		config.WithEnvFile(envFile),
		config.WithEnvPrefix(serviceName),
		config.WithFlags(settings),
	)
	if err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = info.Short()
	}

	app, err := bootstrap.NewApp(&cfg, opts...)
	if err != nil {
		return err
	}
	app.Logger.Debug("build", info.Fields())

	return app.RunTask(ctx, func(ctx context.Context) error {
		metrics, err := observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			return err
		}
		r := &runner{
			out:     out,
			log:     app.Logger.WithFields(logger.Fields(logger.FieldComponent, "examples")),
			metrics: metrics,
		}
		return r.run(ctx, app.Cfg)
	})
}
