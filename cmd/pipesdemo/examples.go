package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/pipe"
	"github.com/kbukum/pipekit/pipeline"
)

// runner executes the examples, writing their results to out.
type runner struct {
	out     io.Writer
	log     *logger.Logger
	metrics *observability.Metrics
}

// stage instruments t with tracing, metrics and logging under name.
func stage[I, O any](r *runner, name string, t pipe.Transform[I, O]) pipe.Transform[I, O] {
	return pipe.Use(t,
		pipe.WithTracing[I, O](name),
		pipe.WithMetrics[I, O](r.metrics, name),
		pipe.WithLogging[I, O](r.log, name),
	)
}

func (r *runner) run(ctx context.Context, cfg *DemoConfig) error {
	examples := []struct {
		name string
		run  func(context.Context, *DemoConfig) error
	}{
		{"pipe", r.collatz},
		{"splitter", r.quadratic},
		{"pipeline", r.caesar},
		{"flow", r.studentStats},
	}
	for _, ex := range examples {
		if cfg.Example != "all" && cfg.Example != ex.name {
			continue
		}
		r.log.Debug("running example", logger.Fields(logger.FieldOperation, ex.name))
		if cfg.Example == "all" {
			fmt.Fprintf(r.out, "== %s ==\n", ex.name)
		}
		if err := ex.run(ctx, cfg); err != nil {
			return fmt.Errorf("%s example: %w", ex.name, err)
		}
	}
	return nil
}

// collatz applies a pipe of Collatz steps to the start value.
func (r *runner) collatz(ctx context.Context, cfg *DemoConfig) error {
	step := stage(r, "collatz.step", pipe.Func(func(x int) int {
		if x%2 == 0 {
			fmt.Fprintln(r.out, "Even step:", x)
			return x / 2
		}
		fmt.Fprintln(r.out, "Odd step:", x)
		return 3*x + 1
	}))

	filters := make([]pipe.Transform[int, int], cfg.Collatz.Steps)
	for i := range filters {
		filters[i] = step
	}
	p, err := pipe.New(filters...)
	if err != nil {
		return err
	}

	result, err := p.Apply(ctx, cfg.Collatz.Start)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Result:", result)
	return nil
}

type coefficients struct{ a, b, c float64 }

type discriminant struct {
	coefficients
	d float64
}

// quadratic solves the configured equation with a splitter: a shared input
// pipe computes the square root of the discriminant and one output computes
// each root.
func (r *runner) quadratic(ctx context.Context, cfg *DemoConfig) error {
	input := pipe.Then(
		stage(r, "quadratic.discriminant", pipe.Func(func(k coefficients) discriminant {
			return discriminant{k, k.b*k.b - 4*k.a*k.c}
		})),
		stage(r, "quadratic.sqrt", pipe.Try(func(d discriminant) (discriminant, error) {
			if d.d < 0 {
				return discriminant{}, errors.Validation("equation has no real roots").
					WithDetail("discriminant", d.d)
			}
			return discriminant{d.coefficients, math.Sqrt(d.d)}, nil
		})),
	)
	solver, err := pipe.NewSplitter(input,
		stage(r, "quadratic.root1", pipe.Func(func(z discriminant) float64 { return (-z.b + z.d) / (2 * z.a) })),
		stage(r, "quadratic.root2", pipe.Func(func(z discriminant) float64 { return (-z.b - z.d) / (2 * z.a) })),
	)
	if err != nil {
		return err
	}

	q := cfg.Quadratic
	roots, err := solver.Apply(ctx, coefficients{q.A, q.B, q.C})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, roots)
	return nil
}

// caesar encrypts and decrypts the configured text with rune pipelines.
func (r *runner) caesar(ctx context.Context, cfg *DemoConfig) error {
	shift := func(name string, key int) pipe.Transform[rune, rune] {
		return stage(r, name, pipe.Then(
			pipe.Func(func(c rune) int { return int(c) }),
			pipe.Then(
				pipe.Func(func(x int) int { return x + key }),
				pipe.Func(func(x int) rune { return rune(x) }),
			),
		))
	}
	text := cfg.Caesar.Text
	key := cfg.Caesar.Key

	encrypted, err := pipeline.Collect(ctx, pipeline.New(pipeline.Runes(text), shift("caesar.encrypt", key),
		pipeline.WithLogger(r.log), pipeline.WithName("caesar.encrypt")))
	if err != nil {
		return err
	}
	decrypted, err := pipeline.Collect(ctx, pipeline.New(pipeline.Runes(string(encrypted)), shift("caesar.decrypt", -key),
		pipeline.WithLogger(r.log), pipeline.WithName("caesar.decrypt")))
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "Original text:", text)
	fmt.Fprintln(r.out, "Encrypted text:", string(encrypted))
	fmt.Fprintln(r.out, "Decrypted text:", string(decrypted))
	return nil
}

func mean(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// stdDev is the population standard deviation.
func stdDev(scores []float64) float64 {
	m := mean(scores)
	var sq float64
	for _, s := range scores {
		sq += (s - m) * (s - m)
	}
	return math.Sqrt(sq / float64(len(scores)))
}

func report(_ context.Context, avg, maxScore, minScore, scoreRange, std float64) (string, error) {
	return fmt.Sprintf("Mean: %.1f | Max: %v | Min: %v | Range: %v | Std Dev: %.1f",
		avg, maxScore, minScore, scoreRange, std), nil
}

// studentStats reports five statistics per student with a flow whose sink
// takes one value per statistic.
func (r *runner) studentStats(ctx context.Context, cfg *DemoConfig) error {
	stats, err := pipe.NewSplitter(pipe.Identity[[]float64],
		stage(r, "stats.mean", pipe.Func(mean)),
		stage(r, "stats.max", pipe.Func(slices.Max[[]float64])),
		stage(r, "stats.min", pipe.Func(slices.Min[[]float64])),
		stage(r, "stats.range", pipe.Func(func(s []float64) float64 { return slices.Max(s) - slices.Min(s) })),
		stage(r, "stats.std_dev", pipe.Func(stdDev)),
	)
	if err != nil {
		return err
	}

	flow := pipeline.NewFlow(pipeline.FromSlice(cfg.Scores), stats.Apply, pipeline.Sink5(report),
		pipeline.WithLogger(r.log), pipeline.WithName("stats"))

	i := 0
	for line, err := range flow.All(ctx) {
		if err != nil {
			return err
		}
		i++
		fmt.Fprintf(r.out, "Student %d: %s\n", i, line)
	}
	return nil
}
