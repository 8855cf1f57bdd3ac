package pipeline

import (
	"context"
	"iter"
)

// Runnable is a fully-configured traversal ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the traversal until the source is exhausted or an error occurs.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](source Source[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			it := source.Iter(ctx)
			defer it.Close()
			for {
				val, ok, err := it.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect traverses source and returns all values as a slice. On failure it
// returns the values produced before the failing element along with the error.
func Collect[T any](ctx context.Context, source Source[T]) ([]T, error) {
	it := source.Iter(ctx)
	defer it.Close()
	var result []T
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, source Source[T], fn func(context.Context, T) error) error {
	return Drain(source, fn).Run(ctx)
}

// All returns a traversal of source as a range-over-func sequence. An error
// is yielded once, with a zero value, and ends the sequence. Breaking out of
// the loop closes the underlying iterator.
func All[T any](ctx context.Context, source Source[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := source.Iter(ctx)
		defer it.Close()
		for {
			val, ok, err := it.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(val, nil) {
				return
			}
		}
	}
}
