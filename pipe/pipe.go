package pipe

import (
	"context"
	"fmt"

	"github.com/kbukum/pipekit/errors"
)

// Pipe applies an ordered, non-empty sequence of filters to a value.
// A Pipe is immutable and holds no state between calls.
type Pipe[T any] struct {
	filters []Transform[T, T]
}

// New builds a Pipe from filters applied in the order given.
// It fails with an errors.ErrCodeInvalidConfig AppError when filters is empty
// or contains a nil entry.
func New[T any](filters ...Transform[T, T]) (*Pipe[T], error) {
	if len(filters) == 0 {
		return nil, errors.InvalidConfig("pipe", "at least one filter is required")
	}
	for i, f := range filters {
		if f == nil {
			return nil, errors.InvalidConfig("pipe", fmt.Sprintf("filter %d is nil", i)).
				WithDetail("index", i)
		}
	}
	return &Pipe[T]{filters: append([]Transform[T, T](nil), filters...)}, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew[T any](filters ...Transform[T, T]) *Pipe[T] {
	p, err := New(filters...)
	if err != nil {
		panic(err)
	}
	return p
}

// Apply threads in through every filter and returns the last result.
// The first filter error is returned as is; later filters do not run.
func (p *Pipe[T]) Apply(ctx context.Context, in T) (T, error) {
	result := in
	for _, f := range p.filters {
		out, err := f(ctx, result)
		if err != nil {
			var zero T
			return zero, err
		}
		result = out
	}
	return result, nil
}

// Len returns the number of filters.
func (p *Pipe[T]) Len() int { return len(p.filters) }
