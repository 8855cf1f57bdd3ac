package pipeline

import (
	"context"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/pipe"
)

// Variadic is the arity of a sink that accepts any number of values.
const Variadic = -1

// Sink reduces the values produced by a fan-out into one result.
//
// A Sink declares how many values it accepts. Apply checks the count on every
// call and fails with an errors.ErrCodeArgumentMismatch AppError when it does
// not match.
type Sink[M, O any] struct {
	arity int
	fn    func(context.Context, []M) (O, error)
}

// NewSink creates a sink accepting exactly arity values; a negative arity
// accepts any number.
func NewSink[M, O any](arity int, fn func(context.Context, []M) (O, error)) Sink[M, O] {
	if arity < 0 {
		arity = Variadic
	}
	return Sink[M, O]{arity: arity, fn: fn}
}

// VariadicSink creates a sink accepting any number of values.
func VariadicSink[M, O any](fn func(context.Context, []M) (O, error)) Sink[M, O] {
	return NewSink(Variadic, fn)
}

// Sink1 creates a sink accepting exactly one value.
func Sink1[M, O any](fn pipe.Transform[M, O]) Sink[M, O] {
	return NewSink(1, func(ctx context.Context, v []M) (O, error) {
		return fn(ctx, v[0])
	})
}

// Sink2 creates a sink accepting exactly two values.
func Sink2[M, O any](fn func(ctx context.Context, a, b M) (O, error)) Sink[M, O] {
	return NewSink(2, func(ctx context.Context, v []M) (O, error) {
		return fn(ctx, v[0], v[1])
	})
}

// Sink3 creates a sink accepting exactly three values.
func Sink3[M, O any](fn func(ctx context.Context, a, b, c M) (O, error)) Sink[M, O] {
	return NewSink(3, func(ctx context.Context, v []M) (O, error) {
		return fn(ctx, v[0], v[1], v[2])
	})
}

// Sink5 creates a sink accepting exactly five values.
func Sink5[M, O any](fn func(ctx context.Context, a, b, c, d, e M) (O, error)) Sink[M, O] {
	return NewSink(5, func(ctx context.Context, v []M) (O, error) {
		return fn(ctx, v[0], v[1], v[2], v[3], v[4])
	})
}

// IdentitySink accepts a single value and returns it unchanged.
func IdentitySink[M any]() Sink[M, M] {
	return Sink1(pipe.Identity[M])
}

// Arity returns the number of values the sink accepts, or Variadic.
func (s Sink[M, O]) Arity() int { return s.arity }

// Apply reduces values to one result.
func (s Sink[M, O]) Apply(ctx context.Context, values []M) (O, error) {
	if s.arity != Variadic && len(values) != s.arity {
		var zero O
		return zero, errors.ArgumentMismatch(s.arity, len(values))
	}
	return s.fn(ctx, values)
}
