package pipe

import (
	"context"
	"reflect"
)

// Transform maps one input value to one output value.
type Transform[I, O any] func(ctx context.Context, in I) (O, error)

// Func adapts a pure function that cannot fail.
func Func[I, O any](fn func(I) O) Transform[I, O] {
	return func(_ context.Context, in I) (O, error) {
		return fn(in), nil
	}
}

// Try adapts a function that may fail but does not need a context.
func Try[I, O any](fn func(I) (O, error)) Transform[I, O] {
	return func(_ context.Context, in I) (O, error) {
		return fn(in)
	}
}

// Then composes f and g into a single transformation: g(f(x)).
// If f fails, g is not called and f's error is returned unchanged.
func Then[A, B, C any](f Transform[A, B], g Transform[B, C]) Transform[A, C] {
	return func(ctx context.Context, in A) (C, error) {
		mid, err := f(ctx, in)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(ctx, mid)
	}
}

// Box erases the types of t so it can take part in a Pipe[any].
// A value that is not an I yields a *TypeError.
func Box[I, O any](t Transform[I, O]) Transform[any, any] {
	return func(ctx context.Context, in any) (any, error) {
		v, ok := in.(I)
		if !ok && in == nil {
			// nil satisfies an interface-typed input
			ok = any(v) == nil
		}
		if !ok {
			return nil, &TypeError{Value: in, Want: reflect.TypeFor[I]()}
		}
		return t(ctx, v)
	}
}
