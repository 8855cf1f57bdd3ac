package pipe

// Middleware decorates a Transform. The returned Transform delegates to the
// wrapped one and adds instrumentation around it. Middlewares in this package
// never alter values or errors.
type Middleware[I, O any] func(Transform[I, O]) Transform[I, O]

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(t) is equivalent to a(b(c(t))).
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner Transform[I, O]) Transform[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// Use wraps t with middlewares, outermost first.
func Use[I, O any](t Transform[I, O], middlewares ...Middleware[I, O]) Transform[I, O] {
	return Chain(middlewares...)(t)
}
