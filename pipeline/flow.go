package pipeline

import (
	"context"
	"iter"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/pipe"
)

// Flow lazily applies a fan-out transformation to each source element and
// reduces its results with a sink.
//
// The splitter's result count must match the sink's arity. The match is
// checked per element, when that element is processed.
type Flow[I, M, O any] struct {
	source   Source[I]
	splitter pipe.Transform[I, []M]
	sink     Sink[M, O]
	opts     options
}

// NewFlow creates a Flow. splitter is usually a (*pipe.Splitter).Apply method value.
// It panics with an errors.ErrCodeInvalidConfig AppError when source or
// splitter is nil or sink was not built by one of the sink constructors.
func NewFlow[I, M, O any](source Source[I], splitter pipe.Transform[I, []M], sink Sink[M, O], opts ...Option) *Flow[I, M, O] {
	switch {
	case source == nil:
		panic(errors.InvalidConfig("flow", "source is nil"))
	case splitter == nil:
		panic(errors.InvalidConfig("flow", "splitter is nil"))
	case sink.fn == nil:
		panic(errors.InvalidConfig("flow", "sink has no function"))
	}
	return &Flow[I, M, O]{
		source:   source,
		splitter: splitter,
		sink:     sink,
		opts:     buildOptions("flow", opts),
	}
}

// NewUnaryFlow creates a Flow whose sink returns the splitter's single result
// unchanged.
func NewUnaryFlow[I, M any](source Source[I], splitter pipe.Transform[I, []M], opts ...Option) *Flow[I, M, M] {
	return NewFlow(source, splitter, IdentitySink[M](), opts...)
}

// Iter starts a new traversal of the source. Failures from the source, the
// splitter or the sink are returned unchanged and finish the iterator.
func (f *Flow[I, M, O]) Iter(ctx context.Context) Iterator[O] {
	return &applyIter[I, O]{
		source: f.source.Iter(ctx),
		fn:     f.apply,
		run:    f.opts.startRun(),
	}
}

// All returns the traversal as a range-over-func sequence.
func (f *Flow[I, M, O]) All(ctx context.Context) iter.Seq2[O, error] {
	return All[O](ctx, f)
}

// Arity returns the number of values the sink accepts.
func (f *Flow[I, M, O]) Arity() int { return f.sink.Arity() }

func (f *Flow[I, M, O]) apply(ctx context.Context, in I) (O, error) {
	values, err := f.splitter(ctx, in)
	if err != nil {
		var zero O
		return zero, err
	}
	return f.sink.Apply(ctx, values)
}
