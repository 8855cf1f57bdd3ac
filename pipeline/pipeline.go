package pipeline

import (
	"context"
	"iter"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/pipe"
)

// Pipeline lazily applies one transformation to each element of a source.
type Pipeline[I, O any] struct {
	source    Source[I]
	transform pipe.Transform[I, O]
	opts      options
}

// New creates a Pipeline. It panics with an errors.ErrCodeInvalidConfig
// AppError when source or transform is nil.
func New[I, O any](source Source[I], transform pipe.Transform[I, O], opts ...Option) *Pipeline[I, O] {
	if source == nil {
		panic(errors.InvalidConfig("pipeline", "source is nil"))
	}
	if transform == nil {
		panic(errors.InvalidConfig("pipeline", "transformation is nil"))
	}
	return &Pipeline[I, O]{
		source:    source,
		transform: transform,
		opts:      buildOptions("pipeline", opts),
	}
}

// Iter starts a new traversal of the source. Each Next reads one source
// element and transforms it; a transformation or source error is returned
// unchanged and finishes the iterator.
func (p *Pipeline[I, O]) Iter(ctx context.Context) Iterator[O] {
	return &applyIter[I, O]{
		source: p.source.Iter(ctx),
		fn:     p.transform,
		run:    p.opts.startRun(),
	}
}

// All returns the traversal as a range-over-func sequence.
func (p *Pipeline[I, O]) All(ctx context.Context) iter.Seq2[O, error] {
	return All[O](ctx, p)
}

// applyIter pulls one element at a time and applies fn to it.
type applyIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
	run    *runLog
	done   bool
}

func (it *applyIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	if it.done {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return it.fail(err)
	}
	if !ok {
		it.done = true
		it.run.finished()
		return result, false, nil
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		return it.fail(err)
	}
	it.run.element()
	return out, true, nil
}

func (it *applyIter[I, O]) fail(err error) (O, bool, error) {
	it.done = true
	it.run.failed(err)
	var zero O
	return zero, false, err
}

func (it *applyIter[I, O]) Close() error { return it.source.Close() }
