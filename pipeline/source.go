package pipeline

import (
	"context"
	"iter"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Source hands out an Iterator for each traversal.
type Source[T any] interface {
	Iter(ctx context.Context) Iterator[T]
}

// SourceFunc adapts a factory function to a Source.
type SourceFunc[T any] func(ctx context.Context) Iterator[T]

// Iter calls f.
func (f SourceFunc[T]) Iter(ctx context.Context) Iterator[T] { return f(ctx) }

// --- Constructors ---

// FromIterator creates a one-shot source: every traversal shares it, so a
// second traversal sees only what the first left behind.
func FromIterator[T any](it Iterator[T]) Source[T] {
	return SourceFunc[T](func(_ context.Context) Iterator[T] {
		return it
	})
}

// FromFunc creates a source from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) Source[T] {
	return SourceFunc[T](fn)
}

// FromSlice creates a re-iterable source over items.
func FromSlice[T any](items []T) Source[T] {
	return SourceFunc[T](func(_ context.Context) Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// FromSeq creates a source from an iter.Seq. Each traversal pulls from a new
// iteration of seq, so the source is re-iterable whenever seq is.
func FromSeq[T any](seq iter.Seq[T]) Source[T] {
	return SourceFunc[T](func(_ context.Context) Iterator[T] {
		next, stop := iter.Pull(seq)
		return &pullIter[T]{next: next, stop: stop}
	})
}

// Range creates a source of the integers in [start, end).
func Range(start, end int) Source[int] {
	return SourceFunc[int](func(_ context.Context) Iterator[int] {
		return &rangeIter{next: start, end: end}
	})
}

// Runes creates a source of the runes of s.
func Runes(s string) Source[rune] {
	return FromSlice([]rune(s))
}

// Generate creates an infinite source yielding fn(0), fn(1), ...
// fn is called only when a value is requested.
func Generate[T any](fn func(i int) T) Source[T] {
	return SourceFunc[T](func(_ context.Context) Iterator[T] {
		return &generateIter[T]{fn: fn}
	})
}

// Take limits source to its first n values. The source is never asked for
// more than n values.
func Take[T any](source Source[T], n int) Source[T] {
	return SourceFunc[T](func(ctx context.Context) Iterator[T] {
		return &takeIter[T]{source: source.Iter(ctx), remaining: n}
	})
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIter[T]) Next(_ context.Context) (T, bool, error) {
	v, ok := it.next()
	return v, ok, nil
}

func (it *pullIter[T]) Close() error {
	it.stop()
	return nil
}

type rangeIter struct {
	next, end int
}

func (it *rangeIter) Next(_ context.Context) (int, bool, error) {
	if it.next >= it.end {
		return 0, false, nil
	}
	v := it.next
	it.next++
	return v, true, nil
}

func (it *rangeIter) Close() error { return nil }

type generateIter[T any] struct {
	fn func(int) T
	i  int
}

func (it *generateIter[T]) Next(_ context.Context) (T, bool, error) {
	v := it.fn(it.i)
	it.i++
	return v, true, nil
}

func (it *generateIter[T]) Close() error { return nil }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.remaining = 0
		var zero T
		return zero, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }
