// Package pipeline lazily applies transformations over a Source.
//
// Pipelines are pull-based: nothing runs until the consumer asks for the next
// value, and each request reads exactly one element from the source. A
// failing element surfaces from the Next call that requested it and ends the
// iteration.
//
// # Components
//
//   - Pipeline: applies one transformation to every source element
//   - Flow: applies a fan-out transformation (usually a pipe.Splitter) to every
//     element, then reduces the fan-out results with a Sink
//
// Both are themselves Sources, so they can feed further pipelines.
//
// # Sources
//
//   - FromSlice, Range, Runes: re-iterable
//   - FromIterator: one-shot, exhausted after one traversal
//   - FromSeq: wraps an iter.Seq
//   - Generate: infinite, usually bounded with Take
//
// # Usage
//
//	squares := pipeline.New(pipeline.Range(0, 10), pipe.Func(func(x int) int { return x * x }))
//	values, err := pipeline.Collect(ctx, squares)
//
//	ratios := pipeline.NewFlow(pipeline.Range(1, 6), splitter.Apply,
//	    pipeline.Sink2(func(_ context.Context, a, b int) (float64, error) {
//	        return float64(a) / float64(b), nil
//	    }))
//	for v, err := range ratios.All(ctx) {
//	    ...
//	}
package pipeline
