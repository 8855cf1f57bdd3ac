// Package pipe composes transformations into pipes and splitters.
//
// A Transform maps one value to one value and may fail. Any function with the
// signature func(context.Context, I) (O, error) is a Transform, including the
// Apply methods of Pipe and Splitter, so composed values nest freely.
//
// # Components
//
//   - Pipe: applies filters left to right, threading each result into the next
//   - Splitter: applies one input transformation, then fans the result out to
//     several independent output transformations
//   - Identity: returns its argument unchanged
//   - Then: type-checked composition of two transformations of different types
//
// Errors raised by a transformation are returned unchanged and stop the
// composition at that point. Configuration mistakes (an empty filter list, no
// outputs) are reported at construction with an errors.ErrCodeInvalidConfig
// AppError.
//
// # Usage
//
//	double := pipe.Func(func(x float64) float64 { return x * 2 })
//	p, err := pipe.New(pipe.Func(func(x float64) float64 { return x + 3 }), double)
//	out, err := p.Apply(ctx, 5) // 16
//
//	s, err := pipe.NewSplitter(p.Apply, half, square)
//	outs, err := s.Apply(ctx, 5) // [8, 256]
//
// # Instrumentation
//
// Middlewares decorate a Transform without changing its values or errors:
//
//	shift := pipe.Use(shiftFn,
//	    pipe.WithLogging[rune, rune](log, "shift"),
//	    pipe.WithTracing[rune, rune]("shift"),
//	)
package pipe
