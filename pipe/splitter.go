package pipe

import (
	"context"
	"fmt"

	"github.com/kbukum/pipekit/errors"
)

// Splitter applies an input transformation once and fans the intermediate
// value out to every output transformation.
//
// Outputs run sequentially in declaration order and all receive the same
// intermediate value. Transformations that need several arguments take a
// struct or slice as I.
type Splitter[I, M, O any] struct {
	input   Transform[I, M]
	outputs []Transform[M, O]
}

// NewSplitter builds a Splitter. It fails with an errors.ErrCodeInvalidConfig
// AppError when outputs is empty or any transformation is nil.
func NewSplitter[I, M, O any](input Transform[I, M], outputs ...Transform[M, O]) (*Splitter[I, M, O], error) {
	if input == nil {
		return nil, errors.InvalidConfig("splitter", "input transformation is nil")
	}
	if len(outputs) == 0 {
		return nil, errors.InvalidConfig("splitter", "at least one output transformation is required")
	}
	for i, o := range outputs {
		if o == nil {
			return nil, errors.InvalidConfig("splitter", fmt.Sprintf("output %d is nil", i)).
				WithDetail("index", i)
		}
	}
	return &Splitter[I, M, O]{
		input:   input,
		outputs: append([]Transform[M, O](nil), outputs...),
	}, nil
}

// MustNewSplitter is like NewSplitter but panics on a configuration error.
func MustNewSplitter[I, M, O any](input Transform[I, M], outputs ...Transform[M, O]) *Splitter[I, M, O] {
	s, err := NewSplitter(input, outputs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Apply returns one result per output transformation, in declaration order.
// If the input transformation or any output fails, that error is returned as
// is together with a nil slice; outputs after the failing one never run.
func (s *Splitter[I, M, O]) Apply(ctx context.Context, in I) ([]O, error) {
	mid, err := s.input(ctx, in)
	if err != nil {
		return nil, err
	}
	results := make([]O, len(s.outputs))
	for i, out := range s.outputs {
		r, err := out(ctx, mid)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// Width returns the number of output transformations.
func (s *Splitter[I, M, O]) Width() int { return len(s.outputs) }
