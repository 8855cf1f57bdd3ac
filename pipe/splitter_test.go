package pipe

import (
	"context"
	stderrors "errors"
	"math"
	"reflect"
	"testing"

	"github.com/kbukum/pipekit/errors"
)

func TestSplitter_FansOutInOrder(t *testing.T) {
	input := MustNew(
		Func(func(x int) int { return 3*x + 1 }),
		Func(func(x int) int { return x / 2 }),
	)
	halves := MustNew(
		Func(func(x int) int { return x / 2 }),
		Func(func(x int) int { return x / 2 }),
	)
	triples := MustNew(
		Func(func(x int) int { return 3*x + 1 }),
		Func(func(x int) int { return 3*x + 1 }),
	)

	s, err := NewSplitter(input.Apply, halves.Apply, triples.Apply)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Apply(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{2, 76}) {
		t.Errorf("got %v, want [2 76]", got)
	}
	if s.Width() != 2 {
		t.Errorf("expected width 2, got %d", s.Width())
	}
}

func TestSplitter_InputRunsOnceAndOutputsShareValue(t *testing.T) {
	inputCalls := 0
	input := Func(func(x int) []int {
		inputCalls++
		return []int{x, x}
	})
	var seen [][]int
	record := func(_ context.Context, v []int) (int, error) {
		seen = append(seen, v)
		return len(v), nil
	}

	s := MustNewSplitter(input, record, record, record)
	if _, err := s.Apply(context.Background(), 4); err != nil {
		t.Fatal(err)
	}
	if inputCalls != 1 {
		t.Errorf("expected input to run once, ran %d times", inputCalls)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 output calls, got %d", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if &seen[i][0] != &seen[0][0] {
			t.Errorf("output %d received a different intermediate value", i)
		}
	}
}

type quadratic struct{ a, b, c float64 }

type discriminant struct {
	q quadratic
	d float64
}

func TestSplitter_QuadraticRoots(t *testing.T) {
	solve := Then(
		Func(func(q quadratic) discriminant { return discriminant{q: q, d: q.b*q.b - 4*q.a*q.c} }),
		Func(func(z discriminant) discriminant { z.d = math.Sqrt(z.d); return z }),
	)
	s := MustNewSplitter(solve,
		Func(func(z discriminant) float64 { return (-z.q.b + z.d) / (2 * z.q.a) }),
		Func(func(z discriminant) float64 { return (-z.q.b - z.d) / (2 * z.q.a) }),
	)

	got, err := s.Apply(context.Background(), quadratic{1, -1, -6})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []float64{3, -2}) {
		t.Errorf("got %v, want [3 -2]", got)
	}
}

func TestSplitter_InputErrorSkipsOutputs(t *testing.T) {
	boom := stderrors.New("boom")
	called := false
	s := MustNewSplitter(
		Try(func(int) (int, error) { return 0, boom }),
		Func(func(x int) int { called = true; return x }),
	)

	got, err := s.Apply(context.Background(), 1)
	if err != boom {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil results, got %v", got)
	}
	if called {
		t.Error("outputs must not run when the input fails")
	}
}

func TestSplitter_OutputErrorStopsLaterOutputs(t *testing.T) {
	boom := stderrors.New("boom")
	var calls []int
	out := func(i int, fail bool) Transform[int, int] {
		return func(_ context.Context, x int) (int, error) {
			calls = append(calls, i)
			if fail {
				return 0, boom
			}
			return x + i, nil
		}
	}
	s := MustNewSplitter(Identity[int], out(0, false), out(1, true), out(2, false))

	got, err := s.Apply(context.Background(), 10)
	if err != boom {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no partial results, got %v", got)
	}
	if !reflect.DeepEqual(calls, []int{0, 1}) {
		t.Errorf("expected outputs 0 and 1 to run, got %v", calls)
	}
}

func TestNewSplitter_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   Transform[int, int]
		outputs []Transform[int, int]
	}{
		{"no outputs", Identity[int], nil},
		{"nil input", nil, []Transform[int, int]{Identity[int]}},
		{"nil output", Identity[int], []Transform[int, int]{Identity[int], nil}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSplitter(tc.input, tc.outputs...)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if s != nil {
				t.Error("expected nil splitter on error")
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}

func TestMustNewSplitter_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustNewSplitter[int, int, int](Identity[int])
}
