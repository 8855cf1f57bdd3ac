package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/pipe"
)

func square(_ context.Context, x int) (int, error) { return x * x, nil }

func TestPipeline_Squares(t *testing.T) {
	p := New(Range(0, 10), square)

	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPipeline_EmptySource(t *testing.T) {
	called := false
	p := New(FromSlice[int](nil), func(_ context.Context, x int) (int, error) {
		called = true
		return x, nil
	})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 || called {
		t.Errorf("expected nothing, got %v (transform called: %v)", got, called)
	}
}

func TestPipeline_Lazy(t *testing.T) {
	inner := &countingIter{n: 1000}
	applied := 0
	p := New(FromIterator[int](inner), func(_ context.Context, x int) (int, error) {
		applied++
		return x, nil
	})

	ctx := context.Background()
	it := p.Iter(ctx)
	if inner.pulled != 0 || applied != 0 {
		t.Fatalf("creating an iterator must not pull: pulled=%d applied=%d", inner.pulled, applied)
	}
	for i := 0; i < 3; i++ {
		if _, ok, err := it.Next(ctx); err != nil || !ok {
			t.Fatalf("Next() = %v, %v", ok, err)
		}
	}
	if inner.pulled != 3 || applied != 3 {
		t.Errorf("expected exactly 3 pulls and applications, got pulled=%d applied=%d", inner.pulled, applied)
	}
	if err := it.Close(); err != nil {
		t.Fatal(err)
	}
	if !inner.closed {
		t.Error("Close should reach the source iterator")
	}
}

func TestPipeline_InfiniteSourceWithTake(t *testing.T) {
	p := New(Take(Generate(func(i int) int { return i }), 5), square)
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{0, 1, 4, 9, 16}) {
		t.Errorf("got %v", got)
	}
}

func TestPipeline_FailureAtRequestedElement(t *testing.T) {
	boom := stderrors.New("cannot handle 3")
	p := New(Range(0, 10), func(_ context.Context, x int) (int, error) {
		if x == 3 {
			return 0, boom
		}
		return x * 2, nil
	})

	ctx := context.Background()
	it := p.Iter(ctx)
	defer it.Close()
	for i := 0; i < 3; i++ {
		v, ok, err := it.Next(ctx)
		if err != nil || !ok || v != i*2 {
			t.Fatalf("element %d: got %v, %v, %v", i, v, ok, err)
		}
	}
	if _, ok, err := it.Next(ctx); err != boom || ok {
		t.Fatalf("expected failure at element 3, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := it.Next(ctx); err != nil || ok {
		t.Errorf("after a failure the iterator should be finished, got ok=%v err=%v", ok, err)
	}
}

func TestPipeline_CollectReturnsPrefixOnError(t *testing.T) {
	boom := stderrors.New("boom")
	p := New(Range(1, 5), pipe.Try(func(x int) (int, error) {
		if x == 3 {
			return 0, boom
		}
		return x, nil
	}))
	got, err := Collect(context.Background(), p)
	if err != boom {
		t.Fatalf("expected boom, got %v", err)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}
}

func TestPipeline_SourceErrorPropagates(t *testing.T) {
	boom := stderrors.New("source broke")
	p := New(FromIterator[int](&failingIter{values: []int{1, 2}, err: boom}), square)
	got, err := Collect(context.Background(), p)
	if err != boom {
		t.Fatalf("expected source error, got %v", err)
	}
	if !slices.Equal(got, []int{1, 4}) {
		t.Errorf("got %v", got)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		expectInvalidConfigPanic(t, func() { New[int, int](nil, square) })
	})
	t.Run("nil transformation", func(t *testing.T) {
		expectInvalidConfigPanic(t, func() { New[int, int](Range(0, 1), nil) })
	})
}

func TestPipeline_OneShotSource(t *testing.T) {
	p := New(FromIterator[int](&countingIter{n: 3}), square)
	ctx := context.Background()
	first, _ := Collect(ctx, p)
	second, _ := Collect(ctx, p)
	if len(first) != 3 {
		t.Errorf("first traversal: got %v", first)
	}
	if len(second) != 0 {
		t.Errorf("second traversal over a spent iterator: got %v", second)
	}
}

func TestPipeline_ReIterableSource(t *testing.T) {
	p := New(FromSlice([]int{1, 2, 3}), square)
	ctx := context.Background()
	first, _ := Collect(ctx, p)
	second, _ := Collect(ctx, p)
	if !slices.Equal(first, second) || len(first) != 3 {
		t.Errorf("expected equal traversals, got %v and %v", first, second)
	}
}

func TestPipeline_WithPipe(t *testing.T) {
	p := pipe.MustNew(
		pipe.Func(func(x int) int { return x + 1 }),
		pipe.Func(func(x int) int { return x * 3 }),
	)
	got, err := Collect(context.Background(), New(Range(0, 3), p.Apply))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{3, 6, 9}) {
		t.Errorf("got %v", got)
	}
}

func TestPipeline_Chained(t *testing.T) {
	inner := New(Range(1, 4), square)
	outer := New[int, string](inner, pipe.Func(func(x int) string { return fmt.Sprint(x) }))
	got, err := Collect(context.Background(), outer)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"1", "4", "9"}) {
		t.Errorf("got %v", got)
	}
}

func TestPipeline_All(t *testing.T) {
	var got []int
	for v, err := range New(Range(0, 100), square).All(context.Background()) {
		if err != nil {
			t.Fatal(err)
		}
		if v > 10 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 4, 9}) {
		t.Errorf("got %v", got)
	}
}

func TestPipeline_AllYieldsError(t *testing.T) {
	boom := stderrors.New("boom")
	p := New(Range(0, 5), pipe.Try(func(x int) (int, error) {
		if x == 1 {
			return 0, boom
		}
		return x, nil
	}))
	var values []int
	var errs []error
	for v, err := range p.All(context.Background()) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	if !slices.Equal(values, []int{0}) {
		t.Errorf("got values %v", values)
	}
	if len(errs) != 1 || errs[0] != boom {
		t.Errorf("expected exactly one boom error, got %v", errs)
	}
}

func TestPipeline_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	p := New(Range(0, 3), square, WithLogger(log), WithName("squares"))
	if _, err := Collect(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{`"run started"`, `"run finished"`, `"elements":3`, `"component":"squares"`, `"run_id":`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestPipeline_WithLoggerFailure(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	p := New(Range(0, 3), pipe.Try(func(x int) (int, error) {
		if x == 2 {
			return 0, stderrors.New("bad element")
		}
		return x, nil
	}), WithLogger(log))
	if _, err := Collect(context.Background(), p); err == nil {
		t.Fatal("expected an error")
	}

	out := buf.String()
	for _, want := range []string{`"run failed"`, `"elements":2`, `"bad element"`, `"component":"pipeline"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestPipeline_SeparateRunIDs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	p := New(Range(0, 1), square, WithLogger(log))

	ctx := context.Background()
	_, _ = Collect(ctx, p)
	_, _ = Collect(ctx, p)

	ids := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		_, rest, ok := strings.Cut(line, `"run_id":"`)
		if !ok {
			continue
		}
		id, _, _ := strings.Cut(rest, `"`)
		ids[id] = true
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 distinct run IDs, got %v", ids)
	}
}
