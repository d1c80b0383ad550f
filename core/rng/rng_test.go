package rng

import (
	"testing"

	"guildhall/core/errors"
)

func TestSameSeedProducesIdenticalDrawSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		va, err := a.NextInt(100)
		if err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		vb, err := b.NextInt(100)
		if err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
	}
	if a.Draws() != b.Draws() {
		t.Fatalf("draw counters diverged: %d vs %d", a.Draws(), b.Draws())
	}
}

func TestDrawCounterIncrementsExactlyOncePerCall(t *testing.T) {
	s := New(7)

	if _, err := s.NextInt(10); err != nil {
		t.Fatalf("NextInt: %v", err)
	}
	if s.Draws() != 1 {
		t.Fatalf("expected 1 draw, got %d", s.Draws())
	}
	if _, err := s.NextLong(1000); err != nil {
		t.Fatalf("NextLong: %v", err)
	}
	s.NextBool()
	s.NextFloat64()
	if s.Draws() != 4 {
		t.Fatalf("expected 4 draws, got %d", s.Draws())
	}
}

func TestInvalidBoundFailsWithoutConsumingADraw(t *testing.T) {
	s := New(7)

	if _, err := s.NextInt(0); err != errors.ErrInvalidRNGBound {
		t.Fatalf("expected ErrInvalidRNGBound for bound=0, got %v", err)
	}
	if _, err := s.NextInt(-1); err != errors.ErrInvalidRNGBound {
		t.Fatalf("expected ErrInvalidRNGBound for bound=-1, got %v", err)
	}
	if _, err := s.NextLong(0); err != errors.ErrInvalidRNGBound {
		t.Fatalf("expected ErrInvalidRNGBound for NextLong bound=0, got %v", err)
	}
	if s.Draws() != 0 {
		t.Fatalf("failed draws must not count, got %d", s.Draws())
	}

	// The failed calls must not have advanced the underlying stream either.
	fresh := New(7)
	want, err := fresh.NextInt(100)
	if err != nil {
		t.Fatalf("NextInt: %v", err)
	}
	got, err := s.NextInt(100)
	if err != nil {
		t.Fatalf("NextInt: %v", err)
	}
	if got != want {
		t.Fatalf("stream shifted by rejected draws: %d vs %d", got, want)
	}
}

func TestValuesStayWithinBound(t *testing.T) {
	s := New(99)
	for i := 0; i < 10000; i++ {
		v, err := s.NextInt(7)
		if err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		if v < 0 || v >= 7 {
			t.Fatalf("draw %d out of [0,7): %d", i, v)
		}
	}
	for i := 0; i < 10000; i++ {
		v := s.NextFloat64()
		if v < 0 || v >= 1 {
			t.Fatalf("float draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestTraceObservesWithoutChangingTheStream(t *testing.T) {
	traced := New(5)
	plain := New(5)

	var indexes []uint64
	var methods []string
	traced.SetTrace(TraceFunc(func(index uint64, method string, bound int64, value int64) {
		indexes = append(indexes, index)
		methods = append(methods, method)
	}))

	for i := 0; i < 10; i++ {
		vt, err := traced.NextInt(50)
		if err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		vp, err := plain.NextInt(50)
		if err != nil {
			t.Fatalf("NextInt: %v", err)
		}
		if vt != vp {
			t.Fatalf("trace changed the stream at draw %d: %d vs %d", i, vt, vp)
		}
	}

	if len(indexes) != 10 {
		t.Fatalf("expected 10 trace entries, got %d", len(indexes))
	}
	for i, idx := range indexes {
		if idx != uint64(i+1) {
			t.Fatalf("trace index %d should be %d, got %d", i, i+1, idx)
		}
		if methods[i] != MethodNextInt {
			t.Fatalf("trace method should be %s, got %s", MethodNextInt, methods[i])
		}
	}
}
