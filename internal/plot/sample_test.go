package plot

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func collect(start, end, step float64) []Sample {
	return slices.Collect(Samples(start, end, step))
}

func TestSamplesCount(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
	}{
		{"default domain", 2.5, 9.0, 0.8},
		{"exact quarters", 0, 1, 0.25},
		{"halves", 1, 2, 0.5},
		{"halves to end", 2.5, 9.0, 0.5},
		{"single step larger than range", 3, 4, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(tc.start, tc.end, tc.step)
			expected := int(math.Floor((tc.end-tc.start)/tc.step)) + 1
			if len(got) != expected {
				t.Fatalf("Samples() yielded %d points, expected %d", len(got), expected)
			}
			if Count(tc.start, tc.end, tc.step) != expected {
				t.Errorf("Count() = %d, expected %d", Count(tc.start, tc.end, tc.step), expected)
			}
			for i, s := range got {
				if s.X < tc.start || s.X > tc.end+tc.step/2 {
					t.Errorf("sample %d x=%v outside [%v, %v]", i, s.X, tc.start, tc.end)
				}
			}
			if got[0].X != tc.start {
				t.Errorf("first sample x = %v, expected %v", got[0].X, tc.start)
			}
		})
	}
}

func TestSamplesDefaultValues(t *testing.T) {
	for _, s := range collect(2.5, 9.0, 0.8) {
		if !s.Defined() {
			t.Fatalf("sample at x=%v should be defined, got %v", s.X, s.Err)
		}
		expected := (1.5*s.X - math.Log(2*s.X)) / (3*s.X + 1)
		if math.Abs(s.Y-expected) > 1e-12 {
			t.Errorf("y(%v) = %v, expected %v", s.X, s.Y, expected)
		}
	}
}

func TestSamplesEmpty(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
	}{
		{"start after end", 5, 2, 0.5},
		{"start equals end", 3, 3, 0.5},
		{"zero step", 1, 2, 0},
		{"negative step", 1, 2, -0.5},
		{"nan step", 1, 2, math.NaN()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if n := Count(tc.start, tc.end, tc.step); n != 0 {
				t.Errorf("Count() = %d, expected 0", n)
			}
		})
	}
}

func TestSamplesStepBelowPrecision(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
		maxCount         int
	}{
		// 1e16+1 rounds back to 1e16
		{"step lost in rounding", 1e16, 1e16 + 10, 1, 11},
		{"denormal step", 1, 2, math.SmallestNonzeroFloat64, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := Count(tc.start, tc.end, tc.step)
			if n < 1 || n > tc.maxCount {
				t.Errorf("Count() = %d, expected 1..%d", n, tc.maxCount)
			}
		})
	}
}

func TestSamplesDomainErrors(t *testing.T) {
	got := collect(-1, 1, 0.5)
	if len(got) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(got))
	}

	undefined := map[float64]bool{-1: true, -0.5: true, 0: true}
	for _, s := range got {
		if undefined[s.X] {
			if s.Defined() {
				t.Errorf("x=%v should be a domain error", s.X)
				continue
			}
			if !errors.Is(s.Err, ErrDomain) {
				t.Errorf("x=%v error %v should match ErrDomain", s.X, s.Err)
			}
			var de *DomainError
			if !errors.As(s.Err, &de) || de.X != s.X {
				t.Errorf("x=%v error should be a *DomainError for that x, got %v", s.X, s.Err)
			}
			if !math.IsNaN(s.Y) {
				t.Errorf("x=%v undefined sample should carry NaN, got %v", s.X, s.Y)
			}
		} else if !s.Defined() {
			t.Errorf("x=%v should be defined, got %v", s.X, s.Err)
		}
	}
}

func TestEval(t *testing.T) {
	y, err := Eval(1)
	if err != nil {
		t.Fatalf("Eval(1) failed: %v", err)
	}
	if expected := (1.5 - math.Ln2) / 4; math.Abs(y-expected) > 1e-12 {
		t.Errorf("Eval(1) = %v, expected %v", y, expected)
	}

	_, err = Eval(-1.0 / 3)
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("Eval(-1/3) should fail with a DomainError, got %v", err)
	}
	if de.Reason != "log of non-positive argument" {
		t.Errorf("Eval(-1/3) reason = %q", de.Reason)
	}

	if _, err := Eval(math.Inf(1)); !errors.Is(err, ErrDomain) {
		t.Errorf("Eval(+Inf) should be undefined, got %v", err)
	}
}

func TestSamplesRestartable(t *testing.T) {
	seq := Samples(2.5, 9.0, 0.8)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Error("ranging twice over the same sequence should yield the same samples")
	}

	// Stopping early must not disturb a later full pass
	for range seq {
		break
	}
	if n := len(slices.Collect(seq)); n != len(first) {
		t.Errorf("expected %d samples after an early stop, got %d", len(first), n)
	}
}
