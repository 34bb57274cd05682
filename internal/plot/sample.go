// Package plot samples the function y = (1.5x - ln(2x)) / (3x + 1), maps
// samples into a viewport and renders the graph as line and text commands
// against a Surface. It has no dependency on any terminal or window system.
package plot

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrDomain is matched by errors.Is for every DomainError.
var ErrDomain = errors.New("plot: value undefined")

// DomainError reports a sample whose y value is mathematically undefined.
type DomainError struct {
	X      float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("plot: f(%g) undefined: %s", e.X, e.Reason)
}

// Is makes errors.Is(err, ErrDomain) true for any DomainError.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Sample is one evaluated point. When Err is non-nil, Y is NaN and the
// sample must not be plotted.
type Sample struct {
	X, Y float64
	Err  error
}

// Defined reports whether the sample carries a usable y value.
func (s Sample) Defined() bool {
	return s.Err == nil
}

// Eval evaluates the plotted function at x.
func Eval(x float64) (float64, error) {
	if 2*x <= 0 {
		return math.NaN(), &DomainError{X: x, Reason: "log of non-positive argument"}
	}
	den := 3*x + 1
	if den == 0 {
		return math.NaN(), &DomainError{X: x, Reason: "division by zero"}
	}
	y := (1.5*x - math.Log(2*x)) / den
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return math.NaN(), &DomainError{X: x, Reason: "non-finite result"}
	}
	return y, nil
}

// Samples returns the samples at x = start, start+step, ... while x <= end.
// x advances by repeated addition, so the last sample may fall slightly
// below end. The sequence is empty when step <= 0 or start >= end, and may
// be ranged over any number of times.
func Samples(start, end, step float64) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if !(step > 0) || !(start < end) {
			return
		}
		for x := start; x <= end; x += step {
			y, err := Eval(x)
			if !yield(Sample{X: x, Y: y, Err: err}) {
				return
			}
			if x+step == x {
				// step is below the precision of x
				return
			}
		}
	}
}

// Count returns the number of samples Samples(start, end, step) yields.
func Count(start, end, step float64) int {
	n := 0
	for range Samples(start, end, step) {
		n++
	}
	return n
}
