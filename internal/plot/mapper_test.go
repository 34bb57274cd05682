package plot

import (
	"math"
	"slices"
	"testing"
)

var defaultViewport = Viewport{Width: 800, Height: 600, Margin: 50}

func TestToScreenDefaultEndpoints(t *testing.T) {
	cfg := DefaultConfig()
	samples := slices.Collect(cfg.Samples())
	first, last := samples[0], samples[len(samples)-1]

	// Expected values straight from the formulas
	scaleX := (800.0 - 2*50) / (9.0 - 2.5)
	scaleY := (600.0 - 2*50) / 10.0
	expect := func(x float64) ScreenPoint {
		y := (1.5*x - math.Log(2*x)) / (3*x + 1)
		return ScreenPoint{X: 50 + (x-2.5)*scaleX, Y: 300 - y*scaleY}
	}

	tests := []struct {
		name string
		s    Sample
	}{
		{"first", first},
		{"last", last},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToScreen(tc.s, defaultViewport, cfg.StartX, cfg.EndX)
			want := expect(tc.s.X)
			if math.Abs(got.X-want.X) > 1e-4 || math.Abs(got.Y-want.Y) > 1e-4 {
				t.Errorf("ToScreen(x=%v) = %+v, expected %+v", tc.s.X, got, want)
			}
		})
	}

	if got := ToScreen(first, defaultViewport, cfg.StartX, cfg.EndX); got.X != 50 {
		t.Errorf("first sample should map onto the vertical axis, got x=%v", got.X)
	}
	if math.Abs(last.X-8.9) > 1e-9 {
		t.Errorf("last sample x = %v, expected about 8.9", last.X)
	}
}

func TestToScreenMonotonic(t *testing.T) {
	vp := defaultViewport
	prev := ToScreen(Sample{X: 0, Y: 0}, vp, 0, 10)
	for x := 0.5; x <= 10; x += 0.5 {
		p := ToScreen(Sample{X: x, Y: 0}, vp, 0, 10)
		if p.X <= prev.X {
			t.Errorf("screen x should increase with x: %v <= %v at x=%v", p.X, prev.X, x)
		}
		prev = p
	}

	prev = ToScreen(Sample{X: 1, Y: -5}, vp, 0, 10)
	for y := -4.5; y <= 5; y += 0.5 {
		p := ToScreen(Sample{X: 1, Y: y}, vp, 0, 10)
		if p.Y >= prev.Y {
			t.Errorf("screen y should decrease as y grows: %v >= %v at y=%v", p.Y, prev.Y, y)
		}
		prev = p
	}
}

func TestToScreenAffine(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480, Margin: 20}
	a := ToScreen(Sample{X: 1, Y: 1}, vp, 0, 4)
	b := ToScreen(Sample{X: 3, Y: -1}, vp, 0, 4)
	mid := ToScreen(Sample{X: 2, Y: 0}, vp, 0, 4)

	if math.Abs((a.X+b.X)/2-mid.X) > 1e-9 || math.Abs((a.Y+b.Y)/2-mid.Y) > 1e-9 {
		t.Errorf("midpoint should map to the midpoint of mapped points: %+v vs %+v %+v", mid, a, b)
	}
	if mid.Y != 240 {
		t.Errorf("y=0 should map to the vertical middle, got %v", mid.Y)
	}
}

func TestToScreenFixedVerticalScale(t *testing.T) {
	// One data unit is always a tenth of the graph height.
	vp := Viewport{Width: 300, Height: 220, Margin: 10}
	p0 := ToScreen(Sample{X: 0, Y: 0}, vp, 0, 1)
	p1 := ToScreen(Sample{X: 0, Y: 1}, vp, 0, 1)
	if got := p0.Y - p1.Y; got != 20 {
		t.Errorf("one y unit = %v pixels, expected 20", got)
	}
}

func TestToScreenOddHeight(t *testing.T) {
	vp := Viewport{Width: 101, Height: 101, Margin: 0}
	p := ToScreen(Sample{X: 0, Y: 0}, vp, 0, 1)
	if p.Y != 50 {
		t.Errorf("axis should sit at integer half height, got %v", p.Y)
	}
}

func TestToScreenUndefined(t *testing.T) {
	s := Sample{X: -1, Y: 3, Err: &DomainError{X: -1, Reason: "test"}}
	p := ToScreen(s, defaultViewport, 0, 10)
	if !math.IsNaN(p.Y) {
		t.Errorf("undefined sample should map to NaN y, got %v", p.Y)
	}
}
