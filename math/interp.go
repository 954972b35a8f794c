package math

import (
	m "math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"
)

// Breakpoints is a piecewise linear lookup table. Lookups outside of the
// table hold the first or last value.
type Breakpoints struct {
	xs []float64
	ys []float64
	pl interp.PiecewiseLinear
}

// ValidateBreakpoints reports whether (xs, ys) is a usable table: the same
// non-zero length with strictly increasing xs.
func ValidateBreakpoints(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errors.Errorf("breakpoint length mismatch: %d != %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return errors.New("breakpoint table is empty")
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return errors.Errorf("breakpoints must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func NewBreakpoints(xs, ys []float64) (Breakpoints, error) {
	b := Breakpoints{}
	if err := ValidateBreakpoints(xs, ys); err != nil {
		return b, err
	}
	b.xs = append([]float64{}, xs...)
	b.ys = append([]float64{}, ys...)
	if len(xs) > 1 {
		if err := b.pl.Fit(b.xs, b.ys); err != nil {
			return b, errors.Wrap(err, "could not fit breakpoints")
		}
	}
	return b, nil
}

// MustBreakpoints is NewBreakpoints for tables known at compile time.
func MustBreakpoints(xs, ys []float64) Breakpoints {
	b, err := NewBreakpoints(xs, ys)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Breakpoints) Len() int {
	return len(b.xs)
}

func (b Breakpoints) At(x float64) float64 {
	n := len(b.xs)
	if n == 0 {
		return 0
	}
	if n == 1 || x <= b.xs[0] || m.IsNaN(x) {
		return b.ys[0]
	}
	if x >= b.xs[n-1] {
		return b.ys[n-1]
	}
	return b.pl.Predict(x)
}

// Interp evaluates the table (xp, fp) at x without building a Breakpoints.
// Malformed tables evaluate to the first value, or 0 when empty.
func Interp(x float64, xp, fp []float64) float64 {
	if ValidateBreakpoints(xp, fp) != nil {
		if len(fp) > 0 {
			return fp[0]
		}
		return 0
	}
	n := len(xp)
	if n == 1 || !(x > xp[0]) {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}
	i := sort.SearchFloat64s(xp, x)
	return fp[i-1] + (fp[i]-fp[i-1])*(x-xp[i-1])/(xp[i]-xp[i-1])
}

// Clip bounds x to [lo, hi]. NaN is clipped to lo.
func Clip(x, lo, hi float64) float64 {
	if m.IsNaN(x) {
		return lo
	}
	return m.Min(m.Max(x, lo), hi)
}

// Mod is the floored modulo: the result takes the sign of b, so Mod(-3, 5) == 2.
func Mod(a, b float64) float64 {
	r := m.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
