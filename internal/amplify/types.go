package amplify

import "strconv"

// NotReached is the Ct of a run whose readings never exceed the threshold.
const NotReached = -1

type Params struct {
	Cycles     int
	Efficiency float64
	Threshold  float64
}

// Curve holds one fluorescence reading per cycle, in cycle order.
type Curve []float64

// Max returns the largest reading, or 0 for an empty curve.
func (c Curve) Max() float64 {
	if len(c) == 0 {
		return 0
	}
	m := c[0]
	for _, v := range c[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Clone returns an independent copy.
func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

type Result struct {
	Params Params
	Curve  Curve
	// Ct is the 0-based index of the first reading above the threshold,
	// or NotReached.
	Ct int
}

func (r *Result) Reached() bool {
	return r.Ct != NotReached
}

// CtLabel renders the Ct for display.
func (r *Result) CtLabel() string {
	if !r.Reached() {
		return "not reached"
	}
	return strconv.Itoa(r.Ct)
}

// Observer is notified of every reading as the curve is built.
type Observer interface {
	OnCycle(cycle int, value float64)
}
