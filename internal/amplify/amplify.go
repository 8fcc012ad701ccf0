package amplify

import "math"

// Validate reports the first parameter that violates its bounds.
func Validate(p Params) error {
	if p.Cycles <= 0 {
		return &ParamError{Param: "cycles", Value: float64(p.Cycles), Wrapped: ErrInvalidCycles}
	}
	if math.IsNaN(p.Efficiency) || p.Efficiency <= 0 || p.Efficiency > 1 {
		return &ParamError{Param: "efficiency", Value: p.Efficiency, Wrapped: ErrInvalidEfficiency}
	}
	if math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) || p.Threshold <= 0 {
		return &ParamError{Param: "threshold", Value: p.Threshold, Wrapped: ErrInvalidThreshold}
	}
	return nil
}

// Simulate builds a curve of p.Cycles readings. Each reading is the running
// product of (1+Efficiency) up to and including that cycle plus one noise
// sample. Ct is the first cycle whose reading strictly exceeds the threshold
// and is never revisited afterwards.
func Simulate(p Params, noise Noise, observers ...Observer) (*Result, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	if noise == nil {
		noise = NoNoise{}
	}

	res := &Result{
		Params: p,
		Curve:  make(Curve, 0, p.Cycles),
		Ct:     NotReached,
	}

	growth := 1 + p.Efficiency
	product := 1.0
	for i := 0; i < p.Cycles; i++ {
		product *= growth
		reading := product + noise.Sample()
		res.Curve = append(res.Curve, reading)

		if res.Ct == NotReached && reading > p.Threshold {
			res.Ct = i
		}
		for _, obs := range observers {
			obs.OnCycle(i, reading)
		}
	}

	return res, nil
}
