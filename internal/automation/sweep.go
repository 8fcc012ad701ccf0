package automation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/assay"
)

// Parameters a sweep can vary.
const (
	ParamEfficiency = "efficiency"
	ParamThreshold  = "threshold"
	ParamCycles     = "cycles"
	ParamNoise      = "noise"
)

var SweepParams = []string{ParamEfficiency, ParamThreshold, ParamCycles, ParamNoise}

var ErrUnknownParam = errors.New("automation: unknown sweep parameter")

// Sweep varies one parameter over Steps evenly spaced values in [Min, Max].
type Sweep struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

// Values returns the swept values. Cycle counts are rounded to whole cycles.
func (s Sweep) Values() ([]float64, error) {
	if s.Steps < 1 {
		return nil, fmt.Errorf("sweep steps must be at least 1, got %d", s.Steps)
	}
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min > s.Max {
		return nil, fmt.Errorf("sweep range [%g, %g] is empty", s.Min, s.Max)
	}
	vals := []float64{s.Min}
	if s.Steps > 1 {
		vals = floats.Span(make([]float64, s.Steps), s.Min, s.Max)
	}
	if s.Param == ParamCycles {
		for i, v := range vals {
			vals[i] = math.Round(v)
		}
	}
	return vals, nil
}

// apply returns base with the swept parameter set to v.
func (s Sweep) apply(base assay.Settings, v float64) (assay.Settings, error) {
	switch s.Param {
	case ParamEfficiency:
		base.Params.Efficiency = v
	case ParamThreshold:
		base.Params.Threshold = v
	case ParamCycles:
		base.Params.Cycles = int(v)
	case ParamNoise:
		if v < 0 {
			return base, fmt.Errorf("noise amplitude %g is negative", v)
		}
		base.NoiseAmplitude = v
	default:
		return base, fmt.Errorf("%w: %q", ErrUnknownParam, s.Param)
	}
	return base, nil
}

type SweepPoint struct {
	Value   float64
	Result  *amplify.Result
	Metrics map[string]float64
}

// RunSweep simulates every point of the sweep. Each point draws its noise
// from a fresh source built by noise, so a seeded factory gives every point
// the same noise sequence.
func RunSweep(ctx context.Context, base assay.Settings, sw Sweep, noise assay.NoiseFactory) ([]SweepPoint, error) {
	vals, err := sw.Values()
	if err != nil {
		return nil, err
	}
	if noise == nil {
		noise = assay.ZeroNoise
	}

	settings := make([]assay.Settings, len(vals))
	for i, v := range vals {
		if settings[i], err = sw.apply(base, v); err != nil {
			return nil, err
		}
		if err := amplify.Validate(settings[i].Params); err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sw.Param, v, err)
		}
	}

	points := make([]SweepPoint, len(vals))
	err = forEach(ctx, len(vals), func(i int) error {
		s := settings[i]
		res, m, err := simulate(s, noise(s.NoiseAmplitude))
		if err != nil {
			return err
		}
		points[i] = SweepPoint{Value: vals[i], Result: res, Metrics: m}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}
