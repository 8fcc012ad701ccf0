package automation

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/assay"
)

type Replicate struct {
	Seed    int64
	Result  *amplify.Result
	Metrics map[string]float64
}

// RunReplicates runs n copies of base. Replicate i uses seed seedStart+i.
func RunReplicates(ctx context.Context, base assay.Settings, n int, seedStart int64) ([]Replicate, error) {
	if n < 1 {
		return nil, fmt.Errorf("replicate count must be at least 1, got %d", n)
	}
	if err := amplify.Validate(base.Params); err != nil {
		return nil, err
	}

	reps := make([]Replicate, n)
	err := forEach(ctx, n, func(i int) error {
		seed := seedStart + int64(i)
		res, m, err := simulate(base, amplify.NewSeededUniform(base.NoiseAmplitude, seed))
		if err != nil {
			return err
		}
		reps[i] = Replicate{Seed: seed, Result: res, Metrics: m}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reps, nil
}

// CtStats summarises Ct over the replicates that reached the threshold.
// Mean, StdDev, Min and Max are NaN when none did.
type CtStats struct {
	N       int
	Reached int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

func Stats(reps []Replicate) CtStats {
	st := CtStats{N: len(reps), Mean: math.NaN(), StdDev: math.NaN(), Min: math.NaN(), Max: math.NaN()}

	cts := make([]float64, 0, len(reps))
	for _, r := range reps {
		if r.Result != nil && r.Result.Reached() {
			cts = append(cts, float64(r.Result.Ct))
		}
	}
	st.Reached = len(cts)
	if len(cts) == 0 {
		return st
	}

	st.Min = floats.Min(cts)
	st.Max = floats.Max(cts)
	if len(cts) == 1 {
		st.Mean, st.StdDev = cts[0], 0
		return st
	}
	st.Mean, st.StdDev = stat.MeanStdDev(cts, nil)
	return st
}
