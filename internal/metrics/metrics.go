package metrics

import "github.com/san-kum/qpcrsim/internal/amplify"

// Metric watches a curve as it is produced and reduces it to one number.
type Metric interface {
	amplify.Observer
	Name() string
	Value() float64
	Reset()
}

// Set is an ordered group of metrics fed by one run.
type Set []Metric

// Default returns the metrics reported with every run.
func Default(threshold float64) Set {
	return Set{
		NewEndPoint(),
		NewPeak(),
		NewObservedEfficiency(),
		NewAboveThreshold(threshold),
	}
}

func (s Set) Observers() []amplify.Observer {
	obs := make([]amplify.Observer, len(s))
	for i, m := range s {
		obs[i] = m
	}
	return obs
}

func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Collect replays an existing curve through the metrics.
func (s Set) Collect(c amplify.Curve) map[string]float64 {
	s.Reset()
	for i, v := range c {
		for _, m := range s {
			m.OnCycle(i, v)
		}
	}
	return s.Values()
}
