package metrics

import "math"

// EndPoint is the final reading of the run.
type EndPoint struct {
	last float64
}

func NewEndPoint() *EndPoint { return &EndPoint{} }

func (e *EndPoint) Name() string                     { return "end_point" }
func (e *EndPoint) OnCycle(cycle int, value float64) { e.last = value }
func (e *EndPoint) Value() float64                   { return e.last }
func (e *EndPoint) Reset()                           { e.last = 0 }

// Peak is the highest reading seen.
type Peak struct {
	max  float64
	seen bool
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) OnCycle(cycle int, value float64) {
	if !p.seen || value > p.max {
		p.max = value
		p.seen = true
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}

// ObservedEfficiency estimates per-cycle growth from the first and last
// positive readings: (last/first)^(1/(n-1)) - 1.
type ObservedEfficiency struct {
	first, last           float64
	firstCycle, lastCycle int
	seen                  bool
}

func NewObservedEfficiency() *ObservedEfficiency { return &ObservedEfficiency{} }

func (o *ObservedEfficiency) Name() string { return "observed_efficiency" }

func (o *ObservedEfficiency) OnCycle(cycle int, value float64) {
	if value <= 0 {
		return
	}
	if !o.seen {
		o.first, o.firstCycle = value, cycle
		o.seen = true
	}
	o.last, o.lastCycle = value, cycle
}

func (o *ObservedEfficiency) Value() float64 {
	span := o.lastCycle - o.firstCycle
	if !o.seen || span < 1 {
		return 0
	}
	return math.Pow(o.last/o.first, 1/float64(span)) - 1
}

func (o *ObservedEfficiency) Reset() { *o = ObservedEfficiency{} }

// AboveThreshold is the fraction of cycles whose reading exceeds threshold.
type AboveThreshold struct {
	threshold float64
	above     int
	samples   int
}

func NewAboveThreshold(threshold float64) *AboveThreshold {
	return &AboveThreshold{threshold: threshold}
}

func (a *AboveThreshold) Name() string { return "above_threshold" }

func (a *AboveThreshold) OnCycle(cycle int, value float64) {
	a.samples++
	if value > a.threshold {
		a.above++
	}
}

func (a *AboveThreshold) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.above) / float64(a.samples)
}

func (a *AboveThreshold) Reset() {
	a.above = 0
	a.samples = 0
}
