package amplify

import "math/rand"

// DefaultNoiseAmplitude bounds the uniform perturbation added to each reading.
const DefaultNoiseAmplitude = 0.1

// Noise yields one independent perturbation per call.
type Noise interface {
	Sample() float64
}

// NoNoise produces noise-free curves.
type NoNoise struct{}

func (NoNoise) Sample() float64 { return 0 }

// Uniform draws from [-Amplitude, +Amplitude].
type Uniform struct {
	Amplitude float64
	rng       *rand.Rand
}

func NewUniform(amplitude float64, rng *rand.Rand) *Uniform {
	return &Uniform{Amplitude: amplitude, rng: rng}
}

// NewSeededUniform is a convenience for reproducible runs.
func NewSeededUniform(amplitude float64, seed int64) *Uniform {
	return NewUniform(amplitude, rand.New(rand.NewSource(seed)))
}

func (u *Uniform) Sample() float64 {
	if u.Amplitude == 0 {
		return 0
	}
	return (u.rng.Float64()*2 - 1) * u.Amplitude
}

// Fixed returns the same offset every cycle. Useful in tests.
type Fixed float64

func (f Fixed) Sample() float64 { return float64(f) }
