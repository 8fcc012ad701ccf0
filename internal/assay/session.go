package assay

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/fasta"
	"github.com/san-kum/qpcrsim/internal/metrics"
	"github.com/san-kum/qpcrsim/internal/reference"
)

// NoiseFactory builds the noise source for one run.
type NoiseFactory func(amplitude float64) amplify.Noise

// SeededNoise returns a factory producing uniform noise from seed.
func SeededNoise(seed int64) NoiseFactory {
	return func(amplitude float64) amplify.Noise {
		return amplify.NewUniform(amplitude, rand.New(rand.NewSource(seed)))
	}
}

// ZeroNoise disables the noise term regardless of amplitude.
func ZeroNoise(float64) amplify.Noise { return amplify.NoNoise{} }

// Run is one completed simulation.
type Run struct {
	Settings *Settings
	Result   *amplify.Result
	Metrics  map[string]float64
}

type Session struct {
	Form  Form
	Noise NoiseFactory
	// NoNoise runs without the noise term and records a zero amplitude,
	// whatever the form says.
	NoNoise bool

	last *Run
}

func NewSession() *Session {
	return &Session{
		Form:  DefaultForm(),
		Noise: func(amplitude float64) amplify.Noise {
			return amplify.NewSeededUniform(amplitude, time.Now().UnixNano())
		},
	}
}

// Last returns the most recent successful run, or nil.
func (s *Session) Last() *Run {
	return s.last
}

// Run validates the form and simulates. The stored run is replaced only on
// success; on any error the previous run is left as it was.
func (s *Session) Run() (*Run, error) {
	settings, err := s.Form.Parse()
	if err != nil {
		return nil, err
	}
	if s.NoNoise {
		settings.NoiseAmplitude = 0
	}

	run, err := s.simulate(settings)
	if err != nil {
		return nil, err
	}
	s.last = run
	return run, nil
}

func (s *Session) simulate(settings *Settings) (run *Run, err error) {
	defer func() {
		if r := recover(); r != nil {
			run, err = nil, fmt.Errorf("%w: %v", ErrSimulationFailed, r)
		}
	}()

	factory := s.Noise
	if factory == nil || s.NoNoise {
		factory = ZeroNoise
	}

	set := metrics.Default(settings.Params.Threshold)
	res, err := amplify.Simulate(settings.Params, factory(settings.NoiseAmplitude), set.Observers()...)
	if err != nil {
		return nil, err
	}

	return &Run{
		Settings: settings,
		Result:   res,
		Metrics:  set.Values(),
	}, nil
}

// Clear empties the assay fields and drops the current result. Run
// parameters and the thermal profile keep their values.
func (s *Session) Clear() {
	s.Form.Sequence = ""
	s.Form.Forward = ""
	s.Form.Reverse = ""
	s.Form.ProbeSequence = ""
	s.last = nil
}

// LoadExample fills the assay fields from a reference target.
func (s *Session) LoadExample(db *reference.DB, name string) error {
	t, ok := db.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, name)
	}
	ApplyTarget(&s.Form, t)
	return nil
}

// ApplyTarget copies a target's sequence, primers and probe into f and
// clears the multiplex flag.
func ApplyTarget(f *Form, t reference.Target) {
	f.Sequence = t.Sequence
	f.Forward = t.Forward
	f.Reverse = t.Reverse
	f.ProbeSequence = t.Probe.Sequence
	f.Dye = Dyes[0]
	if knownDye(t.Probe.Dye) {
		f.Dye = t.Probe.Dye
	}
	f.Multiplex = false
}

// LoadSequenceFile replaces the sequence with the contents of a FASTA file.
// On failure the form is left untouched.
func (s *Session) LoadSequenceFile(path string) error {
	seq, err := fasta.Load(path)
	if err != nil {
		return fmt.Errorf("load sequence file: %w", err)
	}
	s.Form.Sequence = seq
	return nil
}
