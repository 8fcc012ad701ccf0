package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/assay"
)

const (
	DefaultCycles       = 40
	DefaultEfficiency   = 0.95
	DefaultThreshold    = 0.1
	DefaultNoise        = amplify.DefaultNoiseAmplitude
	DefaultDenaturation = 95.0
	DefaultAnnealing    = 60.0
	DefaultExtension    = 72.0
)

type Config struct {
	Target     string        `yaml:"target,omitempty"`
	Cycles     int           `yaml:"cycles"`
	Efficiency float64       `yaml:"efficiency"`
	Threshold  float64       `yaml:"threshold"`
	Noise      float64       `yaml:"noise"`
	Seed       int64         `yaml:"seed,omitempty"`
	Thermal    ThermalConfig `yaml:"thermal"`
	Assay      AssayConfig   `yaml:"assay"`
}

type ThermalConfig struct {
	Denaturation float64 `yaml:"denaturation"`
	Annealing    float64 `yaml:"annealing"`
	Extension    float64 `yaml:"extension"`
}

// AssayConfig fields left empty do not override a reference target. An empty
// dye falls back to FAM at validation.
type AssayConfig struct {
	Sequence  string `yaml:"sequence,omitempty"`
	Fasta     string `yaml:"fasta,omitempty"`
	Forward   string `yaml:"forward,omitempty"`
	Reverse   string `yaml:"reverse,omitempty"`
	Probe     string `yaml:"probe,omitempty"`
	Dye       string `yaml:"dye,omitempty"`
	Multiplex bool   `yaml:"multiplex,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Cycles:     DefaultCycles,
		Efficiency: DefaultEfficiency,
		Threshold:  DefaultThreshold,
		Noise:      DefaultNoise,
		Thermal: ThermalConfig{
			Denaturation: DefaultDenaturation,
			Annealing:    DefaultAnnealing,
			Extension:    DefaultExtension,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToForm renders the config into the textual form so it goes through the
// same validation as typed input.
func (c *Config) ToForm() assay.Form {
	f := assay.Form{
		Cycles:         strconv.Itoa(c.Cycles),
		Efficiency:     formatFloat(c.Efficiency),
		Threshold:      formatFloat(c.Threshold),
		Denaturation:   formatFloat(c.Thermal.Denaturation),
		Annealing:      formatFloat(c.Thermal.Annealing),
		Extension:      formatFloat(c.Thermal.Extension),
		NoiseAmplitude: formatFloat(c.Noise),
	}
	c.ApplyAssay(&f)
	return f
}

// ApplyAssay copies the non-empty assay fields onto f. Fasta is not read
// here; the caller loads it.
func (c *Config) ApplyAssay(f *assay.Form) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&f.Sequence, c.Assay.Sequence)
	set(&f.Forward, c.Assay.Forward)
	set(&f.Reverse, c.Assay.Reverse)
	set(&f.ProbeSequence, c.Assay.Probe)
	set(&f.Dye, c.Assay.Dye)
	if c.Assay.Multiplex {
		f.Multiplex = true
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
