package assay

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/qpcrsim/internal/amplify"
)

// Field names as shown to the user.
const (
	FieldSequence     = "sequence"
	FieldForward      = "forward primer"
	FieldReverse      = "reverse primer"
	FieldProbe        = "probe"
	FieldDye          = "dye"
	FieldCycles       = "cycles"
	FieldEfficiency   = "efficiency"
	FieldThreshold    = "threshold"
	FieldDenaturation = "denaturation"
	FieldAnnealing    = "annealing"
	FieldExtension    = "extension"
	FieldNoise        = "noise"
)

// Dyes lists the reporter dyes offered by the form.
var Dyes = []string{"FAM", "HEX", "VIC", "ROX", "CY5"}

const (
	DefaultCycles       = "40"
	DefaultEfficiency   = "0.95"
	DefaultThreshold    = "0.1"
	DefaultDenaturation = "95"
	DefaultAnnealing    = "60"
	DefaultExtension    = "72"
)

// Form mirrors the input widgets; every value is raw text until parsed.
type Form struct {
	Sequence      string
	Forward       string
	Reverse       string
	ProbeSequence string
	Dye           string
	Multiplex     bool

	Cycles     string
	Efficiency string
	Threshold  string

	Denaturation string
	Annealing    string
	Extension    string

	NoiseAmplitude string
}

func DefaultForm() Form {
	return Form{
		Dye:            Dyes[0],
		Cycles:         DefaultCycles,
		Efficiency:     DefaultEfficiency,
		Threshold:      DefaultThreshold,
		Denaturation:   DefaultDenaturation,
		Annealing:      DefaultAnnealing,
		Extension:      DefaultExtension,
		NoiseAmplitude: strconv.FormatFloat(amplify.DefaultNoiseAmplitude, 'g', -1, 64),
	}
}

type Thermal struct {
	Denaturation float64 `json:"denaturation_c"`
	Annealing    float64 `json:"annealing_c"`
	Extension    float64 `json:"extension_c"`
}

type Assay struct {
	Sequence  string `json:"sequence"`
	Forward   string `json:"forward"`
	Reverse   string `json:"reverse"`
	Probe     string `json:"probe"`
	Dye       string `json:"dye"`
	Multiplex bool   `json:"multiplex"`
}

// Settings is a fully validated run description.
type Settings struct {
	Params         amplify.Params
	Thermal        Thermal
	Assay          Assay
	NoiseAmplitude float64
}

// Parse validates the form. The first violated constraint is returned as a
// *ValidationError.
func (f Form) Parse() (*Settings, error) {
	s := &Settings{}

	cycles, err := strconv.Atoi(strings.TrimSpace(f.Cycles))
	if err != nil {
		return nil, invalid(FieldCycles, "must be a whole number", err)
	}
	eff, err := parseFloat(f.Efficiency)
	if err != nil {
		return nil, invalid(FieldEfficiency, "must be a number", err)
	}
	thr, err := parseFloat(f.Threshold)
	if err != nil {
		return nil, invalid(FieldThreshold, "must be a number", err)
	}
	s.Params = amplify.Params{Cycles: cycles, Efficiency: eff, Threshold: thr}
	if err := amplify.Validate(s.Params); err != nil {
		return nil, paramToValidation(err)
	}

	s.Assay = Assay{
		Sequence:  strings.Join(strings.Fields(f.Sequence), ""),
		Forward:   strings.TrimSpace(f.Forward),
		Reverse:   strings.TrimSpace(f.Reverse),
		Probe:     strings.TrimSpace(f.ProbeSequence),
		Dye:       strings.ToUpper(strings.TrimSpace(f.Dye)),
		Multiplex: f.Multiplex,
	}
	if s.Assay.Sequence == "" {
		return nil, invalid(FieldSequence, "must not be empty", nil)
	}
	if s.Assay.Forward == "" {
		return nil, invalid(FieldForward, "is required", nil)
	}
	if s.Assay.Reverse == "" {
		return nil, invalid(FieldReverse, "is required", nil)
	}
	if s.Assay.Dye == "" {
		s.Assay.Dye = Dyes[0]
	}
	if !knownDye(s.Assay.Dye) {
		return nil, invalid(FieldDye, "must be one of "+strings.Join(Dyes, ", "), nil)
	}

	temps := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{FieldDenaturation, f.Denaturation, &s.Thermal.Denaturation},
		{FieldAnnealing, f.Annealing, &s.Thermal.Annealing},
		{FieldExtension, f.Extension, &s.Thermal.Extension},
	}
	for _, tc := range temps {
		v, err := parseFloat(tc.raw)
		if err != nil {
			return nil, invalid(tc.field, "temperature must be a number", err)
		}
		*tc.dst = v
	}

	s.NoiseAmplitude = amplify.DefaultNoiseAmplitude
	if strings.TrimSpace(f.NoiseAmplitude) != "" {
		n, err := parseFloat(f.NoiseAmplitude)
		if err != nil {
			return nil, invalid(FieldNoise, "must be a number", err)
		}
		if n < 0 {
			return nil, invalid(FieldNoise, "must not be negative", nil)
		}
		s.NoiseAmplitude = n
	}

	return s, nil
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func knownDye(d string) bool {
	for _, known := range Dyes {
		if d == known {
			return true
		}
	}
	return false
}

func paramToValidation(err error) error {
	var pe *amplify.ParamError
	if !errors.As(err, &pe) {
		return err
	}
	switch {
	case errors.Is(err, amplify.ErrInvalidCycles):
		return invalid(FieldCycles, "must be greater than 0", err)
	case errors.Is(err, amplify.ErrInvalidEfficiency):
		return invalid(FieldEfficiency, "must be greater than 0 and at most 1", err)
	case errors.Is(err, amplify.ErrInvalidThreshold):
		return invalid(FieldThreshold, "must be greater than 0", err)
	}
	return invalid(pe.Param, pe.Wrapped.Error(), err)
}
