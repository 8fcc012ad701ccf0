package assay

import (
	"errors"
	"testing"

	"github.com/san-kum/qpcrsim/internal/amplify"
)

func validForm() Form {
	f := DefaultForm()
	f.Sequence = "ATGCGTACGTTAGCGATCG"
	f.Forward = "ATGCGT"
	f.Reverse = "CGATCG"
	f.ProbeSequence = "TACGTT"
	return f
}

func TestDefaultForm(t *testing.T) {
	f := DefaultForm()
	if f.Cycles != "40" || f.Efficiency != "0.95" || f.Threshold != "0.1" {
		t.Errorf("unexpected run defaults: %+v", f)
	}
	if f.Denaturation != "95" || f.Annealing != "60" || f.Extension != "72" {
		t.Errorf("unexpected thermal defaults: %+v", f)
	}
	if f.Dye != "FAM" {
		t.Errorf("expected FAM, got %s", f.Dye)
	}
}

func TestParse_Valid(t *testing.T) {
	f := validForm()
	f.Sequence = "ATGC GTAC\nGTTA"
	f.Forward = "  ATGCGT "
	f.Dye = "hex"
	f.Multiplex = true

	s, err := f.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Params != (amplify.Params{Cycles: 40, Efficiency: 0.95, Threshold: 0.1}) {
		t.Errorf("unexpected params %+v", s.Params)
	}
	if s.Assay.Sequence != "ATGCGTACGTTA" {
		t.Errorf("expected whitespace stripped from sequence, got %q", s.Assay.Sequence)
	}
	if s.Assay.Forward != "ATGCGT" {
		t.Errorf("expected trimmed primer, got %q", s.Assay.Forward)
	}
	if s.Assay.Dye != "HEX" || !s.Assay.Multiplex {
		t.Errorf("unexpected assay %+v", s.Assay)
	}
	if s.Thermal != (Thermal{Denaturation: 95, Annealing: 60, Extension: 72}) {
		t.Errorf("unexpected thermal %+v", s.Thermal)
	}
	if s.NoiseAmplitude != amplify.DefaultNoiseAmplitude {
		t.Errorf("expected default noise, got %v", s.NoiseAmplitude)
	}
}

func TestParse_ProbeOptional(t *testing.T) {
	f := validForm()
	f.ProbeSequence = ""
	if _, err := f.Parse(); err != nil {
		t.Errorf("probe should be optional, got %v", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"non-numeric cycles", func(f *Form) { f.Cycles = "forty" }, FieldCycles},
		{"fractional cycles", func(f *Form) { f.Cycles = "40.5" }, FieldCycles},
		{"zero cycles", func(f *Form) { f.Cycles = "0" }, FieldCycles},
		{"non-numeric efficiency", func(f *Form) { f.Efficiency = "high" }, FieldEfficiency},
		{"zero efficiency", func(f *Form) { f.Efficiency = "0" }, FieldEfficiency},
		{"efficiency above one", func(f *Form) { f.Efficiency = "1.2" }, FieldEfficiency},
		{"nan efficiency", func(f *Form) { f.Efficiency = "NaN" }, FieldEfficiency},
		{"empty threshold", func(f *Form) { f.Threshold = "" }, FieldThreshold},
		{"negative threshold", func(f *Form) { f.Threshold = "-1" }, FieldThreshold},
		{"empty sequence", func(f *Form) { f.Sequence = " \n\t" }, FieldSequence},
		{"missing forward", func(f *Form) { f.Forward = "" }, FieldForward},
		{"missing reverse", func(f *Form) { f.Reverse = "  " }, FieldReverse},
		{"unknown dye", func(f *Form) { f.Dye = "TEXAS" }, FieldDye},
		{"bad denaturation", func(f *Form) { f.Denaturation = "hot" }, FieldDenaturation},
		{"bad annealing", func(f *Form) { f.Annealing = "" }, FieldAnnealing},
		{"bad extension", func(f *Form) { f.Extension = "7 2" }, FieldExtension},
		{"negative noise", func(f *Form) { f.NoiseAmplitude = "-0.1" }, FieldNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			s, err := f.Parse()
			if s != nil {
				t.Error("expected no settings")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q (%v)", tt.field, ve.Field, err)
			}
		})
	}
}

func TestParse_RangeErrorsWrapModelErrors(t *testing.T) {
	f := validForm()
	f.Efficiency = "1.5"
	_, err := f.Parse()
	if !errors.Is(err, amplify.ErrInvalidEfficiency) {
		t.Errorf("expected ErrInvalidEfficiency in chain, got %v", err)
	}
}

func TestParse_EmptyDyeDefaults(t *testing.T) {
	f := validForm()
	f.Dye = ""
	s, err := f.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Assay.Dye != "FAM" {
		t.Errorf("expected FAM default, got %s", s.Assay.Dye)
	}
}
