package tui

import (
	"github.com/san-kum/qpcrsim/internal/assay"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindChoice
	kindToggle
)

// field binds one row of a form tab to the value it edits.
type field struct {
	label string
	// name matches assay.ValidationError.Field so errors can focus the row.
	name string
	kind fieldKind
	get  func(m *Model) string
	set  func(m *Model, v string)
}

func formField(label, name string, ptr func(f *assay.Form) *string) field {
	return field{
		label: label,
		name:  name,
		kind:  kindText,
		get:   func(m *Model) string { return *ptr(&m.session.Form) },
		set:   func(m *Model, v string) { *ptr(&m.session.Form) = v },
	}
}

var inputFields = []field{
	formField("Sequence", assay.FieldSequence, func(f *assay.Form) *string { return &f.Sequence }),
	formField("Forward primer", assay.FieldForward, func(f *assay.Form) *string { return &f.Forward }),
	formField("Reverse primer", assay.FieldReverse, func(f *assay.Form) *string { return &f.Reverse }),
	formField("Probe", assay.FieldProbe, func(f *assay.Form) *string { return &f.ProbeSequence }),
	{
		label: "Dye",
		name:  assay.FieldDye,
		kind:  kindChoice,
		get:   func(m *Model) string { return m.session.Form.Dye },
		set:   func(m *Model, v string) { m.session.Form.Dye = v },
	},
	{
		label: "Multiplex",
		kind:  kindToggle,
		get: func(m *Model) string {
			if m.session.Form.Multiplex {
				return "on"
			}
			return "off"
		},
		set: func(m *Model, v string) { m.session.Form.Multiplex = v == "on" },
	},
	{
		label: "FASTA file",
		kind:  kindText,
		get:   func(m *Model) string { return m.fastaPath },
		set:   func(m *Model, v string) { m.fastaPath = v },
	},
}

var settingsFields = []field{
	formField("Cycles", assay.FieldCycles, func(f *assay.Form) *string { return &f.Cycles }),
	formField("Efficiency", assay.FieldEfficiency, func(f *assay.Form) *string { return &f.Efficiency }),
	formField("Threshold", assay.FieldThreshold, func(f *assay.Form) *string { return &f.Threshold }),
	formField("Noise (±)", assay.FieldNoise, func(f *assay.Form) *string { return &f.NoiseAmplitude }),
	formField("Denaturation °C", assay.FieldDenaturation, func(f *assay.Form) *string { return &f.Denaturation }),
	formField("Annealing °C", assay.FieldAnnealing, func(f *assay.Form) *string { return &f.Annealing }),
	formField("Extension °C", assay.FieldExtension, func(f *assay.Form) *string { return &f.Extension }),
}

// cycleDye steps through assay.Dyes; an unknown value restarts at the first.
func cycleDye(current string, dir int) string {
	n := len(assay.Dyes)
	for i, d := range assay.Dyes {
		if d == current {
			return assay.Dyes[((i+dir)%n+n)%n]
		}
	}
	return assay.Dyes[0]
}
