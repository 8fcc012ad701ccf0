// Package report renders a completed run as text, terminal plots and images.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/assay"
	"github.com/san-kum/qpcrsim/internal/viz"
)

const seqPreview = 40

type row struct {
	label, value string
}

type section struct {
	title string
	rows  []row
}

func sections(s *assay.Settings, r *amplify.Result, metrics map[string]float64) []section {
	ct := r.CtLabel()
	if r.Reached() {
		ct = fmt.Sprintf("%d (reading %.4g)", r.Ct, r.Curve[r.Ct])
	}

	probe := s.Assay.Probe
	if probe == "" {
		probe = "-"
	}
	multiplex := "off"
	if s.Assay.Multiplex {
		multiplex = "on"
	}

	out := []section{
		{"Simulation", []row{
			{"Cycles", fmt.Sprintf("%d", s.Params.Cycles)},
			{"Efficiency", fmt.Sprintf("%g", s.Params.Efficiency)},
			{"Threshold", fmt.Sprintf("%g", s.Params.Threshold)},
			{"Noise", fmt.Sprintf("±%g", s.NoiseAmplitude)},
			{"Ct value", ct},
		}},
		{"Thermal Profile", []row{
			{"Denaturation", fmt.Sprintf("%.1f °C", s.Thermal.Denaturation)},
			{"Annealing", fmt.Sprintf("%.1f °C", s.Thermal.Annealing)},
			{"Extension", fmt.Sprintf("%.1f °C", s.Thermal.Extension)},
		}},
		{"Assay", []row{
			{"Sequence", previewSequence(s.Assay.Sequence)},
			{"Forward primer", s.Assay.Forward},
			{"Reverse primer", s.Assay.Reverse},
			{"Probe", probe},
			{"Dye", s.Assay.Dye},
			{"Multiplex", multiplex},
		}},
	}

	if len(metrics) > 0 {
		names := make([]string, 0, len(metrics))
		for name := range metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		m := section{title: "Metrics"}
		for _, name := range names {
			m.rows = append(m.rows, row{name, fmt.Sprintf("%.6g", metrics[name])})
		}
		out = append(out, m)
	}
	return out
}

func previewSequence(seq string) string {
	if len(seq) <= seqPreview {
		return fmt.Sprintf("%s (%d bp)", seq, len(seq))
	}
	return fmt.Sprintf("%s... (%d bp)", seq[:seqPreview], len(seq))
}

// Summary renders the plain-text results block.
func Summary(s *assay.Settings, r *amplify.Result, metrics map[string]float64) string {
	var b strings.Builder
	for i, sec := range sections(s, r, metrics) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.title + "\n")
		for _, rw := range sec.rows {
			fmt.Fprintf(&b, "  %-16s %s\n", rw.label+":", rw.value)
		}
	}
	return b.String()
}

// StyledSummary renders the same block with theme colors.
func StyledSummary(theme viz.Theme, s *assay.Settings, r *amplify.Result, metrics map[string]float64) string {
	st := theme.Styles()
	blocks := make([]string, 0, 4)
	for _, sec := range sections(s, r, metrics) {
		lines := []string{st.Title.Render(sec.title)}
		for _, rw := range sec.rows {
			val := st.Value.Render(rw.value)
			if rw.label == "Ct value" {
				if r.Reached() {
					val = st.Good.Render(rw.value)
				} else {
					val = st.Bad.Render(rw.value)
				}
			}
			lines = append(lines, st.Label.Render(rw.label)+val)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, interleave(blocks, "")...)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
