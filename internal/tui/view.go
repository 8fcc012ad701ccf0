package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qpcrsim/internal/report"
	"github.com/san-kum/qpcrsim/internal/viz"
)

const valueWidth = 48

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + m.styles.Title.Render("q p c r s i m") + "  " +
		m.styles.Subtle.Render("amplification curve simulator") + "\n\n")
	b.WriteString("  " + m.viewTabs() + "\n")
	b.WriteString("  " + m.styles.Separator(min(m.width-4, 72)) + "\n\n")

	if m.alert != nil {
		b.WriteString(m.viewAlert())
		return b.String()
	}

	switch m.tab {
	case tabInput, tabSettings:
		b.WriteString(m.viewForm())
		b.WriteString(m.viewLastRun())
	case tabResults:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("  " + m.styles.Value.Render(m.status) + "\n")
	}
	b.WriteString("  " + m.viewHints() + "\n")
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	var b strings.Builder
	for i, f := range m.fields() {
		val := f.get(&m)
		selected := i == m.cursor[m.tab]
		editing := selected && m.editing
		if editing {
			val = m.editBuf + "▋"
		}
		switch f.kind {
		case kindChoice:
			val = "◂ " + val + " ▸"
		case kindToggle:
			if val == "on" {
				val = "[x]"
			} else {
				val = "[ ]"
			}
		}
		if editing {
			val = clipLeft(val, valueWidth)
		} else {
			val = clip(val, valueWidth)
		}

		if selected {
			b.WriteString("  " + m.styles.Key.Render("▸ ") + m.styles.Label.Render(f.label) + m.styles.Active.Render(val) + "\n")
		} else {
			b.WriteString("    " + m.styles.Label.Render(f.label) + m.styles.Value.Render(val) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewResults() string {
	run := m.session.Last()
	if run == nil {
		return "  " + m.styles.Subtle.Render("No results yet. Press r to run.") + "\n"
	}

	opts := report.DefaultPlotOptions()
	opts.Width = max(min(m.width-16, 96), 30)
	opts.Height = max(min(m.height-24, 16), 8)
	opts.Theme = &m.theme
	graph := report.ASCIIPlot(run.Result, opts)

	summary := report.StyledSummary(m.theme, run.Settings, run.Result, run.Metrics)
	linear := viz.CurveCanvas(run.Result.Curve, run.Settings.Params.Threshold, 24, 8).String()
	thumb := m.styles.Title.Render("Linear scale") + "\n" +
		lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(linear)

	return lipgloss.JoinVertical(lipgloss.Left,
		indent(graph),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Panel.MarginLeft(2).Render(summary),
			m.styles.Panel.MarginLeft(2).Render(thumb),
		),
	) + "\n"
}

// viewLastRun is a one-line reminder of the current result on the form tabs.
func (m Model) viewLastRun() string {
	run := m.session.Last()
	if run == nil {
		return ""
	}
	return "\n  " + m.styles.Label.Render("Last run") +
		m.styles.Value.Render(viz.Sparkline(run.Result.Curve, 24)) + "  " +
		m.styles.Subtle.Render("Ct "+run.Result.CtLabel()) + "\n"
}

func (m Model) viewAlert() string {
	body := m.styles.Title.Render(m.alert.title) + "\n\n" + m.alert.msg
	return m.styles.Alert.MarginLeft(2).Render(body) + "\n\n  " +
		m.styles.KeyHint.Render("enter/esc dismiss") + "\n"
}

func (m Model) viewHints() string {
	if m.editing {
		return m.styles.KeyHint.Render("enter apply  esc cancel  ctrl+u clear")
	}
	hints := []string{"tab switch", "↑↓ select", "enter edit", "r run", "c clear", "e example", "f load fasta", "t theme"}
	if m.store != nil {
		hints = append(hints, "s save")
	}
	hints = append(hints, "q quit")
	return m.styles.KeyHint.Render(strings.Join(hints, "  "))
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// clipLeft keeps the end of s visible so the edit cursor stays on screen.
func clipLeft(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return "…" + string(r[len(r)-width+1:])
}
