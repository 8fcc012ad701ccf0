package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from one theme.
type Styles struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Active    lipgloss.Style
	Panel     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	KeyHint   lipgloss.Style
	Key       lipgloss.Style
	Good      lipgloss.Style
	Bad       lipgloss.Style
	Alert     lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		Value:  lipgloss.NewStyle().Foreground(t.Text),
		Active: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 2),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Background(t.Border).
			Padding(0, 2),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Key:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Good:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Bad:     lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Error).
			Foreground(t.Error).
			Padding(0, 2),
	}
}

// Sparkline renders a one-line preview of values, sampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	n := min(width, len(values))
	var b strings.Builder
	for i := 0; i < n; i++ {
		norm := (values[i*len(values)/n] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// Separator draws a muted divider of the given width.
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-2)
	return s.Subtle.Render(left + " ◆ " + right)
}
