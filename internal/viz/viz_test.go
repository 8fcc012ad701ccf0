package viz

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != ThemeLab.Name {
		t.Error("expected fallback to lab theme")
	}
}

func TestNextThemeWraps(t *testing.T) {
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) {
		t.Errorf("expected to visit %d themes, visited %d", len(Themes), len(seen))
	}
	if th.Name != Themes[0].Name {
		t.Errorf("expected wrap to %s, got %s", Themes[0].Name, th.Name)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) || names[0] != "lab" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{1, 2, 4, 8, 16, 32}, 6)
	if utf8.RuneCountInString(s) != 6 {
		t.Errorf("expected 6 runes, got %q", s)
	}
	runes := []rune(s)
	if runes[0] != '▁' || runes[5] != '█' {
		t.Errorf("expected low-to-high sparkline, got %q", s)
	}
}

func TestSparkline_Empty(t *testing.T) {
	if s := Sparkline(nil, 4); s != strings.Repeat("─", 4) {
		t.Errorf("unexpected empty sparkline %q", s)
	}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	got := []rune(c.String())
	if got[0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", got[0])
	}
	if got[1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", got[1])
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for i, r := range []rune(c.String()) {
		if r != 0x2809 {
			t.Errorf("cell %d = %U, want top row set", i, r)
		}
	}
}

func TestCurveCanvas(t *testing.T) {
	c := CurveCanvas([]float64{2, 4, 8, 16, 32}, 10, 10, 4)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for _, l := range lines {
		if utf8.RuneCountInString(l) != 10 {
			t.Errorf("line %q has %d cells, want 10", l, utf8.RuneCountInString(l))
		}
	}
	// The peak lands in the top right cell.
	if top := []rune(lines[0]); top[9] == 0x2800 {
		t.Error("expected the last reading in the top right cell")
	}
}

func TestCurveCanvas_Empty(t *testing.T) {
	c := CurveCanvas(nil, 1, 3, 1)
	if c.String() != strings.Repeat(string(rune(0x2800)), 3) {
		t.Errorf("unexpected canvas %q", c.String())
	}
}
