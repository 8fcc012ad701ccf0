// Package viz holds the terminal color themes and lipgloss styles shared by
// the CLI summary and the interactive TUI.
//
//   - [Theme]: named color scheme, selectable with the T key in the TUI
//   - [Styles]: lipgloss styles derived from a theme
//   - [Sparkline]: one-line curve preview for status bars
//   - [Canvas]: braille dot grid; [CurveCanvas] draws a linear-scale curve
package viz
