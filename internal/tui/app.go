// Package tui is the interactive terminal front end: an Input tab for the
// assay, a Settings tab for run parameters and a Results tab with the curve.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/qpcrsim/internal/assay"
	"github.com/san-kum/qpcrsim/internal/logging"
	"github.com/san-kum/qpcrsim/internal/reference"
	"github.com/san-kum/qpcrsim/internal/storage"
	"github.com/san-kum/qpcrsim/internal/viz"
)

type tab int

const (
	tabInput tab = iota
	tabSettings
	tabResults
	tabCount
)

var tabNames = [tabCount]string{"Input", "Settings", "Results"}

type alert struct {
	title string
	msg   string
}

// Options configures a Model. Zero values get sensible defaults.
type Options struct {
	Session    *assay.Session
	References *reference.DB
	// Store enables the save key; nil disables it.
	Store  *storage.Store
	Logger *slog.Logger
	Theme  string
	// Seeds supplies the noise seed for each run.
	Seeds func() int64
	// NoNoise disables the noise term for every run.
	NoNoise bool
}

type Model struct {
	session *assay.Session
	refs    *reference.DB
	store   *storage.Store
	log     *slog.Logger
	theme   viz.Theme
	styles  viz.Styles
	seeds   func() int64
	noNoise bool

	tab     tab
	cursor  [tabCount]int
	editing bool
	editBuf string

	fastaPath  string
	exampleIdx int
	lastSeed   int64
	alert      *alert
	status     string

	width  int
	height int
}

func New(opts Options) Model {
	if opts.Session == nil {
		opts.Session = assay.NewSession()
	}
	if opts.References == nil {
		opts.References = reference.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Seeds == nil {
		opts.Seeds = func() int64 { return time.Now().UnixNano() }
	}
	theme := viz.GetTheme(opts.Theme)
	return Model{
		session: opts.Session,
		refs:    opts.References,
		store:   opts.Store,
		log:     opts.Logger,
		theme:   theme,
		styles:  theme.Styles(),
		seeds:   opts.Seeds,
		noNoise: opts.NoNoise,
		width:   100,
		height:  32,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.alert != nil {
		switch msg.String() {
		case "enter", "esc":
			m.alert = nil
		}
		return m, nil
	}
	if m.editing {
		return m.editKey(msg)
	}
	return m.normalKey(msg)
}

func (m Model) editKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.fields()[m.cursor[m.tab]].set(&m, m.editBuf)
		m.editing = false
		m.editBuf = ""
	case tea.KeyEsc:
		m.editing = false
		m.editBuf = ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.editBuf = ""
	case tea.KeySpace:
		m.editBuf += " "
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	}
	return m, nil
}

func (m Model) normalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
	case "up", "k":
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case "down", "j":
		if m.cursor[m.tab] < len(m.fields())-1 {
			m.cursor[m.tab]++
		}
	case "left", "h":
		m.adjustChoice(-1)
	case "right", "l":
		m.adjustChoice(1)
	case "enter", " ":
		m.activate()
	case "r":
		m.run()
	case "c":
		m.session.Clear()
		m.fastaPath = ""
		m.status = "Inputs cleared."
	case "e":
		m.nextExample()
	case "f":
		m.loadFasta()
	case "t":
		m.theme = viz.NextTheme(m.theme)
		m.styles = m.theme.Styles()
		m.status = "Theme: " + m.theme.Name
	case "s":
		m.save()
	}
	return m, nil
}

func (m Model) fields() []field {
	switch m.tab {
	case tabInput:
		return inputFields
	case tabSettings:
		return settingsFields
	}
	return nil
}

func (m *Model) activate() {
	fields := m.fields()
	if len(fields) == 0 {
		return
	}
	f := fields[m.cursor[m.tab]]
	switch f.kind {
	case kindChoice:
		m.adjustChoice(1)
	case kindToggle:
		if f.get(m) == "on" {
			f.set(m, "off")
		} else {
			f.set(m, "on")
		}
	default:
		m.editing = true
		m.editBuf = f.get(m)
	}
}

func (m *Model) adjustChoice(dir int) {
	fields := m.fields()
	if len(fields) == 0 {
		return
	}
	f := fields[m.cursor[m.tab]]
	if f.kind == kindChoice {
		f.set(m, cycleDye(f.get(m), dir))
	}
}

func (m *Model) run() {
	seed := m.seeds()
	m.session.Noise = assay.SeededNoise(seed)
	m.session.NoNoise = m.noNoise

	run, err := m.session.Run()
	if err != nil {
		var ve *assay.ValidationError
		if errors.As(err, &ve) {
			m.log.Debug("rejected input", "field", ve.Field, "reason", ve.Reason)
			m.focus(ve.Field)
			m.alert = &alert{title: "Invalid input", msg: ve.Error()}
			return
		}
		m.log.Error("simulation failed", "error", err)
		m.alert = &alert{title: "Simulation error", msg: "An unexpected error occurred during simulation:\n" + err.Error()}
		return
	}

	m.lastSeed = seed
	m.log.Info("simulation complete",
		"cycles", run.Settings.Params.Cycles,
		"efficiency", run.Settings.Params.Efficiency,
		"ct", run.Result.CtLabel())
	m.tab = tabResults
	m.status = "Simulation complete."
}

// focus moves the cursor to the field reporting a validation error.
func (m *Model) focus(name string) {
	for t, fields := range [][]field{inputFields, settingsFields} {
		for i, f := range fields {
			if f.name == name {
				m.tab = tab(t)
				m.cursor[m.tab] = i
				return
			}
		}
	}
}

func (m *Model) nextExample() {
	names := m.refs.Names()
	if len(names) == 0 {
		m.alert = &alert{title: "No examples", msg: "The reference set has no targets."}
		return
	}
	name := names[m.exampleIdx%len(names)]
	m.exampleIdx++
	if err := m.session.LoadExample(m.refs, name); err != nil {
		m.alert = &alert{title: "Example failed", msg: err.Error()}
		return
	}
	m.log.Debug("loaded example", "target", name)
	m.status = "Loaded example: " + name
}

func (m *Model) loadFasta() {
	if m.fastaPath == "" {
		m.tab = tabInput
		m.cursor[tabInput] = len(inputFields) - 1
		m.alert = &alert{title: "No file", msg: "Enter a FASTA path in the FASTA file field first."}
		return
	}
	if err := m.session.LoadSequenceFile(m.fastaPath); err != nil {
		m.log.Warn("sequence file rejected", "path", m.fastaPath, "error", err)
		m.alert = &alert{title: "File error", msg: "Failed to load file:\n" + err.Error()}
		return
	}
	m.status = fmt.Sprintf("Loaded %d bases from %s", len(m.session.Form.Sequence), m.fastaPath)
}

func (m *Model) save() {
	if m.store == nil {
		m.status = "Saving is disabled."
		return
	}
	run := m.session.Last()
	if run == nil {
		m.alert = &alert{title: "Nothing to save", msg: "Run a simulation before saving."}
		return
	}
	id, err := m.store.Save(run, m.lastSeed)
	if err != nil {
		m.log.Error("save failed", "error", err)
		m.alert = &alert{title: "Save failed", msg: err.Error()}
		return
	}
	m.log.Info("run saved", "id", id)
	m.status = "Saved " + id
}

// Run starts the full-screen application.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
