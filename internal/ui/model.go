// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// model.go - Bubble Tea model for the interactive analyzer.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/passrun-tui/internal/analyzer"
	"github.com/jeranaias/passrun-tui/internal/config"
	"github.com/jeranaias/passrun-tui/internal/policy"
	"github.com/jeranaias/passrun-tui/internal/ui/styles"
)

// watchDebounce coalesces editor write bursts into one config reload.
const watchDebounce = 250 * time.Millisecond

// Model is the Bubble Tea model for the interactive analyzer.
type Model struct {
	// Theme and styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Password input
	input  textinput.Model
	masked bool

	// Strength meter, fill is fraction of the threshold reached
	meter progress.Model

	// Analysis state
	cfg      *config.Config
	pol      policy.Policy
	analyzer *analyzer.Analyzer
	report   *analyzer.Report
	inputErr error

	// Config hot-reload; nil when no config file exists yet
	watcher *config.Watcher

	quitting bool
}

// New creates the analyzer model from a loaded config. The config
// watcher is optional: when the config file does not exist the model
// runs with the loaded policy and no hot-reload.
func New(cfg *config.Config, theme *styles.Theme) (Model, error) {
	pol, err := cfg.ToPolicy()
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "Type a password to analyze..."
	ti.CharLimit = policy.MaxPasswordLength
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cyan)
	if cfg.UI.MaskInput {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()

	meter := progress.New(
		progress.WithScaledGradient(styles.MeterWeak.Dark, styles.MeterStrong.Dark),
		progress.WithoutPercentage(),
	)
	meter.Width = meterWidth

	m := Model{
		theme:    theme,
		input:    ti,
		meter:    meter,
		masked:   cfg.UI.MaskInput,
		cfg:      cfg,
		pol:      pol,
		analyzer: analyzer.New(pol),
	}

	if w, err := config.NewWatcher(watchDebounce); err == nil {
		if err := w.Watch(); err == nil {
			m.watcher = w
		} else {
			w.Close()
		}
	}

	return m, nil
}

// Init starts cursor blinking and config watching.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Close releases the config watcher. Call after the program exits.
func (m Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// Report returns the latest analysis, nil before any input.
func (m Model) Report() *analyzer.Report {
	return m.report
}

// reanalyze runs the analyzer on the current input. Empty input clears
// the report instead of surfacing ErrEmptyPassword: an empty field is
// the idle state, not a user mistake.
func (m *Model) reanalyze() {
	password := m.input.Value()
	if password == "" {
		m.report = nil
		m.inputErr = nil
		return
	}
	report, err := m.analyzer.Analyze(password)
	if err != nil {
		m.report = nil
		m.inputErr = err
		return
	}
	m.report = report
	m.inputErr = nil
}

// applyConfig swaps in a reloaded config, rebuilding the policy and
// re-analyzing the current input against it.
func (m *Model) applyConfig(cfg *config.Config) {
	pol, err := cfg.ToPolicy()
	if err != nil {
		// Invalid reloads are dropped; the running policy stays.
		return
	}
	m.cfg = cfg
	m.pol = pol
	m.analyzer = analyzer.New(pol)
	m.reanalyze()
}
