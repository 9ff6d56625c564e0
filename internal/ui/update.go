// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// update.go - Message handling for the interactive analyzer.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/passrun-tui/internal/config"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a hot-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// waitForConfig blocks on the watcher channel and converts reloads
// into Bubble Tea messages. Re-issued after every delivery.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-w.Updates()
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		inputWidth := msg.Width - 8
		if inputWidth < 20 {
			inputWidth = 20
		}
		m.input.Width = inputWidth
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		if m.watcher != nil {
			return m, waitForConfig(m.watcher)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+r":
		// Toggle input masking
		m.masked = !m.masked
		if m.masked {
			m.input.EchoMode = textinput.EchoPassword
			m.input.EchoCharacter = '•'
		} else {
			m.input.EchoMode = textinput.EchoNormal
		}
		return m, nil

	case "ctrl+u":
		// Clear the field
		m.input.SetValue("")
		m.reanalyze()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reanalyze()
	return m, cmd
}
