// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package ui provides the interactive analyzer view for the passrun TUI.

The package implements a single-screen Bubble Tea application: a
password input field with live analysis. Every keystroke re-runs the
analyzer and updates the strength meter, entropy metrics, verdict, and
crack-time estimate in place.

# Key Components

## Model (model.go)

The Model struct is the Bubble Tea model holding the input field, the
active policy, and the latest analysis report. Input is masked by
default; Ctrl+R toggles visibility.

## Update Loop (update.go)

Handles keyboard input, window resizing, and configuration hot-reload.
The config watcher delivers reloaded configs as Bubble Tea messages so
policy changes in ~/.passrun/config.toml apply to the live session
without restarting.

## View Rendering (view.go)

Renders the header, input area with character counter, strength meter,
metric rows, verdict line, pattern warnings, and the shortcut bar.

# Usage

Create a model and run it as a Bubble Tea program:

	cfg, _ := config.Load()
	m, _ := ui.New(cfg, styles.NewTheme())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
*/
package ui
