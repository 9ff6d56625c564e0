// passrun - a terminal password entropy analyzer.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/passrun-tui/internal/cli"
	"github.com/jeranaias/passrun-tui/internal/config"
	"github.com/jeranaias/passrun-tui/internal/ui"
	"github.com/jeranaias/passrun-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdAnalyze:
		os.Exit(cli.Fail(cli.HandleAnalyze(args)))
	case cli.CmdConfig:
		os.Exit(cli.Fail(cli.HandleConfig(args)))
	case cli.CmdPolicy:
		os.Exit(cli.Fail(cli.HandlePolicy(args)))
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp(args)
	default:
		runTUI()
	}
}

// runTUI starts the interactive analyzer.
func runTUI() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}

	theme := styles.NewTheme()
	m, err := ui.New(cfg, theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running passrun: %v\n", err)
		os.Exit(1)
	}
}
