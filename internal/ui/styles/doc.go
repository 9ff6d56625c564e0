// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the passrun TUI.

All colors use Lip Gloss AdaptiveColor so the interface adjusts to
light and dark terminal backgrounds without configuration.

# Components

## Colors (colors.go)

The adaptive color palette: accent colors, semantic colors for the
secure/insecure verdict, surface and text tones, and the four-stop
gradient used by the strength meter.

## Theme (theme.go)

The Theme struct bundles every lipgloss style the TUI renders with.
Construct one with NewTheme at startup; it detects the terminal color
profile and background once and derives all styles from the palette.

# Usage

	theme := styles.NewTheme()
	fmt.Println(theme.Header.Render("passrun"))
*/
package styles
