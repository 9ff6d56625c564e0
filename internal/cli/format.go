// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// format.go - Number and field formatting for report output.
package cli

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/passrun-tui/internal/util"
)

// numPrinter renders large integers with digit grouping so combination
// counts like 6095689385410816 read as 6,095,689,385,410,816.
var numPrinter = message.NewPrinter(language.English)

// FormatCount renders an unsigned integer with digit grouping.
func FormatCount(n uint64) string {
	return numPrinter.Sprintf("%d", n)
}

// FormatBits renders an entropy value as "NN.NN bits".
func FormatBits(bits float64) string {
	return util.FloatToString(bits) + " bits"
}

// FormatYears renders a crack-time estimate. Values beyond a million
// years switch to scientific notation, matching how the numbers are
// discussed; sub-year durations get more precision.
func FormatYears(years float64) string {
	switch {
	case years >= 1e6:
		return util.FloatToScientific(years) + " years"
	case years >= 1:
		return util.FloatToString(years) + " years"
	case years >= 1.0/525960: // about a minute
		return util.FloatToStringPrec(years*365.25*24, 2) + " hours"
	default:
		return "under a minute"
	}
}

// PadLabel pads a label to a fixed display width, accounting for
// double-width runes so columns stay aligned in CJK locales.
func PadLabel(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w >= width {
		return label
	}
	return label + strings.Repeat(" ", width-w)
}
