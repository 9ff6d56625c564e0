// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Rendering for the interactive analyzer.
package ui

import (
	"fmt"
	"strings"

	"github.com/jeranaias/passrun-tui/internal/analyzer"
	"github.com/jeranaias/passrun-tui/internal/policy"
	"github.com/jeranaias/passrun-tui/internal/util"
)

const (
	meterWidth  = 40
	metricWidth = 20
)

// View renders the analyzer screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Header
	title := m.theme.HeaderTitle.Render("passrun") + " " +
		m.theme.HeaderSubtitle.Render("password entropy analyzer")
	b.WriteString(m.theme.Header.Render(title) + "\n\n")

	// Input area with character counter
	count := fmt.Sprintf("%d/%d", len([]rune(m.input.Value())), policy.MaxPasswordLength)
	countStyle := m.theme.CharCount
	if len([]rune(m.input.Value())) >= policy.MaxPasswordLength {
		countStyle = m.theme.CharCountDanger
	}
	b.WriteString(m.theme.InputContainer.Render(
		m.input.View()+"  "+countStyle.Render(count)) + "\n\n")

	switch {
	case m.inputErr != nil:
		b.WriteString(m.theme.VerdictInsecure.Render("  "+m.inputErr.Error()) + "\n")
	case m.report != nil:
		b.WriteString(m.renderReport(m.report))
	default:
		b.WriteString(m.theme.Footnote.Render("  Start typing. Analysis is live; nothing is stored.") + "\n")
	}

	b.WriteString("\n" + m.renderStatusBar())
	return m.theme.Container.Render(b.String())
}

// renderReport renders the meter, metric rows, verdict, and warnings.
func (m Model) renderReport(r *analyzer.Report) string {
	var b strings.Builder

	b.WriteString(m.renderMeter(r) + "\n\n")

	b.WriteString(m.metric("Length", fmt.Sprintf("%d chars, %d unique", r.Length, r.UniqueChars)))
	b.WriteString(m.metric("Alphabet", fmt.Sprintf("%d symbols, complexity %d/%d",
		r.AlphabetSize, r.ComplexityScore, policy.MaxComplexityScore)))
	b.WriteString(m.metric("Shannon entropy", util.FloatToString(r.ShannonEntropy)+" bits/char"))
	b.WriteString(m.metric("Space entropy", util.FloatToString(r.SpaceEntropy)+" bits"))
	b.WriteString(m.metric("Threshold", util.FloatToString(r.Verdict.Threshold)+" bits"))
	b.WriteString(m.metric("Time to crack", crackTime(r)))

	b.WriteString("\n")
	if r.Verdict.Secure {
		b.WriteString(m.theme.VerdictSecure.Render("  ✅ Meets security requirements") + "\n")
	} else {
		b.WriteString(m.theme.VerdictInsecure.Render("  ❌ Below the security threshold") + "\n")
		if r.RecommendedLength > r.Length {
			b.WriteString(m.theme.MetricLabel.Render(fmt.Sprintf(
				"     add %d more characters to reach %d", r.RecommendedLength-r.Length, r.RecommendedLength)) + "\n")
		}
	}

	for _, w := range r.Warnings {
		b.WriteString(m.theme.Warning.Render("  ⚠ "+w) + "\n")
	}

	return b.String()
}

// renderMeter draws the strength meter: fill is the fraction of the
// security threshold reached, capped at the full bar. The percentage
// readout keeps growing past 100 so overshoot stays visible.
func (m Model) renderMeter(r *analyzer.Report) string {
	fraction := 0.0
	if r.Verdict.Threshold > 0 {
		fraction = r.SpaceEntropy / r.Verdict.Threshold
	}
	shown := fraction
	if shown > 1 {
		shown = 1
	}

	readout := m.theme.MeterFill(fraction).Render(fmt.Sprintf(" %d%%", int(fraction*100)))
	return "  " + m.meter.ViewAs(shown) + readout
}

// metric renders one aligned label/value row.
func (m Model) metric(label, value string) string {
	padded := label + strings.Repeat(" ", max(0, metricWidth-len(label)))
	return "  " + m.theme.MetricLabel.Render(padded) + m.theme.MetricValue.Render(value) + "\n"
}

// renderStatusBar renders the shortcut hints.
func (m Model) renderStatusBar() string {
	maskHint := "show"
	if !m.masked {
		maskHint = "hide"
	}
	shortcuts := []struct{ key, desc string }{
		{"ctrl+r", maskHint},
		{"ctrl+u", "clear"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts, m.theme.ShortcutKey.Render(s.key)+" "+m.theme.ShortcutDesc.Render(s.desc))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// crackTime renders the brute-force estimate for the metric row.
func crackTime(r *analyzer.Report) string {
	bf := r.BruteForce
	switch {
	case bf.Uncrackable:
		return "effectively uncrackable"
	case bf.YearsToCrack >= 1e6:
		return util.FloatToScientific(bf.YearsToCrack) + " years"
	case bf.YearsToCrack >= 1:
		return util.FloatToString(bf.YearsToCrack) + " years"
	case bf.SecondsToCrack >= 3600:
		return util.FloatToString(bf.SecondsToCrack/3600) + " hours"
	case bf.SecondsToCrack >= 1:
		return util.FloatToString(bf.SecondsToCrack) + " seconds"
	default:
		return "under a second"
	}
}
