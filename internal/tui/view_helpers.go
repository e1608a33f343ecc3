// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-campaign-vault/models"
)

const pageWidth = 54

// renderPage lays out a screen: heading, rule, body, rule, key help.
// The quit binding is always listed last.
func renderPage(title, body, keys string) string {
	rule := ruleStyle.Render(strings.Repeat("─", pageWidth))
	if strings.TrimSpace(body) == "" {
		body = helpStyle.Render("(empty)")
	}

	help := "ctrl+c: quit"
	if k := strings.TrimSpace(keys); k != "" {
		help = k + "  " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		rule,
		"",
		body,
		"",
		rule,
		helpStyle.Render(help),
	)
}

// stateBadge marks a tab with the section's lock state. Plaintext
// sections get no badge.
func stateBadge(state models.SectionState) string {
	switch state {
	case models.StateLocked:
		return " " + lockedBadge.Render("[locked]")
	case models.StateUnlocked:
		return " " + openBadge.Render("[open]")
	case models.StateEncrypting, models.StateUnlocking:
		return " " + busyBadge.Render("[…]")
	}
	return ""
}

// fitText shortens v to at most width runes, marking the cut with an
// ellipsis.
func fitText(v string, width int) string {
	runes := []rune(v)
	if width <= 0 || len(runes) <= width {
		return v
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
