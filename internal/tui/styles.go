// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// Colours adapt to light and dark terminals.
var (
	accent = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#B59CFF"}
	muted  = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	danger = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#FF8A80"}
	amber  = lipgloss.AdaptiveColor{Light: "#8A5A00", Dark: "#FFCC66"}
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle   = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(amber)
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(muted)
	ruleStyle   = lipgloss.NewStyle().Foreground(muted)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
)

// Section tabs.
var (
	inactiveTabStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				Padding(0, 1)
	activeTabStyle = inactiveTabStyle.Bold(true).Reverse(true)
	bodyStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)

	lockedBadge = lipgloss.NewStyle().Foreground(amber)
	openBadge   = lipgloss.NewStyle().Foreground(accent)
	busyBadge   = lipgloss.NewStyle().Foreground(muted).Italic(true)
)
