// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// overlay draws a boxed dialog below the active screen.
func overlay(heading, body, keys string) string {
	parts := []string{heading, body}
	if keys != "" {
		parts = append(parts, helpStyle.Render(keys))
	}
	return overlayBoxStyle.Render(strings.Join(parts, "\n\n"))
}

// confirmModel asks before a section is removed.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlay(warnStyle.Render("Remove section"), `Delete "`+m.message+`"?`, "y: yes  n: no")
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlay(errorStyle.Render("Error"), m.message, "enter/esc: close")
}

type hintOverlayModel struct {
	hint string
	ok   bool
}

func (m hintOverlayModel) View() string {
	body := m.hint
	if !m.ok {
		body = helpStyle.Render("No hint is set for this notebook.")
	}
	return overlay(titleStyle.Render("Passphrase hint"), body, "enter/esc: close")
}
