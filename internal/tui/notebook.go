// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campaign-vault/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// notebookModel is the tabbed view of the open campaign.
type notebookModel struct {
	campaignID string
	sections   []models.SectionView
	idx        int
	hasHint    bool

	busy    bool
	spinner spinner.Model
	status  string
}

func newNotebookModel() notebookModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return notebookModel{spinner: s}
}

func (m notebookModel) current() (models.SectionView, bool) {
	if m.idx < 0 || m.idx >= len(m.sections) {
		return models.SectionView{}, false
	}
	return m.sections[m.idx], true
}

// selectID moves the cursor to the section with id, or clamps it when the
// section is gone.
func (m *notebookModel) selectID(id string) {
	for i, s := range m.sections {
		if s.ID == id {
			m.idx = i
			return
		}
	}
	if m.idx >= len(m.sections) {
		m.idx = len(m.sections) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m notebookModel) View() string {
	header := "Campaign: " + m.campaignID
	if m.busy {
		header += "  " + m.spinner.View()
	}

	var body string
	if len(m.sections) == 0 {
		body = "The notebook is empty. Press n to add a section."
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.tabsView(), bodyStyle.Render(m.sectionBody()))
	}
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	hot := "h/l: switch  [/]: move  n: new  r: rename  d: delete  e: edit\n" +
		"x: encrypt  u: unlock  L: lock  ?: hint  c: export  i: import  o: campaign  v: about  q: quit"
	return renderPage(strings.ToUpper(header), body, hot)
}

func (m notebookModel) tabsView() string {
	tabs := make([]string, 0, len(m.sections))
	for i, s := range m.sections {
		label := fitText(s.Title, 24) + stateBadge(s.State)
		if i == m.idx {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, inactiveTabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m notebookModel) sectionBody() string {
	s, ok := m.current()
	if !ok {
		return ""
	}

	switch s.State {
	case models.StateLocked:
		return "This section is encrypted. Press u to unlock it."
	case models.StateEncrypting:
		return "Encrypting..."
	case models.StateUnlocking:
		return "Unlocking..."
	}

	if s.Content == "" {
		return helpStyle.Render("(empty, press e to write)")
	}
	return s.Content
}

func importStatus(r models.ImportReport) string {
	status := fmt.Sprintf("Imported: %d added, %d replaced, %d kept", len(r.Added), len(r.Replaced), r.Kept)
	if r.HintUpdated {
		status += ", hint updated"
	}
	return status
}
