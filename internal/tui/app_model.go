// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenCampaign screen = iota
	screenNotebook
	screenPrompt
	screenEdit
	screenEncrypt
	screenUnlock
)

type appModel struct {
	ctx           context.Context
	services      *service.Services
	buildInfo     models.AppBuildInfo
	currentScreen screen

	campaign campaignModel
	notebook notebookModel
	prompt   promptModel
	editor   editorModel
	encrypt  encryptModel
	unlock   unlockModel

	width  int
	height int

	showError     bool
	errorOverlay  errorOverlayModel
	showHint      bool
	hintOverlay   hintOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool

	quitByUser bool

	statusTTL      time.Duration
	clipboardWrite func(string) error
	clipboardRead  func() (string, error)
}

func newAppModel(ctx context.Context, services *service.Services, info models.AppBuildInfo, campaignID string) appModel {
	return appModel{
		ctx:            ctx,
		services:       services,
		buildInfo:      info,
		currentScreen:  screenCampaign,
		campaign:       newCampaignModel(campaignID),
		notebook:       newNotebookModel(),
		statusTTL:      defaultStatusTTL,
		clipboardWrite: systemClipboardWrite,
		clipboardRead:  systemClipboardRead,
	}
}

func (m appModel) Init() tea.Cmd {
	if id := strings.TrimSpace(m.campaign.input.Value()); id != "" {
		return m.cmdLoad(id)
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showHint {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showHint = false
				m.hintOverlay = hintOverlayModel{}
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				if id == "" {
					return m, nil
				}
				return m, m.cmdRemoveSection(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case notebookLoadedMsg:
		m.campaign.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.notebook = newNotebookModel()
		m.notebook.campaignID = msg.view.CampaignID
		m.notebook.sections = msg.view.Sections
		m.notebook.hasHint = msg.view.HasHint
		m.currentScreen = screenNotebook
		return m, nil
	case sectionsLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		selected, _ := m.notebook.current()
		m.notebook.sections = msg.sections
		m.notebook.hasHint = msg.hasHint
		m.notebook.selectID(selected.ID)
		return m, nil
	case sectionSavedMsg:
		m.notebook.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err)
		} else if msg.action != "" {
			m.notebook.status = msg.action
		}
		if msg.view.ID != "" {
			m.notebook.selectID(msg.view.ID)
			if i := indexOf(m.notebook.sections, msg.view.ID); i >= 0 {
				m.notebook.sections[i] = msg.view
			} else {
				m.notebook.sections = append(m.notebook.sections, msg.view)
				m.notebook.idx = len(m.notebook.sections) - 1
			}
		}
		if m.currentScreen == screenCampaign {
			return m, nil
		}
		return m, tea.Batch(m.cmdLoadSections(), cmdClearStatus(m.statusTTL))
	case sectionRemovedMsg, sectionMovedMsg:
		if err := opError(msg); err != nil {
			m.showErrorf(err)
		}
		return m, m.cmdLoadSections()
	case hintLoadedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.showHint = true
		m.hintOverlay = hintOverlayModel{hint: msg.hint, ok: msg.ok}
		return m, nil
	case importedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, m.cmdLoadSections()
		}
		m.notebook.status = importStatus(msg.report)
		return m, tea.Batch(m.cmdLoadSections(), cmdClearStatus(m.statusTTL))
	case copiedMsg:
		m.notebook.status = msg.what
		return m, cmdClearStatus(m.statusTTL)
	case clearStatusMsg:
		m.notebook.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.notebook.busy {
			var cmd tea.Cmd
			m.notebook.spinner, cmd = m.notebook.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenCampaign:
		return m.updateCampaign(msg)
	case screenNotebook:
		return m.updateNotebook(msg)
	case screenPrompt:
		return m.updatePrompt(msg)
	case screenEdit:
		return m.updateEditor(msg)
	case screenEncrypt:
		return m.updateEncrypt(msg)
	case screenUnlock:
		return m.updateUnlock(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenCampaign:
		body = m.campaign.View()
	case screenNotebook:
		body = m.notebook.View()
	case screenPrompt:
		body = m.prompt.View()
	case screenEdit:
		body = m.editor.View()
	case screenEncrypt:
		body = m.encrypt.View()
	case screenUnlock:
		body = m.unlock.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showHint {
		body += "\n\n" + m.hintOverlay.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.showError = true
	m.errorOverlay.message = errorText(err)
}

func opError(msg tea.Msg) error {
	switch msg := msg.(type) {
	case sectionRemovedMsg:
		return msg.err
	case sectionMovedMsg:
		return msg.err
	}
	return nil
}

func indexOf(sections []models.SectionView, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
