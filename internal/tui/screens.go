// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateCampaign(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc) && m.notebook.campaignID != "":
			m.currentScreen = screenNotebook
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			id := strings.TrimSpace(m.campaign.input.Value())
			if id == "" || m.campaign.submitting {
				return m, nil
			}
			m.campaign.submitting = true
			return m, m.cmdLoad(id)
		case key.Matches(keyMsg, keys.buildInfo) && m.campaign.input.Value() == "":
			m.showBuildInfo = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.campaign.input, cmd = m.campaign.input.Update(msg)
	return m, cmd
}

func (m appModel) updateNotebook(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	nb := &m.notebook
	current, hasCurrent := nb.current()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.left):
		if nb.idx > 0 {
			nb.idx--
		}
	case key.Matches(keyMsg, keys.right):
		if nb.idx < len(nb.sections)-1 {
			nb.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.prompt = newPromptModel(promptNewSection, "", "")
		m.currentScreen = screenPrompt
	case key.Matches(keyMsg, keys.hint):
		return m, m.cmdHint()
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport()
	case key.Matches(keyMsg, keys.importKey):
		return m, m.cmdImport()
	case key.Matches(keyMsg, keys.campaign):
		m.campaign = newCampaignModel("")
		m.currentScreen = screenCampaign
	}

	if !hasCurrent {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.moveLeft):
		if nb.idx > 0 {
			return m, m.cmdMoveSection(current.ID, nb.idx-1)
		}
	case key.Matches(keyMsg, keys.moveRight):
		if nb.idx < len(nb.sections)-1 {
			return m, m.cmdMoveSection(current.ID, nb.idx+1)
		}
	case key.Matches(keyMsg, keys.rename):
		m.prompt = newPromptModel(promptRename, current.ID, current.Title)
		m.currentScreen = screenPrompt
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = current.Title
		m.pendingDelete = current.ID
	case key.Matches(keyMsg, keys.edit):
		if !current.Readable() {
			return m, nil
		}
		m.editor = newEditorModel(current.ID, current.Title, current.Content, m.width, m.height)
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.encrypt):
		if current.State != models.StatePlaintext && current.State != models.StateUnlocked {
			return m, nil
		}
		m.encrypt = newEncryptModel(current.ID, current.Title)
		m.currentScreen = screenEncrypt
	case key.Matches(keyMsg, keys.unlock):
		if current.State != models.StateLocked {
			return m, nil
		}
		m.unlock = newUnlockModel(current.ID, current.Title)
		m.currentScreen = screenUnlock
	case key.Matches(keyMsg, keys.lock):
		if current.State != models.StateUnlocked {
			return m, nil
		}
		return m, m.cmdLockSection(current.ID)
	}

	return m, nil
}

func (m appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenNotebook
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			title := strings.TrimSpace(m.prompt.input.Value())
			if title == "" {
				m.showErrorf(service.ErrEmptyTitle)
				return m, nil
			}
			m.currentScreen = screenNotebook
			if m.prompt.action == promptRename {
				return m, m.cmdRenameSection(m.prompt.sectionID, title)
			}
			return m, m.cmdAddSection(title)
		}
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenNotebook
			m.editor = editorModel{}
			return m, nil
		case key.Matches(keyMsg, keys.save):
			id, content := m.editor.sectionID, m.editor.area.Value()
			m.currentScreen = screenNotebook
			m.editor = editorModel{}
			return m, m.cmdEditSection(id, content)
		}
	}

	var cmd tea.Cmd
	m.editor.area, cmd = m.editor.area.Update(msg)
	return m, cmd
}

func (m appModel) updateEncrypt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.encrypt.reset()
			m.currentScreen = screenNotebook
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.encrypt = m.encrypt.focusNext(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.encrypt = m.encrypt.focusNext(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			pass := m.encrypt.inputs[encryptPassphrase].Value()
			repeat := m.encrypt.inputs[encryptRepeat].Value()
			if pass == "" {
				m.showErrorf(service.ErrEmptyPassphrase)
				return m, nil
			}
			if pass != repeat {
				m.showErrorf(errPassphraseMismatch)
				return m, nil
			}

			var hint *string
			if h := strings.TrimSpace(m.encrypt.inputs[encryptHint].Value()); h != "" {
				hint = &h
			}

			id := m.encrypt.sectionID
			m.encrypt.reset()
			m.currentScreen = screenNotebook
			m.notebook.busy = true
			return m, tea.Batch(m.notebook.spinner.Tick, m.cmdEncryptSection(id, []byte(pass), hint))
		}
	}

	var cmd tea.Cmd
	m.encrypt.inputs[m.encrypt.focus], cmd = m.encrypt.inputs[m.encrypt.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.unlock.input.Reset()
			m.currentScreen = screenNotebook
			return m, nil
		case key.Matches(keyMsg, keys.askHint):
			return m, m.cmdHint()
		case key.Matches(keyMsg, keys.enter):
			pass := m.unlock.input.Value()
			if pass == "" {
				m.showErrorf(service.ErrEmptyPassphrase)
				return m, nil
			}

			id := m.unlock.sectionID
			m.unlock.input.Reset()
			m.currentScreen = screenNotebook
			m.notebook.busy = true
			return m, tea.Batch(m.notebook.spinner.Tick, m.cmdUnlockSection(id, []byte(pass)))
		}
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}
