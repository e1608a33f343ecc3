// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

const inputWidth = 50

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	in.Cursor.SetMode(cursor.CursorStatic)
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// campaignModel asks which campaign notebook to open.
type campaignModel struct {
	input      textinput.Model
	submitting bool
}

func newCampaignModel(campaignID string) campaignModel {
	in := newInput("curse-of-strahd", false)
	in.SetValue(campaignID)
	in.Focus()
	return campaignModel{input: in}
}

func (m campaignModel) View() string {
	data := "Campaign: [" + m.input.View() + "]"
	if m.submitting {
		data += "\n\nOpening..."
	}
	return renderPage("CAMPAIGN VAULT", data, "enter: open  v: about")
}

type promptAction int

const (
	promptNewSection promptAction = iota
	promptRename
)

// promptModel reads a section title.
type promptModel struct {
	action    promptAction
	sectionID string
	input     textinput.Model
}

func newPromptModel(action promptAction, sectionID, title string) promptModel {
	in := newInput("Section title", false)
	in.SetValue(title)
	in.Focus()
	return promptModel{action: action, sectionID: sectionID, input: in}
}

func (m promptModel) View() string {
	title := "NEW SECTION"
	if m.action == promptRename {
		title = "RENAME SECTION"
	}
	return renderPage(title, "Title: ["+m.input.View()+"]", "enter: save  esc: cancel")
}

// editorModel edits the text of a plaintext or unlocked section.
type editorModel struct {
	sectionID string
	title     string
	area      textarea.Model
}

func newEditorModel(sectionID, title, content string, width, height int) editorModel {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.Cursor.SetMode(cursor.CursorStatic)
	area.SetWidth(max(width-6, 40))
	area.SetHeight(max(height-10, 8))
	area.SetValue(content)
	area.Focus()
	return editorModel{sectionID: sectionID, title: title, area: area}
}

func (m editorModel) View() string {
	return renderPage("EDIT: "+m.title, m.area.View(), "ctrl+s: save  esc: cancel")
}

const (
	encryptPassphrase = iota
	encryptRepeat
	encryptHint
)

// encryptModel reads a new passphrase, its repetition and an optional hint.
type encryptModel struct {
	sectionID string
	title     string
	inputs    []textinput.Model
	focus     int
}

func newEncryptModel(sectionID, title string) encryptModel {
	inputs := []textinput.Model{
		newInput("Passphrase", true),
		newInput("Repeat passphrase", true),
		newInput("Hint for the notebook (optional)", false),
	}
	inputs[encryptPassphrase].Focus()
	return encryptModel{sectionID: sectionID, title: title, inputs: inputs}
}

func (m encryptModel) View() string {
	data := "Passphrase: [" + m.inputs[encryptPassphrase].View() + "]\n"
	data += "Repeat:     [" + m.inputs[encryptRepeat].View() + "]\n"
	data += "Hint:       [" + m.inputs[encryptHint].View() + "]\n\n"
	data += "The hint is shared by the whole notebook and stored in clear."
	return renderPage("ENCRYPT: "+m.title, data, "tab: next field  enter: encrypt  esc: cancel")
}

func (m encryptModel) focusNext(step int) encryptModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m *encryptModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

// unlockModel reads the passphrase of a locked section.
type unlockModel struct {
	sectionID string
	title     string
	input     textinput.Model
}

func newUnlockModel(sectionID, title string) unlockModel {
	in := newInput("Passphrase", true)
	in.Focus()
	return unlockModel{sectionID: sectionID, title: title, input: in}
}

func (m unlockModel) View() string {
	return renderPage("UNLOCK: "+m.title, "Passphrase: ["+m.input.View()+"]", "enter: unlock  ctrl+g: hint  esc: cancel")
}
