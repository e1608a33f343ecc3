// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultStatusTTL = 2 * time.Second

func (m appModel) cmdLoad(campaignID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.Load(ctx, campaignID)
		return notebookLoadedMsg{view: view, err: err}
	}
}

func (m appModel) cmdLoadSections() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		sections, err := svc.Sections(ctx)
		if err != nil {
			return sectionsLoadedMsg{err: err}
		}
		_, hasHint, err := svc.Hint(ctx)
		return sectionsLoadedMsg{sections: sections, hasHint: hasHint, err: err}
	}
}

func (m appModel) cmdAddSection(title string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.AddSection(ctx, title)
		return sectionSavedMsg{action: "Section added", view: view, err: err}
	}
}

func (m appModel) cmdRenameSection(id, title string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.RenameSection(ctx, id, title)
		return sectionSavedMsg{action: "Section renamed", view: view, err: err}
	}
}

func (m appModel) cmdEditSection(id, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.EditSection(ctx, id, content)
		return sectionSavedMsg{action: "Saved", view: view, err: err}
	}
}

// cmdEncryptSection owns passphrase from here on.
func (m appModel) cmdEncryptSection(id string, passphrase []byte, hint *string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.EncryptSection(ctx, id, passphrase, hint)
		clear(passphrase)
		return sectionSavedMsg{action: "Section encrypted", view: view, err: err}
	}
}

func (m appModel) cmdUnlockSection(id string, passphrase []byte) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.UnlockSection(ctx, id, passphrase)
		clear(passphrase)
		return sectionSavedMsg{action: "Section unlocked", view: view, err: err}
	}
}

func (m appModel) cmdLockSection(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		view, err := svc.LockSection(ctx, id)
		return sectionSavedMsg{action: "Section locked", view: view, err: err}
	}
}

func (m appModel) cmdRemoveSection(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		return sectionRemovedMsg{err: svc.RemoveSection(ctx, id)}
	}
}

func (m appModel) cmdMoveSection(id string, index int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		return sectionMovedMsg{err: svc.MoveSection(ctx, id, index)}
	}
}

func (m appModel) cmdHint() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		hint, ok, err := svc.Hint(ctx)
		return hintLoadedMsg{hint: hint, ok: ok, err: err}
	}
}

// cmdExport copies the exported document to the clipboard.
func (m appModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	write := m.clipboardWrite
	return func() tea.Msg {
		data, err := svc.Export(ctx)
		if err != nil {
			return sectionSavedMsg{err: err}
		}
		if err = write(string(data)); err != nil {
			return sectionSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: "Notebook exported to the clipboard"}
	}
}

// cmdImport merges the document found on the clipboard.
func (m appModel) cmdImport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	read := m.clipboardRead
	return func() tea.Msg {
		data, err := read()
		if err != nil {
			return importedMsg{err: fmt.Errorf("read clipboard: %w", err)}
		}
		if data == "" {
			return importedMsg{err: errEmptyClipboard}
		}
		report, err := svc.Import(ctx, []byte(data))
		return importedMsg{report: report, err: err}
	}
}

func cmdClearStatus(ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func systemClipboardWrite(text string) error { return clipboard.WriteAll(text) }

func systemClipboardRead() (string, error) { return clipboard.ReadAll() }
