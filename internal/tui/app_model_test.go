// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-campaign-vault/internal/app"
	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/internal/mock"
	"github.com/MKhiriev/go-campaign-vault/internal/service"
	"github.com/MKhiriev/go-campaign-vault/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestModel(t *testing.T) (appModel, *mock.MockVaultService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockVaultService(ctrl)

	m := newAppModel(context.Background(), &service.Services{VaultService: svc}, models.NewAppBuildInfo("1.0.0", "", ""), "")
	m.statusTTL = time.Millisecond
	m.clipboardWrite = func(string) error { return errors.New("no clipboard in tests") }
	m.clipboardRead = func() (string, error) { return "", nil }
	return m, svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// send feeds msg to m and runs every resulting command until the model
// settles. Spinner ticks and status timers are dropped.
func send(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(appModel)
	return drain(t, m, cmd, 0)
}

func drain(t *testing.T, m appModel, cmd tea.Cmd, depth int) appModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	require.Less(t, depth, 16, "command chain does not settle")

	switch msg := cmd().(type) {
	case nil, spinner.TickMsg, clearStatusMsg, tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c, depth+1)
		}
		return m
	default:
		next, c := m.Update(msg)
		return drain(t, next.(appModel), c, depth+1)
	}
}

func loadedModel(t *testing.T, sections ...models.SectionView) (appModel, *mock.MockVaultService) {
	t.Helper()
	m, svc := newTestModel(t)
	svc.EXPECT().Load(gomock.Any(), "curse-of-strahd").
		Return(models.NotebookView{CampaignID: "curse-of-strahd", Sections: sections}, nil)

	m = send(t, m, runes("curse-of-strahd"))
	m = send(t, m, enter)
	require.Equal(t, screenNotebook, m.currentScreen)
	return m, svc
}

func expectReload(svc *mock.MockVaultService, sections []models.SectionView, hasHint bool) {
	svc.EXPECT().Sections(gomock.Any()).Return(sections, nil)
	svc.EXPECT().Hint(gomock.Any()).Return("", hasHint, nil)
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestCampaignScreen_LoadsNotebook(t *testing.T) {
	m, _ := loadedModel(t, models.SectionView{ID: "a", Title: "Villains"})

	assert.Equal(t, "curse-of-strahd", m.notebook.campaignID)
	require.Len(t, m.notebook.sections, 1)
	assert.Contains(t, m.View(), "Villains")
}

func TestCampaignScreen_LoadErrorStaysOnScreen(t *testing.T) {
	m, svc := newTestModel(t)
	svc.EXPECT().Load(gomock.Any(), "x").Return(models.NotebookView{}, service.ErrPersistenceFailure)

	m = send(t, m, runes("x"))
	m = send(t, m, enter)

	assert.Equal(t, screenCampaign, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgPersistenceFailure, m.errorOverlay.message)

	m = send(t, m, esc)
	assert.False(t, m.showError)
}

func TestInit_OpensGivenCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockVaultService(ctrl)
	svc.EXPECT().Load(gomock.Any(), "tomb").Return(models.NotebookView{CampaignID: "tomb"}, nil)

	m := newAppModel(context.Background(), &service.Services{VaultService: svc}, models.AppBuildInfo{}, "tomb")
	m = drain(t, m, m.Init(), 0)

	assert.Equal(t, screenNotebook, m.currentScreen)
}

func TestAddSection(t *testing.T) {
	m, svc := loadedModel(t)
	added := models.SectionView{ID: "a", Title: "Plans", State: models.StatePlaintext}
	svc.EXPECT().AddSection(gomock.Any(), "Plans").Return(added, nil)
	expectReload(svc, []models.SectionView{added}, false)

	m = send(t, m, runes("n"))
	require.Equal(t, screenPrompt, m.currentScreen)
	m = send(t, m, runes("Plans"))
	m = send(t, m, enter)

	assert.Equal(t, screenNotebook, m.currentScreen)
	require.Len(t, m.notebook.sections, 1)
	assert.Equal(t, "a", m.notebook.sections[0].ID)
	assert.Equal(t, "Section added", m.notebook.status)
}

func TestAddSection_EmptyTitleRejectedLocally(t *testing.T) {
	m, _ := loadedModel(t)

	m = send(t, m, runes("n"))
	m = send(t, m, enter)

	assert.True(t, m.showError)
	assert.Equal(t, app.MsgEmptyTitle, m.errorOverlay.message)
}

func TestEditSection(t *testing.T) {
	sec := models.SectionView{ID: "a", Title: "Plans", State: models.StatePlaintext}
	m, svc := loadedModel(t, sec)

	edited := sec
	edited.Content = "Secret plan: attack at dawn"
	svc.EXPECT().EditSection(gomock.Any(), "a", "Secret plan: attack at dawn").Return(edited, nil)
	expectReload(svc, []models.SectionView{edited}, false)

	m = send(t, m, runes("e"))
	require.Equal(t, screenEdit, m.currentScreen)
	m = send(t, m, runes("Secret plan: attack at dawn"))
	m = send(t, m, ctrlS)

	assert.Equal(t, screenNotebook, m.currentScreen)
	assert.Contains(t, m.View(), "attack at dawn")
}

func TestEncryptSection_ClearsPassphraseAndLocks(t *testing.T) {
	sec := models.SectionView{ID: "a", Title: "Plans", State: models.StatePlaintext, Content: "Secret plan: attack at dawn"}
	m, svc := loadedModel(t, sec)

	locked := models.SectionView{ID: "a", Title: "Plans", State: models.StateLocked, Encrypted: true}
	svc.EXPECT().EncryptSection(gomock.Any(), "a", []byte("dragon123"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, hint *string) (models.SectionView, error) {
			require.NotNil(t, hint)
			assert.Equal(t, "hoard", *hint)
			return locked, nil
		})
	expectReload(svc, []models.SectionView{locked}, true)

	m = send(t, m, runes("x"))
	require.Equal(t, screenEncrypt, m.currentScreen)
	m = send(t, m, runes("dragon123"))
	m = send(t, m, tab)
	m = send(t, m, runes("dragon123"))
	m = send(t, m, tab)
	m = send(t, m, runes("hoard"))
	m = send(t, m, enter)

	assert.Equal(t, screenNotebook, m.currentScreen)
	assert.False(t, m.notebook.busy)
	assert.True(t, m.notebook.hasHint)
	for _, in := range m.encrypt.inputs {
		assert.Empty(t, in.Value())
	}
	view := m.View()
	assert.NotContains(t, view, "attack at dawn")
	assert.Contains(t, view, "[locked]")
}

func TestEncryptSection_MismatchedPassphrases(t *testing.T) {
	m, _ := loadedModel(t, models.SectionView{ID: "a", Title: "Plans", State: models.StatePlaintext})

	m = send(t, m, runes("x"))
	m = send(t, m, runes("dragon123"))
	m = send(t, m, tab)
	m = send(t, m, runes("dragon124"))
	m = send(t, m, enter)

	assert.Equal(t, screenEncrypt, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, errPassphraseMismatch.Error(), m.errorOverlay.message)
}

func TestEncryptSection_ReEncryptsUnlockedSection(t *testing.T) {
	unlocked := models.SectionView{ID: "a", Title: "Plans", State: models.StateUnlocked, Encrypted: true, Content: "Secret plan: attack at dusk"}
	m, svc := loadedModel(t, unlocked)

	locked := models.SectionView{ID: "a", Title: "Plans", State: models.StateLocked, Encrypted: true}
	svc.EXPECT().EncryptSection(gomock.Any(), "a", []byte("dragon123"), gomock.Any()).Return(locked, nil)
	expectReload(svc, []models.SectionView{locked}, false)

	m = send(t, m, runes("x"))
	require.Equal(t, screenEncrypt, m.currentScreen)
	m = send(t, m, runes("dragon123"))
	m = send(t, m, tab)
	m = send(t, m, runes("dragon123"))
	m = send(t, m, enter)

	assert.Equal(t, screenNotebook, m.currentScreen)
	assert.Equal(t, models.StateLocked, m.notebook.sections[0].State)
	assert.NotContains(t, m.View(), "attack at dusk")
}

func TestUnlockSection_WrongPassphrase(t *testing.T) {
	locked := models.SectionView{ID: "a", Title: "Plans", State: models.StateLocked, Encrypted: true}
	m, svc := loadedModel(t, locked)

	svc.EXPECT().UnlockSection(gomock.Any(), "a", []byte("goblin")).
		Return(locked, fmt.Errorf("unlock section a: %w", crypto.ErrAuthenticationFailure))
	expectReload(svc, []models.SectionView{locked}, false)

	m = send(t, m, runes("u"))
	require.Equal(t, screenUnlock, m.currentScreen)
	m = send(t, m, runes("goblin"))
	m = send(t, m, enter)

	assert.True(t, m.showError)
	assert.Equal(t, app.MsgWrongPassphrase, m.errorOverlay.message)
	assert.Equal(t, models.StateLocked, m.notebook.sections[0].State)
	assert.Empty(t, m.unlock.input.Value())
}

func TestUnlockThenLock(t *testing.T) {
	locked := models.SectionView{ID: "a", Title: "Plans", State: models.StateLocked, Encrypted: true}
	unlocked := models.SectionView{ID: "a", Title: "Plans", State: models.StateUnlocked, Encrypted: true, Content: "Secret plan: attack at dawn"}
	m, svc := loadedModel(t, locked)

	svc.EXPECT().UnlockSection(gomock.Any(), "a", []byte("dragon123")).Return(unlocked, nil)
	expectReload(svc, []models.SectionView{unlocked}, false)
	svc.EXPECT().LockSection(gomock.Any(), "a").Return(locked, nil)
	expectReload(svc, []models.SectionView{locked}, false)

	m = send(t, m, runes("u"))
	m = send(t, m, runes("dragon123"))
	m = send(t, m, enter)
	assert.Contains(t, m.View(), "attack at dawn")

	m = send(t, m, runes("L"))
	assert.NotContains(t, m.View(), "attack at dawn")
}

func TestStateGuardedKeysAreIgnored(t *testing.T) {
	m, _ := loadedModel(t, models.SectionView{ID: "a", Title: "Plans", State: models.StateLocked, Encrypted: true})

	m = send(t, m, runes("e"))
	assert.Equal(t, screenNotebook, m.currentScreen)
	m = send(t, m, runes("x"))
	assert.Equal(t, screenNotebook, m.currentScreen)
	m = send(t, m, runes("L"))
	assert.Equal(t, screenNotebook, m.currentScreen)
}

func TestHintOverlay(t *testing.T) {
	m, svc := loadedModel(t, models.SectionView{ID: "a", Title: "Plans", State: models.StateLocked})
	svc.EXPECT().Hint(gomock.Any()).Return("the dragon's name", true, nil)

	m = send(t, m, runes("?"))

	require.True(t, m.showHint)
	assert.Contains(t, m.View(), "the dragon's name")
	m = send(t, m, enter)
	assert.False(t, m.showHint)
}

func TestDeleteSection_Confirm(t *testing.T) {
	sec := models.SectionView{ID: "a", Title: "Plans"}
	m, svc := loadedModel(t, sec)
	svc.EXPECT().RemoveSection(gomock.Any(), "a").Return(nil)
	expectReload(svc, []models.SectionView{}, false)

	m = send(t, m, runes("d"))
	require.True(t, m.showConfirm)
	m = send(t, m, runes("y"))

	assert.False(t, m.showConfirm)
	assert.Empty(t, m.notebook.sections)
}

func TestMoveSection(t *testing.T) {
	a := models.SectionView{ID: "a", Title: "A"}
	b := models.SectionView{ID: "b", Title: "B"}
	m, svc := loadedModel(t, a, b)

	svc.EXPECT().MoveSection(gomock.Any(), "a", 1).Return(nil)
	expectReload(svc, []models.SectionView{b, a}, false)

	m = send(t, m, runes("]"))

	assert.Equal(t, "a", m.notebook.sections[1].ID)
	assert.Equal(t, 1, m.notebook.idx, "selection follows the moved section")
}

func TestExportAndImport(t *testing.T) {
	m, svc := loadedModel(t)

	var copied string
	m.clipboardWrite = func(s string) error { copied = s; return nil }
	svc.EXPECT().Export(gomock.Any()).Return([]byte(`{"sections":[]}`), nil)

	m = send(t, m, runes("c"))
	assert.Equal(t, `{"sections":[]}`, copied)
	assert.Equal(t, "Notebook exported to the clipboard", m.notebook.status)

	m.clipboardRead = func() (string, error) { return copied, nil }
	svc.EXPECT().Import(gomock.Any(), []byte(copied)).
		Return(models.ImportReport{Added: []string{"a"}, Replaced: []string{}}, nil)
	expectReload(svc, []models.SectionView{{ID: "a", Title: "A"}}, false)

	m = send(t, m, runes("i"))
	assert.Equal(t, "Imported: 1 added, 0 replaced, 0 kept", m.notebook.status)
	assert.Len(t, m.notebook.sections, 1)
}

func TestImport_EmptyClipboard(t *testing.T) {
	m, svc := loadedModel(t)
	expectReload(svc, nil, false)

	m = send(t, m, runes("i"))

	assert.True(t, m.showError)
	assert.Equal(t, errEmptyClipboard.Error(), m.errorOverlay.message)
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(runes("q"))
	typed := next.(appModel)
	assert.Equal(t, "q", typed.campaign.input.Value(), "q types into the campaign field")
	assert.False(t, typed.quitByUser)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(appModel).quitByUser)
}

func TestBuildInfo(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, runes("v"))
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	m = send(t, m, esc)
	assert.False(t, m.showBuildInfo)
}

func TestErrorText_NetworkSuffix(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp 127.0.0.1:8081: connect: connection refused", service.ErrPersistenceFailure)
	assert.Equal(t, app.MsgPersistenceFailure+" ("+msgRecordServiceUnavailable+")", errorText(err))
}
