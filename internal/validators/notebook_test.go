// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-campaign-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func plainSection(id string) models.Section {
	return models.Section{ID: id, Title: "Session log", Content: ptr("the party arrives at Greyhawk")}
}

func lockedSection(id string) models.Section {
	return models.Section{
		ID:         id,
		Title:      "Villains",
		Encrypted:  true,
		Ciphertext: make([]byte, 32),
		IV:         make([]byte, 12),
		Salt:       make([]byte, 16),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewNotebookValidator(t *testing.T) {
	require.NotNil(t, NewNotebookValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNotebookValidator()
	ctx := context.Background()

	nb := models.Notebook{Sections: []models.Section{plainSection("a"), lockedSection("b")}}
	s := plainSection("a")

	assert.NoError(t, v.Validate(ctx, nb))
	assert.NoError(t, v.Validate(ctx, &nb))
	assert.NoError(t, v.Validate(ctx, s))
	assert.NoError(t, v.Validate(ctx, &s))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Notebook)(nil)), ErrInvalidNotebook)
	assert.ErrorIs(t, v.Validate(ctx, (*models.Section)(nil)), ErrInvalidNotebook)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewNotebookValidator()
	err := v.Validate(context.Background(), plainSection("a"), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.NotErrorIs(t, err, ErrInvalidNotebook)
}

func TestValidate_EmptyNotebookIsValid(t *testing.T) {
	v := NewNotebookValidator()
	assert.NoError(t, v.Validate(context.Background(), models.Notebook{}))
}

// ---------------------------------------------------------------------------
// Sections
// ---------------------------------------------------------------------------

func TestValidate_Section(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *models.Section)
		base    func(string) models.Section
		wantErr error
	}{
		{name: "plain ok", base: plainSection},
		{name: "locked ok", base: lockedSection},
		{
			name:    "empty id",
			base:    plainSection,
			mutate:  func(s *models.Section) { s.ID = "  " },
			wantErr: ErrEmptySectionID,
		},
		{
			name:    "plain without content",
			base:    plainSection,
			mutate:  func(s *models.Section) { s.Content = nil },
			wantErr: ErrMissingContent,
		},
		{
			name:    "plain with ciphertext",
			base:    plainSection,
			mutate:  func(s *models.Section) { s.Ciphertext = []byte{1} },
			wantErr: ErrUnexpectedCiphertext,
		},
		{
			name:    "plain with stray iv",
			base:    plainSection,
			mutate:  func(s *models.Section) { s.IV = make([]byte, 12) },
			wantErr: ErrUnexpectedCiphertext,
		},
		{
			name:    "locked with content",
			base:    lockedSection,
			mutate:  func(s *models.Section) { s.Content = ptr("leak") },
			wantErr: ErrUnexpectedContent,
		},
		{
			name:    "locked without ciphertext",
			base:    lockedSection,
			mutate:  func(s *models.Section) { s.Ciphertext = nil },
			wantErr: ErrMissingCiphertext,
		},
		{
			name:    "short salt",
			base:    lockedSection,
			mutate:  func(s *models.Section) { s.Salt = make([]byte, 8) },
			wantErr: ErrInvalidSaltLength,
		},
		{
			name:    "long iv",
			base:    lockedSection,
			mutate:  func(s *models.Section) { s.IV = make([]byte, 16) },
			wantErr: ErrInvalidIVLength,
		},
		{
			name:    "ciphertext shorter than tag",
			base:    lockedSection,
			mutate:  func(s *models.Section) { s.Ciphertext = make([]byte, 15) },
			wantErr: ErrCiphertextTooShort,
		},
		{
			name:    "content too large",
			base:    plainSection,
			mutate:  func(s *models.Section) { s.Content = ptr(strings.Repeat("x", DefaultMaxContentBytes+1)) },
			wantErr: ErrContentTooLarge,
		},
	}

	v := NewNotebookValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.base("id-1")
			if tt.mutate != nil {
				tt.mutate(&s)
			}
			err := v.Validate(context.Background(), s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidNotebook)
		})
	}
}

func TestValidate_SectionFieldSubset(t *testing.T) {
	v := NewNotebookValidator()
	s := lockedSection("")
	s.Salt = nil

	assert.NoError(t, v.Validate(context.Background(), s, FieldRepresentation))
	assert.ErrorIs(t, v.Validate(context.Background(), s, FieldSectionID), ErrEmptySectionID)
	assert.ErrorIs(t, v.Validate(context.Background(), s, FieldCryptoMaterial), ErrInvalidSaltLength)
}

// ---------------------------------------------------------------------------
// Notebook
// ---------------------------------------------------------------------------

func TestValidate_NotebookDuplicateIDs(t *testing.T) {
	v := NewNotebookValidator()
	nb := models.Notebook{Sections: []models.Section{plainSection("a"), lockedSection("a")}}

	err := v.Validate(context.Background(), nb)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSectionID)
	assert.Contains(t, err.Error(), "index 1")
}

func TestValidate_NotebookReportsBrokenSection(t *testing.T) {
	v := NewNotebookValidator()
	bad := lockedSection("b")
	bad.IV = nil
	nb := models.Notebook{Sections: []models.Section{plainSection("a"), bad}}

	err := v.Validate(context.Background(), nb)
	assert.ErrorIs(t, err, ErrInvalidIVLength)
	assert.ErrorIs(t, err, ErrInvalidNotebook)
}

func TestValidate_NotebookTooManySections(t *testing.T) {
	v := NewNotebookValidator()
	nb := models.Notebook{}
	for i := 0; i <= DefaultMaxSections; i++ {
		nb.Sections = append(nb.Sections, plainSection(strings.Repeat("x", i+1)))
	}

	assert.ErrorIs(t, v.Validate(context.Background(), nb), ErrTooManySections)
	assert.NoError(t, v.Validate(context.Background(), models.Notebook{Sections: nb.Sections[:DefaultMaxSections]}))
}

// ---------------------------------------------------------------------------
// Campaign id
// ---------------------------------------------------------------------------

func TestValidateCampaignID(t *testing.T) {
	assert.NoError(t, ValidateCampaignID("curse-of-strahd"))
	for _, bad := range []string{"", "  ", "a/b", `a\b`, "a\x00b"} {
		assert.ErrorIs(t, ValidateCampaignID(bad), ErrInvalidCampaignID, "id %q", bad)
	}
}
