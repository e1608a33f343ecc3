// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldSectionID requires a non-empty id.
	FieldSectionID = "section_id"

	// FieldRepresentation requires exactly one persisted representation
	// matching the encrypted flag.
	FieldRepresentation = "representation"

	// FieldCryptoMaterial checks salt, iv and ciphertext sizes of encrypted
	// sections.
	FieldCryptoMaterial = "crypto_material"

	// FieldContentSize caps plaintext content size.
	FieldContentSize = "content_size"

	// FieldSections validates every section and rejects duplicate ids.
	FieldSections = "sections"

	// FieldSectionCount caps the number of sections in a notebook.
	FieldSectionCount = "section_count"
)

const (
	// DefaultMaxSections bounds a notebook; it is a handful of tabs, not a
	// database.
	DefaultMaxSections = 256

	// DefaultMaxContentBytes bounds the plaintext of one section.
	DefaultMaxContentBytes = 1 << 20

	gcmTagSize = 16
)

// NotebookValidator implements [Validator] for [models.Notebook] and
// [models.Section], both value and pointer forms.
type NotebookValidator struct {
	maxSections     int
	maxContentBytes int
}

// NewNotebookValidator returns a [Validator] with the default limits.
func NewNotebookValidator() Validator {
	return &NotebookValidator{
		maxSections:     DefaultMaxSections,
		maxContentBytes: DefaultMaxContentBytes,
	}
}

// Validate dispatches on the dynamic type of obj. Every failure wraps
// [ErrInvalidNotebook] together with the specific sentinel.
func (v *NotebookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	switch value := obj.(type) {
	case models.Notebook:
		err = v.validateNotebook(ctx, value, fields...)
	case *models.Notebook:
		if value == nil {
			return fmt.Errorf("%w: nil notebook", ErrInvalidNotebook)
		}
		err = v.validateNotebook(ctx, *value, fields...)
	case models.Section:
		err = v.validateSection(ctx, value, fields...)
	case *models.Section:
		if value == nil {
			return fmt.Errorf("%w: nil section", ErrInvalidNotebook)
		}
		err = v.validateSection(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}

	if err != nil && err != ErrUnknownField {
		return fmt.Errorf("%w: %w", ErrInvalidNotebook, err)
	}
	return err
}

func (v *NotebookValidator) validateNotebook(ctx context.Context, nb models.Notebook, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSectionCount, FieldSections}
	}

	for _, f := range fields {
		switch f {
		case FieldSectionCount:
			if len(nb.Sections) > v.maxSections {
				return ErrTooManySections
			}
		case FieldSections:
			seen := make(map[string]struct{}, len(nb.Sections))
			for i, s := range nb.Sections {
				if err := v.validateSection(ctx, s); err != nil {
					return fmt.Errorf("section at index %d: %w", i, err)
				}
				if _, dup := seen[s.ID]; dup {
					return fmt.Errorf("section at index %d (%s): %w", i, s.ID, ErrDuplicateSectionID)
				}
				seen[s.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotebookValidator) validateSection(ctx context.Context, s models.Section, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSectionID, FieldRepresentation, FieldCryptoMaterial, FieldContentSize}
	}

	for _, f := range fields {
		switch f {
		case FieldSectionID:
			if strings.TrimSpace(s.ID) == "" {
				return ErrEmptySectionID
			}
		case FieldRepresentation:
			if err := validateRepresentation(s); err != nil {
				return err
			}
		case FieldCryptoMaterial:
			if !s.Encrypted {
				continue
			}
			if len(s.Salt) != crypto.SaltSize {
				return ErrInvalidSaltLength
			}
			if len(s.IV) != crypto.IVSize {
				return ErrInvalidIVLength
			}
			if len(s.Ciphertext) < gcmTagSize {
				return ErrCiphertextTooShort
			}
		case FieldContentSize:
			if s.Content != nil && len(*s.Content) > v.maxContentBytes {
				return ErrContentTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRepresentation(s models.Section) error {
	hasCipherMaterial := len(s.Ciphertext) > 0 || len(s.IV) > 0 || len(s.Salt) > 0

	if s.Encrypted {
		if s.Content != nil {
			return ErrUnexpectedContent
		}
		if len(s.Ciphertext) == 0 {
			return ErrMissingCiphertext
		}
		return nil
	}

	if hasCipherMaterial {
		return ErrUnexpectedCiphertext
	}
	if s.Content == nil {
		return ErrMissingContent
	}
	return nil
}

// ValidateCampaignID checks a campaign id before it is used to build a
// persistence key.
func ValidateCampaignID(campaignID string) error {
	if strings.TrimSpace(campaignID) == "" || strings.ContainsAny(campaignID, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidCampaignID, campaignID)
	}
	return nil
}
