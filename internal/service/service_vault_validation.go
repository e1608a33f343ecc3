// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-campaign-vault/internal/validators"
	"github.com/MKhiriev/go-campaign-vault/models"
)

// MaxTitleLength bounds a section title in runes.
const MaxTitleLength = 120

// VaultValidationService rejects malformed input before it reaches the
// wrapped VaultService.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewNotebookValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	return &VaultValidationService{inner: inner, validator: v.validator}
}

func (v *VaultValidationService) Load(ctx context.Context, campaignID string) (models.NotebookView, error) {
	if err := validators.ValidateCampaignID(campaignID); err != nil {
		return models.NotebookView{}, err
	}
	return v.inner.Load(ctx, campaignID)
}

func (v *VaultValidationService) ActiveCampaign() (string, bool) {
	return v.inner.ActiveCampaign()
}

func (v *VaultValidationService) Sections(ctx context.Context) ([]models.SectionView, error) {
	return v.inner.Sections(ctx)
}

func (v *VaultValidationService) Section(ctx context.Context, id string) (models.SectionView, error) {
	return v.inner.Section(ctx, id)
}

func (v *VaultValidationService) AddSection(ctx context.Context, title string) (models.SectionView, error) {
	if err := validateTitle(title); err != nil {
		return models.SectionView{}, err
	}
	return v.inner.AddSection(ctx, title)
}

func (v *VaultValidationService) RenameSection(ctx context.Context, id, title string) (models.SectionView, error) {
	if err := validateTitle(title); err != nil {
		return models.SectionView{}, err
	}
	return v.inner.RenameSection(ctx, id, title)
}

func (v *VaultValidationService) MoveSection(ctx context.Context, id string, index int) error {
	return v.inner.MoveSection(ctx, id, index)
}

func (v *VaultValidationService) RemoveSection(ctx context.Context, id string) error {
	return v.inner.RemoveSection(ctx, id)
}

func (v *VaultValidationService) EncryptSection(ctx context.Context, id string, passphrase []byte, hint *string) (models.SectionView, error) {
	if len(passphrase) == 0 {
		return models.SectionView{}, ErrEmptyPassphrase
	}
	return v.inner.EncryptSection(ctx, id, passphrase, hint)
}

func (v *VaultValidationService) UnlockSection(ctx context.Context, id string, passphrase []byte) (models.SectionView, error) {
	if len(passphrase) == 0 {
		return models.SectionView{}, ErrEmptyPassphrase
	}
	return v.inner.UnlockSection(ctx, id, passphrase)
}

func (v *VaultValidationService) EditSection(ctx context.Context, id, content string) (models.SectionView, error) {
	probe := models.Section{ID: id, Content: &content}
	if err := v.validator.Validate(ctx, probe, validators.FieldContentSize); err != nil {
		return models.SectionView{}, fmt.Errorf("edit section %s: %w", id, err)
	}
	return v.inner.EditSection(ctx, id, content)
}

func (v *VaultValidationService) LockSection(ctx context.Context, id string) (models.SectionView, error) {
	return v.inner.LockSection(ctx, id)
}

func (v *VaultValidationService) Hint(ctx context.Context) (string, bool, error) {
	return v.inner.Hint(ctx)
}

func (v *VaultValidationService) Export(ctx context.Context) ([]byte, error) {
	return v.inner.Export(ctx)
}

func (v *VaultValidationService) Import(ctx context.Context, data []byte) (models.ImportReport, error) {
	if len(data) == 0 {
		return models.ImportReport{}, fmt.Errorf("%w: empty import", validators.ErrInvalidNotebook)
	}
	return v.inner.Import(ctx, data)
}

func (v *VaultValidationService) Persist(ctx context.Context) error {
	return v.inner.Persist(ctx)
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
