// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-campaign-vault/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-campaign-vault/internal/service VaultService,AuthService,AppInfoService

// VaultService holds the notebook of the active campaign and drives every
// section operation. Operations that change persisted state write the whole
// notebook back to the record store before returning.
//
// Mutating operations return the resulting view even when the error wraps
// ErrPersistenceFailure: the change is applied in memory and only the write
// failed.
type VaultService interface {
	Load(ctx context.Context, campaignID string) (models.NotebookView, error)
	ActiveCampaign() (string, bool)

	Sections(ctx context.Context) ([]models.SectionView, error)
	Section(ctx context.Context, id string) (models.SectionView, error)

	AddSection(ctx context.Context, title string) (models.SectionView, error)
	RenameSection(ctx context.Context, id, title string) (models.SectionView, error)
	MoveSection(ctx context.Context, id string, index int) error
	RemoveSection(ctx context.Context, id string) error

	EncryptSection(ctx context.Context, id string, passphrase []byte, hint *string) (models.SectionView, error)
	UnlockSection(ctx context.Context, id string, passphrase []byte) (models.SectionView, error)
	EditSection(ctx context.Context, id, content string) (models.SectionView, error)
	LockSection(ctx context.Context, id string) (models.SectionView, error)

	Hint(ctx context.Context) (string, bool, error)

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (models.ImportReport, error)
	Persist(ctx context.Context) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// input validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// AuthService issues and checks the bearer tokens guarding the local API.
type AuthService interface {
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces section ids.
type IDGenerator interface {
	Generate() string
}
