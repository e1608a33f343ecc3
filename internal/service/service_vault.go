// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-campaign-vault/internal/crypto"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
	"github.com/MKhiriev/go-campaign-vault/internal/store"
	"github.com/MKhiriev/go-campaign-vault/internal/validators"
	"github.com/MKhiriev/go-campaign-vault/internal/vault"
	"github.com/MKhiriev/go-campaign-vault/models"
)

const recordKeyPrefix = "notebook:"

// RecordKey returns the record store key of a campaign notebook.
func RecordKey(campaignID string) string {
	return recordKeyPrefix + campaignID
}

// vaultService is the concrete implementation of VaultService.
type vaultService struct {
	// mu guards the notebook pointer only; the notebook and its sections
	// carry their own locks.
	mu       sync.RWMutex
	notebook *vault.Notebook

	// persistMu orders snapshot+write pairs so an older snapshot never
	// overwrites a newer one.
	persistMu sync.Mutex

	machine   *vault.Machine
	records   store.RecordStore
	validator validators.Validator
	ids       IDGenerator

	logger *logger.Logger
}

// NewVaultService constructs a VaultService. No notebook is active until
// Load succeeds.
func NewVaultService(records store.RecordStore, machine *vault.Machine, ids IDGenerator, logger *logger.Logger) VaultService {
	return &vaultService{
		machine:   machine,
		records:   records,
		validator: validators.NewNotebookValidator(),
		ids:       ids,
		logger:    logger,
	}
}

// Load makes campaignID the active notebook. A campaign without a stored
// record starts empty. Decrypted buffers of the previously active notebook
// are dropped whether or not the load succeeds.
func (s *vaultService) Load(ctx context.Context, campaignID string) (models.NotebookView, error) {
	log := logger.FromContext(ctx).WithCampaign(campaignID)

	if err := validators.ValidateCampaignID(campaignID); err != nil {
		return models.NotebookView{}, err
	}

	var stored models.Notebook
	raw, err := s.records.Get(ctx, RecordKey(campaignID))
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		log.Info().Msg("no stored notebook, starting empty")
	case err != nil:
		s.unload()
		log.Err(err).Msg("reading notebook record failed")
		return models.NotebookView{}, fmt.Errorf("%w: read notebook %s: %w", ErrPersistenceFailure, campaignID, err)
	default:
		if err = json.Unmarshal(raw, &stored); err != nil {
			s.unload()
			log.Err(err).Msg("stored notebook is not valid JSON")
			return models.NotebookView{}, fmt.Errorf("%w: decode notebook %s: %w", validators.ErrInvalidNotebook, campaignID, err)
		}
		if err = s.validator.Validate(ctx, stored); err != nil {
			s.unload()
			log.Err(err).Msg("stored notebook failed validation")
			return models.NotebookView{}, fmt.Errorf("load notebook %s: %w", campaignID, err)
		}
	}

	n := vault.NotebookFromModel(campaignID, stored)

	s.mu.Lock()
	previous := s.notebook
	s.notebook = n
	s.mu.Unlock()

	if previous != nil {
		previous.DiscardAll()
	}

	log.Info().Int("sections", n.Len()).Msg("notebook loaded")
	return notebookView(n), nil
}

// ActiveCampaign returns the id of the loaded campaign.
func (s *vaultService) ActiveCampaign() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notebook == nil {
		return "", false
	}
	return s.notebook.CampaignID(), true
}

func (s *vaultService) Sections(ctx context.Context) ([]models.SectionView, error) {
	n, err := s.active()
	if err != nil {
		return nil, err
	}
	return n.Views(), nil
}

func (s *vaultService) Section(ctx context.Context, id string) (models.SectionView, error) {
	n, err := s.active()
	if err != nil {
		return models.SectionView{}, err
	}
	sec, pos, err := n.Find(id)
	if err != nil {
		return models.SectionView{}, err
	}
	return sec.View(pos), nil
}

// AddSection appends a new Plaintext section with empty content.
func (s *vaultService) AddSection(ctx context.Context, title string) (models.SectionView, error) {
	n, err := s.active()
	if err != nil {
		return models.SectionView{}, err
	}
	if n.Len() >= validators.DefaultMaxSections {
		return models.SectionView{}, fmt.Errorf("%w: %w", validators.ErrInvalidNotebook, validators.ErrTooManySections)
	}

	sec := n.Add(s.ids.Generate(), strings.TrimSpace(title))
	logger.FromContext(ctx).Info().
		Str("campaign_id", n.CampaignID()).
		Str("section_id", sec.ID()).
		Msg("section added")

	return s.viewAfterPersist(ctx, n, sec)
}

func (s *vaultService) RenameSection(ctx context.Context, id, title string) (models.SectionView, error) {
	n, sec, err := s.find(id)
	if err != nil {
		return models.SectionView{}, err
	}
	sec.SetTitle(strings.TrimSpace(title))
	return s.viewAfterPersist(ctx, n, sec)
}

// MoveSection changes the tab position of a section.
func (s *vaultService) MoveSection(ctx context.Context, id string, index int) error {
	n, err := s.active()
	if err != nil {
		return err
	}
	if err = n.Move(id, index); err != nil {
		return err
	}
	return s.persist(ctx, n)
}

// RemoveSection deletes a section immediately and for good.
func (s *vaultService) RemoveSection(ctx context.Context, id string) error {
	n, err := s.active()
	if err != nil {
		return err
	}
	if err = n.Remove(id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().
		Str("campaign_id", n.CampaignID()).
		Str("section_id", id).
		Msg("section removed")
	return s.persist(ctx, n)
}

// EncryptSection seals a Plaintext or Unlocked section under passphrase.
// A non-nil hint replaces the notebook hint once the seal succeeds.
func (s *vaultService) EncryptSection(ctx context.Context, id string, passphrase []byte, hint *string) (models.SectionView, error) {
	log := logger.FromContext(ctx)

	n, sec, err := s.find(id)
	if err != nil {
		return models.SectionView{}, err
	}

	if err = s.machine.Encrypt(ctx, sec, passphrase); err != nil {
		log.Err(err).Str("section_id", id).Msg("section encryption failed")
		return models.SectionView{}, fmt.Errorf("encrypt section %s: %w", id, err)
	}
	n.Hints().Record(hint)

	log.Info().Str("section_id", id).Bool("hint_set", hint != nil).Msg("section encrypted")
	return s.viewAfterPersist(ctx, n, sec)
}

// UnlockSection decrypts a Locked section into memory. Nothing is persisted.
func (s *vaultService) UnlockSection(ctx context.Context, id string, passphrase []byte) (models.SectionView, error) {
	log := logger.FromContext(ctx)

	_, sec, err := s.find(id)
	if err != nil {
		return models.SectionView{}, err
	}

	if err = s.machine.Unlock(ctx, sec, passphrase); err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailure) {
			log.Warn().Str("section_id", id).Msg("unlock rejected")
		} else {
			log.Err(err).Str("section_id", id).Msg("unlock failed")
		}
		return models.SectionView{}, fmt.Errorf("unlock section %s: %w", id, err)
	}

	log.Info().Str("section_id", id).Msg("section unlocked")
	return s.view(sec), nil
}

// EditSection replaces the section text. Plaintext sections are persisted;
// for Unlocked sections only the in-memory buffer changes.
func (s *vaultService) EditSection(ctx context.Context, id, content string) (models.SectionView, error) {
	n, sec, err := s.find(id)
	if err != nil {
		return models.SectionView{}, err
	}

	persist, err := s.machine.Edit(sec, content)
	if err != nil {
		return models.SectionView{}, fmt.Errorf("edit section %s: %w", id, err)
	}
	if !persist {
		return s.view(sec), nil
	}
	return s.viewAfterPersist(ctx, n, sec)
}

// LockSection drops the decrypted buffer of an Unlocked section.
func (s *vaultService) LockSection(ctx context.Context, id string) (models.SectionView, error) {
	_, sec, err := s.find(id)
	if err != nil {
		return models.SectionView{}, err
	}
	if err = s.machine.Lock(sec); err != nil {
		return models.SectionView{}, fmt.Errorf("lock section %s: %w", id, err)
	}
	return s.view(sec), nil
}

// Hint returns the notebook hint. No passphrase is involved.
func (s *vaultService) Hint(ctx context.Context) (string, bool, error) {
	n, err := s.active()
	if err != nil {
		return "", false, err
	}
	hint, ok := n.Hints().Hint()
	return hint, ok, nil
}

// Export serialises the persisted form of the notebook. Unlocked sections
// are written as their stored ciphertext.
func (s *vaultService) Export(ctx context.Context) ([]byte, error) {
	n, err := s.active()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(n.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encode notebook export: %w", err)
	}

	logger.FromContext(ctx).Info().Str("campaign_id", n.CampaignID()).Msg("notebook exported")
	return data, nil
}

// Import merges an exported notebook into the active one by section id and
// persists the result. Nothing changes when the document is invalid or a
// section it replaces is busy.
func (s *vaultService) Import(ctx context.Context, data []byte) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	n, err := s.active()
	if err != nil {
		return models.ImportReport{}, err
	}

	var imported models.Notebook
	if err = json.Unmarshal(data, &imported); err != nil {
		return models.ImportReport{}, fmt.Errorf("%w: decode import: %w", validators.ErrInvalidNotebook, err)
	}
	if err = s.validator.Validate(ctx, imported); err != nil {
		log.Err(err).Str("campaign_id", n.CampaignID()).Msg("import rejected")
		return models.ImportReport{}, fmt.Errorf("import: %w", err)
	}

	report, err := n.Merge(imported, validators.DefaultMaxSections)
	if errors.Is(err, vault.ErrNotebookFull) {
		return models.ImportReport{}, fmt.Errorf("import: %w: %w: %w", validators.ErrInvalidNotebook, validators.ErrTooManySections, err)
	}
	if err != nil {
		return models.ImportReport{}, fmt.Errorf("import: %w", err)
	}

	log.Info().
		Str("campaign_id", n.CampaignID()).
		Int("added", len(report.Added)).
		Int("replaced", len(report.Replaced)).
		Int("kept", report.Kept).
		Msg("notebook imported")

	return report, s.persist(ctx, n)
}

// Persist writes the current notebook snapshot again. It is the retry path
// after ErrPersistenceFailure.
func (s *vaultService) Persist(ctx context.Context) error {
	n, err := s.active()
	if err != nil {
		return err
	}
	return s.persist(ctx, n)
}

func (s *vaultService) persist(ctx context.Context, n *vault.Notebook) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	raw, err := json.Marshal(n.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: encode notebook: %w", ErrPersistenceFailure, err)
	}

	if err = s.records.Set(ctx, RecordKey(n.CampaignID()), raw); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("campaign_id", n.CampaignID()).
			Bool("retryable", store.IsRetryable(err)).
			Msg("writing notebook record failed")
		return fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}
	return nil
}

func (s *vaultService) active() (*vault.Notebook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notebook == nil {
		return nil, ErrNotebookNotLoaded
	}
	return s.notebook, nil
}

func (s *vaultService) find(id string) (*vault.Notebook, *vault.Section, error) {
	n, err := s.active()
	if err != nil {
		return nil, nil, err
	}
	sec, _, err := n.Find(id)
	if err != nil {
		return nil, nil, err
	}
	return n, sec, nil
}

func (s *vaultService) unload() {
	s.mu.Lock()
	previous := s.notebook
	s.notebook = nil
	s.mu.Unlock()

	if previous != nil {
		previous.DiscardAll()
	}
}

// view re-reads the position since the tab order may have moved.
func (s *vaultService) view(sec *vault.Section) models.SectionView {
	n, err := s.active()
	if err != nil {
		return sec.View(-1)
	}
	if _, pos, err := n.Find(sec.ID()); err == nil {
		return sec.View(pos)
	}
	return sec.View(-1)
}

func (s *vaultService) viewAfterPersist(ctx context.Context, n *vault.Notebook, sec *vault.Section) (models.SectionView, error) {
	err := s.persist(ctx, n)
	return s.view(sec), err
}

func notebookView(n *vault.Notebook) models.NotebookView {
	_, hasHint := n.Hints().Hint()
	return models.NotebookView{
		CampaignID: n.CampaignID(),
		Sections:   n.Views(),
		HasHint:    hasHint,
	}
}
