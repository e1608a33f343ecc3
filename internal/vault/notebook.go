// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault is the pure core of the campaign notebook: sections, their
// lock/unlock state machine, the passphrase hint and the ordered notebook
// that holds them. It performs no I/O; persistence is driven by the service
// layer through [Notebook.Snapshot].
package vault

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-campaign-vault/models"
)

// Notebook is the in-memory notebook of one campaign. It guards the section
// order; each section guards its own fields.
type Notebook struct {
	mu         sync.RWMutex
	campaignID string
	sections   []*Section
	hints      *HintRegistry
}

// NewNotebook returns an empty notebook for campaignID.
func NewNotebook(campaignID string) *Notebook {
	return &Notebook{campaignID: campaignID, hints: NewHintRegistry(nil)}
}

// NotebookFromModel restores a validated persisted notebook.
func NotebookFromModel(campaignID string, m models.Notebook) *Notebook {
	n := &Notebook{
		campaignID: campaignID,
		sections:   make([]*Section, 0, len(m.Sections)),
		hints:      NewHintRegistry(m.Hint),
	}
	for _, sm := range m.Sections {
		n.sections = append(n.sections, SectionFromModel(sm))
	}
	return n
}

// CampaignID returns the campaign the notebook belongs to.
func (n *Notebook) CampaignID() string {
	return n.campaignID
}

// Hints returns the notebook's hint registry.
func (n *Notebook) Hints() *HintRegistry {
	return n.hints
}

// Len returns the number of sections.
func (n *Notebook) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.sections)
}

// Add appends a new Plaintext section with empty content.
func (n *Notebook) Add(id, title string) *Section {
	s := NewSection(id, title)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.sections = append(n.sections, s)
	return s
}

// Find returns the section with id together with its tab position.
func (n *Notebook) Find(id string) (*Section, int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for i, s := range n.sections {
		if s.id == id {
			return s, i, nil
		}
	}
	return nil, -1, fmt.Errorf("section %s: %w", id, ErrSectionNotFound)
}

// Remove deletes the section immediately. There is no undo.
func (n *Notebook) Remove(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	idx := slices.IndexFunc(n.sections, func(s *Section) bool { return s.id == id })
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, ErrSectionNotFound)
	}
	n.sections[idx].discard()
	n.sections = slices.Delete(n.sections, idx, idx+1)
	return nil
}

// Move places the section at position index in tab order.
func (n *Notebook) Move(id string, index int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if index < 0 || index >= len(n.sections) {
		return fmt.Errorf("move to %d of %d: %w", index, len(n.sections), ErrInvalidPosition)
	}
	idx := slices.IndexFunc(n.sections, func(s *Section) bool { return s.id == id })
	if idx < 0 {
		return fmt.Errorf("section %s: %w", id, ErrSectionNotFound)
	}

	s := n.sections[idx]
	n.sections = slices.Delete(n.sections, idx, idx+1)
	n.sections = slices.Insert(n.sections, index, s)
	return nil
}

// Views returns presentation snapshots of every section in tab order.
func (n *Notebook) Views() []models.SectionView {
	n.mu.RLock()
	defer n.mu.RUnlock()

	views := make([]models.SectionView, 0, len(n.sections))
	for i, s := range n.sections {
		views = append(views, s.View(i))
	}
	return views
}

// Snapshot returns the persisted-safe form of the whole notebook. Unlocked
// sections appear as their stored ciphertext; decrypted buffers never leave.
func (n *Notebook) Snapshot() models.Notebook {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := models.Notebook{
		Sections: make([]models.Section, 0, len(n.sections)),
		Hint:     n.hints.snapshot(),
	}
	for _, s := range n.sections {
		out.Sections = append(out.Sections, s.Persisted())
	}
	return out
}

// DiscardAll drops every decrypted buffer, returning Unlocked sections to
// Locked. Used when the notebook is unloaded or replaced.
func (n *Notebook) DiscardAll() {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, s := range n.sections {
		s.discard()
	}
}

// Merge applies an imported notebook by section id. Imported ids that exist
// are overwritten in place (an Unlocked one loses its buffer), unknown ids
// are appended in import order and sections missing from the import are
// kept as they are. The hint is overwritten only when the import carries
// one.
//
// The merge is all or nothing. It fails with [ErrNotebookFull] when the
// result would hold more than maxSections sections (zero means no limit)
// and with [ErrSectionBusy] when a section to be replaced has a crypto
// operation in flight. Target sections stay locked from that check until
// they are overwritten, so no encrypt or unlock can start in between.
func (n *Notebook) Merge(imported models.Notebook, maxSections int) (models.ImportReport, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	index := make(map[string]int, len(n.sections))
	for i, s := range n.sections {
		index[s.id] = i
	}

	var targets []*Section
	added := 0
	seen := make(map[string]struct{}, len(imported.Sections))
	for _, sm := range imported.Sections {
		if _, dup := seen[sm.ID]; dup {
			continue
		}
		seen[sm.ID] = struct{}{}
		if i, ok := index[sm.ID]; ok {
			targets = append(targets, n.sections[i])
		} else {
			added++
		}
	}
	if maxSections > 0 && len(n.sections)+added > maxSections {
		return models.ImportReport{}, fmt.Errorf("import %d sections into %d: %w", added, len(n.sections), ErrNotebookFull)
	}

	for _, t := range targets {
		t.mu.Lock()
	}
	defer func() {
		for _, t := range targets {
			t.mu.Unlock()
		}
	}()
	for _, t := range targets {
		if t.state.Transient() {
			return models.ImportReport{}, fmt.Errorf("replace section %s: %w", t.id, ErrSectionBusy)
		}
	}

	report := models.ImportReport{Added: []string{}, Replaced: []string{}}
	for _, sm := range imported.Sections {
		if i, ok := index[sm.ID]; ok {
			n.sections[i].overwriteLocked(sm)
			report.Replaced = append(report.Replaced, sm.ID)
			continue
		}
		n.sections = append(n.sections, SectionFromModel(sm))
		index[sm.ID] = len(n.sections) - 1
		report.Added = append(report.Added, sm.ID)
	}
	report.Kept = len(n.sections) - len(seen)

	if imported.Hint != nil {
		n.hints.Replace(imported.Hint)
		report.HintUpdated = true
	}

	return report, nil
}
