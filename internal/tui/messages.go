// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-campaign-vault/models"

type notebookLoadedMsg struct {
	view models.NotebookView
	err  error
}

type sectionsLoadedMsg struct {
	sections []models.SectionView
	hasHint  bool
	err      error
}

// sectionSavedMsg reports any single-section operation. view may be set
// together with err when the change applied but could not be saved.
type sectionSavedMsg struct {
	action string
	view   models.SectionView
	err    error
}

type sectionRemovedMsg struct {
	err error
}

type sectionMovedMsg struct {
	err error
}

type hintLoadedMsg struct {
	hint string
	ok   bool
	err  error
}

type importedMsg struct {
	report models.ImportReport
	err    error
}

type copiedMsg struct {
	what string
}

type clearStatusMsg struct{}
