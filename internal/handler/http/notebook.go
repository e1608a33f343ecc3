// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-campaign-vault/internal/utils"
	"github.com/MKhiriev/go-campaign-vault/models"
	"github.com/go-chi/chi/v5"
)

const (
	maxRequestBytes = 2 << 20
	maxImportBytes  = 64 << 20
)

type loadRequest struct {
	CampaignID string `json:"campaign_id"`
}

type addSectionRequest struct {
	Title string `json:"title"`
}

type updateSectionRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}

type editSectionRequest struct {
	Content string `json:"content"`
}

type encryptSectionRequest struct {
	Passphrase string  `json:"passphrase"`
	Hint       *string `json:"hint,omitempty"`
}

type unlockSectionRequest struct {
	Passphrase string `json:"passphrase"`
}

type hintResponse struct {
	Hint    string `json:"hint,omitempty"`
	HasHint bool   `json:"has_hint"`
}

// writeView answers with view, or with the mapped error when err is set.
func writeView(w http.ResponseWriter, r *http.Request, view any, err error, okStatus int) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, view, okStatus)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrPayloadTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) loadNotebook(w http.ResponseWriter, r *http.Request) {
	var req loadRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.VaultService.Load(r.Context(), req.CampaignID)
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) getNotebook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	svc := h.services.VaultService

	sections, err := svc.Sections(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	campaignID, _ := svc.ActiveCampaign()
	_, hasHint, err := svc.Hint(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NotebookView{
		CampaignID: campaignID,
		Sections:   sections,
		HasHint:    hasHint,
	}, http.StatusOK)
}

func (h *Handler) listSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.services.VaultService.Sections(r.Context())
	writeView(w, r, sections, err, http.StatusOK)
}

func (h *Handler) addSection(w http.ResponseWriter, r *http.Request) {
	var req addSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.VaultService.AddSection(r.Context(), req.Title)
	writeView(w, r, view, err, http.StatusCreated)
}

func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.VaultService.Section(r.Context(), chi.URLParam(r, "id"))
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) updateSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req updateSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Title == nil && req.Position == nil {
		writeError(w, r, ErrNothingToUpdate)
		return
	}

	if req.Title != nil {
		if _, err := h.services.VaultService.RenameSection(ctx, id, *req.Title); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.Position != nil {
		if err := h.services.VaultService.MoveSection(ctx, id, *req.Position); err != nil {
			writeError(w, r, err)
			return
		}
	}

	view, err := h.services.VaultService.Section(ctx, id)
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) removeSection(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.RemoveSection(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) editSection(w http.ResponseWriter, r *http.Request) {
	var req editSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.VaultService.EditSection(r.Context(), chi.URLParam(r, "id"), req.Content)
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) encryptSection(w http.ResponseWriter, r *http.Request) {
	var req encryptSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.VaultService.EncryptSection(r.Context(), chi.URLParam(r, "id"), []byte(req.Passphrase), req.Hint)
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) unlockSection(w http.ResponseWriter, r *http.Request) {
	var req unlockSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.VaultService.UnlockSection(r.Context(), chi.URLParam(r, "id"), []byte(req.Passphrase))
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) lockSection(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.VaultService.LockSection(r.Context(), chi.URLParam(r, "id"))
	writeView(w, r, view, err, http.StatusOK)
}

func (h *Handler) getHint(w http.ResponseWriter, r *http.Request) {
	hint, ok, err := h.services.VaultService.Hint(r.Context())
	writeView(w, r, hintResponse{Hint: hint, HasHint: ok}, err, http.StatusOK)
}

func (h *Handler) exportNotebook(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.VaultService.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if campaignID, ok := h.services.VaultService.ActiveCampaign(); ok {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", campaignID+".json"))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) importNotebook(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, ErrPayloadTooLarge)
			return
		}
		writeError(w, r, fmt.Errorf("read import body: %w", err))
		return
	}

	report, err := h.services.VaultService.Import(r.Context(), data)
	writeView(w, r, report, err, http.StatusOK)
}

func (h *Handler) persistNotebook(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.Persist(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
