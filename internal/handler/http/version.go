// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-campaign-vault/internal/utils"
)

type versionResponse struct {
	Version    string `json:"version"`
	CampaignID string `json:"campaign_id,omitempty"`
	Loaded     bool   `json:"loaded"`
}

// getServerVersion reports the daemon version and whether a notebook is
// loaded. It is mounted outside the auth guard, so it names the campaign
// but nothing inside it.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	campaignID, loaded := h.services.VaultService.ActiveCampaign()
	_, _ = utils.WriteJSON(w, versionResponse{
		Version:    h.services.AppInfoService.GetAppVersion(r.Context()),
		CampaignID: campaignID,
		Loaded:     loaded,
	}, http.StatusOK)
}
