// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-campaign-vault/internal/config"
	"github.com/MKhiriev/go-campaign-vault/internal/logger"
)

// appVersion is the whole of the app info service: a fixed string.
type appVersion string

func (v appVersion) GetAppVersion(context.Context) string { return string(v) }

// NewAppInfoService reports cfg.Version. The binaries stamp it from their
// build info, so a blank value means the config layer was bypassed.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	v := strings.TrimSpace(cfg.Version)
	if v == "" {
		return nil, ErrVersionIsNotSpecified
	}
	logger.Debug().Str("version", v).Msg("app info service ready")
	return appVersion(v), nil
}
