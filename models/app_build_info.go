// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// unknownBuildValue stands in for metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the version stamp a vault binary was built with. The
// values arrive through -ldflags and are shown on the TUI about screen.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// BuildField is one labelled line of [AppBuildInfo].
type BuildField struct {
	Label string
	Value string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.commit) }

// Fields lists version, date and commit in display order.
func (a AppBuildInfo) Fields() []BuildField {
	return []BuildField{
		{Label: "Version", Value: a.BuildVersion()},
		{Label: "Date", Value: a.BuildDate()},
		{Label: "Commit", Value: a.BuildCommit()},
	}
}

// Short renders a one-line stamp such as "1.2.0 (3f2a9c1)". The commit is
// cut to seven characters and omitted when unknown.
func (a AppBuildInfo) Short() string {
	if a.commit == "" {
		return a.BuildVersion()
	}
	commit := a.commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return a.BuildVersion() + " (" + commit + ")"
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
