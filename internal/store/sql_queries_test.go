// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetRecordQuery(t *testing.T) {
	tests := []struct {
		name        string
		format      sq.PlaceholderFormat
		placeholder string
	}{
		{name: "postgres", format: sq.Dollar, placeholder: "$1"},
		{name: "sqlite", format: sq.Question, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetRecordQuery(tt.format, "notebook:c1")
			require.NoError(t, err)

			assert.Equal(t, "SELECT record_value FROM notebook_records WHERE record_key = "+tt.placeholder, query)
			require.Len(t, args, 1)
			assert.Equal(t, "notebook:c1", args[0])
		})
	}
}

func Test_buildUpsertRecordQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	value := json.RawMessage(`{"sections":[]}`)

	query, args, err := buildUpsertRecordQuery(sq.Dollar, "notebook:c1", value, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into notebook_records (record_key,record_value,updated_at) values ($1,$2,$3)"), query)
	assert.Contains(t, q, "on conflict (record_key) do update set record_value = excluded.record_value")
	assert.Contains(t, q, "updated_at = excluded.updated_at")

	require.Len(t, args, 3)
	assert.Equal(t, "notebook:c1", args[0])
	assert.Equal(t, `{"sections":[]}`, args[1])
	assert.Equal(t, now.UTC(), args[2])
}

func Test_buildUpsertRecordQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildUpsertRecordQuery(sq.Question, "k", json.RawMessage(`{}`), time.Now())
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,?)")
	assert.NotContains(t, query, "$1")
}
