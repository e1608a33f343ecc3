// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable        = "notebook_records"
	recordKeyColumn     = "record_key"
	recordValueColumn   = "record_value"
	recordUpdatedColumn = "updated_at"
)

// upsertSuffix works for both sqlite (3.24+) and PostgreSQL.
var upsertSuffix = fmt.Sprintf(
	"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
	recordKeyColumn, recordValueColumn, recordUpdatedColumn,
)

func buildGetRecordQuery(format sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.
		Select(recordValueColumn).
		From(recordsTable).
		Where(sq.Eq{recordKeyColumn: key}).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertRecordQuery(format sq.PlaceholderFormat, key string, value json.RawMessage, now time.Time) (string, []any, error) {
	query, args, err := sq.
		Insert(recordsTable).
		Columns(recordKeyColumn, recordValueColumn, recordUpdatedColumn).
		Values(key, string(value), now.UTC()).
		Suffix(upsertSuffix).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
