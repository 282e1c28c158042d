// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store writes canonical records with idempotent upserts
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/data"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Writer struct {
	db     DBTX
	logger zerolog.Logger
}

func New(db DBTX, logger zerolog.Logger) *Writer {
	return &Writer{
		db:     db,
		logger: logger,
	}
}

// Result counts the outcome of a batch of writes
type Result struct {
	Stored int
	Failed int
}

func (r Result) Add(other Result) Result {
	return Result{Stored: r.Stored + other.Stored, Failed: r.Failed + other.Failed}
}

// UpsertSQL renders the insert statement for rec with key columns first.
// Conflicting rows get every non-key column replaced and last_updated
// refreshed.
func UpsertSQL(rec data.Record) (string, []any) {
	row := rec.Row()
	keys := rec.Key()

	isKey := make(map[string]bool, len(keys))
	for _, key := range keys {
		isKey[key] = true
	}

	cols := make([]string, 0, len(row))
	args := make([]any, 0, len(row))
	placeholders := make([]string, 0, len(row))
	updates := make([]string, 0, len(row))

	// keys in declared order, then the remaining columns in row order
	for _, key := range keys {
		for _, field := range row {
			if field.Column == key {
				cols = append(cols, fmt.Sprintf("%q", field.Column))
				args = append(args, field.Value)
				placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
			}
		}
	}

	for _, field := range row {
		if isKey[field.Column] {
			continue
		}
		cols = append(cols, fmt.Sprintf("%q", field.Column))
		args = append(args, field.Value)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		updates = append(updates, fmt.Sprintf("%[1]q = EXCLUDED.%[1]q", field.Column))
	}

	conflict := "DO NOTHING"
	if len(updates) > 0 {
		updates = append(updates, "last_updated = now()")
		conflict = "DO UPDATE SET " + strings.Join(updates, ", ")
	}

	sql := fmt.Sprintf(`INSERT INTO %[1]s (%[2]s) VALUES (%[3]s) ON CONFLICT ON CONSTRAINT %[1]s_pkey %[4]s`,
		rec.Table(), strings.Join(cols, ", "), strings.Join(placeholders, ", "), conflict)

	return sql, args
}

// Store upserts a single record
func (w *Writer) Store(ctx context.Context, rec data.Record) error {
	sql, args := UpsertSQL(rec)
	if _, err := w.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStore, rec.Table(), err)
	}
	return nil
}

// StoreAll upserts every record independently. A failing record is logged
// with its key and the rest are still written. Writing stops early when ctx
// is cancelled; the unwritten records count as failed.
func StoreAll[T data.Record](ctx context.Context, w *Writer, records []T) Result {
	var res Result
	for idx, rec := range records {
		if ctx.Err() != nil {
			res.Failed += len(records) - idx
			w.logger.Warn().Err(ctx.Err()).Int("Remaining", len(records)-idx).Msg("store interrupted")
			break
		}

		if err := w.Store(ctx, rec); err != nil {
			w.logger.Error().Err(err).Object("Record", rec).Str("Table", rec.Table()).Msg("could not save record")
			res.Failed++
			continue
		}

		res.Stored++
	}

	return res
}
