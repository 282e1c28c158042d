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
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/process"
)

// Reader loads stored records for downstream consumers such as the factor
// layer. It is satisfied by the same pool the Writer uses.
type Reader struct {
	db pgxscan.Querier
}

func NewReader(db pgxscan.Querier) *Reader {
	return &Reader{db: db}
}

// SelectSQL renders the query for the table of rec. Entities filter the
// first text key column (symbol, name, sector or industry) and window bounds
// the first date key column, both inclusive. Tables without such a column
// ignore the filter; an empty entity list or a zero bound selects everything.
func SelectSQL(rec data.Record, entities []string, window process.Window) (string, []any) {
	row := rec.Row()
	values := make(map[string]any, len(row))
	cols := make([]string, 0, len(row))
	for _, field := range row {
		values[field.Column] = field.Value
		cols = append(cols, fmt.Sprintf("%q", field.Column))
	}

	var entityCol, dateCol string
	for _, key := range rec.Key() {
		switch values[key].(type) {
		case string:
			if entityCol == "" {
				entityCol = key
			}
		case time.Time:
			if dateCol == "" {
				dateCol = key
			}
		}
	}

	var (
		conditions []string
		args       []any
	)

	if entityCol != "" && len(entities) > 0 {
		args = append(args, entities)
		conditions = append(conditions, fmt.Sprintf("%q = ANY($%d)", entityCol, len(args)))
	}

	if dateCol != "" {
		if !window.Start.IsZero() {
			args = append(args, window.Start)
			conditions = append(conditions, fmt.Sprintf("%q >= $%d", dateCol, len(args)))
		}
		if !window.End.IsZero() {
			args = append(args, window.End)
			conditions = append(conditions, fmt.Sprintf("%q <= $%d", dateCol, len(args)))
		}
	}

	order := make([]string, 0, len(rec.Key()))
	for _, key := range rec.Key() {
		order = append(order, fmt.Sprintf("%q", key))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(cols, ", "), rec.Table())
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(strings.Join(order, ", "))

	return sb.String(), args
}

// Select loads every stored record of type T matching entities and window,
// ordered by primary key.
func Select[T any, PT interface {
	*T
	data.Record
}](ctx context.Context, r *Reader, entities []string, window process.Window) ([]*T, error) {
	rec := PT(new(T))
	sql, args := SelectSQL(rec, entities, window)

	var out []*T
	if err := pgxscan.Select(ctx, r.db, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, rec.Table(), err)
	}

	return out, nil
}
