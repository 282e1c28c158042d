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

// Package library reads and records bookkeeping about the pvfactor
// database: population runs and per-table freshness.
package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotConnected = errors.New("library is not connected to a database")

type Library struct {
	DBUrl string

	Pool *pgxpool.Pool
}

// TableStat describes the contents of one domain table
type TableStat struct {
	Table       string     `db:"-"`
	NumRows     int64      `db:"num_rows"`
	LastUpdated *time.Time `db:"last_updated"`
}

// Connect to the database configured for the library
func (myLibrary *Library) Connect(ctx context.Context) error {
	if myLibrary.Pool != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, myLibrary.DBUrl)
	if err != nil {
		return err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}

	myLibrary.Pool = pool
	return nil
}

// Close the database pool
func (myLibrary *Library) Close() {
	if myLibrary.Pool != nil {
		myLibrary.Pool.Close()
	}
}

// LastUpdated returns the time the most recent run finished
func (myLibrary *Library) LastUpdated(ctx context.Context) (time.Time, error) {
	if myLibrary.Pool == nil {
		return time.Time{}, ErrNotConnected
	}

	var lastUpdated time.Time
	err := myLibrary.Pool.QueryRow(ctx, "SELECT coalesce(max(finished_at), '0001-01-01'::timestamptz) FROM populate_runs").Scan(&lastUpdated)
	if err != nil {
		return time.Time{}, err
	}

	return lastUpdated, nil
}

// TableStats counts the rows in each table and reports when it last changed
func (myLibrary *Library) TableStats(ctx context.Context, tables []string) ([]*TableStat, error) {
	if myLibrary.Pool == nil {
		return nil, ErrNotConnected
	}

	stats := make([]*TableStat, 0, len(tables))
	for _, table := range tables {
		stat := &TableStat{}
		if err := pgxscan.Get(ctx, myLibrary.Pool, stat, fmt.Sprintf("SELECT count(*) AS num_rows, max(last_updated) AS last_updated FROM %q", table)); err != nil {
			return nil, fmt.Errorf("%w: %s", err, table)
		}
		stat.Table = table
		stats = append(stats, stat)
	}

	return stats, nil
}
