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
package library

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/penny-vault/pvfactor/populate"
)

const (
	StatusRunning  = "running"
	StatusSuccess  = "success"
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Run is one row of populate_runs
type Run struct {
	ID            uuid.UUID  `db:"id"`
	StartedAt     time.Time  `db:"started_at"`
	FinishedAt    *time.Time `db:"finished_at"`
	NumEntities   int        `db:"num_entities"`
	TasksDone     int        `db:"tasks_done"`
	TasksFailed   int        `db:"tasks_failed"`
	RecordsStored int        `db:"records_stored"`
	RecordsFailed int        `db:"records_failed"`
	Status        string     `db:"status"`
}

// StartRun records that a run has begun
func (myLibrary *Library) StartRun(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	if myLibrary.Pool == nil {
		return ErrNotConnected
	}

	_, err := myLibrary.Pool.Exec(ctx, `INSERT INTO populate_runs ("id", "started_at", "status") VALUES ($1, $2, $3)`,
		id, startedAt, StatusRunning)
	return err
}

// FinishRun stores the totals of a completed run
func (myLibrary *Library) FinishRun(ctx context.Context, summary *populate.Summary, status string) error {
	if myLibrary.Pool == nil {
		return ErrNotConnected
	}

	_, err := myLibrary.Pool.Exec(ctx, `UPDATE populate_runs SET
	"finished_at" = $2,
	"num_entities" = $3,
	"tasks_done" = $4,
	"tasks_failed" = $5,
	"records_stored" = $6,
	"records_failed" = $7,
	"status" = $8,
	"last_updated" = now()
WHERE id = $1`,
		summary.RunID, summary.EndTime, summary.NumEntities, summary.TasksDone(), summary.TasksFailed(),
		summary.Stored, summary.Failed, status)
	return err
}

// Runs returns the most recent runs, newest first
func (myLibrary *Library) Runs(ctx context.Context, limit int) ([]*Run, error) {
	if myLibrary.Pool == nil {
		return nil, ErrNotConnected
	}

	var runs []*Run
	err := pgxscan.Select(ctx, myLibrary.Pool, &runs, `SELECT id, started_at, finished_at, num_entities,
tasks_done, tasks_failed, records_stored, records_failed, status
FROM populate_runs ORDER BY started_at DESC LIMIT $1`, limit)
	return runs, err
}
