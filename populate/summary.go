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
package populate

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/process"
)

// Summary accumulates the terminal state of every task in a run
type Summary struct {
	RunID       uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	NumEntities int
	NumTasks    int
	States      map[process.State]int
	Stored      int
	Failed      int
}

func newSummary(id uuid.UUID, start time.Time) *Summary {
	return &Summary{
		RunID:     id,
		StartTime: start,
		States:    make(map[process.State]int),
	}
}

func (s *Summary) record(result TaskResult) {
	s.NumTasks++
	s.States[result.State]++
	s.Stored += result.Stored.Stored
	s.Failed += result.Stored.Failed
}

func (s *Summary) finish(end time.Time) *Summary {
	s.EndTime = end
	return s
}

// TasksDone counts tasks that stored everything they were given
func (s *Summary) TasksDone() int {
	return s.States[process.Done]
}

// TasksFailed counts tasks that ended in any failure state
func (s *Summary) TasksFailed() int {
	return s.States[process.FetchFailed] + s.States[process.TranslateFailed] + s.States[process.StoreFailedPartial]
}

func (s *Summary) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s *Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("RunID", s.RunID.String()).
		Int("NumEntities", s.NumEntities).
		Int("NumTasks", s.NumTasks).
		Int("TasksDone", s.TasksDone()).
		Int("TasksFailed", s.TasksFailed()).
		Int("RecordsStored", s.Stored).
		Int("RecordsFailed", s.Failed).
		Dur("Duration", s.Duration())
}
