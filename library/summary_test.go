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
package library_test

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/db"
	"github.com/penny-vault/pvfactor/library"
	"github.com/penny-vault/pvfactor/populate"
	"github.com/penny-vault/pvfactor/process"
)

var _ = Describe("Report", func() {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	It("totals records with thousands separators", func() {
		updated := now.Add(-2 * time.Hour)
		report := &library.Report{
			Database:    "postgres://pv@localhost/pvfactor",
			LastUpdated: updated,
			Tables: []*library.TableStat{
				{Table: "prices", NumRows: 1200, LastUpdated: &updated},
				{Table: "dividends", NumRows: 34},
			},
		}

		md := report.Markdown(now)
		Expect(md).To(ContainSubstring("Total Records: 1,234"))
		Expect(md).To(ContainSubstring("| prices | 1,200 |"))
		Expect(md).To(ContainSubstring("| dividends | 34 | Never |"))
		Expect(md).To(ContainSubstring("No runs recorded"))
	})

	It("reports a library that was never populated", func() {
		report := &library.Report{}
		Expect(report.Markdown(now)).To(ContainSubstring("Last Updated: Never"))
	})

	It("lists recent runs", func() {
		id := uuid.MustParse("0b8e6c2a-4d5f-4a41-9a3e-2f6df0ce1d11")
		report := &library.Report{Runs: []*library.Run{
			{ID: id, StartedAt: now, Status: library.StatusSuccess, NumEntities: 500, TasksDone: 14000, RecordsStored: 2500000},
		}}

		md := report.Markdown(now)
		Expect(md).To(ContainSubstring("success [0b8e6c]"))
		Expect(md).To(ContainSubstring("500 entities, 14,000 tasks done"))
		Expect(md).To(ContainSubstring("2,500,000 records stored"))
	})
})

var _ = Describe("Library", Ordered, func() {
	var (
		ctx       context.Context
		myLibrary *library.Library
	)

	BeforeAll(func() {
		dsn := os.Getenv("PVFACTOR_TEST_DB")
		if dsn == "" {
			Skip("PVFACTOR_TEST_DB is not set")
		}

		ctx = context.Background()
		Expect(db.Migrate(dsn, zerolog.Nop())).To(Succeed())

		myLibrary = &library.Library{DBUrl: dsn}
		Expect(myLibrary.Connect(ctx)).To(Succeed())

		_, err := myLibrary.Pool.Exec(ctx, "TRUNCATE populate_runs")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterAll(func() {
		if myLibrary != nil {
			myLibrary.Close()
		}
	})

	It("records a run from start to finish", func() {
		id := uuid.New()
		start := time.Now().UTC().Truncate(time.Second)
		Expect(myLibrary.StartRun(ctx, id, start)).To(Succeed())

		summary := &populate.Summary{
			RunID:       id,
			StartTime:   start,
			EndTime:     start.Add(time.Minute),
			NumEntities: 2,
			NumTasks:    3,
			States:      map[process.State]int{process.Done: 2, process.FetchFailed: 1},
			Stored:      10,
		}
		Expect(myLibrary.FinishRun(ctx, summary, library.StatusSuccess)).To(Succeed())

		runs, err := myLibrary.Runs(ctx, 5)
		Expect(err).ToNot(HaveOccurred())
		Expect(runs).To(HaveLen(1))
		Expect(runs[0].ID).To(Equal(id))
		Expect(runs[0].TasksDone).To(Equal(2))
		Expect(runs[0].TasksFailed).To(Equal(1))
		Expect(runs[0].RecordsStored).To(Equal(10))
		Expect(runs[0].FinishedAt).ToNot(BeNil())

		lastUpdated, err := myLibrary.LastUpdated(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(lastUpdated.Equal(start.Add(time.Minute))).To(BeTrue())
	})

	It("reports table statistics", func() {
		stats, err := myLibrary.TableStats(ctx, []string{"prices", "treasury_rates"})
		Expect(err).ToNot(HaveOccurred())
		Expect(stats).To(HaveLen(2))
		Expect(stats[0].Table).To(Equal("prices"))
	})
})
