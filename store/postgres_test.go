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
package store_test

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/db"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
)

// postgresURL returns the integration database, or "" when none is reachable
func postgresURL() string {
	url := os.Getenv("PVFACTOR_TEST_DB")
	if url == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return ""
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return ""
	}

	return url
}

var _ = Describe("Writer against PostgreSQL", Ordered, func() {
	var (
		ctx  context.Context
		pool *pgxpool.Pool
	)

	BeforeAll(func() {
		url := postgresURL()
		if url == "" {
			Skip("PVFACTOR_TEST_DB not set or unreachable")
		}

		ctx = context.Background()
		Expect(db.Migrate(url, zerolog.Nop())).To(Succeed())

		var err error
		pool, err = pgxpool.New(ctx, url)
		Expect(err).ToNot(HaveOccurred())

		_, err = pool.Exec(ctx, "DELETE FROM prices WHERE symbol = 'AAPL'")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterAll(func() {
		if pool != nil {
			pool.Close()
		}
	})

	count := func() int {
		var n int
		Expect(pool.QueryRow(ctx, "SELECT count(*) FROM prices WHERE symbol = 'AAPL'").Scan(&n)).To(Succeed())
		return n
	}

	It("stores three rows and grows to four on a re-run", func() {
		w := store.New(pool, zerolog.Nop())

		res := store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02))
		Expect(res).To(Equal(store.Result{Stored: 3}))
		Expect(count()).To(Equal(3))

		res = store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02))
		Expect(res.Stored).To(Equal(3))
		Expect(count()).To(Equal(3))

		res = store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02, 129.62))
		Expect(res.Stored).To(Equal(4))
		Expect(count()).To(Equal(4))
	})

	It("overwrites non-key columns", func() {
		w := store.New(pool, zerolog.Nop())
		store.StoreAll(ctx, w, prices(99.5))

		var closePrice float64
		Expect(pool.QueryRow(ctx, "SELECT close FROM prices WHERE symbol = 'AAPL' AND date = '2023-01-03'").Scan(&closePrice)).To(Succeed())
		Expect(closePrice).To(Equal(99.5))
	})

	It("reads prices back within an inclusive window", func() {
		reader := store.NewReader(pool)
		window := process.Window{
			Start: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		}

		got, err := reader.Prices(ctx, []string{"AAPL"}, window)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(HaveLen(2))
		Expect(got[0].Date).To(Equal(window.Start))
		Expect(got[1].Date).To(Equal(window.End))
		Expect(*got[0].Close).To(Equal(126.36))
		Expect(got[0].Open).To(BeNil())

		none, err := reader.Prices(ctx, []string{"ZZZZ"}, window)
		Expect(err).ToNot(HaveOccurred())
		Expect(none).To(BeEmpty())
	})
})
