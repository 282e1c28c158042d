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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/store"
)

func ptr[T any](v T) *T { return &v }

func prices(closes ...float64) []*data.Price {
	out := make([]*data.Price, len(closes))
	for idx, c := range closes {
		out[idx] = &data.Price{
			Symbol: "AAPL",
			Date:   time.Date(2023, 1, 3+idx, 0, 0, 0, 0, time.UTC),
			Close:  ptr(c),
		}
	}
	return out
}

var _ = Describe("UpsertSQL", func() {
	It("puts key columns first and replaces the rest on conflict", func() {
		rec := &data.SectorPE{
			Sector:   "Technology",
			Exchange: "NASDAQ",
			Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			PE:       ptr(31.5),
		}

		sql, args := store.UpsertSQL(rec)
		Expect(sql).To(Equal(`INSERT INTO sector_pe ("sector", "exchange", "date", "pe") VALUES ($1, $2, $3, $4) ` +
			`ON CONFLICT ON CONSTRAINT sector_pe_pkey DO UPDATE SET "pe" = EXCLUDED."pe", last_updated = now()`))
		Expect(args).To(HaveLen(4))
		Expect(args[0]).To(Equal("Technology"))
	})

	It("does nothing on conflict when every column is a key", func() {
		sql, _ := store.UpsertSQL(&keyOnly{})
		Expect(sql).To(HaveSuffix("ON CONFLICT ON CONSTRAINT key_only_pkey DO NOTHING"))
	})

	It("orders keys by declaration even when the row lists them later", func() {
		sql, args := store.UpsertSQL(&lateKey{})
		Expect(sql).To(HavePrefix(`INSERT INTO late_key ("id", "note")`))
		Expect(args).To(Equal([]any{"k1", "hello"}))
	})
})

var _ = Describe("Writer", func() {
	var (
		ctx context.Context
		db  *fakeDB
		w   *store.Writer
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newFakeDB(map[string]int{"prices": 2})
		w = store.New(db, zerolog.Nop())
	})

	It("is idempotent", func() {
		first := store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02))
		Expect(first).To(Equal(store.Result{Stored: 3}))
		Expect(db.Count("prices")).To(Equal(3))

		second := store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02))
		Expect(second.Stored).To(Equal(3))
		Expect(db.Count("prices")).To(Equal(3))
	})

	It("adds new keys and overwrites existing ones on a re-run", func() {
		store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02))
		res := store.StoreAll(ctx, w, prices(125.00, 126.36, 125.02, 129.62))

		Expect(res.Stored).To(Equal(4))
		Expect(db.Count("prices")).To(Equal(4))
	})

	It("keeps going when one record fails", func() {
		db.failKey = "2023-01-04"

		res := store.StoreAll(ctx, w, prices(125.07, 126.36, 125.02))
		Expect(res).To(Equal(store.Result{Stored: 2, Failed: 1}))
		Expect(db.Count("prices")).To(Equal(2))
	})

	It("stops when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		res := store.StoreAll(cancelled, w, prices(1, 2, 3))
		Expect(res).To(Equal(store.Result{Failed: 3}))
		Expect(db.execs).To(BeZero())
	})

	It("wraps database errors", func() {
		err := w.Store(ctx, &data.TreasuryRate{Date: time.Now()})
		Expect(err).To(MatchError(store.ErrStore))
	})
})

type keyOnly struct{}

func (k *keyOnly) Table() string { return "key_only" }

func (k *keyOnly) Key() []string { return []string{"a", "b"} }

func (k *keyOnly) Row() []data.Field {
	return []data.Field{{Column: "a", Value: 1}, {Column: "b", Value: 2}}
}

func (k *keyOnly) EventDate() time.Time { return time.Time{} }

func (k *keyOnly) MarshalZerologObject(*zerolog.Event) {}

type lateKey struct{}

func (l *lateKey) Table() string { return "late_key" }
func (l *lateKey) Key() []string { return []string{"id"} }
func (l *lateKey) Row() []data.Field {
	return []data.Field{{Column: "note", Value: "hello"}, {Column: "id", Value: "k1"}}
}
func (l *lateKey) EventDate() time.Time                  { return time.Time{} }
func (l *lateKey) MarshalZerologObject(e *zerolog.Event) { e.Str("ID", "k1") }
