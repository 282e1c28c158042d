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
package populate_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/fetch"
	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/populate"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
	"github.com/penny-vault/pvfactor/universe"
)

func priceRows(symbol string, dates ...string) []byte {
	rows := make([]string, 0, len(dates))
	for _, dt := range dates {
		rows = append(rows, fmt.Sprintf(`{"symbol":%q,"date":%q,"open":1.5,"high":2,"low":1,"close":1.75,"volume":1000}`, symbol, dt))
	}
	return []byte("[" + strings.Join(rows, ",") + "]")
}

var _ = Describe("Populator", func() {
	var (
		ctx      context.Context
		getter   *routeGetter
		db       *fakeDB
		clock    *fakeClock
		settings *config.Settings
	)

	window := process.Window{
		Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	newPopulator := func(opts populate.Options) *populate.Populator {
		api := fmp.New(getter, zerolog.Nop())
		policy := fetch.NewPolicy(1, time.Second, newFakeClock(), zerolog.Nop())
		opts.Fetchers = fetch.New(api, policy)
		opts.Writer = store.New(db, zerolog.Nop())
		opts.Settings = settings
		opts.Clock = clock
		opts.Logger = zerolog.Nop()
		if opts.Window.IsZero() {
			opts.Window = window
		}
		return populate.New(opts)
	}

	BeforeEach(func() {
		ctx = context.Background()
		db = newFakeDB()
		clock = newFakeClock()
		settings = config.Default(clock.Now())
		getter = &routeGetter{routes: map[string]handler{
			"/historical-price-eod/full": func(params map[string]string) ([]byte, error) {
				return priceRows(params["symbol"], "2023-01-03", "2023-01-04", "2023-01-05"), nil
			},
		}}
	})

	It("stores new rows on a second run without duplicating the old ones", func() {
		p := newPopulator(populate.Options{Domains: []string{"prices"}, SkipMacro: true})

		summary, err := p.Populate(ctx, []string{"AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Stored).To(Equal(3))
		Expect(db.Count("prices")).To(Equal(3))

		getter.routes["/historical-price-eod/full"] = func(params map[string]string) ([]byte, error) {
			return priceRows(params["symbol"], "2023-01-03", "2023-01-04", "2023-01-05", "2023-01-06"), nil
		}

		summary, err = p.Populate(ctx, []string{"AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.Stored).To(Equal(4))
		Expect(summary.TasksDone()).To(Equal(1))
		Expect(db.Count("prices")).To(Equal(4))
	})

	It("pauses once between two full batches", func() {
		p := newPopulator(populate.Options{
			Domains:    []string{"prices"},
			SkipMacro:  true,
			BatchSize:  2,
			BatchDelay: time.Minute,
		})

		summary, err := p.Populate(ctx, []string{"AAPL", "MSFT", "NVDA", "AMZN"})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.NumEntities).To(Equal(4))
		Expect(clock.Sleeps()).To(Equal([]time.Duration{time.Minute}))
	})

	It("does not pause after a short final batch", func() {
		p := newPopulator(populate.Options{
			Domains:    []string{"prices"},
			SkipMacro:  true,
			BatchSize:  2,
			BatchDelay: time.Minute,
		})

		_, err := p.Populate(ctx, []string{"AAPL", "MSFT", "NVDA"})
		Expect(err).ToNot(HaveOccurred())
		Expect(clock.Sleeps()).To(HaveLen(1))
	})

	It("runs macro domains once per run", func() {
		getter.routes["/treasury-rates"] = func(map[string]string) ([]byte, error) {
			return []byte(`[{"date":"2023-06-01","month1":5.2,"year10":3.6}]`), nil
		}

		p := newPopulator(populate.Options{Domains: []string{"treasury_rates", "prices"}})
		summary, err := p.Populate(ctx, []string{"AAPL", "MSFT", "NVDA"})
		Expect(err).ToNot(HaveOccurred())
		Expect(getter.Calls("/treasury-rates")).To(HaveLen(1))
		Expect(getter.Calls("/historical-price-eod/full")).To(HaveLen(3))
		Expect(db.Count("treasury_rates")).To(Equal(1))
		Expect(summary.NumTasks).To(Equal(4))
	})

	It("skips macro domains when asked", func() {
		p := newPopulator(populate.Options{Domains: []string{"treasury_rates", "prices"}, SkipMacro: true})
		_, err := p.Populate(ctx, []string{"AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(getter.Calls("/treasury-rates")).To(BeEmpty())
	})

	It("keeps going when one ticker has no data", func() {
		getter.routes["/historical-price-eod/full"] = func(params map[string]string) ([]byte, error) {
			if params["symbol"] == "GONE" {
				return []byte(`[]`), nil
			}
			return priceRows(params["symbol"], "2023-01-03"), nil
		}

		p := newPopulator(populate.Options{Domains: []string{"prices"}, SkipMacro: true})
		summary, err := p.Populate(ctx, []string{"GONE", "AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.States[process.FetchFailed]).To(Equal(1))
		Expect(summary.States[process.Done]).To(Equal(1))
		Expect(summary.TasksFailed()).To(Equal(1))
		Expect(db.Count("prices")).To(Equal(1))
	})

	It("marks partial storage failures without aborting", func() {
		getter.routes["/dividends"] = func(params map[string]string) ([]byte, error) {
			return []byte(`[{"symbol":"AAPL","date":"2023-02-10","dividend":0.23}]`), nil
		}
		delete(db.keyLen, "dividends")

		p := newPopulator(populate.Options{Domains: []string{"dividends", "prices"}, SkipMacro: true})
		summary, err := p.Populate(ctx, []string{"AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.States[process.StoreFailedPartial]).To(Equal(1))
		Expect(summary.Failed).To(Equal(1))
		Expect(db.Count("prices")).To(Equal(3))
	})

	It("aborts the run when the api key is rejected", func() {
		getter.routes["/historical-price-eod/full"] = func(params map[string]string) ([]byte, error) {
			if params["symbol"] == "MSFT" {
				return nil, client.ErrUnauthorized
			}
			return priceRows(params["symbol"], "2023-01-03"), nil
		}

		p := newPopulator(populate.Options{Domains: []string{"prices"}, SkipMacro: true})
		summary, err := p.Populate(ctx, []string{"AAPL", "MSFT", "NVDA"})
		Expect(err).To(MatchError(client.ErrUnauthorized))
		Expect(getter.Calls("/historical-price-eod/full?NVDA")).To(BeEmpty())
		Expect(summary.NumTasks).To(Equal(2))
	})

	It("stops between tasks once cancelled", func() {
		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		getter.routes["/historical-price-eod/full"] = func(params map[string]string) ([]byte, error) {
			cancel()
			return priceRows(params["symbol"], "2023-01-03"), nil
		}

		p := newPopulator(populate.Options{Domains: []string{"prices"}, SkipMacro: true})
		summary, err := p.Populate(cancelCtx, []string{"AAPL", "MSFT"})
		Expect(err).To(MatchError(context.Canceled))
		Expect(getter.Calls("/historical-price-eod/full")).To(HaveLen(1))
		Expect(summary.NumTasks).To(Equal(1))
	})

	It("rejects unknown domains", func() {
		p := newPopulator(populate.Options{Domains: []string{"horoscopes"}})
		_, err := p.Populate(ctx, []string{"AAPL"})
		Expect(err).To(MatchError(populate.ErrUnknownDomain))
	})

	It("fails when the universe is empty", func() {
		p := newPopulator(populate.Options{Universe: universe.Static{}})
		_, err := p.Populate(ctx, nil)
		Expect(err).To(MatchError(universe.ErrNoTickers))
		Expect(err).To(MatchError(populate.ErrUniverse))
	})

	It("resolves the universe when no tickers are given", func() {
		p := newPopulator(populate.Options{Universe: universe.Static{"brk.b"}, Domains: []string{"prices"}, SkipMacro: true})
		_, err := p.Populate(ctx, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(getter.Calls("/historical-price-eod/full")).To(Equal([]string{"/historical-price-eod/full?BRK-B"}))
	})
})

var _ = Describe("Catalog", func() {
	It("lists macro domains before entity domains", func() {
		domains := populate.Catalog()
		Expect(domains).ToNot(BeEmpty())

		seenEntity := false
		for _, d := range domains {
			if d.Scope == populate.EntityScope {
				seenEntity = true
				continue
			}
			Expect(seenEntity).To(BeFalse(), d.Name)
		}
	})

	It("finds domains by name", func() {
		d, ok := populate.Lookup("grades")
		Expect(ok).To(BeTrue())
		Expect(d.Tables).To(ConsistOf("grades", "grades_consensus"))

		_, ok = populate.Lookup("nope")
		Expect(ok).To(BeFalse())
	})
})
