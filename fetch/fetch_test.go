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
package fetch_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/fetch"
	"github.com/penny-vault/pvfactor/fmp"
)

var _ = Describe("Retry", func() {
	var (
		ctx    context.Context
		clock  *fakeClock
		policy fetch.Policy
	)

	BeforeEach(func() {
		ctx = context.Background()
		clock = &fakeClock{now: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
		policy = fetch.NewPolicy(3, 30*time.Second, clock, zerolog.Nop())
	})

	empty := func(items []int) bool { return len(items) == 0 }

	It("returns the payload when the last attempt succeeds", func() {
		calls := 0
		result, err := fetch.Retry(ctx, policy, "prices", func(context.Context) ([]int, error) {
			calls++
			if calls < 3 {
				return nil, nil
			}
			return []int{1, 2}, nil
		}, empty)

		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(Equal([]int{1, 2}))
		Expect(calls).To(Equal(3))
		Expect(clock.sleeps).To(Equal([]time.Duration{30 * time.Second, 30 * time.Second}))
	})

	It("returns nothing without an error once attempts are exhausted", func() {
		calls := 0
		result, err := fetch.Retry(ctx, policy, "prices", func(context.Context) ([]int, error) {
			calls++
			return nil, errors.New("flaky")
		}, empty)

		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(BeNil())
		Expect(calls).To(Equal(3))
	})

	It("does not retry an authentication failure", func() {
		calls := 0
		_, err := fetch.Retry(ctx, policy, "prices", func(context.Context) ([]int, error) {
			calls++
			return nil, client.ErrUnauthorized
		}, empty)

		Expect(err).To(MatchError(client.ErrUnauthorized))
		Expect(calls).To(Equal(1))
		Expect(clock.sleeps).To(BeEmpty())
	})

	It("stops when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := fetch.Retry(cancelled, policy, "prices", func(context.Context) ([]int, error) {
			return []int{1}, nil
		}, empty)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Fetchers", func() {
	var (
		ctx    context.Context
		getter *scriptedGetter
		f      *fetch.Fetchers
	)

	BeforeEach(func() {
		ctx = context.Background()
		getter = &scriptedGetter{}
		clock := &fakeClock{}
		f = fetch.New(fmp.New(getter, zerolog.Nop()), fetch.NewPolicy(3, time.Second, clock, zerolog.Nop()))
	})

	It("retries a resource that comes back empty", func() {
		getter.script = map[string][]string{
			"/historical-price-eod/full": {`[]`, `[{"symbol":"AAPL","date":"2023-01-03","close":125.07}]`},
		}

		prices, err := f.MarketData.Prices(ctx, fmp.Query{Symbol: "AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(prices).To(HaveLen(1))
		Expect(getter.calls["/historical-price-eod/full"]).To(Equal(2))
	})

	It("presents single-object resources as a list", func() {
		getter.script = map[string][]string{
			"/shares-float": {`[{"symbol":"AAPL","date":"2024-05-01 10:00:00","floatShares":15000000000}]`},
		}

		floats, err := f.MarketData.ShareFloat(ctx, fmp.Query{Symbol: "AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(floats).To(HaveLen(1))
	})

	It("bundles grade history with the consensus", func() {
		getter.script = map[string][]string{
			"/grades-historical": {`[{"symbol":"AAPL","date":"2024-05-01","analystRatingsBuy":20}]`},
			"/grades-consensus":  {`[{"symbol":"AAPL","consensus":"Buy"}]`},
		}

		bundle, err := f.AnalystData.Grades(ctx, fmp.Query{Symbol: "AAPL"})
		Expect(err).ToNot(HaveOccurred())
		Expect(bundle.History).To(HaveLen(1))
		Expect(bundle.Consensus).ToNot(BeNil())
	})

	It("labels economic indicators with the requested name", func() {
		getter.script = map[string][]string{
			"/economic-indicators": {`[{"date":"2024-01-01","value":27956.998}]`},
		}

		items, err := f.Macro.EconomicIndicator(ctx, fmp.Query{Name: "GDP"})
		Expect(err).ToNot(HaveOccurred())
		Expect(items).To(HaveLen(1))
		Expect(items[0].Name).To(Equal("GDP"))
	})

	It("stamps the requested sector and exchange", func() {
		getter.script = map[string][]string{
			"/historical-sector-pe": {`[{"date":"2024-02-01","pe":31.2}]`},
		}

		items, err := f.Macro.SectorPE(ctx, fmp.Query{Sector: "Energy", Exchange: "NYSE"})
		Expect(err).ToNot(HaveOccurred())
		Expect(items[0].Sector).To(Equal("Energy"))
		Expect(items[0].Exchange).To(Equal("NYSE"))
	})

	It("finds a stock in the cached screener", func() {
		getter.script = map[string][]string{
			"/company-screener": {`[{"symbol":"AAPL","companyName":"Apple Inc."},{"symbol":"MSFT"}]`},
		}

		stocks, err := f.Core.Stock(ctx, "MSFT")
		Expect(err).ToNot(HaveOccurred())
		Expect(stocks).To(HaveLen(1))

		stocks, err = f.Core.Stock(ctx, "NOPE")
		Expect(err).ToNot(HaveOccurred())
		Expect(stocks).To(BeEmpty())
		Expect(getter.calls["/company-screener"]).To(Equal(1))
	})

	It("stops requesting a screener that stayed empty", func() {
		getter.script = map[string][]string{"/company-screener": {`[]`}}

		for _, symbol := range []string{"AAPL", "MSFT", "NVDA"} {
			stocks, err := f.Core.Stock(ctx, symbol)
			Expect(err).ToNot(HaveOccurred())
			Expect(stocks).To(BeEmpty())
		}

		Expect(getter.calls["/company-screener"]).To(Equal(3))
	})

	It("keeps requesting the screener after a fatal error", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.Core.Stock(cancelled, "AAPL")
		Expect(err).To(MatchError(context.Canceled))

		getter.script = map[string][]string{"/company-screener": {`[{"symbol":"AAPL"}]`}}
		stocks, err := f.Core.Stock(ctx, "AAPL")
		Expect(err).ToNot(HaveOccurred())
		Expect(stocks).To(HaveLen(1))
	})
})
