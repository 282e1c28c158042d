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
package fmp_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/fmp"
)

var _ = Describe("Adapter", func() {
	var (
		ctx    context.Context
		getter *stubGetter
		api    *fmp.Adapter
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	use := func(bodies map[string]string) {
		getter = newStubGetter(bodies)
		api = fmp.New(getter, zerolog.Nop())
	}

	Context("list resources", func() {
		It("drops elements that are not objects", func() {
			use(map[string]string{
				"/historical-price-eod/full": `[{"symbol":"AAPL","date":"2023-01-03","close":125.07}, 7, "x", null, {"symbol":"AAPL","date":"2023-01-04","close":126.36}]`,
			})

			prices, err := api.HistoricalPrices(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(prices).To(HaveLen(2))
			Expect(prices[0].Date).To(Equal("2023-01-03"))
			Expect(string(prices[1].Close)).To(Equal("126.36"))
		})

		It("treats a bare object as a list of one", func() {
			use(map[string]string{
				"/dividends": `{"symbol":"MSFT","date":"2023-02-15","dividend":0.68}`,
			})

			divs, err := api.Dividends(ctx, fmp.Query{Symbol: "MSFT"})
			Expect(err).ToNot(HaveOccurred())
			Expect(divs).To(HaveLen(1))
			Expect(divs[0].Symbol).To(Equal("MSFT"))
		})

		It("keeps elements whose optional dates have the wrong type", func() {
			use(map[string]string{
				"/dividends": `[{"symbol":"AAPL","date":"2023-01-03","paymentDate":0,"recordDate":false,"dividend":0.24},{"symbol":"AAPL","date":"2023-04-03","paymentDate":"2023-04-13","dividend":0.24}]`,
			})

			divs, err := api.Dividends(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(divs).To(HaveLen(2))
			Expect(string(divs[0].PaymentDate)).To(Equal("0"))
			Expect(string(divs[1].PaymentDate)).To(Equal(`"2023-04-13"`))
		})

		It("returns nothing for a scalar payload", func() {
			use(map[string]string{"/splits": `"maintenance"`})

			splits, err := api.Splits(ctx, fmp.Query{Symbol: "MSFT"})
			Expect(err).ToNot(HaveOccurred())
			Expect(splits).To(BeEmpty())
		})

		It("returns nothing when the client had no data", func() {
			use(map[string]string{})

			rates, err := api.TreasuryRates(ctx, fmp.Query{})
			Expect(err).ToNot(HaveOccurred())
			Expect(rates).To(BeNil())
		})

		It("keeps loose numeric fields as raw bytes", func() {
			use(map[string]string{
				"/key-metrics": `[{"symbol":"AAPL","date":"2023-09-30","marketCap":"None","currentRatio":null}]`,
			})

			metrics, err := api.KeyMetrics(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(metrics).To(HaveLen(1))
			Expect(string(metrics[0].MarketCap)).To(Equal(`"None"`))
			Expect(metrics[0].CurrentRatio.IsNull()).To(BeTrue())
			Expect(metrics[0].EnterpriseValue.IsNull()).To(BeTrue())
		})

		It("passes fatal client errors through", func() {
			use(map[string]string{})
			getter.err = client.ErrUnauthorized

			_, err := api.Ratios(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).To(MatchError(client.ErrUnauthorized))
		})
	})

	Context("single-object resources", func() {
		It("unwraps the first element of a list", func() {
			use(map[string]string{
				"/discounted-cash-flow": `[{"symbol":"AAPL","date":"2024-05-01","dcf":150.1,"Stock Price":170.2},{"symbol":"AAPL","date":"2024-04-01"}]`,
			})

			dcf, err := api.DiscountedCashFlow(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(dcf).ToNot(BeNil())
			Expect(dcf.Date).To(Equal("2024-05-01"))
			Expect(string(dcf.StockPrice)).To(Equal("170.2"))
		})

		It("accepts a bare object", func() {
			use(map[string]string{
				"/price-target-consensus": `{"symbol":"AAPL","targetHigh":250,"targetLow":160}`,
			})

			ptc, err := api.PriceTargetConsensus(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(string(ptc.TargetHigh)).To(Equal("250"))
		})

		It("returns nil for an empty list", func() {
			use(map[string]string{"/shares-float": `[]`})

			float, err := api.ShareFloat(ctx, fmp.Query{Symbol: "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(float).To(BeNil())
		})
	})

	Context("query parameters", func() {
		It("sends only the parameters a resource understands", func() {
			use(map[string]string{})

			_, _ = api.KeyMetrics(ctx, fmp.Query{
				Symbol:   "AAPL",
				Period:   "quarter",
				Limit:    20,
				Exchange: "NASDAQ",
				From:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			})

			calls := getter.Calls()
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].Path).To(Equal("/key-metrics"))
			Expect(calls[0].Params).To(Equal(map[string]string{
				"symbol": "AAPL",
				"period": "quarter",
				"limit":  "20",
			}))
		})

		It("always sends the page for analyst estimates", func() {
			use(map[string]string{})

			_, _ = api.AnalystEstimates(ctx, fmp.Query{Symbol: "AAPL", Period: "annual", Limit: 10})

			calls := getter.Calls()
			Expect(calls[0].Params).To(HaveKeyWithValue("page", "0"))
			Expect(calls[0].Params).To(HaveKeyWithValue("period", "annual"))
		})

		It("formats date bounds as calendar days", func() {
			use(map[string]string{})

			_, _ = api.SectorPE(ctx, fmp.Query{
				Sector:   "Technology",
				Exchange: "NASDAQ",
				From:     time.Date(2023, 1, 1, 15, 4, 5, 0, time.UTC),
				To:       time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			})

			Expect(getter.Calls()[0].Params).To(Equal(map[string]string{
				"sector":   "Technology",
				"exchange": "NASDAQ",
				"from":     "2023-01-01",
				"to":       "2023-01-31",
			}))
		})
	})

	Context("company screener", func() {
		BeforeEach(func() {
			use(map[string]string{
				"/company-screener": `[{"symbol":"AAPL","companyName":"Apple Inc."},{"symbol":"BRK-B","companyName":"Berkshire Hathaway"}]`,
			})
		})

		It("fetches the screener once and serves lookups from memory", func() {
			stock, err := api.CompanyProfile(ctx, "aapl")
			Expect(err).ToNot(HaveOccurred())
			Expect(stock).ToNot(BeNil())
			Expect(string(stock.CompanyName)).To(Equal(`"Apple Inc."`))

			stock, err = api.CompanyProfile(ctx, "BRK-B")
			Expect(err).ToNot(HaveOccurred())
			Expect(stock.Symbol).To(Equal("BRK-B"))

			Expect(getter.Calls()).To(HaveLen(1))
		})

		It("returns nil for symbols the screener does not list", func() {
			stock, err := api.CompanyProfile(ctx, "ZZZZ")
			Expect(err).ToNot(HaveOccurred())
			Expect(stock).To(BeNil())
		})
	})
})
