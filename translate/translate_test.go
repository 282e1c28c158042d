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
package translate_test

import (
	"time"

	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/translate"
)

func decode[T any](payload string) []T {
	var out []T
	Expect(json.Unmarshal([]byte(payload), &out)).To(Succeed())
	return out
}

var _ = Describe("Translators", func() {
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	It("skips prices without a usable date and keeps missing values nil", func() {
		raw := decode[fmp.Price](`[
			{"symbol":"AAPL","date":"2023-01-03","open":130.28,"close":"125.07","volume":112117500,"vwap":null},
			{"symbol":"AAPL","date":"","close":1},
			{"symbol":"AAPL","close":2}
		]`)

		prices := translate.Prices(raw)
		Expect(prices).To(HaveLen(1))
		Expect(prices[0].Date).To(Equal(time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)))
		Expect(*prices[0].Open).To(Equal(130.28))
		Expect(*prices[0].Close).To(Equal(125.07))
		Expect(*prices[0].Volume).To(BeEquivalentTo(112117500))
		Expect(prices[0].VWAP).To(BeNil())
		Expect(prices[0].High).To(BeNil())
	})

	It("drops screener entries without a symbol", func() {
		raw := decode[fmp.Stock](`[
			{"symbol":"MSFT","companyName":"Microsoft Corporation","isEtf":false,"marketCap":3.1e12},
			{"symbol":"  ","companyName":"nobody"}
		]`)

		stocks := translate.Stocks(raw)
		Expect(stocks).To(HaveLen(1))
		Expect(stocks[0].Symbol).To(Equal("MSFT"))
		Expect(*stocks[0].IsETF).To(BeFalse())
		Expect(*stocks[0].MarketCap).To(Equal(3.1e12))
		Expect(stocks[0].EventDate().IsZero()).To(BeTrue())
	})

	It("dates employee counts by filing and falls back to the period", func() {
		raw := decode[fmp.EmployeeCount](`[
			{"symbol":"AAPL","filingDate":"2023-11-03","periodOfReport":"2023-09-30","employeeCount":161000},
			{"symbol":"AAPL","filingDate":"","periodOfReport":"2022-09-24","employeeCount":"164000"},
			{"symbol":"AAPL","filingDate":"2021-10-29","employeeCount":null}
		]`)

		counts := translate.EmployeeCounts(raw)
		Expect(counts).To(HaveLen(2))
		Expect(counts[0].Date).To(Equal(time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC)))
		Expect(*counts[0].PeriodOfReport).To(Equal(time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC)))
		Expect(counts[1].Date).To(Equal(time.Date(2022, 9, 24, 0, 0, 0, 0, time.UTC)))
		Expect(*counts[1].EmployeeCount).To(BeEquivalentTo(164000))
	})

	It("nulls mistyped optional dates without dropping the record", func() {
		raw := decode[fmp.Dividend](`[
			{"symbol":"AAPL","date":"2023-01-03","paymentDate":0,"recordDate":{"d":1},"declarationDate":"2022-12-15","dividend":0.24},
			{"symbol":"AAPL","date":"2023-04-03","paymentDate":"2023-04-13","dividend":0.24}
		]`)

		divs := translate.Dividends(raw)
		Expect(divs).To(HaveLen(2))
		Expect(divs[0].PaymentDate).To(BeNil())
		Expect(divs[0].RecordDate).To(BeNil())
		Expect(*divs[0].DeclarationDate).To(Equal(time.Date(2022, 12, 15, 0, 0, 0, 0, time.UTC)))
		Expect(*divs[0].Dividend).To(Equal(0.24))
		Expect(*divs[1].PaymentDate).To(Equal(time.Date(2023, 4, 13, 0, 0, 0, 0, time.UTC)))
	})

	It("falls back to the period only when it is a date", func() {
		counts := translate.EmployeeCounts(decode[fmp.EmployeeCount](`[
			{"symbol":"MSFT","periodOfReport":20230630,"employeeCount":221000}
		]`))
		Expect(counts).To(BeEmpty())
	})

	It("stamps consensus snapshots with the run date", func() {
		raw := decode[fmp.PriceTargetConsensus](`[{"symbol":"NVDA","targetHigh":1200,"targetLow":"bad","targetConsensus":950.5}]`)

		consensus := translate.PriceTargetConsensus(raw, asOf)
		Expect(consensus).To(HaveLen(1))
		Expect(consensus[0].AsOf).To(Equal(asOf))
		Expect(consensus[0].TargetLow).To(BeNil())
		Expect(*consensus[0].TargetConsensus).To(Equal(950.5))
	})

	Describe("GradeBundle", func() {
		It("splits history and consensus into their tables", func() {
			bundle := &fmp.GradesBundle{
				History:   decode[fmp.Grade](`[{"symbol":"AAPL","date":"2024-03-01","analystRatingsBuy":24},{"symbol":"AAPL","date":"2024-02-01","analystRatingsBuy":22}]`),
				Consensus: &decode[fmp.GradesConsensus](`[{"symbol":"AAPL","buy":24,"hold":10,"consensus":"Buy"}]`)[0],
			}

			tagged := translate.GradeBundle(bundle, asOf)
			Expect(tagged).To(HaveKey("grades"))
			Expect(tagged["grades"]).To(HaveLen(2))
			Expect(tagged).To(HaveKey("grades_consensus"))

			consensus, ok := tagged["grades_consensus"][0].(*data.GradesConsensus)
			Expect(ok).To(BeTrue())
			Expect(consensus.AsOf).To(Equal(asOf))
			Expect(*consensus.Consensus).To(Equal("Buy"))
		})

		It("omits the consensus when the upstream has none", func() {
			bundle := &fmp.GradesBundle{History: decode[fmp.Grade](`[{"symbol":"AAPL","date":"2024-03-01"}]`)}
			tagged := translate.GradeBundle(bundle, asOf)
			Expect(tagged).To(HaveLen(1))
			Expect(tagged).ToNot(HaveKey("grades_consensus"))
		})

		It("yields nothing for an empty bundle", func() {
			Expect(translate.GradeBundle(nil, asOf)).To(BeNil())
			Expect(translate.GradeBundle(&fmp.GradesBundle{}, asOf)).To(BeNil())
		})
	})
})
