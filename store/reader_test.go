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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
)

var _ = Describe("SelectSQL", func() {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	It("filters tickers and bounds the date inclusively", func() {
		sql, args := store.SelectSQL(&data.Dividend{}, []string{"AAPL", "MSFT"}, process.Window{Start: start, End: end})
		Expect(sql).To(HavePrefix(`SELECT "symbol", "date", "record_date"`))
		Expect(sql).To(HaveSuffix(`FROM dividends WHERE "symbol" = ANY($1) AND "date" >= $2 AND "date" <= $3 ORDER BY "symbol", "date"`))
		Expect(args).To(Equal([]any{[]string{"AAPL", "MSFT"}, start, end}))
	})

	It("selects everything when no filter is given", func() {
		sql, args := store.SelectSQL(&data.Price{}, nil, process.Window{})
		Expect(sql).ToNot(ContainSubstring("WHERE"))
		Expect(sql).To(HaveSuffix(`FROM prices ORDER BY "symbol", "date"`))
		Expect(args).To(BeEmpty())
	})

	It("leaves open bounds unset", func() {
		sql, args := store.SelectSQL(&data.Price{}, []string{"AAPL"}, process.Window{End: end})
		Expect(sql).To(ContainSubstring(`WHERE "symbol" = ANY($1) AND "date" <= $2 ORDER`))
		Expect(args).To(HaveLen(2))
	})

	It("uses the series name as the entity of economic indicators", func() {
		sql, _ := store.SelectSQL(&data.EconomicIndicator{}, []string{"GDP"}, process.Window{Start: start})
		Expect(sql).To(ContainSubstring(`WHERE "name" = ANY($1) AND "date" >= $2`))
	})

	It("bounds mergers on the transaction date", func() {
		sql, _ := store.SelectSQL(&data.MergerAcquisition{}, []string{"AVGO"}, process.Window{Start: start, End: end})
		Expect(sql).To(ContainSubstring(`"symbol" = ANY($1) AND "transaction_date" >= $2 AND "transaction_date" <= $3`))
	})

	It("ignores filters a table has no column for", func() {
		sql, args := store.SelectSQL(&data.TreasuryRate{}, []string{"AAPL"}, process.Window{Start: start})
		Expect(sql).To(ContainSubstring(`FROM treasury_rates WHERE "date" >= $1 ORDER BY "date"`))
		Expect(args).To(Equal([]any{start}))

		sql, args = store.SelectSQL(&data.Stock{}, []string{"AAPL"}, process.Window{Start: start, End: end})
		Expect(sql).To(HaveSuffix(`FROM stocks WHERE "symbol" = ANY($1) ORDER BY "symbol"`))
		Expect(args).To(HaveLen(1))
	})
})
