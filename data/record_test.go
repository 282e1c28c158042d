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
package data_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/data"
)

var _ = Describe("Record", func() {
	day := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)

	It("lists every key column in its row", func() {
		records := []data.Record{
			&data.Price{}, &data.Stock{}, &data.GradesConsensus{}, &data.TreasuryRate{},
			&data.SectorPE{}, &data.MergerAcquisition{}, &data.EconomicIndicator{},
		}

		for _, rec := range records {
			columns := map[string]bool{}
			for _, field := range rec.Row() {
				columns[field.Column] = true
			}
			for _, key := range rec.Key() {
				Expect(columns).To(HaveKey(key), rec.Table())
			}
		}
	})

	It("tags entity records and leaves global ones alone", func() {
		prices := []*data.Price{{Date: day}, {Date: day.AddDate(0, 0, 1)}}
		data.TagAll(prices, "AAPL")
		Expect(prices[0].Symbol).To(Equal("AAPL"))
		Expect(prices[1].Symbol).To(Equal("AAPL"))

		rates := []*data.TreasuryRate{{Date: day}}
		data.TagAll(rates, "AAPL")
		Expect(rates[0].EventDate()).To(Equal(day))
	})

	It("logs the primary key", func() {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		logger.Info().Object("Record", &data.Price{Symbol: "MSFT", Date: day}).Msg("")
		Expect(buf.String()).To(ContainSubstring(`"Symbol":"MSFT"`))
		Expect(buf.String()).To(ContainSubstring(`"Date":"2023-01-03"`))
	})

	DescribeTable("logs the key of every record family",
		func(rec zerolog.LogObjectMarshaler, expected ...string) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			logger.Info().Object("Record", rec).Msg("")
			for _, fragment := range expected {
				Expect(buf.String()).To(ContainSubstring(fragment))
			}
		},
		Entry("employee counts", &data.EmployeeCount{Symbol: "MSFT", Date: day}, `"Symbol":"MSFT"`, `"Date":"2023-01-03"`),
		Entry("economic indicators", &data.EconomicIndicator{Name: "GDP", Date: day}, `"Name":"GDP"`, `"Date":"2023-01-03"`),
		Entry("earnings", &data.Earnings{Symbol: "NVDA", Date: day}, `"Symbol":"NVDA"`),
		Entry("enterprise values", &data.EnterpriseValue{Symbol: "KO", Date: day}, `"Symbol":"KO"`),
		Entry("mergers", &data.MergerAcquisition{Symbol: "AVGO", TargetedSymbol: "VMW", TransactionDate: day}, `"TargetedSymbol":"VMW"`),
	)

	It("converts typed slices to records", func() {
		records := data.Records([]*data.Dividend{{Symbol: "KO", Date: day}})
		Expect(records).To(HaveLen(1))
		Expect(records[0].Table()).To(Equal("dividends"))
	})
})
