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
package translate

import (
	"strings"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/fmp"
)

// Stocks keeps screener entries that carry a symbol
func Stocks(raw []fmp.Stock) []*data.Stock {
	out := make([]*data.Stock, 0, len(raw))
	for _, r := range raw {
		symbol := strings.TrimSpace(r.Symbol)
		if symbol == "" {
			continue
		}

		out = append(out, &data.Stock{
			Symbol:            symbol,
			CompanyName:       Str(r.CompanyName),
			Exchange:          Str(r.Exchange),
			ExchangeShortName: Str(r.ExchangeShortName),
			Industry:          Str(r.Industry),
			Sector:            Str(r.Sector),
			Country:           Str(r.Country),
			MarketCap:         Float(r.MarketCap),
			Beta:              Float(r.Beta),
			Price:             Float(r.Price),
			IsETF:             Bool(r.IsETF),
			IsFund:            Bool(r.IsFund),
			IsActivelyTrading: Bool(r.IsActivelyTrading),
		})
	}
	return out
}

// EmployeeCounts dates each count by its filing, falling back to the end of
// the reporting period. Filings without a count are skipped.
func EmployeeCounts(raw []fmp.EmployeeCount) []*data.EmployeeCount {
	out := make([]*data.EmployeeCount, 0, len(raw))
	for _, r := range raw {
		count := Int(r.EmployeeCount)
		if count == nil {
			continue
		}

		period := OptDate(r.PeriodOfReport)
		date, ok := Date(r.Date)
		if !ok {
			if period == nil {
				continue
			}
			date = *period
		}

		out = append(out, &data.EmployeeCount{
			Symbol:         r.Symbol,
			Date:           date,
			PeriodOfReport: period,
			FormType:       Str(r.FormType),
			EmployeeCount:  count,
			Source:         Str(r.Source),
		})
	}
	return out
}
