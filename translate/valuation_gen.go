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
	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/fmp"
)

func DiscountedCashFlows(raw []fmp.DiscountedCashFlow) []*data.DiscountedCashFlow {
	out := make([]*data.DiscountedCashFlow, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.DiscountedCashFlow{
			Symbol:     r.Symbol,
			Date:       date,
			DCF:        Float(r.DCF),
			StockPrice: Float(r.StockPrice),
		})
	}
	return out
}

func LeveredDiscountedCashFlows(raw []fmp.LeveredDiscountedCashFlow) []*data.LeveredDiscountedCashFlow {
	out := make([]*data.LeveredDiscountedCashFlow, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.LeveredDiscountedCashFlow{
			Symbol:     r.Symbol,
			Date:       date,
			DCF:        Float(r.DCF),
			StockPrice: Float(r.StockPrice),
		})
	}
	return out
}

func EnterpriseValues(raw []fmp.EnterpriseValue) []*data.EnterpriseValue {
	out := make([]*data.EnterpriseValue, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.EnterpriseValue{
			Symbol:                      r.Symbol,
			Date:                        date,
			StockPrice:                  Float(r.StockPrice),
			NumberOfShares:              Int(r.NumberOfShares),
			MarketCapitalization:        Float(r.MarketCapitalization),
			MinusCashAndCashEquivalents: Float(r.MinusCashAndCashEquivalents),
			AddTotalDebt:                Float(r.AddTotalDebt),
			EnterpriseValue:             Float(r.EnterpriseValue),
		})
	}
	return out
}

func OwnerEarnings(raw []fmp.OwnerEarnings) []*data.OwnerEarnings {
	out := make([]*data.OwnerEarnings, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.OwnerEarnings{
			Symbol:                 r.Symbol,
			Date:                   date,
			FiscalYear:             Str(r.FiscalYear),
			Period:                 Str(r.Period),
			AveragePPE:             Float(r.AveragePPE),
			MaintenanceCapex:       Float(r.MaintenanceCapex),
			GrowthCapex:            Float(r.GrowthCapex),
			OwnersEarnings:         Float(r.OwnersEarnings),
			OwnersEarningsPerShare: Float(r.OwnersEarningsPerShare),
		})
	}
	return out
}
