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

func Prices(raw []fmp.Price) []*data.Price {
	out := make([]*data.Price, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.Price{
			Symbol:        r.Symbol,
			Date:          date,
			Open:          Float(r.Open),
			High:          Float(r.High),
			Low:           Float(r.Low),
			Close:         Float(r.Close),
			Volume:        Int(r.Volume),
			Change:        Float(r.Change),
			ChangePercent: Float(r.ChangePercent),
			VWAP:          Float(r.VWAP),
		})
	}
	return out
}

func DividendAdjustedPrices(raw []fmp.DividendAdjustedPrice) []*data.DividendAdjustedPrice {
	out := make([]*data.DividendAdjustedPrice, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.DividendAdjustedPrice{
			Symbol:   r.Symbol,
			Date:     date,
			AdjOpen:  Float(r.AdjOpen),
			AdjHigh:  Float(r.AdjHigh),
			AdjLow:   Float(r.AdjLow),
			AdjClose: Float(r.AdjClose),
			Volume:   Int(r.Volume),
		})
	}
	return out
}

func Dividends(raw []fmp.Dividend) []*data.Dividend {
	out := make([]*data.Dividend, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.Dividend{
			Symbol:          r.Symbol,
			Date:            date,
			RecordDate:      OptDate(r.RecordDate),
			PaymentDate:     OptDate(r.PaymentDate),
			DeclarationDate: OptDate(r.DeclarationDate),
			AdjDividend:     Float(r.AdjDividend),
			Dividend:        Float(r.Dividend),
			Yield:           Float(r.Yield),
			Frequency:       Str(r.Frequency),
		})
	}
	return out
}

func Splits(raw []fmp.Split) []*data.Split {
	out := make([]*data.Split, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.Split{
			Symbol:      r.Symbol,
			Date:        date,
			Numerator:   Float(r.Numerator),
			Denominator: Float(r.Denominator),
		})
	}
	return out
}

func MarketCaps(raw []fmp.MarketCap) []*data.MarketCap {
	out := make([]*data.MarketCap, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.MarketCap{
			Symbol:    r.Symbol,
			Date:      date,
			MarketCap: Float(r.MarketCap),
		})
	}
	return out
}

func ShareFloats(raw []fmp.ShareFloat) []*data.ShareFloat {
	out := make([]*data.ShareFloat, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.ShareFloat{
			Symbol:            r.Symbol,
			Date:              date,
			FreeFloat:         Float(r.FreeFloat),
			FloatShares:       Int(r.FloatShares),
			OutstandingShares: Int(r.OutstandingShares),
		})
	}
	return out
}
