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

func AnalystEstimates(raw []fmp.AnalystEstimate) []*data.AnalystEstimate {
	out := make([]*data.AnalystEstimate, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.AnalystEstimate{
			Symbol:             r.Symbol,
			Date:               date,
			RevenueLow:         Float(r.RevenueLow),
			RevenueHigh:        Float(r.RevenueHigh),
			RevenueAvg:         Float(r.RevenueAvg),
			EBITDALow:          Float(r.EBITDALow),
			EBITDAHigh:         Float(r.EBITDAHigh),
			EBITDAAvg:          Float(r.EBITDAAvg),
			EBITLow:            Float(r.EBITLow),
			EBITHigh:           Float(r.EBITHigh),
			EBITAvg:            Float(r.EBITAvg),
			NetIncomeLow:       Float(r.NetIncomeLow),
			NetIncomeHigh:      Float(r.NetIncomeHigh),
			NetIncomeAvg:       Float(r.NetIncomeAvg),
			SGAExpenseLow:      Float(r.SGAExpenseLow),
			SGAExpenseHigh:     Float(r.SGAExpenseHigh),
			SGAExpenseAvg:      Float(r.SGAExpenseAvg),
			EPSLow:             Float(r.EPSLow),
			EPSHigh:            Float(r.EPSHigh),
			EPSAvg:             Float(r.EPSAvg),
			NumAnalystsRevenue: Int(r.NumAnalystsRevenue),
			NumAnalystsEPS:     Int(r.NumAnalystsEPS),
		})
	}
	return out
}

func Ratings(raw []fmp.Rating) []*data.Rating {
	out := make([]*data.Rating, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.Rating{
			Symbol:                  r.Symbol,
			Date:                    date,
			Rating:                  Str(r.Rating),
			OverallScore:            Float(r.OverallScore),
			DiscountedCashFlowScore: Float(r.DiscountedCashFlowScore),
			ReturnOnEquityScore:     Float(r.ReturnOnEquityScore),
			ReturnOnAssetsScore:     Float(r.ReturnOnAssetsScore),
			DebtToEquityScore:       Float(r.DebtToEquityScore),
			PriceToEarningsScore:    Float(r.PriceToEarningsScore),
			PriceToBookScore:        Float(r.PriceToBookScore),
		})
	}
	return out
}
