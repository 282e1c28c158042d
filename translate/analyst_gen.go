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
	"time"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/fmp"
)

func Grades(raw []fmp.Grade) []*data.Grade {
	out := make([]*data.Grade, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.Grade{
			Symbol:     r.Symbol,
			Date:       date,
			StrongBuy:  Int(r.StrongBuy),
			Buy:        Int(r.Buy),
			Hold:       Int(r.Hold),
			Sell:       Int(r.Sell),
			StrongSell: Int(r.StrongSell),
		})
	}
	return out
}

func GradesConsensus(raw []fmp.GradesConsensus, asOf time.Time) []*data.GradesConsensus {
	out := make([]*data.GradesConsensus, 0, len(raw))
	for _, r := range raw {
		out = append(out, &data.GradesConsensus{
			Symbol:     r.Symbol,
			AsOf:       asOf,
			StrongBuy:  Int(r.StrongBuy),
			Buy:        Int(r.Buy),
			Hold:       Int(r.Hold),
			Sell:       Int(r.Sell),
			StrongSell: Int(r.StrongSell),
			Consensus:  Str(r.Consensus),
		})
	}
	return out
}

func PriceTargetConsensus(raw []fmp.PriceTargetConsensus, asOf time.Time) []*data.PriceTargetConsensus {
	out := make([]*data.PriceTargetConsensus, 0, len(raw))
	for _, r := range raw {
		out = append(out, &data.PriceTargetConsensus{
			Symbol:          r.Symbol,
			AsOf:            asOf,
			TargetHigh:      Float(r.TargetHigh),
			TargetLow:       Float(r.TargetLow),
			TargetConsensus: Float(r.TargetConsensus),
			TargetMedian:    Float(r.TargetMedian),
		})
	}
	return out
}

func PriceTargetSummaries(raw []fmp.PriceTargetSummary) []*data.PriceTargetSummary {
	out := make([]*data.PriceTargetSummary, 0, len(raw))
	for _, r := range raw {
		out = append(out, &data.PriceTargetSummary{
			Symbol:                    r.Symbol,
			LastMonthCount:            Int(r.LastMonthCount),
			LastMonthAvgPriceTarget:   Float(r.LastMonthAvgPriceTarget),
			LastQuarterCount:          Int(r.LastQuarterCount),
			LastQuarterAvgPriceTarget: Float(r.LastQuarterAvgPriceTarget),
			LastYearCount:             Int(r.LastYearCount),
			LastYearAvgPriceTarget:    Float(r.LastYearAvgPriceTarget),
			AllTimeCount:              Int(r.AllTimeCount),
			AllTimeAvgPriceTarget:     Float(r.AllTimeAvgPriceTarget),
		})
	}
	return out
}
