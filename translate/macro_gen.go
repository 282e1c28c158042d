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

func EconomicIndicators(raw []fmp.EconomicIndicator) []*data.EconomicIndicator {
	out := make([]*data.EconomicIndicator, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.EconomicIndicator{
			Name:  r.Name,
			Date:  date,
			Value: Float(r.Value),
		})
	}
	return out
}

func TreasuryRates(raw []fmp.TreasuryRate) []*data.TreasuryRate {
	out := make([]*data.TreasuryRate, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.TreasuryRate{
			Date:   date,
			Month1: Float(r.Month1),
			Month2: Float(r.Month2),
			Month3: Float(r.Month3),
			Month6: Float(r.Month6),
			Year1:  Float(r.Year1),
			Year2:  Float(r.Year2),
			Year3:  Float(r.Year3),
			Year5:  Float(r.Year5),
			Year7:  Float(r.Year7),
			Year10: Float(r.Year10),
			Year20: Float(r.Year20),
			Year30: Float(r.Year30),
		})
	}
	return out
}

func SectorPerformances(raw []fmp.SectorPerformance) []*data.SectorPerformance {
	out := make([]*data.SectorPerformance, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.SectorPerformance{
			Sector:        r.Sector,
			Exchange:      r.Exchange,
			Date:          date,
			AverageChange: Float(r.AverageChange),
		})
	}
	return out
}

func SectorPEs(raw []fmp.SectorPE) []*data.SectorPE {
	out := make([]*data.SectorPE, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.SectorPE{
			Sector:   r.Sector,
			Exchange: r.Exchange,
			Date:     date,
			PE:       Float(r.PE),
		})
	}
	return out
}

func IndustryPerformances(raw []fmp.IndustryPerformance) []*data.IndustryPerformance {
	out := make([]*data.IndustryPerformance, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.IndustryPerformance{
			Industry:      r.Industry,
			Exchange:      r.Exchange,
			Date:          date,
			AverageChange: Float(r.AverageChange),
		})
	}
	return out
}

func IndustryPEs(raw []fmp.IndustryPE) []*data.IndustryPE {
	out := make([]*data.IndustryPE, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.IndustryPE{
			Industry: r.Industry,
			Exchange: r.Exchange,
			Date:     date,
			PE:       Float(r.PE),
		})
	}
	return out
}

func MergersAcquisitions(raw []fmp.MergerAcquisition) []*data.MergerAcquisition {
	out := make([]*data.MergerAcquisition, 0, len(raw))
	for _, r := range raw {
		transactionDate, ok := Date(r.TransactionDate)
		if !ok {
			continue
		}

		out = append(out, &data.MergerAcquisition{
			Symbol:              r.Symbol,
			TargetedSymbol:      r.TargetedSymbol,
			TransactionDate:     transactionDate,
			CompanyName:         Str(r.CompanyName),
			CIK:                 Str(r.CIK),
			TargetedCompanyName: Str(r.TargetedCompanyName),
			TargetedCIK:         Str(r.TargetedCIK),
			AcceptedDate:        Str(r.AcceptedDate),
			Link:                Str(r.Link),
		})
	}
	return out
}
