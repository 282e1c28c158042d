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
package fetch

import (
	"context"
	"sync"

	"github.com/penny-vault/pvfactor/fmp"
)

type base struct {
	api    *fmp.Adapter
	policy Policy
}

type Core struct {
	base

	mu          sync.Mutex
	unavailable bool
}

// Stock retries loading the screener, not the lookup; a symbol the screener
// does not list is simply absent. A screener that stays empty after every
// attempt is not requested again for the lifetime of the fetcher.
func (f *Core) Stock(ctx context.Context, symbol string) ([]fmp.Stock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.unavailable {
		return nil, nil
	}

	screener, err := retryList(ctx, f.policy, "stocks", f.api.Stocks)
	if err != nil {
		return nil, err
	}

	if len(screener) == 0 {
		f.policy.Logger.Warn().Msg("company screener unavailable, skipping stocks for the rest of the run")
		f.unavailable = true
		return nil, nil
	}

	stock, err := f.api.CompanyProfile(ctx, symbol)
	if err != nil || stock == nil {
		return nil, err
	}

	return []fmp.Stock{*stock}, nil
}

func (f *Core) EmployeeCount(ctx context.Context, q fmp.Query) ([]fmp.EmployeeCount, error) {
	return retryList(ctx, f.policy, "employee_count", func(ctx context.Context) ([]fmp.EmployeeCount, error) {
		return f.api.EmployeeCount(ctx, q)
	})
}

type Analysis struct{ base }

func (f *Analysis) AnalystEstimates(ctx context.Context, q fmp.Query) ([]fmp.AnalystEstimate, error) {
	return retryList(ctx, f.policy, "analyst_estimates", func(ctx context.Context) ([]fmp.AnalystEstimate, error) {
		return f.api.AnalystEstimates(ctx, q)
	})
}

func (f *Analysis) Ratings(ctx context.Context, q fmp.Query) ([]fmp.Rating, error) {
	return retryList(ctx, f.policy, "ratings", func(ctx context.Context) ([]fmp.Rating, error) {
		return f.api.RatingsHistorical(ctx, q)
	})
}

type AnalystData struct{ base }

// Grades fetches the grade history and the current consensus as one bundle.
// A fatal error from either half aborts the bundle.
func (f *AnalystData) Grades(ctx context.Context, q fmp.Query) (*fmp.GradesBundle, error) {
	return Retry(ctx, f.policy, "grades", func(ctx context.Context) (*fmp.GradesBundle, error) {
		history, err := f.api.GradesHistorical(ctx, q)
		if err != nil {
			return nil, err
		}

		consensus, err := f.api.GradesConsensus(ctx, q)
		if err != nil {
			return nil, err
		}

		return &fmp.GradesBundle{History: history, Consensus: consensus}, nil
	}, (*fmp.GradesBundle).IsEmpty)
}

func (f *AnalystData) PriceTargetConsensus(ctx context.Context, q fmp.Query) ([]fmp.PriceTargetConsensus, error) {
	return retryOne(ctx, f.policy, "price_target_consensus", func(ctx context.Context) (*fmp.PriceTargetConsensus, error) {
		return f.api.PriceTargetConsensus(ctx, q)
	})
}

func (f *AnalystData) PriceTargetSummary(ctx context.Context, q fmp.Query) ([]fmp.PriceTargetSummary, error) {
	return retryOne(ctx, f.policy, "price_target_summary", func(ctx context.Context) (*fmp.PriceTargetSummary, error) {
		return f.api.PriceTargetSummary(ctx, q)
	})
}

type FinancialMetrics struct{ base }

func (f *FinancialMetrics) KeyMetrics(ctx context.Context, q fmp.Query) ([]fmp.KeyMetrics, error) {
	return retryList(ctx, f.policy, "key_metrics", func(ctx context.Context) ([]fmp.KeyMetrics, error) {
		return f.api.KeyMetrics(ctx, q)
	})
}

func (f *FinancialMetrics) Ratios(ctx context.Context, q fmp.Query) ([]fmp.FinancialRatios, error) {
	return retryList(ctx, f.policy, "financial_ratios", func(ctx context.Context) ([]fmp.FinancialRatios, error) {
		return f.api.Ratios(ctx, q)
	})
}

func (f *FinancialMetrics) Earnings(ctx context.Context, q fmp.Query) ([]fmp.Earnings, error) {
	return retryList(ctx, f.policy, "earnings", func(ctx context.Context) ([]fmp.Earnings, error) {
		return f.api.Earnings(ctx, q)
	})
}

type Growth struct{ base }

func (f *Growth) Financial(ctx context.Context, q fmp.Query) ([]fmp.FinancialStatementGrowth, error) {
	return retryList(ctx, f.policy, "financial_statement_growth", func(ctx context.Context) ([]fmp.FinancialStatementGrowth, error) {
		return f.api.FinancialGrowth(ctx, q)
	})
}

func (f *Growth) Income(ctx context.Context, q fmp.Query) ([]fmp.IncomeStatementGrowth, error) {
	return retryList(ctx, f.policy, "income_statement_growth", func(ctx context.Context) ([]fmp.IncomeStatementGrowth, error) {
		return f.api.IncomeStatementGrowth(ctx, q)
	})
}

func (f *Growth) BalanceSheet(ctx context.Context, q fmp.Query) ([]fmp.BalanceSheetGrowth, error) {
	return retryList(ctx, f.policy, "balance_sheet_growth", func(ctx context.Context) ([]fmp.BalanceSheetGrowth, error) {
		return f.api.BalanceSheetGrowth(ctx, q)
	})
}

func (f *Growth) CashFlow(ctx context.Context, q fmp.Query) ([]fmp.CashFlowStatementGrowth, error) {
	return retryList(ctx, f.policy, "cashflow_statement_growth", func(ctx context.Context) ([]fmp.CashFlowStatementGrowth, error) {
		return f.api.CashFlowStatementGrowth(ctx, q)
	})
}

type MarketData struct{ base }

func (f *MarketData) Prices(ctx context.Context, q fmp.Query) ([]fmp.Price, error) {
	return retryList(ctx, f.policy, "prices", func(ctx context.Context) ([]fmp.Price, error) {
		return f.api.HistoricalPrices(ctx, q)
	})
}

func (f *MarketData) DividendAdjustedPrices(ctx context.Context, q fmp.Query) ([]fmp.DividendAdjustedPrice, error) {
	return retryList(ctx, f.policy, "dividend_adjusted_prices", func(ctx context.Context) ([]fmp.DividendAdjustedPrice, error) {
		return f.api.DividendAdjustedPrices(ctx, q)
	})
}

func (f *MarketData) Dividends(ctx context.Context, q fmp.Query) ([]fmp.Dividend, error) {
	return retryList(ctx, f.policy, "dividends", func(ctx context.Context) ([]fmp.Dividend, error) {
		return f.api.Dividends(ctx, q)
	})
}

func (f *MarketData) Splits(ctx context.Context, q fmp.Query) ([]fmp.Split, error) {
	return retryList(ctx, f.policy, "splits", func(ctx context.Context) ([]fmp.Split, error) {
		return f.api.Splits(ctx, q)
	})
}

func (f *MarketData) MarketCap(ctx context.Context, q fmp.Query) ([]fmp.MarketCap, error) {
	return retryList(ctx, f.policy, "market_cap", func(ctx context.Context) ([]fmp.MarketCap, error) {
		return f.api.MarketCap(ctx, q)
	})
}

func (f *MarketData) ShareFloat(ctx context.Context, q fmp.Query) ([]fmp.ShareFloat, error) {
	return retryOne(ctx, f.policy, "share_float", func(ctx context.Context) (*fmp.ShareFloat, error) {
		return f.api.ShareFloat(ctx, q)
	})
}

type Valuation struct{ base }

func (f *Valuation) DCF(ctx context.Context, q fmp.Query) ([]fmp.DiscountedCashFlow, error) {
	return retryOne(ctx, f.policy, "dcf", func(ctx context.Context) (*fmp.DiscountedCashFlow, error) {
		return f.api.DiscountedCashFlow(ctx, q)
	})
}

func (f *Valuation) LeveredDCF(ctx context.Context, q fmp.Query) ([]fmp.LeveredDiscountedCashFlow, error) {
	return retryOne(ctx, f.policy, "levered_dcf", func(ctx context.Context) (*fmp.LeveredDiscountedCashFlow, error) {
		return f.api.LeveredDiscountedCashFlow(ctx, q)
	})
}

func (f *Valuation) EnterpriseValues(ctx context.Context, q fmp.Query) ([]fmp.EnterpriseValue, error) {
	return retryList(ctx, f.policy, "enterprise_values", func(ctx context.Context) ([]fmp.EnterpriseValue, error) {
		return f.api.EnterpriseValues(ctx, q)
	})
}

func (f *Valuation) OwnerEarnings(ctx context.Context, q fmp.Query) ([]fmp.OwnerEarnings, error) {
	return retryList(ctx, f.policy, "owner_earnings", func(ctx context.Context) ([]fmp.OwnerEarnings, error) {
		return f.api.OwnerEarnings(ctx, q)
	})
}

type Macro struct{ base }

// EconomicIndicator fills in the indicator name when the upstream omits it
func (f *Macro) EconomicIndicator(ctx context.Context, q fmp.Query) ([]fmp.EconomicIndicator, error) {
	items, err := retryList(ctx, f.policy, "economic_indicators", func(ctx context.Context) ([]fmp.EconomicIndicator, error) {
		return f.api.EconomicIndicator(ctx, q)
	})

	for idx := range items {
		if items[idx].Name == "" {
			items[idx].Name = q.Name
		}
	}

	return items, err
}

func (f *Macro) TreasuryRates(ctx context.Context, q fmp.Query) ([]fmp.TreasuryRate, error) {
	return retryList(ctx, f.policy, "treasury_rates", func(ctx context.Context) ([]fmp.TreasuryRate, error) {
		return f.api.TreasuryRates(ctx, q)
	})
}

// The performance and pe resources echo their filter back inconsistently, so
// the requested sector or industry and exchange are stamped on each row.

func (f *Macro) SectorPerformance(ctx context.Context, q fmp.Query) ([]fmp.SectorPerformance, error) {
	items, err := retryList(ctx, f.policy, "sector_performance", func(ctx context.Context) ([]fmp.SectorPerformance, error) {
		return f.api.SectorPerformance(ctx, q)
	})
	for idx := range items {
		items[idx].Sector = fallback(items[idx].Sector, q.Sector)
		items[idx].Exchange = fallback(items[idx].Exchange, q.Exchange)
	}
	return items, err
}

func (f *Macro) IndustryPerformance(ctx context.Context, q fmp.Query) ([]fmp.IndustryPerformance, error) {
	items, err := retryList(ctx, f.policy, "industry_performance", func(ctx context.Context) ([]fmp.IndustryPerformance, error) {
		return f.api.IndustryPerformance(ctx, q)
	})
	for idx := range items {
		items[idx].Industry = fallback(items[idx].Industry, q.Industry)
		items[idx].Exchange = fallback(items[idx].Exchange, q.Exchange)
	}
	return items, err
}

func (f *Macro) SectorPE(ctx context.Context, q fmp.Query) ([]fmp.SectorPE, error) {
	items, err := retryList(ctx, f.policy, "sector_pe", func(ctx context.Context) ([]fmp.SectorPE, error) {
		return f.api.SectorPE(ctx, q)
	})
	for idx := range items {
		items[idx].Sector = fallback(items[idx].Sector, q.Sector)
		items[idx].Exchange = fallback(items[idx].Exchange, q.Exchange)
	}
	return items, err
}

func (f *Macro) IndustryPE(ctx context.Context, q fmp.Query) ([]fmp.IndustryPE, error) {
	items, err := retryList(ctx, f.policy, "industry_pe", func(ctx context.Context) ([]fmp.IndustryPE, error) {
		return f.api.IndustryPE(ctx, q)
	})
	for idx := range items {
		items[idx].Industry = fallback(items[idx].Industry, q.Industry)
		items[idx].Exchange = fallback(items[idx].Exchange, q.Exchange)
	}
	return items, err
}

func (f *Macro) MergersAcquisitions(ctx context.Context, q fmp.Query) ([]fmp.MergerAcquisition, error) {
	return retryList(ctx, f.policy, "mergers_acquisitions", func(ctx context.Context) ([]fmp.MergerAcquisition, error) {
		return f.api.MergersAcquisitions(ctx, q)
	})
}

func fallback(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

// Fetchers bundles one fetcher per domain group over a shared adapter
type Fetchers struct {
	Core             *Core
	Analysis         *Analysis
	AnalystData      *AnalystData
	FinancialMetrics *FinancialMetrics
	Growth           *Growth
	MarketData       *MarketData
	Valuation        *Valuation
	Macro            *Macro
}

func New(api *fmp.Adapter, policy Policy) *Fetchers {
	b := base{api: api, policy: policy}
	return &Fetchers{
		Core:             &Core{base: b},
		Analysis:         &Analysis{b},
		AnalystData:      &AnalystData{b},
		FinancialMetrics: &FinancialMetrics{b},
		Growth:           &Growth{b},
		MarketData:       &MarketData{b},
		Valuation:        &Valuation{b},
		Macro:            &Macro{b},
	}
}
