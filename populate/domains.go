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
package populate

import (
	"context"
	"slices"
	"time"

	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/fetch"
	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
	"github.com/penny-vault/pvfactor/translate"
)

type Group int

const (
	Core Group = iota
	Analysis
	AnalystData
	FinancialMetrics
	Growth
	MarketData
	Valuation
	Macro
)

// EntityGroups is the order in which groups run for every ticker
var EntityGroups = []Group{Core, Analysis, AnalystData, FinancialMetrics, Growth, MarketData, Valuation}

func (g Group) String() string {
	switch g {
	case Core:
		return "core"
	case Analysis:
		return "analysis"
	case AnalystData:
		return "analyst data"
	case FinancialMetrics:
		return "financial metrics"
	case Growth:
		return "growth"
	case MarketData:
		return "market data"
	case Valuation:
		return "valuation"
	case Macro:
		return "macro"
	default:
		return "unknown"
	}
}

type Scope int

const (
	EntityScope Scope = iota
	GlobalScope
)

func (s Scope) String() string {
	if s == GlobalScope {
		return "global"
	}
	return "entity"
}

type runner func(ctx context.Context, p *Populator, task Task) (TaskResult, error)

// Domain is a named data category with its own resource, translator and
// tables
type Domain struct {
	Name     string
	Group    Group
	Scope    Scope
	Tables   []string
	Temporal bool

	run runner
}

type fetchFn[R any] func(context.Context, fmp.Query) ([]R, error)

func plain[R any, T data.Record](tr func([]R) []T) func(time.Time, []R) []T {
	return func(_ time.Time, raw []R) []T { return tr(raw) }
}

// list builds a runner that issues one query per task
func list[R any, T data.Record](pick func(*fetch.Fetchers) fetchFn[R], tr func(time.Time, []R) []T) runner {
	return func(ctx context.Context, p *Populator, task Task) (TaskResult, error) {
		settings, q := p.query(task)
		return runQuery(ctx, p, task, settings, q, pick(p.fetchers), tr)
	}
}

// fanOut builds a runner that expands a task into several queries, such as
// one per economic indicator
func fanOut[R any, T data.Record](pick func(*fetch.Fetchers) fetchFn[R], tr func(time.Time, []R) []T, expand func(*Populator, fmp.Query) []fmp.Query) runner {
	return func(ctx context.Context, p *Populator, task Task) (TaskResult, error) {
		settings, base := p.query(task)
		result := TaskResult{Domain: task.Domain.Name, Symbol: task.Symbol, State: process.Done}

		queries := expand(p, base)
		if len(queries) == 0 {
			result.State = process.FetchFailed
			return result, nil
		}

		anyData := false
		for _, q := range queries {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			res, err := runQuery(ctx, p, task, settings, q, pick(p.fetchers), tr)
			result.Stored = result.Stored.Add(res.Stored)
			result.Outcome.Fetched += res.Outcome.Fetched
			result.Outcome.Translated += res.Outcome.Translated
			result.Outcome.Kept += res.Outcome.Kept
			if err != nil {
				return result, err
			}

			switch res.State {
			case process.StoreFailedPartial:
				result.State = process.StoreFailedPartial
			case process.Done:
				anyData = true
			}
		}

		if !anyData && result.State == process.Done {
			result.State = process.FetchFailed
		}

		return result, nil
	}
}

func runQuery[R any, T data.Record](ctx context.Context, p *Populator, task Task, settings config.DomainSettings, q fmp.Query, fetchRaw fetchFn[R], tr func(time.Time, []R) []T) (TaskResult, error) {
	asOf := p.today()
	records, outcome, err := process.Process(ctx, p.processOptions(task, settings),
		func(ctx context.Context) ([]R, error) { return fetchRaw(ctx, q) },
		func(raw []R) []T { return tr(asOf, raw) })

	result := TaskResult{Domain: task.Domain.Name, Symbol: task.Symbol, State: outcome.State, Outcome: outcome}
	if err != nil || len(records) == 0 {
		return result, err
	}

	if task.Symbol != "" {
		data.TagAll(records, task.Symbol)
	}

	return p.store(ctx, result, data.Records(records)), nil
}

func (p *Populator) runGrades(ctx context.Context, task Task) (TaskResult, error) {
	settings, q := p.query(task)
	asOf := p.today()

	tagged, outcome, err := process.ProcessMulti(ctx, p.processOptions(task, settings),
		func(ctx context.Context) (*fmp.GradesBundle, error) { return p.fetchers.AnalystData.Grades(ctx, q) },
		func(bundle *fmp.GradesBundle) process.Tagged { return translate.GradeBundle(bundle, asOf) })

	result := TaskResult{Domain: task.Domain.Name, Symbol: task.Symbol, State: outcome.State, Outcome: outcome}
	if err != nil || len(tagged) == 0 {
		return result, err
	}

	names := make([]string, 0, len(tagged))
	for name := range tagged {
		names = append(names, name)
	}
	slices.Sort(names)

	var records []data.Record
	for _, name := range names {
		data.TagAll(tagged[name], task.Symbol)
		records = append(records, tagged[name]...)
	}

	return p.store(ctx, result, records), nil
}

func (p *Populator) store(ctx context.Context, result TaskResult, records []data.Record) TaskResult {
	result.State = process.Storing
	result.Stored = store.StoreAll(ctx, p.writer, records)
	if result.Stored.Failed > 0 {
		result.State = process.StoreFailedPartial
	} else {
		result.State = process.Done
	}
	return result
}

func sectors(p *Populator, base fmp.Query) []fmp.Query {
	out := make([]fmp.Query, 0, len(p.settings.Macro.Sectors))
	for _, sector := range p.settings.Macro.Sectors {
		q := base
		q.Sector = sector
		out = append(out, q)
	}
	return out
}

func industries(p *Populator, base fmp.Query) []fmp.Query {
	out := make([]fmp.Query, 0, len(p.settings.Macro.Industries))
	for _, industry := range p.settings.Macro.Industries {
		q := base
		q.Industry = industry
		out = append(out, q)
	}
	return out
}

func indicators(p *Populator, base fmp.Query) []fmp.Query {
	out := make([]fmp.Query, 0, len(p.settings.Macro.EconomicIndicators))
	for _, name := range p.settings.Macro.EconomicIndicators {
		q := base
		q.Name = name
		out = append(out, q)
	}
	return out
}

// Catalog lists every domain in run order
func Catalog() []*Domain {
	return catalog
}

// Tables lists every table written by the catalog
func Tables() []string {
	var tables []string
	for _, d := range catalog {
		for _, table := range d.Tables {
			if !slices.Contains(tables, table) {
				tables = append(tables, table)
			}
		}
	}
	return tables
}

// Lookup finds a domain by name
func Lookup(name string) (*Domain, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

var catalog = []*Domain{
	// macro domains run once per run, before the entity loop
	{Name: "economic_indicators", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"economic_indicators"},
		run: fanOut(func(f *fetch.Fetchers) fetchFn[fmp.EconomicIndicator] { return f.Macro.EconomicIndicator }, plain(translate.EconomicIndicators), indicators)},
	{Name: "treasury_rates", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"treasury_rates"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.TreasuryRate] { return f.Macro.TreasuryRates }, plain(translate.TreasuryRates))},
	{Name: "sector_performance", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"sector_performance"},
		run: fanOut(func(f *fetch.Fetchers) fetchFn[fmp.SectorPerformance] { return f.Macro.SectorPerformance }, plain(translate.SectorPerformances), sectors)},
	{Name: "industry_performance", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"industry_performance"},
		run: fanOut(func(f *fetch.Fetchers) fetchFn[fmp.IndustryPerformance] { return f.Macro.IndustryPerformance }, plain(translate.IndustryPerformances), industries)},
	{Name: "sector_pe", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"sector_pe"},
		run: fanOut(func(f *fetch.Fetchers) fetchFn[fmp.SectorPE] { return f.Macro.SectorPE }, plain(translate.SectorPEs), sectors)},
	{Name: "industry_pe", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"industry_pe"},
		run: fanOut(func(f *fetch.Fetchers) fetchFn[fmp.IndustryPE] { return f.Macro.IndustryPE }, plain(translate.IndustryPEs), industries)},
	{Name: "mergers_acquisitions", Group: Macro, Scope: GlobalScope, Temporal: true, Tables: []string{"mergers_acquisitions"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.MergerAcquisition] { return f.Macro.MergersAcquisitions }, plain(translate.MergersAcquisitions))},

	// core
	{Name: "stocks", Group: Core, Tables: []string{"stocks"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.Stock] {
			return func(ctx context.Context, q fmp.Query) ([]fmp.Stock, error) { return f.Core.Stock(ctx, q.Symbol) }
		}, plain(translate.Stocks))},
	{Name: "employee_count", Group: Core, Temporal: true, Tables: []string{"employee_count"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.EmployeeCount] { return f.Core.EmployeeCount }, plain(translate.EmployeeCounts))},

	// analysis
	{Name: "analyst_estimates", Group: Analysis, Temporal: true, Tables: []string{"analyst_estimates"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.AnalystEstimate] { return f.Analysis.AnalystEstimates }, plain(translate.AnalystEstimates))},
	{Name: "ratings", Group: Analysis, Temporal: true, Tables: []string{"ratings"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.Rating] { return f.Analysis.Ratings }, plain(translate.Ratings))},

	// analyst data
	{Name: "grades", Group: AnalystData, Temporal: true, Tables: []string{"grades", "grades_consensus"},
		run: func(ctx context.Context, p *Populator, task Task) (TaskResult, error) { return p.runGrades(ctx, task) }},
	{Name: "price_target_consensus", Group: AnalystData, Tables: []string{"price_target_consensus"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.PriceTargetConsensus] { return f.AnalystData.PriceTargetConsensus },
			func(asOf time.Time, raw []fmp.PriceTargetConsensus) []*data.PriceTargetConsensus {
				return translate.PriceTargetConsensus(raw, asOf)
			})},
	{Name: "price_target_summary", Group: AnalystData, Tables: []string{"price_target_summary"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.PriceTargetSummary] { return f.AnalystData.PriceTargetSummary }, plain(translate.PriceTargetSummaries))},

	// financial metrics
	{Name: "key_metrics", Group: FinancialMetrics, Temporal: true, Tables: []string{"key_metrics"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.KeyMetrics] { return f.FinancialMetrics.KeyMetrics }, plain(translate.KeyMetrics))},
	{Name: "financial_ratios", Group: FinancialMetrics, Temporal: true, Tables: []string{"financial_ratios"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.FinancialRatios] { return f.FinancialMetrics.Ratios }, plain(translate.FinancialRatios))},
	{Name: "earnings", Group: FinancialMetrics, Temporal: true, Tables: []string{"earnings"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.Earnings] { return f.FinancialMetrics.Earnings }, plain(translate.Earnings))},

	// growth
	{Name: "financial_statement_growth", Group: Growth, Temporal: true, Tables: []string{"financial_statement_growth"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.FinancialStatementGrowth] { return f.Growth.Financial }, plain(translate.FinancialStatementGrowth))},
	{Name: "income_statement_growth", Group: Growth, Temporal: true, Tables: []string{"income_statement_growth"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.IncomeStatementGrowth] { return f.Growth.Income }, plain(translate.IncomeStatementGrowth))},
	{Name: "balance_sheet_growth", Group: Growth, Temporal: true, Tables: []string{"balance_sheet_growth"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.BalanceSheetGrowth] { return f.Growth.BalanceSheet }, plain(translate.BalanceSheetGrowth))},
	{Name: "cashflow_statement_growth", Group: Growth, Temporal: true, Tables: []string{"cashflow_statement_growth"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.CashFlowStatementGrowth] { return f.Growth.CashFlow }, plain(translate.CashFlowStatementGrowth))},

	// market data
	{Name: "prices", Group: MarketData, Temporal: true, Tables: []string{"prices"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.Price] { return f.MarketData.Prices }, plain(translate.Prices))},
	{Name: "dividend_adjusted_prices", Group: MarketData, Temporal: true, Tables: []string{"dividend_adjusted_prices"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.DividendAdjustedPrice] { return f.MarketData.DividendAdjustedPrices }, plain(translate.DividendAdjustedPrices))},
	{Name: "dividends", Group: MarketData, Temporal: true, Tables: []string{"dividends"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.Dividend] { return f.MarketData.Dividends }, plain(translate.Dividends))},
	{Name: "splits", Group: MarketData, Temporal: true, Tables: []string{"splits"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.Split] { return f.MarketData.Splits }, plain(translate.Splits))},
	{Name: "market_cap", Group: MarketData, Temporal: true, Tables: []string{"market_cap"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.MarketCap] { return f.MarketData.MarketCap }, plain(translate.MarketCaps))},
	{Name: "share_float", Group: MarketData, Tables: []string{"share_float"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.ShareFloat] { return f.MarketData.ShareFloat }, plain(translate.ShareFloats))},

	// valuation
	{Name: "dcf", Group: Valuation, Tables: []string{"dcf"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.DiscountedCashFlow] { return f.Valuation.DCF }, plain(translate.DiscountedCashFlows))},
	{Name: "levered_dcf", Group: Valuation, Tables: []string{"levered_dcf"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.LeveredDiscountedCashFlow] { return f.Valuation.LeveredDCF }, plain(translate.LeveredDiscountedCashFlows))},
	{Name: "enterprise_values", Group: Valuation, Temporal: true, Tables: []string{"enterprise_values"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.EnterpriseValue] { return f.Valuation.EnterpriseValues }, plain(translate.EnterpriseValues))},
	{Name: "owner_earnings", Group: Valuation, Temporal: true, Tables: []string{"owner_earnings"},
		run: list(func(f *fetch.Fetchers) fetchFn[fmp.OwnerEarnings] { return f.Valuation.OwnerEarnings }, plain(translate.OwnerEarnings))},
}
