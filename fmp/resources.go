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
package fmp

import "context"

// GradesBundle is what a single grades fetch produces: the historical grade
// counts plus the current consensus.
type GradesBundle struct {
	History   []Grade
	Consensus *GradesConsensus
}

// IsEmpty reports whether neither part of the bundle carries data
func (b *GradesBundle) IsEmpty() bool {
	return b == nil || (len(b.History) == 0 && b.Consensus == nil)
}

// core

func (a *Adapter) EmployeeCount(ctx context.Context, q Query) ([]EmployeeCount, error) {
	return getList[EmployeeCount](ctx, a, "/employee-count", q.values(symbolParam, limitParam))
}

// analysis

func (a *Adapter) AnalystEstimates(ctx context.Context, q Query) ([]AnalystEstimate, error) {
	return getList[AnalystEstimate](ctx, a, "/analyst-estimates", q.values(symbolParam, periodParam, pageParam, limitParam))
}

func (a *Adapter) RatingsHistorical(ctx context.Context, q Query) ([]Rating, error) {
	return getList[Rating](ctx, a, "/ratings-historical", q.values(symbolParam, limitParam))
}

// analyst data

func (a *Adapter) GradesHistorical(ctx context.Context, q Query) ([]Grade, error) {
	return getList[Grade](ctx, a, "/grades-historical", q.values(symbolParam, limitParam))
}

func (a *Adapter) GradesConsensus(ctx context.Context, q Query) (*GradesConsensus, error) {
	return getOne[GradesConsensus](ctx, a, "/grades-consensus", q.values(symbolParam))
}

func (a *Adapter) PriceTargetConsensus(ctx context.Context, q Query) (*PriceTargetConsensus, error) {
	return getOne[PriceTargetConsensus](ctx, a, "/price-target-consensus", q.values(symbolParam))
}

func (a *Adapter) PriceTargetSummary(ctx context.Context, q Query) (*PriceTargetSummary, error) {
	return getOne[PriceTargetSummary](ctx, a, "/price-target-summary", q.values(symbolParam))
}

// financial metrics

func (a *Adapter) KeyMetrics(ctx context.Context, q Query) ([]KeyMetrics, error) {
	return getList[KeyMetrics](ctx, a, "/key-metrics", q.values(symbolParam, limitParam, periodParam))
}

func (a *Adapter) Ratios(ctx context.Context, q Query) ([]FinancialRatios, error) {
	return getList[FinancialRatios](ctx, a, "/ratios", q.values(symbolParam, limitParam, periodParam))
}

func (a *Adapter) Earnings(ctx context.Context, q Query) ([]Earnings, error) {
	return getList[Earnings](ctx, a, "/earnings", q.values(symbolParam, limitParam))
}

// growth

func (a *Adapter) FinancialGrowth(ctx context.Context, q Query) ([]FinancialStatementGrowth, error) {
	return getList[FinancialStatementGrowth](ctx, a, "/financial-growth", q.values(symbolParam, limitParam, periodParam))
}

func (a *Adapter) IncomeStatementGrowth(ctx context.Context, q Query) ([]IncomeStatementGrowth, error) {
	return getList[IncomeStatementGrowth](ctx, a, "/income-statement-growth", q.values(symbolParam, limitParam, periodParam))
}

func (a *Adapter) BalanceSheetGrowth(ctx context.Context, q Query) ([]BalanceSheetGrowth, error) {
	return getList[BalanceSheetGrowth](ctx, a, "/balance-sheet-statement-growth", q.values(symbolParam, limitParam, periodParam))
}

func (a *Adapter) CashFlowStatementGrowth(ctx context.Context, q Query) ([]CashFlowStatementGrowth, error) {
	return getList[CashFlowStatementGrowth](ctx, a, "/cash-flow-statement-growth", q.values(symbolParam, limitParam, periodParam))
}

// market data

func (a *Adapter) HistoricalPrices(ctx context.Context, q Query) ([]Price, error) {
	return getList[Price](ctx, a, "/historical-price-eod/full", q.values(symbolParam, fromParam, toParam))
}

func (a *Adapter) DividendAdjustedPrices(ctx context.Context, q Query) ([]DividendAdjustedPrice, error) {
	return getList[DividendAdjustedPrice](ctx, a, "/historical-price-eod/dividend-adjusted", q.values(symbolParam, fromParam, toParam))
}

func (a *Adapter) Dividends(ctx context.Context, q Query) ([]Dividend, error) {
	return getList[Dividend](ctx, a, "/dividends", q.values(symbolParam, limitParam))
}

func (a *Adapter) Splits(ctx context.Context, q Query) ([]Split, error) {
	return getList[Split](ctx, a, "/splits", q.values(symbolParam, limitParam))
}

func (a *Adapter) MarketCap(ctx context.Context, q Query) ([]MarketCap, error) {
	return getList[MarketCap](ctx, a, "/historical-market-capitalization", q.values(symbolParam, limitParam, fromParam, toParam))
}

func (a *Adapter) ShareFloat(ctx context.Context, q Query) (*ShareFloat, error) {
	return getOne[ShareFloat](ctx, a, "/shares-float", q.values(symbolParam))
}

// valuation

func (a *Adapter) DiscountedCashFlow(ctx context.Context, q Query) (*DiscountedCashFlow, error) {
	return getOne[DiscountedCashFlow](ctx, a, "/discounted-cash-flow", q.values(symbolParam))
}

func (a *Adapter) LeveredDiscountedCashFlow(ctx context.Context, q Query) (*LeveredDiscountedCashFlow, error) {
	return getOne[LeveredDiscountedCashFlow](ctx, a, "/levered-discounted-cash-flow", q.values(symbolParam))
}

func (a *Adapter) EnterpriseValues(ctx context.Context, q Query) ([]EnterpriseValue, error) {
	return getList[EnterpriseValue](ctx, a, "/enterprise-values", q.values(symbolParam, limitParam, periodParam))
}

func (a *Adapter) OwnerEarnings(ctx context.Context, q Query) ([]OwnerEarnings, error) {
	return getList[OwnerEarnings](ctx, a, "/owner-earnings", q.values(symbolParam, limitParam))
}

// macro

func (a *Adapter) EconomicIndicator(ctx context.Context, q Query) ([]EconomicIndicator, error) {
	return getList[EconomicIndicator](ctx, a, "/economic-indicators", q.values(nameParam, fromParam, toParam))
}

func (a *Adapter) TreasuryRates(ctx context.Context, q Query) ([]TreasuryRate, error) {
	return getList[TreasuryRate](ctx, a, "/treasury-rates", q.values(fromParam, toParam))
}

func (a *Adapter) SectorPerformance(ctx context.Context, q Query) ([]SectorPerformance, error) {
	return getList[SectorPerformance](ctx, a, "/historical-sector-performance", q.values(sectorParam, fromParam, toParam, exchangeParam))
}

func (a *Adapter) IndustryPerformance(ctx context.Context, q Query) ([]IndustryPerformance, error) {
	return getList[IndustryPerformance](ctx, a, "/historical-industry-performance", q.values(industryParam, fromParam, toParam, exchangeParam))
}

func (a *Adapter) SectorPE(ctx context.Context, q Query) ([]SectorPE, error) {
	return getList[SectorPE](ctx, a, "/historical-sector-pe", q.values(sectorParam, fromParam, toParam, exchangeParam))
}

func (a *Adapter) IndustryPE(ctx context.Context, q Query) ([]IndustryPE, error) {
	return getList[IndustryPE](ctx, a, "/historical-industry-pe", q.values(industryParam, fromParam, toParam, exchangeParam))
}

func (a *Adapter) MergersAcquisitions(ctx context.Context, q Query) ([]MergerAcquisition, error) {
	return getList[MergerAcquisition](ctx, a, "/mergers-acquisitions-latest", q.values(pageParam, limitParam))
}
