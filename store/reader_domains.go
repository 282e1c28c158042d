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
package store

import (
	"context"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/process"
)

// Stocks returns the latest screener snapshot for symbols
func (r *Reader) Stocks(ctx context.Context, symbols []string) ([]*data.Stock, error) {
	return Select[data.Stock](ctx, r, symbols, process.Window{})
}

func (r *Reader) EmployeeCounts(ctx context.Context, symbols []string, window process.Window) ([]*data.EmployeeCount, error) {
	return Select[data.EmployeeCount](ctx, r, symbols, window)
}

func (r *Reader) AnalystEstimates(ctx context.Context, symbols []string, window process.Window) ([]*data.AnalystEstimate, error) {
	return Select[data.AnalystEstimate](ctx, r, symbols, window)
}

func (r *Reader) Ratings(ctx context.Context, symbols []string, window process.Window) ([]*data.Rating, error) {
	return Select[data.Rating](ctx, r, symbols, window)
}

func (r *Reader) Grades(ctx context.Context, symbols []string, window process.Window) ([]*data.Grade, error) {
	return Select[data.Grade](ctx, r, symbols, window)
}

func (r *Reader) GradesConsensus(ctx context.Context, symbols []string) ([]*data.GradesConsensus, error) {
	return Select[data.GradesConsensus](ctx, r, symbols, process.Window{})
}

func (r *Reader) PriceTargetConsensus(ctx context.Context, symbols []string) ([]*data.PriceTargetConsensus, error) {
	return Select[data.PriceTargetConsensus](ctx, r, symbols, process.Window{})
}

func (r *Reader) PriceTargetSummaries(ctx context.Context, symbols []string) ([]*data.PriceTargetSummary, error) {
	return Select[data.PriceTargetSummary](ctx, r, symbols, process.Window{})
}

func (r *Reader) KeyMetrics(ctx context.Context, symbols []string, window process.Window) ([]*data.KeyMetrics, error) {
	return Select[data.KeyMetrics](ctx, r, symbols, window)
}

func (r *Reader) FinancialRatios(ctx context.Context, symbols []string, window process.Window) ([]*data.FinancialRatios, error) {
	return Select[data.FinancialRatios](ctx, r, symbols, window)
}

func (r *Reader) Earnings(ctx context.Context, symbols []string, window process.Window) ([]*data.Earnings, error) {
	return Select[data.Earnings](ctx, r, symbols, window)
}

func (r *Reader) FinancialStatementGrowth(ctx context.Context, symbols []string, window process.Window) ([]*data.FinancialStatementGrowth, error) {
	return Select[data.FinancialStatementGrowth](ctx, r, symbols, window)
}

func (r *Reader) IncomeStatementGrowth(ctx context.Context, symbols []string, window process.Window) ([]*data.IncomeStatementGrowth, error) {
	return Select[data.IncomeStatementGrowth](ctx, r, symbols, window)
}

func (r *Reader) BalanceSheetGrowth(ctx context.Context, symbols []string, window process.Window) ([]*data.BalanceSheetGrowth, error) {
	return Select[data.BalanceSheetGrowth](ctx, r, symbols, window)
}

func (r *Reader) CashFlowStatementGrowth(ctx context.Context, symbols []string, window process.Window) ([]*data.CashFlowStatementGrowth, error) {
	return Select[data.CashFlowStatementGrowth](ctx, r, symbols, window)
}

// Prices returns daily prices for symbols within window. An empty symbol list
// returns every ticker.
func (r *Reader) Prices(ctx context.Context, symbols []string, window process.Window) ([]*data.Price, error) {
	return Select[data.Price](ctx, r, symbols, window)
}

func (r *Reader) DividendAdjustedPrices(ctx context.Context, symbols []string, window process.Window) ([]*data.DividendAdjustedPrice, error) {
	return Select[data.DividendAdjustedPrice](ctx, r, symbols, window)
}

func (r *Reader) Dividends(ctx context.Context, symbols []string, window process.Window) ([]*data.Dividend, error) {
	return Select[data.Dividend](ctx, r, symbols, window)
}

func (r *Reader) Splits(ctx context.Context, symbols []string, window process.Window) ([]*data.Split, error) {
	return Select[data.Split](ctx, r, symbols, window)
}

func (r *Reader) MarketCaps(ctx context.Context, symbols []string, window process.Window) ([]*data.MarketCap, error) {
	return Select[data.MarketCap](ctx, r, symbols, window)
}

func (r *Reader) ShareFloats(ctx context.Context, symbols []string, window process.Window) ([]*data.ShareFloat, error) {
	return Select[data.ShareFloat](ctx, r, symbols, window)
}

func (r *Reader) DiscountedCashFlows(ctx context.Context, symbols []string, window process.Window) ([]*data.DiscountedCashFlow, error) {
	return Select[data.DiscountedCashFlow](ctx, r, symbols, window)
}

func (r *Reader) LeveredDiscountedCashFlows(ctx context.Context, symbols []string, window process.Window) ([]*data.LeveredDiscountedCashFlow, error) {
	return Select[data.LeveredDiscountedCashFlow](ctx, r, symbols, window)
}

func (r *Reader) EnterpriseValues(ctx context.Context, symbols []string, window process.Window) ([]*data.EnterpriseValue, error) {
	return Select[data.EnterpriseValue](ctx, r, symbols, window)
}

func (r *Reader) OwnerEarnings(ctx context.Context, symbols []string, window process.Window) ([]*data.OwnerEarnings, error) {
	return Select[data.OwnerEarnings](ctx, r, symbols, window)
}

// EconomicIndicators returns the named series (GDP, CPI, ...) within window
func (r *Reader) EconomicIndicators(ctx context.Context, names []string, window process.Window) ([]*data.EconomicIndicator, error) {
	return Select[data.EconomicIndicator](ctx, r, names, window)
}

// TreasuryRates returns the yield curve for every day in window
func (r *Reader) TreasuryRates(ctx context.Context, window process.Window) ([]*data.TreasuryRate, error) {
	return Select[data.TreasuryRate](ctx, r, nil, window)
}

func (r *Reader) SectorPerformances(ctx context.Context, sectors []string, window process.Window) ([]*data.SectorPerformance, error) {
	return Select[data.SectorPerformance](ctx, r, sectors, window)
}

func (r *Reader) SectorPEs(ctx context.Context, sectors []string, window process.Window) ([]*data.SectorPE, error) {
	return Select[data.SectorPE](ctx, r, sectors, window)
}

func (r *Reader) IndustryPerformances(ctx context.Context, industries []string, window process.Window) ([]*data.IndustryPerformance, error) {
	return Select[data.IndustryPerformance](ctx, r, industries, window)
}

func (r *Reader) IndustryPEs(ctx context.Context, industries []string, window process.Window) ([]*data.IndustryPE, error) {
	return Select[data.IndustryPE](ctx, r, industries, window)
}

// MergersAcquisitions filters on the acquirer and the transaction date
func (r *Reader) MergersAcquisitions(ctx context.Context, symbols []string, window process.Window) ([]*data.MergerAcquisition, error) {
	return Select[data.MergerAcquisition](ctx, r, symbols, window)
}
