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

package data

import (
	"time"

	"github.com/rs/zerolog"
)

type KeyMetrics struct {
	Symbol                   string    `db:"symbol"`
	Date                     time.Time `db:"date"`
	FiscalYear               *string   `db:"fiscal_year"`
	Period                   *string   `db:"period"`
	ReportedCurrency         *string   `db:"reported_currency"`
	MarketCap                *float64  `db:"market_cap"`
	EnterpriseValue          *float64  `db:"enterprise_value"`
	EVToSales                *float64  `db:"ev_to_sales"`
	EVToOperatingCashFlow    *float64  `db:"ev_to_operating_cash_flow"`
	EVToFreeCashFlow         *float64  `db:"ev_to_free_cash_flow"`
	EVToEBITDA               *float64  `db:"ev_to_ebitda"`
	NetDebtToEBITDA          *float64  `db:"net_debt_to_ebitda"`
	CurrentRatio             *float64  `db:"current_ratio"`
	IncomeQuality            *float64  `db:"income_quality"`
	GrahamNumber             *float64  `db:"graham_number"`
	GrahamNetNet             *float64  `db:"graham_net_net"`
	TaxBurden                *float64  `db:"tax_burden"`
	InterestBurden           *float64  `db:"interest_burden"`
	WorkingCapital           *float64  `db:"working_capital"`
	InvestedCapital          *float64  `db:"invested_capital"`
	ReturnOnAssets           *float64  `db:"return_on_assets"`
	OperatingReturnOnAssets  *float64  `db:"operating_return_on_assets"`
	ReturnOnTangibleAssets   *float64  `db:"return_on_tangible_assets"`
	ReturnOnEquity           *float64  `db:"return_on_equity"`
	ReturnOnInvestedCapital  *float64  `db:"return_on_invested_capital"`
	ReturnOnCapitalEmployed  *float64  `db:"return_on_capital_employed"`
	EarningsYield            *float64  `db:"earnings_yield"`
	FreeCashFlowYield        *float64  `db:"free_cash_flow_yield"`
	CapexToOperatingCashFlow *float64  `db:"capex_to_operating_cash_flow"`
	CapexToDepreciation      *float64  `db:"capex_to_depreciation"`
	CapexToRevenue           *float64  `db:"capex_to_revenue"`
	SGAToRevenue             *float64  `db:"sga_to_revenue"`
	RnDToRevenue             *float64  `db:"rnd_to_revenue"`
	SBCToRevenue             *float64  `db:"sbc_to_revenue"`
	IntangiblesToTotalAssets *float64  `db:"intangibles_to_total_assets"`
	AverageReceivables       *float64  `db:"average_receivables"`
	AveragePayables          *float64  `db:"average_payables"`
	AverageInventory         *float64  `db:"average_inventory"`
	DSO                      *float64  `db:"dso"`
	DPO                      *float64  `db:"dpo"`
	DIO                      *float64  `db:"dio"`
	OperatingCycle           *float64  `db:"operating_cycle"`
	CashConversionCycle      *float64  `db:"cash_conversion_cycle"`
	FCFToEquity              *float64  `db:"fcf_to_equity"`
	FCFToFirm                *float64  `db:"fcf_to_firm"`
	TangibleAssetValue       *float64  `db:"tangible_asset_value"`
	NetCurrentAssetValue     *float64  `db:"net_current_asset_value"`
}

func (k *KeyMetrics) Table() string { return "key_metrics" }

func (k *KeyMetrics) Key() []string { return []string{"symbol", "date"} }

func (k *KeyMetrics) EventDate() time.Time { return k.Date }

func (k *KeyMetrics) Tag(symbol string) { k.Symbol = symbol }

func (k *KeyMetrics) Row() []Field {
	return []Field{
		{"symbol", k.Symbol},
		{"date", k.Date},
		{"fiscal_year", k.FiscalYear},
		{"period", k.Period},
		{"reported_currency", k.ReportedCurrency},
		{"market_cap", k.MarketCap},
		{"enterprise_value", k.EnterpriseValue},
		{"ev_to_sales", k.EVToSales},
		{"ev_to_operating_cash_flow", k.EVToOperatingCashFlow},
		{"ev_to_free_cash_flow", k.EVToFreeCashFlow},
		{"ev_to_ebitda", k.EVToEBITDA},
		{"net_debt_to_ebitda", k.NetDebtToEBITDA},
		{"current_ratio", k.CurrentRatio},
		{"income_quality", k.IncomeQuality},
		{"graham_number", k.GrahamNumber},
		{"graham_net_net", k.GrahamNetNet},
		{"tax_burden", k.TaxBurden},
		{"interest_burden", k.InterestBurden},
		{"working_capital", k.WorkingCapital},
		{"invested_capital", k.InvestedCapital},
		{"return_on_assets", k.ReturnOnAssets},
		{"operating_return_on_assets", k.OperatingReturnOnAssets},
		{"return_on_tangible_assets", k.ReturnOnTangibleAssets},
		{"return_on_equity", k.ReturnOnEquity},
		{"return_on_invested_capital", k.ReturnOnInvestedCapital},
		{"return_on_capital_employed", k.ReturnOnCapitalEmployed},
		{"earnings_yield", k.EarningsYield},
		{"free_cash_flow_yield", k.FreeCashFlowYield},
		{"capex_to_operating_cash_flow", k.CapexToOperatingCashFlow},
		{"capex_to_depreciation", k.CapexToDepreciation},
		{"capex_to_revenue", k.CapexToRevenue},
		{"sga_to_revenue", k.SGAToRevenue},
		{"rnd_to_revenue", k.RnDToRevenue},
		{"sbc_to_revenue", k.SBCToRevenue},
		{"intangibles_to_total_assets", k.IntangiblesToTotalAssets},
		{"average_receivables", k.AverageReceivables},
		{"average_payables", k.AveragePayables},
		{"average_inventory", k.AverageInventory},
		{"dso", k.DSO},
		{"dpo", k.DPO},
		{"dio", k.DIO},
		{"operating_cycle", k.OperatingCycle},
		{"cash_conversion_cycle", k.CashConversionCycle},
		{"fcf_to_equity", k.FCFToEquity},
		{"fcf_to_firm", k.FCFToFirm},
		{"tangible_asset_value", k.TangibleAssetValue},
		{"net_current_asset_value", k.NetCurrentAssetValue},
	}
}

func (k *KeyMetrics) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", k.Symbol)
	e.Str("Date", k.Date.Format(DateLayout))
}

type FinancialRatios struct {
	Symbol                                  string    `db:"symbol"`
	Date                                    time.Time `db:"date"`
	FiscalYear                              *string   `db:"fiscal_year"`
	Period                                  *string   `db:"period"`
	ReportedCurrency                        *string   `db:"reported_currency"`
	GrossProfitMargin                       *float64  `db:"gross_profit_margin"`
	EBITMargin                              *float64  `db:"ebit_margin"`
	EBITDAMargin                            *float64  `db:"ebitda_margin"`
	OperatingProfitMargin                   *float64  `db:"operating_profit_margin"`
	PretaxProfitMargin                      *float64  `db:"pretax_profit_margin"`
	ContinuousOperationsProfitMargin        *float64  `db:"continuous_operations_profit_margin"`
	NetProfitMargin                         *float64  `db:"net_profit_margin"`
	BottomLineProfitMargin                  *float64  `db:"bottom_line_profit_margin"`
	ReceivablesTurnover                     *float64  `db:"receivables_turnover"`
	PayablesTurnover                        *float64  `db:"payables_turnover"`
	InventoryTurnover                       *float64  `db:"inventory_turnover"`
	FixedAssetTurnover                      *float64  `db:"fixed_asset_turnover"`
	AssetTurnover                           *float64  `db:"asset_turnover"`
	CurrentRatio                            *float64  `db:"current_ratio"`
	QuickRatio                              *float64  `db:"quick_ratio"`
	SolvencyRatio                           *float64  `db:"solvency_ratio"`
	CashRatio                               *float64  `db:"cash_ratio"`
	PriceToEarningsRatio                    *float64  `db:"price_to_earnings_ratio"`
	PriceToEarningsGrowthRatio              *float64  `db:"price_to_earnings_growth_ratio"`
	ForwardPriceToEarningsGrowthRatio       *float64  `db:"forward_price_to_earnings_growth_ratio"`
	PriceToBookRatio                        *float64  `db:"price_to_book_ratio"`
	PriceToSalesRatio                       *float64  `db:"price_to_sales_ratio"`
	PriceToFreeCashFlowRatio                *float64  `db:"price_to_free_cash_flow_ratio"`
	PriceToOperatingCashFlowRatio           *float64  `db:"price_to_operating_cash_flow_ratio"`
	DebtToAssetsRatio                       *float64  `db:"debt_to_assets_ratio"`
	DebtToEquityRatio                       *float64  `db:"debt_to_equity_ratio"`
	DebtToCapitalRatio                      *float64  `db:"debt_to_capital_ratio"`
	LongTermDebtToCapitalRatio              *float64  `db:"long_term_debt_to_capital_ratio"`
	FinancialLeverageRatio                  *float64  `db:"financial_leverage_ratio"`
	DebtToMarketCap                         *float64  `db:"debt_to_market_cap"`
	WorkingCapitalTurnoverRatio             *float64  `db:"working_capital_turnover_ratio"`
	OperatingCashFlowRatio                  *float64  `db:"operating_cash_flow_ratio"`
	OperatingCashFlowSalesRatio             *float64  `db:"operating_cash_flow_sales_ratio"`
	FreeCashFlowOperatingCashFlowRatio      *float64  `db:"free_cash_flow_operating_cash_flow_ratio"`
	DebtServiceCoverageRatio                *float64  `db:"debt_service_coverage_ratio"`
	InterestCoverageRatio                   *float64  `db:"interest_coverage_ratio"`
	ShortTermOperatingCashFlowCoverageRatio *float64  `db:"short_term_operating_cash_flow_coverage_ratio"`
	OperatingCashFlowCoverageRatio          *float64  `db:"operating_cash_flow_coverage_ratio"`
	CapitalExpenditureCoverageRatio         *float64  `db:"capital_expenditure_coverage_ratio"`
	DividendPaidAndCapexCoverageRatio       *float64  `db:"dividend_paid_and_capex_coverage_ratio"`
	DividendPayoutRatio                     *float64  `db:"dividend_payout_ratio"`
	DividendYield                           *float64  `db:"dividend_yield"`
	DividendYieldPercentage                 *float64  `db:"dividend_yield_percentage"`
	RevenuePerShare                         *float64  `db:"revenue_per_share"`
	NetIncomePerShare                       *float64  `db:"net_income_per_share"`
	InterestDebtPerShare                    *float64  `db:"interest_debt_per_share"`
	CashPerShare                            *float64  `db:"cash_per_share"`
	BookValuePerShare                       *float64  `db:"book_value_per_share"`
	TangibleBookValuePerShare               *float64  `db:"tangible_book_value_per_share"`
	ShareholdersEquityPerShare              *float64  `db:"shareholders_equity_per_share"`
	OperatingCashFlowPerShare               *float64  `db:"operating_cash_flow_per_share"`
	CapexPerShare                           *float64  `db:"capex_per_share"`
	FreeCashFlowPerShare                    *float64  `db:"free_cash_flow_per_share"`
	NetIncomePerEBT                         *float64  `db:"net_income_per_ebt"`
	EBTPerEBIT                              *float64  `db:"ebt_per_ebit"`
	PriceToFairValue                        *float64  `db:"price_to_fair_value"`
	EffectiveTaxRate                        *float64  `db:"effective_tax_rate"`
	EnterpriseValueMultiple                 *float64  `db:"enterprise_value_multiple"`
}

func (f *FinancialRatios) Table() string { return "financial_ratios" }

func (f *FinancialRatios) Key() []string { return []string{"symbol", "date"} }

func (f *FinancialRatios) EventDate() time.Time { return f.Date }

func (f *FinancialRatios) Tag(symbol string) { f.Symbol = symbol }

func (f *FinancialRatios) Row() []Field {
	return []Field{
		{"symbol", f.Symbol},
		{"date", f.Date},
		{"fiscal_year", f.FiscalYear},
		{"period", f.Period},
		{"reported_currency", f.ReportedCurrency},
		{"gross_profit_margin", f.GrossProfitMargin},
		{"ebit_margin", f.EBITMargin},
		{"ebitda_margin", f.EBITDAMargin},
		{"operating_profit_margin", f.OperatingProfitMargin},
		{"pretax_profit_margin", f.PretaxProfitMargin},
		{"continuous_operations_profit_margin", f.ContinuousOperationsProfitMargin},
		{"net_profit_margin", f.NetProfitMargin},
		{"bottom_line_profit_margin", f.BottomLineProfitMargin},
		{"receivables_turnover", f.ReceivablesTurnover},
		{"payables_turnover", f.PayablesTurnover},
		{"inventory_turnover", f.InventoryTurnover},
		{"fixed_asset_turnover", f.FixedAssetTurnover},
		{"asset_turnover", f.AssetTurnover},
		{"current_ratio", f.CurrentRatio},
		{"quick_ratio", f.QuickRatio},
		{"solvency_ratio", f.SolvencyRatio},
		{"cash_ratio", f.CashRatio},
		{"price_to_earnings_ratio", f.PriceToEarningsRatio},
		{"price_to_earnings_growth_ratio", f.PriceToEarningsGrowthRatio},
		{"forward_price_to_earnings_growth_ratio", f.ForwardPriceToEarningsGrowthRatio},
		{"price_to_book_ratio", f.PriceToBookRatio},
		{"price_to_sales_ratio", f.PriceToSalesRatio},
		{"price_to_free_cash_flow_ratio", f.PriceToFreeCashFlowRatio},
		{"price_to_operating_cash_flow_ratio", f.PriceToOperatingCashFlowRatio},
		{"debt_to_assets_ratio", f.DebtToAssetsRatio},
		{"debt_to_equity_ratio", f.DebtToEquityRatio},
		{"debt_to_capital_ratio", f.DebtToCapitalRatio},
		{"long_term_debt_to_capital_ratio", f.LongTermDebtToCapitalRatio},
		{"financial_leverage_ratio", f.FinancialLeverageRatio},
		{"debt_to_market_cap", f.DebtToMarketCap},
		{"working_capital_turnover_ratio", f.WorkingCapitalTurnoverRatio},
		{"operating_cash_flow_ratio", f.OperatingCashFlowRatio},
		{"operating_cash_flow_sales_ratio", f.OperatingCashFlowSalesRatio},
		{"free_cash_flow_operating_cash_flow_ratio", f.FreeCashFlowOperatingCashFlowRatio},
		{"debt_service_coverage_ratio", f.DebtServiceCoverageRatio},
		{"interest_coverage_ratio", f.InterestCoverageRatio},
		{"short_term_operating_cash_flow_coverage_ratio", f.ShortTermOperatingCashFlowCoverageRatio},
		{"operating_cash_flow_coverage_ratio", f.OperatingCashFlowCoverageRatio},
		{"capital_expenditure_coverage_ratio", f.CapitalExpenditureCoverageRatio},
		{"dividend_paid_and_capex_coverage_ratio", f.DividendPaidAndCapexCoverageRatio},
		{"dividend_payout_ratio", f.DividendPayoutRatio},
		{"dividend_yield", f.DividendYield},
		{"dividend_yield_percentage", f.DividendYieldPercentage},
		{"revenue_per_share", f.RevenuePerShare},
		{"net_income_per_share", f.NetIncomePerShare},
		{"interest_debt_per_share", f.InterestDebtPerShare},
		{"cash_per_share", f.CashPerShare},
		{"book_value_per_share", f.BookValuePerShare},
		{"tangible_book_value_per_share", f.TangibleBookValuePerShare},
		{"shareholders_equity_per_share", f.ShareholdersEquityPerShare},
		{"operating_cash_flow_per_share", f.OperatingCashFlowPerShare},
		{"capex_per_share", f.CapexPerShare},
		{"free_cash_flow_per_share", f.FreeCashFlowPerShare},
		{"net_income_per_ebt", f.NetIncomePerEBT},
		{"ebt_per_ebit", f.EBTPerEBIT},
		{"price_to_fair_value", f.PriceToFairValue},
		{"effective_tax_rate", f.EffectiveTaxRate},
		{"enterprise_value_multiple", f.EnterpriseValueMultiple},
	}
}

func (f *FinancialRatios) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", f.Symbol)
	e.Str("Date", f.Date.Format(DateLayout))
}

type Earnings struct {
	Symbol           string    `db:"symbol"`
	Date             time.Time `db:"date"`
	EPSActual        *float64  `db:"eps_actual"`
	EPSEstimated     *float64  `db:"eps_estimated"`
	RevenueActual    *float64  `db:"revenue_actual"`
	RevenueEstimated *float64  `db:"revenue_estimated"`
}

func (e *Earnings) Table() string { return "earnings" }

func (e *Earnings) Key() []string { return []string{"symbol", "date"} }

func (e *Earnings) EventDate() time.Time { return e.Date }

func (e *Earnings) Tag(symbol string) { e.Symbol = symbol }

func (e *Earnings) Row() []Field {
	return []Field{
		{"symbol", e.Symbol},
		{"date", e.Date},
		{"eps_actual", e.EPSActual},
		{"eps_estimated", e.EPSEstimated},
		{"revenue_actual", e.RevenueActual},
		{"revenue_estimated", e.RevenueEstimated},
	}
}

func (e *Earnings) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("Symbol", e.Symbol)
	ev.Str("Date", e.Date.Format(DateLayout))
}
