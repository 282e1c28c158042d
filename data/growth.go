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

type FinancialStatementGrowth struct {
	Symbol                                  string    `db:"symbol"`
	Date                                    time.Time `db:"date"`
	FiscalYear                              *string   `db:"fiscal_year"`
	Period                                  *string   `db:"period"`
	ReportedCurrency                        *string   `db:"reported_currency"`
	RevenueGrowth                           *float64  `db:"revenue_growth"`
	GrossProfitGrowth                       *float64  `db:"gross_profit_growth"`
	EBITGrowth                              *float64  `db:"ebit_growth"`
	OperatingIncomeGrowth                   *float64  `db:"operating_income_growth"`
	NetIncomeGrowth                         *float64  `db:"net_income_growth"`
	EPSGrowth                               *float64  `db:"eps_growth"`
	EPSDilutedGrowth                        *float64  `db:"eps_diluted_growth"`
	WeightedAverageSharesGrowth             *float64  `db:"weighted_average_shares_growth"`
	WeightedAverageSharesDilutedGrowth      *float64  `db:"weighted_average_shares_diluted_growth"`
	DividendsPerShareGrowth                 *float64  `db:"dividends_per_share_growth"`
	OperatingCashFlowGrowth                 *float64  `db:"operating_cash_flow_growth"`
	ReceivablesGrowth                       *float64  `db:"receivables_growth"`
	InventoryGrowth                         *float64  `db:"inventory_growth"`
	AssetGrowth                             *float64  `db:"asset_growth"`
	BookValuePerShareGrowth                 *float64  `db:"book_value_per_share_growth"`
	DebtGrowth                              *float64  `db:"debt_growth"`
	RDExpenseGrowth                         *float64  `db:"rd_expense_growth"`
	SGAExpensesGrowth                       *float64  `db:"sga_expenses_growth"`
	FreeCashFlowGrowth                      *float64  `db:"free_cash_flow_growth"`
	TenYRevenueGrowthPerShare               *float64  `db:"ten_y_revenue_growth_per_share"`
	FiveYRevenueGrowthPerShare              *float64  `db:"five_y_revenue_growth_per_share"`
	ThreeYRevenueGrowthPerShare             *float64  `db:"three_y_revenue_growth_per_share"`
	TenYOperatingCFGrowthPerShare           *float64  `db:"ten_y_operating_cf_growth_per_share"`
	FiveYOperatingCFGrowthPerShare          *float64  `db:"five_y_operating_cf_growth_per_share"`
	ThreeYOperatingCFGrowthPerShare         *float64  `db:"three_y_operating_cf_growth_per_share"`
	TenYNetIncomeGrowthPerShare             *float64  `db:"ten_y_net_income_growth_per_share"`
	FiveYNetIncomeGrowthPerShare            *float64  `db:"five_y_net_income_growth_per_share"`
	ThreeYNetIncomeGrowthPerShare           *float64  `db:"three_y_net_income_growth_per_share"`
	TenYShareholdersEquityGrowthPerShare    *float64  `db:"ten_y_shareholders_equity_growth_per_share"`
	FiveYShareholdersEquityGrowthPerShare   *float64  `db:"five_y_shareholders_equity_growth_per_share"`
	ThreeYShareholdersEquityGrowthPerShare  *float64  `db:"three_y_shareholders_equity_growth_per_share"`
	TenYDividendPerShareGrowthPerShare      *float64  `db:"ten_y_dividend_per_share_growth_per_share"`
	FiveYDividendPerShareGrowthPerShare     *float64  `db:"five_y_dividend_per_share_growth_per_share"`
	ThreeYDividendPerShareGrowthPerShare    *float64  `db:"three_y_dividend_per_share_growth_per_share"`
	EBITDAGrowth                            *float64  `db:"ebitda_growth"`
	GrowthCapitalExpenditure                *float64  `db:"growth_capital_expenditure"`
	TenYBottomLineNetIncomeGrowthPerShare   *float64  `db:"ten_y_bottom_line_net_income_growth_per_share"`
	FiveYBottomLineNetIncomeGrowthPerShare  *float64  `db:"five_y_bottom_line_net_income_growth_per_share"`
	ThreeYBottomLineNetIncomeGrowthPerShare *float64  `db:"three_y_bottom_line_net_income_growth_per_share"`
}

func (f *FinancialStatementGrowth) Table() string { return "financial_statement_growth" }

func (f *FinancialStatementGrowth) Key() []string { return []string{"symbol", "date"} }

func (f *FinancialStatementGrowth) EventDate() time.Time { return f.Date }

func (f *FinancialStatementGrowth) Tag(symbol string) { f.Symbol = symbol }

func (f *FinancialStatementGrowth) Row() []Field {
	return []Field{
		{"symbol", f.Symbol},
		{"date", f.Date},
		{"fiscal_year", f.FiscalYear},
		{"period", f.Period},
		{"reported_currency", f.ReportedCurrency},
		{"revenue_growth", f.RevenueGrowth},
		{"gross_profit_growth", f.GrossProfitGrowth},
		{"ebit_growth", f.EBITGrowth},
		{"operating_income_growth", f.OperatingIncomeGrowth},
		{"net_income_growth", f.NetIncomeGrowth},
		{"eps_growth", f.EPSGrowth},
		{"eps_diluted_growth", f.EPSDilutedGrowth},
		{"weighted_average_shares_growth", f.WeightedAverageSharesGrowth},
		{"weighted_average_shares_diluted_growth", f.WeightedAverageSharesDilutedGrowth},
		{"dividends_per_share_growth", f.DividendsPerShareGrowth},
		{"operating_cash_flow_growth", f.OperatingCashFlowGrowth},
		{"receivables_growth", f.ReceivablesGrowth},
		{"inventory_growth", f.InventoryGrowth},
		{"asset_growth", f.AssetGrowth},
		{"book_value_per_share_growth", f.BookValuePerShareGrowth},
		{"debt_growth", f.DebtGrowth},
		{"rd_expense_growth", f.RDExpenseGrowth},
		{"sga_expenses_growth", f.SGAExpensesGrowth},
		{"free_cash_flow_growth", f.FreeCashFlowGrowth},
		{"ten_y_revenue_growth_per_share", f.TenYRevenueGrowthPerShare},
		{"five_y_revenue_growth_per_share", f.FiveYRevenueGrowthPerShare},
		{"three_y_revenue_growth_per_share", f.ThreeYRevenueGrowthPerShare},
		{"ten_y_operating_cf_growth_per_share", f.TenYOperatingCFGrowthPerShare},
		{"five_y_operating_cf_growth_per_share", f.FiveYOperatingCFGrowthPerShare},
		{"three_y_operating_cf_growth_per_share", f.ThreeYOperatingCFGrowthPerShare},
		{"ten_y_net_income_growth_per_share", f.TenYNetIncomeGrowthPerShare},
		{"five_y_net_income_growth_per_share", f.FiveYNetIncomeGrowthPerShare},
		{"three_y_net_income_growth_per_share", f.ThreeYNetIncomeGrowthPerShare},
		{"ten_y_shareholders_equity_growth_per_share", f.TenYShareholdersEquityGrowthPerShare},
		{"five_y_shareholders_equity_growth_per_share", f.FiveYShareholdersEquityGrowthPerShare},
		{"three_y_shareholders_equity_growth_per_share", f.ThreeYShareholdersEquityGrowthPerShare},
		{"ten_y_dividend_per_share_growth_per_share", f.TenYDividendPerShareGrowthPerShare},
		{"five_y_dividend_per_share_growth_per_share", f.FiveYDividendPerShareGrowthPerShare},
		{"three_y_dividend_per_share_growth_per_share", f.ThreeYDividendPerShareGrowthPerShare},
		{"ebitda_growth", f.EBITDAGrowth},
		{"growth_capital_expenditure", f.GrowthCapitalExpenditure},
		{"ten_y_bottom_line_net_income_growth_per_share", f.TenYBottomLineNetIncomeGrowthPerShare},
		{"five_y_bottom_line_net_income_growth_per_share", f.FiveYBottomLineNetIncomeGrowthPerShare},
		{"three_y_bottom_line_net_income_growth_per_share", f.ThreeYBottomLineNetIncomeGrowthPerShare},
	}
}

func (f *FinancialStatementGrowth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", f.Symbol)
	e.Str("Date", f.Date.Format(DateLayout))
}

type IncomeStatementGrowth struct {
	Symbol                                    string    `db:"symbol"`
	Date                                      time.Time `db:"date"`
	FiscalYear                                *string   `db:"fiscal_year"`
	Period                                    *string   `db:"period"`
	ReportedCurrency                          *string   `db:"reported_currency"`
	GrowthRevenue                             *float64  `db:"growth_revenue"`
	GrowthCostOfRevenue                       *float64  `db:"growth_cost_of_revenue"`
	GrowthGrossProfit                         *float64  `db:"growth_gross_profit"`
	GrowthGrossProfitRatio                    *float64  `db:"growth_gross_profit_ratio"`
	GrowthResearchAndDevelopmentExpenses      *float64  `db:"growth_research_and_development_expenses"`
	GrowthGeneralAndAdministrativeExpenses    *float64  `db:"growth_general_and_administrative_expenses"`
	GrowthSellingAndMarketingExpenses         *float64  `db:"growth_selling_and_marketing_expenses"`
	GrowthOtherExpenses                       *float64  `db:"growth_other_expenses"`
	GrowthOperatingExpenses                   *float64  `db:"growth_operating_expenses"`
	GrowthCostAndExpenses                     *float64  `db:"growth_cost_and_expenses"`
	GrowthInterestIncome                      *float64  `db:"growth_interest_income"`
	GrowthInterestExpense                     *float64  `db:"growth_interest_expense"`
	GrowthDepreciationAndAmortization         *float64  `db:"growth_depreciation_and_amortization"`
	GrowthEBITDA                              *float64  `db:"growth_ebitda"`
	GrowthOperatingIncome                     *float64  `db:"growth_operating_income"`
	GrowthIncomeBeforeTax                     *float64  `db:"growth_income_before_tax"`
	GrowthIncomeTaxExpense                    *float64  `db:"growth_income_tax_expense"`
	GrowthNetIncome                           *float64  `db:"growth_net_income"`
	GrowthEPS                                 *float64  `db:"growth_eps"`
	GrowthEPSDiluted                          *float64  `db:"growth_eps_diluted"`
	GrowthWeightedAverageShsOut               *float64  `db:"growth_weighted_average_shs_out"`
	GrowthWeightedAverageShsOutDiluted        *float64  `db:"growth_weighted_average_shs_out_diluted"`
	GrowthEBIT                                *float64  `db:"growth_ebit"`
	GrowthNonOperatingIncomeExcludingInterest *float64  `db:"growth_non_operating_income_excluding_interest"`
	GrowthNetInterestIncome                   *float64  `db:"growth_net_interest_income"`
	GrowthTotalOtherIncomeExpensesNet         *float64  `db:"growth_total_other_income_expenses_net"`
	GrowthNetIncomeFromContinuingOperations   *float64  `db:"growth_net_income_from_continuing_operations"`
	GrowthOtherAdjustmentsToNetIncome         *float64  `db:"growth_other_adjustments_to_net_income"`
	GrowthNetIncomeDeductions                 *float64  `db:"growth_net_income_deductions"`
}

func (i *IncomeStatementGrowth) Table() string { return "income_statement_growth" }

func (i *IncomeStatementGrowth) Key() []string { return []string{"symbol", "date"} }

func (i *IncomeStatementGrowth) EventDate() time.Time { return i.Date }

func (i *IncomeStatementGrowth) Tag(symbol string) { i.Symbol = symbol }

func (i *IncomeStatementGrowth) Row() []Field {
	return []Field{
		{"symbol", i.Symbol},
		{"date", i.Date},
		{"fiscal_year", i.FiscalYear},
		{"period", i.Period},
		{"reported_currency", i.ReportedCurrency},
		{"growth_revenue", i.GrowthRevenue},
		{"growth_cost_of_revenue", i.GrowthCostOfRevenue},
		{"growth_gross_profit", i.GrowthGrossProfit},
		{"growth_gross_profit_ratio", i.GrowthGrossProfitRatio},
		{"growth_research_and_development_expenses", i.GrowthResearchAndDevelopmentExpenses},
		{"growth_general_and_administrative_expenses", i.GrowthGeneralAndAdministrativeExpenses},
		{"growth_selling_and_marketing_expenses", i.GrowthSellingAndMarketingExpenses},
		{"growth_other_expenses", i.GrowthOtherExpenses},
		{"growth_operating_expenses", i.GrowthOperatingExpenses},
		{"growth_cost_and_expenses", i.GrowthCostAndExpenses},
		{"growth_interest_income", i.GrowthInterestIncome},
		{"growth_interest_expense", i.GrowthInterestExpense},
		{"growth_depreciation_and_amortization", i.GrowthDepreciationAndAmortization},
		{"growth_ebitda", i.GrowthEBITDA},
		{"growth_operating_income", i.GrowthOperatingIncome},
		{"growth_income_before_tax", i.GrowthIncomeBeforeTax},
		{"growth_income_tax_expense", i.GrowthIncomeTaxExpense},
		{"growth_net_income", i.GrowthNetIncome},
		{"growth_eps", i.GrowthEPS},
		{"growth_eps_diluted", i.GrowthEPSDiluted},
		{"growth_weighted_average_shs_out", i.GrowthWeightedAverageShsOut},
		{"growth_weighted_average_shs_out_diluted", i.GrowthWeightedAverageShsOutDiluted},
		{"growth_ebit", i.GrowthEBIT},
		{"growth_non_operating_income_excluding_interest", i.GrowthNonOperatingIncomeExcludingInterest},
		{"growth_net_interest_income", i.GrowthNetInterestIncome},
		{"growth_total_other_income_expenses_net", i.GrowthTotalOtherIncomeExpensesNet},
		{"growth_net_income_from_continuing_operations", i.GrowthNetIncomeFromContinuingOperations},
		{"growth_other_adjustments_to_net_income", i.GrowthOtherAdjustmentsToNetIncome},
		{"growth_net_income_deductions", i.GrowthNetIncomeDeductions},
	}
}

func (i *IncomeStatementGrowth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", i.Symbol)
	e.Str("Date", i.Date.Format(DateLayout))
}

type BalanceSheetGrowth struct {
	Symbol                                        string    `db:"symbol"`
	Date                                          time.Time `db:"date"`
	FiscalYear                                    *string   `db:"fiscal_year"`
	Period                                        *string   `db:"period"`
	ReportedCurrency                              *string   `db:"reported_currency"`
	GrowthCashAndCashEquivalents                  *float64  `db:"growth_cash_and_cash_equivalents"`
	GrowthShortTermInvestments                    *float64  `db:"growth_short_term_investments"`
	GrowthCashAndShortTermInvestments             *float64  `db:"growth_cash_and_short_term_investments"`
	GrowthNetReceivables                          *float64  `db:"growth_net_receivables"`
	GrowthInventory                               *float64  `db:"growth_inventory"`
	GrowthOtherCurrentAssets                      *float64  `db:"growth_other_current_assets"`
	GrowthTotalCurrentAssets                      *float64  `db:"growth_total_current_assets"`
	GrowthPropertyPlantEquipmentNet               *float64  `db:"growth_property_plant_equipment_net"`
	GrowthGoodwill                                *float64  `db:"growth_goodwill"`
	GrowthIntangibleAssets                        *float64  `db:"growth_intangible_assets"`
	GrowthGoodwillAndIntangibleAssets             *float64  `db:"growth_goodwill_and_intangible_assets"`
	GrowthLongTermInvestments                     *float64  `db:"growth_long_term_investments"`
	GrowthTaxAssets                               *float64  `db:"growth_tax_assets"`
	GrowthOtherNonCurrentAssets                   *float64  `db:"growth_other_non_current_assets"`
	GrowthTotalNonCurrentAssets                   *float64  `db:"growth_total_non_current_assets"`
	GrowthOtherAssets                             *float64  `db:"growth_other_assets"`
	GrowthTotalAssets                             *float64  `db:"growth_total_assets"`
	GrowthAccountPayables                         *float64  `db:"growth_account_payables"`
	GrowthShortTermDebt                           *float64  `db:"growth_short_term_debt"`
	GrowthTaxPayables                             *float64  `db:"growth_tax_payables"`
	GrowthDeferredRevenue                         *float64  `db:"growth_deferred_revenue"`
	GrowthOtherCurrentLiabilities                 *float64  `db:"growth_other_current_liabilities"`
	GrowthTotalCurrentLiabilities                 *float64  `db:"growth_total_current_liabilities"`
	GrowthLongTermDebt                            *float64  `db:"growth_long_term_debt"`
	GrowthDeferredRevenueNonCurrent               *float64  `db:"growth_deferred_revenue_non_current"`
	GrowthDeferredTaxLiabilitiesNonCurrent        *float64  `db:"growth_deferred_tax_liabilities_non_current"`
	GrowthOtherNonCurrentLiabilities              *float64  `db:"growth_other_non_current_liabilities"`
	GrowthTotalNonCurrentLiabilities              *float64  `db:"growth_total_non_current_liabilities"`
	GrowthOtherLiabilities                        *float64  `db:"growth_other_liabilities"`
	GrowthTotalLiabilities                        *float64  `db:"growth_total_liabilities"`
	GrowthPreferredStock                          *float64  `db:"growth_preferred_stock"`
	GrowthCommonStock                             *float64  `db:"growth_common_stock"`
	GrowthRetainedEarnings                        *float64  `db:"growth_retained_earnings"`
	GrowthAccumulatedOtherComprehensiveIncomeLoss *float64  `db:"growth_accumulated_other_comprehensive_income_loss"`
	GrowthOtherTotalStockholdersEquity            *float64  `db:"growth_other_total_stockholders_equity"`
	GrowthTotalStockholdersEquity                 *float64  `db:"growth_total_stockholders_equity"`
	GrowthMinorityInterest                        *float64  `db:"growth_minority_interest"`
	GrowthTotalEquity                             *float64  `db:"growth_total_equity"`
	GrowthTotalLiabilitiesAndStockholdersEquity   *float64  `db:"growth_total_liabilities_and_stockholders_equity"`
	GrowthTotalInvestments                        *float64  `db:"growth_total_investments"`
	GrowthTotalDebt                               *float64  `db:"growth_total_debt"`
	GrowthNetDebt                                 *float64  `db:"growth_net_debt"`
	GrowthAccountsReceivables                     *float64  `db:"growth_accounts_receivables"`
	GrowthOtherReceivables                        *float64  `db:"growth_other_receivables"`
	GrowthPrepaids                                *float64  `db:"growth_prepaids"`
	GrowthTotalPayables                           *float64  `db:"growth_total_payables"`
	GrowthOtherPayables                           *float64  `db:"growth_other_payables"`
	GrowthAccruedExpenses                         *float64  `db:"growth_accrued_expenses"`
	GrowthCapitalLeaseObligationsCurrent          *float64  `db:"growth_capital_lease_obligations_current"`
	GrowthAdditionalPaidInCapital                 *float64  `db:"growth_additional_paid_in_capital"`
	GrowthTreasuryStock                           *float64  `db:"growth_treasury_stock"`
}

func (b *BalanceSheetGrowth) Table() string { return "balance_sheet_growth" }

func (b *BalanceSheetGrowth) Key() []string { return []string{"symbol", "date"} }

func (b *BalanceSheetGrowth) EventDate() time.Time { return b.Date }

func (b *BalanceSheetGrowth) Tag(symbol string) { b.Symbol = symbol }

func (b *BalanceSheetGrowth) Row() []Field {
	return []Field{
		{"symbol", b.Symbol},
		{"date", b.Date},
		{"fiscal_year", b.FiscalYear},
		{"period", b.Period},
		{"reported_currency", b.ReportedCurrency},
		{"growth_cash_and_cash_equivalents", b.GrowthCashAndCashEquivalents},
		{"growth_short_term_investments", b.GrowthShortTermInvestments},
		{"growth_cash_and_short_term_investments", b.GrowthCashAndShortTermInvestments},
		{"growth_net_receivables", b.GrowthNetReceivables},
		{"growth_inventory", b.GrowthInventory},
		{"growth_other_current_assets", b.GrowthOtherCurrentAssets},
		{"growth_total_current_assets", b.GrowthTotalCurrentAssets},
		{"growth_property_plant_equipment_net", b.GrowthPropertyPlantEquipmentNet},
		{"growth_goodwill", b.GrowthGoodwill},
		{"growth_intangible_assets", b.GrowthIntangibleAssets},
		{"growth_goodwill_and_intangible_assets", b.GrowthGoodwillAndIntangibleAssets},
		{"growth_long_term_investments", b.GrowthLongTermInvestments},
		{"growth_tax_assets", b.GrowthTaxAssets},
		{"growth_other_non_current_assets", b.GrowthOtherNonCurrentAssets},
		{"growth_total_non_current_assets", b.GrowthTotalNonCurrentAssets},
		{"growth_other_assets", b.GrowthOtherAssets},
		{"growth_total_assets", b.GrowthTotalAssets},
		{"growth_account_payables", b.GrowthAccountPayables},
		{"growth_short_term_debt", b.GrowthShortTermDebt},
		{"growth_tax_payables", b.GrowthTaxPayables},
		{"growth_deferred_revenue", b.GrowthDeferredRevenue},
		{"growth_other_current_liabilities", b.GrowthOtherCurrentLiabilities},
		{"growth_total_current_liabilities", b.GrowthTotalCurrentLiabilities},
		{"growth_long_term_debt", b.GrowthLongTermDebt},
		{"growth_deferred_revenue_non_current", b.GrowthDeferredRevenueNonCurrent},
		{"growth_deferred_tax_liabilities_non_current", b.GrowthDeferredTaxLiabilitiesNonCurrent},
		{"growth_other_non_current_liabilities", b.GrowthOtherNonCurrentLiabilities},
		{"growth_total_non_current_liabilities", b.GrowthTotalNonCurrentLiabilities},
		{"growth_other_liabilities", b.GrowthOtherLiabilities},
		{"growth_total_liabilities", b.GrowthTotalLiabilities},
		{"growth_preferred_stock", b.GrowthPreferredStock},
		{"growth_common_stock", b.GrowthCommonStock},
		{"growth_retained_earnings", b.GrowthRetainedEarnings},
		{"growth_accumulated_other_comprehensive_income_loss", b.GrowthAccumulatedOtherComprehensiveIncomeLoss},
		{"growth_other_total_stockholders_equity", b.GrowthOtherTotalStockholdersEquity},
		{"growth_total_stockholders_equity", b.GrowthTotalStockholdersEquity},
		{"growth_minority_interest", b.GrowthMinorityInterest},
		{"growth_total_equity", b.GrowthTotalEquity},
		{"growth_total_liabilities_and_stockholders_equity", b.GrowthTotalLiabilitiesAndStockholdersEquity},
		{"growth_total_investments", b.GrowthTotalInvestments},
		{"growth_total_debt", b.GrowthTotalDebt},
		{"growth_net_debt", b.GrowthNetDebt},
		{"growth_accounts_receivables", b.GrowthAccountsReceivables},
		{"growth_other_receivables", b.GrowthOtherReceivables},
		{"growth_prepaids", b.GrowthPrepaids},
		{"growth_total_payables", b.GrowthTotalPayables},
		{"growth_other_payables", b.GrowthOtherPayables},
		{"growth_accrued_expenses", b.GrowthAccruedExpenses},
		{"growth_capital_lease_obligations_current", b.GrowthCapitalLeaseObligationsCurrent},
		{"growth_additional_paid_in_capital", b.GrowthAdditionalPaidInCapital},
		{"growth_treasury_stock", b.GrowthTreasuryStock},
	}
}

func (b *BalanceSheetGrowth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", b.Symbol)
	e.Str("Date", b.Date.Format(DateLayout))
}

type CashFlowStatementGrowth struct {
	Symbol                                         string    `db:"symbol"`
	Date                                           time.Time `db:"date"`
	FiscalYear                                     *string   `db:"fiscal_year"`
	Period                                         *string   `db:"period"`
	ReportedCurrency                               *string   `db:"reported_currency"`
	GrowthNetIncome                                *float64  `db:"growth_net_income"`
	GrowthDepreciationAndAmortization              *float64  `db:"growth_depreciation_and_amortization"`
	GrowthDeferredIncomeTax                        *float64  `db:"growth_deferred_income_tax"`
	GrowthStockBasedCompensation                   *float64  `db:"growth_stock_based_compensation"`
	GrowthChangeInWorkingCapital                   *float64  `db:"growth_change_in_working_capital"`
	GrowthAccountsReceivables                      *float64  `db:"growth_accounts_receivables"`
	GrowthInventory                                *float64  `db:"growth_inventory"`
	GrowthAccountsPayables                         *float64  `db:"growth_accounts_payables"`
	GrowthOtherWorkingCapital                      *float64  `db:"growth_other_working_capital"`
	GrowthOtherNonCashItems                        *float64  `db:"growth_other_non_cash_items"`
	GrowthNetCashProvidedByOperatingActivites      *float64  `db:"growth_net_cash_provided_by_operating_activites"`
	GrowthInvestmentsInPropertyPlantAndEquipment   *float64  `db:"growth_investments_in_property_plant_and_equipment"`
	GrowthAcquisitionsNet                          *float64  `db:"growth_acquisitions_net"`
	GrowthPurchasesOfInvestments                   *float64  `db:"growth_purchases_of_investments"`
	GrowthSalesMaturitiesOfInvestments             *float64  `db:"growth_sales_maturities_of_investments"`
	GrowthOtherInvestingActivites                  *float64  `db:"growth_other_investing_activites"`
	GrowthNetCashUsedForInvestingActivites         *float64  `db:"growth_net_cash_used_for_investing_activites"`
	GrowthDebtRepayment                            *float64  `db:"growth_debt_repayment"`
	GrowthCommonStockIssued                        *float64  `db:"growth_common_stock_issued"`
	GrowthCommonStockRepurchased                   *float64  `db:"growth_common_stock_repurchased"`
	GrowthDividendsPaid                            *float64  `db:"growth_dividends_paid"`
	GrowthOtherFinancingActivites                  *float64  `db:"growth_other_financing_activites"`
	GrowthNetCashUsedProvidedByFinancingActivities *float64  `db:"growth_net_cash_used_provided_by_financing_activities"`
	GrowthEffectOfForexChangesOnCash               *float64  `db:"growth_effect_of_forex_changes_on_cash"`
	GrowthNetChangeInCash                          *float64  `db:"growth_net_change_in_cash"`
	GrowthCashAtEndOfPeriod                        *float64  `db:"growth_cash_at_end_of_period"`
	GrowthCashAtBeginningOfPeriod                  *float64  `db:"growth_cash_at_beginning_of_period"`
	GrowthOperatingCashFlow                        *float64  `db:"growth_operating_cash_flow"`
	GrowthCapitalExpenditure                       *float64  `db:"growth_capital_expenditure"`
	GrowthFreeCashFlow                             *float64  `db:"growth_free_cash_flow"`
	GrowthNetDebtIssuance                          *float64  `db:"growth_net_debt_issuance"`
	GrowthLongTermNetDebtIssuance                  *float64  `db:"growth_long_term_net_debt_issuance"`
	GrowthShortTermNetDebtIssuance                 *float64  `db:"growth_short_term_net_debt_issuance"`
	GrowthNetStockIssuance                         *float64  `db:"growth_net_stock_issuance"`
	GrowthPreferredDividendsPaid                   *float64  `db:"growth_preferred_dividends_paid"`
	GrowthIncomeTaxesPaid                          *float64  `db:"growth_income_taxes_paid"`
	GrowthInterestPaid                             *float64  `db:"growth_interest_paid"`
}

func (c *CashFlowStatementGrowth) Table() string { return "cashflow_statement_growth" }

func (c *CashFlowStatementGrowth) Key() []string { return []string{"symbol", "date"} }

func (c *CashFlowStatementGrowth) EventDate() time.Time { return c.Date }

func (c *CashFlowStatementGrowth) Tag(symbol string) { c.Symbol = symbol }

func (c *CashFlowStatementGrowth) Row() []Field {
	return []Field{
		{"symbol", c.Symbol},
		{"date", c.Date},
		{"fiscal_year", c.FiscalYear},
		{"period", c.Period},
		{"reported_currency", c.ReportedCurrency},
		{"growth_net_income", c.GrowthNetIncome},
		{"growth_depreciation_and_amortization", c.GrowthDepreciationAndAmortization},
		{"growth_deferred_income_tax", c.GrowthDeferredIncomeTax},
		{"growth_stock_based_compensation", c.GrowthStockBasedCompensation},
		{"growth_change_in_working_capital", c.GrowthChangeInWorkingCapital},
		{"growth_accounts_receivables", c.GrowthAccountsReceivables},
		{"growth_inventory", c.GrowthInventory},
		{"growth_accounts_payables", c.GrowthAccountsPayables},
		{"growth_other_working_capital", c.GrowthOtherWorkingCapital},
		{"growth_other_non_cash_items", c.GrowthOtherNonCashItems},
		{"growth_net_cash_provided_by_operating_activites", c.GrowthNetCashProvidedByOperatingActivites},
		{"growth_investments_in_property_plant_and_equipment", c.GrowthInvestmentsInPropertyPlantAndEquipment},
		{"growth_acquisitions_net", c.GrowthAcquisitionsNet},
		{"growth_purchases_of_investments", c.GrowthPurchasesOfInvestments},
		{"growth_sales_maturities_of_investments", c.GrowthSalesMaturitiesOfInvestments},
		{"growth_other_investing_activites", c.GrowthOtherInvestingActivites},
		{"growth_net_cash_used_for_investing_activites", c.GrowthNetCashUsedForInvestingActivites},
		{"growth_debt_repayment", c.GrowthDebtRepayment},
		{"growth_common_stock_issued", c.GrowthCommonStockIssued},
		{"growth_common_stock_repurchased", c.GrowthCommonStockRepurchased},
		{"growth_dividends_paid", c.GrowthDividendsPaid},
		{"growth_other_financing_activites", c.GrowthOtherFinancingActivites},
		{"growth_net_cash_used_provided_by_financing_activities", c.GrowthNetCashUsedProvidedByFinancingActivities},
		{"growth_effect_of_forex_changes_on_cash", c.GrowthEffectOfForexChangesOnCash},
		{"growth_net_change_in_cash", c.GrowthNetChangeInCash},
		{"growth_cash_at_end_of_period", c.GrowthCashAtEndOfPeriod},
		{"growth_cash_at_beginning_of_period", c.GrowthCashAtBeginningOfPeriod},
		{"growth_operating_cash_flow", c.GrowthOperatingCashFlow},
		{"growth_capital_expenditure", c.GrowthCapitalExpenditure},
		{"growth_free_cash_flow", c.GrowthFreeCashFlow},
		{"growth_net_debt_issuance", c.GrowthNetDebtIssuance},
		{"growth_long_term_net_debt_issuance", c.GrowthLongTermNetDebtIssuance},
		{"growth_short_term_net_debt_issuance", c.GrowthShortTermNetDebtIssuance},
		{"growth_net_stock_issuance", c.GrowthNetStockIssuance},
		{"growth_preferred_dividends_paid", c.GrowthPreferredDividendsPaid},
		{"growth_income_taxes_paid", c.GrowthIncomeTaxesPaid},
		{"growth_interest_paid", c.GrowthInterestPaid},
	}
}

func (c *CashFlowStatementGrowth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", c.Symbol)
	e.Str("Date", c.Date.Format(DateLayout))
}
