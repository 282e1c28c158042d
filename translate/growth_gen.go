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

func FinancialStatementGrowth(raw []fmp.FinancialStatementGrowth) []*data.FinancialStatementGrowth {
	out := make([]*data.FinancialStatementGrowth, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.FinancialStatementGrowth{
			Symbol:                                  r.Symbol,
			Date:                                    date,
			FiscalYear:                              Str(r.FiscalYear),
			Period:                                  Str(r.Period),
			ReportedCurrency:                        Str(r.ReportedCurrency),
			RevenueGrowth:                           Float(r.RevenueGrowth),
			GrossProfitGrowth:                       Float(r.GrossProfitGrowth),
			EBITGrowth:                              Float(r.EBITGrowth),
			OperatingIncomeGrowth:                   Float(r.OperatingIncomeGrowth),
			NetIncomeGrowth:                         Float(r.NetIncomeGrowth),
			EPSGrowth:                               Float(r.EPSGrowth),
			EPSDilutedGrowth:                        Float(r.EPSDilutedGrowth),
			WeightedAverageSharesGrowth:             Float(r.WeightedAverageSharesGrowth),
			WeightedAverageSharesDilutedGrowth:      Float(r.WeightedAverageSharesDilutedGrowth),
			DividendsPerShareGrowth:                 Float(r.DividendsPerShareGrowth),
			OperatingCashFlowGrowth:                 Float(r.OperatingCashFlowGrowth),
			ReceivablesGrowth:                       Float(r.ReceivablesGrowth),
			InventoryGrowth:                         Float(r.InventoryGrowth),
			AssetGrowth:                             Float(r.AssetGrowth),
			BookValuePerShareGrowth:                 Float(r.BookValuePerShareGrowth),
			DebtGrowth:                              Float(r.DebtGrowth),
			RDExpenseGrowth:                         Float(r.RDExpenseGrowth),
			SGAExpensesGrowth:                       Float(r.SGAExpensesGrowth),
			FreeCashFlowGrowth:                      Float(r.FreeCashFlowGrowth),
			TenYRevenueGrowthPerShare:               Float(r.TenYRevenueGrowthPerShare),
			FiveYRevenueGrowthPerShare:              Float(r.FiveYRevenueGrowthPerShare),
			ThreeYRevenueGrowthPerShare:             Float(r.ThreeYRevenueGrowthPerShare),
			TenYOperatingCFGrowthPerShare:           Float(r.TenYOperatingCFGrowthPerShare),
			FiveYOperatingCFGrowthPerShare:          Float(r.FiveYOperatingCFGrowthPerShare),
			ThreeYOperatingCFGrowthPerShare:         Float(r.ThreeYOperatingCFGrowthPerShare),
			TenYNetIncomeGrowthPerShare:             Float(r.TenYNetIncomeGrowthPerShare),
			FiveYNetIncomeGrowthPerShare:            Float(r.FiveYNetIncomeGrowthPerShare),
			ThreeYNetIncomeGrowthPerShare:           Float(r.ThreeYNetIncomeGrowthPerShare),
			TenYShareholdersEquityGrowthPerShare:    Float(r.TenYShareholdersEquityGrowthPerShare),
			FiveYShareholdersEquityGrowthPerShare:   Float(r.FiveYShareholdersEquityGrowthPerShare),
			ThreeYShareholdersEquityGrowthPerShare:  Float(r.ThreeYShareholdersEquityGrowthPerShare),
			TenYDividendPerShareGrowthPerShare:      Float(r.TenYDividendPerShareGrowthPerShare),
			FiveYDividendPerShareGrowthPerShare:     Float(r.FiveYDividendPerShareGrowthPerShare),
			ThreeYDividendPerShareGrowthPerShare:    Float(r.ThreeYDividendPerShareGrowthPerShare),
			EBITDAGrowth:                            Float(r.EBITDAGrowth),
			GrowthCapitalExpenditure:                Float(r.GrowthCapitalExpenditure),
			TenYBottomLineNetIncomeGrowthPerShare:   Float(r.TenYBottomLineNetIncomeGrowthPerShare),
			FiveYBottomLineNetIncomeGrowthPerShare:  Float(r.FiveYBottomLineNetIncomeGrowthPerShare),
			ThreeYBottomLineNetIncomeGrowthPerShare: Float(r.ThreeYBottomLineNetIncomeGrowthPerShare),
		})
	}
	return out
}

func IncomeStatementGrowth(raw []fmp.IncomeStatementGrowth) []*data.IncomeStatementGrowth {
	out := make([]*data.IncomeStatementGrowth, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.IncomeStatementGrowth{
			Symbol:                                    r.Symbol,
			Date:                                      date,
			FiscalYear:                                Str(r.FiscalYear),
			Period:                                    Str(r.Period),
			ReportedCurrency:                          Str(r.ReportedCurrency),
			GrowthRevenue:                             Float(r.GrowthRevenue),
			GrowthCostOfRevenue:                       Float(r.GrowthCostOfRevenue),
			GrowthGrossProfit:                         Float(r.GrowthGrossProfit),
			GrowthGrossProfitRatio:                    Float(r.GrowthGrossProfitRatio),
			GrowthResearchAndDevelopmentExpenses:      Float(r.GrowthResearchAndDevelopmentExpenses),
			GrowthGeneralAndAdministrativeExpenses:    Float(r.GrowthGeneralAndAdministrativeExpenses),
			GrowthSellingAndMarketingExpenses:         Float(r.GrowthSellingAndMarketingExpenses),
			GrowthOtherExpenses:                       Float(r.GrowthOtherExpenses),
			GrowthOperatingExpenses:                   Float(r.GrowthOperatingExpenses),
			GrowthCostAndExpenses:                     Float(r.GrowthCostAndExpenses),
			GrowthInterestIncome:                      Float(r.GrowthInterestIncome),
			GrowthInterestExpense:                     Float(r.GrowthInterestExpense),
			GrowthDepreciationAndAmortization:         Float(r.GrowthDepreciationAndAmortization),
			GrowthEBITDA:                              Float(r.GrowthEBITDA),
			GrowthOperatingIncome:                     Float(r.GrowthOperatingIncome),
			GrowthIncomeBeforeTax:                     Float(r.GrowthIncomeBeforeTax),
			GrowthIncomeTaxExpense:                    Float(r.GrowthIncomeTaxExpense),
			GrowthNetIncome:                           Float(r.GrowthNetIncome),
			GrowthEPS:                                 Float(r.GrowthEPS),
			GrowthEPSDiluted:                          Float(r.GrowthEPSDiluted),
			GrowthWeightedAverageShsOut:               Float(r.GrowthWeightedAverageShsOut),
			GrowthWeightedAverageShsOutDiluted:        Float(r.GrowthWeightedAverageShsOutDiluted),
			GrowthEBIT:                                Float(r.GrowthEBIT),
			GrowthNonOperatingIncomeExcludingInterest: Float(r.GrowthNonOperatingIncomeExcludingInterest),
			GrowthNetInterestIncome:                   Float(r.GrowthNetInterestIncome),
			GrowthTotalOtherIncomeExpensesNet:         Float(r.GrowthTotalOtherIncomeExpensesNet),
			GrowthNetIncomeFromContinuingOperations:   Float(r.GrowthNetIncomeFromContinuingOperations),
			GrowthOtherAdjustmentsToNetIncome:         Float(r.GrowthOtherAdjustmentsToNetIncome),
			GrowthNetIncomeDeductions:                 Float(r.GrowthNetIncomeDeductions),
		})
	}
	return out
}

func BalanceSheetGrowth(raw []fmp.BalanceSheetGrowth) []*data.BalanceSheetGrowth {
	out := make([]*data.BalanceSheetGrowth, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.BalanceSheetGrowth{
			Symbol:                                        r.Symbol,
			Date:                                          date,
			FiscalYear:                                    Str(r.FiscalYear),
			Period:                                        Str(r.Period),
			ReportedCurrency:                              Str(r.ReportedCurrency),
			GrowthCashAndCashEquivalents:                  Float(r.GrowthCashAndCashEquivalents),
			GrowthShortTermInvestments:                    Float(r.GrowthShortTermInvestments),
			GrowthCashAndShortTermInvestments:             Float(r.GrowthCashAndShortTermInvestments),
			GrowthNetReceivables:                          Float(r.GrowthNetReceivables),
			GrowthInventory:                               Float(r.GrowthInventory),
			GrowthOtherCurrentAssets:                      Float(r.GrowthOtherCurrentAssets),
			GrowthTotalCurrentAssets:                      Float(r.GrowthTotalCurrentAssets),
			GrowthPropertyPlantEquipmentNet:               Float(r.GrowthPropertyPlantEquipmentNet),
			GrowthGoodwill:                                Float(r.GrowthGoodwill),
			GrowthIntangibleAssets:                        Float(r.GrowthIntangibleAssets),
			GrowthGoodwillAndIntangibleAssets:             Float(r.GrowthGoodwillAndIntangibleAssets),
			GrowthLongTermInvestments:                     Float(r.GrowthLongTermInvestments),
			GrowthTaxAssets:                               Float(r.GrowthTaxAssets),
			GrowthOtherNonCurrentAssets:                   Float(r.GrowthOtherNonCurrentAssets),
			GrowthTotalNonCurrentAssets:                   Float(r.GrowthTotalNonCurrentAssets),
			GrowthOtherAssets:                             Float(r.GrowthOtherAssets),
			GrowthTotalAssets:                             Float(r.GrowthTotalAssets),
			GrowthAccountPayables:                         Float(r.GrowthAccountPayables),
			GrowthShortTermDebt:                           Float(r.GrowthShortTermDebt),
			GrowthTaxPayables:                             Float(r.GrowthTaxPayables),
			GrowthDeferredRevenue:                         Float(r.GrowthDeferredRevenue),
			GrowthOtherCurrentLiabilities:                 Float(r.GrowthOtherCurrentLiabilities),
			GrowthTotalCurrentLiabilities:                 Float(r.GrowthTotalCurrentLiabilities),
			GrowthLongTermDebt:                            Float(r.GrowthLongTermDebt),
			GrowthDeferredRevenueNonCurrent:               Float(r.GrowthDeferredRevenueNonCurrent),
			GrowthDeferredTaxLiabilitiesNonCurrent:        Float(r.GrowthDeferredTaxLiabilitiesNonCurrent),
			GrowthOtherNonCurrentLiabilities:              Float(r.GrowthOtherNonCurrentLiabilities),
			GrowthTotalNonCurrentLiabilities:              Float(r.GrowthTotalNonCurrentLiabilities),
			GrowthOtherLiabilities:                        Float(r.GrowthOtherLiabilities),
			GrowthTotalLiabilities:                        Float(r.GrowthTotalLiabilities),
			GrowthPreferredStock:                          Float(r.GrowthPreferredStock),
			GrowthCommonStock:                             Float(r.GrowthCommonStock),
			GrowthRetainedEarnings:                        Float(r.GrowthRetainedEarnings),
			GrowthAccumulatedOtherComprehensiveIncomeLoss: Float(r.GrowthAccumulatedOtherComprehensiveIncomeLoss),
			GrowthOtherTotalStockholdersEquity:            Float(r.GrowthOtherTotalStockholdersEquity),
			GrowthTotalStockholdersEquity:                 Float(r.GrowthTotalStockholdersEquity),
			GrowthMinorityInterest:                        Float(r.GrowthMinorityInterest),
			GrowthTotalEquity:                             Float(r.GrowthTotalEquity),
			GrowthTotalLiabilitiesAndStockholdersEquity:   Float(r.GrowthTotalLiabilitiesAndStockholdersEquity),
			GrowthTotalInvestments:                        Float(r.GrowthTotalInvestments),
			GrowthTotalDebt:                               Float(r.GrowthTotalDebt),
			GrowthNetDebt:                                 Float(r.GrowthNetDebt),
			GrowthAccountsReceivables:                     Float(r.GrowthAccountsReceivables),
			GrowthOtherReceivables:                        Float(r.GrowthOtherReceivables),
			GrowthPrepaids:                                Float(r.GrowthPrepaids),
			GrowthTotalPayables:                           Float(r.GrowthTotalPayables),
			GrowthOtherPayables:                           Float(r.GrowthOtherPayables),
			GrowthAccruedExpenses:                         Float(r.GrowthAccruedExpenses),
			GrowthCapitalLeaseObligationsCurrent:          Float(r.GrowthCapitalLeaseObligationsCurrent),
			GrowthAdditionalPaidInCapital:                 Float(r.GrowthAdditionalPaidInCapital),
			GrowthTreasuryStock:                           Float(r.GrowthTreasuryStock),
		})
	}
	return out
}

func CashFlowStatementGrowth(raw []fmp.CashFlowStatementGrowth) []*data.CashFlowStatementGrowth {
	out := make([]*data.CashFlowStatementGrowth, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.CashFlowStatementGrowth{
			Symbol:                            r.Symbol,
			Date:                              date,
			FiscalYear:                        Str(r.FiscalYear),
			Period:                            Str(r.Period),
			ReportedCurrency:                  Str(r.ReportedCurrency),
			GrowthNetIncome:                   Float(r.GrowthNetIncome),
			GrowthDepreciationAndAmortization: Float(r.GrowthDepreciationAndAmortization),
			GrowthDeferredIncomeTax:           Float(r.GrowthDeferredIncomeTax),
			GrowthStockBasedCompensation:      Float(r.GrowthStockBasedCompensation),
			GrowthChangeInWorkingCapital:      Float(r.GrowthChangeInWorkingCapital),
			GrowthAccountsReceivables:         Float(r.GrowthAccountsReceivables),
			GrowthInventory:                   Float(r.GrowthInventory),
			GrowthAccountsPayables:            Float(r.GrowthAccountsPayables),
			GrowthOtherWorkingCapital:         Float(r.GrowthOtherWorkingCapital),
			GrowthOtherNonCashItems:           Float(r.GrowthOtherNonCashItems),
			GrowthNetCashProvidedByOperatingActivites: Float(r.GrowthNetCashProvidedByOperatingActivites),
			GrowthInvestmentsInPropertyPlantAndEquipment:   Float(r.GrowthInvestmentsInPropertyPlantAndEquipment),
			GrowthAcquisitionsNet:                          Float(r.GrowthAcquisitionsNet),
			GrowthPurchasesOfInvestments:                   Float(r.GrowthPurchasesOfInvestments),
			GrowthSalesMaturitiesOfInvestments:             Float(r.GrowthSalesMaturitiesOfInvestments),
			GrowthOtherInvestingActivites:                  Float(r.GrowthOtherInvestingActivites),
			GrowthNetCashUsedForInvestingActivites:         Float(r.GrowthNetCashUsedForInvestingActivites),
			GrowthDebtRepayment:                            Float(r.GrowthDebtRepayment),
			GrowthCommonStockIssued:                        Float(r.GrowthCommonStockIssued),
			GrowthCommonStockRepurchased:                   Float(r.GrowthCommonStockRepurchased),
			GrowthDividendsPaid:                            Float(r.GrowthDividendsPaid),
			GrowthOtherFinancingActivites:                  Float(r.GrowthOtherFinancingActivites),
			GrowthNetCashUsedProvidedByFinancingActivities: Float(r.GrowthNetCashUsedProvidedByFinancingActivities),
			GrowthEffectOfForexChangesOnCash:               Float(r.GrowthEffectOfForexChangesOnCash),
			GrowthNetChangeInCash:                          Float(r.GrowthNetChangeInCash),
			GrowthCashAtEndOfPeriod:                        Float(r.GrowthCashAtEndOfPeriod),
			GrowthCashAtBeginningOfPeriod:                  Float(r.GrowthCashAtBeginningOfPeriod),
			GrowthOperatingCashFlow:                        Float(r.GrowthOperatingCashFlow),
			GrowthCapitalExpenditure:                       Float(r.GrowthCapitalExpenditure),
			GrowthFreeCashFlow:                             Float(r.GrowthFreeCashFlow),
			GrowthNetDebtIssuance:                          Float(r.GrowthNetDebtIssuance),
			GrowthLongTermNetDebtIssuance:                  Float(r.GrowthLongTermNetDebtIssuance),
			GrowthShortTermNetDebtIssuance:                 Float(r.GrowthShortTermNetDebtIssuance),
			GrowthNetStockIssuance:                         Float(r.GrowthNetStockIssuance),
			GrowthPreferredDividendsPaid:                   Float(r.GrowthPreferredDividendsPaid),
			GrowthIncomeTaxesPaid:                          Float(r.GrowthIncomeTaxesPaid),
			GrowthInterestPaid:                             Float(r.GrowthInterestPaid),
		})
	}
	return out
}
