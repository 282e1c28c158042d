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

func KeyMetrics(raw []fmp.KeyMetrics) []*data.KeyMetrics {
	out := make([]*data.KeyMetrics, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.KeyMetrics{
			Symbol:                   r.Symbol,
			Date:                     date,
			FiscalYear:               Str(r.FiscalYear),
			Period:                   Str(r.Period),
			ReportedCurrency:         Str(r.ReportedCurrency),
			MarketCap:                Float(r.MarketCap),
			EnterpriseValue:          Float(r.EnterpriseValue),
			EVToSales:                Float(r.EVToSales),
			EVToOperatingCashFlow:    Float(r.EVToOperatingCashFlow),
			EVToFreeCashFlow:         Float(r.EVToFreeCashFlow),
			EVToEBITDA:               Float(r.EVToEBITDA),
			NetDebtToEBITDA:          Float(r.NetDebtToEBITDA),
			CurrentRatio:             Float(r.CurrentRatio),
			IncomeQuality:            Float(r.IncomeQuality),
			GrahamNumber:             Float(r.GrahamNumber),
			GrahamNetNet:             Float(r.GrahamNetNet),
			TaxBurden:                Float(r.TaxBurden),
			InterestBurden:           Float(r.InterestBurden),
			WorkingCapital:           Float(r.WorkingCapital),
			InvestedCapital:          Float(r.InvestedCapital),
			ReturnOnAssets:           Float(r.ReturnOnAssets),
			OperatingReturnOnAssets:  Float(r.OperatingReturnOnAssets),
			ReturnOnTangibleAssets:   Float(r.ReturnOnTangibleAssets),
			ReturnOnEquity:           Float(r.ReturnOnEquity),
			ReturnOnInvestedCapital:  Float(r.ReturnOnInvestedCapital),
			ReturnOnCapitalEmployed:  Float(r.ReturnOnCapitalEmployed),
			EarningsYield:            Float(r.EarningsYield),
			FreeCashFlowYield:        Float(r.FreeCashFlowYield),
			CapexToOperatingCashFlow: Float(r.CapexToOperatingCashFlow),
			CapexToDepreciation:      Float(r.CapexToDepreciation),
			CapexToRevenue:           Float(r.CapexToRevenue),
			SGAToRevenue:             Float(r.SGAToRevenue),
			RnDToRevenue:             Float(r.RnDToRevenue),
			SBCToRevenue:             Float(r.SBCToRevenue),
			IntangiblesToTotalAssets: Float(r.IntangiblesToTotalAssets),
			AverageReceivables:       Float(r.AverageReceivables),
			AveragePayables:          Float(r.AveragePayables),
			AverageInventory:         Float(r.AverageInventory),
			DSO:                      Float(r.DSO),
			DPO:                      Float(r.DPO),
			DIO:                      Float(r.DIO),
			OperatingCycle:           Float(r.OperatingCycle),
			CashConversionCycle:      Float(r.CashConversionCycle),
			FCFToEquity:              Float(r.FCFToEquity),
			FCFToFirm:                Float(r.FCFToFirm),
			TangibleAssetValue:       Float(r.TangibleAssetValue),
			NetCurrentAssetValue:     Float(r.NetCurrentAssetValue),
		})
	}
	return out
}

func FinancialRatios(raw []fmp.FinancialRatios) []*data.FinancialRatios {
	out := make([]*data.FinancialRatios, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.FinancialRatios{
			Symbol:                                  r.Symbol,
			Date:                                    date,
			FiscalYear:                              Str(r.FiscalYear),
			Period:                                  Str(r.Period),
			ReportedCurrency:                        Str(r.ReportedCurrency),
			GrossProfitMargin:                       Float(r.GrossProfitMargin),
			EBITMargin:                              Float(r.EBITMargin),
			EBITDAMargin:                            Float(r.EBITDAMargin),
			OperatingProfitMargin:                   Float(r.OperatingProfitMargin),
			PretaxProfitMargin:                      Float(r.PretaxProfitMargin),
			ContinuousOperationsProfitMargin:        Float(r.ContinuousOperationsProfitMargin),
			NetProfitMargin:                         Float(r.NetProfitMargin),
			BottomLineProfitMargin:                  Float(r.BottomLineProfitMargin),
			ReceivablesTurnover:                     Float(r.ReceivablesTurnover),
			PayablesTurnover:                        Float(r.PayablesTurnover),
			InventoryTurnover:                       Float(r.InventoryTurnover),
			FixedAssetTurnover:                      Float(r.FixedAssetTurnover),
			AssetTurnover:                           Float(r.AssetTurnover),
			CurrentRatio:                            Float(r.CurrentRatio),
			QuickRatio:                              Float(r.QuickRatio),
			SolvencyRatio:                           Float(r.SolvencyRatio),
			CashRatio:                               Float(r.CashRatio),
			PriceToEarningsRatio:                    Float(r.PriceToEarningsRatio),
			PriceToEarningsGrowthRatio:              Float(r.PriceToEarningsGrowthRatio),
			ForwardPriceToEarningsGrowthRatio:       Float(r.ForwardPriceToEarningsGrowthRatio),
			PriceToBookRatio:                        Float(r.PriceToBookRatio),
			PriceToSalesRatio:                       Float(r.PriceToSalesRatio),
			PriceToFreeCashFlowRatio:                Float(r.PriceToFreeCashFlowRatio),
			PriceToOperatingCashFlowRatio:           Float(r.PriceToOperatingCashFlowRatio),
			DebtToAssetsRatio:                       Float(r.DebtToAssetsRatio),
			DebtToEquityRatio:                       Float(r.DebtToEquityRatio),
			DebtToCapitalRatio:                      Float(r.DebtToCapitalRatio),
			LongTermDebtToCapitalRatio:              Float(r.LongTermDebtToCapitalRatio),
			FinancialLeverageRatio:                  Float(r.FinancialLeverageRatio),
			DebtToMarketCap:                         Float(r.DebtToMarketCap),
			WorkingCapitalTurnoverRatio:             Float(r.WorkingCapitalTurnoverRatio),
			OperatingCashFlowRatio:                  Float(r.OperatingCashFlowRatio),
			OperatingCashFlowSalesRatio:             Float(r.OperatingCashFlowSalesRatio),
			FreeCashFlowOperatingCashFlowRatio:      Float(r.FreeCashFlowOperatingCashFlowRatio),
			DebtServiceCoverageRatio:                Float(r.DebtServiceCoverageRatio),
			InterestCoverageRatio:                   Float(r.InterestCoverageRatio),
			ShortTermOperatingCashFlowCoverageRatio: Float(r.ShortTermOperatingCashFlowCoverageRatio),
			OperatingCashFlowCoverageRatio:          Float(r.OperatingCashFlowCoverageRatio),
			CapitalExpenditureCoverageRatio:         Float(r.CapitalExpenditureCoverageRatio),
			DividendPaidAndCapexCoverageRatio:       Float(r.DividendPaidAndCapexCoverageRatio),
			DividendPayoutRatio:                     Float(r.DividendPayoutRatio),
			DividendYield:                           Float(r.DividendYield),
			DividendYieldPercentage:                 Float(r.DividendYieldPercentage),
			RevenuePerShare:                         Float(r.RevenuePerShare),
			NetIncomePerShare:                       Float(r.NetIncomePerShare),
			InterestDebtPerShare:                    Float(r.InterestDebtPerShare),
			CashPerShare:                            Float(r.CashPerShare),
			BookValuePerShare:                       Float(r.BookValuePerShare),
			TangibleBookValuePerShare:               Float(r.TangibleBookValuePerShare),
			ShareholdersEquityPerShare:              Float(r.ShareholdersEquityPerShare),
			OperatingCashFlowPerShare:               Float(r.OperatingCashFlowPerShare),
			CapexPerShare:                           Float(r.CapexPerShare),
			FreeCashFlowPerShare:                    Float(r.FreeCashFlowPerShare),
			NetIncomePerEBT:                         Float(r.NetIncomePerEBT),
			EBTPerEBIT:                              Float(r.EBTPerEBIT),
			PriceToFairValue:                        Float(r.PriceToFairValue),
			EffectiveTaxRate:                        Float(r.EffectiveTaxRate),
			EnterpriseValueMultiple:                 Float(r.EnterpriseValueMultiple),
		})
	}
	return out
}

func Earnings(raw []fmp.Earnings) []*data.Earnings {
	out := make([]*data.Earnings, 0, len(raw))
	for _, r := range raw {
		date, ok := Date(r.Date)
		if !ok {
			continue
		}

		out = append(out, &data.Earnings{
			Symbol:           r.Symbol,
			Date:             date,
			EPSActual:        Float(r.EPSActual),
			EPSEstimated:     Float(r.EPSEstimated),
			RevenueActual:    Float(r.RevenueActual),
			RevenueEstimated: Float(r.RevenueEstimated),
		})
	}
	return out
}
