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

// company reference data

type Stock struct {
	Symbol            string `json:"symbol"`
	CompanyName       Value  `json:"companyName"`
	Exchange          Value  `json:"exchange"`
	ExchangeShortName Value  `json:"exchangeShortName"`
	Industry          Value  `json:"industry"`
	Sector            Value  `json:"sector"`
	Country           Value  `json:"country"`
	MarketCap         Value  `json:"marketCap"`
	Beta              Value  `json:"beta"`
	Price             Value  `json:"price"`
	IsETF             Value  `json:"isEtf"`
	IsFund            Value  `json:"isFund"`
	IsActivelyTrading Value  `json:"isActivelyTrading"`
}

type EmployeeCount struct {
	Symbol         string `json:"symbol"`
	Date           string `json:"filingDate"`
	PeriodOfReport Value  `json:"periodOfReport"`
	FormType       Value  `json:"formType"`
	EmployeeCount  Value  `json:"employeeCount"`
	Source         Value  `json:"source"`
}

// analyst estimates and ratings

type AnalystEstimate struct {
	Symbol             string `json:"symbol"`
	Date               string `json:"date"`
	RevenueLow         Value  `json:"revenueLow"`
	RevenueHigh        Value  `json:"revenueHigh"`
	RevenueAvg         Value  `json:"revenueAvg"`
	EBITDALow          Value  `json:"ebitdaLow"`
	EBITDAHigh         Value  `json:"ebitdaHigh"`
	EBITDAAvg          Value  `json:"ebitdaAvg"`
	EBITLow            Value  `json:"ebitLow"`
	EBITHigh           Value  `json:"ebitHigh"`
	EBITAvg            Value  `json:"ebitAvg"`
	NetIncomeLow       Value  `json:"netIncomeLow"`
	NetIncomeHigh      Value  `json:"netIncomeHigh"`
	NetIncomeAvg       Value  `json:"netIncomeAvg"`
	SGAExpenseLow      Value  `json:"sgaExpenseLow"`
	SGAExpenseHigh     Value  `json:"sgaExpenseHigh"`
	SGAExpenseAvg      Value  `json:"sgaExpenseAvg"`
	EPSLow             Value  `json:"epsLow"`
	EPSHigh            Value  `json:"epsHigh"`
	EPSAvg             Value  `json:"epsAvg"`
	NumAnalystsRevenue Value  `json:"numAnalystsRevenue"`
	NumAnalystsEPS     Value  `json:"numAnalystsEps"`
}

type Rating struct {
	Symbol                  string `json:"symbol"`
	Date                    string `json:"date"`
	Rating                  Value  `json:"rating"`
	OverallScore            Value  `json:"overallScore"`
	DiscountedCashFlowScore Value  `json:"discountedCashFlowScore"`
	ReturnOnEquityScore     Value  `json:"returnOnEquityScore"`
	ReturnOnAssetsScore     Value  `json:"returnOnAssetsScore"`
	DebtToEquityScore       Value  `json:"debtToEquityScore"`
	PriceToEarningsScore    Value  `json:"priceToEarningsScore"`
	PriceToBookScore        Value  `json:"priceToBookScore"`
}

// analyst grades and price targets

type Grade struct {
	Symbol     string `json:"symbol"`
	Date       string `json:"date"`
	StrongBuy  Value  `json:"analystRatingsStrongBuy"`
	Buy        Value  `json:"analystRatingsBuy"`
	Hold       Value  `json:"analystRatingsHold"`
	Sell       Value  `json:"analystRatingsSell"`
	StrongSell Value  `json:"analystRatingsStrongSell"`
}

type GradesConsensus struct {
	Symbol     string `json:"symbol"`
	StrongBuy  Value  `json:"strongBuy"`
	Buy        Value  `json:"buy"`
	Hold       Value  `json:"hold"`
	Sell       Value  `json:"sell"`
	StrongSell Value  `json:"strongSell"`
	Consensus  Value  `json:"consensus"`
}

type PriceTargetConsensus struct {
	Symbol          string `json:"symbol"`
	TargetHigh      Value  `json:"targetHigh"`
	TargetLow       Value  `json:"targetLow"`
	TargetConsensus Value  `json:"targetConsensus"`
	TargetMedian    Value  `json:"targetMedian"`
}

type PriceTargetSummary struct {
	Symbol                    string `json:"symbol"`
	LastMonthCount            Value  `json:"lastMonthCount"`
	LastMonthAvgPriceTarget   Value  `json:"lastMonthAvgPriceTarget"`
	LastQuarterCount          Value  `json:"lastQuarterCount"`
	LastQuarterAvgPriceTarget Value  `json:"lastQuarterAvgPriceTarget"`
	LastYearCount             Value  `json:"lastYearCount"`
	LastYearAvgPriceTarget    Value  `json:"lastYearAvgPriceTarget"`
	AllTimeCount              Value  `json:"allTimeCount"`
	AllTimeAvgPriceTarget     Value  `json:"allTimeAvgPriceTarget"`
}

// financial metrics and ratios

type KeyMetrics struct {
	Symbol                   string `json:"symbol"`
	Date                     string `json:"date"`
	FiscalYear               Value  `json:"fiscalYear"`
	Period                   Value  `json:"period"`
	ReportedCurrency         Value  `json:"reportedCurrency"`
	MarketCap                Value  `json:"marketCap"`
	EnterpriseValue          Value  `json:"enterpriseValue"`
	EVToSales                Value  `json:"evToSales"`
	EVToOperatingCashFlow    Value  `json:"evToOperatingCashFlow"`
	EVToFreeCashFlow         Value  `json:"evToFreeCashFlow"`
	EVToEBITDA               Value  `json:"evToEBITDA"`
	NetDebtToEBITDA          Value  `json:"netDebtToEBITDA"`
	CurrentRatio             Value  `json:"currentRatio"`
	IncomeQuality            Value  `json:"incomeQuality"`
	GrahamNumber             Value  `json:"grahamNumber"`
	GrahamNetNet             Value  `json:"grahamNetNet"`
	TaxBurden                Value  `json:"taxBurden"`
	InterestBurden           Value  `json:"interestBurden"`
	WorkingCapital           Value  `json:"workingCapital"`
	InvestedCapital          Value  `json:"investedCapital"`
	ReturnOnAssets           Value  `json:"returnOnAssets"`
	OperatingReturnOnAssets  Value  `json:"operatingReturnOnAssets"`
	ReturnOnTangibleAssets   Value  `json:"returnOnTangibleAssets"`
	ReturnOnEquity           Value  `json:"returnOnEquity"`
	ReturnOnInvestedCapital  Value  `json:"returnOnInvestedCapital"`
	ReturnOnCapitalEmployed  Value  `json:"returnOnCapitalEmployed"`
	EarningsYield            Value  `json:"earningsYield"`
	FreeCashFlowYield        Value  `json:"freeCashFlowYield"`
	CapexToOperatingCashFlow Value  `json:"capexToOperatingCashFlow"`
	CapexToDepreciation      Value  `json:"capexToDepreciation"`
	CapexToRevenue           Value  `json:"capexToRevenue"`
	SGAToRevenue             Value  `json:"salesGeneralAndAdministrativeToRevenue"`
	RnDToRevenue             Value  `json:"researchAndDevelopementToRevenue"`
	SBCToRevenue             Value  `json:"stockBasedCompensationToRevenue"`
	IntangiblesToTotalAssets Value  `json:"intangiblesToTotalAssets"`
	AverageReceivables       Value  `json:"averageReceivables"`
	AveragePayables          Value  `json:"averagePayables"`
	AverageInventory         Value  `json:"averageInventory"`
	DSO                      Value  `json:"daysOfSalesOutstanding"`
	DPO                      Value  `json:"daysOfPayablesOutstanding"`
	DIO                      Value  `json:"daysOfInventoryOutstanding"`
	OperatingCycle           Value  `json:"operatingCycle"`
	CashConversionCycle      Value  `json:"cashConversionCycle"`
	FCFToEquity              Value  `json:"freeCashFlowToEquity"`
	FCFToFirm                Value  `json:"freeCashFlowToFirm"`
	TangibleAssetValue       Value  `json:"tangibleAssetValue"`
	NetCurrentAssetValue     Value  `json:"netCurrentAssetValue"`
}

type FinancialRatios struct {
	Symbol                                  string `json:"symbol"`
	Date                                    string `json:"date"`
	FiscalYear                              Value  `json:"fiscalYear"`
	Period                                  Value  `json:"period"`
	ReportedCurrency                        Value  `json:"reportedCurrency"`
	GrossProfitMargin                       Value  `json:"grossProfitMargin"`
	EBITMargin                              Value  `json:"ebitMargin"`
	EBITDAMargin                            Value  `json:"ebitdaMargin"`
	OperatingProfitMargin                   Value  `json:"operatingProfitMargin"`
	PretaxProfitMargin                      Value  `json:"pretaxProfitMargin"`
	ContinuousOperationsProfitMargin        Value  `json:"continuousOperationsProfitMargin"`
	NetProfitMargin                         Value  `json:"netProfitMargin"`
	BottomLineProfitMargin                  Value  `json:"bottomLineProfitMargin"`
	ReceivablesTurnover                     Value  `json:"receivablesTurnover"`
	PayablesTurnover                        Value  `json:"payablesTurnover"`
	InventoryTurnover                       Value  `json:"inventoryTurnover"`
	FixedAssetTurnover                      Value  `json:"fixedAssetTurnover"`
	AssetTurnover                           Value  `json:"assetTurnover"`
	CurrentRatio                            Value  `json:"currentRatio"`
	QuickRatio                              Value  `json:"quickRatio"`
	SolvencyRatio                           Value  `json:"solvencyRatio"`
	CashRatio                               Value  `json:"cashRatio"`
	PriceToEarningsRatio                    Value  `json:"priceToEarningsRatio"`
	PriceToEarningsGrowthRatio              Value  `json:"priceToEarningsGrowthRatio"`
	ForwardPriceToEarningsGrowthRatio       Value  `json:"forwardPriceToEarningsGrowthRatio"`
	PriceToBookRatio                        Value  `json:"priceToBookRatio"`
	PriceToSalesRatio                       Value  `json:"priceToSalesRatio"`
	PriceToFreeCashFlowRatio                Value  `json:"priceToFreeCashFlowRatio"`
	PriceToOperatingCashFlowRatio           Value  `json:"priceToOperatingCashFlowRatio"`
	DebtToAssetsRatio                       Value  `json:"debtToAssetsRatio"`
	DebtToEquityRatio                       Value  `json:"debtToEquityRatio"`
	DebtToCapitalRatio                      Value  `json:"debtToCapitalRatio"`
	LongTermDebtToCapitalRatio              Value  `json:"longTermDebtToCapitalRatio"`
	FinancialLeverageRatio                  Value  `json:"financialLeverageRatio"`
	DebtToMarketCap                         Value  `json:"debtToMarketCap"`
	WorkingCapitalTurnoverRatio             Value  `json:"workingCapitalTurnoverRatio"`
	OperatingCashFlowRatio                  Value  `json:"operatingCashFlowRatio"`
	OperatingCashFlowSalesRatio             Value  `json:"operatingCashFlowSalesRatio"`
	FreeCashFlowOperatingCashFlowRatio      Value  `json:"freeCashFlowOperatingCashFlowRatio"`
	DebtServiceCoverageRatio                Value  `json:"debtServiceCoverageRatio"`
	InterestCoverageRatio                   Value  `json:"interestCoverageRatio"`
	ShortTermOperatingCashFlowCoverageRatio Value  `json:"shortTermOperatingCashFlowCoverageRatio"`
	OperatingCashFlowCoverageRatio          Value  `json:"operatingCashFlowCoverageRatio"`
	CapitalExpenditureCoverageRatio         Value  `json:"capitalExpenditureCoverageRatio"`
	DividendPaidAndCapexCoverageRatio       Value  `json:"dividendPaidAndCapexCoverageRatio"`
	DividendPayoutRatio                     Value  `json:"dividendPayoutRatio"`
	DividendYield                           Value  `json:"dividendYield"`
	DividendYieldPercentage                 Value  `json:"dividendYieldPercentage"`
	RevenuePerShare                         Value  `json:"revenuePerShare"`
	NetIncomePerShare                       Value  `json:"netIncomePerShare"`
	InterestDebtPerShare                    Value  `json:"interestDebtPerShare"`
	CashPerShare                            Value  `json:"cashPerShare"`
	BookValuePerShare                       Value  `json:"bookValuePerShare"`
	TangibleBookValuePerShare               Value  `json:"tangibleBookValuePerShare"`
	ShareholdersEquityPerShare              Value  `json:"shareholdersEquityPerShare"`
	OperatingCashFlowPerShare               Value  `json:"operatingCashFlowPerShare"`
	CapexPerShare                           Value  `json:"capexPerShare"`
	FreeCashFlowPerShare                    Value  `json:"freeCashFlowPerShare"`
	NetIncomePerEBT                         Value  `json:"netIncomePerEBT"`
	EBTPerEBIT                              Value  `json:"ebtPerEbit"`
	PriceToFairValue                        Value  `json:"priceToFairValue"`
	EffectiveTaxRate                        Value  `json:"effectiveTaxRate"`
	EnterpriseValueMultiple                 Value  `json:"enterpriseValueMultiple"`
}

type Earnings struct {
	Symbol           string `json:"symbol"`
	Date             string `json:"date"`
	EPSActual        Value  `json:"epsActual"`
	EPSEstimated     Value  `json:"epsEstimated"`
	RevenueActual    Value  `json:"revenueActual"`
	RevenueEstimated Value  `json:"revenueEstimated"`
}

// financial statement growth

type FinancialStatementGrowth struct {
	Symbol                                  string `json:"symbol"`
	Date                                    string `json:"date"`
	FiscalYear                              Value  `json:"fiscalYear"`
	Period                                  Value  `json:"period"`
	ReportedCurrency                        Value  `json:"reportedCurrency"`
	RevenueGrowth                           Value  `json:"revenueGrowth"`
	GrossProfitGrowth                       Value  `json:"grossProfitGrowth"`
	EBITGrowth                              Value  `json:"ebitgrowth"`
	OperatingIncomeGrowth                   Value  `json:"operatingIncomeGrowth"`
	NetIncomeGrowth                         Value  `json:"netIncomeGrowth"`
	EPSGrowth                               Value  `json:"epsgrowth"`
	EPSDilutedGrowth                        Value  `json:"epsdilutedGrowth"`
	WeightedAverageSharesGrowth             Value  `json:"weightedAverageSharesGrowth"`
	WeightedAverageSharesDilutedGrowth      Value  `json:"weightedAverageSharesDilutedGrowth"`
	DividendsPerShareGrowth                 Value  `json:"dividendsPerShareGrowth"`
	OperatingCashFlowGrowth                 Value  `json:"operatingCashFlowGrowth"`
	ReceivablesGrowth                       Value  `json:"receivablesGrowth"`
	InventoryGrowth                         Value  `json:"inventoryGrowth"`
	AssetGrowth                             Value  `json:"assetGrowth"`
	BookValuePerShareGrowth                 Value  `json:"bookValueperShareGrowth"`
	DebtGrowth                              Value  `json:"debtGrowth"`
	RDExpenseGrowth                         Value  `json:"rdexpenseGrowth"`
	SGAExpensesGrowth                       Value  `json:"sgaexpensesGrowth"`
	FreeCashFlowGrowth                      Value  `json:"freeCashFlowGrowth"`
	TenYRevenueGrowthPerShare               Value  `json:"tenYRevenueGrowthPerShare"`
	FiveYRevenueGrowthPerShare              Value  `json:"fiveYRevenueGrowthPerShare"`
	ThreeYRevenueGrowthPerShare             Value  `json:"threeYRevenueGrowthPerShare"`
	TenYOperatingCFGrowthPerShare           Value  `json:"tenYOperatingCFGrowthPerShare"`
	FiveYOperatingCFGrowthPerShare          Value  `json:"fiveYOperatingCFGrowthPerShare"`
	ThreeYOperatingCFGrowthPerShare         Value  `json:"threeYOperatingCFGrowthPerShare"`
	TenYNetIncomeGrowthPerShare             Value  `json:"tenYNetIncomeGrowthPerShare"`
	FiveYNetIncomeGrowthPerShare            Value  `json:"fiveYNetIncomeGrowthPerShare"`
	ThreeYNetIncomeGrowthPerShare           Value  `json:"threeYNetIncomeGrowthPerShare"`
	TenYShareholdersEquityGrowthPerShare    Value  `json:"tenYShareholdersEquityGrowthPerShare"`
	FiveYShareholdersEquityGrowthPerShare   Value  `json:"fiveYShareholdersEquityGrowthPerShare"`
	ThreeYShareholdersEquityGrowthPerShare  Value  `json:"threeYShareholdersEquityGrowthPerShare"`
	TenYDividendPerShareGrowthPerShare      Value  `json:"tenYDividendperShareGrowthPerShare"`
	FiveYDividendPerShareGrowthPerShare     Value  `json:"fiveYDividendperShareGrowthPerShare"`
	ThreeYDividendPerShareGrowthPerShare    Value  `json:"threeYDividendperShareGrowthPerShare"`
	EBITDAGrowth                            Value  `json:"ebitdaGrowth"`
	GrowthCapitalExpenditure                Value  `json:"growthCapitalExpenditure"`
	TenYBottomLineNetIncomeGrowthPerShare   Value  `json:"tenYBottomLineNetIncomeGrowthPerShare"`
	FiveYBottomLineNetIncomeGrowthPerShare  Value  `json:"fiveYBottomLineNetIncomeGrowthPerShare"`
	ThreeYBottomLineNetIncomeGrowthPerShare Value  `json:"threeYBottomLineNetIncomeGrowthPerShare"`
}

type IncomeStatementGrowth struct {
	Symbol                                    string `json:"symbol"`
	Date                                      string `json:"date"`
	FiscalYear                                Value  `json:"fiscalYear"`
	Period                                    Value  `json:"period"`
	ReportedCurrency                          Value  `json:"reportedCurrency"`
	GrowthRevenue                             Value  `json:"growthRevenue"`
	GrowthCostOfRevenue                       Value  `json:"growthCostOfRevenue"`
	GrowthGrossProfit                         Value  `json:"growthGrossProfit"`
	GrowthGrossProfitRatio                    Value  `json:"growthGrossProfitRatio"`
	GrowthResearchAndDevelopmentExpenses      Value  `json:"growthResearchAndDevelopmentExpenses"`
	GrowthGeneralAndAdministrativeExpenses    Value  `json:"growthGeneralAndAdministrativeExpenses"`
	GrowthSellingAndMarketingExpenses         Value  `json:"growthSellingAndMarketingExpenses"`
	GrowthOtherExpenses                       Value  `json:"growthOtherExpenses"`
	GrowthOperatingExpenses                   Value  `json:"growthOperatingExpenses"`
	GrowthCostAndExpenses                     Value  `json:"growthCostAndExpenses"`
	GrowthInterestIncome                      Value  `json:"growthInterestIncome"`
	GrowthInterestExpense                     Value  `json:"growthInterestExpense"`
	GrowthDepreciationAndAmortization         Value  `json:"growthDepreciationAndAmortization"`
	GrowthEBITDA                              Value  `json:"growthEBITDA"`
	GrowthOperatingIncome                     Value  `json:"growthOperatingIncome"`
	GrowthIncomeBeforeTax                     Value  `json:"growthIncomeBeforeTax"`
	GrowthIncomeTaxExpense                    Value  `json:"growthIncomeTaxExpense"`
	GrowthNetIncome                           Value  `json:"growthNetIncome"`
	GrowthEPS                                 Value  `json:"growthEPS"`
	GrowthEPSDiluted                          Value  `json:"growthEPSDiluted"`
	GrowthWeightedAverageShsOut               Value  `json:"growthWeightedAverageShsOut"`
	GrowthWeightedAverageShsOutDiluted        Value  `json:"growthWeightedAverageShsOutDil"`
	GrowthEBIT                                Value  `json:"growthEBIT"`
	GrowthNonOperatingIncomeExcludingInterest Value  `json:"growthNonOperatingIncomeExcludingInterest"`
	GrowthNetInterestIncome                   Value  `json:"growthNetInterestIncome"`
	GrowthTotalOtherIncomeExpensesNet         Value  `json:"growthTotalOtherIncomeExpensesNet"`
	GrowthNetIncomeFromContinuingOperations   Value  `json:"growthNetIncomeFromContinuingOperations"`
	GrowthOtherAdjustmentsToNetIncome         Value  `json:"growthOtherAdjustmentsToNetIncome"`
	GrowthNetIncomeDeductions                 Value  `json:"growthNetIncomeDeductions"`
}

type BalanceSheetGrowth struct {
	Symbol                                        string `json:"symbol"`
	Date                                          string `json:"date"`
	FiscalYear                                    Value  `json:"fiscalYear"`
	Period                                        Value  `json:"period"`
	ReportedCurrency                              Value  `json:"reportedCurrency"`
	GrowthCashAndCashEquivalents                  Value  `json:"growthCashAndCashEquivalents"`
	GrowthShortTermInvestments                    Value  `json:"growthShortTermInvestments"`
	GrowthCashAndShortTermInvestments             Value  `json:"growthCashAndShortTermInvestments"`
	GrowthNetReceivables                          Value  `json:"growthNetReceivables"`
	GrowthInventory                               Value  `json:"growthInventory"`
	GrowthOtherCurrentAssets                      Value  `json:"growthOtherCurrentAssets"`
	GrowthTotalCurrentAssets                      Value  `json:"growthTotalCurrentAssets"`
	GrowthPropertyPlantEquipmentNet               Value  `json:"growthPropertyPlantEquipmentNet"`
	GrowthGoodwill                                Value  `json:"growthGoodwill"`
	GrowthIntangibleAssets                        Value  `json:"growthIntangibleAssets"`
	GrowthGoodwillAndIntangibleAssets             Value  `json:"growthGoodwillAndIntangibleAssets"`
	GrowthLongTermInvestments                     Value  `json:"growthLongTermInvestments"`
	GrowthTaxAssets                               Value  `json:"growthTaxAssets"`
	GrowthOtherNonCurrentAssets                   Value  `json:"growthOtherNonCurrentAssets"`
	GrowthTotalNonCurrentAssets                   Value  `json:"growthTotalNonCurrentAssets"`
	GrowthOtherAssets                             Value  `json:"growthOtherAssets"`
	GrowthTotalAssets                             Value  `json:"growthTotalAssets"`
	GrowthAccountPayables                         Value  `json:"growthAccountPayables"`
	GrowthShortTermDebt                           Value  `json:"growthShortTermDebt"`
	GrowthTaxPayables                             Value  `json:"growthTaxPayables"`
	GrowthDeferredRevenue                         Value  `json:"growthDeferredRevenue"`
	GrowthOtherCurrentLiabilities                 Value  `json:"growthOtherCurrentLiabilities"`
	GrowthTotalCurrentLiabilities                 Value  `json:"growthTotalCurrentLiabilities"`
	GrowthLongTermDebt                            Value  `json:"growthLongTermDebt"`
	GrowthDeferredRevenueNonCurrent               Value  `json:"growthDeferredRevenueNonCurrent"`
	GrowthDeferredTaxLiabilitiesNonCurrent        Value  `json:"growthDeferredTaxLiabilitiesNonCurrent"`
	GrowthOtherNonCurrentLiabilities              Value  `json:"growthOtherNonCurrentLiabilities"`
	GrowthTotalNonCurrentLiabilities              Value  `json:"growthTotalNonCurrentLiabilities"`
	GrowthOtherLiabilities                        Value  `json:"growthOtherLiabilities"`
	GrowthTotalLiabilities                        Value  `json:"growthTotalLiabilities"`
	GrowthPreferredStock                          Value  `json:"growthPreferredStock"`
	GrowthCommonStock                             Value  `json:"growthCommonStock"`
	GrowthRetainedEarnings                        Value  `json:"growthRetainedEarnings"`
	GrowthAccumulatedOtherComprehensiveIncomeLoss Value  `json:"growthAccumulatedOtherComprehensiveIncomeLoss"`
	GrowthOtherTotalStockholdersEquity            Value  `json:"growthOthertotalStockholdersEquity"`
	GrowthTotalStockholdersEquity                 Value  `json:"growthTotalStockholdersEquity"`
	GrowthMinorityInterest                        Value  `json:"growthMinorityInterest"`
	GrowthTotalEquity                             Value  `json:"growthTotalEquity"`
	GrowthTotalLiabilitiesAndStockholdersEquity   Value  `json:"growthTotalLiabilitiesAndStockholdersEquity"`
	GrowthTotalInvestments                        Value  `json:"growthTotalInvestments"`
	GrowthTotalDebt                               Value  `json:"growthTotalDebt"`
	GrowthNetDebt                                 Value  `json:"growthNetDebt"`
	GrowthAccountsReceivables                     Value  `json:"growthAccountsReceivables"`
	GrowthOtherReceivables                        Value  `json:"growthOtherReceivables"`
	GrowthPrepaids                                Value  `json:"growthPrepaids"`
	GrowthTotalPayables                           Value  `json:"growthTotalPayables"`
	GrowthOtherPayables                           Value  `json:"growthOtherPayables"`
	GrowthAccruedExpenses                         Value  `json:"growthAccruedExpenses"`
	GrowthCapitalLeaseObligationsCurrent          Value  `json:"growthCapitalLeaseObligationsCurrent"`
	GrowthAdditionalPaidInCapital                 Value  `json:"growthAdditionalPaidInCapital"`
	GrowthTreasuryStock                           Value  `json:"growthTreasuryStock"`
}

type CashFlowStatementGrowth struct {
	Symbol                                         string `json:"symbol"`
	Date                                           string `json:"date"`
	FiscalYear                                     Value  `json:"fiscalYear"`
	Period                                         Value  `json:"period"`
	ReportedCurrency                               Value  `json:"reportedCurrency"`
	GrowthNetIncome                                Value  `json:"growthNetIncome"`
	GrowthDepreciationAndAmortization              Value  `json:"growthDepreciationAndAmortization"`
	GrowthDeferredIncomeTax                        Value  `json:"growthDeferredIncomeTax"`
	GrowthStockBasedCompensation                   Value  `json:"growthStockBasedCompensation"`
	GrowthChangeInWorkingCapital                   Value  `json:"growthChangeInWorkingCapital"`
	GrowthAccountsReceivables                      Value  `json:"growthAccountsReceivables"`
	GrowthInventory                                Value  `json:"growthInventory"`
	GrowthAccountsPayables                         Value  `json:"growthAccountsPayables"`
	GrowthOtherWorkingCapital                      Value  `json:"growthOtherWorkingCapital"`
	GrowthOtherNonCashItems                        Value  `json:"growthOtherNonCashItems"`
	GrowthNetCashProvidedByOperatingActivites      Value  `json:"growthNetCashProvidedByOperatingActivites"`
	GrowthInvestmentsInPropertyPlantAndEquipment   Value  `json:"growthInvestmentsInPropertyPlantAndEquipment"`
	GrowthAcquisitionsNet                          Value  `json:"growthAcquisitionsNet"`
	GrowthPurchasesOfInvestments                   Value  `json:"growthPurchasesOfInvestments"`
	GrowthSalesMaturitiesOfInvestments             Value  `json:"growthSalesMaturitiesOfInvestments"`
	GrowthOtherInvestingActivites                  Value  `json:"growthOtherInvestingActivites"`
	GrowthNetCashUsedForInvestingActivites         Value  `json:"growthNetCashUsedForInvestingActivites"`
	GrowthDebtRepayment                            Value  `json:"growthDebtRepayment"`
	GrowthCommonStockIssued                        Value  `json:"growthCommonStockIssued"`
	GrowthCommonStockRepurchased                   Value  `json:"growthCommonStockRepurchased"`
	GrowthDividendsPaid                            Value  `json:"growthDividendsPaid"`
	GrowthOtherFinancingActivites                  Value  `json:"growthOtherFinancingActivites"`
	GrowthNetCashUsedProvidedByFinancingActivities Value  `json:"growthNetCashUsedProvidedByFinancingActivities"`
	GrowthEffectOfForexChangesOnCash               Value  `json:"growthEffectOfForexChangesOnCash"`
	GrowthNetChangeInCash                          Value  `json:"growthNetChangeInCash"`
	GrowthCashAtEndOfPeriod                        Value  `json:"growthCashAtEndOfPeriod"`
	GrowthCashAtBeginningOfPeriod                  Value  `json:"growthCashAtBeginningOfPeriod"`
	GrowthOperatingCashFlow                        Value  `json:"growthOperatingCashFlow"`
	GrowthCapitalExpenditure                       Value  `json:"growthCapitalExpenditure"`
	GrowthFreeCashFlow                             Value  `json:"growthFreeCashFlow"`
	GrowthNetDebtIssuance                          Value  `json:"growthNetDebtIssuance"`
	GrowthLongTermNetDebtIssuance                  Value  `json:"growthLongTermNetDebtIssuance"`
	GrowthShortTermNetDebtIssuance                 Value  `json:"growthShortTermNetDebtIssuance"`
	GrowthNetStockIssuance                         Value  `json:"growthNetStockIssuance"`
	GrowthPreferredDividendsPaid                   Value  `json:"growthPreferredDividendsPaid"`
	GrowthIncomeTaxesPaid                          Value  `json:"growthIncomeTaxesPaid"`
	GrowthInterestPaid                             Value  `json:"growthInterestPaid"`
}

// market data

type Price struct {
	Symbol        string `json:"symbol"`
	Date          string `json:"date"`
	Open          Value  `json:"open"`
	High          Value  `json:"high"`
	Low           Value  `json:"low"`
	Close         Value  `json:"close"`
	Volume        Value  `json:"volume"`
	Change        Value  `json:"change"`
	ChangePercent Value  `json:"changePercent"`
	VWAP          Value  `json:"vwap"`
}

type DividendAdjustedPrice struct {
	Symbol   string `json:"symbol"`
	Date     string `json:"date"`
	AdjOpen  Value  `json:"adjOpen"`
	AdjHigh  Value  `json:"adjHigh"`
	AdjLow   Value  `json:"adjLow"`
	AdjClose Value  `json:"adjClose"`
	Volume   Value  `json:"volume"`
}

type Dividend struct {
	Symbol          string `json:"symbol"`
	Date            string `json:"date"`
	RecordDate      Value  `json:"recordDate"`
	PaymentDate     Value  `json:"paymentDate"`
	DeclarationDate Value  `json:"declarationDate"`
	AdjDividend     Value  `json:"adjDividend"`
	Dividend        Value  `json:"dividend"`
	Yield           Value  `json:"yield"`
	Frequency       Value  `json:"frequency"`
}

type Split struct {
	Symbol      string `json:"symbol"`
	Date        string `json:"date"`
	Numerator   Value  `json:"numerator"`
	Denominator Value  `json:"denominator"`
}

type MarketCap struct {
	Symbol    string `json:"symbol"`
	Date      string `json:"date"`
	MarketCap Value  `json:"marketCap"`
}

type ShareFloat struct {
	Symbol            string `json:"symbol"`
	Date              string `json:"date"`
	FreeFloat         Value  `json:"freeFloat"`
	FloatShares       Value  `json:"floatShares"`
	OutstandingShares Value  `json:"outstandingShares"`
}

// valuation models

type DiscountedCashFlow struct {
	Symbol     string `json:"symbol"`
	Date       string `json:"date"`
	DCF        Value  `json:"dcf"`
	StockPrice Value  `json:"Stock Price"`
}

type LeveredDiscountedCashFlow struct {
	Symbol     string `json:"symbol"`
	Date       string `json:"date"`
	DCF        Value  `json:"dcf"`
	StockPrice Value  `json:"Stock Price"`
}

type EnterpriseValue struct {
	Symbol                      string `json:"symbol"`
	Date                        string `json:"date"`
	StockPrice                  Value  `json:"stockPrice"`
	NumberOfShares              Value  `json:"numberOfShares"`
	MarketCapitalization        Value  `json:"marketCapitalization"`
	MinusCashAndCashEquivalents Value  `json:"minusCashAndCashEquivalents"`
	AddTotalDebt                Value  `json:"addTotalDebt"`
	EnterpriseValue             Value  `json:"enterpriseValue"`
}

type OwnerEarnings struct {
	Symbol                 string `json:"symbol"`
	Date                   string `json:"date"`
	FiscalYear             Value  `json:"fiscalYear"`
	Period                 Value  `json:"period"`
	AveragePPE             Value  `json:"averagePPE"`
	MaintenanceCapex       Value  `json:"maintenanceCapex"`
	GrowthCapex            Value  `json:"growthCapex"`
	OwnersEarnings         Value  `json:"ownersEarnings"`
	OwnersEarningsPerShare Value  `json:"ownersEarningsPerShare"`
}

// economy-wide data

type EconomicIndicator struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Value Value  `json:"value"`
}

type TreasuryRate struct {
	Date   string `json:"date"`
	Month1 Value  `json:"month1"`
	Month2 Value  `json:"month2"`
	Month3 Value  `json:"month3"`
	Month6 Value  `json:"month6"`
	Year1  Value  `json:"year1"`
	Year2  Value  `json:"year2"`
	Year3  Value  `json:"year3"`
	Year5  Value  `json:"year5"`
	Year7  Value  `json:"year7"`
	Year10 Value  `json:"year10"`
	Year20 Value  `json:"year20"`
	Year30 Value  `json:"year30"`
}

type SectorPerformance struct {
	Sector        string `json:"sector"`
	Exchange      string `json:"exchange"`
	Date          string `json:"date"`
	AverageChange Value  `json:"averageChange"`
}

type SectorPE struct {
	Sector   string `json:"sector"`
	Exchange string `json:"exchange"`
	Date     string `json:"date"`
	PE       Value  `json:"pe"`
}

type IndustryPerformance struct {
	Industry      string `json:"industry"`
	Exchange      string `json:"exchange"`
	Date          string `json:"date"`
	AverageChange Value  `json:"averageChange"`
}

type IndustryPE struct {
	Industry string `json:"industry"`
	Exchange string `json:"exchange"`
	Date     string `json:"date"`
	PE       Value  `json:"pe"`
}

type MergerAcquisition struct {
	Symbol              string `json:"symbol"`
	TargetedSymbol      string `json:"targetedSymbol"`
	TransactionDate     string `json:"transactionDate"`
	CompanyName         Value  `json:"companyName"`
	CIK                 Value  `json:"cik"`
	TargetedCompanyName Value  `json:"targetedCompanyName"`
	TargetedCIK         Value  `json:"targetedCik"`
	AcceptedDate        Value  `json:"acceptedDate"`
	Link                Value  `json:"link"`
}
