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

type AnalystEstimate struct {
	Symbol             string    `db:"symbol"`
	Date               time.Time `db:"date"`
	RevenueLow         *float64  `db:"revenue_low"`
	RevenueHigh        *float64  `db:"revenue_high"`
	RevenueAvg         *float64  `db:"revenue_avg"`
	EBITDALow          *float64  `db:"ebitda_low"`
	EBITDAHigh         *float64  `db:"ebitda_high"`
	EBITDAAvg          *float64  `db:"ebitda_avg"`
	EBITLow            *float64  `db:"ebit_low"`
	EBITHigh           *float64  `db:"ebit_high"`
	EBITAvg            *float64  `db:"ebit_avg"`
	NetIncomeLow       *float64  `db:"net_income_low"`
	NetIncomeHigh      *float64  `db:"net_income_high"`
	NetIncomeAvg       *float64  `db:"net_income_avg"`
	SGAExpenseLow      *float64  `db:"sga_expense_low"`
	SGAExpenseHigh     *float64  `db:"sga_expense_high"`
	SGAExpenseAvg      *float64  `db:"sga_expense_avg"`
	EPSLow             *float64  `db:"eps_low"`
	EPSHigh            *float64  `db:"eps_high"`
	EPSAvg             *float64  `db:"eps_avg"`
	NumAnalystsRevenue *int64    `db:"num_analysts_revenue"`
	NumAnalystsEPS     *int64    `db:"num_analysts_eps"`
}

func (a *AnalystEstimate) Table() string { return "analyst_estimates" }

func (a *AnalystEstimate) Key() []string { return []string{"symbol", "date"} }

func (a *AnalystEstimate) EventDate() time.Time { return a.Date }

func (a *AnalystEstimate) Tag(symbol string) { a.Symbol = symbol }

func (a *AnalystEstimate) Row() []Field {
	return []Field{
		{"symbol", a.Symbol},
		{"date", a.Date},
		{"revenue_low", a.RevenueLow},
		{"revenue_high", a.RevenueHigh},
		{"revenue_avg", a.RevenueAvg},
		{"ebitda_low", a.EBITDALow},
		{"ebitda_high", a.EBITDAHigh},
		{"ebitda_avg", a.EBITDAAvg},
		{"ebit_low", a.EBITLow},
		{"ebit_high", a.EBITHigh},
		{"ebit_avg", a.EBITAvg},
		{"net_income_low", a.NetIncomeLow},
		{"net_income_high", a.NetIncomeHigh},
		{"net_income_avg", a.NetIncomeAvg},
		{"sga_expense_low", a.SGAExpenseLow},
		{"sga_expense_high", a.SGAExpenseHigh},
		{"sga_expense_avg", a.SGAExpenseAvg},
		{"eps_low", a.EPSLow},
		{"eps_high", a.EPSHigh},
		{"eps_avg", a.EPSAvg},
		{"num_analysts_revenue", a.NumAnalystsRevenue},
		{"num_analysts_eps", a.NumAnalystsEPS},
	}
}

func (a *AnalystEstimate) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", a.Symbol)
	e.Str("Date", a.Date.Format(DateLayout))
}

type Rating struct {
	Symbol                  string    `db:"symbol"`
	Date                    time.Time `db:"date"`
	Rating                  *string   `db:"rating"`
	OverallScore            *float64  `db:"overall_score"`
	DiscountedCashFlowScore *float64  `db:"discounted_cash_flow_score"`
	ReturnOnEquityScore     *float64  `db:"return_on_equity_score"`
	ReturnOnAssetsScore     *float64  `db:"return_on_assets_score"`
	DebtToEquityScore       *float64  `db:"debt_to_equity_score"`
	PriceToEarningsScore    *float64  `db:"price_to_earnings_score"`
	PriceToBookScore        *float64  `db:"price_to_book_score"`
}

func (r *Rating) Table() string { return "ratings" }

func (r *Rating) Key() []string { return []string{"symbol", "date"} }

func (r *Rating) EventDate() time.Time { return r.Date }

func (r *Rating) Tag(symbol string) { r.Symbol = symbol }

func (r *Rating) Row() []Field {
	return []Field{
		{"symbol", r.Symbol},
		{"date", r.Date},
		{"rating", r.Rating},
		{"overall_score", r.OverallScore},
		{"discounted_cash_flow_score", r.DiscountedCashFlowScore},
		{"return_on_equity_score", r.ReturnOnEquityScore},
		{"return_on_assets_score", r.ReturnOnAssetsScore},
		{"debt_to_equity_score", r.DebtToEquityScore},
		{"price_to_earnings_score", r.PriceToEarningsScore},
		{"price_to_book_score", r.PriceToBookScore},
	}
}

func (r *Rating) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", r.Symbol)
	e.Str("Date", r.Date.Format(DateLayout))
}
