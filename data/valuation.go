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

type DiscountedCashFlow struct {
	Symbol     string    `db:"symbol"`
	Date       time.Time `db:"date"`
	DCF        *float64  `db:"dcf"`
	StockPrice *float64  `db:"stock_price"`
}

func (d *DiscountedCashFlow) Table() string { return "dcf" }

func (d *DiscountedCashFlow) Key() []string { return []string{"symbol", "date"} }

func (d *DiscountedCashFlow) EventDate() time.Time { return d.Date }

func (d *DiscountedCashFlow) Tag(symbol string) { d.Symbol = symbol }

func (d *DiscountedCashFlow) Row() []Field {
	return []Field{
		{"symbol", d.Symbol},
		{"date", d.Date},
		{"dcf", d.DCF},
		{"stock_price", d.StockPrice},
	}
}

func (d *DiscountedCashFlow) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", d.Symbol)
	e.Str("Date", d.Date.Format(DateLayout))
}

type LeveredDiscountedCashFlow struct {
	Symbol     string    `db:"symbol"`
	Date       time.Time `db:"date"`
	DCF        *float64  `db:"dcf"`
	StockPrice *float64  `db:"stock_price"`
}

func (l *LeveredDiscountedCashFlow) Table() string { return "levered_dcf" }

func (l *LeveredDiscountedCashFlow) Key() []string { return []string{"symbol", "date"} }

func (l *LeveredDiscountedCashFlow) EventDate() time.Time { return l.Date }

func (l *LeveredDiscountedCashFlow) Tag(symbol string) { l.Symbol = symbol }

func (l *LeveredDiscountedCashFlow) Row() []Field {
	return []Field{
		{"symbol", l.Symbol},
		{"date", l.Date},
		{"dcf", l.DCF},
		{"stock_price", l.StockPrice},
	}
}

func (l *LeveredDiscountedCashFlow) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", l.Symbol)
	e.Str("Date", l.Date.Format(DateLayout))
}

type EnterpriseValue struct {
	Symbol                      string    `db:"symbol"`
	Date                        time.Time `db:"date"`
	StockPrice                  *float64  `db:"stock_price"`
	NumberOfShares              *int64    `db:"number_of_shares"`
	MarketCapitalization        *float64  `db:"market_capitalization"`
	MinusCashAndCashEquivalents *float64  `db:"minus_cash_and_cash_equivalents"`
	AddTotalDebt                *float64  `db:"add_total_debt"`
	EnterpriseValue             *float64  `db:"enterprise_value"`
}

func (e *EnterpriseValue) Table() string { return "enterprise_values" }

func (e *EnterpriseValue) Key() []string { return []string{"symbol", "date"} }

func (e *EnterpriseValue) EventDate() time.Time { return e.Date }

func (e *EnterpriseValue) Tag(symbol string) { e.Symbol = symbol }

func (e *EnterpriseValue) Row() []Field {
	return []Field{
		{"symbol", e.Symbol},
		{"date", e.Date},
		{"stock_price", e.StockPrice},
		{"number_of_shares", e.NumberOfShares},
		{"market_capitalization", e.MarketCapitalization},
		{"minus_cash_and_cash_equivalents", e.MinusCashAndCashEquivalents},
		{"add_total_debt", e.AddTotalDebt},
		{"enterprise_value", e.EnterpriseValue},
	}
}

func (e *EnterpriseValue) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("Symbol", e.Symbol)
	ev.Str("Date", e.Date.Format(DateLayout))
}

type OwnerEarnings struct {
	Symbol                 string    `db:"symbol"`
	Date                   time.Time `db:"date"`
	FiscalYear             *string   `db:"fiscal_year"`
	Period                 *string   `db:"period"`
	AveragePPE             *float64  `db:"average_ppe"`
	MaintenanceCapex       *float64  `db:"maintenance_capex"`
	GrowthCapex            *float64  `db:"growth_capex"`
	OwnersEarnings         *float64  `db:"owners_earnings"`
	OwnersEarningsPerShare *float64  `db:"owners_earnings_per_share"`
}

func (o *OwnerEarnings) Table() string { return "owner_earnings" }

func (o *OwnerEarnings) Key() []string { return []string{"symbol", "date"} }

func (o *OwnerEarnings) EventDate() time.Time { return o.Date }

func (o *OwnerEarnings) Tag(symbol string) { o.Symbol = symbol }

func (o *OwnerEarnings) Row() []Field {
	return []Field{
		{"symbol", o.Symbol},
		{"date", o.Date},
		{"fiscal_year", o.FiscalYear},
		{"period", o.Period},
		{"average_ppe", o.AveragePPE},
		{"maintenance_capex", o.MaintenanceCapex},
		{"growth_capex", o.GrowthCapex},
		{"owners_earnings", o.OwnersEarnings},
		{"owners_earnings_per_share", o.OwnersEarningsPerShare},
	}
}

func (o *OwnerEarnings) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", o.Symbol)
	e.Str("Date", o.Date.Format(DateLayout))
}
