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

// Stock describes a listed company as reported by the company screener
type Stock struct {
	Symbol            string   `db:"symbol"`
	CompanyName       *string  `db:"company_name"`
	Exchange          *string  `db:"exchange"`
	ExchangeShortName *string  `db:"exchange_short_name"`
	Industry          *string  `db:"industry"`
	Sector            *string  `db:"sector"`
	Country           *string  `db:"country"`
	MarketCap         *float64 `db:"market_cap"`
	Beta              *float64 `db:"beta"`
	Price             *float64 `db:"price"`
	IsETF             *bool    `db:"is_etf"`
	IsFund            *bool    `db:"is_fund"`
	IsActivelyTrading *bool    `db:"is_actively_trading"`
}

func (s *Stock) Table() string { return "stocks" }

func (s *Stock) Key() []string { return []string{"symbol"} }

func (s *Stock) EventDate() time.Time { return time.Time{} }

func (s *Stock) Tag(symbol string) { s.Symbol = symbol }

func (s *Stock) Row() []Field {
	return []Field{
		{"symbol", s.Symbol},
		{"company_name", s.CompanyName},
		{"exchange", s.Exchange},
		{"exchange_short_name", s.ExchangeShortName},
		{"industry", s.Industry},
		{"sector", s.Sector},
		{"country", s.Country},
		{"market_cap", s.MarketCap},
		{"beta", s.Beta},
		{"price", s.Price},
		{"is_etf", s.IsETF},
		{"is_fund", s.IsFund},
		{"is_actively_trading", s.IsActivelyTrading},
	}
}

func (s *Stock) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", s.Symbol)
}

// EmployeeCount is the head count reported in a regulatory filing
type EmployeeCount struct {
	Symbol         string     `db:"symbol"`
	Date           time.Time  `db:"date"`
	PeriodOfReport *time.Time `db:"period_of_report"`
	FormType       *string    `db:"form_type"`
	EmployeeCount  *int64     `db:"employee_count"`
	Source         *string    `db:"source"`
}

func (e *EmployeeCount) Table() string { return "employee_count" }

func (e *EmployeeCount) Key() []string { return []string{"symbol", "date"} }

func (e *EmployeeCount) EventDate() time.Time { return e.Date }

func (e *EmployeeCount) Tag(symbol string) { e.Symbol = symbol }

func (e *EmployeeCount) Row() []Field {
	return []Field{
		{"symbol", e.Symbol},
		{"date", e.Date},
		{"period_of_report", e.PeriodOfReport},
		{"form_type", e.FormType},
		{"employee_count", e.EmployeeCount},
		{"source", e.Source},
	}
}

func (e *EmployeeCount) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("Symbol", e.Symbol)
	ev.Str("Date", e.Date.Format(DateLayout))
}
