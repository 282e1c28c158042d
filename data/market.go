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

// Price is a daily open/high/low/close bar
type Price struct {
	Symbol        string    `db:"symbol"`
	Date          time.Time `db:"date"`
	Open          *float64  `db:"open"`
	High          *float64  `db:"high"`
	Low           *float64  `db:"low"`
	Close         *float64  `db:"close"`
	Volume        *int64    `db:"volume"`
	Change        *float64  `db:"change"`
	ChangePercent *float64  `db:"change_percent"`
	VWAP          *float64  `db:"vwap"`
}

func (p *Price) Table() string { return "prices" }

func (p *Price) Key() []string { return []string{"symbol", "date"} }

func (p *Price) EventDate() time.Time { return p.Date }

func (p *Price) Tag(symbol string) { p.Symbol = symbol }

func (p *Price) Row() []Field {
	return []Field{
		{"symbol", p.Symbol},
		{"date", p.Date},
		{"open", p.Open},
		{"high", p.High},
		{"low", p.Low},
		{"close", p.Close},
		{"volume", p.Volume},
		{"change", p.Change},
		{"change_percent", p.ChangePercent},
		{"vwap", p.VWAP},
	}
}

func (p *Price) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", p.Symbol)
	e.Str("Date", p.Date.Format(DateLayout))
}

type DividendAdjustedPrice struct {
	Symbol   string    `db:"symbol"`
	Date     time.Time `db:"date"`
	AdjOpen  *float64  `db:"adj_open"`
	AdjHigh  *float64  `db:"adj_high"`
	AdjLow   *float64  `db:"adj_low"`
	AdjClose *float64  `db:"adj_close"`
	Volume   *int64    `db:"volume"`
}

func (d *DividendAdjustedPrice) Table() string { return "dividend_adjusted_prices" }

func (d *DividendAdjustedPrice) Key() []string { return []string{"symbol", "date"} }

func (d *DividendAdjustedPrice) EventDate() time.Time { return d.Date }

func (d *DividendAdjustedPrice) Tag(symbol string) { d.Symbol = symbol }

func (d *DividendAdjustedPrice) Row() []Field {
	return []Field{
		{"symbol", d.Symbol},
		{"date", d.Date},
		{"adj_open", d.AdjOpen},
		{"adj_high", d.AdjHigh},
		{"adj_low", d.AdjLow},
		{"adj_close", d.AdjClose},
		{"volume", d.Volume},
	}
}

func (d *DividendAdjustedPrice) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", d.Symbol)
	e.Str("Date", d.Date.Format(DateLayout))
}

type Dividend struct {
	Symbol          string     `db:"symbol"`
	Date            time.Time  `db:"date"`
	RecordDate      *time.Time `db:"record_date"`
	PaymentDate     *time.Time `db:"payment_date"`
	DeclarationDate *time.Time `db:"declaration_date"`
	AdjDividend     *float64   `db:"adj_dividend"`
	Dividend        *float64   `db:"dividend"`
	Yield           *float64   `db:"yield"`
	Frequency       *string    `db:"frequency"`
}

func (d *Dividend) Table() string { return "dividends" }

func (d *Dividend) Key() []string { return []string{"symbol", "date"} }

func (d *Dividend) EventDate() time.Time { return d.Date }

func (d *Dividend) Tag(symbol string) { d.Symbol = symbol }

func (d *Dividend) Row() []Field {
	return []Field{
		{"symbol", d.Symbol},
		{"date", d.Date},
		{"record_date", d.RecordDate},
		{"payment_date", d.PaymentDate},
		{"declaration_date", d.DeclarationDate},
		{"adj_dividend", d.AdjDividend},
		{"dividend", d.Dividend},
		{"yield", d.Yield},
		{"frequency", d.Frequency},
	}
}

func (d *Dividend) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", d.Symbol)
	e.Str("Date", d.Date.Format(DateLayout))
}

type Split struct {
	Symbol      string    `db:"symbol"`
	Date        time.Time `db:"date"`
	Numerator   *float64  `db:"numerator"`
	Denominator *float64  `db:"denominator"`
}

func (s *Split) Table() string { return "splits" }

func (s *Split) Key() []string { return []string{"symbol", "date"} }

func (s *Split) EventDate() time.Time { return s.Date }

func (s *Split) Tag(symbol string) { s.Symbol = symbol }

func (s *Split) Row() []Field {
	return []Field{
		{"symbol", s.Symbol},
		{"date", s.Date},
		{"numerator", s.Numerator},
		{"denominator", s.Denominator},
	}
}

func (s *Split) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", s.Symbol)
	e.Str("Date", s.Date.Format(DateLayout))
}

type MarketCap struct {
	Symbol    string    `db:"symbol"`
	Date      time.Time `db:"date"`
	MarketCap *float64  `db:"market_cap"`
}

func (m *MarketCap) Table() string { return "market_cap" }

func (m *MarketCap) Key() []string { return []string{"symbol", "date"} }

func (m *MarketCap) EventDate() time.Time { return m.Date }

func (m *MarketCap) Tag(symbol string) { m.Symbol = symbol }

func (m *MarketCap) Row() []Field {
	return []Field{
		{"symbol", m.Symbol},
		{"date", m.Date},
		{"market_cap", m.MarketCap},
	}
}

func (m *MarketCap) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", m.Symbol)
	e.Str("Date", m.Date.Format(DateLayout))
}

type ShareFloat struct {
	Symbol            string    `db:"symbol"`
	Date              time.Time `db:"date"`
	FreeFloat         *float64  `db:"free_float"`
	FloatShares       *int64    `db:"float_shares"`
	OutstandingShares *int64    `db:"outstanding_shares"`
}

func (s *ShareFloat) Table() string { return "share_float" }

func (s *ShareFloat) Key() []string { return []string{"symbol", "date"} }

func (s *ShareFloat) EventDate() time.Time { return s.Date }

func (s *ShareFloat) Tag(symbol string) { s.Symbol = symbol }

func (s *ShareFloat) Row() []Field {
	return []Field{
		{"symbol", s.Symbol},
		{"date", s.Date},
		{"free_float", s.FreeFloat},
		{"float_shares", s.FloatShares},
		{"outstanding_shares", s.OutstandingShares},
	}
}

func (s *ShareFloat) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", s.Symbol)
	e.Str("Date", s.Date.Format(DateLayout))
}
