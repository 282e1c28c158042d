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

type Grade struct {
	Symbol     string    `db:"symbol"`
	Date       time.Time `db:"date"`
	StrongBuy  *int64    `db:"strong_buy"`
	Buy        *int64    `db:"buy"`
	Hold       *int64    `db:"hold"`
	Sell       *int64    `db:"sell"`
	StrongSell *int64    `db:"strong_sell"`
}

func (g *Grade) Table() string { return "grades" }

func (g *Grade) Key() []string { return []string{"symbol", "date"} }

func (g *Grade) EventDate() time.Time { return g.Date }

func (g *Grade) Tag(symbol string) { g.Symbol = symbol }

func (g *Grade) Row() []Field {
	return []Field{
		{"symbol", g.Symbol},
		{"date", g.Date},
		{"strong_buy", g.StrongBuy},
		{"buy", g.Buy},
		{"hold", g.Hold},
		{"sell", g.Sell},
		{"strong_sell", g.StrongSell},
	}
}

func (g *Grade) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", g.Symbol)
	e.Str("Date", g.Date.Format(DateLayout))
}

type GradesConsensus struct {
	Symbol     string    `db:"symbol"`
	AsOf       time.Time `db:"as_of"`
	StrongBuy  *int64    `db:"strong_buy"`
	Buy        *int64    `db:"buy"`
	Hold       *int64    `db:"hold"`
	Sell       *int64    `db:"sell"`
	StrongSell *int64    `db:"strong_sell"`
	Consensus  *string   `db:"consensus"`
}

func (g *GradesConsensus) Table() string { return "grades_consensus" }

func (g *GradesConsensus) Key() []string { return []string{"symbol"} }

func (g *GradesConsensus) EventDate() time.Time { return time.Time{} }

func (g *GradesConsensus) Tag(symbol string) { g.Symbol = symbol }

func (g *GradesConsensus) Row() []Field {
	return []Field{
		{"symbol", g.Symbol},
		{"as_of", g.AsOf},
		{"strong_buy", g.StrongBuy},
		{"buy", g.Buy},
		{"hold", g.Hold},
		{"sell", g.Sell},
		{"strong_sell", g.StrongSell},
		{"consensus", g.Consensus},
	}
}

func (g *GradesConsensus) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", g.Symbol)
	e.Str("AsOf", g.AsOf.Format(DateLayout))
}

type PriceTargetConsensus struct {
	Symbol          string    `db:"symbol"`
	AsOf            time.Time `db:"as_of"`
	TargetHigh      *float64  `db:"target_high"`
	TargetLow       *float64  `db:"target_low"`
	TargetConsensus *float64  `db:"target_consensus"`
	TargetMedian    *float64  `db:"target_median"`
}

func (p *PriceTargetConsensus) Table() string { return "price_target_consensus" }

func (p *PriceTargetConsensus) Key() []string { return []string{"symbol"} }

func (p *PriceTargetConsensus) EventDate() time.Time { return time.Time{} }

func (p *PriceTargetConsensus) Tag(symbol string) { p.Symbol = symbol }

func (p *PriceTargetConsensus) Row() []Field {
	return []Field{
		{"symbol", p.Symbol},
		{"as_of", p.AsOf},
		{"target_high", p.TargetHigh},
		{"target_low", p.TargetLow},
		{"target_consensus", p.TargetConsensus},
		{"target_median", p.TargetMedian},
	}
}

func (p *PriceTargetConsensus) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", p.Symbol)
	e.Str("AsOf", p.AsOf.Format(DateLayout))
}

type PriceTargetSummary struct {
	Symbol                    string   `db:"symbol"`
	LastMonthCount            *int64   `db:"last_month_count"`
	LastMonthAvgPriceTarget   *float64 `db:"last_month_avg_price_target"`
	LastQuarterCount          *int64   `db:"last_quarter_count"`
	LastQuarterAvgPriceTarget *float64 `db:"last_quarter_avg_price_target"`
	LastYearCount             *int64   `db:"last_year_count"`
	LastYearAvgPriceTarget    *float64 `db:"last_year_avg_price_target"`
	AllTimeCount              *int64   `db:"all_time_count"`
	AllTimeAvgPriceTarget     *float64 `db:"all_time_avg_price_target"`
}

func (p *PriceTargetSummary) Table() string { return "price_target_summary" }

func (p *PriceTargetSummary) Key() []string { return []string{"symbol"} }

func (p *PriceTargetSummary) EventDate() time.Time { return time.Time{} }

func (p *PriceTargetSummary) Tag(symbol string) { p.Symbol = symbol }

func (p *PriceTargetSummary) Row() []Field {
	return []Field{
		{"symbol", p.Symbol},
		{"last_month_count", p.LastMonthCount},
		{"last_month_avg_price_target", p.LastMonthAvgPriceTarget},
		{"last_quarter_count", p.LastQuarterCount},
		{"last_quarter_avg_price_target", p.LastQuarterAvgPriceTarget},
		{"last_year_count", p.LastYearCount},
		{"last_year_avg_price_target", p.LastYearAvgPriceTarget},
		{"all_time_count", p.AllTimeCount},
		{"all_time_avg_price_target", p.AllTimeAvgPriceTarget},
	}
}

func (p *PriceTargetSummary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", p.Symbol)
}
