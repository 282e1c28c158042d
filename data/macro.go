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

type EconomicIndicator struct {
	Name  string    `db:"name"`
	Date  time.Time `db:"date"`
	Value *float64  `db:"value"`
}

func (e *EconomicIndicator) Table() string { return "economic_indicators" }

func (e *EconomicIndicator) Key() []string { return []string{"name", "date"} }

func (e *EconomicIndicator) EventDate() time.Time { return e.Date }

func (e *EconomicIndicator) Row() []Field {
	return []Field{
		{"name", e.Name},
		{"date", e.Date},
		{"value", e.Value},
	}
}

func (e *EconomicIndicator) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("Name", e.Name)
	ev.Str("Date", e.Date.Format(DateLayout))
}

type TreasuryRate struct {
	Date   time.Time `db:"date"`
	Month1 *float64  `db:"month_1"`
	Month2 *float64  `db:"month_2"`
	Month3 *float64  `db:"month_3"`
	Month6 *float64  `db:"month_6"`
	Year1  *float64  `db:"year_1"`
	Year2  *float64  `db:"year_2"`
	Year3  *float64  `db:"year_3"`
	Year5  *float64  `db:"year_5"`
	Year7  *float64  `db:"year_7"`
	Year10 *float64  `db:"year_10"`
	Year20 *float64  `db:"year_20"`
	Year30 *float64  `db:"year_30"`
}

func (t *TreasuryRate) Table() string { return "treasury_rates" }

func (t *TreasuryRate) Key() []string { return []string{"date"} }

func (t *TreasuryRate) EventDate() time.Time { return t.Date }

func (t *TreasuryRate) Row() []Field {
	return []Field{
		{"date", t.Date},
		{"month_1", t.Month1},
		{"month_2", t.Month2},
		{"month_3", t.Month3},
		{"month_6", t.Month6},
		{"year_1", t.Year1},
		{"year_2", t.Year2},
		{"year_3", t.Year3},
		{"year_5", t.Year5},
		{"year_7", t.Year7},
		{"year_10", t.Year10},
		{"year_20", t.Year20},
		{"year_30", t.Year30},
	}
}

func (t *TreasuryRate) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Date", t.Date.Format(DateLayout))
}

type SectorPerformance struct {
	Sector        string    `db:"sector"`
	Exchange      string    `db:"exchange"`
	Date          time.Time `db:"date"`
	AverageChange *float64  `db:"average_change"`
}

func (s *SectorPerformance) Table() string { return "sector_performance" }

func (s *SectorPerformance) Key() []string { return []string{"sector", "exchange", "date"} }

func (s *SectorPerformance) EventDate() time.Time { return s.Date }

func (s *SectorPerformance) Row() []Field {
	return []Field{
		{"sector", s.Sector},
		{"exchange", s.Exchange},
		{"date", s.Date},
		{"average_change", s.AverageChange},
	}
}

func (s *SectorPerformance) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Sector", s.Sector)
	e.Str("Exchange", s.Exchange)
	e.Str("Date", s.Date.Format(DateLayout))
}

type SectorPE struct {
	Sector   string    `db:"sector"`
	Exchange string    `db:"exchange"`
	Date     time.Time `db:"date"`
	PE       *float64  `db:"pe"`
}

func (s *SectorPE) Table() string { return "sector_pe" }

func (s *SectorPE) Key() []string { return []string{"sector", "exchange", "date"} }

func (s *SectorPE) EventDate() time.Time { return s.Date }

func (s *SectorPE) Row() []Field {
	return []Field{
		{"sector", s.Sector},
		{"exchange", s.Exchange},
		{"date", s.Date},
		{"pe", s.PE},
	}
}

func (s *SectorPE) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Sector", s.Sector)
	e.Str("Exchange", s.Exchange)
	e.Str("Date", s.Date.Format(DateLayout))
}

type IndustryPerformance struct {
	Industry      string    `db:"industry"`
	Exchange      string    `db:"exchange"`
	Date          time.Time `db:"date"`
	AverageChange *float64  `db:"average_change"`
}

func (i *IndustryPerformance) Table() string { return "industry_performance" }

func (i *IndustryPerformance) Key() []string { return []string{"industry", "exchange", "date"} }

func (i *IndustryPerformance) EventDate() time.Time { return i.Date }

func (i *IndustryPerformance) Row() []Field {
	return []Field{
		{"industry", i.Industry},
		{"exchange", i.Exchange},
		{"date", i.Date},
		{"average_change", i.AverageChange},
	}
}

func (i *IndustryPerformance) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Industry", i.Industry)
	e.Str("Exchange", i.Exchange)
	e.Str("Date", i.Date.Format(DateLayout))
}

type IndustryPE struct {
	Industry string    `db:"industry"`
	Exchange string    `db:"exchange"`
	Date     time.Time `db:"date"`
	PE       *float64  `db:"pe"`
}

func (i *IndustryPE) Table() string { return "industry_pe" }

func (i *IndustryPE) Key() []string { return []string{"industry", "exchange", "date"} }

func (i *IndustryPE) EventDate() time.Time { return i.Date }

func (i *IndustryPE) Row() []Field {
	return []Field{
		{"industry", i.Industry},
		{"exchange", i.Exchange},
		{"date", i.Date},
		{"pe", i.PE},
	}
}

func (i *IndustryPE) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Industry", i.Industry)
	e.Str("Exchange", i.Exchange)
	e.Str("Date", i.Date.Format(DateLayout))
}

type MergerAcquisition struct {
	Symbol              string    `db:"symbol"`
	TargetedSymbol      string    `db:"targeted_symbol"`
	TransactionDate     time.Time `db:"transaction_date"`
	CompanyName         *string   `db:"company_name"`
	CIK                 *string   `db:"cik"`
	TargetedCompanyName *string   `db:"targeted_company_name"`
	TargetedCIK         *string   `db:"targeted_cik"`
	AcceptedDate        *string   `db:"accepted_date"`
	Link                *string   `db:"link"`
}

func (m *MergerAcquisition) Table() string { return "mergers_acquisitions" }

func (m *MergerAcquisition) Key() []string {
	return []string{"symbol", "targeted_symbol", "transaction_date"}
}

func (m *MergerAcquisition) EventDate() time.Time { return m.TransactionDate }

func (m *MergerAcquisition) Row() []Field {
	return []Field{
		{"symbol", m.Symbol},
		{"targeted_symbol", m.TargetedSymbol},
		{"transaction_date", m.TransactionDate},
		{"company_name", m.CompanyName},
		{"cik", m.CIK},
		{"targeted_company_name", m.TargetedCompanyName},
		{"targeted_cik", m.TargetedCIK},
		{"accepted_date", m.AcceptedDate},
		{"link", m.Link},
	}
}

func (m *MergerAcquisition) MarshalZerologObject(e *zerolog.Event) {
	e.Str("Symbol", m.Symbol)
	e.Str("TargetedSymbol", m.TargetedSymbol)
	e.Str("TransactionDate", m.TransactionDate.Format(DateLayout))
}
