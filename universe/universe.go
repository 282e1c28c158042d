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

// Package universe resolves the list of tickers a run populates
package universe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const WikipediaURL = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

var (
	ErrNoTickers      = errors.New("ticker universe is empty")
	ErrTableNotFound  = errors.New("constituents table not found")
	ErrSourceFailed   = errors.New("could not load ticker universe")
	ErrUnknownSource  = errors.New("unknown ticker source")
	ErrMissingSymbols = errors.New("csv file has no symbol or ticker column")
)

// Source produces the ordered list of tickers to populate
type Source interface {
	Tickers(ctx context.Context) ([]string, error)
}

// Static is a fixed list of tickers
type Static []string

func (s Static) Tickers(context.Context) ([]string, error) {
	tickers := Normalize(s)
	if len(tickers) == 0 {
		return nil, ErrNoTickers
	}
	return tickers, nil
}

// Normalize upper-cases tickers, maps share-class dots to the dashes the
// upstream expects and drops blanks and duplicates while keeping order
func Normalize(tickers []string) []string {
	seen := make(map[string]bool, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
		ticker = strings.ReplaceAll(ticker, ".", "-")
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true
		out = append(out, ticker)
	}
	return out
}

// ParseConstituents reads the Symbol column of the first table on the S&P
// 500 constituents page
func ParseConstituents(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}

	table := doc.Find("table#constituents")
	if table.Length() == 0 {
		table = doc.Find("table.wikitable").First()
	}
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	column := -1
	table.Find("tr").First().Find("th").EachWithBreak(func(idx int, th *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(th.Text()), "symbol") {
			column = idx
			return false
		}
		return true
	})

	if column < 0 {
		return nil, fmt.Errorf("%w: no Symbol column", ErrTableNotFound)
	}

	var tickers []string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cell := tr.Find("td").Eq(column)
		if cell.Length() == 0 {
			return
		}
		tickers = append(tickers, cell.Text())
	})

	tickers = Normalize(tickers)
	if len(tickers) == 0 {
		return nil, ErrNoTickers
	}

	return tickers, nil
}
