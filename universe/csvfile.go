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
package universe

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

type tickerRow struct {
	Symbol string `csv:"symbol"`
	Ticker string `csv:"ticker"`
}

// CSVFile reads tickers from a file with a symbol or ticker header
type CSVFile struct {
	Path string
}

func (c CSVFile) Tickers(context.Context) ([]string, error) {
	fh, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}
	defer fh.Close()

	var rows []*tickerRow
	if err := gocsv.UnmarshalFile(fh, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceFailed, c.Path, err)
	}

	tickers := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Symbol != "" {
			tickers = append(tickers, row.Symbol)
		} else if row.Ticker != "" {
			tickers = append(tickers, row.Ticker)
		}
	}

	if len(rows) > 0 && len(tickers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSymbols, c.Path)
	}

	tickers = Normalize(tickers)
	if len(tickers) == 0 {
		return nil, ErrNoTickers
	}

	return tickers, nil
}
