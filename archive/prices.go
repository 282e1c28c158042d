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

// Package archive exports domain tables to parquet files and ships them to
// Backblaze B2.
package archive

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
)

// PriceRow is a row of the prices table as it is written to parquet
type PriceRow struct {
	Symbol        string   `db:"symbol" parquet:"name=symbol, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Date          string   `db:"date" parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Open          *float64 `db:"open" parquet:"name=open, type=DOUBLE, repetitiontype=OPTIONAL"`
	High          *float64 `db:"high" parquet:"name=high, type=DOUBLE, repetitiontype=OPTIONAL"`
	Low           *float64 `db:"low" parquet:"name=low, type=DOUBLE, repetitiontype=OPTIONAL"`
	Close         *float64 `db:"close" parquet:"name=close, type=DOUBLE, repetitiontype=OPTIONAL"`
	Volume        *int64   `db:"volume" parquet:"name=volume, type=INT64, repetitiontype=OPTIONAL"`
	Change        *float64 `db:"change" parquet:"name=change, type=DOUBLE, repetitiontype=OPTIONAL"`
	ChangePercent *float64 `db:"change_percent" parquet:"name=change_percent, type=DOUBLE, repetitiontype=OPTIONAL"`
	VWAP          *float64 `db:"vwap" parquet:"name=vwap, type=DOUBLE, repetitiontype=OPTIONAL"`
}

// NewPriceRow converts a canonical price into its archived form
func NewPriceRow(price *data.Price) *PriceRow {
	return &PriceRow{
		Symbol:        price.Symbol,
		Date:          price.Date.Format(data.DateLayout),
		Open:          price.Open,
		High:          price.High,
		Low:           price.Low,
		Close:         price.Close,
		Volume:        price.Volume,
		Change:        price.Change,
		ChangePercent: price.ChangePercent,
		VWAP:          price.VWAP,
	}
}

// ReadPrices loads the stored prices of every ticker within window
func ReadPrices(ctx context.Context, reader *store.Reader, window process.Window) ([]*PriceRow, error) {
	prices, err := reader.Prices(ctx, nil, window)
	if err != nil {
		return nil, err
	}

	rows := make([]*PriceRow, 0, len(prices))
	for _, price := range prices {
		rows = append(rows, NewPriceRow(price))
	}

	return rows, nil
}

// FileName builds the archive name for table as of the given date
func FileName(dir, table string, asOf time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.parquet", slug.Make(table), asOf.Format(data.DateLayout)))
}

// WritePrices saves records as a zstd compressed parquet file. Rows that
// cannot be encoded are logged and skipped.
func WritePrices(records []*PriceRow, fn string, logger zerolog.Logger) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		logger.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(PriceRow), 4)
	if err != nil {
		logger.Error().Err(err).Msg("parquet write failed")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, r := range records {
		if err = pw.Write(r); err != nil {
			logger.Error().Err(err).Str("Date", r.Date).Str("Ticker", r.Symbol).Msg("parquet write failed for record")
		}
	}

	if err = pw.WriteStop(); err != nil {
		logger.Error().Err(err).Msg("parquet write failed")
		return err
	}

	logger.Info().Int("NumRecords", len(records)).Str("FileName", fn).Msg("parquet write finished")
	return nil
}
