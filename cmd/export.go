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
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/penny-vault/pvfactor/archive"
	"github.com/penny-vault/pvfactor/library"
	"github.com/penny-vault/pvfactor/store"
)

var (
	exportOut    string
	exportUpload bool
	exportStart  string
	exportEnd    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Archive stored data to parquet files",
}

var exportPricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Write the prices table to a parquet file and optionally upload it to Backblaze",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		settings := loadSettings()

		window, err := parseWindow(exportStart, exportEnd)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid date window")
		}

		now := time.Now()
		if window.Start.IsZero() {
			window.Start = settings.Populate.DefaultStart
		}
		if window.End.IsZero() {
			window.End = now
		}

		myLibrary := &library.Library{DBUrl: settings.Database.URL}
		if err := myLibrary.Connect(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer myLibrary.Close()

		rows, err := archive.ReadPrices(ctx, store.NewReader(myLibrary.Pool), window)
		if err != nil {
			log.Fatal().Err(err).Msg("could not read prices")
		}

		if err := os.MkdirAll(exportOut, 0755); err != nil {
			log.Fatal().Err(err).Str("Dir", exportOut).Msg("could not create output directory")
		}

		fn := archive.FileName(exportOut, "prices", now)
		if err := archive.WritePrices(rows, fn, log.Logger); err != nil {
			log.Fatal().Err(err).Msg("failed writing parquet file")
		}

		if !exportUpload {
			return
		}

		if settings.Backblaze.ApplicationID == "" {
			log.Info().Msg("skipping upload to backblaze because backblaze credentials are missing")
			return
		}

		if err := archive.Upload(settings.Backblaze, fn, now.Format("2006"), log.Logger); err != nil {
			log.Fatal().Err(err).Msg("failed uploading parquet file to Backblaze")
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportPricesCmd)

	exportPricesCmd.Flags().StringVar(&exportOut, "out", ".", "directory the parquet file is written to")
	exportPricesCmd.Flags().BoolVar(&exportUpload, "upload", false, "upload the file to the configured Backblaze bucket")
	exportPricesCmd.Flags().StringVar(&exportStart, "start", "", "first date to export (YYYY-MM-DD)")
	exportPricesCmd.Flags().StringVar(&exportEnd, "end", "", "last date to export (YYYY-MM-DD)")
}
