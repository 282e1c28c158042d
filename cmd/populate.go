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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/db"
	"github.com/penny-vault/pvfactor/fetch"
	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/healthcheck"
	"github.com/penny-vault/pvfactor/library"
	"github.com/penny-vault/pvfactor/populate"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
	"github.com/penny-vault/pvfactor/universe"
)

var (
	populateDomains   []string
	populateStart     string
	populateEnd       string
	populateSkipMacro bool
)

// populateCmd represents the populate command
var populateCmd = &cobra.Command{
	Use:   "populate [TICKER...]",
	Short: "Download every configured domain and store it in the database",
	Long: `The populate sub-command fetches each configured domain for every ticker and
saves the results. When no tickers are given the universe is read from the
configured tickers source (the S&P 500 constituents on Wikipedia by default).
Macro domains such as treasury rates run once before the tickers are walked.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		if settings.FMP.APIKey == "" {
			log.Fatal().Msg("fmp.api_key is not configured; set it in the config file or PVFACTOR_FMP_API_KEY")
		}

		if settings.Database.URL == "" {
			log.Fatal().Msg("database.url is not configured")
		}

		window, err := parseWindow(populateStart, populateEnd)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid date window")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runID := uuid.New()
		logger := log.With().Str("RunID", runID.String()).Logger()
		ctx = logger.WithContext(ctx)

		if err := db.Migrate(settings.Database.URL, logger); err != nil {
			logger.Fatal().Err(err).Msg("error running database migration")
		}

		myLibrary := &library.Library{DBUrl: settings.Database.URL}
		if err := myLibrary.Connect(ctx); err != nil {
			logger.Fatal().Err(err).Msg("could not connect to database")
		}
		defer myLibrary.Close()

		source, err := tickerSource(settings.Populate, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not configure tickers source")
		}

		domains := populateDomains
		if len(domains) == 0 {
			domains = settings.Populate.Domains
		}

		populator := populate.New(populate.Options{
			Fetchers:  newFetchers(ctx, settings),
			Writer:    store.New(myLibrary.Pool, logger),
			Settings:  settings,
			Universe:  source,
			Logger:    *zerolog.Ctx(ctx),
			Domains:   domains,
			Window:    window,
			SkipMacro: populateSkipMacro,
			RunID:     runID,
		})

		pinger := healthcheck.New(settings.Healthchecks.PingID, logger)
		if err := pinger.Start(ctx); err != nil {
			logger.Warn().Err(err).Msg("could not signal run start")
		}

		if err := myLibrary.StartRun(ctx, runID, time.Now()); err != nil {
			logger.Error().Err(err).Msg("could not record run start")
		}

		summary, runErr := populator.Populate(ctx, args)

		status := library.StatusSuccess
		switch {
		case errors.Is(runErr, context.Canceled):
			status = library.StatusCanceled
		case runErr != nil:
			status = library.StatusFailed
		}

		// the run context may already be cancelled; bookkeeping still has to land
		finishCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := myLibrary.FinishRun(finishCtx, summary, status); err != nil {
			logger.Error().Err(err).Msg("could not record run result")
		}

		report := fmt.Sprintf("%d entities, %d tasks done, %d failed, %d records stored, %d records failed",
			summary.NumEntities, summary.TasksDone(), summary.TasksFailed(), summary.Stored, summary.Failed)

		if runErr != nil {
			if err := pinger.Fail(finishCtx, runErr.Error()+"\n"+report); err != nil {
				logger.Warn().Err(err).Msg("could not signal run failure")
			}
			logger.Fatal().Err(runErr).Str("Status", status).Msg("population run failed")
		}

		if err := pinger.Success(finishCtx, report); err != nil {
			logger.Warn().Err(err).Msg("could not signal run success")
		}

		logger.Info().
			Str("RunTime", durafmt.Parse(summary.Duration()).LimitFirstN(2).String()).
			Int("TasksDone", summary.TasksDone()).
			Int("TasksFailed", summary.TasksFailed()).
			Int("FetchFailed", summary.States[process.FetchFailed]).
			Int("RecordsStored", summary.Stored).
			Msg("population run complete")
	},
}

func init() {
	rootCmd.AddCommand(populateCmd)

	populateCmd.Flags().StringSliceVar(&populateDomains, "domains", nil, "only run the named domains (see pvfactor domains)")
	populateCmd.Flags().StringVar(&populateStart, "start", "", "only keep records on or after this date (YYYY-MM-DD)")
	populateCmd.Flags().StringVar(&populateEnd, "end", "", "only keep records on or before this date (YYYY-MM-DD)")
	populateCmd.Flags().BoolVar(&populateSkipMacro, "skip-macro", false, "do not run the economy-wide domains")

	populateCmd.Flags().Int("batch-size", config.DefaultBatchSize, "number of tickers between pauses")
	populateCmd.Flags().Duration("batch-delay", config.DefaultBatchDelay, "pause between batches of tickers")
	populateCmd.Flags().String("tickers-source", "wikipedia", "where to read the ticker universe from (wikipedia, browser, csv)")
	populateCmd.Flags().String("tickers-file", "", "ticker list used with --tickers-source=csv")

	bindFlag("populate.batch_size", populateCmd.Flags().Lookup("batch-size"))
	bindFlag("populate.batch_delay", populateCmd.Flags().Lookup("batch-delay"))
	bindFlag("populate.tickers_source", populateCmd.Flags().Lookup("tickers-source"))
	bindFlag("populate.tickers_file", populateCmd.Flags().Lookup("tickers-file"))
}

func parseWindow(start, end string) (process.Window, error) {
	startDate, err := config.ParseDate(start)
	if err != nil {
		return process.Window{}, err
	}

	endDate, err := config.ParseDate(end)
	if err != nil {
		return process.Window{}, err
	}

	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		return process.Window{}, fmt.Errorf("%w: %s > %s", config.ErrInvalidWindow, start, end)
	}

	return process.Window{Start: startDate, End: endDate}, nil
}

func tickerSource(settings config.Populate, logger zerolog.Logger) (universe.Source, error) {
	switch settings.TickersSource {
	case "", "wikipedia":
		return universe.NewWikipedia(logger), nil
	case "browser":
		return universe.NewBrowser(settings.UserAgent, logger), nil
	case "csv":
		if settings.TickersFile == "" {
			return nil, fmt.Errorf("%w: csv requires populate.tickers_file", universe.ErrUnknownSource)
		}
		return universe.CSVFile{Path: settings.TickersFile}, nil
	default:
		return nil, fmt.Errorf("%w: %s", universe.ErrUnknownSource, settings.TickersSource)
	}
}

func newFetchers(ctx context.Context, settings *config.Settings) *fetch.Fetchers {
	logger := zerolog.Ctx(ctx)

	api := client.New(client.Options{
		BaseURL:     settings.FMP.BaseURL,
		APIKey:      settings.FMP.APIKey,
		MinInterval: settings.FMP.MinInterval,
		MaxRetries:  settings.FMP.MaxRetries,
		Backoff:     client.Linear{Base: settings.FMP.RetryDelay},
		Timeout:     settings.FMP.Timeout,
		Logger:      *logger,
	})

	policy := fetch.NewPolicy(settings.Populate.MaxRetries, settings.Populate.RetryDelay, client.SystemClock{}, *logger)
	return fetch.New(fmp.New(api, *logger), policy)
}
