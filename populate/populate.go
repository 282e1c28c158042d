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

// Package populate drives a run: it resolves the ticker universe, runs the
// macro domains once and then every entity domain for each ticker, pacing
// batches of tickers so the upstream quota is not exhausted.
package populate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/fetch"
	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/process"
	"github.com/penny-vault/pvfactor/store"
	"github.com/penny-vault/pvfactor/universe"
)

var (
	ErrUnknownDomain = errors.New("unknown domain")
	ErrUniverse      = errors.New("could not resolve ticker universe")
)

type Options struct {
	Fetchers *fetch.Fetchers
	Writer   *store.Writer
	Settings *config.Settings
	Universe universe.Source
	Clock    client.Clock
	Logger   zerolog.Logger

	// Domains restricts the run to the named domains; empty means all
	Domains []string

	// Window holds explicit start and end dates that override the
	// per-domain settings
	Window process.Window

	// BatchSize and BatchDelay override the populate settings when non-zero
	BatchSize  int
	BatchDelay time.Duration

	SkipMacro bool

	// RunID identifies the run in logs and bookkeeping; a new one is
	// generated when it is nil
	RunID uuid.UUID
}

type Populator struct {
	fetchers   *fetch.Fetchers
	writer     *store.Writer
	settings   *config.Settings
	universe   universe.Source
	clock      client.Clock
	logger     zerolog.Logger
	domains    []string
	window     process.Window
	batchSize  int
	batchDelay time.Duration
	skipMacro  bool
	runID      uuid.UUID
}

// Task is one (entity, domain) unit of work. Symbol is empty for macro
// domains.
type Task struct {
	Symbol string
	Domain *Domain
}

type TaskResult struct {
	Domain  string
	Symbol  string
	State   process.State
	Outcome process.Outcome
	Stored  store.Result
}

func New(opts Options) *Populator {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default(time.Now())
	}

	clock := opts.Clock
	if clock == nil {
		clock = client.SystemClock{}
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = settings.Populate.BatchSize
	}

	batchDelay := opts.BatchDelay
	if batchDelay <= 0 {
		batchDelay = settings.Populate.BatchDelay
	}

	return &Populator{
		fetchers:   opts.Fetchers,
		writer:     opts.Writer,
		settings:   settings,
		universe:   opts.Universe,
		clock:      clock,
		logger:     opts.Logger,
		domains:    opts.Domains,
		window:     opts.Window,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		skipMacro:  opts.SkipMacro,
		runID:      opts.RunID,
	}
}

// Populate ingests every selected domain for entities, or for the ticker
// universe when entities is empty. Task failures are counted in the summary
// and do not stop the run; an authentication failure or cancellation does.
func (p *Populator) Populate(ctx context.Context, entities []string) (*Summary, error) {
	runID := p.runID
	if runID == uuid.Nil {
		runID = uuid.New()
	}

	summary := newSummary(runID, p.clock.Now())
	logger := p.logger.With().Str("RunID", summary.RunID.String()).Logger()

	selected, err := p.selectDomains()
	if err != nil {
		return summary, err
	}

	if len(entities) == 0 {
		if p.universe == nil {
			return summary, fmt.Errorf("%w: %w", ErrUniverse, universe.ErrNoTickers)
		}

		entities, err = p.universe.Tickers(ctx)
		if err != nil {
			return summary, fmt.Errorf("%w: %w", ErrUniverse, err)
		}
	} else {
		entities = universe.Normalize(entities)
	}

	if len(entities) == 0 {
		return summary, fmt.Errorf("%w: %w", ErrUniverse, universe.ErrNoTickers)
	}

	summary.NumEntities = len(entities)
	logger.Info().Int("NumEntities", len(entities)).Int("NumDomains", len(selected)).Int("BatchSize", p.batchSize).Msg("starting population run")

	if !p.skipMacro {
		for _, domain := range selected {
			if domain.Scope != GlobalScope {
				continue
			}

			if err := p.runTask(ctx, Task{Domain: domain}, summary, logger); err != nil {
				return summary.finish(p.clock.Now()), err
			}
		}
	}

	for idx, symbol := range entities {
		for _, group := range EntityGroups {
			for _, domain := range selected {
				if domain.Group != group || domain.Scope != EntityScope {
					continue
				}

				if err := p.runTask(ctx, Task{Symbol: symbol, Domain: domain}, summary, logger); err != nil {
					return summary.finish(p.clock.Now()), err
				}
			}
		}

		done := idx + 1
		if p.batchSize > 0 && done%p.batchSize == 0 && done < len(entities) {
			logger.Info().Int("Completed", done).Int("Remaining", len(entities)-done).Dur("Delay", p.batchDelay).Msg("batch complete, pausing")
			if err := p.clock.Sleep(ctx, p.batchDelay); err != nil {
				return summary.finish(p.clock.Now()), err
			}
		}
	}

	summary.finish(p.clock.Now())
	logger.Info().Object("Summary", summary).Msg("population run complete")

	return summary, nil
}

// runTask checks for cancellation, executes a task and records its terminal
// state. Only fatal errors are returned.
func (p *Populator) runTask(ctx context.Context, task Task, summary *Summary, logger zerolog.Logger) error {
	if err := ctx.Err(); err != nil {
		logger.Warn().Err(err).Msg("run cancelled")
		return err
	}

	taskLogger := logger.With().Str("Domain", task.Domain.Name).Str("Ticker", task.Symbol).Logger()
	taskLogger.Debug().Str("State", process.Fetching.String()).Msg("task started")

	result, err := task.Domain.run(ctx, p, task)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			taskLogger.Error().Err(err).Msg("upstream rejected credentials, aborting run")
		}
		summary.record(result)
		return err
	}

	summary.record(result)

	event := taskLogger.Info()
	if result.State != process.Done {
		event = taskLogger.Warn()
	}
	event.Str("State", result.State.String()).
		Int("Fetched", result.Outcome.Fetched).
		Int("Stored", result.Stored.Stored).
		Int("Failed", result.Stored.Failed).
		Msg("task finished")

	return nil
}

func (p *Populator) selectDomains() ([]*Domain, error) {
	if len(p.domains) == 0 {
		return catalog, nil
	}

	want := make(map[string]bool, len(p.domains))
	for _, name := range p.domains {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, name)
		}
		want[name] = true
	}

	selected := make([]*Domain, 0, len(want))
	for _, domain := range catalog {
		if want[domain.Name] {
			selected = append(selected, domain)
		}
	}

	return selected, nil
}

func (p *Populator) today() time.Time {
	now := p.clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (p *Populator) processOptions(task Task, settings config.DomainSettings) process.Options {
	return process.Options{
		Domain:       task.Domain.Name,
		Temporal:     task.Domain.Temporal,
		Explicit:     p.window,
		Configured:   process.Window{Start: settings.Start, End: settings.End},
		DefaultStart: p.settings.Populate.DefaultStart,
		Today:        p.today(),
		Logger:       p.logger.With().Str("Ticker", task.Symbol).Logger(),
	}
}

// query resolves the domain settings for task and renders the upstream
// query. Date parameters use the resolved window so the upstream does not
// return more history than the run wants.
func (p *Populator) query(task Task) (config.DomainSettings, fmp.Query) {
	settings := p.settings.Domain(task.Domain.Name)
	opts := p.processOptions(task, settings)
	window, _ := process.Resolve(opts.Explicit, opts.Configured, process.Window{Start: opts.DefaultStart, End: opts.Today})

	exchange := settings.Exchange
	if exchange == "" && task.Domain.Scope == GlobalScope {
		exchange = p.settings.Macro.Exchange
	}

	return settings, fmp.Query{
		Symbol:   task.Symbol,
		Period:   settings.Period,
		Page:     settings.Page,
		Limit:    settings.Limit,
		From:     window.Start,
		To:       window.End,
		Exchange: exchange,
	}
}
