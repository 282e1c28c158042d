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

// Package process runs the fetch, translate and filter pipeline shared by
// every domain.
package process

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/data"
)

// Tagged holds the sub-entities produced by a multi-object domain, keyed by
// sub-entity name
type Tagged map[string][]data.Record

type Options struct {
	Domain string

	// Temporal is false for snapshot domains, which are never filtered
	Temporal bool

	Explicit   Window
	Configured Window

	// DefaultStart and Today fill bounds that nothing else set
	DefaultStart time.Time
	Today        time.Time

	Logger zerolog.Logger
}

func (o Options) fallback() Window {
	today := o.Today
	if today.IsZero() {
		today = time.Now()
	}
	return Window{Start: o.DefaultStart, End: today}
}

// Outcome summarises one pass through the pipeline
type Outcome struct {
	State      State
	Fetched    int
	Translated int
	Kept       int
	Window     Window
	Filtered   bool
}

// IsFatal reports whether err must abort the run rather than the task
func IsFatal(err error) bool {
	return errors.Is(err, client.ErrUnauthorized) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Process fetches raw records, translates them and applies the resolved date
// window. Missing data at any stage yields a nil slice and a failed state;
// the only errors returned are fatal.
func Process[R any, T data.Record](ctx context.Context, opts Options, fetch func(context.Context) ([]R, error), translate func([]R) []T) ([]T, Outcome, error) {
	logger := opts.Logger.With().Str("Domain", opts.Domain).Logger()
	outcome := Outcome{State: Fetching}

	raw, err := fetch(ctx)
	if err != nil {
		outcome.State = FetchFailed
		return nil, outcome, err
	}

	outcome.Fetched = len(raw)
	if len(raw) == 0 {
		logger.Info().Msg("no data")
		outcome.State = FetchFailed
		return nil, outcome, nil
	}

	outcome.State = Translating
	records := translate(raw)
	outcome.Translated = len(records)
	if len(records) == 0 {
		logger.Warn().Int("NumRaw", len(raw)).Msg("translation failed")
		outcome.State = TranslateFailed
		return nil, outcome, nil
	}

	outcome.State = Filtering
	kept := filter(records, opts, &outcome)
	outcome.Kept = len(kept)
	if len(kept) == 0 {
		logger.Info().Time("Start", outcome.Window.Start).Time("End", outcome.Window.End).Msg("no records in date window")
		outcome.State = Done
		return nil, outcome, nil
	}

	return kept, outcome, nil
}

// ProcessMulti is the variant for domains whose single fetch yields several
// sub-entities. Each sub-list is filtered on its own and empty sub-lists are
// dropped.
func ProcessMulti[B interface{ IsEmpty() bool }](ctx context.Context, opts Options, fetch func(context.Context) (B, error), translate func(B) Tagged) (Tagged, Outcome, error) {
	logger := opts.Logger.With().Str("Domain", opts.Domain).Logger()
	outcome := Outcome{State: Fetching}

	bundle, err := fetch(ctx)
	if err != nil {
		outcome.State = FetchFailed
		return nil, outcome, err
	}

	if bundle.IsEmpty() {
		logger.Info().Msg("no data")
		outcome.State = FetchFailed
		return nil, outcome, nil
	}

	outcome.Fetched = 1
	outcome.State = Translating
	tagged := translate(bundle)
	for _, records := range tagged {
		outcome.Translated += len(records)
	}

	if outcome.Translated == 0 {
		logger.Warn().Msg("translation failed")
		outcome.State = TranslateFailed
		return nil, outcome, nil
	}

	outcome.State = Filtering
	result := make(Tagged, len(tagged))
	for name, records := range tagged {
		kept := filter(records, opts, &outcome)
		if len(kept) == 0 {
			logger.Debug().Str("SubEntity", name).Msg("sub-entity empty after filtering")
			continue
		}
		result[name] = kept
		outcome.Kept += len(kept)
	}

	if len(result) == 0 {
		outcome.State = Done
		return nil, outcome, nil
	}

	return result, outcome, nil
}

func filter[T data.Record](records []T, opts Options, outcome *Outcome) []T {
	if !opts.Temporal {
		return records
	}

	window, active := Resolve(opts.Explicit, opts.Configured, opts.fallback())
	outcome.Window = window
	outcome.Filtered = active
	if !active {
		return records
	}

	kept := make([]T, 0, len(records))
	for _, rec := range records {
		// undated snapshots ride along with their dated siblings
		if dt := rec.EventDate(); dt.IsZero() || window.Contains(dt) {
			kept = append(kept, rec)
		}
	}

	return kept
}
