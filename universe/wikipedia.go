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
	"bytes"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/pkginfo"
)

// Wikipedia downloads the S&P 500 constituents page
type Wikipedia struct {
	URL    string
	client *resty.Client
	logger zerolog.Logger
}

func NewWikipedia(logger zerolog.Logger) *Wikipedia {
	return &Wikipedia{
		URL:    WikipediaURL,
		client: resty.New().SetHeader("User-Agent", pkginfo.UserAgent()+" (https://github.com/penny-vault/pvfactor)"),
		logger: logger,
	}
}

func (w *Wikipedia) Tickers(ctx context.Context) ([]string, error) {
	resp, err := w.client.R().SetContext(ctx).Get(w.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}

	if resp.StatusCode() >= 300 {
		w.logger.Error().Int("StatusCode", resp.StatusCode()).Str("Url", w.URL).Msg("constituents page request failed")
		return nil, fmt.Errorf("%w (%d): %s", ErrSourceFailed, resp.StatusCode(), w.URL)
	}

	tickers, err := ParseConstituents(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, err
	}

	w.logger.Info().Int("NumTickers", len(tickers)).Msg("loaded S&P 500 constituents")
	return tickers, nil
}
