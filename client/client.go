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

// Package client issues paced, retrying GET requests against the upstream
// market data API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/penny-vault/pvfactor/pkginfo"
)

const (
	DefaultBaseURL     = "https://financialmodelingprep.com/stable"
	DefaultMinInterval = 100 * time.Millisecond
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 1 * time.Second
	DefaultTimeout     = 30 * time.Second
)

var (
	// ErrUnauthorized is returned when the upstream rejects the API key. It is
	// never retried and callers are expected to abort the run.
	ErrUnauthorized      = errors.New("upstream rejected api key")
	ErrInvalidStatusCode = errors.New("invalid status code received")
	ErrEmptyBody         = errors.New("upstream returned an empty body")
	ErrInvalidBody       = errors.New("upstream returned a body that is not valid JSON")
	ErrUpstreamMessage   = errors.New("upstream returned an error message")
	ErrTransport         = errors.New("request failed")
)

type Options struct {
	BaseURL     string
	APIKey      string
	MinInterval time.Duration
	MaxRetries  int
	Backoff     Backoff
	Clock       Clock
	Timeout     time.Duration
	Logger      zerolog.Logger

	// HTTPClient replaces the transport used by resty; mostly useful in tests
	HTTPClient *http.Client
}

// Client is safe for concurrent use. All callers share one limiter so the
// upstream quota is respected regardless of how many goroutines issue requests.
type Client struct {
	resty      *resty.Client
	limiter    *rate.Limiter
	backoff    Backoff
	clock      Clock
	maxRetries int
	logger     zerolog.Logger
}

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}

	if opts.Backoff == nil {
		opts.Backoff = Linear{Base: DefaultRetryDelay}
	}

	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}

	var restyClient *resty.Client
	if opts.HTTPClient != nil {
		restyClient = resty.NewWithClient(opts.HTTPClient)
	} else {
		restyClient = resty.New()
	}

	restyClient.
		SetBaseURL(opts.BaseURL).
		SetQueryParam("apikey", opts.APIKey).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", pkginfo.UserAgent())

	return &Client{
		resty:      restyClient,
		limiter:    rate.NewLimiter(limit, 1),
		backoff:    opts.Backoff,
		clock:      opts.Clock,
		maxRetries: opts.MaxRetries,
		logger:     opts.Logger,
	}
}

// Get requests path with the given query parameters and returns the raw JSON
// body. When every attempt fails transiently Get returns a nil body and a nil
// error; callers treat that as "no data". The only errors returned are
// ErrUnauthorized and context cancellation.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	logger := c.logger.With().Str("Path", path).Logger()

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff.Delay(attempt - 1)
			logger.Debug().Int("Attempt", attempt+1).Dur("Delay", delay).Msg("retrying request")
			if err := c.clock.Sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.do(ctx, path, params)
		if err == nil {
			return body, nil
		}

		if errors.Is(err, ErrUnauthorized) {
			logger.Error().Err(err).Msg("authentication failed")
			return nil, err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		logger.Warn().Err(err).Int("Attempt", attempt+1).Int("MaxRetries", c.maxRetries).Msg("request failed")
	}

	logger.Error().Int("MaxRetries", c.maxRetries).Msg("giving up on request")
	return nil, nil
}

// wait blocks until the limiter grants a token
func (c *Client) wait(ctx context.Context) error {
	now := c.clock.Now()
	reservation := c.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return fmt.Errorf("%w: rate limiter refused reservation", ErrTransport)
	}

	delay := reservation.DelayFrom(now)
	if delay <= 0 {
		return nil
	}

	if err := c.clock.Sleep(ctx, delay); err != nil {
		reservation.CancelAt(c.clock.Now())
		return err
	}

	return nil
}

func (c *Client) do(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	status := resp.StatusCode()
	if status == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w (%d): %s", ErrInvalidStatusCode, status, path)
	}

	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	if !json.Valid(body) {
		return nil, ErrInvalidBody
	}

	if msg := gjson.GetBytes(body, "Error Message"); msg.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamMessage, msg.String())
	}

	return body, nil
}
