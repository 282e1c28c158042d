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

// Package healthcheck reports run progress to healthchecks.io
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const DefaultPingURL = "https://hc-ping.com"

var (
	ErrStatus = errors.New("status code is invalid")
)

// Pinger signals the start and end of a run. A Pinger without a check id
// does nothing.
type Pinger struct {
	BaseURL string
	CheckID string

	client *resty.Client
	logger zerolog.Logger
}

func New(checkID string, logger zerolog.Logger) *Pinger {
	return &Pinger{
		BaseURL: DefaultPingURL,
		CheckID: checkID,
		client:  resty.New().SetTimeout(10 * time.Second).SetRetryCount(2),
		logger:  logger,
	}
}

// Start tells healthchecks.io a run has begun so it can measure duration
func (p *Pinger) Start(ctx context.Context) error {
	return p.ping(ctx, "/start", "")
}

// Success reports a finished run; body is shown in the check's log
func (p *Pinger) Success(ctx context.Context, body string) error {
	return p.ping(ctx, "", body)
}

// Fail reports a failed run
func (p *Pinger) Fail(ctx context.Context, body string) error {
	return p.ping(ctx, "/fail", body)
}

func (p *Pinger) ping(ctx context.Context, suffix, body string) error {
	if p.CheckID == "" {
		return nil
	}

	url := fmt.Sprintf("%s/%s%s", p.BaseURL, p.CheckID, suffix)
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(body).
		Post(url)
	if err != nil {
		p.logger.Warn().Err(err).Str("URL", url).Msg("healthcheck ping failed")
		return err
	}

	if resp.StatusCode() != 200 {
		p.logger.Warn().Int("StatusCode", resp.StatusCode()).Str("URL", url).Msg("healthcheck ping rejected")
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}
