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

// Package fetch wraps upstream resources in a per-domain retry loop. The
// loop is independent of the client's own retries: it repeats a whole
// resource call when the result is empty or failed.
package fetch

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/process"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 30 * time.Second
)

type Policy struct {
	MaxRetries int
	Backoff    client.Backoff
	Clock      client.Clock
	Logger     zerolog.Logger
}

// NewPolicy waits retryDelay between attempts
func NewPolicy(maxRetries int, retryDelay time.Duration, clock client.Clock, logger zerolog.Logger) Policy {
	return Policy{
		MaxRetries: maxRetries,
		Backoff:    client.Constant{Wait: retryDelay},
		Clock:      clock,
		Logger:     logger,
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	if p.Backoff == nil {
		p.Backoff = client.Constant{Wait: DefaultRetryDelay}
	}
	if p.Clock == nil {
		p.Clock = client.SystemClock{}
	}
	return p
}

// Retry calls fn until it returns a non-empty result or the attempts run out.
// Exhaustion is logged and yields the zero value with a nil error; fatal
// errors are returned at once.
func Retry[T any](ctx context.Context, policy Policy, domain string, fn func(context.Context) (T, error), empty func(T) bool) (T, error) {
	policy = policy.withDefaults()
	logger := policy.Logger.With().Str("Domain", domain).Logger()

	var zero T
	for attempt := 0; attempt < policy.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := policy.Backoff.Delay(attempt - 1)
			logger.Debug().Int("Attempt", attempt+1).Dur("Delay", delay).Msg("retrying fetch")
			if err := policy.Clock.Sleep(ctx, delay); err != nil {
				return zero, err
			}
		}

		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err != nil {
			if process.IsFatal(err) {
				return zero, err
			}
			logger.Warn().Err(err).Int("Attempt", attempt+1).Msg("fetch failed")
			continue
		}

		if !empty(result) {
			return result, nil
		}

		logger.Debug().Int("Attempt", attempt+1).Msg("fetch returned no data")
	}

	logger.Warn().Int("MaxRetries", policy.MaxRetries).Msg("giving up on fetch")
	return zero, nil
}

func retryList[T any](ctx context.Context, policy Policy, domain string, fn func(context.Context) ([]T, error)) ([]T, error) {
	return Retry(ctx, policy, domain, fn, func(items []T) bool { return len(items) == 0 })
}

// retryOne retries a single-object resource and presents it as a list of
// zero or one element
func retryOne[T any](ctx context.Context, policy Policy, domain string, fn func(context.Context) (*T, error)) ([]T, error) {
	item, err := Retry(ctx, policy, domain, fn, func(item *T) bool { return item == nil })
	if err != nil || item == nil {
		return nil, err
	}
	return []T{*item}, nil
}
