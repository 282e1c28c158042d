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

// Package fmp maps upstream resources to typed raw records. It knows the
// path and parameters of every resource and the shape each one returns, but
// nothing about retries or storage.
package fmp

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var (
	ErrUnexpectedShape = errors.New("upstream payload is neither an object nor a list")
)

// Getter issues a GET request and returns the raw body. A nil body with a
// nil error means the upstream had nothing usable.
type Getter interface {
	Get(ctx context.Context, path string, params map[string]string) ([]byte, error)
}

type Adapter struct {
	getter Getter
	logger zerolog.Logger

	screenerMu     sync.Mutex
	screenerLoaded bool
	screenerList   []Stock
	screener       *haxmap.Map[string, *Stock]
}

func New(getter Getter, logger zerolog.Logger) *Adapter {
	return &Adapter{
		getter:   getter,
		logger:   logger,
		screener: haxmap.New[string, *Stock](),
	}
}

// Query carries every parameter a resource may accept. Each resource method
// picks the parameters it understands; unset values are not sent.
type Query struct {
	Symbol   string
	Period   string
	Page     int
	Limit    int
	From     time.Time
	To       time.Time
	Exchange string
	Name     string
	Sector   string
	Industry string
}

type param int

const (
	symbolParam param = iota
	periodParam
	pageParam
	limitParam
	fromParam
	toParam
	exchangeParam
	nameParam
	sectorParam
	industryParam
)

func (q Query) values(keys ...param) map[string]string {
	vals := make(map[string]string, len(keys))
	setStr := func(key, val string) {
		if val != "" {
			vals[key] = val
		}
	}

	setDate := func(key string, val time.Time) {
		if !val.IsZero() {
			vals[key] = val.Format(time.DateOnly)
		}
	}

	for _, key := range keys {
		switch key {
		case symbolParam:
			setStr("symbol", q.Symbol)
		case periodParam:
			setStr("period", q.Period)
		case pageParam:
			// page 0 is meaningful upstream so it is always sent
			vals["page"] = strconv.Itoa(q.Page)
		case limitParam:
			if q.Limit > 0 {
				vals["limit"] = strconv.Itoa(q.Limit)
			}
		case fromParam:
			setDate("from", q.From)
		case toParam:
			setDate("to", q.To)
		case exchangeParam:
			setStr("exchange", q.Exchange)
		case nameParam:
			setStr("name", q.Name)
		case sectorParam:
			setStr("sector", q.Sector)
		case industryParam:
			setStr("industry", q.Industry)
		}
	}

	return vals
}

// getList decodes a list resource. A bare object is treated as a list of
// one; elements that are not objects, or that fail to decode, are dropped.
func getList[T any](ctx context.Context, a *Adapter, path string, params map[string]string) ([]T, error) {
	body, err := a.getter.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	if body == nil {
		return nil, nil
	}

	logger := a.logger.With().Str("Path", path).Logger()

	parsed := gjson.ParseBytes(body)
	var elems []gjson.Result
	switch {
	case parsed.IsArray():
		elems = parsed.Array()
	case parsed.IsObject():
		elems = []gjson.Result{parsed}
	default:
		logger.Warn().Err(ErrUnexpectedShape).Str("Type", parsed.Type.String()).Msg("discarding response")
		return nil, nil
	}

	out := make([]T, 0, len(elems))
	dropped := 0
	for _, elem := range elems {
		if !elem.IsObject() {
			dropped++
			continue
		}

		var rec T
		if err := json.Unmarshal([]byte(elem.Raw), &rec); err != nil {
			logger.Warn().Err(err).Str("Element", elem.Raw).Msg("could not decode element")
			dropped++
			continue
		}

		out = append(out, rec)
	}

	if dropped > 0 {
		logger.Debug().Int("Dropped", dropped).Int("Kept", len(out)).Msg("discarded malformed elements")
	}

	return out, nil
}

// getOne decodes a single-object resource, taking the first element when the
// upstream wraps it in a list. It returns nil when there is nothing to take.
func getOne[T any](ctx context.Context, a *Adapter, path string, params map[string]string) (*T, error) {
	items, err := getList[T](ctx, a, path, params)
	if err != nil || len(items) == 0 {
		return nil, err
	}

	return &items[0], nil
}

// Stocks returns the full company screener. The screener is fetched once per
// adapter and served from memory afterwards.
func (a *Adapter) Stocks(ctx context.Context) ([]Stock, error) {
	a.screenerMu.Lock()
	defer a.screenerMu.Unlock()

	if a.screenerLoaded {
		return a.screenerList, nil
	}

	list, err := getList[Stock](ctx, a, "/company-screener", nil)
	if err != nil || len(list) == 0 {
		return nil, err
	}

	for idx := range list {
		a.screener.Set(strings.ToUpper(list[idx].Symbol), &list[idx])
	}

	a.screenerList = list
	a.screenerLoaded = true
	a.logger.Debug().Int("NumStocks", len(list)).Msg("cached company screener")

	return list, nil
}

// CompanyProfile looks symbol up in the cached company screener
func (a *Adapter) CompanyProfile(ctx context.Context, symbol string) (*Stock, error) {
	if _, err := a.Stocks(ctx); err != nil {
		return nil, err
	}

	if stock, ok := a.screener.Get(strings.ToUpper(symbol)); ok {
		return stock, nil
	}

	return nil, nil
}
