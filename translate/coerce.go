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

// Package translate maps raw upstream records onto canonical records.
// Translators never fail: a field that is missing or cannot be coerced
// becomes nil, and a record lacking its key date is skipped.
package translate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/penny-vault/pvfactor/fmp"
)

func parse(v fmp.Value) (gjson.Result, bool) {
	if v.IsNull() {
		return gjson.Result{}, false
	}

	res := gjson.ParseBytes(v)
	if res.Type == gjson.Null {
		return res, false
	}

	return res, true
}

// Float coerces numbers and numeric strings. Non-finite values are rejected.
func Float(v fmp.Value) *float64 {
	res, ok := parse(v)
	if !ok {
		return nil
	}

	var f float64
	switch res.Type {
	case gjson.Number:
		f = res.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(res.Str), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

// Int coerces integers. A fractional JSON number is truncated toward zero but
// a fractional string is rejected.
func Int(v fmp.Value) *int64 {
	res, ok := parse(v)
	if !ok {
		return nil
	}

	switch res.Type {
	case gjson.Number:
		if i, err := strconv.ParseInt(res.Raw, 10, 64); err == nil {
			return &i
		}

		f := res.Float()
		if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
			return nil
		}

		i := int64(f)
		return &i
	case gjson.String:
		i, err := strconv.ParseInt(strings.TrimSpace(res.Str), 10, 64)
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}

// Str returns strings as-is and renders numbers and booleans in their JSON
// form. Empty strings, objects and arrays yield nil.
func Str(v fmp.Value) *string {
	res, ok := parse(v)
	if !ok {
		return nil
	}

	var s string
	switch res.Type {
	case gjson.String:
		s = res.Str
	case gjson.Number, gjson.True, gjson.False:
		s = res.Raw
	default:
		return nil
	}

	if s == "" {
		return nil
	}

	return &s
}

func Bool(v fmp.Value) *bool {
	res, ok := parse(v)
	if !ok {
		return nil
	}

	var b bool
	switch res.Type {
	case gjson.True, gjson.False:
		b = res.Bool()
	case gjson.Number:
		b = res.Float() != 0
	case gjson.String:
		parsed, err := strconv.ParseBool(strings.TrimSpace(res.Str))
		if err != nil {
			return nil
		}
		b = parsed
	default:
		return nil
	}

	return &b
}

// Date parses the calendar day at the start of s. Both "2023-01-03" and
// "2023-01-03 16:00:00" are accepted.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(time.DateOnly) {
		return time.Time{}, false
	}

	dt, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return time.Time{}, false
	}

	return dt, true
}

// OptDate coerces a non-key date. Anything that is not a date string yields
// nil.
func OptDate(v fmp.Value) *time.Time {
	s := Str(v)
	if s == nil {
		return nil
	}

	dt, ok := Date(*s)
	if !ok {
		return nil
	}
	return &dt
}
