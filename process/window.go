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
package process

import "time"

// Window is an inclusive range of calendar days. A zero bound is unset.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound is set
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Contains compares at day granularity, ignoring the time of day
func (w Window) Contains(dt time.Time) bool {
	day := truncate(dt)
	return !day.Before(truncate(w.Start)) && !day.After(truncate(w.End))
}

func truncate(dt time.Time) time.Time {
	y, m, d := dt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Resolve picks each bound independently: the explicit argument wins, then
// the domain setting, then the fallback. The boolean is false when neither
// explicit nor configured set any bound, meaning records are not filtered.
func Resolve(explicit, configured, fallback Window) (Window, bool) {
	pick := func(vals ...time.Time) time.Time {
		for _, val := range vals {
			if !val.IsZero() {
				return val
			}
		}
		return time.Time{}
	}

	resolved := Window{
		Start: pick(explicit.Start, configured.Start, fallback.Start),
		End:   pick(explicit.End, configured.End, fallback.End),
	}

	return resolved, !(explicit.IsZero() && configured.IsZero())
}
