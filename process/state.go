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

// State tracks a single population task through the pipeline
type State int

const (
	Pending State = iota
	Fetching
	FetchFailed
	Fetched
	Translating
	TranslateFailed
	Translated
	Filtering
	Storing
	StoreFailedPartial
	Done
)

var stateNames = map[State]string{
	Pending:            "pending",
	Fetching:           "fetching",
	FetchFailed:        "fetch-failed",
	Fetched:            "fetched",
	Translating:        "translating",
	TranslateFailed:    "translate-failed",
	Translated:         "translated",
	Filtering:          "filtering",
	Storing:            "storing",
	StoreFailedPartial: "store-failed-partial",
	Done:               "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition follows s
func (s State) Terminal() bool {
	switch s {
	case FetchFailed, TranslateFailed, StoreFailedPartial, Done:
		return true
	default:
		return false
	}
}
