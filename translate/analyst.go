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
package translate

import (
	"time"

	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/process"
)

// GradeBundle splits a grades fetch into its historical and consensus
// sub-entities, keyed by table name.
func GradeBundle(bundle *fmp.GradesBundle, asOf time.Time) process.Tagged {
	if bundle.IsEmpty() {
		return nil
	}

	tagged := make(process.Tagged, 2)
	if history := Grades(bundle.History); len(history) > 0 {
		tagged["grades"] = data.Records(history)
	}

	if bundle.Consensus != nil {
		if consensus := GradesConsensus([]fmp.GradesConsensus{*bundle.Consensus}, asOf); len(consensus) > 0 {
			tagged["grades_consensus"] = data.Records(consensus)
		}
	}

	return tagged
}
