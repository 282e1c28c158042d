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
package fmp

// Value holds an upstream field exactly as it appeared on the wire. The
// upstream is loose about types (numbers arrive as strings, "None", or
// null) so coercion is deferred to the translators.
type Value []byte

func (v *Value) UnmarshalJSON(b []byte) error {
	*v = append((*v)[:0], b...)
	return nil
}

// IsNull reports whether the field was absent or explicitly null
func (v Value) IsNull() bool {
	return len(v) == 0 || string(v) == "null"
}
