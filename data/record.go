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

// Package data defines the canonical records written to the database. Every
// record knows its table, its primary key and how to render itself as an
// ordered list of column values.
package data

import (
	"time"

	"github.com/rs/zerolog"
)

// DateLayout is used whenever a record date is rendered as text
const DateLayout = "2006-01-02"

// Field is a single column/value pair. Nil pointers are written as NULL.
type Field struct {
	Column string
	Value  any
}

type Record interface {
	zerolog.LogObjectMarshaler

	Table() string

	// Key lists the primary key columns; they must also appear in Row
	Key() []string

	// Row returns every column in table order
	Row() []Field

	// EventDate is the date used for window filtering. Snapshot records
	// return the zero time.
	EventDate() time.Time
}

// EntityRecord is a record that belongs to a single ticker
type EntityRecord interface {
	Record
	Tag(symbol string)
}

// Records converts a typed slice to a slice of the Record interface
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for idx, item := range items {
		out[idx] = item
	}
	return out
}

// TagAll stamps every entity record with symbol; other records are left alone
func TagAll[T Record](items []T, symbol string) {
	for _, item := range items {
		if rec, ok := any(item).(EntityRecord); ok {
			rec.Tag(symbol)
		}
	}
}
