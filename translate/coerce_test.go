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
package translate_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvfactor/fmp"
	"github.com/penny-vault/pvfactor/translate"
)

var _ = Describe("Coercion", func() {
	DescribeTable("Float",
		func(raw string, expected any) {
			res := translate.Float(fmp.Value(raw))
			if expected == nil {
				Expect(res).To(BeNil())
				return
			}
			Expect(res).ToNot(BeNil())
			Expect(*res).To(Equal(expected))
		},
		Entry("number", "1.5", 1.5),
		Entry("numeric string", `"2.25"`, 2.25),
		Entry("padded string", `" 7 "`, 7.0),
		Entry("null", "null", nil),
		Entry("missing", "", nil),
		Entry("empty string", `""`, nil),
		Entry("garbage", `"n/a"`, nil),
		Entry("nan string", `"NaN"`, nil),
		Entry("infinite string", `"+Inf"`, nil),
		Entry("object", `{"v":1}`, nil),
		Entry("array", "[1]", nil),
		Entry("boolean", "true", nil),
	)

	DescribeTable("Int",
		func(raw string, expected any) {
			res := translate.Int(fmp.Value(raw))
			if expected == nil {
				Expect(res).To(BeNil())
				return
			}
			Expect(res).ToNot(BeNil())
			Expect(*res).To(BeEquivalentTo(expected))
		},
		Entry("integer", "42", 42),
		Entry("integer string", `"17"`, 17),
		Entry("fraction truncates", "3.9", 3),
		Entry("negative fraction truncates", "-3.9", -3),
		Entry("exponent", "1e3", 1000),
		Entry("fractional string", `"3.9"`, nil),
		Entry("null", "null", nil),
		Entry("boolean", "false", nil),
	)

	DescribeTable("Str",
		func(raw string, expected any) {
			res := translate.Str(fmp.Value(raw))
			if expected == nil {
				Expect(res).To(BeNil())
				return
			}
			Expect(res).ToNot(BeNil())
			Expect(*res).To(Equal(expected))
		},
		Entry("string", `"Technology"`, "Technology"),
		Entry("number", "12.5", "12.5"),
		Entry("boolean", "true", "true"),
		Entry("empty", `""`, nil),
		Entry("null", "null", nil),
		Entry("object", "{}", nil),
	)

	DescribeTable("Bool",
		func(raw string, expected any) {
			res := translate.Bool(fmp.Value(raw))
			if expected == nil {
				Expect(res).To(BeNil())
				return
			}
			Expect(res).ToNot(BeNil())
			Expect(*res).To(Equal(expected))
		},
		Entry("true", "true", true),
		Entry("string", `"false"`, false),
		Entry("one", "1", true),
		Entry("zero", "0", false),
		Entry("word", `"yes"`, nil),
		Entry("null", "null", nil),
	)

	DescribeTable("Date",
		func(raw string, ok bool, expected time.Time) {
			dt, parsed := translate.Date(raw)
			Expect(parsed).To(Equal(ok))
			Expect(dt).To(Equal(expected))
		},
		Entry("day", "2023-01-03", true, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)),
		Entry("timestamp", "2023-01-03 16:00:00", true, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)),
		Entry("empty", "", false, time.Time{}),
		Entry("us format", "01/03/2023", false, time.Time{}),
		Entry("too short", "2023-1-3", false, time.Time{}),
	)

	DescribeTable("OptDate",
		func(raw string, expected *time.Time) {
			res := translate.OptDate(fmp.Value(raw))
			if expected == nil {
				Expect(res).To(BeNil())
				return
			}
			Expect(res).ToNot(BeNil())
			Expect(*res).To(Equal(*expected))
		},
		Entry("day", `"2024-02-29"`, ptr(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))),
		Entry("timestamp", `"2024-02-29 09:30:00"`, ptr(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))),
		Entry("word", `"soon"`, nil),
		Entry("number", "0", nil),
		Entry("boolean", "false", nil),
		Entry("object", `{"d":"2024-02-29"}`, nil),
		Entry("null", "null", nil),
		Entry("missing", "", nil),
	)
})

func ptr[T any](v T) *T { return &v }
