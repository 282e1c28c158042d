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
package cmd

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/populate"
)

var _ = Describe("domains", func() {
	It("renders one row per catalog domain under the header", func() {
		settings := config.Default(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
		out := domainsTable(settings).String()

		Expect(out).To(ContainSubstring("DOMAIN"))
		Expect(out).To(ContainSubstring("TABLES"))
		for _, domain := range populate.Catalog() {
			Expect(out).To(ContainSubstring(domain.Name))
		}
		Expect(out).To(ContainSubstring(settings.Populate.DefaultStartDate))
	})
})
