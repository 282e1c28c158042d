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
package config_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/penny-vault/pvfactor/config"
)

var _ = Describe("Config", func() {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	load := func(toml string) (*config.Settings, error) {
		v := viper.New()
		config.SetDefaults(v, now)
		v.SetConfigType("toml")
		Expect(v.ReadConfig(strings.NewReader(toml))).To(Succeed())
		return config.Load(v, now)
	}

	It("runs with zero configuration", func() {
		settings, err := load("")
		Expect(err).ToNot(HaveOccurred())

		Expect(settings.Populate.BatchSize).To(Equal(25))
		Expect(settings.Populate.BatchDelay).To(Equal(time.Minute))
		Expect(settings.Populate.MaxRetries).To(Equal(3))
		Expect(settings.Populate.RetryDelay).To(Equal(30 * time.Second))
		Expect(settings.Populate.DefaultStart).To(Equal(time.Date(2019, 3, 17, 0, 0, 0, 0, time.UTC)))
		Expect(settings.Macro.Sectors).To(HaveLen(11))
		Expect(settings.Macro.EconomicIndicators).To(ContainElement("GDP"))
	})

	It("applies the domain defaults and the general limit", func() {
		settings, err := load("")
		Expect(err).ToNot(HaveOccurred())

		estimates := settings.Domain("analyst_estimates")
		Expect(estimates.Period).To(Equal("annual"))
		Expect(estimates.Limit).To(Equal(10))
		Expect(settings.Domain("ratings").Limit).To(Equal(10))
		Expect(settings.Domain("dividends").Limit).To(Equal(config.DefaultLimit))
	})

	It("reads per-domain windows", func() {
		settings, err := load(`
[populate]
batch_size = 5
batch_delay = "2s"

[domains.prices]
start_date = "2023-01-01"
end_date = "2023-01-31"

[domains.ratings]
start_date = "2020-06-01"
`)
		Expect(err).ToNot(HaveOccurred())
		Expect(settings.Populate.BatchSize).To(Equal(5))
		Expect(settings.Populate.BatchDelay).To(Equal(2 * time.Second))

		prices := settings.Domain("prices")
		Expect(prices.Start).To(Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
		Expect(prices.End).To(Equal(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)))

		ratings := settings.Domain("ratings")
		Expect(ratings.Limit).To(Equal(10))
		Expect(ratings.End.IsZero()).To(BeTrue())
	})

	DescribeTable("rejects malformed dates",
		func(toml string) {
			_, err := load(toml)
			Expect(err).To(MatchError(config.ErrInvalidDate))
		},
		Entry("default start", "[populate]\ndefault_start_date = \"01/02/2020\"\n"),
		Entry("domain start", "[domains.prices]\nstart_date = \"2023-13-01\"\n"),
		Entry("domain end", "[domains.prices]\nend_date = \"yesterday\"\n"),
	)

	It("rejects an inverted window", func() {
		_, err := load("[domains.prices]\nstart_date = \"2023-02-01\"\nend_date = \"2023-01-01\"\n")
		Expect(err).To(MatchError(config.ErrInvalidWindow))
	})

	It("parses empty dates as unset", func() {
		dt, err := config.ParseDate("")
		Expect(err).ToNot(HaveOccurred())
		Expect(dt.IsZero()).To(BeTrue())
	})
})
