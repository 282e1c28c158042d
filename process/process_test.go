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
package process_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
	"github.com/penny-vault/pvfactor/data"
	"github.com/penny-vault/pvfactor/process"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type rawBar struct {
	Date time.Time
}

func fetchBars(dates ...time.Time) func(context.Context) ([]rawBar, error) {
	return func(context.Context) ([]rawBar, error) {
		out := make([]rawBar, len(dates))
		for idx, dt := range dates {
			out[idx] = rawBar{Date: dt}
		}
		return out, nil
	}
}

func toPrices(raw []rawBar) []*data.Price {
	out := make([]*data.Price, 0, len(raw))
	for _, r := range raw {
		out = append(out, &data.Price{Symbol: "AAPL", Date: r.Date})
	}
	return out
}

func dates(prices []*data.Price) []time.Time {
	out := make([]time.Time, len(prices))
	for idx, p := range prices {
		out[idx] = p.Date
	}
	return out
}

var _ = Describe("Process", func() {
	var (
		ctx  context.Context
		opts process.Options
		bars func(context.Context) ([]rawBar, error)
	)

	BeforeEach(func() {
		ctx = context.Background()
		opts = process.Options{
			Domain:       "prices",
			Temporal:     true,
			DefaultStart: day(2018, 1, 1),
			Today:        day(2023, 6, 1),
			Logger:       zerolog.Nop(),
		}
		bars = fetchBars(day(2022, 12, 31), day(2023, 1, 1), day(2023, 1, 2), day(2023, 1, 3), day(2023, 1, 4))
	})

	Context("date filtering", func() {
		It("leaves records unfiltered when no bound is given", func() {
			records, outcome, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(5))
			Expect(outcome.Filtered).To(BeFalse())
		})

		It("filters inclusively on both ends", func() {
			opts.Explicit = process.Window{Start: day(2023, 1, 1), End: day(2023, 1, 3)}

			records, outcome, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(dates(records)).To(Equal([]time.Time{day(2023, 1, 1), day(2023, 1, 2), day(2023, 1, 3)}))
			Expect(outcome.Kept).To(Equal(3))
			Expect(outcome.Fetched).To(Equal(5))
		})

		It("compares at day granularity", func() {
			opts.Explicit = process.Window{Start: day(2023, 1, 1).Add(15 * time.Hour), End: day(2023, 1, 1).Add(time.Hour)}
			bars = fetchBars(day(2023, 1, 1).Add(20*time.Hour), day(2023, 1, 2))

			records, _, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})

		It("fills an unset bound from the domain setting", func() {
			opts.Explicit = process.Window{End: day(2023, 1, 2)}
			opts.Configured = process.Window{Start: day(2023, 1, 1), End: day(2023, 1, 4)}

			records, outcome, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(dates(records)).To(Equal([]time.Time{day(2023, 1, 1), day(2023, 1, 2)}))
			Expect(outcome.Window.Start).To(Equal(day(2023, 1, 1)))
		})

		It("falls back to the default window for the other bound", func() {
			opts.Configured = process.Window{Start: day(2023, 1, 3)}

			records, outcome, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(dates(records)).To(Equal([]time.Time{day(2023, 1, 3), day(2023, 1, 4)}))
			Expect(outcome.Window.End).To(Equal(day(2023, 6, 1)))
		})

		It("never filters snapshot domains", func() {
			opts.Temporal = false
			opts.Explicit = process.Window{Start: day(2030, 1, 1), End: day(2030, 1, 2)}

			records, _, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(5))
		})

		It("returns nil when the window excludes everything", func() {
			opts.Explicit = process.Window{Start: day(2030, 1, 1)}

			records, outcome, err := process.Process(ctx, opts, bars, toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(BeNil())
			Expect(outcome.State).To(Equal(process.Done))
		})
	})

	Context("failures", func() {
		It("marks an empty fetch as failed", func() {
			records, outcome, err := process.Process(ctx, opts, fetchBars(), toPrices)
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(BeNil())
			Expect(outcome.State).To(Equal(process.FetchFailed))
		})

		It("marks an empty translation as failed", func() {
			none := func([]rawBar) []*data.Price { return nil }

			records, outcome, err := process.Process(ctx, opts, bars, none)
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(BeNil())
			Expect(outcome.State).To(Equal(process.TranslateFailed))
		})

		It("returns fatal errors", func() {
			unauthorized := func(context.Context) ([]rawBar, error) { return nil, client.ErrUnauthorized }

			_, _, err := process.Process(ctx, opts, unauthorized, toPrices)
			Expect(err).To(MatchError(client.ErrUnauthorized))
			Expect(process.IsFatal(err)).To(BeTrue())
		})
	})
})

type bundle struct {
	prices []*data.Price
	snap   []*data.GradesConsensus
}

func (b *bundle) IsEmpty() bool { return b == nil || (len(b.prices) == 0 && len(b.snap) == 0) }

var _ = Describe("ProcessMulti", func() {
	var opts process.Options

	split := func(b *bundle) process.Tagged {
		return process.Tagged{
			"prices":           data.Records(b.prices),
			"grades_consensus": data.Records(b.snap),
		}
	}

	BeforeEach(func() {
		opts = process.Options{
			Domain:   "grades",
			Temporal: true,
			Explicit: process.Window{Start: day(2023, 1, 1), End: day(2023, 1, 31)},
			Today:    day(2023, 6, 1),
			Logger:   zerolog.Nop(),
		}
	})

	It("filters each sub-entity independently and drops empty ones", func() {
		fetch := func(context.Context) (*bundle, error) {
			return &bundle{
				prices: []*data.Price{{Symbol: "AAPL", Date: day(2022, 12, 1)}, {Symbol: "AAPL", Date: day(2023, 1, 5)}},
			}, nil
		}

		tagged, outcome, err := process.ProcessMulti(context.Background(), opts, fetch, split)
		Expect(err).ToNot(HaveOccurred())
		Expect(tagged).To(HaveLen(1))
		Expect(tagged["prices"]).To(HaveLen(1))
		Expect(outcome.Kept).To(Equal(1))
	})

	It("keeps undated snapshots regardless of the window", func() {
		fetch := func(context.Context) (*bundle, error) {
			return &bundle{
				prices: []*data.Price{{Symbol: "AAPL", Date: day(2022, 12, 1)}},
				snap:   []*data.GradesConsensus{{Symbol: "AAPL", AsOf: day(2023, 6, 1)}},
			}, nil
		}

		tagged, outcome, err := process.ProcessMulti(context.Background(), opts, fetch, split)
		Expect(err).ToNot(HaveOccurred())
		Expect(tagged).To(HaveLen(1))
		Expect(tagged["grades_consensus"]).To(HaveLen(1))
		Expect(outcome.State).To(Equal(process.Filtering))
	})

	It("yields nil for an empty bundle", func() {
		fetch := func(context.Context) (*bundle, error) { return &bundle{}, nil }

		tagged, outcome, err := process.ProcessMulti(context.Background(), opts, fetch, split)
		Expect(err).ToNot(HaveOccurred())
		Expect(tagged).To(BeNil())
		Expect(outcome.State).To(Equal(process.FetchFailed))
	})
})

var _ = Describe("Resolve", func() {
	It("reports inactive when only the fallback is present", func() {
		window, active := process.Resolve(process.Window{}, process.Window{}, process.Window{Start: day(2018, 1, 1), End: day(2023, 1, 1)})
		Expect(active).To(BeFalse())
		Expect(window.Start).To(Equal(day(2018, 1, 1)))
	})
})
