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
package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/client"
)

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		clock  *fakeClock
		server *httptest.Server
		hits   atomic.Int32
	)

	newClient := func(opts client.Options) *client.Client {
		opts.BaseURL = server.URL
		if opts.APIKey == "" {
			opts.APIKey = "secret"
		}
		if opts.Clock == nil {
			opts.Clock = clock
		}
		opts.Logger = zerolog.Nop()
		return client.New(opts)
	}

	serve := func(handler http.HandlerFunc) {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			handler(w, r)
		}))
	}

	BeforeEach(func() {
		ctx = context.Background()
		clock = newFakeClock()
		hits.Store(0)
	})

	AfterEach(func() {
		if server != nil {
			server.Close()
		}
	})

	Context("when the upstream is healthy", func() {
		It("attaches the api key and parameters to every request", func() {
			serve(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/key-metrics"))
				Expect(r.URL.Query().Get("apikey")).To(Equal("secret"))
				Expect(r.URL.Query().Get("symbol")).To(Equal("AAPL"))
				_, _ = w.Write([]byte(`[{"symbol":"AAPL"}]`))
			})

			c := newClient(client.Options{})
			body, err := c.Get(ctx, "/key-metrics", map[string]string{"symbol": "AAPL"})
			Expect(err).ToNot(HaveOccurred())
			Expect(string(body)).To(Equal(`[{"symbol":"AAPL"}]`))
			Expect(hits.Load()).To(BeEquivalentTo(1))
		})

		It("spaces N requests at least (N-1) intervals apart", func() {
			serve(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			})

			interval := 100 * time.Millisecond
			c := newClient(client.Options{MinInterval: interval})

			start := clock.Now()
			for ii := 0; ii < 5; ii++ {
				_, err := c.Get(ctx, "/treasury-rates", nil)
				Expect(err).ToNot(HaveOccurred())
			}

			Expect(clock.Now().Sub(start)).To(BeNumerically(">=", 4*interval))
			Expect(hits.Load()).To(BeEquivalentTo(5))
		})

		It("honours the interval on the real clock", func() {
			serve(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			})

			interval := 20 * time.Millisecond
			c := newClient(client.Options{MinInterval: interval, Clock: client.SystemClock{}})

			start := time.Now()
			for ii := 0; ii < 4; ii++ {
				_, err := c.Get(ctx, "/treasury-rates", nil)
				Expect(err).ToNot(HaveOccurred())
			}

			Expect(time.Since(start)).To(BeNumerically(">=", 3*interval))
		})
	})

	Context("when the api key is rejected", func() {
		It("fails immediately without retrying", func() {
			serve(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})

			c := newClient(client.Options{MaxRetries: 5})
			body, err := c.Get(ctx, "/ratios", nil)
			Expect(err).To(MatchError(client.ErrUnauthorized))
			Expect(body).To(BeNil())
			Expect(hits.Load()).To(BeEquivalentTo(1))
			Expect(clock.Sleeps()).To(BeEmpty())
		})
	})

	Context("when the upstream fails transiently", func() {
		failFirst := func(n int32, payload string) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				if hits.Load() <= n {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				_, _ = w.Write([]byte(payload))
			}
		}

		It("returns the payload when the last allowed attempt succeeds", func() {
			serve(failFirst(2, `[{"date":"2023-01-03"}]`))

			c := newClient(client.Options{MaxRetries: 3, Backoff: client.Linear{Base: time.Second}})
			body, err := c.Get(ctx, "/dividends", nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(body)).To(Equal(`[{"date":"2023-01-03"}]`))
			Expect(hits.Load()).To(BeEquivalentTo(3))
			Expect(clock.Sleeps()).To(Equal([]time.Duration{time.Second, 2 * time.Second}))
		})

		It("returns no data without an error once retries are exhausted", func() {
			serve(failFirst(3, `[]`))

			c := newClient(client.Options{MaxRetries: 3, Backoff: client.Constant{Wait: time.Second}})
			body, err := c.Get(ctx, "/dividends", nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(body).To(BeNil())
			Expect(hits.Load()).To(BeEquivalentTo(3))
		})

		DescribeTable("retries unusable bodies",
			func(payload string) {
				serve(func(w http.ResponseWriter, r *http.Request) {
					if hits.Load() == 1 {
						_, _ = w.Write([]byte(payload))
						return
					}
					_, _ = w.Write([]byte(`[{"symbol":"MSFT"}]`))
				})

				c := newClient(client.Options{MaxRetries: 2})
				body, err := c.Get(ctx, "/splits", nil)
				Expect(err).ToNot(HaveOccurred())
				Expect(string(body)).To(Equal(`[{"symbol":"MSFT"}]`))
				Expect(hits.Load()).To(BeEquivalentTo(2))
			},
			Entry("empty body", ""),
			Entry("whitespace body", "  \n"),
			Entry("invalid json", "<html>busy</html>"),
			Entry("error envelope", `{"Error Message": "Limit Reach"}`),
		)

		It("stops retrying when the context is cancelled", func() {
			serve(failFirst(10, `[]`))

			cancelCtx, cancel := context.WithCancel(ctx)
			cancel()

			c := newClient(client.Options{MaxRetries: 3})
			_, err := c.Get(cancelCtx, "/dividends", nil)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})

var _ = Describe("Backoff", func() {
	It("grows linearly with the attempt number", func() {
		policy := client.Linear{Base: 30 * time.Second}
		Expect(policy.Delay(0)).To(Equal(30 * time.Second))
		Expect(policy.Delay(2)).To(Equal(90 * time.Second))
		Expect(policy.Delay(-1)).To(Equal(30 * time.Second))
	})

	It("can stay constant", func() {
		policy := client.Constant{Wait: 5 * time.Second}
		Expect(policy.Delay(0)).To(Equal(policy.Delay(7)))
	})
})
