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
package universe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/penny-vault/pvfactor/universe"
)

const constituentsPage = `<html><body>
<table class="wikitable sortable" id="constituents">
<tbody>
<tr><th>Symbol</th><th>Security</th><th>GICS Sector</th></tr>
<tr><td><a href="#">MMM</a></td><td>3M</td><td>Industrials</td></tr>
<tr><td><a href="#">BRK.B</a></td><td>Berkshire Hathaway</td><td>Financials</td></tr>
<tr><td> aapl
</td><td>Apple Inc.</td><td>Information Technology</td></tr>
</tbody>
</table>
<table class="wikitable"><tr><th>Date</th><th>Added</th></tr><tr><td>2024-01-01</td><td>XYZ</td></tr></table>
</body></html>`

var _ = Describe("Universe", func() {
	ctx := context.Background()

	Describe("ParseConstituents", func() {
		It("reads the symbol column of the constituents table", func() {
			tickers, err := universe.ParseConstituents(strings.NewReader(constituentsPage))
			Expect(err).ToNot(HaveOccurred())
			Expect(tickers).To(Equal([]string{"MMM", "BRK-B", "AAPL"}))
		})

		It("fails when there is no table", func() {
			_, err := universe.ParseConstituents(strings.NewReader("<html><p>nothing</p></html>"))
			Expect(err).To(MatchError(universe.ErrTableNotFound))
		})
	})

	Describe("Wikipedia", func() {
		It("downloads and parses the page", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(constituentsPage))
			}))
			defer server.Close()

			source := universe.NewWikipedia(zerolog.Nop())
			source.URL = server.URL

			tickers, err := source.Tickers(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(tickers).To(HaveLen(3))
		})

		It("reports an error status", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer server.Close()

			source := universe.NewWikipedia(zerolog.Nop())
			source.URL = server.URL

			_, err := source.Tickers(ctx)
			Expect(err).To(MatchError(universe.ErrSourceFailed))
		})
	})

	Describe("CSVFile", func() {
		write := func(contents string) string {
			fn := filepath.Join(GinkgoT().TempDir(), "tickers.csv")
			Expect(os.WriteFile(fn, []byte(contents), 0o600)).To(Succeed())
			return fn
		}

		It("reads a symbol column", func() {
			source := universe.CSVFile{Path: write("symbol,name\nmsft,Microsoft\nBF.B,Brown-Forman\nMSFT,dup\n")}

			tickers, err := source.Tickers(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(tickers).To(Equal([]string{"MSFT", "BF-B"}))
		})

		It("accepts a ticker column", func() {
			source := universe.CSVFile{Path: write("ticker\nSPY\n")}

			tickers, err := source.Tickers(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(tickers).To(Equal([]string{"SPY"}))
		})

		It("rejects files without a usable column", func() {
			source := universe.CSVFile{Path: write("name\nApple\n")}

			_, err := source.Tickers(ctx)
			Expect(err).To(MatchError(universe.ErrMissingSymbols))
		})
	})

	Describe("Static", func() {
		It("refuses an empty list", func() {
			_, err := universe.Static{" ", ""}.Tickers(ctx)
			Expect(err).To(MatchError(universe.ErrNoTickers))
		})
	})
})
