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
package universe

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-rod/stealth"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

var blockedHosts = []string{
	"google.com",
	"googletagservices.com",
	"googlesyndication.com",
	"doubleclick.net",
	"facebook.com",
	"adsystem.com",
	"adnxs.com",
}

// Browser renders the constituents page in headless Chromium with stealth
// scripts loaded, for networks where plain requests are challenged
type Browser struct {
	URL       string
	Headless  bool
	UserAgent string
	Logger    zerolog.Logger
}

func NewBrowser(userAgent string, logger zerolog.Logger) *Browser {
	return &Browser{
		URL:       WikipediaURL,
		Headless:  true,
		UserAgent: userAgent,
		Logger:    logger,
	}
}

func (b *Browser) Tickers(ctx context.Context) ([]string, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: could not launch playwright: %w", ErrSourceFailed, err)
	}

	defer func() {
		if err := pw.Stop(); err != nil {
			b.Logger.Error().Err(err).Msg("error encountered when stopping playwright")
		}
	}()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: could not launch chromium: %w", ErrSourceFailed, err)
	}

	defer func() {
		if err := browser.Close(); err != nil {
			b.Logger.Error().Err(err).Msg("error encountered when closing browser")
		}
	}()

	b.Logger.Info().Bool("Headless", b.Headless).Str("BrowserVersion", browser.Version()).Msg("starting playwright")

	opts := playwright.BrowserNewContextOptions{}
	if b.UserAgent != "" {
		opts.UserAgent = playwright.String(b.UserAgent)
	}

	browserCtx, err := browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create browser context: %w", ErrSourceFailed, err)
	}

	page, err := stealthPage(browserCtx)
	if err != nil {
		return nil, err
	}

	b.blockTrackers(page)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := page.Goto(b.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceFailed, b.URL, err)
	}

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("%w: could not read page content: %w", ErrSourceFailed, err)
	}

	tickers, err := ParseConstituents(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	b.Logger.Info().Int("NumTickers", len(tickers)).Msg("loaded S&P 500 constituents")
	return tickers, nil
}

// stealthPage opens a page with the stealth init script loaded so the
// headless browser is not flagged as a bot
func stealthPage(browserCtx playwright.BrowserContext) (playwright.Page, error) {
	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("%w: could not create page: %w", ErrSourceFailed, err)
	}

	if err := page.AddInitScript(playwright.Script{
		Content: playwright.String(stealth.JS),
	}); err != nil {
		return nil, fmt.Errorf("%w: could not load stealth mode: %w", ErrSourceFailed, err)
	}

	return page, nil
}

func (b *Browser) blockTrackers(page playwright.Page) {
	err := page.Route("**/*", func(route playwright.Route) {
		url := route.Request().URL()
		for _, host := range blockedHosts {
			if strings.Contains(url, host) {
				if err := route.Abort("failed"); err != nil {
					b.Logger.Error().Err(err).Msg("failed blocking route")
				}
				return
			}
		}

		if err := route.Continue(); err != nil {
			b.Logger.Error().Err(err).Msg("failed continuing route")
		}
	})

	if err != nil {
		b.Logger.Error().Err(err).Msg("page route errored")
	}
}
