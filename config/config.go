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

// Package config resolves run settings from defaults, the TOML config file
// and PVFACTOR_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/penny-vault/pvfactor/client"
)

const (
	EnvPrefix  = "PVFACTOR"
	ConfigName = ".pvfactor"

	DateLayout = "2006-01-02"

	// DefaultLimit caps list resources whose domain sets no limit
	DefaultLimit = 1000

	DefaultBatchSize  = 25
	DefaultBatchDelay = 60 * time.Second
)

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidWindow = errors.New("start date is after end date")
	ErrInvalidValue  = errors.New("invalid configuration value")
)

type FMP struct {
	APIKey      string        `mapstructure:"api_key" toml:"api_key"`
	BaseURL     string        `mapstructure:"base_url" toml:"base_url"`
	MinInterval time.Duration `mapstructure:"min_interval" toml:"min_interval"`
	MaxRetries  int           `mapstructure:"max_retries" toml:"max_retries"`
	RetryDelay  time.Duration `mapstructure:"retry_delay" toml:"retry_delay"`
	Timeout     time.Duration `mapstructure:"timeout" toml:"timeout"`
}

type Populate struct {
	MaxRetries       int           `mapstructure:"max_retries" toml:"max_retries"`
	RetryDelay       time.Duration `mapstructure:"retry_delay" toml:"retry_delay"`
	BatchSize        int           `mapstructure:"batch_size" toml:"batch_size"`
	BatchDelay       time.Duration `mapstructure:"batch_delay" toml:"batch_delay"`
	DefaultStartDate string        `mapstructure:"default_start_date" toml:"default_start_date"`
	TickersSource    string        `mapstructure:"tickers_source" toml:"tickers_source"`
	TickersFile      string        `mapstructure:"tickers_file" toml:"tickers_file"`
	Domains          []string      `mapstructure:"domains" toml:"domains"`
	UserAgent        string        `mapstructure:"user_agent" toml:"user_agent"`

	DefaultStart time.Time `mapstructure:"-" toml:"-"`
}

type Macro struct {
	EconomicIndicators []string `mapstructure:"economic_indicators" toml:"economic_indicators"`
	Sectors            []string `mapstructure:"sectors" toml:"sectors"`
	Industries         []string `mapstructure:"industries" toml:"industries"`
	Exchange           string   `mapstructure:"exchange" toml:"exchange"`
}

type Database struct {
	URL string `mapstructure:"url" toml:"url"`
}

type Healthchecks struct {
	PingID string `mapstructure:"ping_id" toml:"ping_id"`
}

type Backblaze struct {
	ApplicationID  string `mapstructure:"application_id" toml:"application_id"`
	ApplicationKey string `mapstructure:"application_key" toml:"application_key"`
	Bucket         string `mapstructure:"bucket" toml:"bucket"`
}

// DomainSettings tunes a single domain. StartDate and EndDate are parsed
// into Start and End by Load.
type DomainSettings struct {
	StartDate string `mapstructure:"start_date" toml:"start_date,omitempty"`
	EndDate   string `mapstructure:"end_date" toml:"end_date,omitempty"`
	Period    string `mapstructure:"period" toml:"period,omitempty"`
	Page      int    `mapstructure:"page" toml:"page,omitempty"`
	Limit     int    `mapstructure:"limit" toml:"limit,omitempty"`
	Exchange  string `mapstructure:"exchange" toml:"exchange,omitempty"`

	Start time.Time `mapstructure:"-" toml:"-"`
	End   time.Time `mapstructure:"-" toml:"-"`
}

type Settings struct {
	FMP          FMP                       `mapstructure:"fmp" toml:"fmp"`
	Populate     Populate                  `mapstructure:"populate" toml:"populate"`
	Macro        Macro                     `mapstructure:"macro" toml:"macro"`
	Database     Database                  `mapstructure:"database" toml:"database"`
	Healthchecks Healthchecks              `mapstructure:"healthchecks" toml:"healthchecks"`
	Backblaze    Backblaze                 `mapstructure:"backblaze" toml:"backblaze"`
	Domains      map[string]DomainSettings `mapstructure:"domains" toml:"domains"`
}

var DefaultEconomicIndicators = []string{
	"GDP",
	"realGDP",
	"federalFunds",
	"CPI",
	"inflationRate",
	"retailSales",
	"consumerSentiment",
	"durableGoods",
	"unemploymentRate",
	"totalNonfarmPayroll",
	"industrialProductionTotalIndex",
	"totalVehicleSales",
	"3MonthOr90DayRatesAndYieldsCertificatesOfDeposit",
	"30YearFixedRateMortgageAverage",
}

var DefaultSectors = []string{
	"Basic Materials",
	"Communication Services",
	"Consumer Cyclical",
	"Consumer Defensive",
	"Energy",
	"Financial Services",
	"Healthcare",
	"Industrials",
	"Real Estate",
	"Technology",
	"Utilities",
}

func defaultDomains() map[string]DomainSettings {
	return map[string]DomainSettings{
		"analyst_estimates": {Period: "annual", Page: 0, Limit: 10},
		"ratings":           {Limit: 10},
	}
}

// Default returns the settings used when nothing is configured. The default
// start date is five years of 365 days before now.
func Default(now time.Time) *Settings {
	start := now.AddDate(0, 0, -5*365)
	return &Settings{
		FMP: FMP{
			BaseURL:     client.DefaultBaseURL,
			MinInterval: client.DefaultMinInterval,
			MaxRetries:  client.DefaultMaxRetries,
			RetryDelay:  client.DefaultRetryDelay,
			Timeout:     client.DefaultTimeout,
		},
		Populate: Populate{
			MaxRetries:       3,
			RetryDelay:       30 * time.Second,
			BatchSize:        DefaultBatchSize,
			BatchDelay:       DefaultBatchDelay,
			DefaultStartDate: start.Format(DateLayout),
			TickersSource:    "wikipedia",
		},
		Macro: Macro{
			EconomicIndicators: append([]string(nil), DefaultEconomicIndicators...),
			Sectors:            append([]string(nil), DefaultSectors...),
			Industries:         []string{},
		},
		Domains: defaultDomains(),
	}
}

// SetDefaults registers every scalar default with v so that environment
// variables such as PVFACTOR_FMP_API_KEY are picked up by Unmarshal
func SetDefaults(v *viper.Viper, now time.Time) {
	def := Default(now)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("fmp.api_key", def.FMP.APIKey)
	v.SetDefault("fmp.base_url", def.FMP.BaseURL)
	v.SetDefault("fmp.min_interval", def.FMP.MinInterval)
	v.SetDefault("fmp.max_retries", def.FMP.MaxRetries)
	v.SetDefault("fmp.retry_delay", def.FMP.RetryDelay)
	v.SetDefault("fmp.timeout", def.FMP.Timeout)

	v.SetDefault("populate.max_retries", def.Populate.MaxRetries)
	v.SetDefault("populate.retry_delay", def.Populate.RetryDelay)
	v.SetDefault("populate.batch_size", def.Populate.BatchSize)
	v.SetDefault("populate.batch_delay", def.Populate.BatchDelay)
	v.SetDefault("populate.default_start_date", def.Populate.DefaultStartDate)
	v.SetDefault("populate.tickers_source", def.Populate.TickersSource)
	v.SetDefault("populate.tickers_file", "")
	v.SetDefault("populate.domains", []string{})
	v.SetDefault("populate.user_agent", "")

	v.SetDefault("macro.economic_indicators", def.Macro.EconomicIndicators)
	v.SetDefault("macro.sectors", def.Macro.Sectors)
	v.SetDefault("macro.industries", def.Macro.Industries)
	v.SetDefault("macro.exchange", "")

	v.SetDefault("database.url", "")
	v.SetDefault("healthchecks.ping_id", "")
	v.SetDefault("backblaze.application_id", "")
	v.SetDefault("backblaze.application_key", "")
	v.SetDefault("backblaze.bucket", "")
}

// Load unmarshals v over the defaults and validates every date
func Load(v *viper.Viper, now time.Time) (*Settings, error) {
	settings := Default(now)
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	// a configured domain replaces its default entry wholesale; restore
	// defaults for the fields it left unset
	for name, def := range defaultDomains() {
		cur, ok := settings.Domains[name]
		if !ok {
			continue
		}
		if cur.Period == "" {
			cur.Period = def.Period
		}
		if cur.Limit == 0 {
			cur.Limit = def.Limit
		}
		settings.Domains[name] = cur
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Settings) validate() error {
	start, err := parseDate("populate.default_start_date", s.Populate.DefaultStartDate)
	if err != nil {
		return err
	}
	s.Populate.DefaultStart = start

	if s.Populate.BatchSize < 0 {
		return fmt.Errorf("%w: populate.batch_size must not be negative", ErrInvalidValue)
	}

	if s.Domains == nil {
		s.Domains = map[string]DomainSettings{}
	}

	for name, ds := range s.Domains {
		if ds.Start, err = parseDate("domains."+name+".start_date", ds.StartDate); err != nil {
			return err
		}

		if ds.End, err = parseDate("domains."+name+".end_date", ds.EndDate); err != nil {
			return err
		}

		if !ds.Start.IsZero() && !ds.End.IsZero() && ds.Start.After(ds.End) {
			return fmt.Errorf("%w (%s): %s > %s", ErrInvalidWindow, name, ds.StartDate, ds.EndDate)
		}

		s.Domains[name] = ds
	}

	return nil
}

// Domain returns the settings for name with the general limit applied
func (s *Settings) Domain(name string) DomainSettings {
	ds := s.Domains[name]
	if ds.Limit == 0 {
		ds.Limit = DefaultLimit
	}
	return ds
}

// ParseDate parses a YYYY-MM-DD date. The empty string yields the zero time.
func ParseDate(val string) (time.Time, error) {
	return parseDate("date", val)
}

func parseDate(key, val string) (time.Time, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}, nil
	}

	dt, err := time.Parse(DateLayout, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w (%s): %s", ErrInvalidDate, key, val)
	}

	return dt, nil
}
