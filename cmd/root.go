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
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/penny-vault/pvfactor/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pvfactor",
	Short: "pvfactor fills the factor database used by the Penny Vault family of tools",
	Long: `pvfactor is a command line utility that downloads company, market and
macroeconomic data from Financial Modeling Prep and stores it in PostgreSQL.
Each run walks a universe of tickers (the S&P 500 by default) and for every
ticker fetches analyst estimates, grades, key metrics, growth rates, prices,
valuation models and more. Economy-wide data such as treasury rates and
sector P/E ratios are fetched once per run.

Every table is keyed by its natural key so re-running pvfactor refreshes
existing rows instead of duplicating them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pvfactor.toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "minimum log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "write logs as JSON instead of console output")
	rootCmd.PersistentFlags().String("db-url", "", "database connection string")

	bindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
	bindFlag("database.url", rootCmd.PersistentFlags().Lookup("db-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".pvfactor" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(config.ConfigName)
	}

	config.SetDefaults(viper.GetViper(), time.Now())
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	configErr := viper.ReadInConfig()

	if viper.GetBool("log.json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.Warn().Err(err).Str("Level", viper.GetString("log.level")).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if configErr == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}

// loadSettings resolves the typed settings or exits
func loadSettings() *config.Settings {
	settings, err := config.Load(viper.GetViper(), time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return settings
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		log.Panic().Err(err).Str("Key", key).Msg("BindPFlag failed")
	}
}
