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
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jackc/pgx/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/db"
)

// setupFile is the subset of settings written by init
type setupFile struct {
	FMP struct {
		APIKey string `toml:"api_key"`
	} `toml:"fmp"`
	Database struct {
		URL string `toml:"url"`
	} `toml:"database"`
	Healthchecks struct {
		PingID string `toml:"ping_id,omitempty"`
	} `toml:"healthchecks"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather database and API settings and setup schema",
	Run: func(cmd *cobra.Command, args []string) {
		setup := setupFile{}

		form := huh.NewForm(
			// Get details about the database
			huh.NewGroup(
				huh.NewInput().
					Title("Provide the DSN for connecting to your PostgreSQL database (postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...])").
					Value(&setup.Database.URL).
					Validate(func(dsn string) error {
						_, err := pgx.ParseConfig(dsn)
						return err
					}),
			),

			// Upstream credentials and monitoring
			huh.NewGroup(
				huh.NewInput().
					Title("Financial Modeling Prep API key:").
					Password(true).
					Value(&setup.FMP.APIKey).
					Validate(func(key string) error {
						if strings.TrimSpace(key) == "" {
							return errors.New("an API key is required")
						}
						return nil
					}),

				huh.NewInput().
					Title("healthchecks.io check id (optional):").
					Value(&setup.Healthchecks.PingID),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering settings")
		}

		log.Info().Msg("creating database tables")

		if err := db.Migrate(setup.Database.URL, log.Logger); err != nil {
			log.Fatal().Err(err).Msg("error running database migration")
		}

		log.Info().Msg("database tables created")

		// save settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, config.ConfigName+".toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving settings to config file")
		configData, err := toml.Marshal(setup)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0600)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("pvfactor has been initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
