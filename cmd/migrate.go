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
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/penny-vault/pvfactor/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database tables",
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		if settings.Database.URL == "" {
			log.Fatal().Msg("database.url is not configured")
		}

		if err := db.Migrate(settings.Database.URL, log.Logger); err != nil {
			log.Fatal().Err(err).Msg("error running database migration")
		}
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
