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

// Package db holds the embedded schema and applies it
package db

import (
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationURL rewrites a postgres DSN to the scheme golang-migrate expects
// for the pgx/v5 driver
func MigrationURL(databaseURL string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, scheme) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, scheme)
		}
	}
	return databaseURL
}

// Migrate brings the schema of the database at databaseURL up to date. A
// database that is already current is not an error.
func Migrate(databaseURL string, logger zerolog.Logger) error {
	migrationDir, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}

	migration, err := migrate.NewWithSourceInstance("iofs", migrationDir, MigrationURL(databaseURL))
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := migration.Close(); srcErr != nil || dbErr != nil {
			logger.Warn().AnErr("SourceError", srcErr).AnErr("DatabaseError", dbErr).Msg("closing migration failed")
		}
	}()

	err = migration.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info().Msg("database schema is up to date")
		return nil
	}

	if err != nil {
		return err
	}

	version, dirty, _ := migration.Version()
	logger.Info().Uint("Version", version).Bool("Dirty", dirty).Msg("database schema migrated")
	return nil
}
