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
package library

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const numRecentRuns = 5

// Report is the data behind the library summary
type Report struct {
	Database    string
	LastUpdated time.Time
	Tables      []*TableStat
	Runs        []*Run
}

// Report gathers table statistics and recent runs
func (myLibrary *Library) Report(ctx context.Context, tables []string) (*Report, error) {
	lastUpdated, err := myLibrary.LastUpdated(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := myLibrary.TableStats(ctx, tables)
	if err != nil {
		return nil, err
	}

	runs, err := myLibrary.Runs(ctx, numRecentRuns)
	if err != nil {
		return nil, err
	}

	return &Report{
		Database:    redact(myLibrary.DBUrl),
		LastUpdated: lastUpdated,
		Tables:      stats,
		Runs:        runs,
	}, nil
}

// Summary returns a description of the library in markdown
func (myLibrary *Library) Summary(ctx context.Context, tables []string) (string, error) {
	report, err := myLibrary.Report(ctx, tables)
	if err != nil {
		return "", err
	}

	return report.Markdown(time.Now()), nil
}

// Markdown renders the report relative to now
func (report *Report) Markdown(now time.Time) string {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString("# pvfactor\n")
	builder.WriteString("## Details\n\n")
	builder.WriteString(fmt.Sprintf("Database: %s\n\n", report.Database))

	var totalRecords int64
	for _, stat := range report.Tables {
		totalRecords += stat.NumRows
	}

	builder.WriteString(p.Sprintf("  * Tables: %d\n", len(report.Tables)))
	builder.WriteString(p.Sprintf("  * Total Records: %d\n\n", totalRecords))

	builder.WriteString(fmt.Sprintf("Last Updated: %s\n\n", ago(report.LastUpdated, now)))

	builder.WriteString("## Tables\n\n")
	builder.WriteString("| Table | Records | Last Updated |\n")
	builder.WriteString("|---|---:|---|\n")
	for _, stat := range report.Tables {
		lastUpdated := time.Time{}
		if stat.LastUpdated != nil {
			lastUpdated = *stat.LastUpdated
		}
		builder.WriteString(p.Sprintf("| %s | %d | %s |\n", stat.Table, stat.NumRows, ago(lastUpdated, now)))
	}

	builder.WriteString("\n## Recent runs\n\n")
	if len(report.Runs) == 0 {
		builder.WriteString("No runs recorded\n")
	}

	for _, run := range report.Runs {
		builder.WriteString(p.Sprintf("  * %s %s [%s]: %d entities, %d tasks done, %d failed, %d records stored\n",
			run.StartedAt.Local().Format("01/02/2006 15:04"), run.Status, run.ID.String()[:6],
			run.NumEntities, run.TasksDone, run.TasksFailed, run.RecordsStored))
	}

	return builder.String()
}

func ago(when, now time.Time) string {
	if when.IsZero() || when.Year() <= 1 {
		return "Never"
	}
	return fmt.Sprintf("%s (%s)", timeago.English.FormatReference(when, now), when.Local().Format("01/02/2006"))
}

// redact hides the password in a connection string
func redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
