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
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/penny-vault/pvfactor/config"
	"github.com/penny-vault/pvfactor/populate"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the data domains pvfactor can populate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(domainsTable(loadSettings()))
	},
}

// domainsTable renders the catalog with the effective settings of each domain
func domainsTable(settings *config.Settings) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("DOMAIN", "GROUP", "SCOPE", "TABLES", "DATED", "PERIOD", "LIMIT", "START", "END").
		StyleFunc(func(row, col int) lipgloss.Style {
			// row 0 is the header in lipgloss v0.11
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})

	for _, domain := range populate.Catalog() {
		ds := settings.Domain(domain.Name)
		t.Row(
			domain.Name,
			domain.Group.String(),
			domain.Scope.String(),
			strings.Join(domain.Tables, ", "),
			strconv.FormatBool(domain.Temporal),
			ds.Period,
			strconv.Itoa(ds.Limit),
			formatDate(ds.StartDate, settings.Populate.DefaultStartDate),
			formatDate(ds.EndDate, "today"),
		)
	}

	return t
}

func formatDate(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
