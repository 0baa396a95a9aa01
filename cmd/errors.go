/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errChartFileRequired     = errors.New("chart file is required (set via --file or CHART_FILE env var)")
	errInvalidCompanyID      = errors.New("company id must be a positive integer")
	errInvalidDelimiter      = errors.New("delimiter must be a single character other than a quote or line break")
)
