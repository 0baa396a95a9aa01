/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/chartimport/chart"
	"github.com/humaidq/chartimport/db"
	"github.com/humaidq/chartimport/importer"
)

var CmdImport = &cli.Command{
	Name:   "import",
	Usage:  "Import a chart of accounts from a CSV file",
	Flags:  importFlags(),
	Action: runImport,
}

func importFlags() []cli.Flag {
	return []cli.Flag{
		databaseURLFlag(),
		companyFlag(),
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Value:   defaultChartFile,
			Sources: cli.EnvVars("CHART_FILE"),
			Usage:   "path to the chart of accounts CSV",
		},
		&cli.StringFlag{
			Name:    "preserve",
			Value:   strings.Join(importer.DefaultPreservedCodes, ","),
			Sources: cli.EnvVars("PRESERVED_CODES"),
			Usage:   "comma-separated account codes kept when existing accounts are cleared",
		},
		&cli.StringFlag{
			Name:    "delimiter",
			Value:   defaultDelimiter,
			Sources: cli.EnvVars("CHART_DELIMITER"),
			Usage:   `field delimiter of the CSV (use "tab" for tab-separated files)`,
		},
		&cli.StringFlag{
			Name:    "columns",
			Sources: cli.EnvVars("CHART_COLUMNS"),
			Usage:   "YAML file mapping chart fields to CSV header names",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "run the import and roll it back, reporting what would change",
		},
		&cli.BoolFlag{
			Name:  "sync-schema",
			Usage: "apply pending migrations before importing",
		},
	}
}

func runImport(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadImportConfig(cmd)
	if err != nil {
		return err
	}

	readOpts, err := cfg.readOptions()
	if err != nil {
		return err
	}

	rows, err := chart.ReadFile(cfg.File, readOpts)
	if err != nil {
		return err
	}

	appLogger.Info("Read chart file", "file", cfg.File, "rows", len(rows))

	if err := db.Init(ctx, cfg.DatabaseURL); err != nil {
		return logImportError(fmt.Errorf("failed to initialize database: %w", err))
	}
	defer db.Close()

	if cfg.SyncSchema {
		appLogger.Info("Syncing database schema")
		if err := db.SyncSchema(ctx, cfg.DatabaseURL); err != nil {
			return logImportError(fmt.Errorf("failed to sync schema: %w", err))
		}
	}

	res, err := importer.New(db.NewAccountStore(db.GetPool()), cfg.importerOptions()).Run(ctx, rows)
	if err != nil {
		return logImportError(err)
	}

	printSummary(os.Stdout, res)
	return nil
}

// logImportError reports err under the category an operator acts on and
// hands it back for the exit status.
func logImportError(err error) error {
	var (
		pgErr      *pgconn.PgError
		connectErr *pgconn.ConnectError
	)

	switch {
	case errors.As(err, &pgErr):
		appLogger.Error("Database error", "error", err, "code", pgErr.Code, "detail", pgErr.Detail)
	case errors.As(err, &connectErr):
		appLogger.Error("Database error", "error", err)
	default:
		appLogger.Error("Import failed", "error", err)
	}

	return err
}

func printSummary(w io.Writer, res *importer.Result) {
	if res.DryRun {
		fmt.Fprintln(w, "Dry run: no changes were committed")
	}

	fmt.Fprintf(w, "Company:     %d\n", res.CompanyID)
	fmt.Fprintf(w, "Run:         %s\n", res.RunID)
	fmt.Fprintf(w, "Cleared:     %d\n", res.Purged)
	fmt.Fprintf(w, "Synthetic:   %d inserted, %d skipped\n", res.SyntheticInserted, res.SyntheticSkipped)
	fmt.Fprintf(w, "Analytical:  %d inserted, %d skipped, %d without parent\n",
		res.AnalyticalInserted, res.AnalyticalSkipped, res.Orphans)
	if res.Ignored > 0 {
		fmt.Fprintf(w, "Ignored:     %d rows with unknown record type\n", res.Ignored)
	}
	fmt.Fprintf(w, "Total:       %d accounts\n", res.Total)
}
