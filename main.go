/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/chartimport/cmd"
	"github.com/humaidq/chartimport/logging"
)

func main() {
	app := &cli.Command{
		Name:  "chartimport",
		Usage: "Chart of accounts importer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "log level (debug, info, warn, error)",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			cmd.CmdImport,
			cmd.CmdAccounts,
			cmd.CmdMigrate,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads .env before subcommand flags read their environment
// sources. The root flags are already parsed, so LOG_LEVEL is re-read.
func setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ctx, err
	}

	level := c.String("log-level")
	if v := os.Getenv("LOG_LEVEL"); v != "" && !c.IsSet("log-level") {
		level = v
	}

	return ctx, logging.SetLevel(level)
}
