/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/humaidq/chartimport/chart"
)

// DefaultCompanyID is the company imported into when none is given.
const DefaultCompanyID int64 = 1

// DefaultPreservedCodes are the seed accounts kept by the purge step.
var DefaultPreservedCodes = []string{"101", "201", "301"}

// Options configures one import run.
type Options struct {
	CompanyID      int64
	PreservedCodes []string
	DryRun         bool
}

// DefaultOptions imports into the default company and keeps the seed codes.
func DefaultOptions() Options {
	return Options{
		CompanyID:      DefaultCompanyID,
		PreservedCodes: append([]string(nil), DefaultPreservedCodes...),
	}
}

// Result summarises an import run.
type Result struct {
	RunID     uuid.UUID
	CompanyID int64
	DryRun    bool

	Purged             int64
	SyntheticInserted  int
	SyntheticSkipped   int
	AnalyticalInserted int
	AnalyticalSkipped  int
	// Orphans counts inserted analytical accounts whose parent did not resolve.
	Orphans int
	Ignored int

	Total int64
}

// Inserted returns the number of accounts created by the run.
func (r *Result) Inserted() int {
	return r.SyntheticInserted + r.AnalyticalInserted
}

// Skipped returns the number of rows whose code already existed.
func (r *Result) Skipped() int {
	return r.SyntheticSkipped + r.AnalyticalSkipped
}

// Importer loads a chart of accounts into a Store.
type Importer struct {
	store Store
	opts  Options
}

// New creates an Importer.
func New(store Store, opts Options) *Importer {
	return &Importer{store: store, opts: opts}
}

// Run imports rows in a single transaction: purge, synthetic pass,
// analytical pass, count, commit. Any error rolls the whole run back.
func (im *Importer) Run(ctx context.Context, rows []chart.Row) (*Result, error) {
	if im.opts.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompany, im.opts.CompanyID)
	}

	res := &Result{
		RunID:     uuid.New(),
		CompanyID: im.opts.CompanyID,
		DryRun:    im.opts.DryRun,
	}
	log := logger.With("run_id", res.RunID.String(), "company_id", res.CompanyID)

	synthetic, analytical, ignored := partition(rows)
	res.Ignored = len(ignored)
	for _, row := range ignored {
		log.Debug("Ignoring row with unknown record type", "line", row.Line, "code", row.Code)
	}

	tx, err := im.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			log.Warn("Failed to rollback chart import", "error", err)
		}
	}()

	if err := tx.LockCompany(ctx, im.opts.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to lock company: %w", err)
	}

	exists, err := tx.CompanyExists(ctx, im.opts.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrCompanyNotFound, im.opts.CompanyID)
	}

	log.Info("Clearing existing accounts", "preserved", im.opts.PreservedCodes)
	res.Purged, err = tx.PurgeAccounts(ctx, im.opts.CompanyID, im.opts.PreservedCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to purge accounts: %w", err)
	}

	log.Info("Inserting synthetic accounts", "rows", len(synthetic))
	parents := NewParentMap()
	for _, row := range synthetic {
		if err := im.insertSynthetic(ctx, tx, row, parents, res); err != nil {
			return nil, fmt.Errorf("synthetic account %q (row %d): %w", row.Code, row.Line, err)
		}
	}

	log.Info("Inserting analytical accounts", "rows", len(analytical))
	for _, row := range analytical {
		if err := im.insertAnalytical(ctx, tx, row, parents, res); err != nil {
			return nil, fmt.Errorf("analytical account %q (row %d): %w", row.Code, row.Line, err)
		}
	}

	res.Total, err = tx.CountAccounts(ctx, im.opts.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	if im.opts.DryRun {
		log.Info("Dry run, rolling back", "inserted", res.Inserted(), "skipped", res.Skipped())
		return res, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit chart import: %w", err)
	}

	log.Info("Chart imported", "inserted", res.Inserted(), "skipped", res.Skipped(), "total", res.Total)
	return res, nil
}

func (im *Importer) insertSynthetic(ctx context.Context, tx Tx, row chart.Row, parents *ParentMap, res *Result) error {
	id, found, err := tx.FindAccountID(ctx, im.opts.CompanyID, row.Code)
	if err != nil {
		return err
	}
	if found {
		parents.Set(row.Code, id)
		res.SyntheticSkipped++
		logger.Info("Account already exists, skipping", "code", row.Code)
		return nil
	}

	id, err = tx.InsertAccount(ctx, NewAccount{
		CompanyID:     im.opts.CompanyID,
		Code:          row.Code,
		Name:          row.Name,
		Type:          row.Type,
		Class:         row.Class,
		Level:         1,
		VatApplicable: row.VatApplicable,
		VatDirection:  row.VatDirection,
		IsAnalytical:  false,
	})
	if err != nil {
		return err
	}

	parents.Set(row.Code, id)
	res.SyntheticInserted++
	logger.Debug("Inserted synthetic account", "code", row.Code, "name", row.Name, "id", id)
	return nil
}

func (im *Importer) insertAnalytical(ctx context.Context, tx Tx, row chart.Row, parents *ParentMap, res *Result) error {
	_, found, err := tx.FindAccountID(ctx, im.opts.CompanyID, row.Code)
	if err != nil {
		return err
	}
	if found {
		res.AnalyticalSkipped++
		logger.Info("Account already exists, skipping", "code", row.Code)
		return nil
	}

	acct := NewAccount{
		CompanyID:     im.opts.CompanyID,
		Code:          row.Code,
		Name:          row.Name,
		Type:          row.Type,
		Class:         row.Class,
		Level:         1,
		VatApplicable: row.VatApplicable,
		VatDirection:  row.VatDirection,
		IsAnalytical:  true,
	}
	if parentID, ok := parents.Lookup(row.ParentCode); ok {
		acct.ParentID = &parentID
		acct.Level = 2
	} else {
		res.Orphans++
		if row.ParentCode != "" {
			logger.Warn("Parent account not found in file", "code", row.Code, "parent_code", row.ParentCode)
		}
	}

	id, err := tx.InsertAccount(ctx, acct)
	if err != nil {
		return err
	}

	res.AnalyticalInserted++
	logger.Debug("Inserted analytical account", "code", row.Code, "name", row.Name, "id", id, "level", acct.Level)
	return nil
}

func partition(rows []chart.Row) (synthetic, analytical, ignored []chart.Row) {
	for _, row := range rows {
		switch row.Kind {
		case chart.KindSynthetic:
			synthetic = append(synthetic, row)
		case chart.KindAnalytical:
			analytical = append(analytical, row)
		default:
			ignored = append(ignored, row)
		}
	}
	return synthetic, analytical, ignored
}
