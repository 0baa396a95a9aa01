/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package importer

import (
	"context"

	"github.com/humaidq/chartimport/chart"
)

// NewAccount is the input for inserting one account row.
type NewAccount struct {
	CompanyID     int64
	Code          string
	Name          string
	Type          chart.AccountType
	Class         int
	ParentID      *int64
	Level         int
	VatApplicable bool
	VatDirection  chart.VatDirection
	IsAnalytical  bool
}

// Store opens the transaction an import runs in.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is the set of account operations the importer performs. Rollback
// after Commit must be a no-op.
type Tx interface {
	LockCompany(ctx context.Context, companyID int64) error
	CompanyExists(ctx context.Context, companyID int64) (bool, error)
	PurgeAccounts(ctx context.Context, companyID int64, keep []string) (int64, error)
	FindAccountID(ctx context.Context, companyID int64, code string) (int64, bool, error)
	InsertAccount(ctx context.Context, acct NewAccount) (int64, error)
	CountAccounts(ctx context.Context, companyID int64) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
