/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/humaidq/chartimport/chart"
	"github.com/humaidq/chartimport/importer"
)

// AccountStore runs chart imports against the accounts table.
type AccountStore struct {
	pool *pgxpool.Pool
}

var _ importer.Store = (*AccountStore)(nil)

// NewAccountStore returns a store backed by p.
func NewAccountStore(p *pgxpool.Pool) *AccountStore {
	return &AccountStore{pool: p}
}

// Begin starts the transaction an import runs in.
func (s *AccountStore) Begin(ctx context.Context) (importer.Tx, error) {
	if s.pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return &accountTx{tx: tx}, nil
}

type accountTx struct {
	tx pgx.Tx
}

// LockCompany takes a transaction-scoped advisory lock so imports into
// the same company run one at a time.
func (a *accountTx) LockCompany(ctx context.Context, companyID int64) error {
	if _, err := a.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, companyID); err != nil {
		return fmt.Errorf("failed to acquire company lock: %w", err)
	}
	return nil
}

func (a *accountTx) CompanyExists(ctx context.Context, companyID int64) (bool, error) {
	var exists bool

	err := a.tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)`, companyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check company: %w", err)
	}

	return exists, nil
}

// PurgeAccounts deletes the company's accounts except the keep codes.
// Kept accounts whose parent is deleted are detached first, and children
// are deleted before their parents so the parent_id foreign key holds.
func (a *accountTx) PurgeAccounts(ctx context.Context, companyID int64, keep []string) (int64, error) {
	if keep == nil {
		keep = []string{}
	}

	_, err := a.tx.Exec(ctx, `
		UPDATE accounts AS kept
		SET parent_id = NULL, level = 1, updated_at = NOW()
		FROM accounts AS parent
		WHERE kept.parent_id = parent.id
		  AND kept.company_id = $1
		  AND kept.code = ANY($2)
		  AND parent.code <> ALL($2)
	`, companyID, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to detach preserved accounts: %w", err)
	}

	children, err := a.tx.Exec(ctx, `
		DELETE FROM accounts
		WHERE company_id = $1 AND parent_id IS NOT NULL AND code <> ALL($2)
	`, companyID, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to delete child accounts: %w", err)
	}

	rest, err := a.tx.Exec(ctx, `
		DELETE FROM accounts
		WHERE company_id = $1 AND code <> ALL($2)
	`, companyID, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to delete accounts: %w", err)
	}

	return children.RowsAffected() + rest.RowsAffected(), nil
}

func (a *accountTx) FindAccountID(ctx context.Context, companyID int64, code string) (int64, bool, error) {
	var id int64

	err := a.tx.QueryRow(ctx, `
		SELECT id FROM accounts
		WHERE code = $1 AND company_id = $2
	`, code, companyID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up account %s: %w", code, err)
	}

	return id, true, nil
}

func (a *accountTx) InsertAccount(ctx context.Context, acct importer.NewAccount) (int64, error) {
	var id int64

	err := a.tx.QueryRow(ctx, `
		INSERT INTO accounts (
			code, name, account_type, account_class,
			parent_id, level, is_vat_applicable, vat_direction,
			is_active, is_analytical, company_id
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			true, $9, $10
		) RETURNING id
	`,
		acct.Code,
		acct.Name,
		string(acct.Type),
		acct.Class,
		acct.ParentID,
		acct.Level,
		acct.VatApplicable,
		string(acct.VatDirection),
		acct.IsAnalytical,
		acct.CompanyID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert account %s: %w", acct.Code, err)
	}

	return id, nil
}

func (a *accountTx) CountAccounts(ctx context.Context, companyID int64) (int64, error) {
	var count int64

	err := a.tx.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	return count, nil
}

func (a *accountTx) Commit(ctx context.Context) error {
	return a.tx.Commit(ctx)
}

func (a *accountTx) Rollback(ctx context.Context) error {
	if err := a.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// ListAccounts returns a company's chart ordered by code
func (s *AccountStore) ListAccounts(ctx context.Context, companyID int64) ([]Account, error) {
	if s.pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT
			a.id,
			a.company_id,
			a.code,
			a.name,
			a.account_type,
			a.account_class,
			a.parent_id,
			p.code,
			a.level,
			a.is_vat_applicable,
			a.vat_direction,
			a.is_active,
			a.is_analytical,
			a.created_at,
			a.updated_at
		FROM accounts a
		LEFT JOIN accounts p ON p.id = a.parent_id
		WHERE a.company_id = $1
		ORDER BY a.code ASC
	`

	rows, err := s.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var (
			acct         Account
			accountType  string
			vatDirection string
		)
		err := rows.Scan(
			&acct.ID,
			&acct.CompanyID,
			&acct.Code,
			&acct.Name,
			&accountType,
			&acct.AccountClass,
			&acct.ParentID,
			&acct.ParentCode,
			&acct.Level,
			&acct.VatApplicable,
			&vatDirection,
			&acct.IsActive,
			&acct.IsAnalytical,
			&acct.CreatedAt,
			&acct.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		acct.AccountType = chart.AccountType(accountType)
		acct.VatDirection = chart.VatDirection(vatDirection)
		accounts = append(accounts, acct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}
