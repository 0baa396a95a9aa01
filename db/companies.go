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
)

// GetCompany retrieves a company by id
func GetCompany(ctx context.Context, companyID int64) (*Company, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var company Company
	err := pool.QueryRow(ctx, `
		SELECT id, name, vat_number, eik, is_active, created_at
		FROM companies
		WHERE id = $1
	`, companyID).Scan(
		&company.ID,
		&company.Name,
		&company.VatNumber,
		&company.EIK,
		&company.IsActive,
		&company.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrCompanyNotFound, companyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &company, nil
}
