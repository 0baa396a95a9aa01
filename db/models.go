/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/humaidq/chartimport/chart"
)

// Company owns a chart of accounts.
type Company struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	VatNumber *string   `db:"vat_number"`
	EIK       *string   `db:"eik"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// Account is a row of the accounts table.
type Account struct {
	ID            int64              `db:"id"`
	CompanyID     int64              `db:"company_id"`
	Code          string             `db:"code"`
	Name          string             `db:"name"`
	AccountType   chart.AccountType  `db:"account_type"`
	AccountClass  int                `db:"account_class"`
	ParentID      *int64             `db:"parent_id"`
	ParentCode    *string            `db:"parent_code"`
	Level         int                `db:"level"`
	VatApplicable bool               `db:"is_vat_applicable"`
	VatDirection  chart.VatDirection `db:"vat_direction"`
	IsActive      bool               `db:"is_active"`
	IsAnalytical  bool               `db:"is_analytical"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at"`
}
