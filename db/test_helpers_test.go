// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"

	"github.com/humaidq/chartimport/chart"
	"github.com/humaidq/chartimport/importer"
)

func testContext() context.Context {
	return context.Background()
}

func mustCreateCompany(t *testing.T, name string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(testContext(), `INSERT INTO companies (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("failed to create company: %v", err)
	}
	return id
}

func mustSeedAccount(t *testing.T, companyID int64, code, name string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(testContext(), `
		INSERT INTO accounts (code, name, account_type, account_class, company_id)
		VALUES ($1, $2, 'ASSET', $3, $4)
		RETURNING id
	`, code, name, chart.AccountClass(code), companyID).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed account %s: %v", code, err)
	}
	return id
}

func mustRunImport(t *testing.T, companyID int64, rows []chart.Row) *importer.Result {
	t.Helper()

	opts := importer.DefaultOptions()
	opts.CompanyID = companyID

	res, err := importer.New(NewAccountStore(pool), opts).Run(testContext(), rows)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	return res
}

func mustAccountsByCode(t *testing.T, companyID int64) map[string]Account {
	t.Helper()

	accounts, err := NewAccountStore(pool).ListAccounts(testContext(), companyID)
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}

	byCode := make(map[string]Account, len(accounts))
	for _, acct := range accounts {
		byCode[acct.Code] = acct
	}
	return byCode
}

func syntheticRow(line int, code, name string) chart.Row {
	return chart.Row{
		Line:         line,
		Kind:         chart.KindSynthetic,
		Code:         code,
		Name:         name,
		Type:         chart.AccountTypeLiability,
		Class:        chart.AccountClass(code),
		VatDirection: chart.VatDirectionNone,
	}
}

func analyticalRow(line int, code, name, parent string) chart.Row {
	return chart.Row{
		Line:          line,
		Kind:          chart.KindAnalytical,
		Code:          code,
		Name:          name,
		ParentCode:    parent,
		Type:          chart.AccountTypeLiability,
		Class:         chart.AccountClass(code),
		VatApplicable: true,
		VatDirection:  chart.VatDirectionInput,
	}
}
