/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/chartimport/db"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	syntheticStyle = cellStyle.Bold(true)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var CmdAccounts = &cli.Command{
	Name:  "accounts",
	Usage: "List a company's chart of accounts",
	Flags: []cli.Flag{
		databaseURLFlag(),
		companyFlag(),
	},
	Action: listAccounts,
}

func listAccounts(ctx context.Context, cmd *cli.Command) error {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return errDatabaseURLRequired
	}

	companyID := cmd.Int64("company")
	if companyID <= 0 {
		return fmt.Errorf("%w: %d", errInvalidCompanyID, companyID)
	}

	if err := db.Init(ctx, databaseURL); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	company, err := db.GetCompany(ctx, companyID)
	if err != nil {
		return err
	}

	accounts, err := db.NewAccountStore(db.GetPool()).ListAccounts(ctx, companyID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%d accounts)", company.Name, len(accounts))))
	fmt.Println(renderAccounts(accounts))
	return nil
}

func renderAccounts(accounts []db.Account) string {
	rows := make([][]string, 0, len(accounts))
	synthetic := make(map[int]bool, len(accounts))

	for i, acct := range accounts {
		parent := ""
		if acct.ParentCode != nil {
			parent = *acct.ParentCode
		}

		vat := "-"
		if acct.VatApplicable {
			vat = string(acct.VatDirection)
		}

		synthetic[i] = !acct.IsAnalytical
		rows = append(rows, []string{
			acct.Code,
			acct.Name,
			string(acct.AccountType),
			strconv.Itoa(acct.AccountClass),
			strconv.Itoa(acct.Level),
			parent,
			vat,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Code", "Name", "Type", "Class", "Level", "Parent", "VAT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case synthetic[row]:
				return syntheticStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}
