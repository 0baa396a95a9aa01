/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import "strings"

// AccountType is the balance-sheet or P&L classification of an account.
type AccountType string

// AccountType values stored in accounts.account_type.
const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// VatDirection tells which side of VAT an account carries.
type VatDirection string

// VatDirection values stored in accounts.vat_direction.
const (
	VatDirectionNone   VatDirection = "NONE"
	VatDirectionInput  VatDirection = "INPUT"
	VatDirectionOutput VatDirection = "OUTPUT"
	VatDirectionBoth   VatDirection = "BOTH"
)

// Kind separates synthetic (parent) rows from analytical (leaf) rows.
type Kind int

// Kind values. KindUnknown rows are ignored by the importer.
const (
	KindUnknown Kind = iota
	KindSynthetic
	KindAnalytical
)

func (k Kind) String() string {
	switch k {
	case KindSynthetic:
		return "synthetic"
	case KindAnalytical:
		return "analytical"
	default:
		return "unknown"
	}
}

// Row is one parsed line of a chart-of-accounts file.
type Row struct {
	Line          int
	Kind          Kind
	Code          string
	Name          string
	ParentCode    string
	Type          AccountType
	Class         int
	VatApplicable bool
	VatDirection  VatDirection
}

// ParseAccountType maps a cell to an AccountType, defaulting to ASSET.
func ParseAccountType(value string) AccountType {
	switch t := AccountType(strings.ToUpper(strings.TrimSpace(value))); t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return t
	default:
		return AccountTypeAsset
	}
}

// ParseVatDirection maps a cell to a VatDirection, defaulting to NONE.
func ParseVatDirection(value string) VatDirection {
	switch d := VatDirection(strings.ToUpper(strings.TrimSpace(value))); d {
	case VatDirectionNone, VatDirectionInput, VatDirectionOutput, VatDirectionBoth:
		return d
	default:
		return VatDirectionNone
	}
}

// ParseVatApplicable reports whether a VAT applicability cell means "yes".
func ParseVatApplicable(value, yes string) bool {
	return strings.EqualFold(strings.TrimSpace(value), yes)
}

// AccountClass returns the leading digit of code, or 1 when code is empty
// or starts with something other than an ASCII digit.
func AccountClass(code string) int {
	if code == "" {
		return 1
	}
	if c := code[0]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return 1
}
