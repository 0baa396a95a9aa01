/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package importer

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrInvalidCompany  = errors.New("company id must be positive")
)
