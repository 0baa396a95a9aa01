/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import "errors"

var (
	ErrEmptyFile     = errors.New("chart file is empty")
	ErrMissingColumn = errors.New("required column missing from header")
	ErrInvalidColumn = errors.New("column mapping has an empty header name")
)
