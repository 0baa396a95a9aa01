/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\uFEFF"

// ReadOptions controls how a chart file is read.
type ReadOptions struct {
	Columns   Columns
	Delimiter rune
}

// DefaultReadOptions reads comma-separated files with the default headers.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Columns: DefaultColumns(), Delimiter: ','}
}

// header resolves column names to record indexes. A missing optional
// column resolves to -1.
type header struct {
	kind, code, name, typ, parent, vatApplicable, vatDirection int
}

func resolveHeader(names []string, cols Columns) (header, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	lookup := func(name string, required bool) (int, error) {
		if i, ok := index[name]; ok {
			return i, nil
		}
		if required {
			return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return -1, nil
	}

	var (
		h   header
		err error
	)
	if h.kind, err = lookup(cols.Kind, true); err != nil {
		return h, err
	}
	if h.code, err = lookup(cols.Code, true); err != nil {
		return h, err
	}
	if h.name, err = lookup(cols.Name, true); err != nil {
		return h, err
	}
	if h.typ, err = lookup(cols.Type, true); err != nil {
		return h, err
	}
	if h.vatApplicable, err = lookup(cols.VatApplicable, true); err != nil {
		return h, err
	}
	if h.vatDirection, err = lookup(cols.VatDirection, true); err != nil {
		return h, err
	}
	h.parent, _ = lookup(cols.ParentCode, false)

	return h, nil
}

// cell returns the trimmed value at i, or "" for short records and
// unmapped columns.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ReadRows reads a chart-of-accounts file with a header row.
func ReadRows(r io.Reader, opts ReadOptions) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("reading chart header: %w", err)
	}

	cols := opts.Columns
	if cols == (Columns{}) {
		cols = DefaultColumns()
	}

	h, err := resolveHeader(names, cols)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		code := cell(rec, h.code)
		row := Row{
			Line:          line,
			Kind:          parseKind(cell(rec, h.kind), cols),
			Code:          code,
			Name:          cell(rec, h.name),
			Type:          ParseAccountType(cell(rec, h.typ)),
			Class:         AccountClass(code),
			VatApplicable: ParseVatApplicable(cell(rec, h.vatApplicable), cols.VatYesValue),
			VatDirection:  ParseVatDirection(cell(rec, h.vatDirection)),
		}
		if row.Kind == KindAnalytical {
			row.ParentCode = cell(rec, h.parent)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadFile opens path and reads it with ReadRows.
func ReadFile(path string, opts ReadOptions) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart file: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading chart file %s: %w", path, err)
	}
	return rows, nil
}

func parseKind(value string, cols Columns) Kind {
	switch value {
	case cols.SyntheticValue:
		return KindSynthetic
	case cols.AnalyticalValue:
		return KindAnalytical
	default:
		return KindUnknown
	}
}
