/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package importer

// ParentMap maps synthetic account codes to their database ids. The
// synthetic pass fills it; the analytical pass only reads it.
type ParentMap struct {
	ids map[string]int64
}

// NewParentMap returns an empty map.
func NewParentMap() *ParentMap {
	return &ParentMap{ids: make(map[string]int64)}
}

// Set records the id of a synthetic account.
func (m *ParentMap) Set(code string, id int64) {
	m.ids[code] = id
}

// Lookup returns the id recorded for code. An empty code never resolves.
func (m *ParentMap) Lookup(code string) (int64, bool) {
	if code == "" {
		return 0, false
	}
	id, ok := m.ids[code]
	return id, ok
}

// Len returns the number of recorded codes.
func (m *ParentMap) Len() int {
	return len(m.ids)
}
