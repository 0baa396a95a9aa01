/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Columns maps the fields of a Row to header names in the source file, and
// names the cell values that mark a row as synthetic or analytical.
type Columns struct {
	Kind          string `yaml:"kind"`
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	ParentCode    string `yaml:"parent_code"`
	VatApplicable string `yaml:"vat_applicable"`
	VatDirection  string `yaml:"vat_direction"`

	SyntheticValue  string `yaml:"synthetic_value"`
	AnalyticalValue string `yaml:"analytical_value"`
	VatYesValue     string `yaml:"vat_yes_value"`
}

// DefaultColumns returns the header names of the national chart export.
func DefaultColumns() Columns {
	return Columns{
		Kind:          "Тип сметка",
		Code:          "Код",
		Name:          "Име на сметка",
		Type:          "Тип",
		ParentCode:    "Синтетична сметка",
		VatApplicable: "ДДС приложимост",
		VatDirection:  "ДДС посока",

		SyntheticValue:  "СИНТЕТИЧНА",
		AnalyticalValue: "АНАЛИТИЧНА",
		VatYesValue:     "ДА",
	}
}

// LoadColumns reads a YAML column mapping. Keys left out of the file keep
// their DefaultColumns value.
func LoadColumns(path string) (Columns, error) {
	cols := DefaultColumns()

	data, err := os.ReadFile(path)
	if err != nil {
		return cols, fmt.Errorf("failed to read column mapping: %w", err)
	}

	if err := yaml.Unmarshal(data, &cols); err != nil {
		return cols, fmt.Errorf("failed to parse column mapping: %w", err)
	}

	if err := cols.validate(); err != nil {
		return cols, err
	}

	return cols, nil
}

func (c Columns) validate() error {
	required := map[string]string{
		"kind":             c.Kind,
		"code":             c.Code,
		"name":             c.Name,
		"type":             c.Type,
		"vat_applicable":   c.VatApplicable,
		"vat_direction":    c.VatDirection,
		"synthetic_value":  c.SyntheticValue,
		"analytical_value": c.AnalyticalValue,
		"vat_yes_value":    c.VatYesValue,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrInvalidColumn, key)
		}
	}
	return nil
}
