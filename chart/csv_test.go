// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_NationalChart(t *testing.T) {
	rows, err := ReadFile("testdata/ac_chart.csv", DefaultReadOptions())
	require.NoError(t, err)
	require.Len(t, rows, 9)

	first := rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, KindSynthetic, first.Kind)
	assert.Equal(t, "41", first.Code)
	assert.Equal(t, "Доставчици", first.Name)
	assert.Equal(t, AccountTypeLiability, first.Type)
	assert.Equal(t, 4, first.Class)
	assert.False(t, first.VatApplicable)
	assert.Equal(t, VatDirectionNone, first.VatDirection)
	assert.Empty(t, first.ParentCode)

	leaf := rows[1]
	assert.Equal(t, KindAnalytical, leaf.Kind)
	assert.Equal(t, "4111", leaf.Code)
	assert.Equal(t, "41", leaf.ParentCode)
	assert.True(t, leaf.VatApplicable)
	assert.Equal(t, VatDirectionInput, leaf.VatDirection)
}

func TestReadFile_NormalisesCase(t *testing.T) {
	rows, err := ReadFile("testdata/ac_chart.csv", DefaultReadOptions())
	require.NoError(t, err)

	assert.Equal(t, AccountTypeLiability, rows[2].Type)
	assert.Equal(t, VatDirectionBoth, rows[2].VatDirection)
}

func TestReadFile_DefaultsForUnknownValues(t *testing.T) {
	rows, err := ReadFile("testdata/ac_chart.csv", DefaultReadOptions())
	require.NoError(t, err)

	noCode := rows[7]
	assert.Equal(t, "", noCode.Code)
	assert.Equal(t, 1, noCode.Class)
	assert.Equal(t, AccountTypeAsset, noCode.Type)
	assert.Equal(t, VatDirectionNone, noCode.VatDirection)

	assert.Equal(t, KindUnknown, rows[8].Kind)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), DefaultReadOptions())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening chart file")
}

func TestReadRows_StripsBOM(t *testing.T) {
	data := "\uFEFFТип сметка,Код,Име на сметка,Тип,ДДС приложимост,ДДС посока\n" +
		"СИНТЕТИЧНА,101,Основен капитал,EQUITY,НЕ,NONE\n"

	rows, err := ReadRows(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, KindSynthetic, rows[0].Kind)
	assert.Equal(t, AccountTypeEquity, rows[0].Type)
}

func TestReadRows_ParentColumnOptional(t *testing.T) {
	data := "Тип сметка,Код,Име на сметка,Тип,ДДС приложимост,ДДС посока\n" +
		"АНАЛИТИЧНА,4111,Доставчици,LIABILITY,,\n"

	rows, err := ReadRows(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].ParentCode)
}

func TestReadRows_ShortRecord(t *testing.T) {
	data := "Тип сметка,Код,Име на сметка,Тип,ДДС приложимост,ДДС посока\n" +
		"СИНТЕТИЧНА,50\n"

	rows, err := ReadRows(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "50", rows[0].Code)
	assert.Equal(t, "", rows[0].Name)
	assert.Equal(t, AccountTypeAsset, rows[0].Type)
}

func TestReadRows_MissingColumn(t *testing.T) {
	data := "Тип сметка,Код,Тип,ДДС приложимост,ДДС посока\n"

	_, err := ReadRows(strings.NewReader(data), DefaultReadOptions())
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Име на сметка")
}

func TestReadRows_Empty(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""), DefaultReadOptions())
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadRows_HeaderOnly(t *testing.T) {
	data := "Тип сметка,Код,Име на сметка,Тип,ДДС приложимост,ДДС посока\n"

	rows, err := ReadRows(strings.NewReader(data), DefaultReadOptions())
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadRows_Semicolon(t *testing.T) {
	data := "Тип сметка;Код;Име на сметка;Тип;ДДС приложимост;ДДС посока\n" +
		"СИНТЕТИЧНА;60;Разходи;EXPENSE;ДА;INPUT\n"

	rows, err := ReadRows(strings.NewReader(data), ReadOptions{Columns: DefaultColumns(), Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, AccountTypeExpense, rows[0].Type)
	assert.Equal(t, 6, rows[0].Class)
}

func TestReadRows_ZeroOptionsUseDefaults(t *testing.T) {
	data := "Тип сметка,Код,Име на сметка,Тип,ДДС приложимост,ДДС посока\n" +
		"СИНТЕТИЧНА,70,Приходи,REVENUE,ДА,OUTPUT\n"

	rows, err := ReadRows(strings.NewReader(data), ReadOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, AccountTypeRevenue, rows[0].Type)
}

func TestReadRows_CustomColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "columns.yaml")
	mapping := "kind: record\ncode: number\nname: title\ntype: category\n" +
		"parent_code: parent\nvat_applicable: vat\nvat_direction: vat_side\n" +
		"synthetic_value: S\nanalytical_value: A\nvat_yes_value: Y\n"
	require.NoError(t, os.WriteFile(path, []byte(mapping), 0o644))

	cols, err := LoadColumns(path)
	require.NoError(t, err)

	data := "number,title,record,parent,category,vat,vat_side\n" +
		"41,Suppliers,S,,LIABILITY,n,NONE\n" +
		"4111,Local suppliers,A,41,LIABILITY,y,INPUT\n"

	rows, err := ReadRows(strings.NewReader(data), ReadOptions{Columns: cols, Delimiter: ','})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, KindSynthetic, rows[0].Kind)
	assert.Equal(t, KindAnalytical, rows[1].Kind)
	assert.Equal(t, "41", rows[1].ParentCode)
	assert.True(t, rows[1].VatApplicable)
	assert.False(t, rows[0].VatApplicable)
}

func TestLoadColumns_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code: Account\n"), 0o644))

	cols, err := LoadColumns(path)
	require.NoError(t, err)
	assert.Equal(t, "Account", cols.Code)
	assert.Equal(t, DefaultColumns().Name, cols.Name)
}

func TestLoadColumns_EmptyValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code: \"\"\n"), 0o644))

	_, err := LoadColumns(path)
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestLoadColumns_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("code: [unclosed\n"), 0o644))

	_, err := LoadColumns(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse column mapping")
}
