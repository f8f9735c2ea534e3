// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides a data table of named columns aligned by a common
// row count, stored as a gota [dataframe.DataFrame]. Int and float columns
// are numeric; every other column is read as strings.
// The plotting functions only ever read from a Table.
package frame

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotNumeric is returned when a numeric column is required
	// but the named column holds strings.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Table is a table of columns aligned by a common row dimension.
// Access columns by name using [Table.Floats], [Table.Strings] or [Table.Series].
type Table struct {
	// Name is an optional name for the table, used in logging.
	Name string

	df dataframe.DataFrame
}

// New returns a new empty Table, with an optional name.
func New(name ...string) *Table {
	dt := &Table{}
	if len(name) > 0 {
		dt.Name = name[0]
	}
	return dt
}

// FromDataFrame returns a Table wrapping the given data frame,
// or the data frame's error if it has one.
func FromDataFrame(df dataframe.DataFrame, name ...string) (*Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	dt := New(name...)
	dt.df = df
	return dt, nil
}

// DataFrame returns the underlying data frame.
func (dt *Table) DataFrame() dataframe.DataFrame { return dt.df }

// NumRows returns the number of rows.
func (dt *Table) NumRows() int {
	if dt.df.Ncol() == 0 {
		return 0
	}
	return dt.df.Nrow()
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.df.Ncol() }

// ColumnNames returns the names of all columns, in order.
func (dt *Table) ColumnNames() []string { return dt.df.Names() }

// NumericColumns returns the names of the int and float columns, in order.
func (dt *Table) NumericColumns() []string {
	var nms []string
	for i, tp := range dt.df.Types() {
		if isNumeric(tp) {
			nms = append(nms, dt.df.Names()[i])
		}
	}
	return nms
}

func isNumeric(tp series.Type) bool {
	return tp == series.Float || tp == series.Int
}

// Series returns a copy of the named column, or an error
// wrapping [ErrColumnNotFound].
func (dt *Table) Series(name string) (series.Series, error) {
	if !dt.HasColumn(name) {
		return series.Series{}, fmt.Errorf("frame.Table: column named %q: %w", name, ErrColumnNotFound)
	}
	s := dt.df.Col(name)
	return s, s.Err
}

// AddFloats adds a new numeric column.
func (dt *Table) AddFloats(name string, vals []float64) error {
	if vals == nil {
		vals = []float64{}
	}
	return dt.add(series.New(vals, series.Float, name))
}

// AddStrings adds a new string column.
func (dt *Table) AddStrings(name string, vals []string) error {
	if vals == nil {
		vals = []string{}
	}
	return dt.add(series.New(vals, series.String, name))
}

func (dt *Table) add(s series.Series) error {
	if s.Err != nil {
		return s.Err
	}
	if dt.HasColumn(s.Name) {
		return fmt.Errorf("frame.Table: column named %q already exists", s.Name)
	}
	if dt.df.Ncol() == 0 {
		dt.df = dataframe.New(s)
		return dt.df.Err
	}
	if s.Len() != dt.df.Nrow() {
		return fmt.Errorf("frame.Table: column %q has %d rows, table has %d", s.Name, s.Len(), dt.df.Nrow())
	}
	df := dt.df.Mutate(s)
	if df.Err != nil {
		return df.Err
	}
	dt.df = df
	return nil
}

// Floats returns the values of the named numeric column.
// Missing values are NaN.
func (dt *Table) Floats(name string) ([]float64, error) {
	s, err := dt.Series(name)
	if err != nil {
		return nil, err
	}
	if !isNumeric(s.Type()) {
		return nil, fmt.Errorf("frame.Table: column named %q: %w", name, ErrNotNumeric)
	}
	return s.Float(), nil
}

// Strings returns the values of the named column as strings.
// Numeric values are formatted with the shortest 'g' representation.
func (dt *Table) Strings(name string) ([]string, error) {
	s, err := dt.Series(name)
	if err != nil {
		return nil, err
	}
	if !isNumeric(s.Type()) {
		return s.Records(), nil
	}
	vals := s.Float()
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strs, nil
}

// Categories returns the distinct values of the named column in order of
// first appearance, along with the row indexes that hold each value.
func (dt *Table) Categories(name string) ([]string, map[string][]int, error) {
	strs, err := dt.Strings(name)
	if err != nil {
		return nil, nil, err
	}
	var cats []string
	rows := make(map[string][]int)
	for i, s := range strs {
		if _, has := rows[s]; !has {
			cats = append(cats, s)
		}
		rows[s] = append(rows[s], i)
	}
	return cats, rows, nil
}

// Select returns the values of the named numeric column at the given rows.
func (dt *Table) Select(name string, rows []int) ([]float64, error) {
	vals, err := dt.Floats(name)
	if err != nil {
		return nil, err
	}
	sel := make([]float64, len(rows))
	for i, r := range rows {
		sel[i] = vals[r]
	}
	return sel, nil
}

// HasColumn returns true if a column with the given name exists.
func (dt *Table) HasColumn(name string) bool {
	return slices.Contains(dt.ColumnNames(), name)
}
