// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gota/gota/dataframe"
)

// Delims are standard CSV delimiter options.
type Delims int32

const (
	// Comma is the default delimiter.
	Comma Delims = iota

	// Tab is the tab delimiter.
	Tab

	// Semicolon is common in locales that use the comma as a decimal separator.
	Semicolon
)

// Rune returns the rune for the delimiter.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Semicolon:
		return ';'
	}
	return ','
}

// DelimFromExt returns [Tab] for .tsv files and [Comma] otherwise.
func DelimFromExt(filename string) Delims {
	if strings.EqualFold(filepath.Ext(filename), ".tsv") {
		return Tab
	}
	return Comma
}

// OpenCSV reads a table from a comma-separated-values (CSV) file,
// using the delimiter implied by the file extension.
// The table is named after the file.
func OpenCSV(filename string) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { errors.Log(fp.Close()) }()
	dt, err := ReadCSV(bufio.NewReader(fp), DelimFromExt(filename))
	if err != nil {
		return nil, fmt.Errorf("frame.OpenCSV %s: %w", filename, err)
	}
	dt.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return dt, nil
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { errors.Log(fp.Close()) }()
	dt, err := ReadCSV(bufio.NewReader(fp), DelimFromExt(filename))
	if err != nil {
		return nil, fmt.Errorf("frame.OpenFS %s: %w", filename, err)
	}
	dt.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return dt, nil
}

// ReadCSV reads a table from CSV data using the gota CSV loader.
// The first record must be the column headers. Column types are detected
// from the non-empty cells: int and float columns are numeric, and their
// empty or NaN cells are read as NaN.
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	df := dataframe.ReadCSV(r, dataframe.WithDelimiter(delim.Rune()))
	if df.Err != nil {
		return nil, fmt.Errorf("frame.ReadCSV: %w", df.Err)
	}
	return FromDataFrame(df)
}

// WriteCSV writes the table as CSV with a header row.
// Numeric cells use the shortest representation that reads back exactly.
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(dt.ColumnNames()); err != nil {
		return err
	}
	cols := make([][]string, dt.NumColumns())
	for i, nm := range dt.ColumnNames() {
		cols[i], _ = dt.Strings(nm)
	}
	rec := make([]string, len(cols))
	for ri := range dt.NumRows() {
		for ci := range cols {
			rec[ci] = cols[ci][ri]
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
