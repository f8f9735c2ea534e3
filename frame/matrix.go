// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix returns a rows x columns dense matrix of the given numeric columns.
// If no columns are given, all numeric columns are used.
func (dt *Table) Matrix(columns ...string) (*mat.Dense, error) {
	if len(columns) == 0 {
		columns = dt.NumericColumns()
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("frame.Table.Matrix: %w: no numeric columns", ErrNotNumeric)
	}
	if dt.NumRows() == 0 {
		return nil, fmt.Errorf("frame.Table.Matrix: table has no rows")
	}
	m := mat.NewDense(dt.NumRows(), len(columns), nil)
	for ci, nm := range columns {
		vals, err := dt.Floats(nm)
		if err != nil {
			return nil, err
		}
		m.SetCol(ci, vals)
	}
	return m, nil
}
