// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Load returns the default style with any fields present in the given
// TOML data overriding it. Unknown keys are an error.
func Load(r io.Reader) (*Style, error) {
	st := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(st); err != nil {
		return nil, fmt.Errorf("style.Load: %w", err)
	}
	if err := st.Resolve(); err != nil {
		return nil, err
	}
	return st, nil
}

// Open loads a style from the given TOML file; see [Load].
func Open(filename string) (*Style, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { errors.Log(fp.Close()) }()
	return Load(bufio.NewReader(fp))
}

// Write writes the style as TOML.
func (st *Style) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(st)
}
