// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

// Renderer is the final step of every chart function: it receives the
// finished [Figure] and displays it, which for this package means
// writing it somewhere. Render is called exactly once per chart.
type Renderer interface {
	Render(fig *Figure) error
}

// RenderFunc is an adapter to use an ordinary function as a [Renderer].
type RenderFunc func(fig *Figure) error

// Render calls f(fig).
func (f RenderFunc) Render(fig *Figure) error { return f(fig) }

// FileRenderer writes each figure to a file. If Filename is set, every
// figure is written to that file; otherwise files are numbered in
// sequence as Dir/Prefix-001.Format, Dir/Prefix-002.Format, and so on.
type FileRenderer struct {

	// Filename, if set, is the file every figure is written to.
	// The format is given by its extension.
	Filename string

	// Dir is the directory for numbered files. Defaults to the current directory.
	Dir string

	// Prefix for numbered files. Defaults to "figure".
	Prefix string

	// Format for numbered files. Defaults to "png".
	Format string

	// Saved is the list of files written, in order.
	Saved []string
}

// Render writes the figure to the next file.
func (fr *FileRenderer) Render(fig *Figure) error {
	fn := fr.Filename
	if fn == "" {
		prefix := fr.Prefix
		if prefix == "" {
			prefix = "figure"
		}
		format := fr.Format
		if format == "" {
			format = "png"
		}
		fn = filepath.Join(fr.Dir, fmt.Sprintf("%s-%03d.%s", prefix, len(fr.Saved)+1, format))
	}
	if err := fig.Save(fn); err != nil {
		return err
	}
	fr.Saved = append(fr.Saved, fn)
	slog.Info("plotting: saved figure", "chart", fig.Name, "file", fn)
	return nil
}

// WriterRenderer writes each figure to W in the given Format.
type WriterRenderer struct {
	W io.Writer

	// Format defaults to "png".
	Format string
}

// Render writes the figure to the writer.
func (wr *WriterRenderer) Render(fig *Figure) error {
	format := wr.Format
	if format == "" {
		format = "png"
	}
	wt, err := fig.WriterTo(format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(wr.W)
	return err
}
