// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plotting provides thin convenience functions for common chart
types in one consistent visual style, on top of gonum/plot.

[New] applies the [style.Style] defaults (Latin Modern sans-serif text,
16pt titles, 14pt labels, 12pt ticks, 3pt lines, a dark gray 0.8pt axis,
LaTeX math text and the seaborn "deep" color cycle) to the process-wide
gonum/plot configuration, and returns a [Plotter]:

	pl, err := plotting.New()
	if err != nil {
		return err
	}
	dt, err := frame.OpenCSV("iris.csv")
	if err != nil {
		return err
	}
	err = pl.Scatter(dt, "sepal_length", "sepal_width", "species")

Each chart method reads the named columns of a [frame.Table], builds one
figure and passes it to the [Renderer] of the Plotter; by default, a
[FileRenderer] writing numbered PNG files. A column that does not exist
is reported as an error wrapping [frame.ErrColumnNotFound], and nothing
is rendered.
*/
package plotting
