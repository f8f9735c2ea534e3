// Copyright (c) 2026, The plotstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotting renders one chart from a CSV file in the
// standard plotting style.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/plotstyle/plotting"
	"github.com/plotstyle/plotting/frame"
	"github.com/plotstyle/plotting/style"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the persistent flags shared by all chart commands.
type options struct {
	stylePath string
	out       string
	dir       string
	format    string
	width     float64
	height    float64
	verbose   bool
}

// NewRootCmd returns the root command with all chart subcommands.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "plotting",
		Short: "Render charts from CSV files in a consistent style",
		Long: `plotting renders histograms, scatter plots, scatter matrices, line plots,
box plots, bar plots and heatmaps from the columns of a CSV file, using fixed
fonts, line widths, tick sizes and color palette. A TOML file passed with
--style overrides any of the style values.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.stylePath, "style", "", "TOML file overriding the default style")
	pf.StringVarP(&opts.out, "out", "o", "", "output file; the extension sets the format (default: numbered files)")
	pf.StringVar(&opts.dir, "dir", ".", "directory for numbered output files")
	pf.StringVar(&opts.format, "format", "png", "format for numbered output files")
	pf.Float64Var(&opts.width, "width", 0, "figure width in inches (default from style)")
	pf.Float64Var(&opts.height, "height", 0, "figure height in inches (default from style)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		histCmd(opts),
		scatterCmd(opts),
		matrixCmd(opts),
		lineCmd(opts),
		boxCmd(opts),
		barCmd(opts),
		heatmapCmd(opts),
		corrCmd(opts),
		sineCmd(opts),
		styleCmd(opts),
	)
	return root
}

// loadStyle returns the default style, overridden by the --style file.
func (o *options) loadStyle() (*style.Style, error) {
	if o.stylePath == "" {
		return style.Default(), nil
	}
	return style.Open(o.stylePath)
}

// plotter returns a Plotter configured from the flags.
func (o *options) plotter() (*plotting.Plotter, error) {
	st, err := o.loadStyle()
	if err != nil {
		return nil, err
	}
	pl, err := plotting.NewWithStyle(st)
	if err != nil {
		return nil, err
	}
	if o.width > 0 {
		pl.Width = vg.Length(o.width) * vg.Inch
	}
	if o.height > 0 {
		pl.Height = vg.Length(o.height) * vg.Inch
	}
	pl.Renderer = &plotting.FileRenderer{Filename: o.out, Dir: o.dir, Format: o.format}
	return pl, nil
}

// tableCmd returns a command that opens the CSV file given as its only
// argument and calls draw with it.
func tableCmd(o *options, use, short string, draw func(pl *plotting.Plotter, dt *frame.Table) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file.csv>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := frame.OpenCSV(args[0])
			if err != nil {
				return err
			}
			slog.Debug("plotting: read table", "file", args[0], "rows", dt.NumRows(), "columns", dt.NumColumns())
			pl, err := o.plotter()
			if err != nil {
				return err
			}
			return draw(pl, dt)
		},
	}
}

func histCmd(o *options) *cobra.Command {
	var column string
	var bins int
	cmd := tableCmd(o, "hist", "Histogram of one numeric column", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Hist(dt, column, bins)
	})
	cmd.Flags().StringVarP(&column, "column", "c", "", "numeric column")
	cmd.Flags().IntVar(&bins, "bins", plotting.DefaultBins, "number of bins")
	cmd.MarkFlagRequired("column")
	return cmd
}

func scatterCmd(o *options) *cobra.Command {
	var x, y, hue string
	cmd := tableCmd(o, "scatter", "Scatter plot of two numeric columns", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Scatter(dt, x, y, hue)
	})
	cmd.Flags().StringVarP(&x, "x", "x", "", "numeric column for the X axis")
	cmd.Flags().StringVarP(&y, "y", "y", "", "numeric column for the Y axis")
	cmd.Flags().StringVar(&hue, "hue", "", "column whose categories set the point colors")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	return cmd
}

func matrixCmd(o *options) *cobra.Command {
	var columns []string
	cmd := tableCmd(o, "matrix", "Scatter matrix of numeric columns", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.ScatterMatrix(dt, columns...)
	})
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "numeric columns (default: all)")
	return cmd
}

func lineCmd(o *options) *cobra.Command {
	var x string
	var ys []string
	cmd := tableCmd(o, "line", "Line plot of numeric columns against a numeric X column", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Line(dt, x, ys...)
	})
	cmd.Flags().StringVarP(&x, "x", "x", "", "numeric column for the X axis")
	cmd.Flags().StringSliceVarP(&ys, "y", "y", nil, "numeric columns for the lines (default: all others)")
	cmd.MarkFlagRequired("x")
	return cmd
}

func boxCmd(o *options) *cobra.Command {
	var x, y string
	cmd := tableCmd(o, "box", "Box plot of a numeric column, per category", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Box(dt, x, y)
	})
	cmd.Flags().StringVarP(&x, "x", "x", "", "category column (default: a single box)")
	cmd.Flags().StringVarP(&y, "y", "y", "", "numeric column")
	cmd.MarkFlagRequired("y")
	return cmd
}

func barCmd(o *options) *cobra.Command {
	var x, y string
	cmd := tableCmd(o, "bar", "Bar plot of the mean of a numeric column, per category", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Bar(dt, x, y)
	})
	cmd.Flags().StringVarP(&x, "x", "x", "", "category column")
	cmd.Flags().StringVarP(&y, "y", "y", "", "numeric column")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	return cmd
}

func heatmapCmd(o *options) *cobra.Command {
	var columns []string
	cmd := tableCmd(o, "heatmap", "Heatmap of the values of numeric columns", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Heatmap(dt, columns...)
	})
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "numeric columns (default: all)")
	return cmd
}

func corrCmd(o *options) *cobra.Command {
	var columns []string
	cmd := tableCmd(o, "corr", "Heatmap of the correlation matrix of numeric columns", func(pl *plotting.Plotter, dt *frame.Table) error {
		return pl.Corr(dt, columns...)
	})
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "numeric columns (default: all)")
	return cmd
}

func sineCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sine",
		Short: "Shifted sine curves in each color of the palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := o.plotter()
			if err != nil {
				return err
			}
			return pl.SinusoidalLines()
		},
	}
}

func styleCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the effective style as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := o.loadStyle()
			if err != nil {
				return err
			}
			if err := st.Write(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("writing style: %w", err)
			}
			return nil
		},
	}
}
