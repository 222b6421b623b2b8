// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot extracts statistics from benchmark result tables and
// plots them as comparable series, one series per input file.
//
// Usage:
//
//	benchplot [flags] [label=]file...
//
// Each file is a result table: a header row followed by one row per
// benchmark, the benchmark name first and then blocks of mean, median,
// min (and optionally stddev) columns for time, memory, and cpu.
// Files may also be given with the -files flag, comma-separated.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/benchplot/benchplot/benchchart"
	"github.com/benchplot/benchplot/benchseries"
	"github.com/benchplot/benchplot/benchtab"
	"github.com/benchplot/benchplot/colspec"
)

func main() {
	var (
		files       = flag.String("files", "", "comma-separated list of result files, e.g. file1,file2,... (entries may be label=path)")
		columns     = flag.String("columns", "all:mean", "specification of the data columns to extract from each file, as comma-separated [(all|time|memory|cpu)[:(mean|median|min)]]")
		dataLabels  = flag.String("data-labels", "", "legend labels, comma-separated, one per file")
		xlabel      = flag.String("xlabel", "Query", "x axis label")
		ylabel      = flag.String("ylabel", "", "y axis label (default: the first column's header)")
		xtickLabels = flag.String("xtick-labels", "", "custom x tick labels, comma-separated")
		xtickLegend = flag.String("xtick-legend", "", "legend for the x ticks, as ';'-separated lines")
		title       = flag.String("title", "Benchmark", "plot title")
		legendTitle = flag.String("legend-title", "", "legend title")
		kind        = flag.String("kind", "line", "chart kind: line or bar")
		scale       = flag.String("scale", "linear", "y scale: linear, log, logit, or hybrid-log")
		out         = flag.String("o", "plot.png", "output file name; the extension selects png, svg, or pdf")
		summary     = flag.Bool("summary", false, "print per-series summary statistics to stdout")
	)
	flag.Parse()

	args := flag.Args()
	if *files != "" {
		args = append(splitList(*files), args...)
	}
	if len(args) == 0 {
		fail("please specify the benchmark result files\n")
	}

	specs, err := colspec.ParseList(*columns)
	if err != nil {
		fail("parsing -columns: %v\n", err)
	}

	inputs := benchtab.ParseInputs(args)
	cols := make([]*benchtab.Collection, 0, len(inputs))
	for _, in := range inputs {
		col, err := benchtab.ReadFile(in.Path, specs)
		if err != nil {
			fail("%v\n", err)
		}
		col.Source = in.Label
		cols = append(cols, col)
	}

	matrix, err := benchseries.Aggregate(cols)
	if err != nil {
		fail("%v\n", err)
	}

	if *summary {
		benchseries.WriteSummaries(os.Stdout, benchseries.Summaries(matrix))
	}

	opts := benchchart.Options{
		XLabel:       *xlabel,
		YLabel:       *ylabel,
		Title:        *title,
		LegendTitle:  *legendTitle,
		SeriesLabels: splitList(*dataLabels),
		TickLabels:   splitList(*xtickLabels),
		TickLegend:   *xtickLegend,
		Kind:         benchchart.Kind(*kind),
		Scale:        benchchart.Scale(*scale),
		Output:       *out,
	}
	if err := benchchart.Render(matrix, opts); err != nil {
		fail("%v\n", err)
	}
}

// splitList splits a comma-separated flag value, returning nil for an
// empty value so defaults derived from the data apply.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
