// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchplot/benchplot/benchseries"
	"github.com/benchplot/benchplot/benchtab"
	"github.com/benchplot/benchplot/colspec"
)

const testTable = `name, time mean, time median, time min, time stddev, memory mean, memory median, memory min, memory stddev, cpu mean, cpu median, cpu min, cpu stddev
q1, 10, 9, 8, 0.5, 100, 90, 80, 5, 1, 0.9, 0.8, 0.05
q2, 20, 19, 18, 1.5, 200, 190, 180, 15, 2, 1.9, 1.8, 0.15
q3, 30, 29, 28, 2.5, 300, 290, 280, 25, 3, 2.9, 2.8, 0.25
`

func testMatrix(t *testing.T, list string) *benchseries.Matrix {
	t.Helper()
	specs, err := colspec.ParseList(list)
	if err != nil {
		t.Fatal(err)
	}
	var cols []*benchtab.Collection
	for _, name := range []string{"one", "two"} {
		col, err := benchtab.Read(strings.NewReader(testTable), name, specs)
		if err != nil {
			t.Fatal(err)
		}
		cols = append(cols, col)
	}
	m, err := benchseries.Aggregate(cols)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// render runs Render into a temporary file and checks that it produced
// a non-empty artifact.
func render(t *testing.T, m *benchseries.Matrix, opts Options, file string) {
	t.Helper()
	opts.Output = filepath.Join(t.TempDir(), file)
	if err := Render(m, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	fi, err := os.Stat(opts.Output)
	if err != nil {
		t.Fatalf("no output artifact: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatal("output artifact is empty")
	}
}

func TestRenderLine(t *testing.T) {
	render(t, testMatrix(t, "time:mean"), Options{
		XLabel: "Query",
		Title:  "Benchmark",
	}, "out.png")
}

func TestRenderSubplots(t *testing.T) {
	// One stacked plot per measurement, sharing the x axis.
	render(t, testMatrix(t, "all:mean"), Options{
		XLabel:      "Query",
		Title:       "Benchmark",
		LegendTitle: "dataset",
		TickLegend:  "q1: cold cache;q2: warm cache;q3: hot cache",
	}, "out.png")
}

func TestRenderBar(t *testing.T) {
	render(t, testMatrix(t, "time:mean"), Options{Kind: Bar}, "out.png")
}

func TestRenderScales(t *testing.T) {
	for _, scale := range []Scale{Linear, Log, HybridLog} {
		render(t, testMatrix(t, "time:mean"), Options{Scale: scale}, "out.png")
	}
}

func TestRenderFormats(t *testing.T) {
	for _, file := range []string{"out.png", "out.svg", "out.pdf"} {
		render(t, testMatrix(t, "time:mean"), Options{}, file)
	}
}

func TestRenderErrors(t *testing.T) {
	m := testMatrix(t, "time:mean")

	if err := Render(m, Options{Kind: "pie", Output: "out.png"}); err == nil {
		t.Error("unknown kind accepted")
	}
	if err := Render(m, Options{Scale: "sqrt", Output: "out.png"}); err == nil {
		t.Error("unknown scale accepted")
	}
	if err := Render(m, Options{Output: "out.gif"}); err == nil {
		t.Error("unknown output format accepted")
	}
	if err := Render(m, Options{SeriesLabels: []string{"just one"}, Output: "out.png"}); err == nil {
		t.Error("too few series labels accepted")
	}
}
