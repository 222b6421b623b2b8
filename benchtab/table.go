// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads benchmark result tables.
//
// A table is delimiter-separated text (or a spreadsheet sheet) whose
// first row is a header and whose first column is the benchmark name.
// The remaining columns are fixed-size blocks of statistics, one block
// per measurement in the order time, memory, cpu. A block holds the
// mean, median, and min, optionally followed by a standard deviation.
package benchtab

import (
	"strings"

	"github.com/benchplot/benchplot/colspec"
)

// stdDevMarker is matched case-insensitively against header cells to
// detect the wider layout.
const stdDevMarker = "stddev"

// A Layout describes how one table arranges its columns. It is derived
// from the table's header row and applies to that table only; tables
// read in the same run need not agree.
type Layout struct {
	// Stride is the number of fields per measurement block:
	// 3, or 4 when the block ends with a standard deviation.
	Stride int

	// HasStdDev reports whether each measurement block carries a
	// trailing standard-deviation slot.
	HasStdDev bool
}

// DetectLayout determines the layout of a table from its header row.
// Any header cell containing the standard-deviation marker widens
// every measurement block by one slot.
func DetectLayout(header []string) Layout {
	for _, cell := range header {
		if strings.Contains(strings.ToLower(cell), stdDevMarker) {
			return Layout{Stride: 4, HasStdDev: true}
		}
	}
	return Layout{Stride: 3, HasStdDev: false}
}

// A Point is one data row's contribution to a Series.
type Point struct {
	// Tick is the normalized benchmark name, used as the x-axis
	// tick label.
	Tick string

	// Value is the measured value.
	Value float64

	// Sigma is the standard deviation of Value. It is attached only
	// when the series is mean-type, the table layout has a
	// standard-deviation slot, and the row's slot is populated;
	// HasSigma reports whether it is.
	Sigma    float64
	HasSigma bool
}

// A Series is the data extracted from one table for one column
// specification: an ordered sequence of points in source row order.
//
// Rows whose field for this series is empty contribute no point, so
// sibling series read from the same table may have different lengths.
type Series struct {
	// Header is the literal header text of the series' column.
	Header string

	// Mean reports whether Header names a mean-type column, which
	// gates attachment of standard deviations.
	Mean bool

	Points []Point
}

// Ticks returns the series' tick labels in row order.
func (s *Series) Ticks() []string {
	ticks := make([]string, len(s.Points))
	for i, p := range s.Points {
		ticks[i] = p.Tick
	}
	return ticks
}

// Values returns the series' values in row order.
func (s *Series) Values() []float64 {
	vals := make([]float64, len(s.Points))
	for i, p := range s.Points {
		vals[i] = p.Value
	}
	return vals
}

// A Collection is the result of one reader pass over one table: one
// Series per requested column specification, in request order.
type Collection struct {
	// Source identifies the table, typically a file name or label.
	// It is used in error messages and as the default legend label.
	Source string

	Layout Layout
	Specs  []colspec.Spec
	Series []*Series
}

// normalizeTick normalizes a benchmark name for use as a tick label:
// a trailing "."-separated component (conventionally an ordinal
// suffix) is cut at the last ".", and leading zeros are stripped.
// The order matters: truncation first, then zero stripping.
func normalizeTick(label string) string {
	if i := strings.LastIndexByte(label, '.'); i >= 0 {
		label = label[:i]
	}
	return strings.TrimLeft(label, "0")
}
