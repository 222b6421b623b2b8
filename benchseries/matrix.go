// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries aligns series extracted from benchmark result
// tables into a matrix suitable for joint rendering, and provides the
// order statistics used to pick display scales.
package benchseries

import (
	"fmt"

	"github.com/benchplot/benchplot/benchtab"
	"github.com/benchplot/benchplot/colspec"
)

// A ShapeError reports a table that produced a different number of
// series than the first table read, which makes the tables
// uncomparable.
type ShapeError struct {
	Source string
	Got    int
	Want   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("table %q produced %d series, want %d to match the first table", e.Source, e.Got, e.Want)
}

// A Matrix is the aligned set of series from every requested column
// specification across every input table. Rows are indexed by column
// specification (one rendered unit each), columns by source table
// (one legend entry each).
//
// A Matrix is constructed once by Aggregate and not mutated afterward.
type Matrix struct {
	// Specs are the column specifications, in the order of the
	// first contributed collection. Series is indexed [spec][table].
	Specs  []colspec.Spec
	Series [][]*benchtab.Series

	// Sources are the table identities in input order.
	Sources []string

	// Ticks and AxisLabel are display defaults derived once from
	// the first table's first series. Callers may override them.
	Ticks     []string
	AxisLabel string
}

// Aggregate merges the collections, one per input table, into a
// Matrix. The first collection fixes the expected series count; a
// later collection with a different count is a ShapeError.
func Aggregate(cols []*benchtab.Collection) (*Matrix, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no tables to aggregate")
	}
	first := cols[0]
	m := &Matrix{
		Specs:  first.Specs,
		Series: make([][]*benchtab.Series, len(first.Series)),
	}
	for _, col := range cols {
		if len(col.Series) != len(first.Series) {
			return nil, &ShapeError{Source: col.Source, Got: len(col.Series), Want: len(first.Series)}
		}
		m.Sources = append(m.Sources, col.Source)
		for i, s := range col.Series {
			m.Series[i] = append(m.Series[i], s)
		}
	}
	m.Ticks = first.Series[0].Ticks()
	m.AxisLabel = first.Series[0].Header
	return m, nil
}

// Values returns every value in the matrix, pooled across all series.
// The order of the result is not meaningful.
func (m *Matrix) Values() []float64 {
	var vals []float64
	for _, row := range m.Series {
		for _, s := range row {
			for _, p := range s.Points {
				vals = append(vals, p.Value)
			}
		}
	}
	return vals
}
