// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"io"

	"github.com/aclements/go-moremath/stats"
)

// A SeriesSummary describes the distribution of one series' values.
type SeriesSummary struct {
	Source string
	Header string
	N      int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summaries computes a SeriesSummary for every series in the matrix,
// in matrix order (by column specification, then by source table).
// Series with no points are skipped.
func Summaries(m *Matrix) []SeriesSummary {
	var sums []SeriesSummary
	for _, row := range m.Series {
		for j, s := range row {
			vals := s.Values()
			if len(vals) == 0 {
				continue
			}
			sample := stats.Sample{Xs: vals}
			min, max := stats.Bounds(vals)
			sums = append(sums, SeriesSummary{
				Source: m.Sources[j],
				Header: s.Header,
				N:      len(vals),
				Mean:   stats.Mean(vals),
				Median: sample.Quantile(0.5),
				Min:    min,
				Max:    max,
			})
		}
	}
	return sums
}

// WriteSummaries writes the summaries to w, one line per series.
func WriteSummaries(w io.Writer, sums []SeriesSummary) {
	for _, s := range sums {
		fmt.Fprintf(w, "%s: %s: n=%d mean=%.6g median=%.6g min=%.6g max=%.6g\n",
			s.Source, s.Header, s.N, s.Mean, s.Median, s.Min, s.Max)
	}
}
