// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"strings"
	"testing"

	"github.com/benchplot/benchplot/benchtab"
)

func TestSummaries(t *testing.T) {
	const table = "name, time mean, time median, time min\nq1, 10, 9, 8\nq2, 20, 19, 18\nq3, 30, 29, 28\n"
	m, err := Aggregate([]*benchtab.Collection{readTable(t, "one", table, "time:mean")})
	if err != nil {
		t.Fatal(err)
	}

	sums := Summaries(m)
	if len(sums) != 1 {
		t.Fatalf("got %d summaries, want 1", len(sums))
	}
	s := sums[0]
	if s.Source != "one" || s.Header != "time mean" || s.N != 3 {
		t.Errorf("summary identity = %q/%q n=%d, want one/\"time mean\" n=3", s.Source, s.Header, s.N)
	}
	if s.Mean != 20 || s.Median != 20 || s.Min != 10 || s.Max != 30 {
		t.Errorf("summary stats = mean=%v median=%v min=%v max=%v, want 20/20/10/30", s.Mean, s.Median, s.Min, s.Max)
	}
}

func TestWriteSummaries(t *testing.T) {
	var sb strings.Builder
	WriteSummaries(&sb, []SeriesSummary{
		{Source: "one", Header: "time mean", N: 2, Mean: 15, Median: 15, Min: 10, Max: 20},
	})
	got := sb.String()
	for _, want := range []string{"one", "time mean", "n=2", "mean=15"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
