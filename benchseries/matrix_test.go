// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/benchplot/benchplot/benchtab"
	"github.com/benchplot/benchplot/colspec"
)

func readTable(t *testing.T, name, data, list string) *benchtab.Collection {
	t.Helper()
	specs, err := colspec.ParseList(list)
	if err != nil {
		t.Fatal(err)
	}
	col, err := benchtab.Read(strings.NewReader(data), name, specs)
	if err != nil {
		t.Fatal(err)
	}
	return col
}

func TestAggregate(t *testing.T) {
	const table1 = "name, time mean, time median, time min\nq1, 10, 9, 8\nq2, 20, 19, 18\n"
	const table2 = "name, time mean, time median, time min\nq1, 11, 10, 9\nq2, 21, 20, 19\n"

	m, err := Aggregate([]*benchtab.Collection{
		readTable(t, "one", table1, "time:mean"),
		readTable(t, "two", table2, "time:mean"),
	})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(m.Series) != 1 {
		t.Fatalf("got %d spec rows, want 1", len(m.Series))
	}
	if len(m.Series[0]) != 2 {
		t.Fatalf("got %d table columns, want 2", len(m.Series[0]))
	}
	if want := []string{"one", "two"}; !reflect.DeepEqual(m.Sources, want) {
		t.Errorf("sources = %v, want %v", m.Sources, want)
	}
	if want := []float64{10, 20}; !reflect.DeepEqual(m.Series[0][0].Values(), want) {
		t.Errorf("table one values = %v, want %v", m.Series[0][0].Values(), want)
	}
	if want := []float64{11, 21}; !reflect.DeepEqual(m.Series[0][1].Values(), want) {
		t.Errorf("table two values = %v, want %v", m.Series[0][1].Values(), want)
	}

	// Display defaults come from the first table's first series.
	if want := []string{"q1", "q2"}; !reflect.DeepEqual(m.Ticks, want) {
		t.Errorf("ticks = %v, want %v", m.Ticks, want)
	}
	if m.AxisLabel != "time mean" {
		t.Errorf("axis label = %q, want \"time mean\"", m.AxisLabel)
	}
}

func TestAggregateShapeMismatch(t *testing.T) {
	const data = "name, time mean, time median, time min\nq1, 10, 9, 8\n"

	cols := []*benchtab.Collection{
		readTable(t, "one", data, "time:mean,time:min"),
		readTable(t, "two", data, "time:mean"),
	}
	_, err := Aggregate(cols)
	var serr *ShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *ShapeError", err)
	}
	if serr.Source != "two" || serr.Got != 1 || serr.Want != 2 {
		t.Errorf("ShapeError = %+v, want {two 1 2}", serr)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate(nil); err == nil {
		t.Error("Aggregate(nil) succeeded, want error")
	}
}

func TestMatrixValues(t *testing.T) {
	const table = "name, time mean, time median, time min\nq1, 10, 9, 8\nq2, 20, 19, 18\n"
	m, err := Aggregate([]*benchtab.Collection{readTable(t, "one", table, "time:mean,time:min")})
	if err != nil {
		t.Fatal(err)
	}
	got := m.Values()
	want := []float64{10, 20, 8, 18}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}
