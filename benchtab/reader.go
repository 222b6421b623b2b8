// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/benchplot/benchplot/colspec"
)

// A SchemaError reports a table whose header does not match a
// requested column specification. It usually means the table was
// produced by an incompatible or stale layout.
type SchemaError struct {
	Source string
	Spec   colspec.Spec
	Header string
}

func (e *SchemaError) Error() string {
	if e.Header == "" {
		return fmt.Sprintf("corrupt table %q? no column at the position of %s", e.Source, e.Spec)
	}
	return fmt.Sprintf("corrupt table %q? column header %q does not match %s", e.Source, e.Header, e.Spec)
}

// A ValueError reports a malformed value on a particular line of a
// table.
type ValueError struct {
	Source string
	Line   int
	Msg    string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// Read reads one delimiter-separated table from r in a single forward
// pass and extracts one Series per requested column specification.
// name identifies the table in errors and in the Collection.
//
// The first non-blank row is the header; it determines the table's
// Layout and must match every requested specification. Later rows
// contribute one point per specification whose field is non-empty.
// Blank rows are skipped.
func Read(r io.Reader, name string, specs []colspec.Spec) (*Collection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var tb *tableBuilder
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if blankRow(row) {
			continue
		}
		line, _ := cr.FieldPos(0)
		if tb == nil {
			tb, err = newTableBuilder(name, row, specs)
		} else {
			err = tb.addRow(row, line)
		}
		if err != nil {
			return nil, err
		}
	}
	if tb == nil {
		return nil, fmt.Errorf("%s: table has no header row", name)
	}
	return tb.collection(), nil
}

// ReadFile reads the table in the named file. Files with an .xlsx
// extension are read as spreadsheets; everything else is read as
// delimiter-separated text. The file is fully consumed and closed
// before ReadFile returns, whether or not reading succeeds.
func ReadFile(path string, specs []colspec.Spec) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(f, path, specs)
	}
	return Read(f, path, specs)
}

// A tableBuilder accumulates the series of one table. Its layout and
// resolved field positions are local to the table being read, so
// tables with different layouts can be mixed freely in one run.
type tableBuilder struct {
	source    string
	layout    Layout
	specs     []colspec.Spec
	positions []int
	series    []*Series
}

func newTableBuilder(source string, header []string, specs []colspec.Spec) (*tableBuilder, error) {
	tb := &tableBuilder{
		source: source,
		layout: DetectLayout(header),
		specs:  specs,
	}
	for _, spec := range specs {
		pos := spec.FieldPosition(tb.layout.Stride)
		if pos >= len(header) {
			return nil, &SchemaError{Source: source, Spec: spec}
		}
		cell := strings.TrimSpace(header[pos])
		if !spec.Matches(cell) {
			return nil, &SchemaError{Source: source, Spec: spec, Header: cell}
		}
		tb.positions = append(tb.positions, pos)
		tb.series = append(tb.series, &Series{
			Header: cell,
			Mean:   strings.Contains(strings.ToLower(cell), string(colspec.Mean)),
		})
	}
	return tb, nil
}

func (tb *tableBuilder) addRow(row []string, line int) error {
	tick := normalizeTick(strings.TrimSpace(row[0]))
	for i, s := range tb.series {
		pos := tb.positions[i]
		field := rowField(row, pos)
		if field == "" {
			// A hole: this series simply gets no point for the row.
			continue
		}
		val, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return &ValueError{tb.source, line, fmt.Sprintf("malformed value %q in column %q", field, tb.series[i].Header)}
		}
		p := Point{Tick: tick, Value: val}
		if s.Mean && tb.layout.HasStdDev {
			if sf := rowField(row, pos+colspec.StdDevOffset); sf != "" {
				sigma, err := strconv.ParseFloat(sf, 64)
				if err != nil {
					return &ValueError{tb.source, line, fmt.Sprintf("malformed stddev %q in column %q", sf, tb.series[i].Header)}
				}
				p.Sigma, p.HasSigma = sigma, true
			}
		}
		s.Points = append(s.Points, p)
	}
	return nil
}

func (tb *tableBuilder) collection() *Collection {
	return &Collection{
		Source: tb.source,
		Layout: tb.layout,
		Specs:  tb.specs,
		Series: tb.series,
	}
}

// rowField returns the trimmed field at position pos, or "" when the
// row is too short to have one.
func rowField(row []string, pos int) string {
	if pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

func blankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
