// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/benchplot/benchplot/colspec"
)

// ReadXLSX reads a table from the first sheet of an xlsx workbook.
// The sheet's rows are interpreted exactly like the rows of a
// delimiter-separated table: header first, benchmark name in the
// first column, statistic blocks after it.
func ReadXLSX(r io.Reader, name string, specs []colspec.Spec) (*Collection, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", name)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var tb *tableBuilder
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		if tb == nil {
			tb, err = newTableBuilder(name, row, specs)
		} else {
			err = tb.addRow(row, i+1)
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
