// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out column-aligned text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	rows [][]textCell
	cols int
}

type textCell struct {
	value     string
	alignment align
}

// A CellOption changes how a cell is laid out. Cells are left-aligned
// by default.
type CellOption func(c *textCell)

// Right right-aligns a cell within its column.
var Right CellOption = func(c *textCell) { c.alignment = alignRight }

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell to the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value, alignLeft}
	for _, o := range opts {
		o(&c)
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces and lines carry no trailing space.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, c := range row {
			if n := utf8.RuneCountInString(c.value); n > ws[col] {
				ws[col] = n
			}
		}
	}
	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, c := range row {
			if col > 0 {
				line.WriteString("  ")
			}
			line.WriteString(c.alignment.pad(c.value, ws[col]))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
