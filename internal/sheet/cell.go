// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateCell is returned when two cells share a coordinate.
	ErrDuplicateCell = errors.New("duplicate cell coordinate")
	// ErrNegativeIndex is returned for a cell with a negative row or column.
	ErrNegativeIndex = errors.New("negative cell index")
)

// Cell is one non-blank position of a sheet. Row and Column are zero-based.
// Content is the display string; Comment is empty when there is none.
type Cell struct {
	Row     int    `json:"row" yaml:"row"`
	Column  int    `json:"column" yaml:"column"`
	Content string `json:"content" yaml:"content"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Blank is the placeholder used where a sheet has no cell.
func Blank(row, column int) Cell {
	return Cell{Row: row, Column: column}
}

// IsBlank reports whether the cell carries neither content nor comment.
func (c Cell) IsBlank() bool {
	return c.Content == "" && c.Comment == ""
}

// Equal reports whether two cells hold the same content and, when
// withComment is set, the same comment. Coordinates are not compared.
func (c Cell) Equal(o Cell, withComment bool) bool {
	if c.Content != o.Content {
		return false
	}
	return !withComment || c.Comment == o.Comment
}

type coord struct {
	row, column int
}

// CellSet is an immutable collection of the cells of one sheet, at most one
// per coordinate.
type CellSet struct {
	cells  map[coord]Cell
	sorted []Cell
}

// NewCellSet builds a CellSet, rejecting duplicate coordinates and negative
// indices.
func NewCellSet(cells ...Cell) (*CellSet, error) {
	s := &CellSet{
		cells:  make(map[coord]Cell, len(cells)),
		sorted: make([]Cell, 0, len(cells)),
	}
	for _, c := range cells {
		if c.Row < 0 || c.Column < 0 {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrNegativeIndex, c.Row, c.Column)
		}
		k := coord{c.Row, c.Column}
		if _, dup := s.cells[k]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateCell, c.Row, c.Column)
		}
		s.cells[k] = c
		s.sorted = append(s.sorted, c)
	}

	sort.Slice(s.sorted, func(i, j int) bool {
		if s.sorted[i].Row != s.sorted[j].Row {
			return s.sorted[i].Row < s.sorted[j].Row
		}
		return s.sorted[i].Column < s.sorted[j].Column
	})
	return s, nil
}

// MustCellSet is NewCellSet for literals known to be valid. It panics on
// error.
func MustCellSet(cells ...Cell) *CellSet {
	s, err := NewCellSet(cells...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of cells.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sorted)
}

// Get returns the cell at a coordinate.
func (s *CellSet) Get(row, column int) (Cell, bool) {
	if s == nil {
		return Cell{}, false
	}
	c, ok := s.cells[coord{row, column}]
	return c, ok
}

// Cells returns the cells ordered by row and then column. The slice must not
// be modified.
func (s *CellSet) Cells() []Cell {
	if s == nil {
		return nil
	}
	return s.sorted
}

// Bounds returns the smallest and largest index used along axis. ok is false
// for an empty set.
func (s *CellSet) Bounds(axis Axis) (lo, hi int, ok bool) {
	for i, c := range s.Cells() {
		idx := axis.Of(c)
		if i == 0 || idx < lo {
			lo = idx
		}
		if i == 0 || idx > hi {
			hi = idx
		}
	}
	return lo, hi, s.Len() > 0
}
