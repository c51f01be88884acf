// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"math"
	"unicode/utf8"
)

// Axis is the dimension along which cells are grouped into lines.
type Axis uint8

const (
	Row Axis = iota
	Column
)

// Of returns the index of c along the axis.
func (a Axis) Of(c Cell) int {
	if a == Row {
		return c.Row
	}
	return c.Column
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Row {
		return Column
	}
	return Row
}

func (a Axis) String() string {
	if a == Row {
		return "row"
	}
	return "column"
}

// Weights returns, for every index along axis that holds a cell, the square
// root of the summed content length at that index. Short repeated content
// therefore counts for less than rich content when lines are compared.
func Weights(s *CellSet, axis Axis) map[int]float64 {
	sums := make(map[int]int)
	for _, c := range s.Cells() {
		sums[axis.Of(c)] += utf8.RuneCountInString(c.Content)
	}
	w := make(map[int]float64, len(sums))
	for idx, n := range sums {
		w[idx] = math.Sqrt(float64(n))
	}
	return w
}
