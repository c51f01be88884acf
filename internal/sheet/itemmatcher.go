// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"sort"

	"github.com/tfctl/celldiff/internal/align"
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
)

// Strategy selects how an ItemMatcher pairs the lines of an axis.
type Strategy uint8

const (
	// IndexOnly pairs index n with index n across the union of both ranges.
	IndexOnly Strategy = iota
	// OrderedAlign aligns lines with unit costs per cell.
	OrderedAlign
	// WeightedAlign aligns lines with per-cross-index weights from Weights.
	WeightedAlign
)

func (s Strategy) String() string {
	switch s {
	case IndexOnly:
		return "index-only"
	case OrderedAlign:
		return "ordered-align"
	default:
		return "weighted-align"
	}
}

// ItemMatcher pairs the rows or the columns of two cell sets.
type ItemMatcher struct {
	Axis     Axis
	Strategy Strategy
	// CompareComments makes a comment difference count as a cell difference
	// when lines are compared.
	CompareComments bool
}

// entry is one cell of a line, placed at a position along the cross axis.
type entry struct {
	pos    int
	cell   Cell
	weight float64
}

type line []entry

// MakePairs pairs the lines of a and b along m.Axis.
//
// other, when non-nil, is the pairing already known for the cross axis. It
// must cover every cross index in use. Cross indices it marks as one-sided
// are left out of the comparison, and a paired cross index (x, y) is treated
// as one position so that a shifted column does not make every row differ.
func (m ItemMatcher) MakePairs(a, b *CellSet, other []pair.IndexPair) []pair.IndexPair {
	if m.Strategy == IndexOnly {
		return indexOnly(a, b, m.Axis)
	}

	lo := lowBound(a, b, m.Axis)
	linesA := m.lines(a, pair.A, other, lo)
	linesB := m.lines(b, pair.B, other, lo)
	res := align.Align(linesA, linesB, gapCost, m.diffCost)
	log.Debugf("itemmatcher: axis=%s strategy=%s from=%d linesA=%d linesB=%d cost=%g",
		m.Axis, m.Strategy, lo, len(linesA), len(linesB), res.Cost)

	if lo == 0 {
		return res.Pairs
	}
	for i, p := range res.Pairs {
		if p.Has(pair.A) {
			res.Pairs[i].A += lo
		}
		if p.Has(pair.B) {
			res.Pairs[i].B += lo
		}
	}
	return res.Pairs
}

// lowBound is the smallest index used along axis by either set, or 0 when
// both are empty.
func lowBound(a, b *CellSet, axis Axis) int {
	loA, _, okA := a.Bounds(axis)
	loB, _, okB := b.Bounds(axis)
	switch {
	case okA && okB:
		return min(loA, loB)
	case okA:
		return loA
	default:
		return loB
	}
}

// lines groups the cells of s into one line per index lo..max along m.Axis.
// Indices without cells get an empty line.
func (m ItemMatcher) lines(s *CellSet, side pair.Side, other []pair.IndexPair, lo int) []line {
	_, hi, ok := s.Bounds(m.Axis)
	if !ok {
		return nil
	}

	cross := m.Axis.Cross()

	var positions map[int]int
	if other != nil {
		positions = make(map[int]int, len(other))
		for ordinal, p := range other {
			if !p.IsPaired() {
				continue
			}
			idx, _ := p.Index(side)
			positions[idx] = ordinal
		}
	}

	var weights map[int]float64
	if m.Strategy == WeightedAlign {
		weights = Weights(s, cross)
	}

	out := make([]line, hi-lo+1)
	for _, c := range s.Cells() {
		raw := cross.Of(c)
		pos := raw
		if positions != nil {
			p, found := positions[raw]
			if !found {
				continue
			}
			pos = p
		}
		w := 1.0
		if weights != nil {
			w = weights[raw]
		}
		idx := m.Axis.Of(c) - lo
		out[idx] = append(out[idx], entry{pos: pos, cell: c, weight: w})
	}

	for _, l := range out {
		sort.SliceStable(l, func(i, j int) bool { return l[i].pos < l[j].pos })
	}
	return out
}

func gapCost(l line) float64 {
	var sum float64
	for _, e := range l {
		sum += e.weight
	}
	return sum
}

// diffCost walks two position-sorted lines together. A position present on
// one side only costs its weight; a shared position costs the mean weight of
// its two cells when they differ.
func (m ItemMatcher) diffCost(x, y line) float64 {
	var cost float64
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i].pos < y[j].pos:
			cost += x[i].weight
			i++
		case x[i].pos > y[j].pos:
			cost += y[j].weight
			j++
		default:
			if !x[i].cell.Equal(y[j].cell, m.CompareComments) {
				cost += (x[i].weight + y[j].weight) / 2
			}
			i++
			j++
		}
	}
	for ; i < len(x); i++ {
		cost += x[i].weight
	}
	for ; j < len(y); j++ {
		cost += y[j].weight
	}
	return cost
}

func indexOnly(a, b *CellSet, axis Axis) []pair.IndexPair {
	loA, hiA, okA := a.Bounds(axis)
	loB, hiB, okB := b.Bounds(axis)

	var lo, hi int
	switch {
	case okA && okB:
		lo, hi = min(loA, loB), max(hiA, hiB)
	case okA:
		lo, hi = loA, hiA
	case okB:
		lo, hi = loB, hiB
	default:
		return []pair.IndexPair{}
	}

	out := make([]pair.IndexPair, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, pair.Both(n, n))
	}
	return out
}
