// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package align

import (
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
)

// GapFunc is the cost of leaving an item unpaired.
type GapFunc[T any] func(T) float64

// DiffFunc is the cost of pairing two items. It must be 0 for equivalent
// items.
type DiffFunc[T any] func(T, T) float64

// Result is a minimum-cost alignment. Pairs covers every index of both inputs
// exactly once, ascending and non-crossing.
type Result struct {
	Pairs []pair.IndexPair
	Cost  float64
}

// move is the step taken out of a DP cell.
type move uint8

const (
	moveDiag move = iota
	moveA
	moveB
)

// Align computes the minimum-cost alignment of a and b where advancing one
// side alone costs gap of that item and advancing both costs diff of the two
// items.
//
// The table is filled from the ends of both sequences back to the start and
// then walked forward from (0, 0). Each cell records its preferred move so
// ties are settled where they first occur: pairing over advancing A over
// advancing B. The effect is that items are paired as early as possible.
func Align[T any](a, b []T, gap GapFunc[T], diff DiffFunc[T]) Result {
	n, m := len(a), len(b)
	log.Tracef("align: lenA=%d lenB=%d", n, m)

	gapA := make([]float64, n)
	for i := range a {
		gapA[i] = gap(a[i])
	}
	gapB := make([]float64, m)
	for j := range b {
		gapB[j] = gap(b[j])
	}

	// next holds row i+1 of the suffix table while cur is built for row i.
	next := make([]float64, m+1)
	cur := make([]float64, m+1)
	for j := m - 1; j >= 0; j-- {
		next[j] = next[j+1] + gapB[j]
	}

	moves := make([]move, n*m)
	for i := n - 1; i >= 0; i-- {
		cur[m] = next[m] + gapA[i]
		row := moves[i*m : (i+1)*m]
		for j := m - 1; j >= 0; j-- {
			best := diff(a[i], b[j]) + next[j+1]
			mv := moveDiag
			if c := gapA[i] + next[j]; c < best {
				best, mv = c, moveA
			}
			if c := gapB[j] + cur[j+1]; c < best {
				best, mv = c, moveB
			}
			cur[j] = best
			row[j] = mv
		}
		next, cur = cur, next
	}

	res := Result{
		Pairs: make([]pair.IndexPair, 0, max(n, m)),
		Cost:  next[0],
	}

	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i == n:
			res.Pairs = append(res.Pairs, pair.OnlyInB(j))
			j++
		case j == m:
			res.Pairs = append(res.Pairs, pair.OnlyInA(i))
			i++
		default:
			switch moves[i*m+j] {
			case moveDiag:
				res.Pairs = append(res.Pairs, pair.Both(i, j))
				i++
				j++
			case moveA:
				res.Pairs = append(res.Pairs, pair.OnlyInA(i))
				i++
			default:
				res.Pairs = append(res.Pairs, pair.OnlyInB(j))
				j++
			}
		}
	}

	log.Tracef("align: pairs=%d cost=%g", len(res.Pairs), res.Cost)
	return res
}

// UnitGap charges 1 for every unpaired item.
func UnitGap[T any](T) float64 { return 1 }

// UnitDiff charges 0 for equal items and 1 otherwise.
func UnitDiff[T comparable](x, y T) float64 {
	if x == y {
		return 0
	}
	return 1
}

// Simple aligns comparable items with unit costs.
func Simple[T comparable](a, b []T) Result {
	return Align(a, b, UnitGap[T], UnitDiff[T])
}
