// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"fmt"
	"math"

	"github.com/tfctl/celldiff/internal/hungarian"
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
)

// CostFlow finds the partial pairing of A and B items with the lowest total
// of Cost over paired items plus Absence over unpaired items on both sides.
// A Cost of +Inf forbids the pairing. The optimum is global.
//
// Cost functions returning NaN or -Inf violate the contract and make Match
// panic.
type CostFlow[T any] struct {
	Absence func(T) float64
	Cost    func(T, T) float64
}

// Match implements Matcher.
//
// The problem is laid out as an (n+m)×(n+m) assignment: A rows against B
// columns at Cost, every A row against its own dummy column at Absence,
// every B column against its own dummy row at Absence, and dummy against
// dummy at 0. Any other dummy combination is forbidden.
func (m CostFlow[T]) Match(a, b []T) []pair.ItemPair[T] {
	na, nb := len(a), len(b)
	if na == 0 || nb == 0 {
		return assemble(a, b, unpaired(na))
	}

	size := na + nb
	cost := make([][]float64, size)
	for r := range cost {
		cost[r] = make([]float64, size)
	}

	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			cost[i][j] = m.Cost(a[i], b[j])
		}
		for k := 0; k < na; k++ {
			cost[i][nb+k] = hungarian.Forbidden
		}
		cost[i][nb+i] = m.Absence(a[i])
	}
	for l := 0; l < nb; l++ {
		row := cost[na+l]
		for j := 0; j < nb; j++ {
			row[j] = hungarian.Forbidden
		}
		row[l] = m.Absence(b[l])
		// Dummy against dummy stays 0.
	}

	assignment, total, err := hungarian.Solve(cost)
	if err != nil {
		panic(fmt.Sprintf("matcher: cost flow: %v", err))
	}

	partner := unpaired(na)
	paired := 0
	for i := 0; i < na; i++ {
		if j := assignment[i]; j < nb {
			partner[i] = j
			paired++
		}
	}
	log.Debugf("costflow: lenA=%d lenB=%d paired=%d total=%g", na, nb, paired, total)

	return assemble(a, b, partner)
}

func unpaired(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}
	return p
}

// ForbidIf returns +Inf when cond holds and cost otherwise.
func ForbidIf(cond bool, cost float64) float64 {
	if cond {
		return math.Inf(1)
	}
	return cost
}
