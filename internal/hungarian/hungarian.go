// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hungarian

import (
	"errors"
	"fmt"
	"math"

	"github.com/tfctl/celldiff/internal/log"
)

var (
	// ErrNotSquare is returned when a row length differs from the row count.
	ErrNotSquare = errors.New("cost matrix is not square")
	// ErrInvalidCost is returned for NaN or -Inf entries.
	ErrInvalidCost = errors.New("cost matrix holds an invalid value")
	// ErrInfeasible is returned when forbidden entries leave no complete
	// assignment.
	ErrInfeasible = errors.New("no feasible assignment")
)

// Forbidden marks a row/column combination that must not be assigned.
var Forbidden = math.Inf(1)

// Solve finds the assignment of rows to columns of the square cost matrix
// with the smallest total cost. assignment[i] is the column given to row i.
//
// This is the O(n³) potentials formulation of the Kuhn-Munkres algorithm:
// rows are added one at a time and each addition runs a Dijkstra-like search
// over reduced costs for the cheapest augmenting path. Entries equal to
// Forbidden are treated as missing edges.
func Solve(cost [][]float64) (assignment []int, total float64, err error) {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return nil, 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, -1) {
				return nil, 0, fmt.Errorf("%w: [%d][%d]=%v", ErrInvalidCost, i, j, c)
			}
		}
	}

	// 1-based; column 0 is the virtual root of each search.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	owner := make([]int, n+1)
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		owner[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := owner[j0]
			delta := math.Inf(1)
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if c := cost[i0-1][j-1]; !math.IsInf(c, 1) {
					if cur := c - u[i0] - v[j]; cur < minv[j] {
						minv[j] = cur
						way[j] = j0
					}
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				return nil, 0, fmt.Errorf("%w: row %d cannot be placed", ErrInfeasible, i-1)
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[owner[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if owner[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			owner[j0] = owner[j1]
			j0 = j1
		}
	}

	assignment = make([]int, n)
	for j := 1; j <= n; j++ {
		assignment[owner[j]-1] = j - 1
	}
	for i, j := range assignment {
		total += cost[i][j]
	}

	log.Tracef("hungarian: n=%d total=%g", n, total)
	return assignment, total, nil
}
