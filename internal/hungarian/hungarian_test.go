// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package hungarian

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce returns the minimum total over every permutation, or +Inf when
// every permutation touches a forbidden entry.
func bruteForce(cost [][]float64) float64 {
	n := len(cost)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == n {
			var sum float64
			for i, j := range perm {
				sum += cost[i][j]
			}
			if sum < best {
				best = sum
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)
	return best
}

func TestSolve(t *testing.T) {
	inf := Forbidden
	tests := []struct {
		name       string
		cost       [][]float64
		assignment []int
		total      float64
	}{
		{
			name:       "empty",
			cost:       [][]float64{},
			assignment: []int{},
			total:      0,
		},
		{
			name:       "single",
			cost:       [][]float64{{7}},
			assignment: []int{0},
			total:      7,
		},
		{
			name: "classic three by three",
			cost: [][]float64{
				{4, 1, 3},
				{2, 0, 5},
				{3, 2, 2},
			},
			assignment: []int{1, 0, 2},
			total:      5,
		},
		{
			name: "greedy trap",
			// Taking the cheapest entry (0,0) first forces a 100 elsewhere.
			cost: [][]float64{
				{1, 2},
				{2, 100},
			},
			assignment: []int{1, 0},
			total:      4,
		},
		{
			name: "forbidden entries",
			cost: [][]float64{
				{inf, 5, 1},
				{2, inf, inf},
				{inf, 3, inf},
			},
			assignment: []int{2, 0, 1},
			total:      6,
		},
		{
			name: "fractional costs",
			cost: [][]float64{
				{0.5, 1.25},
				{1.5, 0.25},
			},
			assignment: []int{0, 1},
			total:      0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment, total, err := Solve(tt.cost)
			require.NoError(t, err)
			assert.Equal(t, tt.assignment, assignment)
			assert.InDelta(t, tt.total, total, 1e-9)
		})
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		cost [][]float64
		err  error
	}{
		{
			name: "ragged",
			cost: [][]float64{{1, 2}, {3}},
			err:  ErrNotSquare,
		},
		{
			name: "nan",
			cost: [][]float64{{math.NaN()}},
			err:  ErrInvalidCost,
		},
		{
			name: "negative infinity",
			cost: [][]float64{{1, math.Inf(-1)}, {1, 1}},
			err:  ErrInvalidCost,
		},
		{
			name: "infeasible",
			cost: [][]float64{{Forbidden, 1}, {Forbidden, 2}},
			err:  ErrInfeasible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Solve(tt.cost)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSolveMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 100; round++ {
		n := 1 + rng.Intn(6)
		cost := make([][]float64, n)
		for i := range cost {
			cost[i] = make([]float64, n)
			for j := range cost[i] {
				cost[i][j] = float64(rng.Intn(20))
			}
			// Keep the identity permutation feasible.
			for j := range cost[i] {
				if j != i && rng.Intn(5) == 0 {
					cost[i][j] = Forbidden
				}
			}
		}

		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			assignment, total, err := Solve(cost)
			require.NoError(t, err)

			seen := make(map[int]bool, n)
			for _, j := range assignment {
				assert.False(t, seen[j], "column %d assigned twice", j)
				seen[j] = true
			}
			assert.Equal(t, bruteForce(cost), total)
		})
	}
}

// BenchmarkSolve measures the solver on dense random matrices.
func BenchmarkSolve(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{10, 100} {
		cost := make([][]float64, n)
		for i := range cost {
			cost[i] = make([]float64, n)
			for j := range cost[i] {
				cost[i][j] = rng.Float64() * 100
			}
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = Solve(cost)
			}
		})
	}
}
