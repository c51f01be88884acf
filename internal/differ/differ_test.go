// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/celldiff/internal/pair"
	"github.com/tfctl/celldiff/internal/sheet"
)

func grid(rows ...[]string) *sheet.CellSet {
	var cells []sheet.Cell
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			cells = append(cells, sheet.Cell{Row: r, Column: c, Content: v})
		}
	}
	return sheet.MustCellSet(cells...)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		a    *sheet.CellSet
		b    *sheet.CellSet
		rows []pair.IndexPair
		cols []pair.IndexPair
		want Result
	}{
		{
			name: "one-sided row is redundant, not a diff",
			a: sheet.MustCellSet(
				sheet.Cell{Row: 0, Column: 0, Content: "x"},
				sheet.Cell{Row: 1, Column: 0, Content: "y"},
			),
			b:    sheet.MustCellSet(sheet.Cell{Row: 0, Column: 0, Content: "x"}),
			rows: []pair.IndexPair{pair.Both(0, 0), pair.OnlyInA(1)},
			cols: []pair.IndexPair{pair.Both(0, 0)},
			want: Result{
				RedundantRows:    Redundant{A: []int{1}, B: []int{}},
				RedundantColumns: Redundant{A: []int{}, B: []int{}},
				Cells:            []CellDiff{},
			},
		},
		{
			name: "missing cell gets a blank placeholder",
			a:    grid([]string{"x", "y"}),
			b:    grid([]string{"x"}),
			rows: []pair.IndexPair{pair.Both(0, 0)},
			cols: []pair.IndexPair{pair.Both(0, 0), pair.Both(1, 1)},
			want: Result{
				RedundantRows:    Redundant{A: []int{}, B: []int{}},
				RedundantColumns: Redundant{A: []int{}, B: []int{}},
				Cells: []CellDiff{
					{A: sheet.Cell{Row: 0, Column: 1, Content: "y"}, B: sheet.Blank(0, 1)},
				},
			},
		},
		{
			name: "shifted coordinates",
			a:    grid([]string{"k", "v"}),
			b:    grid([]string{"new"}, []string{"k", "w"}),
			rows: []pair.IndexPair{pair.OnlyInB(0), pair.Both(0, 1)},
			cols: []pair.IndexPair{pair.Both(0, 0), pair.Both(1, 1)},
			want: Result{
				RedundantRows:    Redundant{A: []int{}, B: []int{0}},
				RedundantColumns: Redundant{A: []int{}, B: []int{}},
				Cells: []CellDiff{
					{
						A: sheet.Cell{Row: 0, Column: 1, Content: "v"},
						B: sheet.Cell{Row: 1, Column: 1, Content: "w"},
					},
				},
			},
		},
		{
			name: "both empty",
			a:    sheet.MustCellSet(),
			b:    sheet.MustCellSet(),
			want: Result{
				RedundantRows:    Redundant{A: []int{}, B: []int{}},
				RedundantColumns: Redundant{A: []int{}, B: []int{}},
				Cells:            []CellDiff{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(context.Background(), tt.a, tt.b, tt.rows, tt.cols, ExtractOptions{CompareComments: true})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractInvalidInput(t *testing.T) {
	s := grid([]string{"x"})
	empty := sheet.MustCellSet()

	tests := []struct {
		name    string
		a       *sheet.CellSet
		b       *sheet.CellSet
		wantErr error
	}{
		{"nil a", nil, s, ErrNilCellSet},
		{"nil b", s, nil, ErrNilCellSet},
		{"aliased", s, s, ErrAliasedInput},
		{"aliased empty is fine", empty, empty, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(context.Background(), tt.a, tt.b, nil, nil, ExtractOptions{})
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			_, err = CompareSheets(context.Background(), tt.a, tt.b, DefaultOptions())
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExtractCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Extract(ctx, grid([]string{"a"}), grid([]string{"b"}),
		[]pair.IndexPair{pair.Both(0, 0)}, []pair.IndexPair{pair.Both(0, 0)}, ExtractOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareSheets(t *testing.T) {
	a := grid(
		[]string{"id", "name"},
		[]string{"1", "alice"},
		[]string{"2", "bob"},
	)
	b := grid(
		[]string{"id", "name"},
		[]string{"1", "alicia"},
		[]string{"2", "bob"},
		[]string{"3", "carol"},
	)

	got, err := CompareSheets(context.Background(), a, b, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, Redundant{A: []int{}, B: []int{3}}, got.RedundantRows)
	assert.Equal(t, Redundant{A: []int{}, B: []int{}}, got.RedundantColumns)
	assert.Equal(t, []CellDiff{{
		A: sheet.Cell{Row: 1, Column: 1, Content: "alice"},
		B: sheet.Cell{Row: 1, Column: 1, Content: "alicia"},
	}}, got.Cells)
	assert.False(t, got.Empty())
}

func TestCompareSheetsComments(t *testing.T) {
	a := sheet.MustCellSet(sheet.Cell{Row: 0, Column: 0, Content: "x", Comment: "check"})
	b := sheet.MustCellSet(sheet.Cell{Row: 0, Column: 0, Content: "x"})

	opts := DefaultOptions()
	got, err := CompareSheets(context.Background(), a, b, opts)
	require.NoError(t, err)
	assert.Len(t, got.Cells, 1)

	opts.CompareComments = false
	got, err = CompareSheets(context.Background(), a, b, opts)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestCompareSheetsIdentical(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	for _, opts := range []Options{
		DefaultOptions(),
		{},
		{ConsiderRowGaps: true, Weighted: true},
		{ConsiderRowGaps: true, ConsiderColumnGaps: true, PrioritizeSpeed: true},
	} {
		got, err := CompareSheets(context.Background(), grid(rows...), grid(rows...), opts)
		require.NoError(t, err)
		assert.True(t, got.Empty(), "%+v", opts)
	}
}

func TestExtractDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() *sheet.CellSet {
		rows := make([][]string, 40)
		for r := range rows {
			rows[r] = make([]string, 6)
			for c := range rows[r] {
				rows[r][c] = fmt.Sprintf("v%d", rng.Intn(4))
			}
		}
		return grid(rows...)
	}
	a, b := random(), random()

	opts := DefaultOptions()
	opts.Parallelism = 1
	serial, err := CompareSheets(context.Background(), a, b, opts)
	require.NoError(t, err)

	opts.Parallelism = 8
	for range 5 {
		parallel, err := CompareSheets(context.Background(), a, b, opts)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel)
	}
}
