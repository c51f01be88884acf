// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
	"github.com/tfctl/celldiff/internal/sheet"
)

var (
	// ErrNilCellSet is returned when either side of a comparison is nil.
	ErrNilCellSet = errors.New("nil cell set")
	// ErrAliasedInput is returned when the same non-empty cell set is passed
	// as both sides of a comparison.
	ErrAliasedInput = errors.New("same cell set passed as both sides")
)

// Redundant holds the one-sided indices of each side along one axis.
type Redundant struct {
	A []int `json:"a" yaml:"a"`
	B []int `json:"b" yaml:"b"`
}

// Len returns the number of one-sided indices on both sides.
func (r Redundant) Len() int {
	return len(r.A) + len(r.B)
}

// CellDiff is one coordinate of a paired row and a paired column whose cells
// differ. A side without a cell holds a blank placeholder at its own
// coordinate.
type CellDiff struct {
	A sheet.Cell `json:"a" yaml:"a"`
	B sheet.Cell `json:"b" yaml:"b"`
}

// Result is the difference between two sheets.
type Result struct {
	RedundantRows    Redundant  `json:"redundantRows" yaml:"redundantRows"`
	RedundantColumns Redundant  `json:"redundantColumns" yaml:"redundantColumns"`
	Cells            []CellDiff `json:"cells" yaml:"cells"`
}

// Empty reports whether the two sheets compared equal.
func (r Result) Empty() bool {
	return r.RedundantRows.Len() == 0 && r.RedundantColumns.Len() == 0 && len(r.Cells) == 0
}

// ExtractOptions tunes Extract.
type ExtractOptions struct {
	CompareComments bool
	// Parallelism caps the number of rows compared at once. Zero or less
	// means one worker per CPU.
	Parallelism int
}

// Extract enumerates the redundant rows, the redundant columns and the cell
// differences implied by a row pairing and a column pairing of a and b.
//
// Only paired rows crossed with paired columns are compared. Rows are
// processed concurrently and the cell differences come back in row pair
// order, then column pair order.
func Extract(ctx context.Context, a, b *sheet.CellSet, rows, cols []pair.IndexPair, opts ExtractOptions) (Result, error) {
	if err := checkInputs(a, b); err != nil {
		return Result{}, err
	}

	var res Result
	res.RedundantRows.A, res.RedundantRows.B = pair.Redundant(rows)
	res.RedundantColumns.A, res.RedundantColumns.B = pair.Redundant(cols)

	pairedRows := onlyPaired(rows)
	pairedCols := onlyPaired(cols)

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	perRow := make([][]CellDiff, len(pairedRows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, r := range pairedRows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perRow[i] = diffRow(a, b, r, pairedCols, opts.CompareComments)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res.Cells = []CellDiff{}
	for _, d := range perRow {
		res.Cells = append(res.Cells, d...)
	}

	log.Debugf("differ: redundant rows=%d columns=%d cells=%d",
		res.RedundantRows.Len(), res.RedundantColumns.Len(), len(res.Cells))
	return res, nil
}

func checkInputs(a, b *sheet.CellSet) error {
	if a == nil || b == nil {
		return ErrNilCellSet
	}
	if a == b && a.Len() > 0 {
		return ErrAliasedInput
	}
	return nil
}

func onlyPaired(pairs []pair.IndexPair) []pair.IndexPair {
	out := make([]pair.IndexPair, 0, len(pairs))
	for _, p := range pairs {
		if p.IsPaired() {
			out = append(out, p)
		}
	}
	return out
}

func diffRow(a, b *sheet.CellSet, row pair.IndexPair, cols []pair.IndexPair, withComment bool) []CellDiff {
	var out []CellDiff
	for _, col := range cols {
		ca, okA := a.Get(row.A, col.A)
		cb, okB := b.Get(row.B, col.B)
		if !okA && !okB {
			continue
		}
		if !okA {
			ca = sheet.Blank(row.A, col.A)
		}
		if !okB {
			cb = sheet.Blank(row.B, col.B)
		}
		if ca.Equal(cb, withComment) {
			continue
		}
		out = append(out, CellDiff{A: ca, B: cb})
	}
	return out
}
