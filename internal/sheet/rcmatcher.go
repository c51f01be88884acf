// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
)

// RCMatcher pairs both the rows and the columns of two cell sets.
type RCMatcher struct {
	// ConsiderRowGaps aligns rows; otherwise rows pair by index.
	ConsiderRowGaps bool
	// ConsiderColumnGaps aligns columns; otherwise columns pair by index.
	ConsiderColumnGaps bool
	// PrioritizeSpeed matches both axes independently even when both
	// consider gaps.
	PrioritizeSpeed bool
	// Weighted uses WeightedAlign instead of OrderedAlign.
	Weighted        bool
	CompareComments bool
}

func (m RCMatcher) itemMatcher(axis Axis, gaps bool) ItemMatcher {
	s := IndexOnly
	switch {
	case gaps && m.Weighted:
		s = WeightedAlign
	case gaps:
		s = OrderedAlign
	}
	return ItemMatcher{Axis: axis, Strategy: s, CompareComments: m.CompareComments}
}

// Make2Pairs returns the row pairing and the column pairing of a and b.
//
// When both axes consider gaps and speed is not prioritized, columns are
// matched first and the result is fed to the row matcher, which then ignores
// one-sided columns. Otherwise the axes are matched independently and
// concurrently.
func (m RCMatcher) Make2Pairs(ctx context.Context, a, b *CellSet) (rows, cols []pair.IndexPair, err error) {
	rowMatcher := m.itemMatcher(Row, m.ConsiderRowGaps)
	colMatcher := m.itemMatcher(Column, m.ConsiderColumnGaps)

	if m.ConsiderRowGaps && m.ConsiderColumnGaps && !m.PrioritizeSpeed {
		log.Debugf("rcmatcher: columns first, then rows")
		cols = colMatcher.MakePairs(a, b, nil)
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		rows = rowMatcher.MakePairs(a, b, cols)
		return rows, cols, ctx.Err()
	}

	log.Debugf("rcmatcher: rows and columns independently")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows = rowMatcher.MakePairs(a, b, nil)
		return gctx.Err()
	})
	g.Go(func() error {
		cols = colMatcher.MakePairs(a, b, nil)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rows, cols, nil
}
