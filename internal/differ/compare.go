// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"

	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/sheet"
)

// Options selects how two sheets are compared.
type Options struct {
	ConsiderRowGaps    bool `json:"rowGaps" yaml:"rowGaps"`
	ConsiderColumnGaps bool `json:"columnGaps" yaml:"columnGaps"`
	PrioritizeSpeed    bool `json:"quick" yaml:"quick"`
	Weighted           bool `json:"weighted" yaml:"weighted"`
	CompareComments    bool `json:"comments" yaml:"comments"`
	Parallelism        int  `json:"-" yaml:"-"`
}

// DefaultOptions aligns both axes, compares comments and uses one worker per
// CPU.
func DefaultOptions() Options {
	return Options{
		ConsiderRowGaps:    true,
		ConsiderColumnGaps: true,
		CompareComments:    true,
	}
}

// Matcher returns the RCMatcher configured by o.
func (o Options) Matcher() sheet.RCMatcher {
	return sheet.RCMatcher{
		ConsiderRowGaps:    o.ConsiderRowGaps,
		ConsiderColumnGaps: o.ConsiderColumnGaps,
		PrioritizeSpeed:    o.PrioritizeSpeed,
		Weighted:           o.Weighted,
		CompareComments:    o.CompareComments,
	}
}

// CompareSheets pairs the rows and columns of a and b and extracts their
// differences.
func CompareSheets(ctx context.Context, a, b *sheet.CellSet, opts Options) (Result, error) {
	if err := checkInputs(a, b); err != nil {
		return Result{}, err
	}

	log.Debugf("differ: comparing %d cells with %d cells", a.Len(), b.Len())
	rows, cols, err := opts.Matcher().Make2Pairs(ctx, a, b)
	if err != nil {
		return Result{}, err
	}

	return Extract(ctx, a, b, rows, cols, ExtractOptions{
		CompareComments: opts.CompareComments,
		Parallelism:     opts.Parallelism,
	})
}
