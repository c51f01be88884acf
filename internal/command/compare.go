// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tfctl/celldiff/internal/book"
	"github.com/tfctl/celldiff/internal/cacheutil"
	"github.com/tfctl/celldiff/internal/differ"
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/output"
)

var sheetCacheDir = []string{"sheets"}

// compareOptions reads the comparison flags of cmd.
func compareOptions(cmd *cli.Command) differ.Options {
	return differ.Options{
		ConsiderRowGaps:    cmd.Bool("row-gaps"),
		ConsiderColumnGaps: cmd.Bool("column-gaps"),
		PrioritizeSpeed:    cmd.Bool("quick"),
		Weighted:           cmd.Bool("weighted"),
		CompareComments:    cmd.Bool("comments"),
		Parallelism:        cmd.Int("parallel"),
	}
}

// loaded is an opened book plus the digest of its file, which is empty when
// caching is off.
type loaded struct {
	book   *book.Book
	digest string
}

// openBooks loads both books concurrently.
func openBooks(ctx context.Context, pathA, pathB string, useCache bool) (loaded, loaded, error) {
	var sides [2]loaded
	g, _ := errgroup.WithContext(ctx)
	for i, path := range []string{pathA, pathB} {
		g.Go(func() error {
			b, err := book.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			sides[i].book = b

			if useCache {
				if sides[i].digest, err = cacheutil.FileDigest(path); err != nil {
					log.WithError(err).Warnf("no digest for %s, not caching", path)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return loaded{}, loaded{}, err
	}
	return sides[0], sides[1], nil
}

// compareSheet compares one sheet of each book. Results are cached under the
// digests of both files, the sheet names and the options, so a cached result
// is only reused for identical inputs.
func compareSheet(ctx context.Context, a loaded, nameA string, b loaded, nameB string, opts differ.Options) (output.SheetReport, error) {
	report := output.SheetReport{
		A: a.book.Label(nameA),
		B: b.book.Label(nameB),
	}

	cellsA, err := a.book.Sheet(nameA)
	if err != nil {
		return report, err
	}
	cellsB, err := b.book.Sheet(nameB)
	if err != nil {
		return report, err
	}
	report.Cells = cellsA.Len() + cellsB.Len()

	var key string
	if a.digest != "" && b.digest != "" {
		o, _ := json.Marshal(opts)
		key = cacheutil.Key(a.digest, nameA, b.digest, nameB, string(o))
		if cacheutil.ReadJSON(sheetCacheDir, key, &report.Result) {
			log.Debugf("cache hit for %s vs %s", report.A, report.B)
			return report, nil
		}
	}

	report.Result, err = differ.CompareSheets(ctx, cellsA, cellsB, opts)
	if err != nil {
		return report, fmt.Errorf("failed to compare %s with %s: %w", report.A, report.B, err)
	}

	if key != "" {
		if err := cacheutil.WriteJSON(sheetCacheDir, key, report.Result); err != nil {
			log.WithError(err).Warnf("failed to cache %s vs %s", report.A, report.B)
		}
	}
	return report, nil
}
