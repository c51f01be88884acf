// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tfctl/celldiff/internal/differ"
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/meta"
	"github.com/tfctl/celldiff/internal/output"
	"github.com/tfctl/celldiff/internal/pair"
	"github.com/tfctl/celldiff/internal/tree"
	"github.com/tfctl/celldiff/internal/util"
)

func booksCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("expected two workbooks, got %d", cmd.NArg())
	}

	var paths [2]string
	for i := range paths {
		spec, err := util.ParseSheetSpec(cmd.Args().Get(i))
		if err != nil {
			return fmt.Errorf("bad workbook %q: %w", cmd.Args().Get(i), err)
		}
		if spec.Sheet != "" {
			log.Warnf("books compares every sheet, ignoring %q", spec.Sheet)
		}
		paths[i] = spec.Path
	}

	a, b, err := openBooks(ctx, paths[0], paths[1], !cmd.Bool("no-cache"))
	if err != nil {
		return err
	}

	report, err := compareBooks(ctx, a, b, compareOptions(cmd))
	if err != nil {
		return err
	}

	return output.WriteBook(cmd.Root().Writer, output.FromCommand(cmd), report)
}

// compareBooks pairs the sheet names of a and b and compares every paired
// sheet, at most opts.Parallelism at once. Reports follow pairing order.
func compareBooks(ctx context.Context, a, b loaded, opts differ.Options) (output.BookReport, error) {
	pairs := tree.PairSheetNames(a.book.Sheets, b.book.Sheets)

	var paired []pair.ItemPair[string]
	for _, p := range pairs {
		if p.IsPaired() {
			paired = append(paired, p)
		}
	}

	report := output.BookReport{
		A:      filepath.Base(a.book.Path),
		B:      filepath.Base(b.book.Path),
		Sheets: make([]output.SheetReport, len(paired)),
	}
	report.OnlyA, report.OnlyB = pair.Unpaired(pairs)

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range paired {
		g.Go(func() error {
			r, err := compareSheet(gctx, a, p.A, b, p.B, opts)
			if err != nil {
				return err
			}
			report.Sheets[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return output.BookReport{}, err
	}

	log.Debugf("books: %d paired, %d only in A, %d only in B",
		len(paired), len(report.OnlyA), len(report.OnlyB))
	return report, nil
}

func booksCommandBuilder(meta meta.Meta) *cli.Command {
	ns, cfgFile := "books", meta.ConfigFile()

	return &cli.Command{
		Name:      "books",
		Usage:     "compare every sheet of two workbooks",
		UsageText: "celldiff books A.xlsx B.xlsx [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewCompareFlags(ns, cfgFile), NewOutputFlags(ns, cfgFile)...),
		Action: booksCommandAction,
	}
}
