// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/meta"
	"github.com/tfctl/celldiff/internal/output"
	"github.com/tfctl/celldiff/internal/util"
)

func sheetsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("expected two sheet specs, got %d", cmd.NArg())
	}

	specA, err := util.ParseSheetSpec(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("bad sheet spec %q: %w", cmd.Args().Get(0), err)
	}
	specB, err := util.ParseSheetSpec(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("bad sheet spec %q: %w", cmd.Args().Get(1), err)
	}
	log.Debugf("sheets: %s vs %s", specA, specB)

	a, b, err := openBooks(ctx, specA.Path, specB.Path, !cmd.Bool("no-cache"))
	if err != nil {
		return err
	}

	nameA, nameB := specA.Sheet, specB.Sheet
	if nameA == "" {
		nameA = a.book.First()
	}
	if nameB == "" {
		nameB = b.book.First()
	}

	report, err := compareSheet(ctx, a, nameA, b, nameB, compareOptions(cmd))
	if err != nil {
		return err
	}

	return output.WriteSheets(cmd.Root().Writer, output.FromCommand(cmd), report)
}

func sheetsCommandBuilder(meta meta.Meta) *cli.Command {
	ns, cfgFile := "sheets", meta.ConfigFile()

	return &cli.Command{
		Name:      "sheets",
		Usage:     "compare one sheet of each workbook",
		UsageText: "celldiff sheets A.xlsx[::Sheet] B.xlsx[::Sheet] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewCompareFlags(ns, cfgFile), NewOutputFlags(ns, cfgFile)...),
		Action: sheetsCommandAction,
	}
}
