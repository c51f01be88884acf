// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/tfctl/celldiff/internal/meta"
	"github.com/tfctl/celldiff/internal/output"
	"github.com/tfctl/celldiff/internal/tree"
	"github.com/tfctl/celldiff/internal/util"
)

func dirsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("expected two directories, got %d", cmd.NArg())
	}

	opts := tree.Options{MaxDepth: cmd.Int("max-depth")}

	var roots [2]*tree.Node
	g, _ := errgroup.WithContext(ctx)
	for i := range roots {
		g.Go(func() error {
			dir, err := util.ParseDir(cmd.Args().Get(i))
			if err != nil {
				return fmt.Errorf("bad directory %q: %w", cmd.Args().Get(i), err)
			}
			roots[i], err = tree.Load(dir, opts)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	pairs, err := tree.PairDirectories(roots[0], roots[1], opts)
	if err != nil {
		return err
	}

	return output.WriteDirs(cmd.Root().Writer, output.FromCommand(cmd), pairs, cmd.Bool("all"))
}

func newDirsFlags(ns string, cfgFile string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "all",
			Aliases: []string{"a"},
			Usage:   "include unchanged entries",
			Sources: NameSpacedSources(ns, cfgFile, "all"),
		},
		&cli.IntFlag{
			Name:    "max-depth",
			Usage:   "deepest directory level compared",
			Value:   tree.DefaultMaxDepth,
			Sources: NameSpacedSources(ns, cfgFile, "max-depth"),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
	}
}

func dirsCommandBuilder(meta meta.Meta) *cli.Command {
	ns, cfgFile := "dirs", meta.ConfigFile()

	return &cli.Command{
		Name:      "dirs",
		Usage:     "pair the entries of two directory trees",
		UsageText: "celldiff dirs DIR_A DIR_B [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(newDirsFlags(ns, cfgFile), NewOutputFlags(ns, cfgFile)...),
		Action: dirsCommandAction,
	}
}
