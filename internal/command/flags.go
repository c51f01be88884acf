// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// EnvName returns the environment variable that sets a flag, e.g.
// CELLDIFF_ROW_GAPS for row-gaps.
func EnvName(flag string) string {
	return "CELLDIFF_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// NameSpacedSources builds the value chain of a flag: its environment
// variable, then "<ns>.<flag>" and "<flag>" in the config file. The config
// sources are left out when there is no config file.
func NameSpacedSources(ns string, cfgFile string, name string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(EnvName(name)))
	if cfgFile == "" {
		return chain
	}
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(cfgFile)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(cfgFile)))
	return chain
}

// NewOutputFlags returns the presentation flags shared by every comparison
// command.
func NewOutputFlags(ns string, cfgFile string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: NameSpacedSources(ns, cfgFile, "color"),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to result rows",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Value:   "text",
			Sources: NameSpacedSources(ns, cfgFile, "output"),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "padding",
			Usage:   "spaces between text columns",
			Value:   2,
			Hidden:  true,
			Sources: NameSpacedSources(ns, cfgFile, "padding"),
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: NameSpacedSources(ns, cfgFile, "titles"),
		},
	}
}

// NewCompareFlags returns the flags that tune sheet comparison.
func NewCompareFlags(ns string, cfgFile string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "column-gaps",
			Usage:   "align columns, detecting inserted and deleted columns",
			Value:   true,
			Sources: NameSpacedSources(ns, cfgFile, "column-gaps"),
		},
		&cli.BoolFlag{
			Name:    "comments",
			Usage:   "treat cell comment changes as differences",
			Value:   true,
			Sources: NameSpacedSources(ns, cfgFile, "comments"),
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "ignore and do not store cached results",
		},
		&cli.IntFlag{
			Name:    "parallel",
			Aliases: []string{"p"},
			Usage:   "rows compared at once, 0 for one per CPU",
			Sources: NameSpacedSources(ns, cfgFile, "parallel"),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "quick",
			Aliases: []string{"q"},
			Usage:   "match rows and columns independently",
			Sources: NameSpacedSources(ns, cfgFile, "quick"),
		},
		&cli.BoolFlag{
			Name:    "row-gaps",
			Usage:   "align rows, detecting inserted and deleted rows",
			Value:   true,
			Sources: NameSpacedSources(ns, cfgFile, "row-gaps"),
		},
		&cli.BoolFlag{
			Name:    "weighted",
			Aliases: []string{"w"},
			Usage:   "weigh cells by content length when aligning",
			Sources: NameSpacedSources(ns, cfgFile, "weighted"),
		},
	}
}

// ValueFlags returns every spelling ("-o", "--output", "-output") of the
// flags that take a value. Boolean flags are left out.
func ValueFlags() map[string]bool {
	flags := append(NewCompareFlags("", ""), NewOutputFlags("", "")...)
	flags = append(flags, newDirsFlags("", "")...)

	out := map[string]bool{}
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			out["-"+name] = true
			out["--"+name] = true
		}
	}
	return out
}
