// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"golang.org/x/text/cases"

	"github.com/tfctl/celldiff/internal/matcher"
	"github.com/tfctl/celldiff/internal/pair"
)

// PairSheetNames pairs the sheet names of two workbooks: exact names first,
// then names equal under case folding, then the remaining names with the
// smallest edit distance. A name stays unpaired when renaming it would cost
// more than dropping it, which is half its length.
func PairSheetNames(a, b []string) []pair.ItemPair[string] {
	fold := cases.Fold()

	m := matcher.Combined[string]{
		Matchers: []matcher.Matcher[string]{
			matcher.Identity[string, string]{Key: func(s string) string { return s }},
			matcher.Identity[string, string]{Key: fold.String},
			matcher.CostFlow[string]{
				Absence: func(s string) float64 {
					return float64(utf8.RuneCountInString(s)) / 2
				},
				Cost: func(x, y string) float64 {
					return float64(levenshtein.Distance(x, y, nil))
				},
			},
		},
	}
	return m.Match(a, b)
}
