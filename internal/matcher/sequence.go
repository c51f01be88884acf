// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"github.com/tfctl/celldiff/internal/align"
	"github.com/tfctl/celldiff/internal/pair"
)

// Sequence pairs ordered items by minimum-cost alignment. Unlike the other
// matchers its result follows alignment order, so pairs never cross.
type Sequence[T any] struct {
	Gap  align.GapFunc[T]
	Diff align.DiffFunc[T]
}

// Match implements Matcher.
func (m Sequence[T]) Match(a, b []T) []pair.ItemPair[T] {
	res := align.Align(a, b, m.Gap, m.Diff)
	out := make([]pair.ItemPair[T], len(res.Pairs))
	for k, p := range res.Pairs {
		switch p.Kind {
		case pair.Paired:
			out[k] = pair.BothItems(a[p.A], b[p.B])
		case pair.OnlyA:
			out[k] = pair.OnlyItemA(a[p.A])
		default:
			out[k] = pair.OnlyItemB(b[p.B])
		}
	}
	return out
}
