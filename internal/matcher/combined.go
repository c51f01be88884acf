// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
)

// Combined tries its matchers in order. The first sees every item; each
// later one sees only the items its predecessors left unpaired.
//
// The result lists the pairs found by the first matcher, then those of the
// second and so on, followed by the items still unpaired on side A and then
// on side B, each in input order.
type Combined[T any] struct {
	Matchers []Matcher[T]
}

// Match implements Matcher.
func (c Combined[T]) Match(a, b []T) []pair.ItemPair[T] {
	out := make([]pair.ItemPair[T], 0, len(a)+len(b))
	restA, restB := a, b

	for stage, m := range c.Matchers {
		if len(restA) == 0 || len(restB) == 0 {
			break
		}
		res := m.Match(restA, restB)
		before := len(out)
		for _, p := range res {
			if p.IsPaired() {
				out = append(out, p)
			}
		}
		restA, restB = pair.Unpaired(res)
		log.Debugf("combined: stage=%d paired=%d leftA=%d leftB=%d", stage, len(out)-before, len(restA), len(restB))
	}

	for _, item := range restA {
		out = append(out, pair.OnlyItemA(item))
	}
	for _, item := range restB {
		out = append(out, pair.OnlyItemB(item))
	}
	return out
}
