// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"github.com/tfctl/celldiff/internal/pair"
)

// Matcher pairs the items of two collections. Every input item appears in
// exactly one returned pair.
type Matcher[T any] interface {
	Match(a, b []T) []pair.ItemPair[T]
}

// Func adapts a plain function to the Matcher interface.
type Func[T any] func(a, b []T) []pair.ItemPair[T]

// Match calls f.
func (f Func[T]) Match(a, b []T) []pair.ItemPair[T] { return f(a, b) }

// assemble builds the canonical output order shared by the unordered
// matchers: entries holding an A item in A order (paired and OnlyA
// interleaved), then OnlyB entries in B order. partner[i] is the B index
// paired with A index i, or -1.
func assemble[T any](a, b []T, partner []int) []pair.ItemPair[T] {
	out := make([]pair.ItemPair[T], 0, len(a)+len(b))
	taken := make([]bool, len(b))
	for i, j := range partner {
		if j < 0 {
			out = append(out, pair.OnlyItemA(a[i]))
			continue
		}
		taken[j] = true
		out = append(out, pair.BothItems(a[i], b[j]))
	}
	for j := range b {
		if !taken[j] {
			out = append(out, pair.OnlyItemB(b[j]))
		}
	}
	return out
}
