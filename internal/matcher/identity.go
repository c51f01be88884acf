// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"github.com/tfctl/celldiff/internal/pair"
)

// Identity pairs items whose keys are equal. Keys need not be unique; within
// a group of equal keys the n-th A item pairs with the n-th B item.
type Identity[T any, K comparable] struct {
	Key func(T) K
}

// Match implements Matcher.
func (m Identity[T, K]) Match(a, b []T) []pair.ItemPair[T] {
	queues := make(map[K][]int, len(b))
	for j, item := range b {
		k := m.Key(item)
		queues[k] = append(queues[k], j)
	}

	partner := make([]int, len(a))
	for i, item := range a {
		k := m.Key(item)
		q := queues[k]
		if len(q) == 0 {
			partner[i] = -1
			continue
		}
		partner[i] = q[0]
		queues[k] = q[1:]
	}

	return assemble(a, b, partner)
}
