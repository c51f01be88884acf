// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexPairPredicates(t *testing.T) {
	tests := []struct {
		name    string
		pair    IndexPair
		paired  bool
		onlyA   bool
		onlyB   bool
		indexA  int
		hasA    bool
		indexB  int
		hasB    bool
		printed string
	}{
		{"paired", Both(2, 3), true, false, false, 2, true, 3, true, "(2,3)"},
		{"only a", OnlyInA(4), false, true, false, 4, true, 0, false, "(4,-)"},
		{"only b", OnlyInB(5), false, false, true, 0, false, 5, true, "(-,5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.paired, tt.pair.IsPaired())
			assert.Equal(t, tt.onlyA, tt.pair.IsOnly(A))
			assert.Equal(t, tt.onlyB, tt.pair.IsOnly(B))

			a, ok := tt.pair.Index(A)
			assert.Equal(t, tt.hasA, ok)
			assert.Equal(t, tt.indexA, a)

			b, ok := tt.pair.Index(B)
			assert.Equal(t, tt.hasB, ok)
			assert.Equal(t, tt.indexB, b)

			assert.Equal(t, tt.printed, tt.pair.String())
		})
	}
}

func TestItemPairItem(t *testing.T) {
	p := OnlyItemB("Sheet2")

	_, ok := p.Item(A)
	assert.False(t, ok)

	b, ok := p.Item(B)
	assert.True(t, ok)
	assert.Equal(t, "Sheet2", b)
	assert.True(t, p.IsOnly(B))
	assert.False(t, p.IsPaired())
}

func TestUnpairedAndRedundant(t *testing.T) {
	items := []ItemPair[string]{
		BothItems("x", "x"),
		OnlyItemA("a1"),
		OnlyItemB("b1"),
		OnlyItemA("a2"),
	}
	a, b := Unpaired(items)
	assert.Equal(t, []string{"a1", "a2"}, a)
	assert.Equal(t, []string{"b1"}, b)

	ra, rb := Redundant([]IndexPair{Both(0, 0), OnlyInB(1), OnlyInA(1), Both(2, 2)})
	assert.Equal(t, []int{1}, ra)
	assert.Equal(t, []int{1}, rb)

	ra, rb = Redundant(nil)
	assert.Empty(t, ra)
	assert.NotNil(t, ra)
	assert.Empty(t, rb)
}

func TestSideOther(t *testing.T) {
	assert.Equal(t, B, A.Other())
	assert.Equal(t, A, B.Other())
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "onlyB", OnlyB.String())
}
