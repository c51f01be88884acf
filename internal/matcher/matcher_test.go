// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package matcher

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfctl/celldiff/internal/align"
	"github.com/tfctl/celldiff/internal/pair"
)

type item struct {
	key string
	id  int
}

func byKey(i item) string { return i.key }

func TestIdentity(t *testing.T) {
	a := []item{{"x", 1}, {"y", 2}, {"x", 3}, {"z", 4}}
	b := []item{{"x", 10}, {"x", 11}, {"w", 12}, {"y", 13}}

	got := Identity[item, string]{Key: byKey}.Match(a, b)

	want := []pair.ItemPair[item]{
		pair.BothItems(item{"x", 1}, item{"x", 10}),
		pair.BothItems(item{"y", 2}, item{"y", 13}),
		pair.BothItems(item{"x", 3}, item{"x", 11}),
		pair.OnlyItemA(item{"z", 4}),
		pair.OnlyItemB(item{"w", 12}),
	}
	assert.Equal(t, want, got)
}

func TestIdentityEdges(t *testing.T) {
	m := Identity[string, string]{Key: strings.ToLower}

	tests := []struct {
		name string
		a    []string
		b    []string
		want []pair.ItemPair[string]
	}{
		{
			name: "both empty",
			want: []pair.ItemPair[string]{},
		},
		{
			name: "only b",
			b:    []string{"p", "q"},
			want: []pair.ItemPair[string]{pair.OnlyItemB("p"), pair.OnlyItemB("q")},
		},
		{
			name: "surplus duplicates stay unpaired in order",
			a:    []string{"K", "k", "k"},
			b:    []string{"k"},
			want: []pair.ItemPair[string]{
				pair.BothItems("K", "k"),
				pair.OnlyItemA("k"),
				pair.OnlyItemA("k"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.a, tt.b))
		})
	}
}

// table looks a pairing cost up by the two item names.
func table(costs map[string]float64) func(a, b string) float64 {
	return func(a, b string) float64 {
		if c, ok := costs[a+"/"+b]; ok {
			return c
		}
		return math.Inf(1)
	}
}

func TestCostFlowGlobalOptimum(t *testing.T) {
	// A greedy pass would take a1/b1 for 1 and then be stuck with a2/b2 at
	// 100 or two absences at 20. The optimum crosses over for a total of 4.
	m := CostFlow[string]{
		Absence: func(string) float64 { return 10 },
		Cost: table(map[string]float64{
			"a1/b1": 1, "a1/b2": 2,
			"a2/b1": 2, "a2/b2": 100,
		}),
	}

	got := m.Match([]string{"a1", "a2"}, []string{"b1", "b2"})

	assert.Equal(t, []pair.ItemPair[string]{
		pair.BothItems("a1", "b2"),
		pair.BothItems("a2", "b1"),
	}, got)
}

func TestCostFlowAbsenceWins(t *testing.T) {
	m := CostFlow[string]{
		Absence: func(string) float64 { return 1 },
		Cost: table(map[string]float64{
			"a/b": 5, // more than leaving both unpaired
			"c/d": 1,
		}),
	}

	got := m.Match([]string{"a", "c"}, []string{"b", "d"})

	assert.Equal(t, []pair.ItemPair[string]{
		pair.OnlyItemA("a"),
		pair.BothItems("c", "d"),
		pair.OnlyItemB("b"),
	}, got)
}

func TestCostFlowForbidden(t *testing.T) {
	m := CostFlow[int]{
		Absence: func(int) float64 { return 100 },
		Cost: func(x, y int) float64 {
			return ForbidIf(x%2 != y%2, math.Abs(float64(x-y)))
		},
	}

	got := m.Match([]int{1, 2}, []int{4, 7, 9})

	assert.Equal(t, []pair.ItemPair[int]{
		pair.BothItems(1, 7),
		pair.BothItems(2, 4),
		pair.OnlyItemB(9),
	}, got)
}

func TestCostFlowEmptySide(t *testing.T) {
	m := CostFlow[int]{
		Absence: func(int) float64 { return 1 },
		Cost:    func(int, int) float64 { return 0 },
	}

	assert.Equal(t, []pair.ItemPair[int]{pair.OnlyItemA(3)}, m.Match([]int{3}, nil))
	assert.Equal(t, []pair.ItemPair[int]{pair.OnlyItemB(4)}, m.Match(nil, []int{4}))
	assert.Empty(t, m.Match(nil, nil))
}

func TestCostFlowPanicsOnNaN(t *testing.T) {
	m := CostFlow[int]{
		Absence: func(int) float64 { return math.NaN() },
		Cost:    func(int, int) float64 { return 1 },
	}
	assert.Panics(t, func() { m.Match([]int{1}, []int{2}) })
}

func TestCombinedFallback(t *testing.T) {
	exact := Identity[string, string]{Key: func(s string) string { return s }}
	fuzzy := CostFlow[string]{
		Absence: func(s string) float64 { return float64(len(s)) },
		Cost: func(x, y string) float64 {
			// Shared prefix length decides closeness.
			n := 0
			for n < len(x) && n < len(y) && x[n] == y[n] {
				n++
			}
			return ForbidIf(n == 0, float64(len(x)+len(y)-2*n))
		},
	}

	c := Combined[string]{Matchers: []Matcher[string]{exact, fuzzy}}
	got := c.Match(
		[]string{"report", "budget_v1", "notes"},
		[]string{"zzz", "budget_v2", "report"},
	)

	assert.Equal(t, []pair.ItemPair[string]{
		pair.BothItems("report", "report"),
		pair.BothItems("budget_v1", "budget_v2"),
		pair.OnlyItemA("notes"),
		pair.OnlyItemB("zzz"),
	}, got)

	// Same inputs, same answer.
	assert.Equal(t, got, c.Match(
		[]string{"report", "budget_v1", "notes"},
		[]string{"zzz", "budget_v2", "report"},
	))
}

func TestCombinedStopsWhenASideIsExhausted(t *testing.T) {
	calls := 0
	counting := Func[string](func(a, b []string) []pair.ItemPair[string] {
		calls++
		return Identity[string, string]{Key: func(s string) string { return s }}.Match(a, b)
	})

	c := Combined[string]{Matchers: []Matcher[string]{counting, counting}}
	got := c.Match([]string{"a"}, []string{"a", "b"})

	assert.Equal(t, 1, calls)
	assert.Equal(t, []pair.ItemPair[string]{
		pair.BothItems("a", "a"),
		pair.OnlyItemB("b"),
	}, got)
}

func TestCombinedWithoutMatchers(t *testing.T) {
	got := Combined[int]{}.Match([]int{1}, []int{1})
	assert.Equal(t, []pair.ItemPair[int]{pair.OnlyItemA(1), pair.OnlyItemB(1)}, got)
}

func TestSequence(t *testing.T) {
	m := Sequence[string]{Gap: align.UnitGap[string], Diff: align.UnitDiff[string]}
	got := m.Match([]string{"a", "b"}, []string{"b"})
	assert.Equal(t, []pair.ItemPair[string]{
		pair.OnlyItemA("a"),
		pair.BothItems("b", "b"),
	}, got)
}
