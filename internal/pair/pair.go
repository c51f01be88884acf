// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pair

import "fmt"

// Side names one of the two inputs of a comparison.
type Side uint8

const (
	A Side = iota
	B
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == A {
		return B
	}
	return A
}

func (s Side) String() string {
	if s == A {
		return "A"
	}
	return "B"
}

// Kind is the state of a pair. Exactly one of Paired, OnlyA or OnlyB holds.
type Kind uint8

const (
	Paired Kind = iota
	OnlyA
	OnlyB
)

func (k Kind) String() string {
	switch k {
	case Paired:
		return "paired"
	case OnlyA:
		return "onlyA"
	case OnlyB:
		return "onlyB"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// only returns the Kind holding an element of side s alone.
func only(s Side) Kind {
	if s == A {
		return OnlyA
	}
	return OnlyB
}

// IndexPair records how one index of side A and/or side B corresponds along
// an axis. Use Both, OnlyInA or OnlyInB to build one; the unused slot of a
// one-sided pair is meaningless.
type IndexPair struct {
	Kind Kind
	A    int
	B    int
}

func Both(a, b int) IndexPair { return IndexPair{Kind: Paired, A: a, B: b} }
func OnlyInA(a int) IndexPair { return IndexPair{Kind: OnlyA, A: a} }
func OnlyInB(b int) IndexPair { return IndexPair{Kind: OnlyB, B: b} }
func (p IndexPair) IsPaired() bool { return p.Kind == Paired }

// IsOnly reports whether the pair holds an index of side s and nothing else.
func (p IndexPair) IsOnly(s Side) bool { return p.Kind == only(s) }

// Has reports whether the pair holds an index of side s.
func (p IndexPair) Has(s Side) bool { return p.Kind == Paired || p.Kind == only(s) }

// Index returns the index held for side s, if any.
func (p IndexPair) Index(s Side) (int, bool) {
	if !p.Has(s) {
		return 0, false
	}
	if s == A {
		return p.A, true
	}
	return p.B, true
}

func (p IndexPair) String() string {
	switch p.Kind {
	case Paired:
		return fmt.Sprintf("(%d,%d)", p.A, p.B)
	case OnlyA:
		return fmt.Sprintf("(%d,-)", p.A)
	default:
		return fmt.Sprintf("(-,%d)", p.B)
	}
}

// ItemPair is the item-holding counterpart of IndexPair, used when matching
// labeled entities such as sheet names or directory nodes.
type ItemPair[T any] struct {
	Kind Kind
	A    T
	B    T
}

func BothItems[T any](a, b T) ItemPair[T] { return ItemPair[T]{Kind: Paired, A: a, B: b} }
func OnlyItemA[T any](a T) ItemPair[T] { return ItemPair[T]{Kind: OnlyA, A: a} }
func OnlyItemB[T any](b T) ItemPair[T] { return ItemPair[T]{Kind: OnlyB, B: b} }

func (p ItemPair[T]) IsPaired() bool { return p.Kind == Paired }
func (p ItemPair[T]) IsOnly(s Side) bool { return p.Kind == only(s) }
func (p ItemPair[T]) Has(s Side) bool { return p.Kind == Paired || p.Kind == only(s) }

// Item returns the item held for side s, if any.
func (p ItemPair[T]) Item(s Side) (T, bool) {
	var zero T
	if !p.Has(s) {
		return zero, false
	}
	if s == A {
		return p.A, true
	}
	return p.B, true
}

// Unpaired splits the one-sided entries of pairs back into per-side item
// lists, keeping their relative order.
func Unpaired[T any](pairs []ItemPair[T]) (a, b []T) {
	for _, p := range pairs {
		switch p.Kind {
		case OnlyA:
			a = append(a, p.A)
		case OnlyB:
			b = append(b, p.B)
		}
	}
	return a, b
}

// Redundant collects the one-sided indices of each side in list order.
func Redundant(pairs []IndexPair) (a, b []int) {
	a, b = []int{}, []int{}
	for _, p := range pairs {
		switch p.Kind {
		case OnlyA:
			a = append(a, p.A)
		case OnlyB:
			b = append(b, p.B)
		}
	}
	return a, b
}
