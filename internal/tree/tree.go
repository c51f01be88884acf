// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"errors"
	"fmt"
	"math"

	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/matcher"
	"github.com/tfctl/celldiff/internal/pair"
)

// DefaultMaxDepth bounds directory nesting when Options.MaxDepth is unset.
const DefaultMaxDepth = 64

var (
	// ErrNilTree is returned when either root is nil.
	ErrNilTree = errors.New("nil tree")
	// ErrTooDeep is returned when paired directories nest deeper than the
	// configured maximum.
	ErrTooDeep = errors.New("directory tree too deep")
)

// Node is one entry of a directory tree. Files carry a content digest;
// directories carry their children ordered by name.
type Node struct {
	Name     string  `json:"name" yaml:"name"`
	Path     string  `json:"path" yaml:"path"`
	IsDir    bool    `json:"dir" yaml:"dir"`
	Digest   string  `json:"digest,omitempty" yaml:"digest,omitempty"`
	Size     int64   `json:"size" yaml:"size"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *Node) String() string {
	if n.IsDir {
		return n.Path + "/"
	}
	return n.Path
}

// Options tunes directory pairing and loading.
type Options struct {
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

type nodeKey struct {
	name string
	dir  bool
}

// levelMatcher pairs the children of two directories: same name and kind
// first, then the closest remaining entries by content.
var levelMatcher = matcher.Combined[*Node]{
	Matchers: []matcher.Matcher[*Node]{
		matcher.Identity[*Node, nodeKey]{Key: func(n *Node) nodeKey { return nodeKey{n.Name, n.IsDir} }},
		matcher.CostFlow[*Node]{Absence: absence, Cost: distance},
	},
}

func absence(n *Node) float64 {
	return float64(max(1, len(n.Children)))
}

// distance is the number of child names found on one side only. Files pair
// only with identical, known content, directories only when they share a
// child name, and a file never pairs with a directory.
func distance(x, y *Node) float64 {
	if x.IsDir != y.IsDir {
		return math.Inf(1)
	}
	if !x.IsDir {
		return matcher.ForbidIf(x.Digest == "" || x.Digest != y.Digest, 0)
	}

	names := make(map[string]bool, len(x.Children))
	for _, c := range x.Children {
		names[c.Name] = true
	}
	shared := 0
	for _, c := range y.Children {
		if names[c.Name] {
			shared++
		}
	}
	diff := len(x.Children) + len(y.Children) - 2*shared
	return matcher.ForbidIf(shared == 0, float64(diff))
}

type work struct {
	a, b  *Node
	depth int
}

// PairDirectories pairs the entries of two directory trees level by level.
// The roots come first, followed by the pairing of the children of every
// paired directory in breadth-first order. A one-sided directory is listed
// once; its contents are not descended into.
func PairDirectories(a, b *Node, opts Options) ([]pair.ItemPair[*Node], error) {
	if a == nil || b == nil {
		return nil, ErrNilTree
	}

	limit := opts.maxDepth()
	out := []pair.ItemPair[*Node]{pair.BothItems(a, b)}
	queue := []work{{a, b, 0}}

	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		if !w.a.IsDir || !w.b.IsDir {
			continue
		}
		if w.depth >= limit {
			return nil, fmt.Errorf("%w: %s exceeds %d levels", ErrTooDeep, w.a.Path, limit)
		}

		level := levelMatcher.Match(w.a.Children, w.b.Children)
		log.Tracef("tree: %s vs %s -> %d pairs", w.a.Path, w.b.Path, len(level))
		for _, p := range level {
			out = append(out, p)
			if p.IsPaired() && p.A.IsDir && p.B.IsDir {
				queue = append(queue, work{p.A, p.B, w.depth + 1})
			}
		}
	}

	log.Debugf("tree: %d pairs", len(out))
	return out, nil
}
