// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/celldiff/internal/pair"
)

func file(name, digest string) *Node {
	return &Node{Name: name, Path: name, Digest: digest}
}

func dir(name string, children ...*Node) *Node {
	return &Node{Name: name, Path: name, IsDir: true, Children: children}
}

// describe renders pairs as "a=b", "a=-" or "-=b" using node names.
func describe[T any](pairs []pair.ItemPair[T], name func(T) string) []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		a, b := "-", "-"
		if v, ok := p.Item(pair.A); ok {
			a = name(v)
		}
		if v, ok := p.Item(pair.B); ok {
			b = name(v)
		}
		out = append(out, a+"="+b)
	}
	return out
}

func nodeName(n *Node) string { return n.Name }
func itself(s string) string   { return s }

func TestPairDirectories(t *testing.T) {
	a := dir("root",
		file("README.md", "d1"),
		dir("src", file("main.go", "d2"), file("util.go", "d3")),
		file("old.txt", "d4"),
	)
	b := dir("root",
		file("README.md", "d1x"),
		dir("lib", file("main.go", "d2"), file("util.go", "d3"), file("extra.go", "d5")),
		file("new.txt", "d4"),
	)

	got, err := PairDirectories(a, b, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"root=root",
		"README.md=README.md",
		"src=lib",
		"old.txt=new.txt",
		"main.go=main.go",
		"util.go=util.go",
		"-=extra.go",
	}, describe(got, nodeName))
}

func TestPairDirectoriesForbidden(t *testing.T) {
	tests := []struct {
		name string
		a    *Node
		b    *Node
		want []string
	}{
		{
			name: "file never pairs with directory",
			a:    dir("r", file("x", "d1")),
			b:    dir("r", dir("x", file("x", "d1"))),
			want: []string{"r=r", "x=-", "-=x"},
		},
		{
			name: "renamed file with other content",
			a:    dir("r", file("a.txt", "d1")),
			b:    dir("r", file("b.txt", "d2")),
			want: []string{"r=r", "a.txt=-", "-=b.txt"},
		},
		{
			name: "entries without digest",
			a:    dir("r", file("fifo-a", "")),
			b:    dir("r", file("fifo-b", "")),
			want: []string{"r=r", "fifo-a=-", "-=fifo-b"},
		},
		{
			name: "directories without a shared child",
			a:    dir("r", dir("p", file("one", "d1"))),
			b:    dir("r", dir("q", file("two", "d1"))),
			want: []string{"r=r", "p=-", "-=q"},
		},
		{
			name: "one-sided directory is not descended",
			a:    dir("r", dir("gone", file("f", "d1"), file("g", "d2"))),
			b:    dir("r"),
			want: []string{"r=r", "gone=-"},
		},
		{
			name: "file roots",
			a:    file("a", "d1"),
			b:    file("b", "d2"),
			want: []string{"a=b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PairDirectories(tt.a, tt.b, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, describe(got, nodeName))
		})
	}
}

func TestPairDirectoriesErrors(t *testing.T) {
	_, err := PairDirectories(nil, dir("r"), Options{})
	assert.ErrorIs(t, err, ErrNilTree)
	_, err = PairDirectories(dir("r"), nil, Options{})
	assert.ErrorIs(t, err, ErrNilTree)

	a := dir("r", dir("s", dir("t")))
	b := dir("r", dir("s", dir("t")))

	_, err = PairDirectories(a, b, Options{MaxDepth: 2})
	assert.ErrorIs(t, err, ErrTooDeep)

	got, err := PairDirectories(a, b, Options{MaxDepth: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"r=r", "s=s", "t=t"}, describe(got, nodeName))
}

func TestPairSheetNames(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{
			name: "exact then folded then fuzzy",
			a:    []string{"Summary", "Data 2023", "notes", "Old"},
			b:    []string{"summary", "Data 2024", "Notes", "Chart"},
			want: []string{
				"Summary=summary",
				"notes=Notes",
				"Data 2023=Data 2024",
				"Old=-",
				"-=Chart",
			},
		},
		{
			name: "exact name wins over folded name",
			a:    []string{"Sheet", "sheet"},
			b:    []string{"sheet"},
			want: []string{"sheet=sheet", "Sheet=-"},
		},
		{
			name: "identical lists",
			a:    []string{"a", "b"},
			b:    []string{"a", "b"},
			want: []string{"a=a", "b=b"},
		},
		{
			name: "empty",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(PairSheetNames(tt.a, tt.b), itself))
		})
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	write("a.txt", "same")
	write("sub/b.txt", "same")
	write("sub/deeper/c.txt", "other")

	n, err := Load(root, Options{})
	require.NoError(t, err)

	assert.True(t, n.IsDir)
	assert.Equal(t, ".", n.Path)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "a.txt", n.Children[0].Name)
	assert.Equal(t, "sub", n.Children[1].Name)

	sub := n.Children[1]
	require.Len(t, sub.Children, 2)
	assert.Equal(t, filepath.Join("sub", "b.txt"), sub.Children[0].Path)
	assert.Equal(t, n.Children[0].Digest, sub.Children[0].Digest)
	assert.Len(t, sub.Children[0].Digest, 64)
	assert.Equal(t, "deeper", sub.Children[1].Name)

	_, err = Load(root, Options{MaxDepth: 2})
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Load(filepath.Join(root, "missing"), Options{})
	assert.Error(t, err)

	f, err := Load(filepath.Join(root, "a.txt"), Options{})
	require.NoError(t, err)
	assert.False(t, f.IsDir)
	assert.Equal(t, int64(4), f.Size)
}

func TestLoadAndPair(t *testing.T) {
	left, right := t.TempDir(), t.TempDir()
	for p, c := range map[string]string{
		filepath.Join(left, "keep.txt"):       "k",
		filepath.Join(left, "moved.txt"):      "m",
		filepath.Join(right, "keep.txt"):      "k2",
		filepath.Join(right, "renamed.txt"):   "m",
		filepath.Join(right, "brand-new.txt"): "n",
	} {
		require.NoError(t, os.WriteFile(p, []byte(c), 0o600))
	}

	a, err := Load(left, Options{})
	require.NoError(t, err)
	b, err := Load(right, Options{})
	require.NoError(t, err)

	got, err := PairDirectories(a, b, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Base(left) + "=" + filepath.Base(right),
		"keep.txt=keep.txt",
		"moved.txt=renamed.txt",
		"-=brand-new.txt",
	}, describe(got, nodeName))
}

func TestLoadSymlinks(t *testing.T) {
	left, right := t.TempDir(), t.TempDir()
	require.NoError(t, os.Symlink("target-one", filepath.Join(left, "to-one")))
	require.NoError(t, os.Symlink("target-two", filepath.Join(left, "to-two")))
	require.NoError(t, os.Symlink("target-one", filepath.Join(right, "moved")))
	require.NoError(t, os.Symlink("target-three", filepath.Join(right, "elsewhere")))

	a, err := Load(left, Options{})
	require.NoError(t, err)
	b, err := Load(right, Options{})
	require.NoError(t, err)

	require.Len(t, a.Children, 2)
	assert.NotEmpty(t, a.Children[0].Digest)
	assert.NotEqual(t, a.Children[0].Digest, a.Children[1].Digest)

	got, err := PairDirectories(a, b, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Base(left) + "=" + filepath.Base(right),
		"to-one=moved",
		"to-two=-",
		"-=elsewhere",
	}, describe(got, nodeName))
}
