// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tfctl/celldiff/internal/log"
)

// Load reads the directory tree rooted at root. Node paths are relative to
// root, which itself has the path ".". Symbolic links are listed as files
// digested by their target and never followed.
func Load(root string, opts Options) (*Node, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}

	top := &Node{Name: filepath.Base(root), Path: ".", IsDir: info.IsDir(), Size: info.Size()}
	if !top.IsDir {
		if top.Digest, err = nodeDigest(root, info); err != nil {
			return nil, err
		}
		return top, nil
	}

	limit := opts.maxDepth()
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{top, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth >= limit {
			return nil, fmt.Errorf("%w: %s exceeds %d levels", ErrTooDeep, f.node.Path, limit)
		}

		dir := filepath.Join(root, f.node.Path)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", dir, err)
		}

		for _, e := range entries {
			info, err := e.Info()
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", e.Name(), err)
			}
			child := &Node{
				Name:  e.Name(),
				Path:  filepath.Join(f.node.Path, e.Name()),
				IsDir: e.IsDir(),
				Size:  info.Size(),
			}
			if child.IsDir {
				stack = append(stack, frame{child, f.depth + 1})
			} else if child.Digest, err = nodeDigest(filepath.Join(root, child.Path), info); err != nil {
				return nil, err
			}
			f.node.Children = append(f.node.Children, child)
		}
	}

	log.Debugf("tree: loaded %s", root)
	return top, nil
}

// nodeDigest hashes the content of a regular file or the target of a
// symbolic link. Other entries, such as devices and sockets, get no digest.
func nodeDigest(path string, info fs.FileInfo) (string, error) {
	switch {
	case info.Mode().IsRegular():
		return digest(path)
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			return "", fmt.Errorf("failed to read link %s: %w", path, err)
		}
		sum := sha256.Sum256([]byte(target))
		return "link:" + hex.EncodeToString(sum[:]), nil
	default:
		return "", nil
	}
}

func digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
