// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SheetSpec names a workbook file and, optionally, one of its sheets.
type SheetSpec struct {
	Path  string
	Sheet string
}

func (s SheetSpec) String() string {
	if s.Sheet == "" {
		return filepath.Base(s.Path)
	}
	return filepath.Base(s.Path) + "::" + s.Sheet
}

// ParseSheetSpec parses "book.xlsx" or "book.xlsx::Sheet". The path is made
// absolute and must name an existing regular file. Only the first "::"
// separates the sheet, so sheet names may contain "::" themselves.
func ParseSheetSpec(spec string) (SheetSpec, error) {
	if spec == "" {
		return SheetSpec{}, os.ErrInvalid
	}

	path, sheet, _ := strings.Cut(spec, "::")
	abs, err := filepath.Abs(path)
	if err != nil {
		return SheetSpec{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return SheetSpec{}, err
	}
	if info.IsDir() {
		return SheetSpec{}, fmt.Errorf("%s: %w: is a directory", path, os.ErrInvalid)
	}

	return SheetSpec{Path: abs, Sheet: sheet}, nil
}

// ParseDir returns the absolute form of dir, which must be an existing
// directory.
func ParseDir(dir string) (string, error) {
	if dir == "" {
		return "", os.ErrInvalid
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	if r, err := os.Stat(abs); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", fmt.Errorf("%s: %w: not a directory", dir, os.ErrInvalid)
	}
	return abs, nil
}
