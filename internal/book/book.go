// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package book

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/sheet"
)

var (
	// ErrUnknownSheet is returned when a book has no sheet of the given name.
	ErrUnknownSheet = errors.New("unknown sheet")
	// ErrUnsupportedFormat is returned for files that are neither xlsx nor
	// csv.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyBook is returned for a book without sheets.
	ErrEmptyBook = errors.New("book has no sheets")
)

// Book is a loaded workbook. Sheet order follows the file.
type Book struct {
	Path   string
	Sheets []string
	cells  map[string]*sheet.CellSet
}

// Open loads every sheet of the xlsx, xlsm or csv file at path. A csv file
// is a book with one sheet named after the file.
func Open(path string) (*Book, error) {
	var (
		b   *Book
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		b, err = openExcel(path)
	case ".csv":
		b, err = openCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	if len(b.Sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBook, path)
	}

	log.Debugf("book: loaded %s sheets=%v", path, b.Sheets)
	return b, nil
}

// First returns the name of the first sheet.
func (b *Book) First() string {
	return b.Sheets[0]
}

// Sheet returns the cells of the named sheet.
func (b *Book) Sheet(name string) (*sheet.CellSet, error) {
	s, ok := b.cells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownSheet, name, b.Path)
	}
	return s, nil
}

// Label names a sheet of b for reports, e.g. "budget.xlsx::Q1".
func (b *Book) Label(name string) string {
	return filepath.Base(b.Path) + "::" + name
}

func openExcel(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	b := &Book{Path: path, Sheets: f.GetSheetList(), cells: map[string]*sheet.CellSet{}}
	for _, name := range b.Sheets {
		s, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q of %s: %w", name, path, err)
		}
		b.cells[name] = s
	}
	return b, nil
}

// readSheet collects the non-empty cells of one sheet plus every commented
// cell. Content is the formatted display value.
func readSheet(f *excelize.File, name string) (*sheet.CellSet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	type coord struct{ row, col int }
	byCoord := map[coord]*sheet.Cell{}
	var order []coord

	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			k := coord{r, c}
			byCoord[k] = &sheet.Cell{Row: r, Column: c, Content: v}
			order = append(order, k)
		}
	}

	comments, err := f.GetComments(name)
	if err != nil {
		return nil, err
	}
	for _, cm := range comments {
		col, row, err := excelize.CellNameToCoordinates(cm.Cell)
		if err != nil {
			log.WithError(err).Warnf("book: skipping comment on %q", cm.Cell)
			continue
		}
		k := coord{row - 1, col - 1}
		cell, ok := byCoord[k]
		if !ok {
			cell = &sheet.Cell{Row: k.row, Column: k.col}
			byCoord[k] = cell
			order = append(order, k)
		}
		cell.Comment = commentText(cm)
	}

	cells := make([]sheet.Cell, 0, len(order))
	for _, k := range order {
		cells = append(cells, *byCoord[k])
	}
	return sheet.NewCellSet(cells...)
}

func commentText(cm excelize.Comment) string {
	var sb strings.Builder
	sb.WriteString(cm.Text)
	for _, run := range cm.Paragraph {
		sb.WriteString(run.Text)
	}
	return strings.TrimSpace(sb.String())
}

func openCSV(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	var cells []sheet.Cell
	for row := 0; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for col, v := range rec {
			if v != "" {
				cells = append(cells, sheet.Cell{Row: row, Column: col, Content: v})
			}
		}
	}

	s, err := sheet.NewCellSet(cells...)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Book{Path: path, Sheets: []string{name}, cells: map[string]*sheet.CellSet{name: s}}, nil
}
