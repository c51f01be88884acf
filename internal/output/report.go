// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/celldiff/internal/differ"
	"github.com/tfctl/celldiff/internal/filters"
	"github.com/tfctl/celldiff/internal/log"
	"github.com/tfctl/celldiff/internal/pair"
	"github.com/tfctl/celldiff/internal/sheet"
	"github.com/tfctl/celldiff/internal/tree"
)

// SheetReport is the comparison of one sheet of each side.
type SheetReport struct {
	A      string        `json:"a" yaml:"a"`
	B      string        `json:"b" yaml:"b"`
	Cells  int           `json:"comparedCells" yaml:"comparedCells"`
	Result differ.Result `json:"result" yaml:"result"`
}

// BookReport is the comparison of every paired sheet of two books.
type BookReport struct {
	A      string        `json:"a" yaml:"a"`
	B      string        `json:"b" yaml:"b"`
	Sheets []SheetReport `json:"sheets" yaml:"sheets"`
	OnlyA  []string      `json:"onlyA" yaml:"onlyA"`
	OnlyB  []string      `json:"onlyB" yaml:"onlyB"`
}

var cellKeys = []string{"a", "b", "old", "new", "diff"}

// emit writes v as JSON or YAML. It reports false for the text format.
func emit(w io.Writer, s Settings, v any) (bool, error) {
	var (
		out []byte
		err error
	)
	switch s.Format {
	case "json":
		out, err = json.Marshal(v)
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("failed to encode %s: %w", s.Format, err)
	}
	_, err = w.Write(out)
	return true, err
}

// WriteSheets renders sheet reports.
func WriteSheets(w io.Writer, s Settings, reports ...SheetReport) error {
	if w == nil {
		w = os.Stdout
	}
	if done, err := emit(w, s, reports); done {
		return err
	}
	for _, r := range reports {
		writeSheetText(w, s, r)
	}
	return nil
}

// WriteBook renders a book report.
func WriteBook(w io.Writer, s Settings, r BookReport) error {
	if w == nil {
		w = os.Stdout
	}
	if done, err := emit(w, s, r); done {
		return err
	}

	for _, sr := range r.Sheets {
		writeSheetText(w, s, sr)
	}
	if len(r.OnlyA) > 0 {
		fmt.Fprintf(w, "sheets only in %s: %s\n", r.A, strings.Join(r.OnlyA, ", "))
	}
	if len(r.OnlyB) > 0 {
		fmt.Fprintf(w, "sheets only in %s: %s\n", r.B, strings.Join(r.OnlyB, ", "))
	}
	return nil
}

func writeSheetText(w io.Writer, s Settings, r SheetReport) {
	header := r.A + " vs " + r.B
	res := r.Result

	if res.Empty() {
		TableWriter(nil, nil, s, header, "identical ("+english.Plural(r.Cells, "cell", "")+")", w)
		return
	}

	if len(res.RedundantRows.A) > 0 {
		fmt.Fprintf(w, "rows only in A: %s\n", rowNames(res.RedundantRows.A))
	}
	if len(res.RedundantRows.B) > 0 {
		fmt.Fprintf(w, "rows only in B: %s\n", rowNames(res.RedundantRows.B))
	}
	if len(res.RedundantColumns.A) > 0 {
		fmt.Fprintf(w, "columns only in A: %s\n", columnNames(res.RedundantColumns.A))
	}
	if len(res.RedundantColumns.B) > 0 {
		fmt.Fprintf(w, "columns only in B: %s\n", columnNames(res.RedundantColumns.B))
	}

	rows := filters.FilterRows(CellRows(res.Cells, s.Color), s.Filter)
	SortDataset(rows, s.Sort)
	TableWriter(rows, cellKeys, s, header, summary(r), w)
}

// CellRows turns cell differences into table rows keyed by a, b, old, new
// and diff.
func CellRows(cells []differ.CellDiff, color bool) []map[string]any {
	rows := make([]map[string]any, 0, len(cells))
	for _, d := range cells {
		diff := InlineDiff(d.A.Content, d.B.Content, color)
		if d.A.Content == d.B.Content {
			diff = "comment: " + InlineDiff(d.A.Comment, d.B.Comment, color)
		}
		rows = append(rows, map[string]any{
			"a":    CellRef(d.A),
			"b":    CellRef(d.B),
			"old":  d.A.Content,
			"new":  d.B.Content,
			"diff": diff,
		})
	}
	return rows
}

func summary(r SheetReport) string {
	res := r.Result
	parts := []string{
		english.Plural(res.RedundantRows.Len(), "redundant row", ""),
		english.Plural(res.RedundantColumns.Len(), "redundant column", ""),
		english.Plural(len(res.Cells), "differing cell", ""),
	}
	return fmt.Sprintf("%s of %s compared cells",
		english.OxfordWordSeries(parts, "and"), humanize.Comma(int64(r.Cells)))
}

// CellRef returns the A1 reference of a cell.
func CellRef(c sheet.Cell) string {
	ref, err := excelize.CoordinatesToCellName(c.Column+1, c.Row+1)
	if err != nil {
		log.WithError(err).Warnf("no cell name for (%d,%d)", c.Row, c.Column)
		return fmt.Sprintf("R%dC%d", c.Row+1, c.Column+1)
	}
	return ref
}

func rowNames(idx []int) string {
	names := make([]string, len(idx))
	for i, r := range idx {
		names[i] = strconv.Itoa(r + 1)
	}
	return strings.Join(names, ", ")
}

func columnNames(idx []int) string {
	names := make([]string, len(idx))
	for i, c := range idx {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			name = strconv.Itoa(c + 1)
		}
		names[i] = name
	}
	return strings.Join(names, ", ")
}

// InlineDiff marks the characters removed from a and inserted into b. With
// color the marks are ANSI colors; otherwise removals read [-x-] and
// insertions {+y+}.
func InlineDiff(a, b string, color bool) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	if color {
		return dmp.DiffPrettyText(diffs)
	}

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

var dirKeys = []string{"a", "b", "status"}

// DirRows turns directory pairs into table rows keyed by a, b and status.
func DirRows(pairs []pair.ItemPair[*tree.Node]) []map[string]any {
	rows := make([]map[string]any, 0, len(pairs))
	for _, p := range pairs {
		row := map[string]any{"a": "-", "b": "-"}
		if n, ok := p.Item(pair.A); ok {
			row["a"] = n.String()
		}
		if n, ok := p.Item(pair.B); ok {
			row["b"] = n.String()
		}
		row["status"] = dirStatus(p)
		rows = append(rows, row)
	}
	return rows
}

func dirStatus(p pair.ItemPair[*tree.Node]) string {
	switch {
	case p.IsOnly(pair.A):
		return "only-a"
	case p.IsOnly(pair.B):
		return "only-b"
	case !p.A.IsDir && p.A.Digest != p.B.Digest:
		return "changed"
	case p.A.Name != p.B.Name:
		return "renamed"
	default:
		return "same"
	}
}

// WriteDirs renders directory pairs that pass s.Filter. Unchanged entries are
// left out unless all is set.
func WriteDirs(w io.Writer, s Settings, pairs []pair.ItemPair[*tree.Node], all bool) error {
	if w == nil {
		w = os.Stdout
	}

	rows := filters.FilterRows(DirRows(pairs), s.Filter)
	if !all {
		kept := rows[:0]
		for _, r := range rows {
			if r["status"] != "same" {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	SortDataset(rows, s.Sort)

	if done, err := emit(w, s, rows); done {
		return err
	}

	footer := english.Plural(len(rows), "entry", "entries")
	TableWriter(rows, dirKeys, s, "", footer, w)
	return nil
}
