// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/celldiff/internal/config"
)

// Settings carries the presentation flags of a command.
type Settings struct {
	Format  string
	Color   bool
	Titles  bool
	Padding int
	Sort    string
	Filter  string
}

// FromCommand reads the presentation flags of cmd.
func FromCommand(cmd *cli.Command) Settings {
	return Settings{
		Format:  cmd.String("output"),
		Color:   cmd.Bool("color"),
		Titles:  cmd.Bool("titles"),
		Padding: cmd.Int("padding"),
		Sort:    cmd.String("sort"),
		Filter:  cmd.String("filter"),
	}
}

// InterfaceToString converts a dataset value to its display string. A custom
// empty value may be provided.
func InterfaceToString(value any, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// TableWriter renders rows as a borderless table with one column per key.
// header and footer, when non-empty, are printed above and below it.
func TableWriter(rows []map[string]any, keys []string, s Settings, header, footer string, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if s.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	if header != "" {
		fmt.Fprintln(w, headerStyle.Render(header))
	}

	if len(rows) > 0 {
		cells := make([][]string, 0, len(rows))
		for _, row := range rows {
			line := make([]string, 0, len(keys))
			for _, k := range keys {
				line = append(line, InterfaceToString(row[k], "-"))
			}
			cells = append(cells, line)
		}

		pad := max(1, s.Padding)
		t := table.New().
			BorderBottom(false).
			BorderTop(false).
			BorderLeft(false).
			BorderRight(false).
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				var style lipgloss.Style
				switch {
				case row == table.HeaderRow:
					style = headerStyle
				case row%2 == 0:
					style = evenRowStyle
				default:
					style = oddRowStyle
				}
				if col > 0 {
					style = style.PaddingLeft(pad)
				}
				return style
			}).
			Headers().
			Rows(cells...)

		if s.Titles {
			titles := make([]string, len(keys))
			for i, k := range keys {
				titles[i] = strings.ToUpper(k)
			}
			// https://github.com/charmbracelet/lipgloss/issues/261
			t = t.Headers(titles...).BorderHeader(false)
		}
		fmt.Fprintln(w, t)
	}

	if footer != "" {
		fmt.Fprintln(w, headerStyle.Render(footer))
	}
}

// getColors returns the configured title, even-row and odd-row colors,
// falling back to defaults that suit the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
