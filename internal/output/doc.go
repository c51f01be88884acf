// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders comparison results as text tables, JSON or YAML.
// Text tables are drawn with lipgloss; cell references use spreadsheet A1
// notation and changed cell content is shown as an inline character diff.
package output
