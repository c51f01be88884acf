// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects report rows with --filter expressions.
//
// Filters are key-operator-target expressions joined by a delimiter
// (default: comma, see CELLDIFF_FILTER_DELIM). Keys name table columns such
// as a, b, old, new, diff or status.
//
// Operators, each negated by a leading '!':
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < and > : ordering, numeric when the value is a number
//   - @ : contains
//   - / : regular expression match
//
// Examples:
//
//   - "status=changed" : only changed directory entries
//   - "a^C" : cells of column C in the first sheet
//   - "new!@total" : cells whose new content does not contain "total"
package filters
