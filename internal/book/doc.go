// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package book loads workbooks into cell sets. Excel files are read with
// excelize; csv files are single-sheet books.
package book
