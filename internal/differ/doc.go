// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ turns the row and column pairings of two sheets into a
// Result of redundant rows, redundant columns and differing cells.
package differ
