// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tree pairs labeled collections that are not grids: the entries of
// two directory trees and the sheet names of two workbooks.
package tree
