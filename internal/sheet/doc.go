// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package sheet models the cells of one worksheet and pairs the rows and
// columns of two sheets. ItemMatcher aligns one axis at a time; RCMatcher
// coordinates both axes so that a known column shift does not make every row
// look different.
package sheet
