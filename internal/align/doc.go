// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package align implements minimum-cost sequence alignment with caller
// supplied, data-dependent gap and pairing costs. It is the edit-distance
// recurrence generalized from fixed insert/delete/substitute weights.
package align
