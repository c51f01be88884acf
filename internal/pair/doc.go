// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pair defines the tagged correspondence values shared by every
// matcher: IndexPair for positions along an axis and ItemPair for labeled
// items. Each value is exactly one of Paired, OnlyA or OnlyB.
package pair
