// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package matcher defines the Matcher strategy used to pair labeled items and
// its implementations: exact key identity, globally optimal cost-flow
// matching, ordered sequence alignment, and a combinator that falls back from
// one strategy to the next for the items left unpaired.
package matcher
