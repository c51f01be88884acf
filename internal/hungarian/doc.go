// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package hungarian solves the square assignment problem exactly. It backs
// the cost-flow matcher, which reduces minimum-cost bipartite matching with
// absence costs to an assignment over real and dummy items.
package hungarian
