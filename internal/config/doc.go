// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads celldiff's YAML configuration and offers typed getters
// over dotted keys. The file is CELLDIFF_CFG_FILE when set, otherwise
// celldiff.yaml in the directory returned by os.UserConfigDir, typically:
//   - Linux: $XDG_CONFIG_HOME/celldiff.yaml or $HOME/.config/celldiff.yaml
//   - macOS: $HOME/Library/Application Support/celldiff.yaml
//   - Windows: %AppData%/celldiff.yaml
//
// A missing file is not an error for the getters; they return their defaults.
package config
