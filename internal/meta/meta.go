// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/celldiff/internal/config"
)

// Meta is the runtime state shared by every command: the raw arguments, the
// loaded configuration, the context and the directory celldiff started in.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}

// ConfigFile returns the path of the loaded configuration file, or "" when
// none was found.
func (m Meta) ConfigFile() string {
	return m.Config.Source
}
