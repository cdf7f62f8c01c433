// Package preset provides embedded generation presets and utilities for
// loading them.
package preset

import "embed"

// presetFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var presetFS embed.FS
