// SPDX-License-Identifier: MIT

// Package cli implements the arbor command-line interface.
//
// # Commands
//
//   - demo:  print the sample forest (roots 1 and 2) as indented text
//   - build: generate a tree (path, star, kary, random, outline) and print it
//
// # Output
//
// Every command renders through the same pipeline: --format text (default),
// dot or svg, written to stdout or to --output. Text output honours
// --indent, --placeholder, --max-depth and --color. --stats prints node
// counts and level widths to stderr.
//
// # Configuration
//
// An optional TOML file (--config) supplies defaults for the log level and
// the render settings; flags set on the command line win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and fetched with loggerFromContext.
package cli

const (
	// appName is the binary name used in help and version output.
	appName = "arbor"

	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// validFormats lists the accepted --format values.
var validFormats = []string{formatText, formatDOT, formatSVG}
