// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the extractor's small flag surface.

package cli

// Args holds the parsed command line.
type Args struct {
	// File is the input path from --file, or empty when not given.
	File string
	// Help is set by -h/--help, or by an empty command line.
	Help bool
	// Version is set by --version.
	Version bool
}

// ParseArgs scans the raw arguments for the three supported flags.
// Invoking with no arguments shows help. --version short-circuits
// everything else so the input file is never touched.
func ParseArgs(raw []string) (Args, error) {
	var args Args
	if len(raw) == 0 {
		args.Help = true
		return args, nil
	}

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case "--version":
			args.Version = true
		case "-h", "--help":
			args.Help = true
		case "--file":
			if i+1 >= len(raw) {
				return Args{}, NewValidationError("missing path after --file")
			}
			args.File = raw[i+1]
			i++
		}
	}

	if args.Version {
		return Args{Version: true}, nil
	}
	return args, nil
}

// Usage is the help text printed for -h/--help or an empty invocation.
const Usage = `
Usage:
  $ chatgpt-conversation-extractor --file /path/to/conversations.json

Options:
  --file     Path to your exported conversations.json file
  --version  Print the version and exit
  -h, --help Show this help message

If no --file is provided, defaults to ./conversations.json
`
