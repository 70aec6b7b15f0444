// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"strings"
)

// fallbackVersion is reported when no .version sidecar file exists.
const fallbackVersion = "1.0.0"

// versionFile is an optional sidecar written by the release process.
const versionFile = ".version"

// VersionString returns the contents of the .version sidecar next to the
// working directory, or the built-in fallback.
func VersionString() string {
	data, err := os.ReadFile(versionFile)
	if err != nil {
		return fallbackVersion
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return fallbackVersion
	}
	return v
}
