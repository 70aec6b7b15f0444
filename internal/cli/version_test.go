// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func TestVersionStringFallback(t *testing.T) {
	chdir(t, t.TempDir())
	if got := VersionString(); got != fallbackVersion {
		t.Errorf("VersionString = %q, want %q", got, fallbackVersion)
	}
}

func TestVersionStringSidecar(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(versionFile, []byte("2.3.4\n"), 0644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	if got := VersionString(); got != "2.3.4" {
		t.Errorf("VersionString = %q, want 2.3.4", got)
	}
}

func TestVersionStringEmptySidecar(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile(versionFile, []byte("  \n"), 0644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	if got := VersionString(); got != fallbackVersion {
		t.Errorf("VersionString = %q, want %q", got, fallbackVersion)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
