// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes rendered conversations to disk, one Markdown file
// per conversation or many files bundled into a single zip archive.
// Naming is deterministic: the same conversation always lands at the
// same path, and a re-export overwrites the previous file.
package export

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/extract"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/render"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/util"
)

// Options configures where exports are written.
type Options struct {
	// OutputDir receives .md files and .zip archives. Created if absent.
	OutputDir string
}

// DefaultOptions returns the default export options.
func DefaultOptions() *Options {
	return &Options{OutputDir: "output_conversations"}
}

// =============================================================================
// NAMING
// =============================================================================

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SanitizeTitle maps a title onto the filename-safe alphabet
// [A-Za-z0-9_-], replacing everything else with underscores, and caps
// the result at 60 characters.
func SanitizeTitle(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(safe) > 60 {
		safe = safe[:60]
	}
	return safe
}

// Filename computes the deterministic output name for one conversation:
// CATEGORY-TIMESTAMP-SAFE_TITLE__ID8.md. Names are not guaranteed unique
// across a batch; identical metadata means the later write wins.
func Filename(unit model.ExportUnit) string {
	id8 := unit.ID
	if len(id8) > 8 {
		id8 = id8[:8]
	}
	return fmt.Sprintf("%s-%s-%s__%s.md",
		strings.ToUpper(unit.Category.String()),
		render.Timestamp(unit.Timestamp),
		SanitizeTitle(unit.Title),
		id8,
	)
}

// =============================================================================
// SINGLE EXPORT
// =============================================================================

// WriteMarkdown renders one conversation and writes it into the output
// directory, overwriting any existing file of the same name. When the
// conversation has no extractable messages nothing is written and ok is
// false; that is a report, not an error.
func WriteMarkdown(unit model.ExportUnit, opts *Options) (path string, ok bool, err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	messages := extract.Messages(unit.Conversation)
	if len(messages) == 0 {
		return "", false, nil
	}

	doc := render.Document(unit.Title, unit.Category, render.Timestamp(unit.Timestamp), unit.ID, messages)
	path = filepath.Join(opts.OutputDir, Filename(unit))
	if err := util.AtomicWriteFile(path, []byte(doc), 0644); err != nil {
		return "", false, fmt.Errorf("write conversation: %w", err)
	}
	return path, true, nil
}

// =============================================================================
// BATCH EXPORT
// =============================================================================

// ZipResult reports what a batch export produced. Skipped counts the
// entries omitted for having no extractable messages; omission is silent
// per entry but surfaced here for observability.
type ZipResult struct {
	Path    string
	Names   []string
	Written int
	Skipped int
}

// WriteZip renders the given conversations and writes each as a member
// of one zip archive in the output directory. Entries with no
// extractable messages are skipped without aborting the batch.
func WriteZip(units []model.ExportUnit, zipName string, opts *Options) (ZipResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return ZipResult{}, fmt.Errorf("create output directory: %w", err)
	}

	zipPath := filepath.Join(opts.OutputDir, zipName)
	f, err := os.Create(zipPath)
	if err != nil {
		return ZipResult{}, fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	result := ZipResult{Path: zipPath}

	for _, unit := range units {
		messages := extract.Messages(unit.Conversation)
		if len(messages) == 0 {
			result.Skipped++
			continue
		}

		name := Filename(unit)
		doc := render.Document(unit.Title, unit.Category, render.Timestamp(unit.Timestamp), unit.ID, messages)

		w, err := zw.Create(name)
		if err != nil {
			return ZipResult{}, fmt.Errorf("add archive member %s: %w", name, err)
		}
		if _, err := w.Write([]byte(doc)); err != nil {
			return ZipResult{}, fmt.Errorf("write archive member %s: %w", name, err)
		}
		result.Names = append(result.Names, name)
		result.Written++
	}

	if err := zw.Close(); err != nil {
		return ZipResult{}, fmt.Errorf("finalize archive: %w", err)
	}
	if err := f.Sync(); err != nil {
		return ZipResult{}, fmt.Errorf("sync archive: %w", err)
	}
	return result, nil
}
