// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// CATEGORY TYPE
// =============================================================================

// Category classifies a conversation by its scope and gizmo fields.
type Category string

const (
	// CategoryProject marks conversations with project-scoped memory.
	CategoryProject Category = "Project"
	// CategoryGPT marks conversations tied to a custom GPT (gizmo).
	CategoryGPT Category = "GPT"
	// CategoryPlain marks everything else.
	CategoryPlain Category = "Plain"
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// =============================================================================
// DERIVED TYPES
// =============================================================================

// ClassifiedEntry is the per-record summary computed once at startup.
// Index is the record's position in the input array; it is unique, stable
// for the run, and the only handle back to the raw record.
type ClassifiedEntry struct {
	Index     int
	Category  Category
	Title     string
	ID        string
	GizmoID   string
	Label     string
	Timestamp float64
}

// Message is one extracted message with a sender role and body text.
type Message struct {
	Author  string
	Content string
}

// ExportUnit stages one conversation for rendering and export. It pairs
// the raw record with the classified metadata that names the output file.
type ExportUnit struct {
	Conversation *Conversation
	Category     Category
	Title        string
	ID           string
	Timestamp    float64
}

// UnitFor builds the export unit for a classified entry, resolving the
// raw record through the entry's index.
func UnitFor(data []Conversation, entry ClassifiedEntry) ExportUnit {
	return ExportUnit{
		Conversation: &data[entry.Index],
		Category:     entry.Category,
		Title:        entry.Title,
		ID:           entry.ID,
		Timestamp:    entry.Timestamp,
	}
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// Raw exports are untrusted: titles and ids go missing, gizmo ids are
// null, timestamps are absent or negative. Normalization is the explicit
// boundary between raw input and validated internal records; nothing past
// this point needs to re-check these fields.

// NormalizeEntry fills defaulted fields on a classified entry.
func NormalizeEntry(e ClassifiedEntry) ClassifiedEntry {
	if e.Title == "" {
		e.Title = "Untitled"
	}
	if e.ID == "" {
		e.ID = "unknown"
	}
	if e.GizmoID == "" {
		e.GizmoID = "None"
	}
	if e.Timestamp < 0 {
		e.Timestamp = 0
	}
	return e
}

// NormalizeMessage fills defaulted fields on an extracted message.
func NormalizeMessage(m Message) Message {
	if m.Author == "" {
		m.Author = "unknown"
	}
	return m
}
