// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify assigns a category to each raw conversation record and
// builds the classified set the selector operates on.
package classify

import (
	"fmt"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
	"github.com/0xsalt/chatgpt-conversation-extractor/internal/render"
)

// Classify derives the category for a single conversation record.
// Project scope wins over a gizmo binding; a gizmo binding wins over
// plain. Absent fields count as empty, so this never fails.
func Classify(conv *model.Conversation) model.Category {
	if conv.MemoryScope == "project_enabled" {
		return model.CategoryProject
	}
	if conv.GizmoID != "" {
		return model.CategoryGPT
	}
	return model.CategoryPlain
}

// BuildEntries classifies every record in input order and returns one
// normalized entry per record. Entry indices equal input positions.
func BuildEntries(data []model.Conversation) []model.ClassifiedEntry {
	entries := make([]model.ClassifiedEntry, 0, len(data))
	for i := range data {
		conv := &data[i]
		entry := model.NormalizeEntry(model.ClassifiedEntry{
			Index:     i,
			Category:  Classify(conv),
			Title:     conv.Title,
			ID:        conv.ID,
			GizmoID:   conv.GizmoID,
			Timestamp: conv.CreateTime,
		})
		entry.Label = Label(entry)
		entries = append(entries, entry)
	}
	return entries
}

// Label builds the one-line listing summary for an entry.
func Label(e model.ClassifiedEntry) string {
	return fmt.Sprintf("[%s] [%s] %s (%s)", e.Category, render.Date(e.Timestamp), e.Title, e.GizmoID)
}
