// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"strings"
	"testing"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		conv model.Conversation
		want model.Category
	}{
		{
			name: "project scope",
			conv: model.Conversation{MemoryScope: "project_enabled"},
			want: model.CategoryProject,
		},
		{
			name: "project scope wins over gizmo",
			conv: model.Conversation{MemoryScope: "project_enabled", GizmoID: "g-123"},
			want: model.CategoryProject,
		},
		{
			name: "gizmo without project scope",
			conv: model.Conversation{GizmoID: "g-123"},
			want: model.CategoryGPT,
		},
		{
			name: "gizmo with other scope",
			conv: model.Conversation{GizmoID: "g-123", MemoryScope: "global"},
			want: model.CategoryGPT,
		},
		{
			name: "neither",
			conv: model.Conversation{Title: "hello"},
			want: model.CategoryPlain,
		},
		{
			name: "empty record",
			conv: model.Conversation{},
			want: model.CategoryPlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.conv); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildEntries(t *testing.T) {
	data := []model.Conversation{
		{Title: "First", ID: "conv-1", MemoryScope: "project_enabled", CreateTime: 100},
		{GizmoID: "g-9", CreateTime: -7},
		{Title: "Third", ID: "conv-3"},
	}

	entries := BuildEntries(data)
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}

	for i, e := range entries {
		if e.Index != i {
			t.Errorf("entries[%d].Index = %d", i, e.Index)
		}
	}

	if entries[0].Category != model.CategoryProject {
		t.Errorf("entries[0].Category = %v", entries[0].Category)
	}
	if entries[1].Category != model.CategoryGPT {
		t.Errorf("entries[1].Category = %v", entries[1].Category)
	}
	if entries[2].Category != model.CategoryPlain {
		t.Errorf("entries[2].Category = %v", entries[2].Category)
	}

	// Defaults applied at the boundary.
	if entries[1].Title != "Untitled" {
		t.Errorf("missing title = %q, want Untitled", entries[1].Title)
	}
	if entries[1].ID != "unknown" {
		t.Errorf("missing id = %q, want unknown", entries[1].ID)
	}
	if entries[1].Timestamp != 0 {
		t.Errorf("negative timestamp = %v, want 0", entries[1].Timestamp)
	}
	if entries[2].GizmoID != "None" {
		t.Errorf("missing gizmo = %q, want None", entries[2].GizmoID)
	}
}

func TestLabelFormat(t *testing.T) {
	e := model.ClassifiedEntry{
		Category:  model.CategoryGPT,
		Title:     "Trip Planning",
		GizmoID:   "g-42",
		Timestamp: 1700000000,
	}
	label := Label(e)

	if !strings.HasPrefix(label, "[GPT] [") {
		t.Errorf("label prefix = %q", label)
	}
	if !strings.Contains(label, "Trip Planning") {
		t.Errorf("label missing title: %q", label)
	}
	if !strings.HasSuffix(label, "(g-42)") {
		t.Errorf("label suffix = %q", label)
	}
}

func TestLabelUnknownDate(t *testing.T) {
	e := model.ClassifiedEntry{Category: model.CategoryPlain, Title: "t", GizmoID: "None", Timestamp: 1e18}
	if !strings.Contains(Label(e), "[unknown_date]") {
		t.Errorf("label = %q, want unknown_date marker", Label(e))
	}
}
