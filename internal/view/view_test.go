// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package view

import (
	"testing"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
)

func sampleEntries() []model.ClassifiedEntry {
	return []model.ClassifiedEntry{
		{Index: 0, Category: model.CategoryPlain, Title: "Math Help", ID: "id-0", Timestamp: 300},
		{Index: 1, Category: model.CategoryGPT, Title: "History", ID: "id-1", Timestamp: 100},
		{Index: 2, Category: model.CategoryPlain, Title: "Mathematics 101", ID: "id-2", Timestamp: 200},
		{Index: 3, Category: model.CategoryProject, Title: "Planning", ID: "id-3", Timestamp: 400},
	}
}

func TestCategoryViewKeepsInputOrderAndIndices(t *testing.T) {
	items := Category(sampleEntries(), model.CategoryPlain)
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Display != 0 || items[0].Entry.ID != "id-0" {
		t.Errorf("items[0] = {%d %s}, want {0 id-0}", items[0].Display, items[0].Entry.ID)
	}
	if items[1].Display != 2 || items[1].Entry.ID != "id-2" {
		t.Errorf("items[1] = {%d %s}, want {2 id-2}", items[1].Display, items[1].Entry.ID)
	}
}

func TestCategoryViewEmpty(t *testing.T) {
	entries := []model.ClassifiedEntry{
		{Index: 0, Category: model.CategoryPlain, Timestamp: 1},
	}
	if items := Category(entries, model.CategoryGPT); len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}

func TestAscendingOrderAndNumbering(t *testing.T) {
	items := Ascending(sampleEntries())
	wantIDs := []string{"id-1", "id-2", "id-0", "id-3"}
	for i, want := range wantIDs {
		if items[i].Entry.ID != want {
			t.Errorf("items[%d].Entry.ID = %s, want %s", i, items[i].Entry.ID, want)
		}
		if items[i].Display != i {
			t.Errorf("items[%d].Display = %d, want %d", i, items[i].Display, i)
		}
	}
}

func TestAscendingStableOnTies(t *testing.T) {
	entries := []model.ClassifiedEntry{
		{Index: 0, ID: "first", Timestamp: 100},
		{Index: 1, ID: "second", Timestamp: 100},
	}
	items := Ascending(entries)
	if items[0].Entry.ID != "first" || items[1].Entry.ID != "second" {
		t.Errorf("tie order = [%s %s], want [first second]",
			items[0].Entry.ID, items[1].Entry.ID)
	}
}

// Descending must be the exact mirror of Ascending: same items, same
// display numbers, reversed listing order.
func TestDescendingMirrorsAscending(t *testing.T) {
	entries := sampleEntries()
	asc := Ascending(entries)
	desc := Descending(entries)
	if len(asc) != len(desc) {
		t.Fatalf("len mismatch: asc %d, desc %d", len(asc), len(desc))
	}
	for i := range desc {
		mirror := asc[len(asc)-1-i]
		if desc[i].Entry.ID != mirror.Entry.ID || desc[i].Display != mirror.Display {
			t.Errorf("desc[%d] = {%d %s}, want {%d %s}",
				i, desc[i].Display, desc[i].Entry.ID, mirror.Display, mirror.Entry.ID)
		}
	}
	// Newest first, still carrying the highest number.
	if desc[0].Entry.ID != "id-3" || desc[0].Display != 3 {
		t.Errorf("desc[0] = {%d %s}, want {3 id-3}", desc[0].Display, desc[0].Entry.ID)
	}
}

func TestKeywordMatchesCaseInsensitive(t *testing.T) {
	items := Keyword(sampleEntries(), "MATH")
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	// Ascending timestamp order with ascending-view numbering.
	if items[0].Entry.ID != "id-2" || items[0].Display != 1 {
		t.Errorf("items[0] = {%d %s}, want {1 id-2}", items[0].Display, items[0].Entry.ID)
	}
	if items[1].Entry.ID != "id-0" || items[1].Display != 2 {
		t.Errorf("items[1] = {%d %s}, want {2 id-0}", items[1].Display, items[1].Entry.ID)
	}
}

func TestKeywordNoMatches(t *testing.T) {
	if items := Keyword(sampleEntries(), "biology"); len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		total   int
		want    Spec
		wantErr bool
	}{
		{"empty shows all", "", 200, Spec{Kind: SpecAll}, false},
		{"empty on empty view", "", 0, Spec{Kind: SpecAll}, false},
		{"batch size", "25", 200, Spec{Kind: SpecPage, Size: 25}, false},
		{"batch at upper bound", "199", 200, Spec{Kind: SpecPage, Size: 199}, false},
		{"batch above bound", "200", 200, Spec{}, true},
		{"batch of zero", "0", 200, Spec{}, true},
		{"negative batch", "-5", 200, Spec{}, true},
		{"valid range", "50-100", 200, Spec{Kind: SpecRange, Start: 50, End: 100}, false},
		{"range end beyond view", "50-100", 60, Spec{}, true},
		{"range end at total", "0-200", 200, Spec{}, true},
		{"inverted range", "100-50", 200, Spec{}, true},
		{"single item range", "7-7", 200, Spec{Kind: SpecRange, Start: 7, End: 7}, false},
		{"garbage", "abc", 200, Spec{}, true},
		{"garbage range", "a-b", 200, Spec{}, true},
		{"too many dashes", "1-2-3", 200, Spec{}, true},
		{"whitespace tolerated", "  10  ", 200, Spec{Kind: SpecPage, Size: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.input, tt.total)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("spec = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveSelection(t *testing.T) {
	items := Keyword(sampleEntries(), "math") // displays 1 and 2
	datasetSize := 4

	it, err := ResolveSelection(items, 2, datasetSize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Entry.ID != "id-0" {
		t.Errorf("resolved ID = %s, want id-0", it.Entry.ID)
	}

	// Inside the dataset bound but not listed in this view.
	if _, err := ResolveSelection(items, 3, datasetSize); err == nil {
		t.Error("expected error for index absent from view")
	}

	// Outside the dataset bound entirely.
	if _, err := ResolveSelection(items, 4, datasetSize); err == nil {
		t.Error("expected error for index beyond dataset")
	}
	if _, err := ResolveSelection(items, -1, datasetSize); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestSlice(t *testing.T) {
	items := Ascending(sampleEntries())
	got := Slice(items, 1, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Display != 1 || got[1].Display != 2 {
		t.Errorf("displays = [%d %d], want [1 2]", got[0].Display, got[1].Display)
	}
}
