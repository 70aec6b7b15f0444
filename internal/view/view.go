// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package view builds orderable, filterable, searchable views over the
// classified set and resolves user range and selection input against them.
//
// Display indices are the numbers shown to the user. Category views
// number entries by their original input position. Timestamp views (and
// keyword views derived from them) number entries by their position in
// the ascending-timestamp ordering, so the same conversation keeps the
// same number whether listed ascending, descending, or as a search match.
package view

import (
	"sort"
	"strings"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
)

// Item pairs a classified entry with the display index it is listed
// under in a particular view.
type Item struct {
	Display int
	Entry   model.ClassifiedEntry
}

// =============================================================================
// VIEW BUILDERS
// =============================================================================

// Category filters the classified set by category, preserving input
// order. Display indices are the entries' original input positions.
func Category(entries []model.ClassifiedEntry, cat model.Category) []Item {
	var items []Item
	for _, e := range entries {
		if e.Category == cat {
			items = append(items, Item{Display: e.Index, Entry: e})
		}
	}
	return items
}

// Ascending orders all entries by timestamp ascending. The sort is
// stable, so input order breaks ties. Display indices are positions in
// the sorted sequence.
func Ascending(entries []model.ClassifiedEntry) []Item {
	sorted := make([]model.ClassifiedEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	items := make([]Item, len(sorted))
	for i, e := range sorted {
		items[i] = Item{Display: i, Entry: e}
	}
	return items
}

// Descending is the ascending view enumerated in reverse. Display
// indices keep the ascending numbering: the entry with the largest
// timestamp is listed first but still carries the highest index.
func Descending(entries []model.ClassifiedEntry) []Item {
	asc := Ascending(entries)
	items := make([]Item, len(asc))
	for i := range asc {
		items[i] = asc[len(asc)-1-i]
	}
	return items
}

// Keyword returns the entries whose title contains the keyword,
// case-insensitively. Matches keep ascending-timestamp order and their
// ascending display numbering.
func Keyword(entries []model.ClassifiedEntry, keyword string) []Item {
	keyword = strings.ToLower(keyword)
	var items []Item
	for _, it := range Ascending(entries) {
		if strings.Contains(strings.ToLower(it.Entry.Title), keyword) {
			items = append(items, it)
		}
	}
	return items
}
