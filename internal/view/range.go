// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package view

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// RANGE SPEC PARSING
// =============================================================================

// SpecKind discriminates the three forms of range input.
type SpecKind int

const (
	// SpecAll shows the whole view (empty input).
	SpecAll SpecKind = iota
	// SpecPage pages through the view in fixed-size batches.
	SpecPage
	// SpecRange shows an inclusive display-position range.
	SpecRange
)

// Spec is a parsed range input.
type Spec struct {
	Kind SpecKind
	// Size is the batch size for SpecPage.
	Size int
	// Start and End bound a SpecRange, inclusive.
	Start, End int
}

// ParseSpec interprets the "how many at a time or what range" input
// against a view of total items. Empty input means show all. A single
// integer N means page in batches of N. "start-end" means an inclusive
// range of view positions; the range must be non-negative, ordered, and
// end strictly below total. Violations fail, they are never clamped.
func ParseSpec(input string, total int) (Spec, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Spec{Kind: SpecAll}, nil
	}

	if strings.Contains(input, "-") {
		parts := strings.Split(input, "-")
		if len(parts) != 2 {
			return Spec{}, fmt.Errorf("range format should be 'start-end' (e.g., '50-100')")
		}
		start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return Spec{}, fmt.Errorf("range values must be valid numbers")
		}
		if start < 0 || end < 0 {
			return Spec{}, fmt.Errorf("range values must be positive")
		}
		if start > end {
			return Spec{}, fmt.Errorf("start value must be less than or equal to end value")
		}
		if end >= total {
			return Spec{}, fmt.Errorf("end value must be less than %d", total)
		}
		return Spec{Kind: SpecRange, Start: start, End: end}, nil
	}

	size, err := strconv.Atoi(input)
	if err != nil {
		return Spec{}, fmt.Errorf("please enter a valid number")
	}
	if size < 1 {
		return Spec{}, fmt.Errorf("batch size must be at least 1")
	}
	if size > total-1 {
		return Spec{}, fmt.Errorf("value must be at most %d", total-1)
	}
	return Spec{Kind: SpecPage, Size: size}, nil
}

// =============================================================================
// SELECTION RESOLUTION
// =============================================================================

// ResolveSelection resolves a user-chosen number against a view. The
// number is a global display index: it is bounds-checked against the
// full dataset size, not the view's length, so a conversation answers to
// the same number in every view that lists it. A number inside the
// dataset bound but absent from the view is an invalid selection.
func ResolveSelection(items []Item, sel, datasetSize int) (Item, error) {
	if sel < 0 || sel > datasetSize-1 {
		return Item{}, fmt.Errorf("value must be between 0 and %d", datasetSize-1)
	}
	for _, it := range items {
		if it.Display == sel {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("invalid selection")
}

// Slice returns the items at view positions start..end inclusive. Bounds
// are assumed valid; ParseSpec enforces them.
func Slice(items []Item, start, end int) []Item {
	return items[start : end+1]
}
