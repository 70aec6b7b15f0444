// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

// OutcomeKind names the ways a run can finish gracefully. Expected
// terminations are values handed back up the call chain, not errors; the
// entry point switches on the kind, prints the message, and exits zero.
type OutcomeKind int

const (
	// OutcomeExported means one conversation was written to disk.
	OutcomeExported OutcomeKind = iota
	// OutcomeArchived means a batch was written into a zip archive.
	OutcomeArchived
	// OutcomeNoSelection means paging finished without a selection.
	OutcomeNoSelection
)

// Outcome is the result of a completed interactive run.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}
