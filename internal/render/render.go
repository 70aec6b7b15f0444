// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns extracted messages and metadata into Markdown
// documents. Rendering is deterministic: identical inputs produce
// byte-identical output.
package render

import (
	"math"
	"strings"
	"time"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
)

// Timestamp layout used in document headers and filenames.
const timestampLayout = "2006-01-02.1504.05"

// Date layout used in human-readable listing labels.
const dateLayout = "2006-01-02"

// =============================================================================
// TIMESTAMP FORMATTING
// =============================================================================

// Timestamp formats epoch seconds as local time YYYY-MM-DD.HHMM.SS.
// Values that cannot be converted render as "unknown_time".
func Timestamp(ts float64) string {
	t, ok := toTime(ts)
	if !ok {
		return "unknown_time"
	}
	return t.Format(timestampLayout)
}

// Date formats epoch seconds as local time YYYY-MM-DD, falling back to
// "unknown_date" when conversion fails.
func Date(ts float64) string {
	t, ok := toTime(ts)
	if !ok {
		return "unknown_date"
	}
	return t.Format(dateLayout)
}

// toTime converts epoch seconds to local time. Non-finite values and
// values outside the representable calendar range are rejected.
func toTime(ts float64) (time.Time, bool) {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return time.Time{}, false
	}
	sec, frac := math.Modf(ts)
	t := time.Unix(int64(sec), int64(frac*1e9))
	if y := t.Year(); y < 1 || y > 9999 {
		return time.Time{}, false
	}
	return t, true
}

// =============================================================================
// DOCUMENT RENDERING
// =============================================================================

// Document renders one conversation as a Markdown document: a frontmatter
// block, a top-level heading, then each message as an uppercased author
// label and its content, separated by horizontal rules.
func Document(title string, category model.Category, timestampStr, id string, messages []model.Message) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString("title: \"" + title + "\"\n")
	sb.WriteString("category: \"" + category.String() + "\"\n")
	sb.WriteString("timestamp: \"" + timestampStr + "\"\n")
	sb.WriteString("id: \"" + id + "\"\n")
	sb.WriteString("---\n\n")
	sb.WriteString("# " + title + "\n\n")

	blocks := make([]string, 0, len(messages))
	for _, msg := range messages {
		blocks = append(blocks, "**"+strings.ToUpper(msg.Author)+"**:\n"+msg.Content+"\n")
	}
	sb.WriteString(strings.Join(blocks, "\n---\n\n"))

	return sb.String()
}
