// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package extract pulls ordered message content out of a conversation's
// node mapping.
package extract

import (
	"encoding/json"

	"github.com/0xsalt/chatgpt-conversation-extractor/internal/model"
)

// Messages walks the conversation's mapping in its native key order and
// returns the extractable messages. Nodes without a message payload are
// skipped, as are messages with no parts. Only the first element of
// parts becomes the body; later parts (multi-part tool output, file
// attachments) are dropped. A first part that is not a plain string is
// treated as unextractable.
//
// Extraction never fails; a conversation with nothing extractable yields
// an empty slice.
func Messages(conv *model.Conversation) []model.Message {
	var messages []model.Message
	for pair := conv.Mapping.Oldest(); pair != nil; pair = pair.Next() {
		node := pair.Value
		if node.Message == nil {
			continue
		}
		parts := node.Message.Content.Parts
		if len(parts) == 0 {
			continue
		}
		var body string
		if err := json.Unmarshal(parts[0], &body); err != nil {
			continue
		}
		messages = append(messages, model.NormalizeMessage(model.Message{
			Author:  node.Message.Author.Role,
			Content: body,
		}))
	}
	return messages
}
