// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a conversations.json export and decodes the full array into
// memory. The export format is a single JSON array of conversation
// objects; anything else is a malformed input.
func Load(path string) ([]Conversation, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	var data []Conversation
	dec := json.NewDecoder(f)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return data, nil
}
