// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for exported conversations.
//
// Raw types mirror the shape of an OpenAI data export
// (conversations.json): a JSON array of conversation objects, each
// carrying metadata and a "mapping" object keyed by node ID. Raw records
// are read once at startup and never mutated afterwards.
package model

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// =============================================================================
// RAW EXPORT TYPES
// =============================================================================

// Conversation is one conversation record exactly as it appears in the
// export file. Every field is optional in the wild; absent or null fields
// decode to zero values and are repaired later by normalization.
type Conversation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	GizmoID     string  `json:"gizmo_id"`
	MemoryScope string  `json:"memory_scope"`
	CreateTime  float64 `json:"create_time"`
	Mapping     NodeMap `json:"mapping"`
}

// Node is one entry in a conversation's mapping graph. Nodes without a
// message payload (graph roots, pruned branches) carry a nil Message.
type Node struct {
	ID       string       `json:"id"`
	Parent   string       `json:"parent"`
	Children []string     `json:"children"`
	Message  *NodeMessage `json:"message"`
}

// NodeMessage is the message payload attached to a mapping node.
type NodeMessage struct {
	Author  Author  `json:"author"`
	Content Content `json:"content"`
}

// Author identifies the sender of a message.
type Author struct {
	Role string `json:"role"`
}

// Content holds the message body. Parts stay raw because exports mix
// plain strings with multimodal payload objects in the same array.
type Content struct {
	ContentType string            `json:"content_type"`
	Parts       []json.RawMessage `json:"parts"`
}

// =============================================================================
// NODE MAP
// =============================================================================

// NodeMap is the conversation's node graph keyed by node ID. Iteration
// order is the key order of the JSON object in the export file, which is
// a behavioral contract for message extraction: the export writes nodes
// in insertion order, not chronological order, and downstream output
// must follow it.
type NodeMap struct {
	m *orderedmap.OrderedMap[string, Node]
}

// UnmarshalJSON decodes the mapping object while preserving key order.
// A null or absent mapping yields an empty NodeMap.
func (nm *NodeMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		nm.m = nil
		return nil
	}
	m := orderedmap.New[string, Node]()
	if err := m.UnmarshalJSON(data); err != nil {
		return err
	}
	nm.m = m
	return nil
}

// MarshalJSON re-encodes the mapping in its original key order.
func (nm NodeMap) MarshalJSON() ([]byte, error) {
	if nm.m == nil {
		return []byte("null"), nil
	}
	return nm.m.MarshalJSON()
}

// Len returns the number of nodes.
func (nm NodeMap) Len() int {
	if nm.m == nil {
		return 0
	}
	return nm.m.Len()
}

// Oldest returns the first node pair in key order, or nil when empty.
// Walk with pair.Next().
func (nm NodeMap) Oldest() *orderedmap.Pair[string, Node] {
	if nm.m == nil {
		return nil
	}
	return nm.m.Oldest()
}

// Get looks up a node by ID.
func (nm NodeMap) Get(id string) (Node, bool) {
	if nm.m == nil {
		return Node{}, false
	}
	return nm.m.Get(id)
}
