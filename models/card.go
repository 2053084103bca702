// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package models

import "time"

// Card is the local projection of one study card. CardGUID is the stable
// cross-system key. The server is authoritative for non-protected fields; the
// local store is authoritative for protected fields and for suspend/bury/tag
// state until those are pushed.
type Card struct {
	CardGUID    string            `json:"card_guid"`
	DeckID      string            `json:"deck_id"`
	NoteType    string            `json:"note_type"`
	Fields      map[string]string `json:"fields"`
	Tags        []string          `json:"tags,omitempty"`
	SubdeckPath string            `json:"subdeck_path,omitempty"`
	IsSuspended bool              `json:"is_suspended"`
	IsBuried    bool              `json:"is_buried"`
	Deleted     bool              `json:"deleted"`
	UpdatedAt   time.Time         `json:"updated_at,omitempty"`
}

// Field returns the value of name and whether it exists on the card.
func (c *Card) Field(name string) (string, bool) {
	if c == nil || c.Fields == nil {
		return "", false
	}
	v, ok := c.Fields[name]
	return v, ok
}

// SetField sets name to value, allocating the field map on first use.
func (c *Card) SetField(name, value string) {
	if c.Fields == nil {
		c.Fields = make(map[string]string)
	}
	c.Fields[name] = value
}

// HasTag reports whether the card carries tag.
func (c *Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends tag if not already present.
func (c *Card) AddTag(tag string) {
	if tag == "" || c.HasTag(tag) {
		return
	}
	c.Tags = append(c.Tags, tag)
}

// RemoveTag deletes tag, preserving the order of the rest.
func (c *Card) RemoveTag(tag string) {
	out := c.Tags[:0]
	for _, t := range c.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	c.Tags = out
}

// NoteType describes a card template definition. Note types are written
// verbatim on sync and are never subject to protected-field logic.
type NoteType struct {
	ID        string   `json:"note_type_id"`
	Name      string   `json:"name"`
	Fields    []string `json:"fields"`
	Templates string   `json:"templates,omitempty"`
	CSS       string   `json:"css,omitempty"`
}

// MediaFile is one content-addressed media entry. Hash is the SHA-256 of the
// file content; two files with the same hash are the same file.
type MediaFile struct {
	FileName string `json:"file_name"`
	FileHash string `json:"file_hash"`
	Size     int64  `json:"size,omitempty"`
	URL      string `json:"url,omitempty"`
}
