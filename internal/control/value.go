package control

import (
	"encoding/json"
	"slices"
	"strings"
)

// Value is the value of a single control field.
//
// A Value is either text or a list. Text without a newline is written as a
// Simple field, text with embedded newlines as a Multiline block, and a list
// as a Folded field. The zero Value is empty text.
type Value struct {
	text  string
	items []string
	list  bool
}

// Text returns a text value. Embedded newlines make it a multiline block.
func Text(s string) Value {
	return Value{text: s}
}

// List returns a folded list value holding a copy of items.
func List(items ...string) Value {
	return Value{items: slices.Clone(items), list: true}
}

// Kind reports the encoding used to write v.
func (v Value) Kind() LineType {
	switch {
	case v.list:
		return Folded
	case strings.Contains(v.text, "\n"):
		return Multiline
	default:
		return Simple
	}
}

// IsList reports whether v is a folded list.
func (v Value) IsList() bool {
	return v.list
}

// Items returns a copy of the list elements, or nil for text values.
func (v Value) Items() []string {
	if !v.list {
		return nil
	}
	return slices.Clone(v.items)
}

// String returns the text, or the list elements joined with ", ".
func (v Value) String() string {
	if v.list {
		return strings.Join(v.items, ", ")
	}
	return v.text
}

// MarshalJSON encodes lists as JSON arrays and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.list {
		items := v.items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(v.text)
}

// appendItem adds item to v and keeps the result sorted. Text is first
// split on commas, so a value read as "a, b" followed by a folded
// continuation becomes the list [a b item].
func appendItem(v Value, item string) Value {
	var items []string
	if v.list {
		items = slices.Clone(v.items)
	} else {
		items = splitList(v.text)
	}
	items = append(items, item)
	slices.Sort(items)
	return Value{items: items, list: true}
}

// appendLine extends v with one more physical line.
func appendLine(v Value, line string) Value {
	if v.list {
		return appendItem(v, line)
	}
	return Text(v.text + "\n" + line)
}

// splitList splits a comma separated string into trimmed, non-empty items.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
