package control

import (
	"slices"
	"strings"
)

// Format renders fields as a control document in FieldOrder.
//
// Each field is written according to its Value.Kind: simple fields on one
// line, folded lists sorted with one element per line aligned after the key
// and a blank line after the list, multiline blocks with every line indented by a
// single space.
func Format(fields *Fields) []byte {
	var b strings.Builder
	for _, field := range SortedFields(fields) {
		writeField(&b, field.Key, field.Value)
	}
	return []byte(b.String())
}

func writeField(b *strings.Builder, key string, v Value) {
	switch v.Kind() {
	case Folded:
		writeFolded(b, key, v.items)
	case Multiline:
		b.WriteString(key)
		b.WriteString(":")
		for i, line := range strings.Split(v.text, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(" ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	default:
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(v.text)
		b.WriteString("\n")
	}
}

func writeFolded(b *strings.Builder, key string, items []string) {
	items = slices.Clone(items)
	slices.Sort(items)

	b.WriteString(key)
	b.WriteString(": ")
	if len(items) > 0 {
		b.WriteString(items[0])
	}
	if len(items) < 2 {
		b.WriteString("\n")
		return
	}

	pad := strings.Repeat(" ", len(key)+2)
	b.WriteString(",\n")
	for i, item := range items[1:] {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(pad)
		b.WriteString(item)
	}
	b.WriteString("\n\n")
}
