package control

import (
	"cmp"
	"slices"
)

// FieldOrder is the order in which known fields are written. Fields not in
// this list follow all listed fields.
var FieldOrder = []string{
	"Source",
	"Maintainer",
	"Section",
	"Priority",
	"Standards-Version",
	"Vcs-Git",
	"Vcs-Browser",
	"Homepage",
	"Build-Depends",
	"Build-Depends-Indep",
	"Package",
	"Architecture",
	"Depends",
	"Recommends",
	"Description",
}

var fieldRank = func() map[string]int {
	rank := make(map[string]int, len(FieldOrder))
	for i, key := range FieldOrder {
		rank[key] = i
	}
	return rank
}()

// SortedFields returns the fields of f in write order. The sort is stable:
// fields missing from FieldOrder keep their insertion order.
func SortedFields(f *Fields) []Field {
	out := make([]Field, 0, f.Len())
	for _, key := range f.keys {
		out = append(out, Field{Key: key, Value: f.values[key]})
	}
	slices.SortStableFunc(out, func(a, b Field) int {
		return compareKeys(a.Key, b.Key)
	})
	return out
}

func compareKeys(a, b string) int {
	ra, aKnown := fieldRank[a]
	rb, bKnown := fieldRank[b]
	switch {
	case aKnown && bKnown:
		return cmp.Compare(ra, rb)
	case aKnown:
		return -1
	case bKnown:
		return 1
	default:
		return 0
	}
}
