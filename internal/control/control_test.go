package control

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		index int
		want  LineType
	}{
		{
			name:  "lone field",
			lines: []string{"Source: demo"},
			index: 0,
			want:  Simple,
		},
		{
			name:  "trailing comma on current",
			lines: []string{"Depends: a,", " b"},
			index: 0,
			want:  Folded,
		},
		{
			name:  "last list element has no comma",
			lines: []string{"Depends: a,", " b"},
			index: 1,
			want:  Folded,
		},
		{
			name:  "comma with trailing whitespace",
			lines: []string{"Depends: a,  \t", " b"},
			index: 1,
			want:  Folded,
		},
		{
			name:  "next line indented",
			lines: []string{"Description: summary", " body"},
			index: 0,
			want:  Multiline,
		},
		{
			name:  "current line indented",
			lines: []string{"Description: summary", " body"},
			index: 1,
			want:  Multiline,
		},
		{
			name:  "tab indentation",
			lines: []string{"Description: summary", "\tbody"},
			index: 0,
			want:  Multiline,
		},
		{
			name:  "folded wins over multiline",
			lines: []string{"Depends: a,", " b", "Package: x"},
			index: 1,
			want:  Folded,
		},
		{
			name:  "field after list is simple again",
			lines: []string{"Depends: a,", " b", "Package: x"},
			index: 2,
			want:  Simple,
		},
		{
			name:  "out of range is simple",
			lines: []string{"Source: demo"},
			index: 5,
			want:  Simple,
		},
		{
			name:  "empty input",
			lines: nil,
			index: 0,
			want:  Simple,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyLine(tt.lines, tt.index))
		})
	}
}

func TestLineType_String(t *testing.T) {
	require.Equal(t, "simple", Simple.String())
	require.Equal(t, "folded", Folded.String())
	require.Equal(t, "multiline", Multiline.String())
	require.Equal(t, "LineType(9)", LineType(9).String())
}

func TestValue_Kind(t *testing.T) {
	require.Equal(t, Simple, Text("libc6").Kind())
	require.Equal(t, Simple, Value{}.Kind())
	require.Equal(t, Multiline, Text("a\nb").Kind())
	require.Equal(t, Folded, List("a").Kind())
	require.Equal(t, Folded, List().Kind())
}

func TestValue_Accessors(t *testing.T) {
	items := []string{"a", "b"}
	v := List(items...)
	items[0] = "changed"

	require.True(t, v.IsList())
	require.Equal(t, []string{"a", "b"}, v.Items(), "List copies its input")
	require.Equal(t, "a, b", v.String())

	got := v.Items()
	got[0] = "changed"
	require.Equal(t, []string{"a", "b"}, v.Items(), "Items returns a copy")

	text := Text("x")
	require.False(t, text.IsList())
	require.Nil(t, text.Items())
	require.Equal(t, "x", text.String())
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(List("a", "b"))
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(data))

	data, err = json.Marshal(List())
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	data, err = json.Marshal(Text("line one\nline two"))
	require.NoError(t, err)
	require.JSONEq(t, `"line one\nline two"`, string(data))
}

func TestFields(t *testing.T) {
	f := NewFields()
	f.Set("Package", Text("demo"))
	f.Set("Depends", List("libc6"))
	f.Set("Package", Text("demo2"))

	require.Equal(t, 2, f.Len())
	require.Equal(t, []string{"Package", "Depends"}, f.Keys(), "reassignment keeps position")
	require.Equal(t, "demo2", f.Text("Package"))
	require.True(t, f.Has("Depends"))
	require.False(t, f.Has("Source"))
	require.Equal(t, "", f.Text("Source"))
	require.Nil(t, f.List("Source"))

	v, ok := f.Get("Depends")
	require.True(t, ok)
	require.Equal(t, List("libc6"), v)

	f.Delete("Package")
	f.Delete("Missing")
	require.Equal(t, []string{"Depends"}, f.Keys())
	require.Len(t, f.Map(), 1)
}

func TestFields_ZeroValue(t *testing.T) {
	var f Fields
	f.Set("Source", Text("demo"))
	require.Equal(t, "demo", f.Text("Source"))
}

func TestFields_ListSplitsText(t *testing.T) {
	f := NewFields()
	f.Set("Depends", Text("${misc:Depends}, libc6 (>= 2.0),, "))
	require.Equal(t, []string{"${misc:Depends}", "libc6 (>= 2.0)"}, f.List("Depends"))
}

func TestFields_Clone(t *testing.T) {
	f := NewFields()
	f.Set("Depends", List("a"))

	c := f.Clone()
	c.Set("Depends", appendItem(List("a"), "b"))
	c.Set("Source", Text("x"))

	require.Equal(t, []string{"a"}, f.List("Depends"))
	require.False(t, f.Has("Source"))
	require.Equal(t, []string{"a", "b"}, c.List("Depends"))
}

func TestFields_MarshalJSON(t *testing.T) {
	f := NewFields()
	f.Set("Package", Text("demo"))
	f.Set("Source", Text("demo-src"))
	f.Set("Depends", List("a", "b"))

	data, err := json.Marshal(f)
	require.NoError(t, err)
	require.Equal(t, `{"Source":"demo-src","Package":"demo","Depends":["a","b"]}`, string(data))
}

func TestSortedFields(t *testing.T) {
	f := NewFields()
	f.Set("Description", Text("d"))
	f.Set("X-Zeta", Text("z"))
	f.Set("Package", Text("p"))
	f.Set("X-Alpha", Text("a"))
	f.Set("Source", Text("s"))

	var keys []string
	for _, field := range SortedFields(f) {
		keys = append(keys, field.Key)
	}
	require.Equal(t, []string{"Source", "Package", "Description", "X-Zeta", "X-Alpha"}, keys)
}

func TestParse_Simple(t *testing.T) {
	fields, err := Parse([]byte("Source: demo\nPriority:   optional  \n"))
	require.NoError(t, err)
	require.Equal(t, "demo", fields.Text("Source"))
	require.Equal(t, "optional", fields.Text("Priority"))
}

func TestParse_LastAssignmentWins(t *testing.T) {
	fields, err := Parse([]byte("Section: a\nSection: b\n"))
	require.NoError(t, err)
	require.Equal(t, 1, fields.Len())
	require.Equal(t, "b", fields.Text("Section"))
}

func TestParse_ValueKeepsLaterColons(t *testing.T) {
	fields, err := Parse([]byte("Homepage: https://example.com:8080/app\n"))
	require.NoError(t, err)
	require.Equal(t, "https://example.com:8080/app", fields.Text("Homepage"))
}

func TestParse_FoldedListIsSorted(t *testing.T) {
	input := "Build-Depends: valac,\n meson,\n debhelper (>= 10),\n libgtk-3-dev\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)

	v, ok := fields.Get("Build-Depends")
	require.True(t, ok)
	require.True(t, v.IsList())
	require.Equal(t, []string{"debhelper (>= 10)", "libgtk-3-dev", "meson", "valac"}, v.Items())
}

func TestParse_VariableIsNotAKey(t *testing.T) {
	input := "Package: foo\nDepends: ${shlibs:Depends}, libc6\n libfoo,\nDescription: foo\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)

	deps := fields.List("Depends")
	require.Equal(t, "${shlibs:Depends}", deps[0])
	require.Equal(t, []string{"${shlibs:Depends}", "libc6", "libfoo"}, deps)

	for _, key := range fields.Keys() {
		require.NotContains(t, key, "$")
	}
}

func TestParse_VariableContinuationLine(t *testing.T) {
	input := "Depends: libc6,\n${misc:Depends},\n${shlibs:Depends}\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, []string{"${misc:Depends}", "${shlibs:Depends}", "libc6"}, fields.List("Depends"))
	require.Equal(t, []string{"Depends"}, fields.Keys())
}

func TestParse_IndentedColonIsContent(t *testing.T) {
	input := "Description: summary\n Note: this is body text\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, "summary\nNote: this is body text", fields.Text("Description"))
	require.False(t, fields.Has("Note"))
}

func TestParse_MultilineReconstruction(t *testing.T) {
	input := "Description: A short summary\n A longer paragraph\n continued here\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)

	v, ok := fields.Get("Description")
	require.True(t, ok)
	require.Equal(t, Multiline, v.Kind())
	require.Equal(t, "A short summary\nA longer paragraph\ncontinued here", v.String())
}

func TestParse_MultilineOntoList(t *testing.T) {
	// "Recommends" is open as a list when the indented block follows.
	input := "Recommends: b,\n a\n\n c\nPackage: x\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, fields.List("Recommends"))
}

func TestParse_BlankLinesDoNotSplitContinuations(t *testing.T) {
	input := "Description: summary\n\n   \n body\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, "summary\nbody", fields.Text("Description"))
}

func TestParse_CommentsAreDropped(t *testing.T) {
	input := "# leading comment\nSource: demo\n#Package: hidden\nSection: misc\n"
	fields, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Equal(t, []string{"Source", "Section"}, fields.Keys())
}

func TestParse_LineWithoutColon(t *testing.T) {
	fields, err := Parse([]byte("Source: demo\njust some words\n"))
	require.NoError(t, err)
	require.Equal(t, "just some words", fields.Text(""))
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only a comment\n"} {
		fields, err := Parse([]byte(input))
		require.NoError(t, err)
		require.Equal(t, 0, fields.Len())
	}
}

func TestParse_OrphanContinuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{name: "indented first line", input: "\n  orphan\nSource: x\n", line: 2},
		{name: "list element first", input: "foo,\nSource: x\n", line: 1},
		{name: "variable first", input: "# c\n${shlibs:Depends},\n", line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrOrphanContinuation))

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestFormat_Simple(t *testing.T) {
	f := NewFields()
	f.Set("Package", Text("demo"))
	require.Equal(t, "Package: demo\n", string(Format(f)))
}

func TestFormat_SingleElementList(t *testing.T) {
	f := NewFields()
	f.Set("Depends", List("libc6"))
	require.Equal(t, "Depends: libc6\n", string(Format(f)))
}

func TestFormat_EmptyList(t *testing.T) {
	f := NewFields()
	f.Set("Depends", List())
	require.Equal(t, "Depends: \n", string(Format(f)))
}

func TestFormat_FoldedList(t *testing.T) {
	f := NewFields()
	f.Set("Depends", List("a", "b", "c"))
	require.Equal(t, "Depends: a,\n         b,\n         c\n\n", string(Format(f)))
}

func TestFormat_FoldedListIsSorted(t *testing.T) {
	v := List("zlib", "a", "m")
	f := NewFields()
	f.Set("Depends", v)

	require.Equal(t, "Depends: a,\n         m,\n         zlib\n\n", string(Format(f)))
	require.Equal(t, []string{"zlib", "a", "m"}, v.Items(), "Format leaves the value untouched")
}

func TestFormat_Multiline(t *testing.T) {
	f := NewFields()
	f.Set("Description", Text("summary\nline one\nline two"))
	require.Equal(t, "Description: summary\n line one\n line two\n", string(Format(f)))
}

func TestFormat_Ordering(t *testing.T) {
	f := NewFields()
	f.Set("Description", Text("x"))
	f.Set("Package", Text("y"))
	f.Set("Source", Text("z"))
	require.Equal(t, "Source: z\nPackage: y\nDescription: x\n", string(Format(f)))
}

func TestFormat_UnlistedKeysKeepInsertionOrder(t *testing.T) {
	f := NewFields()
	f.Set("X-B", Text("1"))
	f.Set("Package", Text("p"))
	f.Set("X-A", Text("2"))
	require.Equal(t, "Package: p\nX-B: 1\nX-A: 2\n", string(Format(f)))
}

func TestFormat_Empty(t *testing.T) {
	require.Empty(t, Format(NewFields()))
}
