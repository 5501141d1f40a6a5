package control

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func FuzzParse(f *testing.F) {
	seedFiles, err := filepath.Glob("testdata/*.control")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte(","))
	f.Add([]byte(":"))
	f.Add([]byte("A: b,\n${c:d},\n e"))
	f.Add([]byte("A:\n \n\t:"))

	f.Fuzz(func(t *testing.T, data []byte) {
		fields, err := Parse(data)
		if err != nil {
			return
		}

		for _, field := range SortedFields(fields) {
			if field.Value.IsList() && !slices.IsSorted(field.Value.Items()) {
				t.Fatalf("list %q is not sorted: %q", field.Key, field.Value.Items())
			}
		}

		if !bytes.Equal(Format(fields), Format(fields.Clone())) {
			t.Fatalf("Format is not deterministic for %q", data)
		}
	})
}

func BenchmarkParse(b *testing.B) {
	data, err := os.ReadFile("testdata/elementary-app.control")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	data, err := os.ReadFile("testdata/elementary-app.control")
	if err != nil {
		b.Fatal(err)
	}
	fields, err := Parse(data)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format(fields)
	}
}
