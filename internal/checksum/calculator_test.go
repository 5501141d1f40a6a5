package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA256Calculator_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, calc.CalculateRaw([]byte(tt.content)))
		})
	}
}

func TestSHA256Calculator_RawSeesLayout(t *testing.T) {
	calc := New()
	a := calc.CalculateRaw([]byte("Source: demo\n"))
	b := calc.CalculateRaw([]byte("Source:  demo\n"))
	require.NotEqual(t, a, b)
}

func TestSHA256Calculator_Normalize(t *testing.T) {
	calc := New()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty",
			content: "",
			want:    "",
		},
		{
			name:    "comments and blank lines dropped",
			content: "# header\nSource: demo\n\n   \nPackage: demo\n",
			want:    "Source: demo\nPackage: demo",
		},
		{
			name:    "alignment collapsed",
			content: "Depends: a,\n         b,\n\t\tc\n",
			want:    "Depends: a,\n b,\n c",
		},
		{
			name:    "internal runs collapsed",
			content: "Source:\t demo   \r\n",
			want:    "Source: demo",
		},
		{
			name:    "indented hash is content",
			content: "Description: x\n # not a comment\n",
			want:    "Description: x\n # not a comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, calc.normalize(tt.content))
		})
	}
}

func TestSHA256Calculator_CalculateNormalized(t *testing.T) {
	calc := New()

	canonical := "Source: demo\nBuild-Depends: a,\n               b\n"
	reformatted := "# generated\nSource:   demo\n\nBuild-Depends: a,\n  b   \n"
	changed := "Source: demo\nBuild-Depends: a,\n               c\n"

	require.Equal(t, calc.CalculateNormalized([]byte(canonical)), calc.CalculateNormalized([]byte(reformatted)))
	require.NotEqual(t, calc.CalculateNormalized([]byte(canonical)), calc.CalculateNormalized([]byte(changed)))
	require.Len(t, calc.CalculateNormalized([]byte(canonical)), 64)
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		calc.CalculateNormalized([]byte("# only comments\n\n")),
	)
}

func TestSHA256Calculator_ConcurrentUse(t *testing.T) {
	calc := New()
	content := []byte("Source: demo\n")
	want := calc.CalculateNormalized(content)

	done := make(chan string, 10)
	for i := 0; i < 10; i++ {
		go func() { done <- calc.CalculateNormalized(content) }()
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, want, <-done)
	}
}
