package params

import (
	"strings"
	"testing"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Assignment
		wantErr string
	}{
		{
			name:  "single pair",
			input: []string{"Section=utils"},
			want:  []Assignment{{Key: "Section", Value: "utils"}},
		},
		{
			name:  "order is kept",
			input: []string{"Priority=optional", "Section=utils", "Homepage=https://example.com"},
			want: []Assignment{
				{Key: "Priority", Value: "optional"},
				{Key: "Section", Value: "utils"},
				{Key: "Homepage", Value: "https://example.com"},
			},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []Assignment{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []Assignment{},
		},
		{
			name:  "empty value",
			input: []string{"Vcs-Git="},
			want:  []Assignment{{Key: "Vcs-Git", Value: ""}},
		},
		{
			name:  "value with equals",
			input: []string{"X-Env=a=b"},
			want:  []Assignment{{Key: "X-Env", Value: "a=b"}},
		},
		{
			name:  "value with special chars",
			input: []string{"Maintainer=Jane Doe <jane@example.com>"},
			want:  []Assignment{{Key: "Maintainer", Value: "Jane Doe <jane@example.com>"}},
		},
		{
			name:  "duplicate keys are all kept",
			input: []string{"Section=a", "Section=b"},
			want:  []Assignment{{Key: "Section", Value: "a"}, {Key: "Section", Value: "b"}},
		},
		{
			name:    "missing equals",
			input:   []string{"noequalssign"},
			wantErr: "not in Key=Value format",
		},
		{
			name:    "empty key",
			input:   []string{"=value"},
			wantErr: "empty key",
		},
		{
			name:    "comment marker",
			input:   []string{"#Section=utils"},
			wantErr: "cannot start with",
		},
		{
			name:    "leading dash",
			input:   []string{"-Section=utils"},
			wantErr: "cannot start with",
		},
		{
			name:    "colon in name",
			input:   []string{"Build:Depends=x"},
			wantErr: "cannot contain whitespace or ':'",
		},
		{
			name:    "space in name",
			input:   []string{"Build Depends=x"},
			wantErr: "cannot contain whitespace or ':'",
		},
		{
			name:    "error on second pair",
			input:   []string{"Section=utils", "bad"},
			wantErr: "not in Key=Value format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.input)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Length mismatch: got %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Assignment %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
