package params

import (
	"fmt"
	"strings"
)

// Assignment is a single field assignment from the command line.
type Assignment struct {
	Key   string
	Value string
}

// ParseAssignments converts "Key=Value" strings into assignments, keeping
// their order. Later assignments to the same key are kept; the caller
// applies them in order so the last one wins.
//
// Example:
//
//	assignments, err := ParseAssignments([]string{"Section=utils", "Priority=optional"})
func ParseAssignments(pairs []string) ([]Assignment, error) {
	result := make([]Assignment, 0, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("assignment %q is not in Key=Value format (example: Section=utils)", pair)
		}

		if err := validateFieldName(key); err != nil {
			return nil, fmt.Errorf("assignment %q: %w", pair, err)
		}

		result = append(result, Assignment{Key: key, Value: value})
	}

	return result, nil
}

func validateFieldName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty key")
	case strings.HasPrefix(name, "#"), strings.HasPrefix(name, "-"):
		return fmt.Errorf("field name %q cannot start with %q", name, name[:1])
	case strings.ContainsAny(name, ": \t\r\n"):
		return fmt.Errorf("field name %q cannot contain whitespace or ':'", name)
	}
	return nil
}
