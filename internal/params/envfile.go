package params

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ParseEnvFile parses environment file content in .env format.
// It returns a map of key-value pairs.
//
// Parsing follows godotenv: comments, quoting, "export" prefixes and
// ${VAR} expansion behave as they do for a .env file loaded at startup.
// Entries without a key are rejected.
func ParseEnvFile(content []byte) (map[string]string, error) {
	result, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("invalid env file: %w", err)
	}

	if _, ok := result[""]; ok {
		return nil, fmt.Errorf("invalid env file: empty key")
	}

	return result, nil
}

// LoadEnvFiles reads and merges env files. Values from later files
// override earlier ones.
func LoadEnvFiles(paths []string) (map[string]string, error) {
	merged := make(map[string]string)

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}

		values, err := ParseEnvFile(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		for k, v := range values {
			merged[k] = v
		}
	}

	return merged, nil
}
