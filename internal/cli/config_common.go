package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rupertdev/houston/internal/config"
	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/internal/params"
	"github.com/rupertdev/houston/pkg/houston"
)

// loadProjectConfig loads .env and houston.yaml from the workspace.
// A missing houston.yaml yields an empty config.
func loadProjectConfig(workspace string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(workspace)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// envLookup returns a lookup that prefers values from the env files (later
// files winning) and falls back to the process environment.
func envLookup(envFiles []string, verbose bool) (func(string) (string, bool), error) {
	if verbose {
		for _, f := range envFiles {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loading environment from file: %s\n", f)
		}
	}

	fileValues, err := params.LoadEnvFiles(envFiles)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nTip: Verify the file format (KEY=VALUE): %w", err, houston.ErrInvalidConfig)
	}

	return func(key string) (string, bool) {
		if v, ok := fileValues[key]; ok {
			return v, true
		}
		return os.LookupEnv(key)
	}, nil
}

// openControl reads an existing control document. A missing file is
// ErrControlNotFound and a malformed one ErrParseFailed.
func openControl(fsProvider filesystem.FileSystemProvider, path string) (*control.Document, *control.Fields, error) {
	if _, err := fsProvider.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%s: %w", path, houston.ErrControlNotFound)
		}
		return nil, nil, err
	}

	doc := control.NewDocumentWithFS(path, fsProvider)
	fields, err := doc.Read()
	if err != nil {
		var parseErr *control.ParseError
		if errors.As(err, &parseErr) {
			return nil, nil, fmt.Errorf("%w: %w", houston.ErrParseFailed, err)
		}
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return doc, fields, nil
}
