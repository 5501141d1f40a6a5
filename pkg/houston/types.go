package houston

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"
)

// ValidationConfig contains all parameters needed for a validation run.
type ValidationConfig struct {
	// WorkspacePath is the build workspace holding the package sources
	WorkspacePath string

	// ControlPath is the control document, relative to WorkspacePath unless absolute
	ControlPath string

	// PackageName is the expected Source and Package name
	PackageName string

	// Maintainer is the expected "Name <email>" maintainer
	Maintainer string

	// Architecture is the default for binary packages that declare none
	Architecture string

	// BuildDepends lists build dependencies that must be present
	BuildDepends []string

	// DisabledChecks names checks that are skipped
	DisabledChecks []string

	// Fix writes amended fields back after approval
	Fix bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the ValidationConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *ValidationConfig) Validate() error {
	var errs []error

	if c.WorkspacePath == "" {
		errs = append(errs, fmt.Errorf("WorkspacePath is required: %w", ErrInvalidConfig))
	}

	if c.ControlPath == "" {
		errs = append(errs, fmt.Errorf("ControlPath is required: %w", ErrInvalidConfig))
	}

	for _, dep := range c.BuildDepends {
		if dep == "" {
			errs = append(errs, fmt.Errorf("BuildDepends cannot contain empty entries: %w", ErrInvalidConfig))
			break
		}
	}

	return errors.Join(errs...)
}

// ResolvedControlPath returns the control document path joined to the workspace.
func (c *ValidationConfig) ResolvedControlPath() string {
	if filepath.IsAbs(c.ControlPath) {
		return c.ControlPath
	}
	return filepath.Join(c.WorkspacePath, c.ControlPath)
}

// CheckEnabled reports whether the named check should run.
func (c *ValidationConfig) CheckEnabled(name string) bool {
	return !slices.Contains(c.DisabledChecks, name)
}

// Validator runs the control checks against a workspace.
type Validator interface {
	// Validate reads the control document, runs the checks and, when
	// config.Fix is set and approval is granted, writes amendments back.
	// A report is returned even when checks fail; its Err method tells
	// whether the run failed.
	Validate(ctx context.Context, config ValidationConfig) (*Report, error)
}

// ControlFile describes a control document found in a workspace.
type ControlFile struct {
	// Path is the Unix-style path relative to the workspace, with a "./" prefix
	Path string `json:"path"`

	// Name is the base file name
	Name string `json:"name"`

	// Directory is the Unix-style parent directory, with trailing slash
	Directory string `json:"directory"`

	// SizeBytes is the file size
	SizeBytes int64 `json:"size_bytes"`

	// Checksum is the normalized checksum (ignores comments and layout)
	Checksum string `json:"checksum"`

	// ChecksumRaw is the checksum of the bytes on disk
	ChecksumRaw string `json:"checksum_raw"`

	// ModifiedAt is the file modification time
	ModifiedAt time.Time `json:"modified_at"`

	// Source is the Source field, if any
	Source string `json:"source,omitempty"`

	// Package is the Package field, if any
	Package string `json:"package,omitempty"`

	// ParseError is set when the document could not be parsed
	ParseError string `json:"parse_error,omitempty"`
}

// ControlScanner discovers control documents in a workspace.
// Implementations must be safe for concurrent use by multiple goroutines.
type ControlScanner interface {
	// ScanWorkspace walks a workspace and returns the control documents found.
	ScanWorkspace(workspacePath string) (ScanResult, error)
}

// ScanResult contains the results of scanning a workspace.
type ScanResult struct {
	Files []ControlFile `json:"files"`
}
