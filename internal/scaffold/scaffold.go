package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rupertdev/houston/pkg/houston"
)

//go:embed all:templates
var templatesFS embed.FS

// DefaultTemplate is used when no template is named.
const DefaultTemplate = "elementary"

// ErrFileExists is returned when a template file would overwrite an existing file.
var ErrFileExists = errors.New("file already exists")

// Options are the values substituted into template files.
type Options struct {
	PackageName string
	Maintainer  string
	Summary     string
}

// Validate rejects values that would produce a broken control file or
// houston.yaml.
func (o Options) Validate() error {
	var errs []error

	switch {
	case o.PackageName == "":
		errs = append(errs, fmt.Errorf("package name is required: %w", houston.ErrInvalidConfig))
	case strings.ContainsAny(o.PackageName, " \t\r\n:,\""):
		errs = append(errs, fmt.Errorf("package name %q cannot contain whitespace, ':', ',' or quotes: %w", o.PackageName, houston.ErrInvalidConfig))
	}

	if o.Maintainer == "" {
		errs = append(errs, fmt.Errorf("maintainer is required: %w", houston.ErrInvalidConfig))
	} else if strings.ContainsAny(o.Maintainer, "\r\n\"") {
		errs = append(errs, fmt.Errorf("maintainer cannot contain newlines or quotes: %w", houston.ErrInvalidConfig))
	}

	if strings.TrimSpace(o.Summary) == "" {
		errs = append(errs, fmt.Errorf("summary is required: %w", houston.ErrInvalidConfig))
	} else if strings.ContainsAny(o.Summary, "\r\n") {
		errs = append(errs, fmt.Errorf("summary must be a single line: %w", houston.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Scaffolder writes a starter workspace from an embedded template.
type Scaffolder struct {
	verbose bool
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(verbose bool) *Scaffolder {
	return &Scaffolder{verbose: verbose}
}

// CreateWorkspace writes the files of templateName into targetPath and
// returns their paths relative to targetPath. Nothing is written when any
// of the files already exists.
func (s *Scaffolder) CreateWorkspace(opts Options, templateName, targetPath string) ([]string, error) {
	templatePath := path.Join("templates", templateName)
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		available, _ := ListTemplates()
		return nil, fmt.Errorf("template %q not found (available: %s): %w",
			templateName, strings.Join(available, ", "), houston.ErrInvalidConfig)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	files, err := templateFiles(templatePath)
	if err != nil {
		return nil, err
	}

	var existing []string
	for _, rel := range files {
		if _, err := os.Stat(filepath.Join(targetPath, rel)); err == nil {
			existing = append(existing, rel)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to check %s: %w", rel, err)
		}
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%s in %s: %w\n\nhouston init never overwrites files. Remove them or choose another directory.",
			strings.Join(existing, ", "), targetPath, ErrFileExists)
	}

	s.logVerbose("Creating workspace for %s at %s with template %s", opts.PackageName, targetPath, templateName)

	replacer := strings.NewReplacer(
		"{{PACKAGE_NAME}}", opts.PackageName,
		"{{MAINTAINER}}", opts.Maintainer,
		"{{SUMMARY}}", strings.TrimSpace(opts.Summary),
	)

	for _, rel := range files {
		content, err := templatesFS.ReadFile(path.Join(templatePath, filepath.ToSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("failed to read template file %s: %w", rel, err)
		}

		target := filepath.Join(targetPath, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}

		s.logVerbose("Creating file: %s", rel)
		if err := os.WriteFile(target, []byte(replacer.Replace(string(content))), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", target, err)
		}
	}

	return files, nil
}

// templateFiles lists the regular files of a template, relative to its root
// and sorted.
func templateFiles(templatePath string) ([]string, error) {
	var files []string
	err := fs.WalkDir(templatesFS, templatePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, templatePath+"/")
		files = append(files, filepath.FromSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list template %s: %w", templatePath, err)
	}
	slices.Sort(files)
	return files, nil
}

func (s *Scaffolder) logVerbose(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}

	return templates, nil
}

// DefaultMaintainer builds "Full Name <email>" from the DEBFULLNAME and
// DEBEMAIL variables used by the Debian packaging tools. It returns "" when
// either is unset.
func DefaultMaintainer(lookup func(string) (string, bool)) string {
	name, _ := lookup("DEBFULLNAME")
	email, _ := lookup("DEBEMAIL")
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return ""
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
