package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/pkg/houston"
	"gopkg.in/yaml.v3"
)

func testOptions() Options {
	return Options{
		PackageName: "com.github.user.app",
		Maintainer:  "Jane Doe <jane@example.com>",
		Summary:     "A small app",
	}
}

// TestCreateWorkspace_Templates checks that every template renders a
// control file already in canonical form and a loadable houston.yaml.
func TestCreateWorkspace_Templates(t *testing.T) {
	templates, err := ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("Expected at least one template")
	}

	for _, name := range templates {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			files, err := NewScaffolder(false).CreateWorkspace(testOptions(), name, dir)
			if err != nil {
				t.Fatalf("CreateWorkspace failed: %v", err)
			}

			want := []string{filepath.Join("debian", "control"), "houston.yaml"}
			if strings.Join(files, ",") != strings.Join(want, ",") {
				t.Errorf("Expected files %v, got %v", want, files)
			}

			raw, err := os.ReadFile(filepath.Join(dir, "debian", "control"))
			if err != nil {
				t.Fatalf("Failed to read control file: %v", err)
			}
			if strings.Contains(string(raw), "{{") {
				t.Errorf("Unreplaced placeholder in control file:\n%s", raw)
			}

			doc := control.NewDocumentWithFS(filepath.Join(dir, "debian", "control"), filesystem.NewOSFileSystem())
			fields, err := doc.Read()
			if err != nil {
				t.Fatalf("Generated control file does not parse: %v", err)
			}
			if got := string(control.Format(fields)); got != string(raw) {
				t.Errorf("Generated control file is not canonical:\n--- got\n%s\n--- canonical\n%s", raw, got)
			}
			if fields.Text("Source") != "com.github.user.app" || fields.Text("Package") != "com.github.user.app" {
				t.Errorf("Unexpected names: Source=%q Package=%q", fields.Text("Source"), fields.Text("Package"))
			}
			if fields.Text("Maintainer") != "Jane Doe <jane@example.com>" {
				t.Errorf("Unexpected Maintainer %q", fields.Text("Maintainer"))
			}
			if !strings.HasPrefix(fields.Text("Description"), "A small app\n") {
				t.Errorf("Unexpected Description %q", fields.Text("Description"))
			}

			cfgData, err := os.ReadFile(filepath.Join(dir, "houston.yaml"))
			if err != nil {
				t.Fatalf("Failed to read houston.yaml: %v", err)
			}
			var cfg struct {
				Package struct {
					Name       string `yaml:"name"`
					Maintainer string `yaml:"maintainer"`
				} `yaml:"package"`
			}
			if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
				t.Fatalf("houston.yaml is not valid YAML: %v", err)
			}
			if cfg.Package.Name != "com.github.user.app" || cfg.Package.Maintainer != "Jane Doe <jane@example.com>" {
				t.Errorf("Unexpected package config: %+v", cfg.Package)
			}
		})
	}
}

func TestCreateWorkspace_RefusesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "houston.yaml")
	if err := os.WriteFile(existing, []byte("package: {}\n"), 0o644); err != nil {
		t.Fatalf("Failed to create existing file: %v", err)
	}

	_, err := NewScaffolder(false).CreateWorkspace(testOptions(), DefaultTemplate, dir)
	if !errors.Is(err, ErrFileExists) {
		t.Fatalf("Expected ErrFileExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "houston.yaml") {
		t.Errorf("Error should name the existing file: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "debian", "control")); !errors.Is(err, os.ErrNotExist) {
		t.Error("No file should be written when a conflict exists")
	}
	data, _ := os.ReadFile(existing)
	if string(data) != "package: {}\n" {
		t.Error("Existing file was modified")
	}
}

func TestCreateWorkspace_AllowsUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "meson.build"), []byte("project('app')\n"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if _, err := NewScaffolder(false).CreateWorkspace(testOptions(), "minimal", dir); err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
}

func TestCreateWorkspace_UnknownTemplate(t *testing.T) {
	_, err := NewScaffolder(false).CreateWorkspace(testOptions(), "nonexistent", t.TempDir())
	if !errors.Is(err, houston.ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), DefaultTemplate) {
		t.Errorf("Error should list available templates: %v", err)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{name: "valid", mutate: func(*Options) {}},
		{name: "missing name", mutate: func(o *Options) { o.PackageName = "" }, wantErr: "package name is required"},
		{name: "name with space", mutate: func(o *Options) { o.PackageName = "my app" }, wantErr: "cannot contain whitespace"},
		{name: "missing maintainer", mutate: func(o *Options) { o.Maintainer = "" }, wantErr: "maintainer is required"},
		{name: "quoted maintainer", mutate: func(o *Options) { o.Maintainer = `"Jane" <j@x>` }, wantErr: "newlines or quotes"},
		{name: "blank summary", mutate: func(o *Options) { o.Summary = "  " }, wantErr: "summary is required"},
		{name: "multiline summary", mutate: func(o *Options) { o.Summary = "a\nb" }, wantErr: "single line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			err := opts.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, houston.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDefaultMaintainer(t *testing.T) {
	env := map[string]string{"DEBFULLNAME": "Jane Doe", "DEBEMAIL": "jane@example.com"}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	if got := DefaultMaintainer(lookup); got != "Jane Doe <jane@example.com>" {
		t.Errorf("Expected maintainer from env, got %q", got)
	}

	delete(env, "DEBEMAIL")
	if got := DefaultMaintainer(lookup); got != "" {
		t.Errorf("Expected empty maintainer without DEBEMAIL, got %q", got)
	}
}
