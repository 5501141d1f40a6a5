package control

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/rupertdev/houston/internal/files/filesystem"
)

// Document binds the codec to a single control file.
// Callers serialize Read and Write calls on the same Document.
type Document struct {
	path       string
	fsProvider filesystem.FileSystemProvider
}

// NewDocument returns a Document backed by the OS filesystem.
func NewDocument(path string) *Document {
	return &Document{
		path:       path,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewDocumentWithFS returns a Document backed by fsProvider.
// Panics if fsProvider is nil.
func NewDocumentWithFS(path string, fsProvider filesystem.FileSystemProvider) *Document {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Document{
		path:       path,
		fsProvider: fsProvider,
	}
}

// Path returns the backing file path.
func (d *Document) Path() string {
	return d.path
}

// Read parses the backing file. A missing file yields empty Fields.
// Read errors are returned unchanged; parse errors carry the path.
func (d *Document) Read() (*Fields, error) {
	data, err := d.fsProvider.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewFields(), nil
		}
		return nil, err
	}

	fields, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = d.path
		}
		return nil, err
	}

	return fields, nil
}

// Write formats fields, replaces the backing file with the result and
// returns the written text. Missing parent directories are created.
func (d *Document) Write(fields *Fields) (string, error) {
	out := Format(fields)

	if err := d.fsProvider.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return "", err
	}
	if err := d.fsProvider.WriteFile(d.path, out, 0o644); err != nil {
		return "", err
	}

	return string(out), nil
}
