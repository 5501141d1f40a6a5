package filesystem

import (
	"io/fs"
)

// FileInfo is fs.FileInfo.
type FileInfo = fs.FileInfo

// File is an entry visited by Directory.Walk.
type File interface {
	// Path is the absolute path of the entry.
	Path() string

	// RelativePath is relative to the walked directory, using the
	// platform separator.
	RelativePath() string

	Info() FileInfo

	ReadContent() ([]byte, error)
}

// Directory is a workspace root that can be walked.
type Directory interface {
	Path() string

	// Walk visits the directory itself and every entry below it in lexical
	// order. Returning fs.SkipDir for a directory skips its contents; any
	// other error stops the walk and is returned. A panic in fn is returned
	// as an error.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the I/O surface used by the control codec, the
// workspace scanner and the validator.
type FileSystemProvider interface {
	// Open returns the directory at path, or an error if path is missing or
	// is not a directory.
	Open(path string) (Directory, error)

	// ReadFile returns the contents of path. A missing path yields an error
	// matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)

	Stat(path string) (FileInfo, error)

	// WriteFile replaces the contents of path. Readers never observe a
	// partially written file.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	MkdirAll(path string, perm fs.FileMode) error
}
