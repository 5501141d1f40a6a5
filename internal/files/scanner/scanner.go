package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rupertdev/houston/internal/checksum"
	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/pkg/houston"
)

// Scanner discovers control documents in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner on the OS filesystem.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanWorkspace walks workspacePath and returns the control documents found,
// sorted by path.
func (s *Scanner) ScanWorkspace(workspacePath string) (houston.ScanResult, error) {
	dir, err := s.fsProvider.Open(workspacePath)
	if err != nil {
		return houston.ScanResult{}, fmt.Errorf("failed to open workspace: %w", err)
	}

	files := []houston.ControlFile{}
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		relPath := filepath.ToSlash(file.RelativePath())
		if file.Info().IsDir() {
			if relPath != "." && strings.HasPrefix(path.Base(relPath), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsControlPath(relPath) {
			return nil
		}

		cf, err := s.processFile(file, relPath)
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", relPath, err)
		}
		files = append(files, cf)
		return nil
	})
	if err != nil {
		return houston.ScanResult{}, err
	}

	slices.SortFunc(files, func(a, b houston.ControlFile) int {
		return strings.Compare(a.Path, b.Path)
	})
	return houston.ScanResult{Files: files}, nil
}

// IsControlPath reports whether a slash-separated path names a control
// document.
func IsControlPath(p string) bool {
	base := p[strings.LastIndex(p, "/")+1:]
	if strings.HasSuffix(base, houston.ControlFileExtension) && base != houston.ControlFileExtension {
		return true
	}
	return base == "control" && (p == "debian/control" || strings.HasSuffix(p, "/debian/control"))
}

func (s *Scanner) processFile(file filesystem.File, relPath string) (houston.ControlFile, error) {
	content, err := file.ReadContent()
	if err != nil {
		return houston.ControlFile{}, fmt.Errorf("failed to read file: %w", err)
	}

	info := file.Info()

	unixPath := relPath
	if !strings.HasPrefix(unixPath, "./") {
		unixPath = "./" + unixPath
	}
	directory := unixPath[:strings.LastIndex(unixPath, "/")+1]

	cf := houston.ControlFile{
		Path:        unixPath,
		Name:        info.Name(),
		Directory:   directory,
		SizeBytes:   info.Size(),
		Checksum:    s.calculator.CalculateNormalized(content),
		ChecksumRaw: s.calculator.CalculateRaw(content),
		ModifiedAt:  info.ModTime(),
	}

	fields, err := control.Parse(content)
	if err != nil {
		cf.ParseError = err.Error()
		return cf, nil
	}
	cf.Source = fields.Text("Source")
	cf.Package = fields.Text("Package")
	return cf, nil
}

var _ houston.ControlScanner = (*Scanner)(nil)
