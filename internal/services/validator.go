package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rupertdev/houston/internal/checks"
	"github.com/rupertdev/houston/internal/checksum"
	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/pkg/houston"
)

// ValidationService implements the houston.Validator interface.
// Thread-Safety: safe for concurrent Validate calls on different control
// documents. Callers serialize runs on the same document.
type ValidationService struct {
	approver   houston.Approver
	logger     houston.Logger
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	checks     []checks.Check
}

// NewValidationService creates a ValidationService with all dependencies
// injected. It panics on nil dependencies; an empty check list is allowed.
func NewValidationService(
	approver houston.Approver,
	logger houston.Logger,
	calculator checksum.Calculator,
	fsProvider filesystem.FileSystemProvider,
	checkList []checks.Check,
) *ValidationService {
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	return &ValidationService{
		approver:   approver,
		logger:     logger,
		calculator: calculator,
		fsProvider: fsProvider,
		checks:     checkList,
	}
}

// Validate reads the control document, runs the enabled checks, folds their
// diagnostics into a report, and writes amendments back when config.Fix is
// set and the approver agrees.
//
// The returned error covers failures of the run itself (bad configuration, a
// missing or malformed document, I/O, denied approval). Check failures are
// only reported through report.Err.
func (s *ValidationService) Validate(ctx context.Context, config houston.ValidationConfig) (*houston.Report, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	path := config.ResolvedControlPath()
	report := houston.NewReport(path)
	s.logger.Verbose("Validating %s", path)

	if _, err := s.fsProvider.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.Add(houston.Errorf("control", "Control file does not exist"))
			return report, fmt.Errorf("%s: %w", path, houston.ErrControlNotFound)
		}
		return report, fmt.Errorf("failed to stat control document: %w", err)
	}

	doc := control.NewDocumentWithFS(path, s.fsProvider)
	fields, err := doc.Read()
	if err != nil {
		var parseErr *control.ParseError
		if errors.As(err, &parseErr) {
			report.Add(houston.Errorf("control", "%s", parseErr.Error()))
			return report, fmt.Errorf("%w: %w", houston.ErrParseFailed, err)
		}
		return report, fmt.Errorf("failed to read control document: %w", err)
	}

	original := fields.Clone()
	// Format is canonical, so the raw checksum only changes when a value does.
	before := s.calculator.CalculateRaw(control.Format(fields))

	var diags []houston.Diagnostic
	for _, check := range s.checks {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !config.CheckEnabled(check.Name()) {
			s.logger.Verbose("Skipping disabled check %s", check.Name())
			continue
		}

		found := check.Run(fields, config)
		s.logger.Verbose("Check %s: %d diagnostic(s)", check.Name(), len(found))
		diags = append(diags, found...)
	}

	report.Add(Summarize(diags)...)
	formatted := control.Format(fields)
	report.Checksum = s.calculator.CalculateNormalized(formatted)
	report.Amended = s.calculator.CalculateRaw(formatted) != before

	if !report.Amended {
		return report, nil
	}

	amendments := DescribeAmendments(original, fields)
	if !config.Fix {
		s.logger.Info("%s can be amended automatically; rerun with --fix to write:\n%s", path, amendments)
		return report, nil
	}

	approved, err := s.approver.RequestApproval(ctx, path, amendments)
	if err != nil {
		return report, fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return report, fmt.Errorf("%s left unchanged: %w", path, houston.ErrApprovalDenied)
	}

	if _, err := doc.Write(fields); err != nil {
		return report, fmt.Errorf("failed to write control document: %w", err)
	}
	report.Written = true
	s.logger.Info("✓ Wrote amendments to %s", path)

	return report, nil
}

// DescribeAmendments lists the field changes between before and after as a
// Markdown list in write order.
func DescribeAmendments(before, after *control.Fields) string {
	var b strings.Builder
	for _, field := range control.SortedFields(after) {
		old, ok := before.Get(field.Key)
		switch {
		case !ok:
			fmt.Fprintf(&b, "- Add %q: %q\n", field.Key, field.Value.String())
		case old.String() != field.Value.String():
			fmt.Fprintf(&b, "- Change %q: %q to %q\n", field.Key, old.String(), field.Value.String())
		}
	}
	for _, field := range control.SortedFields(before) {
		if !after.Has(field.Key) {
			fmt.Fprintf(&b, "- Remove %q\n", field.Key)
		}
	}
	return b.String()
}

var _ houston.Validator = (*ValidationService)(nil)
