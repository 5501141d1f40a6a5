package houston

import (
	"fmt"

	"github.com/google/uuid"
)

// Report collects the outcome of one validation run.
type Report struct {
	// ID identifies the run.
	ID uuid.UUID `json:"id"`

	// Path is the control document that was validated.
	Path string `json:"path"`

	// Diagnostics in the order they were reported.
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Amended is set when checks changed fields.
	Amended bool `json:"amended"`

	// Written is set when the amended fields were written back.
	Written bool `json:"written"`

	// Checksum is the normalized checksum of the document after checks.
	Checksum string `json:"checksum,omitempty"`
}

// NewReport returns an empty report for path with a fresh run ID.
func NewReport(path string) *Report {
	return &Report{
		ID:          uuid.New(),
		Path:        path,
		Diagnostics: []Diagnostic{},
	}
}

// Add appends diagnostics to the report.
func (r *Report) Add(diags ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, diags...)
}

// Count returns the number of diagnostics with the given severity.
func (r *Report) Count(severity Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// Failed reports whether any diagnostic is an error.
func (r *Report) Failed() bool {
	return r.Count(SeverityError) > 0
}

// Err returns ErrValidationFailed when the report failed, nil otherwise.
func (r *Report) Err() error {
	if !r.Failed() {
		return nil
	}
	return fmt.Errorf("%s: %d error(s): %w", r.Path, r.Count(SeverityError), ErrValidationFailed)
}
