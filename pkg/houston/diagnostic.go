package houston

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// String returns the lowercase name used in reports.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses "info", "warn" (or "warning") and "error".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q: %w", s, ErrInvalidConfig)
	}
}

// NamespaceDiagnostic is the UUID namespace for diagnostic fingerprints.
var NamespaceDiagnostic = uuid.NewSHA1(uuid.NameSpaceURL, []byte("houston/diagnostic/v1"))

// Diagnostic is a single finding reported by a check.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Check    string   `json:"check,omitempty"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Body     string   `json:"body,omitempty"`
}

// Infof returns an info diagnostic for check.
func Infof(check, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityInfo, Check: check, Message: fmt.Sprintf(format, args...)}
}

// Warnf returns a warn diagnostic for check.
func Warnf(check, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityWarn, Check: check, Message: fmt.Sprintf(format, args...)}
}

// Errorf returns an error diagnostic for check.
func Errorf(check, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityError, Check: check, Message: fmt.Sprintf(format, args...)}
}

// WithField returns a copy of d attributed to a control field.
func (d Diagnostic) WithField(field string) Diagnostic {
	d.Field = field
	return d
}

// WithBody returns a copy of d carrying a detailed body.
func (d Diagnostic) WithBody(body string) Diagnostic {
	d.Body = body
	return d
}

// Fingerprint is a deterministic identity for the diagnostic: the same
// check, field and message always produce the same UUID, so repeated runs
// can be compared.
func (d Diagnostic) Fingerprint() uuid.UUID {
	key := strings.Join([]string{d.Check, d.Field, d.Message}, "\x00")
	return uuid.NewSHA1(NamespaceDiagnostic, []byte(key))
}

// String renders the diagnostic on one line.
func (d Diagnostic) String() string {
	if d.Check == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", d.Severity, d.Check, d.Message)
}
