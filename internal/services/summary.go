package services

import (
	"fmt"
	"strings"

	"github.com/rupertdev/houston/pkg/houston"
)

// Summarize folds every warning and error without a body into one summary
// diagnostic placed first. Its severity is error when any folded diagnostic
// is an error, warn otherwise, and its body lists them as Markdown.
// Diagnostics with a body and info diagnostics pass through in order.
func Summarize(diags []houston.Diagnostic) []houston.Diagnostic {
	var errs, warnings, rest []houston.Diagnostic
	for _, d := range diags {
		switch {
		case d.Body != "" || d.Severity == houston.SeverityInfo:
			rest = append(rest, d)
		case d.Severity == houston.SeverityError:
			errs = append(errs, d)
		default:
			warnings = append(warnings, d)
		}
	}

	if len(errs) == 0 && len(warnings) == 0 {
		return rest
	}

	severity := houston.SeverityWarn
	if len(errs) > 0 {
		severity = houston.SeverityError
	}

	var body strings.Builder
	writeSection(&body, "Errors", errs)
	writeSection(&body, "Warnings", warnings)

	summary := houston.Diagnostic{
		Severity: severity,
		Check:    "control",
		Message:  fmt.Sprintf("Control file has %d error(s) and %d warning(s)", len(errs), len(warnings)),
		Body:     body.String(),
	}
	return append([]houston.Diagnostic{summary}, rest...)
}

func writeSection(b *strings.Builder, title string, diags []houston.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, d := range diags {
		fmt.Fprintf(b, "- %s\n", d.Message)
	}
}
