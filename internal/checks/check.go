package checks

import (
	"strings"

	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/pkg/houston"
)

// Check inspects fields and may amend them.
type Check interface {
	// Name identifies the check in diagnostics and in disabled_checks.
	Name() string

	// Run returns the diagnostics for fields. Amendments are applied to
	// fields directly.
	Run(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic
}

// Func adapts a function to the Check interface.
type Func struct {
	name string
	fn   func(*control.Fields, houston.ValidationConfig) []houston.Diagnostic
}

func (f Func) Name() string { return f.name }

func (f Func) Run(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic {
	return f.fn(fields, cfg)
}

// Default returns the checks in the order they run.
func Default() []Check {
	return []Check{
		Func{name: "source", fn: checkSource},
		Func{name: "maintainer", fn: checkMaintainer},
		Func{name: "build-depends", fn: checkBuildDepends},
		Func{name: "package", fn: checkPackage},
		Func{name: "architecture", fn: checkArchitecture},
		Func{name: "description", fn: checkDescription},
	}
}

// Names returns the names of the default checks.
func Names() []string {
	var names []string
	for _, c := range Default() {
		names = append(names, c.Name())
	}
	return names
}

// expectField amends key to want when it is missing or differs.
func expectField(fields *control.Fields, check, key, want string) []houston.Diagnostic {
	got := strings.TrimSpace(fields.Text(key))
	switch {
	case got == "":
		fields.Set(key, control.Text(want))
		return []houston.Diagnostic{houston.Warnf(check, "Missing %q field", key).WithField(key)}
	case got != want:
		fields.Set(key, control.Text(want))
		return []houston.Diagnostic{houston.Warnf(check, "%q field should be %q", key, want).WithField(key)}
	}
	return nil
}

// requireField reports an error when key is missing or empty.
func requireField(fields *control.Fields, check, key string) []houston.Diagnostic {
	if strings.TrimSpace(fields.Text(key)) == "" {
		return []houston.Diagnostic{houston.Errorf(check, "Missing %q field", key).WithField(key)}
	}
	return nil
}
