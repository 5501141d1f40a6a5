package checks

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/pkg/houston"
)

var maintainerPattern = regexp.MustCompile(`^.+ <[^@\s]+@[^>\s]+>$`)

func checkSource(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic {
	if cfg.PackageName == "" {
		return requireField(fields, "source", "Source")
	}
	return expectField(fields, "source", "Source", cfg.PackageName)
}

func checkPackage(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic {
	if cfg.PackageName == "" {
		return requireField(fields, "package", "Package")
	}
	return expectField(fields, "package", "Package", cfg.PackageName)
}

func checkMaintainer(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic {
	if cfg.Maintainer != "" {
		return expectField(fields, "maintainer", "Maintainer", cfg.Maintainer)
	}
	if diags := requireField(fields, "maintainer", "Maintainer"); diags != nil {
		return diags
	}

	got := strings.TrimSpace(fields.Text("Maintainer"))
	if !maintainerPattern.MatchString(got) {
		return []houston.Diagnostic{
			houston.Errorf("maintainer", "%q field should look like %q", "Maintainer", "Full Name <email@example.com>").
				WithField("Maintainer"),
		}
	}
	return nil
}

func checkArchitecture(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic {
	if cfg.Architecture != "" {
		return expectField(fields, "architecture", "Architecture", cfg.Architecture)
	}
	if strings.TrimSpace(fields.Text("Architecture")) == "" {
		return expectField(fields, "architecture", "Architecture", houston.DefaultArchitecture)
	}
	return nil
}

// checkBuildDepends adds every required build dependency that is not
// already declared. Dependencies match by package name, so a declared
// "valac (>= 0.40)" satisfies a required "valac".
func checkBuildDepends(fields *control.Fields, cfg houston.ValidationConfig) []houston.Diagnostic {
	if len(cfg.BuildDepends) == 0 {
		return nil
	}

	items := fields.List("Build-Depends")
	declared := make(map[string]bool)
	for _, item := range items {
		for _, alt := range strings.Split(item, "|") {
			declared[DependencyName(alt)] = true
		}
	}

	var diags []houston.Diagnostic
	for _, dep := range cfg.BuildDepends {
		name := DependencyName(dep)
		if declared[name] {
			continue
		}
		declared[name] = true
		items = append(items, strings.TrimSpace(dep))
		diags = append(diags, houston.Warnf("build-depends", "Missing %q in %q field", name, "Build-Depends").WithField("Build-Depends"))
	}

	if len(diags) > 0 {
		slices.Sort(items)
		fields.Set("Build-Depends", control.List(items...))
	}
	return diags
}

// DependencyName returns the package name of a relation such as
// "libgtk-3-dev (>= 3.22) [amd64]" or "meson:native".
func DependencyName(relation string) string {
	name := strings.TrimSpace(relation)
	if i := strings.IndexAny(name, " \t([<"); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[:i]
	}
	return name
}

func checkDescription(fields *control.Fields, _ houston.ValidationConfig) []houston.Diagnostic {
	value, ok := fields.Get("Description")
	if !ok || strings.TrimSpace(value.String()) == "" {
		return []houston.Diagnostic{houston.Errorf("description", "Missing %q field", "Description").WithField("Description")}
	}

	summary, body, _ := strings.Cut(value.String(), "\n")
	summary = strings.TrimSpace(summary)

	var diags []houston.Diagnostic
	switch {
	case summary == "":
		diags = append(diags, houston.Errorf("description", "%q field has an empty summary", "Description").WithField("Description"))
	case len(summary) > houston.MaxSummaryLength:
		diags = append(diags, houston.Warnf("description", "%q summary is %d characters, keep it under %d",
			"Description", len(summary), houston.MaxSummaryLength).
			WithField("Description").
			WithBody(fmt.Sprintf("```\n%s\n```\n", summary)))
	}

	if strings.TrimSpace(body) == "" {
		diags = append(diags, houston.Infof("description", "%q field has no extended description", "Description").WithField("Description"))
	}
	return diags
}
