package tui

import (
	"testing"

	"github.com/rupertdev/houston/pkg/houston"
	"github.com/stretchr/testify/require"
)

func TestRenderDiagnostic(t *testing.T) {
	d := houston.Warnf("architecture", `Missing "Architecture" field`).WithField("Architecture")
	out := RenderDiagnostic(d)

	require.Contains(t, out, "warn")
	require.Contains(t, out, "architecture")
	require.Contains(t, out, "[Architecture]")
	require.Contains(t, out, `Missing "Architecture" field`)
}

func TestRenderDiagnostic_Body(t *testing.T) {
	d := houston.Errorf("maintainer", "invalid maintainer").WithBody("expected: Name <email>\ngot: nobody\n")
	out := RenderDiagnostic(d)

	require.Contains(t, out, "\n    expected: Name <email>")
	require.Contains(t, out, "\n    got: nobody")
}

func TestRenderReport(t *testing.T) {
	r := houston.NewReport("debian/control")
	require.Contains(t, RenderReport(r), "debian/control: ok")

	r.Add(houston.Warnf("description", "summary is long"))
	require.Contains(t, RenderReport(r), "1 warning")

	r.Add(houston.Errorf("source", "missing"), houston.Errorf("package", "missing"))
	out := RenderReport(r)
	require.Contains(t, out, "2 errors, 1 warning")
}

func TestSeverityStyle(t *testing.T) {
	_, symbol := SeverityStyle(houston.SeverityError)
	require.Equal(t, SymbolCross, symbol)
	_, symbol = SeverityStyle(houston.SeverityWarn)
	require.Equal(t, SymbolWarning, symbol)
	_, symbol = SeverityStyle(houston.SeverityInfo)
	require.Equal(t, SymbolInfo, symbol)
}
