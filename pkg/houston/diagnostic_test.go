package houston_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rupertdev/houston/pkg/houston"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	require.Equal(t, "info", houston.SeverityInfo.String())
	require.Equal(t, "warn", houston.SeverityWarn.String())
	require.Equal(t, "error", houston.SeverityError.String())
	require.Equal(t, "Severity(7)", houston.Severity(7).String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    houston.Severity
		wantErr bool
	}{
		{"info", houston.SeverityInfo, false},
		{"WARN", houston.SeverityWarn, false},
		{"warning", houston.SeverityWarn, false},
		{" error ", houston.SeverityError, false},
		{"fatal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := houston.ParseSeverity(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, houston.ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDiagnostic_JSON(t *testing.T) {
	d := houston.Warnf("maintainer", "Missing %q field", "Maintainer").WithField("Maintainer")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"severity":"warn","check":"maintainer","field":"Maintainer","message":"Missing \"Maintainer\" field"}`, string(data))

	var decoded houston.Diagnostic
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, d, decoded)
}

func TestDiagnostic_Fingerprint(t *testing.T) {
	a := houston.Errorf("source", "Missing %q field", "Source")
	b := houston.Errorf("source", "Missing %q field", "Source").WithBody("details do not matter")
	c := houston.Errorf("package", "Missing %q field", "Source")

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	require.Equal(t, 5, int(a.Fingerprint().Version()))
}

func TestDiagnostic_String(t *testing.T) {
	require.Equal(t, "error: [source] broken", houston.Errorf("source", "broken").String())
	require.Equal(t, "info: plain", houston.Infof("", "plain").String())
}

func TestReport(t *testing.T) {
	r := houston.NewReport("debian/control")
	require.NotEqual(t, r.ID.String(), houston.NewReport("debian/control").ID.String())
	require.False(t, r.Failed())
	require.NoError(t, r.Err())

	r.Add(houston.Warnf("a", "w"), houston.Infof("b", "i"))
	require.False(t, r.Failed())
	require.Equal(t, 1, r.Count(houston.SeverityWarn))

	r.Add(houston.Errorf("c", "e"))
	require.True(t, r.Failed())
	err := r.Err()
	require.Error(t, err)
	require.True(t, errors.Is(err, houston.ErrValidationFailed))
	require.Contains(t, err.Error(), "debian/control: 1 error(s)")
}
