package rotation

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measure(t *testing.T, start, end int, angles []float64) *Measurement {
	t.Helper()
	m, err := NewSession(start, end).Run(context.Background(), &sliceSource{frame: start, angles: angles})
	require.NoError(t, err)
	return m
}

func TestNewReport(t *testing.T) {
	// 36 degrees per frame at 10 fps is one revolution per second.
	m := measure(t, 0, 100, steadyAngles(101, 36))

	report, err := NewReport("seed.mp4", m, 10, 0.023)
	require.NoError(t, err)

	want := Report{
		Video:      "seed.mp4",
		Fps:        10,
		StartFrame: 0,
		EndFrame:   100,
		LastFrame:  100,
		Steps:      100,
		Degrees:    3600,
		Duration:   10,
		RadiusM:    0.023,
		Rates: Rates{
			DegreesPerSecond:     360,
			RevolutionsPerSecond: 1,
			TipVelocity:          0.14451326206513048,
		},
		StepRateMean:   360,
		StepRateStdDev: 0,
	}
	opts := []cmp.Option{
		cmpopts.IgnoreFields(Report{}, "UUID", "Date"),
		cmpopts.EquateApprox(0, 1e-6),
	}
	if diff := cmp.Diff(want, *report, opts...); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, report.UUID, 36)
}

func TestNewReportNoRotation(t *testing.T) {
	m := measure(t, 0, 10, []float64{12})

	_, err := NewReport("seed.mp4", m, 30, 0.023)
	assert.ErrorIs(t, err, ErrNoRotation)
}

func TestReportPrint(t *testing.T) {
	report := &Report{
		StartFrame: 180,
		EndFrame:   280,
		LastFrame:  280,
		Rates: Rates{
			DegreesPerSecond:     361.234,
			RevolutionsPerSecond: 1.00343,
			TipVelocity:          0.1445,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Print(&buf))

	want := "\n" +
		"=== Autorotation Tracking Results ===\n" +
		"Frames analysed: 180–280\n" +
		"Rotation rate: 361.23 degrees/s\n" +
		"             ≈ 1.00 revolutions/s\n" +
		"Tip velocity: 0.14 m/s\n"
	assert.Equal(t, want, buf.String())
}

func TestReportPrintTruncated(t *testing.T) {
	report := &Report{StartFrame: 0, EndFrame: 100, LastFrame: 42, Truncated: true}

	var buf bytes.Buffer
	require.NoError(t, report.Print(&buf))
	assert.Contains(t, buf.String(), "Tracking ended early at frame 42.")
}

func TestReportJSON(t *testing.T) {
	m := measure(t, 0, 4, []float64{0, 10, 20, 30, 40})
	report, err := NewReport("seed.mp4", m, 20, 0.01)
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.InDelta(t, 200.0, fields["degrees_per_second"], 1e-9)
	assert.InDelta(t, 40.0, fields["total_degrees"], 1e-9)
	assert.Equal(t, "seed.mp4", fields["video"])
}
