package rotation

import (
	"fmt"
	"io"
	"time"

	uuid "github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

type Report struct {
	UUID       string  `json:"uuid"`
	Date       string  `json:"date"`
	Video      string  `json:"video"`
	Fps        float64 `json:"fps"`
	StartFrame int     `json:"start_frame"`
	EndFrame   int     `json:"end_frame"`
	LastFrame  int     `json:"last_frame"`
	Truncated  bool    `json:"truncated"`
	Stopped    bool    `json:"stopped"`
	Steps      int     `json:"steps"`
	Degrees    float64 `json:"total_degrees"`
	Duration   float64 `json:"duration_seconds"`
	RadiusM    float64 `json:"radius_m"`
	Rates

	// Spread of the per-frame angular rate, in degrees/s.
	StepRateMean   float64 `json:"step_rate_mean"`
	StepRateStdDev float64 `json:"step_rate_stddev"`
}

// NewReport derives the rotation rates of m for a video decoded at fps and a
// sensor of the given radius.
func NewReport(video string, m *Measurement, fps float64, radius float64) (*Report, error) {
	duration, err := m.Duration(fps)
	if err != nil {
		return nil, err
	}

	rates, err := ComputeRates(m.TotalDegrees(), duration, radius)
	if err != nil {
		return nil, err
	}

	ref, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "generate report uuid")
	}

	stepRates := m.Deltas()
	for i := range stepRates {
		stepRates[i] *= fps
	}
	mean, stdDev := stat.MeanStdDev(stepRates, nil)
	if len(stepRates) < 2 {
		stdDev = 0
	}

	return &Report{
		UUID:           ref.String(),
		Date:           time.Now().Format(time.RFC3339),
		Video:          video,
		Fps:            fps,
		StartFrame:     m.Start,
		EndFrame:       m.End,
		LastFrame:      m.LastFrame,
		Truncated:      m.Truncated,
		Stopped:        m.Stopped,
		Steps:          m.Steps(),
		Degrees:        m.TotalDegrees(),
		Duration:       duration,
		RadiusM:        radius,
		Rates:          rates,
		StepRateMean:   mean,
		StepRateStdDev: stdDev,
	}, nil
}

// Print writes the human readable summary.
func (r *Report) Print(w io.Writer) error {
	lines := []string{
		"",
		"=== Autorotation Tracking Results ===",
		fmt.Sprintf("Frames analysed: %d–%d", r.StartFrame, r.EndFrame),
		fmt.Sprintf("Rotation rate: %.2f degrees/s", r.DegreesPerSecond),
		fmt.Sprintf("             ≈ %.2f revolutions/s", r.RevolutionsPerSecond),
		fmt.Sprintf("Tip velocity: %.2f m/s", r.TipVelocity),
	}
	if r.Truncated || r.Stopped {
		lines = append(lines, fmt.Sprintf("Tracking ended early at frame %d.", r.LastFrame))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
