package rotation

import (
	"context"
	"errors"
	"log"
)

// Sample is one orientation reading of the tracked object.
type Sample struct {
	Frame int
	Angle float64
}

// Source yields orientation samples for consecutive frames.
//
// Next returns ErrEndOfStream once no more frames can be read and
// ErrStopped when the user interrupted tracking. Any other error aborts the
// session.
type Source interface {
	Next() (Sample, error)
}

// Session accumulates the rotation seen over an inclusive frame range.
type Session struct {
	start int
	end   int
}

func NewSession(start int, end int) *Session {
	return &Session{start: start, end: end}
}

func (s *Session) Run(ctx context.Context, source Source) (*Measurement, error) {
	return s.run(ctx, source, func(Sample, float64) {})
}

// RunWithSamples is Run with a callback invoked for every accepted sample
// along with its unwrapped step.
func (s *Session) RunWithSamples(ctx context.Context, source Source, onSample func(Sample, float64)) (*Measurement, error) {
	return s.run(ctx, source, onSample)
}

func (s *Session) run(ctx context.Context, source Source, onSample func(Sample, float64)) (*Measurement, error) {
	m := newMeasurement(s.start, s.end)

	for !m.reachedEnd() {
		if err := ctx.Err(); err != nil {
			m.Stopped = true
			break
		}

		sample, err := source.Next()
		if errors.Is(err, ErrStopped) {
			m.Stopped = true
			break
		}
		if errors.Is(err, ErrEndOfStream) {
			m.Truncated = true
			log.Printf("Warning: stream ended after frame %d, before frame %d", m.LastFrame, s.end)
			break
		}
		if err != nil {
			return m, err
		}

		if sample.Frame < s.start {
			continue
		}
		if sample.Frame > s.end {
			break
		}

		delta := m.observe(sample)
		onSample(sample, delta)
	}

	return m, nil
}
