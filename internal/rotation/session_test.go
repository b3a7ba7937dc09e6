package rotation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource replays fixed angles starting at a given frame.
type sliceSource struct {
	frame  int
	angles []float64
	tail   error
	reads  int
}

func (s *sliceSource) Next() (Sample, error) {
	if s.reads >= len(s.angles) {
		if s.tail != nil {
			return Sample{}, s.tail
		}
		return Sample{}, ErrEndOfStream
	}
	sample := Sample{Frame: s.frame + s.reads, Angle: s.angles[s.reads]}
	s.reads++
	return sample, nil
}

func steadyAngles(n int, step float64) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		a := float64(i) * step
		for a >= 180 {
			a -= 360
		}
		angles[i] = a
	}
	return angles
}

func TestSessionRun(t *testing.T) {
	source := &sliceSource{frame: 180, angles: steadyAngles(200, 12)}

	m, err := NewSession(180, 280).Run(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, 180, m.FirstFrame)
	assert.Equal(t, 280, m.LastFrame)
	assert.Equal(t, 101, m.Samples())
	assert.Equal(t, 100, m.Steps())
	assert.InDelta(t, 1200.0, m.TotalDegrees(), 1e-6)
	assert.False(t, m.Truncated)
	assert.False(t, m.Stopped)
	assert.Equal(t, 101, source.reads, "no frame is read past the end of the range")

	duration, err := m.Duration(25)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, duration, eps)
}

func TestSessionSkipsFramesBeforeStart(t *testing.T) {
	source := &sliceSource{frame: 5, angles: steadyAngles(20, 5)}

	m, err := NewSession(10, 14).Run(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, 10, m.FirstFrame)
	assert.Equal(t, 14, m.LastFrame)
	assert.InDelta(t, 20.0, m.TotalDegrees(), 1e-6)
}

func TestSessionTruncated(t *testing.T) {
	source := &sliceSource{frame: 0, angles: steadyAngles(11, 10)}

	m, err := NewSession(0, 100).Run(context.Background(), source)
	require.NoError(t, err)

	assert.True(t, m.Truncated)
	assert.Equal(t, 10, m.LastFrame)
	assert.InDelta(t, 100.0, m.TotalDegrees(), 1e-6)
}

func TestSessionStopped(t *testing.T) {
	source := &sliceSource{frame: 0, angles: steadyAngles(4, 10), tail: ErrStopped}

	m, err := NewSession(0, 100).Run(context.Background(), source)
	require.NoError(t, err)

	assert.True(t, m.Stopped)
	assert.False(t, m.Truncated)
	assert.Equal(t, 3, m.Steps())
}

func TestSessionSourceError(t *testing.T) {
	boom := errors.New("decoder exploded")
	source := &sliceSource{frame: 0, angles: steadyAngles(3, 10), tail: boom}

	_, err := NewSession(0, 100).Run(context.Background(), source)
	assert.ErrorIs(t, err, boom)
}

func TestSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &sliceSource{frame: 0, angles: steadyAngles(10, 10)}
	m, err := NewSession(0, 9).Run(ctx, source)
	require.NoError(t, err)

	assert.True(t, m.Stopped)
	assert.Equal(t, 0, source.reads)

	_, err = m.Duration(30)
	assert.ErrorIs(t, err, ErrNoRotation)
}

func TestSessionRunWithSamples(t *testing.T) {
	source := &sliceSource{frame: 0, angles: []float64{170, -170, -150}}

	var frames []int
	var deltas []float64
	_, err := NewSession(0, 2).RunWithSamples(context.Background(), source, func(s Sample, delta float64) {
		frames = append(frames, s.Frame)
		deltas = append(deltas, delta)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, frames)
	assert.Equal(t, []float64{0, 20, 20}, deltas)
}
