package rotation

// Measurement is the outcome of a Session.
type Measurement struct {
	Start      int
	End        int
	FirstFrame int
	LastFrame  int
	Truncated  bool
	Stopped    bool

	samples     int
	accumulator *Accumulator
}

func newMeasurement(start int, end int) *Measurement {
	return &Measurement{
		Start:       start,
		End:         end,
		FirstFrame:  -1,
		LastFrame:   -1,
		accumulator: NewAccumulator(),
	}
}

func (m *Measurement) observe(sample Sample) float64 {
	if m.samples == 0 {
		m.FirstFrame = sample.Frame
	}
	m.samples++
	m.LastFrame = sample.Frame

	return m.accumulator.Observe(sample.Angle)
}

func (m *Measurement) reachedEnd() bool {
	return m.samples > 0 && m.LastFrame >= m.End
}

// Samples is the number of frames whose orientation was read.
func (m *Measurement) Samples() int {
	return m.samples
}

func (m *Measurement) Steps() int {
	return m.accumulator.Steps()
}

// TotalDegrees is the cumulative unwrapped angular displacement.
func (m *Measurement) TotalDegrees() float64 {
	return m.accumulator.Total()
}

func (m *Measurement) Deltas() []float64 {
	return m.accumulator.Deltas()
}

// Duration is the time in seconds between the first and last sampled frame.
func (m *Measurement) Duration(fps float64) (float64, error) {
	if m.samples == 0 {
		return StepDuration(0, fps)
	}
	return StepDuration(m.LastFrame-m.FirstFrame, fps)
}
