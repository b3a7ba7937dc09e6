package tracking

import (
	"image"
	"image/color"

	"github.com/kmmndr/rotation_speed/internal/frame"
	"github.com/kmmndr/rotation_speed/internal/rotation"
	"github.com/kmmndr/rotation_speed/internal/video"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

var boxColor = color.RGBA{0, 255, 0, 0}

// CamShiftSource follows the object selected on the start frame and reports
// its orientation on every subsequent frame. It implements rotation.Source.
type CamShiftSource struct {
	stream   *video.Stream
	display  Display
	exitKey  int
	delay    int
	criteria gocv.TermCriteria

	window   image.Rectangle
	model    *frame.HueHistogram
	backProj gocv.Mat
	pending  *frame.Frame
	stopped  bool
}

// NewCamShiftSource reads the start frame, asks selector for the region of
// interest and builds the hue model from it.
func NewCamShiftSource(stream *video.Stream, selector ROISelector, display Display, opts Options) (*CamShiftSource, error) {
	fps := stream.Fps()
	if fps <= 0 {
		return nil, video.ErrNoFps
	}

	start, err := stream.ReadAt(opts.StartFrame)
	if err != nil {
		return nil, err
	}

	roi := selector.SelectROI(*start.Mat())
	window, err := rotation.ExpandWindow(roi, opts.ROIExpand, start.Bounds())
	if err != nil {
		start.Close()
		return nil, errors.Wrapf(err, "selection %v", roi)
	}

	hsv, err := start.HSV()
	if err != nil {
		start.Close()
		return nil, err
	}
	defer hsv.Close()

	model, err := frame.NewHueHistogram(hsv, window, opts.MaskLower, opts.MaskUpper, opts.HistBins, opts.HueMax)
	if err != nil {
		start.Close()
		return nil, err
	}

	return &CamShiftSource{
		stream:   stream,
		display:  display,
		exitKey:  opts.ExitKey,
		delay:    max(1, int(1000/fps)),
		criteria: gocv.NewTermCriteria(gocv.Count|gocv.EPS, opts.MaxIter, opts.Epsilon),
		window:   window,
		model:    model,
		backProj: gocv.NewMat(),
		pending:  start,
	}, nil
}

// Window is the current tracking window.
func (s *CamShiftSource) Window() image.Rectangle {
	return s.window
}

func (s *CamShiftSource) Next() (rotation.Sample, error) {
	if s.stopped {
		return rotation.Sample{}, rotation.ErrStopped
	}

	current := s.pending
	s.pending = nil
	if current == nil {
		if current = s.stream.Read(); current == nil {
			return rotation.Sample{}, rotation.ErrEndOfStream
		}
	}
	defer current.Close()

	box, err := s.track(current)
	if err != nil {
		return rotation.Sample{}, err
	}

	s.show(current, box)
	if key := s.display.WaitKey(s.delay); key&0xFF == s.exitKey {
		s.stopped = true
	}

	return rotation.Sample{Frame: current.FrameIndex(), Angle: box.Angle}, nil
}

func (s *CamShiftSource) track(current *frame.Frame) (gocv.RotatedRect, error) {
	hsv, err := current.HSV()
	if err != nil {
		return gocv.RotatedRect{}, errors.Wrapf(err, "frame %d", current.FrameIndex())
	}
	defer hsv.Close()

	s.model.BackProject(hsv, &s.backProj)

	previous := s.window
	box := gocv.CamShift(s.backProj, &s.window, s.criteria)
	if s.window.Empty() {
		s.window = previous
	}

	return box, nil
}

func (s *CamShiftSource) show(current *frame.Frame, box gocv.RotatedRect) {
	overlay := current.Mat().Clone()
	defer overlay.Close()

	if len(box.Points) > 0 {
		points := gocv.NewPointsVectorFromPoints([][]image.Point{box.Points})
		defer points.Close()
		gocv.Polylines(&overlay, points, true, boxColor, 2)
	}

	s.display.Show(overlay)
}

func (s *CamShiftSource) Close() {
	if s.pending != nil {
		s.pending.Close()
		s.pending = nil
	}
	s.model.Close()
	s.backProj.Close()
}
