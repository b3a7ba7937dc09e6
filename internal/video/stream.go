package video

import (
	"github.com/kmmndr/rotation_speed/internal/frame"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

type Stream struct {
	Video *gocv.VideoCapture
	Path  string

	next int
}

func NewFileStream(videoPath string) (*Stream, error) {
	video, err := OpenVideo(videoPath)
	if err != nil {
		return nil, err
	}
	return &Stream{Video: video, Path: videoPath}, nil
}

func (s *Stream) Close() {
	s.Video.Close()
}

func (s *Stream) Fps() float64 {
	return s.Video.Get(gocv.VideoCaptureFPS)
}

func (s *Stream) FrameCount() int {
	return int(s.Video.Get(gocv.VideoCaptureFrameCount))
}

// Seek positions the stream so that the next Read returns frameIndex.
func (s *Stream) Seek(frameIndex int) {
	s.Video.Set(gocv.VideoCapturePosFrames, float64(frameIndex))
	s.next = frameIndex
}

// Read decodes the next frame. It returns nil once the video ends or a frame
// fails to decode; the two cases are not distinguishable through OpenCV.
func (s *Stream) Read() *frame.Frame {
	mat := gocv.NewMat()
	if ok := s.Video.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil
	}

	f, err := frame.NewFrame(s.next, &mat)
	if err != nil {
		mat.Close()
		return nil
	}
	s.next++

	return f
}

// ReadAt seeks to frameIndex and reads it.
func (s *Stream) ReadAt(frameIndex int) (*frame.Frame, error) {
	s.Seek(frameIndex)
	f := s.Read()
	if f == nil {
		return nil, errors.Wrapf(ErrStartFrame, "frame %d of %s", frameIndex, s.Path)
	}
	return f, nil
}

func (s *Stream) TimeAtFrame(frame *frame.Frame) float64 {
	return float64(frame.FrameIndex()) / s.Fps()
}
