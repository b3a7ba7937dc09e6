package frame

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

var ErrEmpty = errors.New("frame is empty")

type Frame struct {
	frameIndex int
	mat        *gocv.Mat
}

func NewFrame(frameIndex int, mat *gocv.Mat) (*Frame, error) {
	if mat.Empty() {
		return nil, ErrEmpty
	}

	return &Frame{frameIndex: frameIndex, mat: mat}, nil
}

func (f *Frame) Mat() *gocv.Mat {
	return f.mat
}

func (f *Frame) FrameIndex() int {
	return f.frameIndex
}

func (f *Frame) HSV() (*Frame, error) {
	hsv := gocv.NewMat()
	gocv.CvtColor(*f.mat, &hsv, gocv.ColorBGRToHSV)

	converted, err := NewFrame(f.frameIndex, &hsv)
	if err != nil {
		hsv.Close()
		return nil, err
	}
	return converted, nil
}

func (f *Frame) Height() int {
	return f.mat.Rows()
}

func (f *Frame) Width() int {
	return f.mat.Cols()
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width(), f.Height())
}

func (f *Frame) Close() {
	f.mat.Close()
}
