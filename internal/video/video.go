package video

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gocv.io/x/gocv"
)

var (
	ErrOpen       = errors.New("could not open video")
	ErrStartFrame = errors.New("could not read starting frame")
	ErrNoFps      = errors.New("unable to get video frame rate")
)

func OpenVideo(videoPath string) (*gocv.VideoCapture, error) {
	video, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrOpen, "%s: %v", videoPath, err)
	}
	if !video.IsOpened() {
		video.Close()
		return nil, pkgerrors.Wrap(ErrOpen, videoPath)
	}
	return video, nil
}
