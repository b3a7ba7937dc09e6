package tracking

import (
	"image"

	"github.com/kmmndr/rotation_speed/internal/config"

	"gocv.io/x/gocv"
)

// Display shows annotated frames and polls the keyboard.
type Display interface {
	Show(img gocv.Mat)
	// WaitKey blocks up to delay milliseconds and returns the key pressed,
	// or -1.
	WaitKey(delay int) int
}

// ROISelector lets the user mark the object to track.
type ROISelector interface {
	SelectROI(img gocv.Mat) image.Rectangle
}

type Options struct {
	StartFrame int
	ROIExpand  float64
	MaskLower  [3]float64
	MaskUpper  [3]float64
	HistBins   int
	HueMax     float64
	MaxIter    int
	Epsilon    float64
	ExitKey    int
}

func NewOptions(cfg *config.Config) Options {
	var lower, upper [3]float64
	copy(lower[:], cfg.Mask.Lower)
	copy(upper[:], cfg.Mask.Upper)

	return Options{
		StartFrame: cfg.Frames.Start,
		ROIExpand:  cfg.Tracking.ROIExpand,
		MaskLower:  lower,
		MaskUpper:  upper,
		HistBins:   cfg.Tracking.HistBins,
		HueMax:     cfg.Tracking.HueMax,
		MaxIter:    cfg.Tracking.MaxIter,
		Epsilon:    cfg.Tracking.Epsilon,
		ExitKey:    cfg.Tracking.ExitKey,
	}
}
