package frame

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// HueHistogram is the appearance model of the tracked object: a normalised
// histogram of the hue channel inside the initial window.
type HueHistogram struct {
	hist   *gocv.Mat
	lower  gocv.Scalar
	upper  gocv.Scalar
	bins   int
	hueMax float64
}

// NewHueHistogram builds the model from the pixels of hsv inside window
// whose HSV values lie between lower and upper.
func NewHueHistogram(hsv *Frame, window image.Rectangle, lower, upper [3]float64, bins int, hueMax float64) (*HueHistogram, error) {
	if window.Intersect(hsv.Bounds()).Empty() {
		return nil, errors.Errorf("histogram window %v lies outside the %dx%d frame", window, hsv.Width(), hsv.Height())
	}
	window = window.Intersect(hsv.Bounds())

	hh := &HueHistogram{
		lower:  gocv.NewScalar(lower[0], lower[1], lower[2], 0),
		upper:  gocv.NewScalar(upper[0], upper[1], upper[2], 0),
		bins:   bins,
		hueMax: hueMax,
	}

	mask := hh.Mask(hsv)
	defer mask.Close()

	roi := hsv.Mat().Region(window)
	defer roi.Close()
	roiMask := mask.Region(window)
	defer roiMask.Close()

	hist := gocv.NewMat()
	gocv.CalcHist([]gocv.Mat{roi}, []int{0}, roiMask, &hist, []int{bins}, []float64{0, hueMax}, false)
	gocv.Normalize(hist, &hist, 0, 255, gocv.NormMinMax)
	hh.hist = &hist

	return hh, nil
}

// Mask returns the binary image of pixels inside the HSV gate. The caller
// owns the result.
func (hh *HueHistogram) Mask(hsv *Frame) gocv.Mat {
	mask := gocv.NewMat()
	gocv.InRangeWithScalar(*hsv.Mat(), hh.lower, hh.upper, &mask)
	return mask
}

// BackProject writes into dst the likelihood of each pixel of hsv belonging
// to the model.
func (hh *HueHistogram) BackProject(hsv *Frame, dst *gocv.Mat) {
	gocv.CalcBackProject([]gocv.Mat{*hsv.Mat()}, []int{0}, *hh.hist, dst, []float64{0, hh.hueMax}, true)
}

func (hh *HueHistogram) Close() {
	if hh.hist != nil {
		hh.hist.Close()
	}
}
