package rotation

import "image"

// ExpandWindow grows roi by ratio of its size, keeping it centred, and clamps
// the result to bounds.
func ExpandWindow(roi image.Rectangle, ratio float64, bounds image.Rectangle) (image.Rectangle, error) {
	if roi.Empty() {
		return image.Rectangle{}, ErrEmptyROI
	}

	dw := int(float64(roi.Dx()) * ratio)
	dh := int(float64(roi.Dy()) * ratio)

	x := max(0, roi.Min.X-dw/2)
	y := max(0, roi.Min.Y-dh/2)
	window := image.Rect(x, y, x+roi.Dx()+dw, y+roi.Dy()+dh)

	if !bounds.Empty() {
		window = window.Intersect(bounds)
	}
	if window.Empty() {
		return image.Rectangle{}, ErrEmptyROI
	}

	return window, nil
}
