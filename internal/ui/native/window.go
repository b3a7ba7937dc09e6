package native

import (
	"image"

	"gocv.io/x/gocv"
)

// Window is a gocv display window, opened on first use.
type Window struct {
	name   string
	window *gocv.Window
}

func NewWindow(name string) *Window {
	return &Window{name: name}
}

func (w *Window) open() *gocv.Window {
	if w.window == nil {
		w.window = gocv.NewWindow(w.name)
	}
	return w.window
}

func (w *Window) Show(img gocv.Mat) {
	w.open().IMShow(img)
}

func (w *Window) WaitKey(delay int) int {
	return w.open().WaitKey(delay)
}

func (w *Window) Close() error {
	if w.window == nil {
		return nil
	}
	err := w.window.Close()
	w.window = nil
	return err
}

// WindowSelector asks for the region of interest in a temporary window that
// is destroyed once the rectangle is confirmed.
type WindowSelector struct {
	Name string
}

func NewWindowSelector() *WindowSelector {
	return &WindowSelector{Name: "Select ROI"}
}

func (s *WindowSelector) SelectROI(img gocv.Mat) image.Rectangle {
	window := gocv.NewWindow(s.Name)
	defer window.Close()

	return window.SelectROI(img)
}
