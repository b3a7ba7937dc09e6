package native

import (
	"errors"

	"github.com/kmmndr/rotation_speed/internal/ui"

	"github.com/sqweek/dialog"
)

// DialogChooser opens the desktop's native file dialog.
type DialogChooser struct {
	Title string
}

func NewDialogChooser() *DialogChooser {
	return &DialogChooser{Title: "Select thresholded rotation video"}
}

func (c *DialogChooser) Choose() (string, error) {
	path, err := dialog.File().
		Title(c.Title).
		Filter("MP4 files", "mp4").
		Filter("All files", "*").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ui.ErrNoFileSelected
	}
	if err != nil {
		return "", err
	}
	return ui.PathChooser(path).Choose()
}
