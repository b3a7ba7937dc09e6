package ui

import (
	"errors"
	"strings"
)

var ErrNoFileSelected = errors.New("no video file selected")

// FileChooser returns the path of the video to analyse.
type FileChooser interface {
	Choose() (string, error)
}

// PathChooser returns a path given up front, typically on the command line.
type PathChooser string

func (p PathChooser) Choose() (string, error) {
	if strings.TrimSpace(string(p)) == "" {
		return "", ErrNoFileSelected
	}
	return string(p), nil
}

// NewChooser prefers path when set and falls back to interactive.
func NewChooser(path string, interactive FileChooser) FileChooser {
	if path != "" {
		return PathChooser(path)
	}
	return interactive
}
