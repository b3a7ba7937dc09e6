package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cancelledChooser struct{}

func (cancelledChooser) Choose() (string, error) {
	return "", ErrNoFileSelected
}

func TestPathChooser(t *testing.T) {
	path, err := PathChooser("runs/seed.mp4").Choose()
	require.NoError(t, err)
	assert.Equal(t, "runs/seed.mp4", path)

	_, err = PathChooser("  ").Choose()
	assert.ErrorIs(t, err, ErrNoFileSelected)
}

func TestNewChooser(t *testing.T) {
	chooser := NewChooser("seed.mp4", cancelledChooser{})
	path, err := chooser.Choose()
	require.NoError(t, err)
	assert.Equal(t, "seed.mp4", path)

	_, err = NewChooser("", cancelledChooser{}).Choose()
	assert.ErrorIs(t, err, ErrNoFileSelected)
}
