package rotation

import "errors"

var (
	ErrEmptyROI        = errors.New("region of interest is empty")
	ErrNoRotation      = errors.New("no rotation steps were tracked")
	ErrInvalidDuration = errors.New("duration must be positive and finite")
	ErrNegativeRadius  = errors.New("radius must not be negative")
	ErrInvalidFps      = errors.New("frame rate must be positive")

	// ErrEndOfStream is returned by a Source when the video ends or a frame
	// cannot be decoded.
	ErrEndOfStream = errors.New("end of stream")
	// ErrStopped is returned by a Source when the user asked to stop.
	ErrStopped = errors.New("stopped by user")
)
