package rotation

import (
	"math"

	"github.com/pkg/errors"
)

// Rates holds the kinematic quantities derived from an angular displacement.
type Rates struct {
	DegreesPerSecond     float64 `json:"degrees_per_second"`
	RevolutionsPerSecond float64 `json:"revolutions_per_second"`
	TipVelocity          float64 `json:"tip_velocity_mps"`
}

// ComputeRates derives the rotation rate over duration seconds and the linear
// speed of a tip at radius metres from the axis.
func ComputeRates(totalDegrees float64, duration float64, radius float64) (Rates, error) {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return Rates{}, errors.Wrapf(ErrInvalidDuration, "got %g s", duration)
	}
	if radius < 0 {
		return Rates{}, errors.Wrapf(ErrNegativeRadius, "got %g m", radius)
	}

	degrees := totalDegrees / duration
	revolutions := degrees / 360.0

	return Rates{
		DegreesPerSecond:     degrees,
		RevolutionsPerSecond: revolutions,
		TipVelocity:          TipVelocity(revolutions, radius),
	}, nil
}

// TipVelocity is the linear speed in m/s of a point at radius metres turning
// at rps revolutions per second.
func TipVelocity(rps float64, radius float64) float64 {
	if radius == 0 {
		return 0
	}
	return rps * 2 * math.Pi * radius
}

// StepDuration is the time spanned by steps frame intervals at fps.
func StepDuration(steps int, fps float64) (float64, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return 0, errors.Wrapf(ErrInvalidFps, "got %g fps", fps)
	}
	if steps <= 0 {
		return 0, ErrNoRotation
	}
	return float64(steps) / fps, nil
}
