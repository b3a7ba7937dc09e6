package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Frames   FramesConfig   `yaml:"frames"`
	Sensor   SensorConfig   `yaml:"sensor"`
	Mask     MaskConfig     `yaml:"mask"`
	Tracking TrackingConfig `yaml:"tracking"`
}

// FramesConfig is the inclusive range of frames analysed.
type FramesConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

type SensorConfig struct {
	RadiusM float64 `yaml:"radius_m"`
}

// MaskConfig gates the pixels that contribute to the hue histogram.
type MaskConfig struct {
	Lower []float64 `yaml:"lower"`
	Upper []float64 `yaml:"upper"`
}

type TrackingConfig struct {
	ROIExpand float64 `yaml:"roi_expand"`
	HistBins  int     `yaml:"hist_bins"`
	HueMax    float64 `yaml:"hue_max"`
	MaxIter   int     `yaml:"max_iter"`
	Epsilon   float64 `yaml:"epsilon"`
	ExitKey   int     `yaml:"exit_key"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Frames: FramesConfig{Start: 180, End: 280},
		Sensor: SensorConfig{RadiusM: 0.023},
	}
	setDefaults(cfg)
	return cfg
}

// Load reads config from a YAML file. Fields left out keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	setMaskDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	setMaskDefaults(cfg)
	if cfg.Tracking.ROIExpand == 0 {
		cfg.Tracking.ROIExpand = 0.2
	}
	if cfg.Tracking.HistBins == 0 {
		cfg.Tracking.HistBins = 32
	}
	if cfg.Tracking.HueMax == 0 {
		cfg.Tracking.HueMax = 180
	}
	if cfg.Tracking.MaxIter == 0 {
		cfg.Tracking.MaxIter = 5
	}
	if cfg.Tracking.Epsilon == 0 {
		cfg.Tracking.Epsilon = 1
	}
	if cfg.Tracking.ExitKey == 0 {
		cfg.Tracking.ExitKey = 27
	}
}

// setMaskDefaults restores the HSV gate when a file clears it, since an
// empty gate cannot mask anything.
func setMaskDefaults(cfg *Config) {
	if len(cfg.Mask.Lower) == 0 {
		cfg.Mask.Lower = []float64{0, 60, 32}
	}
	if len(cfg.Mask.Upper) == 0 {
		cfg.Mask.Upper = []float64{180, 255, 255}
	}
}

func (c *Config) Validate() error {
	if c.Frames.Start < 0 {
		return errors.Errorf("frames.start must not be negative, got %d", c.Frames.Start)
	}
	if c.Frames.End <= c.Frames.Start {
		return errors.Errorf("frames.end (%d) must be after frames.start (%d)", c.Frames.End, c.Frames.Start)
	}
	if c.Sensor.RadiusM < 0 {
		return errors.Errorf("sensor.radius_m must not be negative, got %g", c.Sensor.RadiusM)
	}
	if c.Tracking.ROIExpand < 0 {
		return errors.Errorf("tracking.roi_expand must not be negative, got %g", c.Tracking.ROIExpand)
	}
	if c.Tracking.HistBins <= 0 {
		return errors.Errorf("tracking.hist_bins must be positive, got %d", c.Tracking.HistBins)
	}
	if c.Tracking.HueMax <= 0 {
		return errors.Errorf("tracking.hue_max must be positive, got %g", c.Tracking.HueMax)
	}
	if len(c.Mask.Lower) != 3 || len(c.Mask.Upper) != 3 {
		return errors.Errorf("mask bounds need 3 HSV components, got %d and %d", len(c.Mask.Lower), len(c.Mask.Upper))
	}
	for i := range c.Mask.Lower {
		if c.Mask.Lower[i] > c.Mask.Upper[i] {
			return errors.Errorf("mask.lower[%d] (%g) is above mask.upper[%d] (%g)", i, c.Mask.Lower[i], i, c.Mask.Upper[i])
		}
	}
	return nil
}
