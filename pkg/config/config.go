// Package config holds the construction constants of the ribbon widget and
// their YAML representation.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/ribbon/pkg/gesture"
	"github.com/Dicklesworthstone/ribbon/pkg/model"
	"github.com/Dicklesworthstone/ribbon/pkg/ribbon"
)

// Validation errors. Validate wraps and joins them.
var (
	ErrInvalidWidth          = errors.New("width must be positive")
	ErrInvalidHeight         = errors.New("height must be positive")
	ErrInvalidPracticalZero  = errors.New("practical_zero must be in [0, width)")
	ErrInvalidExpandFraction = errors.New("expand_fraction must be in (0, 1]")
	ErrInvalidPreviousRange  = errors.New("initial_previous_range must be in [0, width]")
	ErrInvalidAnchor         = errors.New("invalid anchor")
	ErrInvalidTiming         = errors.New("durations must be positive")
	ErrInvalidSlop           = errors.New("slop must not be negative")
	ErrInvalidHandleWidth    = errors.New("handle_width must be positive")
	ErrInvalidPressScale     = errors.New("press_scale must be in (0, 1]")
)

// Config is the full set of widget constants
type Config struct {
	Width                float64        `yaml:"width"`
	Height               float64        `yaml:"height"`
	PracticalZero        float64        `yaml:"practical_zero"`
	ExpandFraction       float64        `yaml:"expand_fraction"`
	InitialPreviousRange float64        `yaml:"initial_previous_range"`
	Anchors              []model.Anchor `yaml:"anchors"`
	LongPress            time.Duration  `yaml:"long_press"`
	DoubleTapInterval    time.Duration  `yaml:"double_tap_interval"`
	Slop                 float64        `yaml:"slop"`
	HandleWidth          float64        `yaml:"handle_width"`
	PressScale           float64        `yaml:"press_scale"`
}

// Default returns the stock configuration: a 700-unit track whose card is
// 90% of a 70-unit tall frame.
func Default() Config {
	return Config{
		Width:                700,
		Height:               70 * 0.9,
		PracticalZero:        5,
		ExpandFraction:       0.4,
		InitialPreviousRange: 200,
		Anchors:              model.DefaultAnchors(),
		LongPress:            500 * time.Millisecond,
		DoubleTapInterval:    300 * time.Millisecond,
		Slop:                 10,
		HandleWidth:          12,
		PressScale:           0.95,
	}
}

// Parse overlays YAML onto the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every constant and reports all problems at once
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidWidth, c.Width))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidHeight, c.Height))
	}
	if c.PracticalZero < 0 || c.PracticalZero >= c.Width {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidPracticalZero, c.PracticalZero))
	}
	if c.ExpandFraction <= 0 || c.ExpandFraction > 1 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidExpandFraction, c.ExpandFraction))
	}
	if c.InitialPreviousRange < 0 || c.InitialPreviousRange > c.Width {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidPreviousRange, c.InitialPreviousRange))
	}
	for i, a := range c.Anchors {
		if a.Fraction < 0 || a.Fraction > 1 || a.Well < 0 || a.Well > 1 {
			errs = append(errs, fmt.Errorf("%w: anchors[%d] %q fraction=%v well=%v",
				ErrInvalidAnchor, i, a.Name, a.Fraction, a.Well))
		}
	}
	if c.LongPress <= 0 || c.DoubleTapInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: long_press=%v double_tap_interval=%v",
			ErrInvalidTiming, c.LongPress, c.DoubleTapInterval))
	}
	if c.Slop < 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSlop, c.Slop))
	}
	if c.HandleWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidHandleWidth, c.HandleWidth))
	}
	if c.PressScale <= 0 || c.PressScale > 1 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidPressScale, c.PressScale))
	}
	return errors.Join(errs...)
}

// RibbonSettings extracts the ribbon construction constants
func (c Config) RibbonSettings() ribbon.Settings {
	return ribbon.Settings{
		Width:                c.Width,
		PracticalZero:        c.PracticalZero,
		ExpandFraction:       c.ExpandFraction,
		InitialPreviousRange: c.InitialPreviousRange,
		Anchors:              c.Anchors,
	}
}

// GestureSettings extracts the dispatcher constants
func (c Config) GestureSettings() gesture.Settings {
	return gesture.Settings{
		Width:             c.Width,
		Height:            c.Height,
		LongPress:         c.LongPress,
		DoubleTapInterval: c.DoubleTapInterval,
		Slop:              c.Slop,
		HandleWidth:       c.HandleWidth,
		PressScale:        c.PressScale,
	}
}
