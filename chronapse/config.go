package chronapse

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInterval  = errors.New("capture interval must be positive")
	ErrInvalidDuration  = errors.New("recording duration must be positive")
	ErrInvalidFrameRate = errors.New("output frame rate must be positive")
	ErrInvalidDevice    = errors.New("camera device index must be >= 0")
	ErrNoOutputPath     = errors.New("output path is required")
)

// Config describes one recording run. It is validated once, before any
// resource is acquired, and read-only afterwards.
type Config struct {
	// Interval is the time between frame captures.
	Interval time.Duration
	// Duration is the total wall-clock recording budget.
	Duration time.Duration
	// OutputPath is the compiled video file.
	OutputPath string
	// FrameRate is the playback frame rate of the compiled video.
	FrameRate int
	// Device is the camera index.
	Device int
}

func (c Config) Validate() error {
	if c.Interval <= 0 {
		return ErrInvalidInterval
	}
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}
	if c.FrameRate <= 0 {
		return ErrInvalidFrameRate
	}
	if c.Device < 0 {
		return ErrInvalidDevice
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return ErrNoOutputPath
	}
	return nil
}

// ExpectedFrames is how many captures fit into the duration at the configured
// interval, truncated. It is fixed for the whole session.
func (c Config) ExpectedFrames() int {
	if c.Interval <= 0 {
		return 0
	}
	return int(c.Duration / c.Interval)
}

func (c Config) String() string {
	return fmt.Sprintf("interval=%s duration=%s fps=%d camera=%d output=%s",
		c.Interval, c.Duration, c.FrameRate, c.Device, c.OutputPath)
}
