package chronapse

import (
	"errors"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Interval:   time.Second,
		Duration:   5 * time.Second,
		OutputPath: "timelapse.mp4",
		FrameRate:  30,
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"zero interval", func(c *Config) { c.Interval = 0 }, ErrInvalidInterval},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }, ErrInvalidInterval},
		{"zero duration", func(c *Config) { c.Duration = 0 }, ErrInvalidDuration},
		{"zero fps", func(c *Config) { c.FrameRate = 0 }, ErrInvalidFrameRate},
		{"negative device", func(c *Config) { c.Device = -1 }, ErrInvalidDevice},
		{"empty output", func(c *Config) { c.OutputPath = " " }, ErrNoOutputPath},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestExpectedFramesTruncates(t *testing.T) {
	cases := []struct {
		interval, duration time.Duration
		want               int
	}{
		{time.Second, 5 * time.Second, 5},
		{time.Second, 500 * time.Millisecond, 0},
		{3 * time.Second, 10 * time.Second, 3},
		{250 * time.Millisecond, time.Minute, 240},
	}

	for _, tc := range cases {
		cfg := Config{Interval: tc.interval, Duration: tc.duration}
		if got := cfg.ExpectedFrames(); got != tc.want {
			t.Errorf("ExpectedFrames(%s/%s) = %d, want %d", tc.duration, tc.interval, got, tc.want)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Interval = 0
	if _, err := New(cfg, &Options{}); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("New() = %v, want ErrInvalidInterval", err)
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(validConfig(), nil); err == nil {
		t.Error("New() accepted nil options")
	}
	if _, err := New(validConfig(), &Options{}); err == nil {
		t.Error("New() accepted empty options")
	}
}
