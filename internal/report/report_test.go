package report

import (
	"bytes"
	"testing"
)

func TestProgressLineFormat(t *testing.T) {
	// The exact format is parsed by external monitors.
	cases := []struct {
		captured, expected int
		percent            float64
		want               string
	}{
		{1, 120, 0.8333, "[PROGRESS] 1/120 (0.8%)\n"},
		{5, 5, 100, "[PROGRESS] 5/5 (100.0%)\n"},
		{6, 5, 120, "[PROGRESS] 6/5 (120.0%)\n"},
		{1, 0, 0, "[PROGRESS] 1/0 (0.0%)\n"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		NewConsole(&buf).Progress(tc.captured, tc.expected, tc.percent)
		if got := buf.String(); got != tc.want {
			t.Errorf("Progress(%d, %d, %v) = %q, want %q", tc.captured, tc.expected, tc.percent, got, tc.want)
		}
	}
}

func TestLevelPrefixes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Infof("camera %d ready", 0)
	c.Errorf("read failed: %v", "timeout")
	c.Successf("saved to %s", "out.mp4")

	want := "[INFO] camera 0 ready\n[ERROR] read failed: timeout\n[SUCCESS] saved to out.mp4\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
