package compile

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildArgsEncodingPolicy(t *testing.T) {
	opts := &Options{
		FFmpegPath: "ffmpeg",
		Pattern:    "frames/frame_*.jpg",
		FrameRate:  30,
		OutputPath: "out/timelapse.mp4",
	}

	got := strings.Join(buildArgs(opts), " ")
	want := "-y -framerate 30 -pattern_type glob -i frames/frame_*.jpg -c:v libx264 -crf 23 -pix_fmt yuv420p out/timelapse.mp4"
	if got != want {
		t.Errorf("buildArgs() = %q, want %q", got, want)
	}
}

func TestNormalizeOptionsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		opts *Options
	}{
		{"nil", nil},
		{"no pattern", &Options{FrameRate: 30, OutputPath: "o.mp4"}},
		{"zero rate", &Options{Pattern: "f/*.jpg", OutputPath: "o.mp4"}},
		{"no output", &Options{Pattern: "f/*.jpg", FrameRate: 30}},
	}
	for _, tc := range cases {
		if _, err := normalizeOptions(tc.opts); err == nil {
			t.Errorf("%s: normalizeOptions() accepted invalid options", tc.name)
		}
	}
}

func TestNormalizeOptionsDefaultsFFmpegPath(t *testing.T) {
	opts, err := normalizeOptions(&Options{Pattern: "f/*.jpg", FrameRate: 24, OutputPath: "o.mp4"})
	if err != nil {
		t.Fatalf("normalizeOptions() failed: %v", err)
	}
	if opts.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath = %q, want %q", opts.FFmpegPath, "ffmpeg")
	}
}

func TestRunMissingEncoderBinary(t *testing.T) {
	err := Run(&Options{
		FFmpegPath: "/nonexistent/ffmpeg",
		Pattern:    "frames/frame_*.jpg",
		FrameRate:  30,
		OutputPath: t.TempDir() + "/out.mp4",
	})
	if !errors.Is(err, ErrCompileFailed) {
		t.Errorf("Run() with missing binary = %v, want ErrCompileFailed", err)
	}
}

func TestStderrTail(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("line\n")
	}
	got := stderrTail(b.String(), 12)
	if n := strings.Count(got, "\n") + 1; n != 12 {
		t.Errorf("stderrTail kept %d lines, want 12", n)
	}
	if stderrTail("", 12) != "" {
		t.Errorf("stderrTail of empty input should be empty")
	}
}
