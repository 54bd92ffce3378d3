// Package compile invokes ffmpeg to assemble a directory of ordered frame
// files into a single video.
package compile

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Encoding policy. Fixed for predictable, broadly playable output; callers
// only choose the frame rate and the output path.
const (
	videoCodec  = "libx264"
	crf         = "23"
	pixelFormat = "yuv420p"

	stderrTailLines = 12
)

var ErrCompileFailed = errors.New("video compile failed")

type Options struct {
	// FFmpegPath is the encoder binary. Default is "ffmpeg" resolved on PATH.
	FFmpegPath string
	// Pattern is a glob over the frame files, in playback order.
	Pattern string
	// FrameRate is the output frames per second.
	FrameRate int
	// OutputPath is the target video file. Parent directories are created.
	OutputPath string
}

func normalizeOptions(options *Options) (*Options, error) {
	if options == nil {
		return nil, errors.New("nil options")
	}
	opts := *options
	if strings.TrimSpace(opts.FFmpegPath) == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if strings.TrimSpace(opts.Pattern) == "" {
		return nil, errors.New("frame pattern is required")
	}
	if opts.FrameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", opts.FrameRate)
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return nil, errors.New("output path is required")
	}
	return &opts, nil
}

// Run blocks until the encoder process exits. On failure the returned error
// carries the tail of the encoder's stderr.
func Run(options *Options) error {
	opts, err := normalizeOptions(options)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("output directory: %w", err)
		}
	}

	args := buildArgs(opts)
	debugf("ffmpeg: %s %s", opts.FFmpegPath, strings.Join(args, " "))

	cmd := exec.Command(opts.FFmpegPath, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v: %s", ErrCompileFailed, err, stderrTail(stderr.String(), stderrTailLines))
	}
	return nil
}

func buildArgs(opts *Options) []string {
	return []string{
		"-y",
		"-framerate", strconv.Itoa(opts.FrameRate),
		"-pattern_type", "glob",
		"-i", opts.Pattern,
		"-c:v", videoCodec,
		"-crf", crf,
		"-pix_fmt", pixelFormat,
		opts.OutputPath,
	}
}

func stderrTail(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
