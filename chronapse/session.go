// Package chronapse drives a timelapse recording run: a timed capture loop
// feeding a frame directory, followed by a video compile, with the capture
// device guaranteed to be released on every exit path.
package chronapse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

var (
	ErrNoFrames        = errors.New("no frames captured")
	ErrNotEnoughFrames = errors.New("not enough frames to create video (minimum 2 required)")
)

// FrameSource produces one frame per blocking read. A read failure is
// per-attempt and leaves the source usable.
type FrameSource interface {
	ReadFrame() ([]byte, error)
	Close() error
}

// SourceOpener acquires the capture device. Called once per run, after the
// frame directory exists.
type SourceOpener func() (FrameSource, error)

// FrameStore persists frames under sequential indices and owns the scratch
// directory lifecycle.
type FrameStore interface {
	Prepare() error
	Save(index int, data []byte) (string, error)
	Purge() error
	Pattern() string
	Dir() string
}

// Compiler turns the ordered frame files matched by pattern into a video.
type Compiler interface {
	Compile(pattern string, frameRate int, outputPath string) error
}

// Reporter receives the run's status stream.
type Reporter interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
	Successf(format string, args ...any)
	Progress(captured, expected int, percent float64)
}

// State is the capture loop's terminal condition.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options wires the session's collaborators.
type Options struct {
	OpenSource SourceOpener
	Store      FrameStore
	Compiler   Compiler
	// Reporter defaults to a console reporter on stdout.
	Reporter Reporter
}

// Session owns the state of one recording run. It is single-use: create,
// optionally wire RequestStop to a signal handler, then Run once.
type Session struct {
	cfg      Config
	open     SourceOpener
	store    FrameStore
	compiler Compiler
	rep      Reporter

	// stop only ever transitions false -> true. It is the one field written
	// from outside the run goroutine.
	stop atomic.Bool

	state          State
	startTime      time.Time
	framesCaptured int
	expectedFrames int
}

func New(cfg Config, options *Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if options == nil || options.OpenSource == nil || options.Store == nil || options.Compiler == nil {
		return nil, errors.New("chronapse: source opener, store and compiler are required")
	}

	s := &Session{
		cfg:      cfg,
		open:     options.OpenSource,
		store:    options.Store,
		compiler: options.Compiler,
		rep:      options.Reporter,
	}
	if s.rep == nil {
		s.rep = defaultReporter()
	}
	return s, nil
}

// RequestStop asks the capture loop to finish at the next stop-flag poll. Safe
// to call from any goroutine, any number of times.
func (s *Session) RequestStop() {
	s.stop.Store(true)
}

func (s *Session) FramesCaptured() int { return s.framesCaptured }
func (s *Session) State() State        { return s.state }

// Run executes the whole pipeline: prepare the frame directory, open the
// device, capture until the duration budget or a stop request, release the
// device, compile, clean up. Any error maps to process exit code 1.
func (s *Session) Run() (err error) {
	defer func() {
		// The device release below is deferred first, so it has already run
		// by the time an unexpected failure surfaces here.
		if r := recover(); r != nil {
			s.rep.Errorf("Unexpected error: %v", r)
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()

	if err := s.store.Prepare(); err != nil {
		s.rep.Errorf("Failed to prepare frame directory: %v", err)
		return err
	}
	s.rep.Infof("Created frame directory: %s", s.store.Dir())

	s.rep.Infof("Initializing camera %d...", s.cfg.Device)
	src, err := s.open()
	if err != nil {
		// The freshly prepared directory is empty; it is left in place.
		s.rep.Errorf("Failed to initialize camera: %v", err)
		return err
	}
	s.rep.Infof("Camera initialized successfully")
	defer func() {
		_ = src.Close()
	}()

	s.captureLoop(src)

	// Free the device before the encoder starts; Close is idempotent, so the
	// deferred release above stays a no-op.
	_ = src.Close()
	s.rep.Infof("Camera released")

	if s.framesCaptured == 0 {
		s.rep.Errorf("No frames captured")
		return ErrNoFrames
	}

	compileErr := s.compile()

	if purgeErr := s.store.Purge(); purgeErr != nil {
		s.rep.Errorf("Failed to clean up frame directory: %v", purgeErr)
	} else {
		s.rep.Infof("Cleanup complete")
	}

	return compileErr
}

func (s *Session) compile() error {
	if s.framesCaptured < 2 {
		s.rep.Errorf("Not enough frames to create video (minimum 2 required)")
		return ErrNotEnoughFrames
	}

	s.rep.Infof("Compiling video with %d frames at %d FPS...", s.framesCaptured, s.cfg.FrameRate)
	if err := s.compiler.Compile(s.store.Pattern(), s.cfg.FrameRate, s.cfg.OutputPath); err != nil {
		s.rep.Errorf("Video compile failed: %v", err)
		return err
	}

	path := s.cfg.OutputPath
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	s.rep.Successf("Video saved to: %s", path)
	if fi, err := os.Stat(s.cfg.OutputPath); err == nil {
		s.rep.Infof("Output file size: %.2f MB", float64(fi.Size())/(1024*1024))
	}
	return nil
}
