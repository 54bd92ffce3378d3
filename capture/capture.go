// Package capture owns the video input device. It opens a camera through
// OpenCV, applies best-effort capture hints, and hands out JPEG-encoded frames
// one synchronous read at a time.
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

const (
	// Capture hints applied at open. The device may silently negotiate other
	// values; these are requests, not guarantees.
	hintFrameWidth  = 1920
	hintFrameHeight = 1080
	hintFrameRate   = 30

	jpegQuality = 95
)

var (
	ErrInvalidOptions = errors.New("invalid capture options")
	ErrDeviceOpen     = errors.New("capture device could not be opened")
	ErrNoWarmupFrame  = errors.New("capture device produced no warm-up frame")
	ErrReadFailed     = errors.New("frame read failed")
)

// Options configures which device to open.
type Options struct {
	// Device is the camera index (/dev/video<N> on Linux). Default is 0.
	Device int
}

// Source is an open capture device. It is not safe for concurrent use; the
// recorder reads from exactly one goroutine.
type Source struct {
	cam *gocv.VideoCapture
	img gocv.Mat

	closeOnce sync.Once
	closeErr  error
}

// Open initializes the device, applies the capture hints and performs one
// warm-up read. A reachable device that yields no warm-up frame is treated as
// an open failure.
func Open(options *Options) (*Source, error) {
	if options == nil {
		options = &Options{}
	}
	if options.Device < 0 {
		return nil, fmt.Errorf("%w: Device must be >= 0", ErrInvalidOptions)
	}

	cam, err := gocv.VideoCaptureDeviceWithAPI(options.Device, gocv.VideoCaptureV4L2)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceOpen, options.Device, err)
	}
	if !cam.IsOpened() {
		_ = cam.Close()
		return nil, fmt.Errorf("%w: device %d", ErrDeviceOpen, options.Device)
	}

	cam.Set(gocv.VideoCaptureFrameWidth, hintFrameWidth)
	cam.Set(gocv.VideoCaptureFrameHeight, hintFrameHeight)
	cam.Set(gocv.VideoCaptureFPS, hintFrameRate)

	s := &Source{
		cam: cam,
		img: gocv.NewMat(),
	}

	if ok := s.cam.Read(&s.img); !ok || s.img.Empty() {
		_ = s.Close()
		return nil, fmt.Errorf("%w: device %d", ErrNoWarmupFrame, options.Device)
	}
	debugf("device %d open, negotiated %dx%d", options.Device, s.img.Cols(), s.img.Rows())

	return s, nil
}

// ReadFrame blocks for one frame and returns it JPEG encoded. A failed read is
// not fatal to the source; the caller may keep reading.
func (s *Source) ReadFrame() ([]byte, error) {
	if ok := s.cam.Read(&s.img); !ok || s.img.Empty() {
		return nil, ErrReadFailed
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, s.img, []int{gocv.IMWriteJpegQuality, jpegQuality})
	if err != nil {
		return nil, fmt.Errorf("%w: jpeg encode: %v", ErrReadFailed, err)
	}
	defer buf.Close()

	// The buffer points into native memory owned by OpenCV.
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}

// Close releases the device handle. It is idempotent and safe to call on a
// source whose open only partially succeeded.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		var out error
		if err := s.img.Close(); err != nil {
			out = errors.Join(out, err)
		}
		if s.cam != nil {
			out = errors.Join(out, s.cam.Close())
		}
		s.closeErr = out
		debugf("device released")
	})
	return s.closeErr
}
