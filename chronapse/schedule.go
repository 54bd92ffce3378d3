package chronapse

import (
	"time"
)

// stopPollSlice bounds how long a stop request can go unnoticed while the
// loop waits for the next frame to come due.
const stopPollSlice = 100 * time.Millisecond

// captureLoop runs the timed acquisition loop until the duration budget is
// spent (StateCompleted) or a stop is requested (StateStopped). It is the only
// writer of framesCaptured.
func (s *Session) captureLoop(src FrameSource) {
	s.expectedFrames = s.cfg.ExpectedFrames()
	s.startTime = time.Now()
	s.state = StateRunning

	s.rep.Infof("Starting recording: %d frames over %s", s.expectedFrames, s.cfg.Duration)
	s.rep.Infof("Capture interval: %s", s.cfg.Interval)

	for !s.stop.Load() {
		if time.Since(s.startTime) >= s.cfg.Duration {
			s.rep.Infof("Reached target duration")
			s.state = StateCompleted
			break
		}

		data, err := src.ReadFrame()
		if err != nil {
			// Retried on the next tick. The index is not advanced, so the
			// on-disk sequence stays contiguous.
			s.rep.Errorf("Failed to capture frame %d: %v", s.framesCaptured, err)
		} else if _, err := s.store.Save(s.framesCaptured, data); err != nil {
			s.rep.Errorf("Failed to save frame %d: %v", s.framesCaptured, err)
		} else {
			s.framesCaptured++
			s.rep.Progress(s.framesCaptured, s.expectedFrames, s.percent())
		}

		// The schedule is anchored to the session start, not to the previous
		// capture, so slow reads do not accumulate drift.
		s.sleepUntil(s.startTime.Add(time.Duration(s.framesCaptured) * s.cfg.Interval))
	}

	if s.state != StateCompleted {
		s.state = StateStopped
	}

	actual := time.Since(s.startTime)
	s.rep.Infof("Recording complete: %d frames in %.1fs", s.framesCaptured, actual.Seconds())
}

// sleepUntil waits for the deadline in slices of at most stopPollSlice,
// returning early as soon as a stop is requested.
func (s *Session) sleepUntil(deadline time.Time) {
	for !s.stop.Load() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if remaining > stopPollSlice {
			remaining = stopPollSlice
		}
		time.Sleep(remaining)
	}
}

func (s *Session) percent() float64 {
	if s.expectedFrames <= 0 {
		return 0
	}
	return float64(s.framesCaptured) / float64(s.expectedFrames) * 100
}
