// Package report implements the line-oriented status protocol the recorder
// emits on stdout. Lines are prefixed [INFO], [ERROR], [SUCCESS] or
// [PROGRESS]; the progress format is consumed by external monitors and must
// not change.
package report

import (
	"fmt"
	"io"
	"sync"
)

type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Infof(format string, args ...any) {
	c.line("[INFO] " + fmt.Sprintf(format, args...))
}

func (c *Console) Errorf(format string, args ...any) {
	c.line("[ERROR] " + fmt.Sprintf(format, args...))
}

func (c *Console) Successf(format string, args ...any) {
	c.line("[SUCCESS] " + fmt.Sprintf(format, args...))
}

// Progress emits one progress line per captured frame:
//
//	[PROGRESS] 5/120 (4.2%)
func (c *Console) Progress(captured, expected int, percent float64) {
	c.line(fmt.Sprintf("[PROGRESS] %d/%d (%.1f%%)", captured, expected, percent))
}

func (c *Console) line(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, s)
}
