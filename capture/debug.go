package capture

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

var (
	debugEnabledOnce sync.Once
	debugEnabledFlag bool

	debugLoggerOnce sync.Once
	debugLogger     *log.Logger
)

func debugEnabled() bool {
	debugEnabledOnce.Do(func() {
		debugEnabledFlag = strings.TrimSpace(os.Getenv("CHRONAPSE_DEBUG")) == "1"
	})
	return debugEnabledFlag
}

func debugWriter() io.Writer {
	p := strings.TrimSpace(os.Getenv("CHRONAPSE_DEBUG_FILE"))
	if p == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "chronapse debug log open failed: %v\n", err)
		return os.Stderr
	}
	return f
}

func debugf(format string, args ...any) {
	if !debugEnabled() {
		return
	}
	debugLoggerOnce.Do(func() {
		debugLogger = log.New(debugWriter(), "chronapse/capture ", log.LstdFlags|log.Lmicroseconds)
	})
	debugLogger.Printf(format, args...)
}
