// Package debug provides best-effort diagnostic logging gated by the
// TEXTBUFFER_DEBUG environment variable. Logging failures never propagate:
// callers cannot corrupt buffer state by logging.
package debug

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	enabled bool
	checked bool
)

// Enabled reports whether TEXTBUFFER_DEBUG is set to "1" or "true".
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	checkLocked()
	return enabled
}

func checkLocked() {
	if checked {
		return
	}
	checked = true
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TEXTBUFFER_DEBUG")))
	enabled = v == "1" || v == "true"
}

// Log writes a timestamped line to the debug log if logging is enabled. It
// is a silent no-op otherwise, including when the log file cannot be
// opened.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	checkLocked()
	if !enabled {
		return
	}
	if logFile == nil {
		f, err := os.OpenFile("textbuffer-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		logFile = f
	}

	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(logFile, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}

// Close releases the debug log file, if open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
