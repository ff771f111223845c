// Package logging provides the leveled diagnostic logger shared by all tools.
// Everything goes to one writer (stderr by default) since stdout is left free
// for tool output that might be piped.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped, leveled lines. The zero value is not usable; call New.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	verbose    bool
	timestamps bool
}

// New returns a logger writing to out. A nil out means os.Stderr.
func New(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, verbose: verbose, timestamps: true}
}

// SetTimestamps toggles the leading timestamp (tests turn it off).
func (l *Logger) SetTimestamps(on bool) {
	l.mu.Lock()
	l.timestamps = on
	l.mu.Unlock()
}

// Verbose reports whether debug lines are emitted.
func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) line(level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prefix := ""
	if l.timestamps {
		prefix = time.Now().Format("2006-01-02 15:04:05") + " "
	}
	_, _ = io.WriteString(l.out, prefix+"["+level+"] "+text+"\n")
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
