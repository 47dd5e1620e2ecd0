// Package logger provides the leveled logging interface used across raspimon.
// Log lines go to stderr so they never mix with the verbatim tool output the
// console prints on stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// DebugEnv enables debug messages when set to any non-empty value.
const DebugEnv = "RASPIMON_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// writerLogger writes prefixed lines to an io.Writer through a *log.Logger.
type writerLogger struct {
	out    *log.Logger
	prefix string
	debug  func() bool
}

// NewEnvLogger creates a logger writing to w whose debug output follows
// RASPIMON_DEBUG. The variable is read on every Debug call so tests can
// toggle it. The prefix is prepended to all log messages (e.g., "[console]").
// A nil w logs to stderr.
func NewEnvLogger(w io.Writer, prefix string) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &writerLogger{
		out:    log.New(w, "", log.LstdFlags),
		prefix: prefix,
		debug:  func() bool { return os.Getenv(DebugEnv) != "" },
	}
}

func (l *writerLogger) line(level, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case l.prefix != "" && level != "":
		l.out.Printf("%s %s: %s", l.prefix, level, msg)
	case l.prefix != "":
		l.out.Printf("%s %s", l.prefix, msg)
	case level != "":
		l.out.Printf("%s: %s", level, msg)
	default:
		l.out.Print(msg)
	}
}

func (l *writerLogger) Debug(format string, args ...interface{}) {
	if l.debug() {
		l.line("", format, args)
	}
}

func (l *writerLogger) Info(format string, args ...interface{}) {
	l.line("", format, args)
}

func (l *writerLogger) Warn(format string, args ...interface{}) {
	l.line("WARN", format, args)
}

func (l *writerLogger) Error(format string, args ...interface{}) {
	l.line("ERROR", format, args)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args) }

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Contains reports whether any captured message contains substr.
func (l *BufferLogger) Contains(substr string) bool {
	for _, m := range l.Messages {
		if strings.Contains(m.Message, substr) {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
