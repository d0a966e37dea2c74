// Package logger provides a small logging interface for taskmon components.
// The TUI owns the terminal, so log output goes through the standard log
// package (stderr) and debug messages are gated behind TASKMON_DEBUG.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger is the interface components log through. Methods accept a format
// string and arguments, like fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger logs via the standard log package. Debug messages are only
// printed when TASKMON_DEBUG is set.
type envLogger struct {
	prefix string
}

// New creates a logger that respects the TASKMON_DEBUG environment variable.
// The prefix is prepended to all messages (e.g. "[metrics]" or "[loop]").
func New(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv("TASKMON_DEBUG") != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

// noopLogger discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures messages for inspection in tests.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that records messages instead of
// printing them.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record("debug", format, args...)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record("info", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record("warn", format, args...)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record("error", format, args...)
}

// HasLevel reports whether any captured message has the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}
