// Package logging defines the injected logger collaborator shared by
// the UCI driver and the configuration store. Its absence must never
// change behavior: callers that omit one get NopLogger instead of a
// nil-pointer panic.
package logging

import apexlog "github.com/apex/log"

// Logger is the minimal logging interface the core depends on.
type Logger interface {
	Printf(format string, args ...any)
}

// ApexLogger adapts an apex/log entry (or the package-level default
// logger) to Logger, forwarding every message through Infof.
type ApexLogger struct {
	*apexlog.Entry
}

// NewApexLogger wraps apex/log's default logger with a field identifying
// the emitting component.
func NewApexLogger(component string) ApexLogger {
	return ApexLogger{Entry: apexlog.WithField("component", component)}
}

func (l ApexLogger) Printf(format string, args ...any) {
	l.Entry.Infof(format, args...)
}

// NopLogger discards every message. It is the default when a component
// is constructed without an explicit Logger.
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}

// OrNop returns l unchanged, or NopLogger{} if l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
