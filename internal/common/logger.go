// Package common provides shared utilities and interfaces used across the
// application, including the logging interface used for diagnostics output.
package common

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// StandardLogger is the concrete Logger used by the CLI. Debug output is
// gated on the debug flag and written to stderr so it never mixes with
// operation results on stdout. Every invocation gets a short request ID so
// a CI log can be correlated across the calls of one composite operation.
type StandardLogger struct {
	debug     bool
	requestID string
	infoOut   io.Writer
	debugOut  io.Writer
}

// GenerateRequestID generates a simple request ID for operation tracing.
func GenerateRequestID() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("req_%d", r.Intn(100000))
}

// NewLogger creates a logger with the specified debug mode. Info messages
// go to stderr as well; stdout is reserved for operation results.
func NewLogger(debug bool) *StandardLogger {
	return &StandardLogger{
		debug:     debug,
		requestID: GenerateRequestID(),
		infoOut:   os.Stderr,
		debugOut:  os.Stderr,
	}
}

// NewLoggerWithWriters creates a logger writing to the given writers.
// Used by tests to capture output.
func NewLoggerWithWriters(debug bool, infoOut, debugOut io.Writer) *StandardLogger {
	return &StandardLogger{
		debug:     debug,
		requestID: GenerateRequestID(),
		infoOut:   infoOut,
		debugOut:  debugOut,
	}
}

// Debug logs a message only when debug mode is enabled
func (l *StandardLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(l.debugOut, "[DEBUG] [%s] "+format+"\n", append([]interface{}{l.requestID}, args...)...)
	}
}

// Info logs a message always
func (l *StandardLogger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.infoOut, "[%s] "+format+"\n", append([]interface{}{l.requestID}, args...)...)
}
