package common

// Logger is the two-level logging surface shared by the command layer and
// the API client. Debug output is suppressed unless --debug is set; Info
// always reaches stderr so stdout stays clean for operation results.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
}
