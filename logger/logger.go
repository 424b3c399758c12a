package logger

// Logger provides a standardized logging interface for the Mailtrain Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., zap, logrus, standard log)
// or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request debugging (the access token is never logged)
// - Failed requests and error responses
// - Progress of the "from all lists" helpers
// - Warnings of the underlying HTTP client (resty)
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := mailtrain_go.NewClient(token, baseUrl, mailtrain_go.WithLogger(myLogger))
//
//	// Using zap
//	zl, _ := logger.NewZap("debug")
//	client := mailtrain_go.NewClient(token, baseUrl, mailtrain_go.WithLogger(zl))
//
//	// Disable logging entirely
//	client := mailtrain_go.NewClient(token, baseUrl, mailtrain_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
