// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used throughout the API.
//
// Key features:
//   - JSON output in production, text output for local development
//   - Request ID propagation
//   - Request-scoped loggers carried in the context
//
// Example usage:
//
//	logger := logging.New(os.Stdout, logging.ParseLevel("debug"), logging.FormatJSON)
//	logger.Info("server starting", slog.String("addr", ":3001"))
//
//	func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    logging.FromContext(r.Context()).Debug("processing request")
//	}
package logging
