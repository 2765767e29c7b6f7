// Package log provides the logging abstraction used across xreq.
//
// Requests, transport handles and the CLI all log through the Logger
// interface. A zerolog adapter is provided for real output and a no-op
// logger is the default so that embedding xreq stays silent unless asked.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	req := request.New(url, http.MethodGet, nil, nil, request.WithLogger(logger))
//
// Child loggers carry persistent fields, which is how a request stamps its
// id onto every line it emits:
//
//	reqLogger := logger.With(log.String("request_id", id))
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
