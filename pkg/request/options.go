package request

import (
	"time"

	"github.com/bft-labs/xreq/pkg/log"
	"github.com/bft-labs/xreq/pkg/transport"
)

// Option configures optional behavior of a Request.
type Option func(*options)

type options struct {
	httpClient   transport.HTTPClient
	logger       log.Logger
	pollInterval time.Duration
}

func defaultOptions() options {
	return options{
		httpClient: nil, // transport falls back to http.DefaultClient
		logger:     log.NewNoopLogger(),
	}
}

// WithHTTPClient sets the client that carries the exchange.
// If not provided, http.DefaultClient is used.
func WithHTTPClient(client transport.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPollInterval makes Response check the ready state every d instead of
// waiting on the completion channel. Zero or negative keeps the default.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}
