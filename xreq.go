// Package xreq is a small single-shot HTTP request wrapper.
//
// Example usage:
//
//	req := xreq.New("https://example.com/hello", http.MethodGet, nil, nil)
//	text, err := req.Do(ctx)
//	if err != nil {
//	    if code, ok := xreq.StatusCode(err); ok {
//	        log.Printf("server replied %d", code)
//	    }
//	    return err
//	}
//	fmt.Println(text)
package xreq

import (
	"context"

	"github.com/bft-labs/xreq/pkg/request"
)

// Request is a single-shot HTTP request.
type Request = request.Request

// Headers is an ordered header mapping.
type Headers = request.Headers

// Error is the error returned by Response when no text is produced.
type Error = request.Error

// Option configures a Request.
type Option = request.Option

// New creates a request. headers and body may be nil.
func New(url, method string, headers *Headers, body any, opts ...Option) *Request {
	return request.New(url, method, headers, body, opts...)
}

// NewHeaders returns an empty ordered header mapping.
func NewHeaders() *Headers {
	return request.NewHeaders()
}

// Fetch builds a request, sends it and waits for its response text.
func Fetch(ctx context.Context, url, method string, headers *Headers, body any, opts ...Option) (string, error) {
	return request.New(url, method, headers, body, opts...).Do(ctx)
}

// StatusCode returns the status carried by a fail error.
func StatusCode(err error) (int, bool) {
	return request.StatusCode(err)
}

// Option constructors re-exported for convenience.
var (
	WithHTTPClient   = request.WithHTTPClient
	WithLogger       = request.WithLogger
	WithPollInterval = request.WithPollInterval
)
