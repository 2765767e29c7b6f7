package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/bft-labs/xreq/pkg/log"
	"github.com/bft-labs/xreq/pkg/transport"
)

// Request is a single-shot HTTP request. Build it with New, fire it with
// Send and collect the text with Response.
type Request struct {
	id      string
	url     string
	method  string
	headers *Headers
	body    any

	handle       *transport.Handle
	logger       log.Logger
	pollInterval time.Duration

	mu   sync.Mutex
	sent bool
}

// New creates a request. headers and body may be nil, meaning absent. No
// validation happens here; a bad method or URL surfaces from Send.
func New(url, method string, headers *Headers, body any, opts ...Option) *Request {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	logger := o.logger.With(log.String("request_id", id))

	return &Request{
		id:           id,
		url:          url,
		method:       method,
		headers:      headers,
		body:         body,
		handle:       transport.New(o.httpClient, logger),
		logger:       logger,
		pollInterval: o.pollInterval,
	}
}

// ID returns the id stamped on this request's log lines.
func (r *Request) ID() string { return r.id }

// URL returns the request URL.
func (r *Request) URL() string { return r.url }

// Method returns the request method.
func (r *Request) Method() string { return r.method }

// ReadyState returns the stage of the underlying exchange.
func (r *Request) ReadyState() transport.ReadyState { return r.handle.ReadyState() }

// Send opens the exchange, applies the headers in order, encodes the body as
// JSON and starts the transfer. It does not wait for the response.
// Errors opening or encoding are returned here; the outcome of the transfer
// is reported by Response. A request can be sent successfully only once.
func (r *Request) Send(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sent {
		return ErrAlreadySent
	}

	if err := r.handle.Open(ctx, r.method, r.url); err != nil {
		return fmt.Errorf("open request: %w", err)
	}

	if err := r.headers.Each(r.handle.SetRequestHeader); err != nil {
		return fmt.Errorf("set headers: %w", err)
	}

	payload, err := json.Marshal(r.body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	if bodyless(r.method) {
		payload = nil
	}

	if err := r.handle.Send(payload); err != nil {
		if errors.Is(err, transport.ErrAlreadySent) {
			return ErrAlreadySent
		}
		return fmt.Errorf("send request: %w", err)
	}
	r.sent = true

	r.logger.Debug("request sent",
		log.Method(r.method),
		log.URL(r.url),
		log.Int("headers", r.headers.Len()))
	return nil
}

// Response waits for the exchange to finish and returns the response text
// for a 200. Every other outcome is an *Error. If ctx ends first the result
// is a KindCanceled error and the transfer keeps running.
func (r *Request) Response(ctx context.Context) (string, error) {
	var (
		text string
		err  error
	)
	if r.pollInterval > 0 {
		text, err = r.poll(ctx)
	} else {
		text, err = r.wait(ctx)
	}
	r.logOutcome(err)
	return text, err
}

// Do sends the request and waits for its response.
func (r *Request) Do(ctx context.Context) (string, error) {
	if err := r.Send(ctx); err != nil {
		return "", err
	}
	return r.Response(ctx)
}

// Abort stops the in-flight transfer. Pending and later Response calls
// return a KindAborted error.
func (r *Request) Abort() {
	r.handle.Abort()
}

func (r *Request) wait(ctx context.Context) (string, error) {
	// A finished exchange wins over a context that ended at the same time.
	select {
	case <-r.handle.Done():
		return r.result()
	default:
	}

	select {
	case <-r.handle.Done():
		return r.result()
	case <-ctx.Done():
		return "", r.canceled(ctx)
	}
}

func (r *Request) poll(ctx context.Context) (string, error) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		if r.handle.ReadyState() == transport.Done {
			return r.result()
		}
		select {
		case <-ctx.Done():
			return "", r.canceled(ctx)
		case <-ticker.C:
		}
	}
}

// result maps a finished exchange to its outcome. The first matching case wins.
func (r *Request) result() (string, error) {
	if err := r.handle.Err(); err != nil {
		if errors.Is(err, transport.ErrAborted) {
			return "", &Error{Kind: KindAborted, Message: "request aborted", URL: r.url, Err: err}
		}
		return "", &Error{Kind: KindNetwork, Message: "network error", URL: r.url, Err: err}
	}

	status := r.handle.Status()
	if status == http.StatusOK {
		return r.handle.ResponseText(), nil
	}
	return "", statusError(r.url, status)
}

func (r *Request) canceled(ctx context.Context) error {
	return &Error{Kind: KindCanceled, Message: "request canceled", URL: r.url, Err: ctx.Err()}
}

func (r *Request) logOutcome(err error) {
	var re *Error
	if !errors.As(err, &re) {
		r.logger.Debug("response received", log.URL(r.url), log.Status(http.StatusOK))
		return
	}
	fields := []log.Field{log.URL(r.url), log.String("kind", re.Kind.String())}
	if re.IsFail() {
		fields = append(fields, log.Status(re.Status))
	}
	r.logger.Warn("request failed", fields...)
}

// bodyless reports methods whose payload is dropped before transmission.
func bodyless(method string) bool {
	return strings.EqualFold(method, http.MethodGet) || strings.EqualFold(method, http.MethodHead)
}
