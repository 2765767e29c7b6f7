package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/bft-labs/xreq/pkg/log"
)

// Handle carries a single HTTP exchange. It is safe for concurrent use.
type Handle struct {
	client HTTPClient
	logger log.Logger

	mu     sync.Mutex
	state  ReadyState
	req    *http.Request
	sent   bool
	status int
	text   string
	err    error
	cancel context.CancelFunc

	done     chan struct{}
	doneOnce sync.Once
}

// New creates an unsent handle. A nil client means http.DefaultClient and a
// nil logger discards output.
func New(client HTTPClient, logger log.Logger) *Handle {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Handle{
		client: client,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Open prepares the exchange for method and url. Calling Open again before
// Send replaces the pending request and drops any headers set so far.
func (h *Handle) Open(ctx context.Context, method, url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sent {
		return fmt.Errorf("open: %w", ErrAlreadySent)
	}

	// The transfer outlives ctx. Abort is the only way to stop it.
	transferCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	req, err := http.NewRequestWithContext(transferCtx, method, url, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("open: %w", err)
	}

	if h.cancel != nil {
		h.cancel()
	}
	h.req = req
	h.cancel = cancel
	h.state = Opened
	return nil
}

// SetRequestHeader sets key to value on the pending request.
func (h *Handle) SetRequestHeader(key, value string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != Opened || h.sent {
		return fmt.Errorf("set header %q in state %s: %w", key, h.state, ErrInvalidState)
	}
	h.req.Header.Set(key, value)
	return nil
}

// Send starts the exchange with body and returns without waiting for it.
// A nil body sends no payload.
func (h *Handle) Send(body []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sent {
		return ErrAlreadySent
	}
	if h.state != Opened {
		return fmt.Errorf("send in state %s: %w", h.state, ErrInvalidState)
	}

	req := h.req
	if body != nil {
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
	}
	h.sent = true

	h.logger.Debug("transfer started",
		log.Method(req.Method),
		log.URL(req.URL.String()),
		log.Int("bytes", len(body)))

	go h.transfer(req)
	return nil
}

// Abort stops an in-flight exchange. Waiters observe ErrAborted. It is a
// no-op once the exchange is Done or when nothing was sent.
func (h *Handle) Abort() {
	h.mu.Lock()
	if h.state == Done || !h.sent {
		h.mu.Unlock()
		return
	}
	cancel := h.cancel
	h.mu.Unlock()

	cancel()
}

// ReadyState returns the current stage of the exchange.
func (h *Handle) ReadyState() ReadyState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Status returns the response status code, or 0 before headers arrive or on failure.
func (h *Handle) Status() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// ResponseText returns the response body. It is empty until the handle is Done.
func (h *Handle) ResponseText() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.text
}

// Err returns the error that ended the exchange, if any.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Done returns a channel that is closed when the handle reaches Done.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) transfer(req *http.Request) {
	resp, err := h.client.Do(req)
	if err != nil {
		h.finish("", transferError(req.Context(), err))
		return
	}
	defer resp.Body.Close()

	h.advance(HeadersReceived, resp.StatusCode)
	h.advance(Loading, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.finish("", transferError(req.Context(), fmt.Errorf("read body: %w", err)))
		return
	}
	h.finish(string(body), nil)
}

func (h *Handle) advance(state ReadyState, status int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = state
	h.status = status
}

func (h *Handle) finish(text string, err error) {
	h.mu.Lock()
	h.state = Done
	h.text = text
	h.err = err
	if err != nil {
		h.status = 0
	}
	method, url, status := h.req.Method, h.req.URL.String(), h.status
	h.cancel()
	h.mu.Unlock()

	if err != nil {
		h.logger.Warn("transfer failed", log.Method(method), log.URL(url), log.Err(err))
	} else {
		h.logger.Debug("transfer done", log.Method(method), log.URL(url), log.Status(status))
	}

	h.doneOnce.Do(func() { close(h.done) })
}

// transferError marks failures caused by Abort so callers can tell them
// apart from network errors.
func transferError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}
	return err
}
