package request

import (
	"errors"
	"fmt"
)

// Kind classifies why a request did not produce a response text.
type Kind int

const (
	// KindCanceled means the waiter's context ended before the exchange finished.
	KindCanceled Kind = iota + 1
	// KindAborted means the exchange was stopped with Abort.
	KindAborted
	// KindNetwork means the exchange failed before a status was received.
	KindNetwork
	// KindNotFound is a 404 response.
	KindNotFound
	// KindServerError is a 500 response.
	KindServerError
	// KindUnknownStatus is any other non-200 response.
	KindUnknownStatus
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindCanceled:
		return "canceled"
	case KindAborted:
		return "aborted"
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindServerError:
		return "server_error"
	case KindUnknownStatus:
		return "unknown_status"
	default:
		return "unknown"
	}
}

// IsFail reports whether the kind is a fail kind, i.e. one that carries a status.
func (k Kind) IsFail() bool {
	return k == KindNotFound || k == KindServerError || k == KindUnknownStatus
}

// Error is returned by Response when no response text is produced.
// Fail kinds carry the status that caused them.
type Error struct {
	Kind    Kind
	Message string
	URL     string
	Status  int
	Err     error

	sentinel bool
}

func (e *Error) Error() string {
	msg := "xreq: " + e.Message
	if e.Kind.IsFail() {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels: ErrRequest matches every Error, ErrFailed
// matches fail kinds, and each kind sentinel matches its own kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrRequest:
		return true
	case ErrFailed:
		return e.Kind.IsFail()
	}
	t, ok := target.(*Error)
	return ok && t.sentinel && t.Kind == e.Kind
}

// IsFail reports whether e carries a response status.
func (e *Error) IsFail() bool {
	return e.Kind.IsFail()
}

// Sentinels for errors.Is.
var (
	// ErrRequest matches every *Error.
	ErrRequest = errors.New("xreq: request error")

	// ErrFailed matches every *Error that carries a status.
	ErrFailed = errors.New("xreq: request failed")

	ErrCanceled      = newSentinel(KindCanceled, "request canceled")
	ErrAborted       = newSentinel(KindAborted, "request aborted")
	ErrNetwork       = newSentinel(KindNetwork, "network error")
	ErrNotFound      = newSentinel(KindNotFound, "resource not found")
	ErrServerError   = newSentinel(KindServerError, "internal server error")
	ErrUnknownStatus = newSentinel(KindUnknownStatus, "unknown error")

	// ErrAlreadySent is returned by Send when the request was already sent.
	ErrAlreadySent = errors.New("xreq: request already sent")
)

func newSentinel(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, sentinel: true}
}

// StatusCode returns the status carried by a fail error anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var re *Error
	if errors.As(err, &re) && re.IsFail() {
		return re.Status, true
	}
	return 0, false
}

func statusError(url string, status int) *Error {
	switch status {
	case 404:
		return &Error{Kind: KindNotFound, Message: fmt.Sprintf("resource %q not found", url), URL: url, Status: status}
	case 500:
		return &Error{Kind: KindServerError, Message: "internal server error", URL: url, Status: status}
	default:
		return &Error{Kind: KindUnknownStatus, Message: "unknown error", URL: url, Status: status}
	}
}
