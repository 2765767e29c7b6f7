package transport

import "errors"

var (
	// ErrInvalidState is returned when a handle operation is called in the wrong ready state.
	ErrInvalidState = errors.New("transport: invalid state")

	// ErrAlreadySent is returned when Send is called a second time on the same handle.
	ErrAlreadySent = errors.New("transport: already sent")

	// ErrAborted is the handle error after Abort stopped the exchange.
	ErrAborted = errors.New("transport: aborted")
)
