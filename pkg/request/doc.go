// Package request wraps one HTTP exchange behind a send-then-wait API.
//
// A Request is built with a URL, a method, optional ordered headers and an
// optional body. Send fires it; Response waits for the text of a 200
// response or returns an *Error describing why there is none.
//
// # Usage
//
//	headers := request.NewHeaders().Set("Content-Type", "application/json")
//	req := request.New("https://api.example.com/items", http.MethodPost, headers,
//	    map[string]any{"name": "widget"})
//
//	if err := req.Send(ctx); err != nil {
//	    return err // bad method or URL, or a body that cannot be encoded
//	}
//	text, err := req.Response(ctx)
//
// # Errors
//
// Response errors are *Error values with a Kind. Canceled, aborted and
// network errors are general errors. Not-found, server-error and
// unknown-status errors are fail errors and carry the response status:
//
//	switch {
//	case errors.Is(err, request.ErrNotFound):
//	case errors.Is(err, request.ErrFailed):
//	    code, _ := request.StatusCode(err)
//	case errors.Is(err, request.ErrCanceled):
//	}
//
// Cancelling the context given to Response only stops that wait. The
// transfer continues; use Abort to stop it.
package request
