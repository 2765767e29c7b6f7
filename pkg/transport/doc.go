// Package transport provides the handle that carries one HTTP exchange.
//
// A Handle mirrors the request primitive a browser hands out: it is opened
// for a method and URL, headers are set on it, the body is sent once, and
// from then on the exchange advances through its ready states on its own
// until it is Done. Callers either watch ReadyState or wait on Done.
//
// # Usage
//
//	h := transport.New(http.DefaultClient, logger)
//	if err := h.Open(ctx, http.MethodPost, "https://example.com/items"); err != nil {
//	    return err
//	}
//	_ = h.SetRequestHeader("Content-Type", "application/json")
//	if err := h.Send([]byte(`{"name":"x"}`)); err != nil {
//	    return err
//	}
//	<-h.Done()
//	fmt.Println(h.Status(), h.ResponseText())
//
// The transfer is detached from the context passed to Open: cancelling that
// context does not stop the exchange. Only Abort does.
package transport
