package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bft-labs/xreq"
	"github.com/bft-labs/xreq/internal/cliconfig"
	"github.com/bft-labs/xreq/internal/watch"
	"github.com/bft-labs/xreq/pkg/log"
	"github.com/bft-labs/xreq/pkg/request"
)

// runner turns a validated config into requests.
type runner struct {
	cfg    cliconfig.Config
	out    io.Writer
	log    zerolog.Logger
	client *http.Client
}

func newRunner(cfg cliconfig.Config, out io.Writer, logger zerolog.Logger) *runner {
	return &runner{
		cfg:    cfg,
		out:    out,
		log:    logger,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// once sends a single request and prints its text.
func (r *runner) once(ctx context.Context) error {
	headers, err := request.ParseHeaderLines(r.cfg.Headers)
	if err != nil {
		return err
	}
	body, err := cliconfig.LoadBody(r.cfg)
	if err != nil {
		return err
	}

	opts := []xreq.Option{
		xreq.WithHTTPClient(r.client),
		xreq.WithLogger(log.NewZerologAdapterWithLogger(r.log)),
	}
	if r.cfg.PollInterval > 0 {
		opts = append(opts, xreq.WithPollInterval(r.cfg.PollInterval))
	}

	req := xreq.New(r.cfg.URL, r.cfg.Method, headers, body, opts...)
	if err := req.Send(ctx); err != nil {
		return err
	}

	waitCtx := ctx
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	text, err := req.Response(waitCtx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, text)
	return err
}

// watch sends once the data file is being watched, then again after every
// change to it until ctx is done. Sends never overlap. Failures of
// individual sends are logged and do not stop it.
func (r *runner) watch(ctx context.Context) error {
	send := func(ctx context.Context) {
		if err := r.once(ctx); err != nil {
			logFailure(r.log, err)
		}
	}

	w := watch.New(r.cfg.DataFile, watch.DefaultDebounce, send,
		log.NewZerologAdapterWithLogger(r.log), watch.WithInitialRun())
	return w.Run(ctx)
}
