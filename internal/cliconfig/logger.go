package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/xreq/pkg/log"
)

// NewLogger returns the console logger used by the CLI. Output goes to w,
// or stderr when w is nil, so that stdout carries only response text.
// An empty or unknown level means info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return log.NewZerologAdapter(w, lvl).Logger()
}
