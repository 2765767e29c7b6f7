package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/xreq/internal/cliconfig"
	"github.com/bft-labs/xreq/internal/echoserver"
	"github.com/bft-labs/xreq/pkg/log"
)

func main() {
	cfg := echoserver.DefaultConfig()
	var logLevel string

	root := &cobra.Command{
		Use:          "echoserver",
		Short:        "Local HTTP target for trying xreq",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewZerologAdapterWithLogger(cliconfig.NewLogger(logLevel, nil))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return echoserver.New(cfg, logger).ListenAndServe(ctx)
		},
	}

	root.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	root.Flags().DurationVar(&cfg.MaxDelay, "max-delay", cfg.MaxDelay, "upper bound for /delay/{ms}")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
