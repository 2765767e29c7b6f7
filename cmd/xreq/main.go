package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/xreq/internal/cliconfig"
	"github.com/bft-labs/xreq/pkg/request"
)

const helpDescription = `
Send one HTTP request and print the response text.

The body is JSON: pass it inline with --data or from a file with --data-file.
A 200 reply prints its text; 404, 500 and any other status exit with 1 and
log the status. Flags override XREQ_* environment variables, which override
the config file.
`

var exampleUsage = strings.TrimSpace(`
  xreq http://localhost:9999/status/200
  xreq -X POST -H 'Content-Type: application/json' -d '{"name":"x"}' http://localhost:9999/echo
  xreq -X PUT --data-file body.json --watch http://localhost:9999/echo
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath, envFile string

	log := cliconfig.NewLogger(cfg.LogLevel, nil)

	root := &cobra.Command{
		Use:           "xreq [flags] <url>",
		Short:         "Send a single HTTP request and print the response text",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				cfg.URL = args[0]
				changed["url"] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if envFile != "" {
				if err := cliconfig.LoadEnvFile(envFile); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log = cliconfig.NewLogger(cfg.LogLevel, nil)
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := newRunner(cfg, os.Stdout, log)
			if cfg.Watch {
				return r.watch(ctx)
			}
			return r.once(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.xreq/config.toml)")
	root.Flags().StringVar(&envFile, "env-file", "", "dotenv file with XREQ_* variables")

	root.Flags().StringVarP(&cfg.Method, "method", "X", cfg.Method, "HTTP method")
	root.Flags().StringArrayVarP(&cfg.Headers, "header", "H", cfg.Headers, "request header as 'Key: Value' (repeatable, order kept)")
	root.Flags().StringVarP(&cfg.Data, "data", "d", cfg.Data, "JSON request body")
	root.Flags().StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "file holding the JSON request body")

	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "how long to wait for the response (0 waits forever)")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "HTTP client timeout (0 disables)")
	root.Flags().DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "check for completion at this interval instead of waiting on it")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "send again every time --data-file changes")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		logFailure(log, err)
		os.Exit(1)
	}
}

// logFailure records the error kind and, for fail errors, the status.
func logFailure(log zerolog.Logger, err error) {
	ev := log.Error().Err(err)
	var reqErr *request.Error
	if errors.As(err, &reqErr) {
		ev = ev.Str("kind", reqErr.Kind.String())
		if code, ok := request.StatusCode(err); ok {
			ev = ev.Int("status", code)
		}
	}
	ev.Msg("xreq")
}
