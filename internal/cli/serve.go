package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftcircle/internal/server"
	"github.com/matzehuels/giftcircle/pkg/observability"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr            string
		record          bool
		timeout         time.Duration
		maxParticipants int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

  GET  /healthz           liveness and build information
  POST /v1/circles        draw a gift circle
  GET  /v1/circles/{id}   fetch a recorded draw (with --history)`,
		Example: `  giftcircle serve --addr :9000 --history`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Addr
			}
			if !cmd.Flags().Changed("history") {
				record = c.cfg.Record
			}
			return c.runServe(cmd.Context(), server.Options{
				Timeout:         timeout,
				MaxParticipants: maxParticipants,
			}, addr, record)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&record, "history", false, "enable recording draws and GET /v1/circles/{id}")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	cmd.Flags().IntVar(&maxParticipants, "max-participants", server.DefaultMaxParticipants, "largest draw accepted per request")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts server.Options, addr string, record bool) error {
	logger := loggerFromContext(ctx)
	observability.SetDrawHooks(observability.LogDrawHooks{Logger: logger})
	observability.SetStoreHooks(observability.LogStoreHooks{Logger: logger})
	observability.SetHTTPHooks(observability.LogHTTPHooks{Logger: logger})

	opts.Logger = logger
	opts.MaxAttempts = c.cfg.MaxAttempts

	if record {
		st, err := c.openHistory(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		opts.History = st
	}

	return server.New(opts).ListenAndServe(ctx, addr)
}
