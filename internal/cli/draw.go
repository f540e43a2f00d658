package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	gio "github.com/matzehuels/giftcircle/pkg/io"
)

// drawOptions holds the flags of the draw command.
type drawOptions struct {
	input       string
	output      string
	format      string
	useGroups   bool
	seed        uint64
	maxAttempts int
	record      bool
	label       string
}

// drawCommand creates the draw command for generating a gift circle.
func (c *CLI) drawCommand() *cobra.Command {
	var opts drawOptions

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a gift circle from a participant file",
		Long: `Draw a gift circle from a CSV or JSON participant file.

The circle is written to stdout (or --output) in cycle order: every
participant gives to the next one and the last gives to the first.

Input columns: name, email_address, group_number (header required).`,
		Example: `  giftcircle draw -i family.csv -g
  giftcircle draw -i family.csv -g -f chain
  giftcircle draw -i family.csv -g -f svg -o circle.svg
  giftcircle draw -i family.csv --seed 42 --history --label "Christmas 2026"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("use-groups") {
				opts.useGroups = c.cfg.UseGroups
			}
			if !flags.Changed("format") {
				opts.format = c.cfg.Format
			}
			if !flags.Changed("max-attempts") {
				opts.maxAttempts = c.cfg.MaxAttempts
			} else if opts.maxAttempts < 1 {
				return gcerrors.New(gcerrors.ErrCodeInvalidInput, "--max-attempts must be at least 1, got %d", opts.maxAttempts)
			}
			if !flags.Changed("history") {
				opts.record = c.cfg.Record
			}
			return c.runDraw(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "participant file (.csv or .json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "csv", "output format: csv, json, yaml, chain, pairs, dot, svg, png, pdf")
	cmd.Flags().BoolVarP(&opts.useGroups, "use-groups", "g", false, "nobody gives to someone in their own group")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible draw (0 picks one)")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", circle.DefaultMaxAttempts, "attempts before giving up")
	cmd.Flags().BoolVar(&opts.record, "history", false, "record the draw in the history database")
	cmd.Flags().StringVar(&opts.label, "label", "", "label stored with the recorded draw")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return outputFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runDraw(ctx context.Context, opts drawOptions) error {
	logger := loggerFromContext(ctx)

	format, err := parseOutputFormat(opts.format)
	if err != nil {
		return err
	}

	people, err := gio.ImportFile(opts.input)
	if err != nil {
		return err
	}
	logger.Debug("read participants", "file", opts.input, "count", len(people))

	var spin *spinner
	if opts.output != "" {
		spin = newSpinner(ctx, c.Stderr, fmt.Sprintf("Drawing gift circle for %d participants...", len(people)))
		spin.start()
		defer spin.stop()
	}

	prog := newProgress(logger)
	res, err := circle.Generate(ctx, people, circle.Options{
		UseGroups:   opts.useGroups,
		MaxAttempts: opts.maxAttempts,
		Seed:        opts.seed,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew gift circle for %d participants", len(res.Circle)))
	logger.Debug("draw seed", "seed", res.Seed)

	if err := c.writeOutput(ctx, opts.output, format, res); err != nil {
		return err
	}
	if spin != nil {
		spin.stopWithSuccess("Drew gift circle in %d attempts", res.Attempts)
		printFile(c.Stderr, opts.output)
	}

	if opts.record {
		id, err := c.recordDraw(ctx, opts.label, res)
		if err != nil {
			return err
		}
		printInfo(c.Stderr, "Recorded draw %s", StyleValue.Render(id))
	}
	return nil
}
