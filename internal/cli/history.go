package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	"github.com/matzehuels/giftcircle/pkg/history"
)

// historyCommand creates the history command with list and show subcommands.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded draws",
		Long: `Inspect draws recorded with "draw --history" or by the HTTP API.

The history database defaults to $XDG_DATA_HOME/giftcircle/history.db and can
be changed with history_db in the config file or GIFTCIRCLE_HISTORY_DB.`,
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())

	return cmd
}

func (c *CLI) historyListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent draws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryList(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultLimit, "maximum number of draws to list")
	return cmd
}

func (c *CLI) historyShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recorded draw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = c.cfg.Format
			}
			return c.runHistoryShow(cmd.Context(), args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv, json, yaml, chain, dot, svg, png, pdf")
	return cmd
}

func (c *CLI) openHistory(ctx context.Context) (*history.Store, error) {
	if c.cfg.HistoryDB == "" {
		return nil, gcerrors.New(gcerrors.ErrCodeInvalidInput, "no history database configured")
	}
	loggerFromContext(ctx).Debug("opening history", "path", c.cfg.HistoryDB)
	return history.Open(ctx, c.cfg.HistoryDB)
}

// recordDraw stores res in the history database and returns the draw id.
func (c *CLI) recordDraw(ctx context.Context, label string, res *circle.Result) (string, error) {
	st, err := c.openHistory(ctx)
	if err != nil {
		return "", err
	}
	defer st.Close()

	d, err := st.Record(ctx, label, res)
	if err != nil {
		return "", err
	}
	return d.ID, nil
}

func (c *CLI) runHistoryList(ctx context.Context, limit int) error {
	st, err := c.openHistory(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	draws, err := st.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(draws) == 0 {
		printInfo(c.Stdout, "No draws recorded yet")
		return nil
	}

	for _, d := range draws {
		groups := "no groups"
		if d.UseGroups {
			groups = "groups"
		}
		line := StyleValue.Render(d.ID) + "  " +
			StyleDim.Render(d.CreatedAt.Local().Format("2006-01-02 15:04")) + "  " +
			StyleNumber.Render(strconv.Itoa(d.Size)) + StyleDim.Render(" participants · "+groups+" · seed "+strconv.FormatUint(d.Seed, 10))
		if d.Label != "" {
			line += "  " + StyleTitle.Render(d.Label)
		}
		fmt.Fprintln(c.Stdout, line)
	}
	return nil
}

func (c *CLI) runHistoryShow(ctx context.Context, id, format string) error {
	format, err := parseOutputFormat(format)
	if err != nil {
		return err
	}

	st, err := c.openHistory(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := st.Get(ctx, id)
	if err != nil {
		return err
	}

	printKeyValue(c.Stderr, "draw", d.ID)
	printKeyValue(c.Stderr, "created", d.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if d.Label != "" {
		printKeyValue(c.Stderr, "label", d.Label)
	}
	printKeyValue(c.Stderr, "seed", strconv.FormatUint(d.Seed, 10))
	return writeResult(ctx, c.Stdout, format, d.Result())
}
