package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gio "github.com/matzehuels/giftcircle/pkg/io"
)

// checkCommand creates the check command for validating an input file
// without drawing.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		input     string
		useGroups bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a participant file and report group statistics",
		Long: `Validate a participant file without drawing.

Reports the number of participants per group and whether a gift circle is
possible: with --use-groups no group may hold more than half of everyone.
Exits non-zero when a draw would be rejected.`,
		Example: `  giftcircle check -i family.csv -g`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("use-groups") {
				useGroups = c.cfg.UseGroups
			}
			return c.runCheck(cmd.Context(), input, useGroups)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "participant file (.csv or .json)")
	cmd.Flags().BoolVarP(&useGroups, "use-groups", "g", false, "check group constraints")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input string, useGroups bool) error {
	logger := loggerFromContext(ctx)

	people, err := gio.ImportFile(input)
	if err != nil {
		return err
	}
	logger.Debug("read participants", "file", input, "count", len(people))

	fmt.Fprintln(c.Stdout, StyleTitle.Render(input))
	printKeyValue(c.Stdout, "participants", strconv.Itoa(len(people)))
	if useGroups {
		groups := circle.CountGroups(people)
		printKeyValue(c.Stdout, "groups", strconv.Itoa(len(groups)))
		if g, err := circle.LargestGroup(people); err == nil {
			printKeyValue(c.Stdout, "largest", fmt.Sprintf("group %s (%d of %d)", g.ID, g.Size, len(people)))
		}
		fmt.Fprintln(c.Stdout)
		printGroupStats(c.Stdout, people)
		fmt.Fprintln(c.Stdout)
	}

	if err := circle.Check(people, useGroups); err != nil {
		return err
	}
	if !useGroups && hasAnyGroup(people) {
		printWarning(c.Stdout, "group numbers present but not enforced (use --use-groups)")
	}
	printSuccess(c.Stdout, "A gift circle is possible")
	return nil
}

func hasAnyGroup(people []circle.Participant) bool {
	for _, p := range people {
		if p.HasGroup() {
			return true
		}
	}
	return false
}
