package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/giftcircle/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root command loads .env, resolves the
// configuration (see [Config]) and attaches the logger to the command
// context. --verbose switches the logger to debug level.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Giftcircle draws gift exchange assignments",
		Long: `Giftcircle assigns every participant exactly one person to give a gift to,
forming a single circle through everyone. With --use-groups nobody gives to
someone from their own group (household, team, family).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := loadDotEnv(); err != nil {
				return err
			}

			path, explicit := c.configPath, cmd.Flags().Changed("config")
			if path == "" {
				path = defaultConfigPath()
			}
			cfg, err := loadConfig(path, explicit, c.environ, c.Logger)
			if err != nil {
				return err
			}
			c.cfg = cfg

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/giftcircle/config.toml)")

	root.AddCommand(c.drawCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
