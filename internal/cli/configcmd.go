package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configCommand creates the config command for inspecting and creating the
// config file.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(c.Stdout).Encode(c.cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				path = defaultConfigPath()
			}
			if err := writeDefaultConfig(path, defaultConfig()); err != nil {
				return err
			}
			printSuccess(c.Stderr, "Wrote config")
			printFile(c.Stderr, path)
			return nil
		},
	})

	return cmd
}
