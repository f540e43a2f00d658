package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for giftcircle.

To load completions:

Bash:
  $ source <(giftcircle completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ giftcircle completion bash > /etc/bash_completion.d/giftcircle
  # macOS:
  $ giftcircle completion bash > $(brew --prefix)/etc/bash_completion.d/giftcircle

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ giftcircle completion zsh > "${fpath[1]}/_giftcircle"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ giftcircle completion fish | source

  # To load completions for each session, execute once:
  $ giftcircle completion fish > ~/.config/fish/completions/giftcircle.fish

PowerShell:
  PS> giftcircle completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> giftcircle completion powershell > giftcircle.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Stdout)
			}
			return nil
		},
	}
}
