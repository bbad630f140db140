package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for stacktris.

To load completions:

Bash:
  $ source <(stacktris completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ stacktris completion bash > /etc/bash_completion.d/stacktris
  # macOS:
  $ stacktris completion bash > $(brew --prefix)/etc/bash_completion.d/stacktris

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ stacktris completion zsh > "${fpath[1]}/_stacktris"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ stacktris completion fish | source

  # To load completions for each session, execute once:
  $ stacktris completion fish > ~/.config/fish/completions/stacktris.fish

PowerShell:
  PS> stacktris completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> stacktris completion powershell > stacktris.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
