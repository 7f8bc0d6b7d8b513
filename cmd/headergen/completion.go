package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// completionWriters produce the completion script of each supported shell.
var completionWriters = map[string]func(cmd *cobra.Command, w io.Writer) error{
	"bash":       func(cmd *cobra.Command, w io.Writer) error { return cmd.GenBashCompletionV2(w, true) },
	"zsh":        func(cmd *cobra.Command, w io.Writer) error { return cmd.GenZshCompletion(w) },
	"fish":       func(cmd *cobra.Command, w io.Writer) error { return cmd.GenFishCompletion(w, true) },
	"powershell": func(cmd *cobra.Command, w io.Writer) error { return cmd.GenPowerShellCompletionWithDesc(w) },
}

func completionShells() []string {
	shells := make([]string, 0, len(completionWriters))
	for shell := range completionWriters {
		shells = append(shells, shell)
	}
	sort.Strings(shells)
	return shells
}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for headergen to stdout.

  headergen completion bash > /etc/bash_completion.d/headergen
  headergen completion zsh > "${fpath[1]}/_headergen"
  headergen completion fish > ~/.config/fish/completions/headergen.fish`,
	ValidArgs: completionShells(),
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, ok := completionWriters[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		return write(cmd.Root(), cmd.OutOrStdout())
	},
}
