package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gh-pilot",
	Short: "GitHub pull request and issue automation for CI pipelines",
	Long: `gh-pilot performs one named operation against the GitHub API per
invocation: labeling and commenting on pull requests, resolving and closing
the daily deploy issue, dismissing reviews, and opening pull requests.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(NewRunCmd())
}
