package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deployline/gh-pilot/internal/common"
	"github.com/deployline/gh-pilot/internal/config"
	"github.com/deployline/gh-pilot/internal/githubapi"
	"github.com/deployline/gh-pilot/internal/ops"
)

// runFlags holds the raw command-line input before precedence resolution.
type runFlags struct {
	org      string
	repo     string
	token    string
	username string
	password string
	pr       string
	extras   string
	debug    bool
}

// NewRunCmd builds the run subcommand: the dispatcher surface of the tool.
func NewRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <command>",
		Short: "Run one operation against the GitHub API",
		Long: `Run one named operation against the GitHub API and print its result.

Authentication uses --token (or GITHUB_TOKEN) or a --username/--password
pair; exactly one mode must be supplied. Command-specific fields are passed
as a JSON object via --extras.

Available commands:
` + ops.Usage(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.org, "org", "", "GitHub organization (or GH_PILOT_ORG)")
	cmd.Flags().StringVar(&flags.repo, "repo", "", "GitHub repository (or GH_PILOT_REPO)")
	cmd.Flags().StringVar(&flags.token, "token", "", "API token (or GITHUB_TOKEN)")
	cmd.Flags().StringVar(&flags.username, "username", "", "username for basic auth")
	cmd.Flags().StringVar(&flags.password, "password", "", "password for basic auth")
	cmd.Flags().StringVar(&flags.pr, "pr", "", "pull request number the command applies to")
	cmd.Flags().StringVar(&flags.extras, "extras", "", "command-specific fields as a JSON object")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "log every raw API request and response")

	return cmd
}

func runOperation(cmd *cobra.Command, name string, flags *runFlags) error {
	fileCfg, err := config.LoadFileConfig()
	if err != nil {
		return err
	}
	settings := config.Resolve(config.Settings{
		Org:   flags.org,
		Repo:  flags.repo,
		Debug: flags.debug,
		Credentials: config.Credentials{
			Token:    flags.token,
			Username: flags.username,
			Password: flags.password,
		},
	}, fileCfg)

	extras, err := config.ParseExtras(flags.extras)
	if err != nil {
		return err
	}

	logger := common.NewLogger(flags.debug)
	client, err := githubapi.New(settings, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), config.APITimeout)
	defer cancel()

	env := &ops.Env{Client: client, Logger: logger, PR: flags.pr}
	result, err := ops.Run(ctx, env, name, extras)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result)
}

// printResult writes the operation's return value to stdout: strings raw,
// everything else as indented JSON. Empty results print nothing.
func printResult(w io.Writer, result interface{}) error {
	switch v := result.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case []string:
		for _, line := range v {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		encoded, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	}
}
