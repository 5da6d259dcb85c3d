package cmd

import (
	"bytes"
	"testing"
)

func TestRootCommandConfiguration(t *testing.T) {
	if rootCmd.Use != "gh-pilot" {
		t.Errorf("root command Use = %q, want gh-pilot", rootCmd.Use)
	}

	var runFound bool
	for _, c := range rootCmd.Commands() {
		if c.Name() == "run" {
			runFound = true
			break
		}
	}
	if !runFound {
		t.Error("root command should register the run subcommand")
	}
}

func TestExecuteRejectsUnknownSubcommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"no-such-subcommand"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() with an unknown subcommand should return an error")
	}
}
