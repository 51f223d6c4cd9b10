// Package main provides the entry point for the draftdesk CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/draftdesk/internal/config"
	"github.com/gorewood/draftdesk/internal/envfile"
	"github.com/gorewood/draftdesk/internal/logging"
	"github.com/gorewood/draftdesk/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return lookupFlag(cmd, "json") == "true"
}

// useColor resolves --color against TTY detection on the command's output.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(lookupFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// lookupFlag returns a flag's value, walking up to the root's persistent flags.
func lookupFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the draftdesk CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draftdesk",
		Short: "Desktop backend for drafts and the ThreadWriter menu",
		Long: `Draftdesk - the backend behind the drafts desktop app and ThreadWriter.

Draftdesk keeps a list of drafts as a JSON array in your application data
directory and exposes it to a front-end:
  - drafts load/save/path for scripts and shells
  - serve, an MCP server over stdio with load_drafts, save_drafts and get_drafts_path
  - menu, the ThreadWriter menu (About, Reset layout, Quit)

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'draftdesk --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles()
		setupLogging(cmd)
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: never, always, auto")
	cmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	cmd.PersistentFlags().String("data-dir", "", "Directory holding the drafts file (default: platform app data directory)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	_ = envfile.LoadAll(paths...)
}

// setupLogging installs the global logger on the command's error stream.
// The level comes from -v, overridden by DRAFTDESK_LOG_LEVEL or log_level in config.yaml.
func setupLogging(cmd *cobra.Command) {
	verbosity, _ := cmd.Flags().GetCount("verbose")

	levelName := os.Getenv(config.EnvLogLevel)
	if levelName == "" {
		if cfg, err := config.Load(); err == nil {
			levelName = cfg.LogLevel
		}
	}

	errOut := cmd.ErrOrStderr()
	color := output.ResolveColorMode(lookupFlag(cmd, "color"), output.IsTTY(errOut))
	logging.Setup(errOut, logging.LevelFor(verbosity, levelName), color)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "drafts", Title: "Drafts Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "app", Title: "App Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newDraftsCmd(), "drafts")
	addGroupedCommand(cmd, newServeCmd(), "app")
	addGroupedCommand(cmd, newMenuCmd(), "app")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
