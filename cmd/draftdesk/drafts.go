package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/draftdesk/internal/config"
	"github.com/gorewood/draftdesk/internal/drafts"
	"github.com/gorewood/draftdesk/internal/logging"
	"github.com/gorewood/draftdesk/internal/output"
)

// newDraftsCmd creates the drafts command group.
func newDraftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Load, save and locate the drafts file",
		Long: `Work with the drafts file (skeet-drafts.json) in the app data directory.

The file holds a single JSON array. Its elements are not interpreted;
anything that is not an array is rejected.

Examples:
  draftdesk drafts load                     # Print the drafts as a JSON array
  draftdesk drafts save '[{"id":1}]'        # Replace the drafts
  cat drafts.json | draftdesk drafts save   # Replace the drafts from stdin
  draftdesk drafts path --json              # Show where the file lives`,
	}
	cmd.AddCommand(newDraftsLoadCmd(), newDraftsSaveCmd(), newDraftsPathCmd())
	return cmd
}

func newDraftsLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Print the saved drafts",
		Args:  cobra.NoArgs,
		RunE:  runDraftsLoad,
	}
}

func newDraftsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [DATA|-]",
		Short: "Replace the saved drafts with a JSON array",
		Long: `Replace the saved drafts with DATA, a JSON array.

Reads the array from stdin when DATA is omitted or "-". The file is
overwritten in full; invalid input leaves it untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDraftsSave,
	}
}

func newDraftsPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the drafts file path",
		Args:  cobra.NoArgs,
		RunE:  runDraftsPath,
	}
}

// newStore builds the drafts store, honouring --data-dir.
func newStore(cmd *cobra.Command) *drafts.Store {
	logger := logging.For("drafts")
	if dir := lookupFlag(cmd, "data-dir"); dir != "" {
		return drafts.NewStore(drafts.StaticDir(dir), &logger)
	}
	return drafts.NewStore(config.DataDir, &logger)
}

// newCommandPrinter creates a printer with errors routed to the command's stderr.
func newCommandPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// commandError classifies a drafts failure into a CLI exit error.
// Bad input is the caller's fault; everything else is a system failure.
func commandError(err error) *output.ExitError {
	switch drafts.KindOf(err) {
	case drafts.KindParseFailed, drafts.KindInvalidFormat:
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

func runDraftsLoad(cmd *cobra.Command, _ []string) error {
	printer := newCommandPrinter(cmd)

	data, err := newStore(cmd).Load()
	if err != nil {
		exitErr := commandError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"drafts": json.RawMessage(data)})
	}
	printer.Println(data)
	return nil
}

func runDraftsSave(cmd *cobra.Command, args []string) error {
	printer := newCommandPrinter(cmd)

	data, err := readSaveInput(cmd, printer, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	store := newStore(cmd)
	if err := store.Save(data); err != nil {
		exitErr := commandError(err)
		printer.Error(exitErr)
		return exitErr
	}

	path, err := store.Location()
	if err != nil {
		exitErr := commandError(err)
		printer.Error(exitErr)
		return exitErr
	}

	return printer.Success(map[string]any{
		"saved":   true,
		"path":    path,
		"message": "Drafts saved to " + path,
	})
}

// readSaveInput returns the DATA argument, or stdin when it is absent or "-".
func readSaveInput(cmd *cobra.Command, printer *output.Printer, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("reading stdin: %v", err), err)
	}
	if strings.TrimSpace(string(data)) == "" {
		printer.Warn("stdin was empty; pass a JSON array such as []")
	}
	return string(data), nil
}

func runDraftsPath(cmd *cobra.Command, _ []string) error {
	printer := newCommandPrinter(cmd)

	path, err := newStore(cmd).Location()
	if err != nil {
		exitErr := commandError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"path": path})
	}
	printer.Println(path)
	return nil
}
