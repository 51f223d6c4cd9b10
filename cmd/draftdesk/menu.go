package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gorewood/draftdesk/internal/logging"
	"github.com/gorewood/draftdesk/internal/menu"
	"github.com/gorewood/draftdesk/internal/output"
)

// newMenuCmd creates the ThreadWriter menu command.
func newMenuCmd() *cobra.Command {
	var eventsPath string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the ThreadWriter menu",
		Long: `Open the ThreadWriter menu: About, Reset layout, Quit.

About emits tw-about and Reset layout emits tw-reset-layout to front-end
listeners. Quit closes the menu.

Examples:
  draftdesk menu                        # Interactive menu
  draftdesk menu --events events.jsonl  # Also append emitted events to a file
  draftdesk menu trigger reset_layout   # Emit one item's event to stdout
  draftdesk menu list --json            # List the menu items`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, eventsPath)
		},
	}
	cmd.Flags().StringVar(&eventsPath, "events", "", "Append emitted events as JSON lines to this file")
	cmd.AddCommand(newMenuTriggerCmd(), newMenuListCmd())
	return cmd
}

func runMenu(cmd *cobra.Command, eventsPath string) error {
	logger := logging.For("menu")

	var downstream menu.Emitter
	if eventsPath != "" {
		file, err := os.OpenFile(eventsPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("opening events file: %v", err), err)
		}
		defer file.Close() //nolint:errcheck // append-only event log
		downstream = menu.JSONLines(file)
	}

	emitter := menu.EmitterFunc(func(event string) error {
		logger.Info().Str("event", event).Msg("emitted")
		if downstream != nil {
			return downstream.Emit(event)
		}
		return nil
	})

	// Quit ends the program through the model; the recorded code is only informational.
	dispatcher := menu.NewDispatcher(emitter, func(code int) {
		logger.Debug().Int("code", code).Msg("quit")
	}, &logger)

	program := tea.NewProgram(
		menu.NewModel(menu.Default(), dispatcher),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("running menu: %v", err), err)
	}
	return nil
}

func newMenuTriggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "trigger ITEM",
		Short:     "Run one menu item and print its event",
		Long:      "Run one menu item (about, reset_layout, quit) and print the emitted event as a JSON line.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{menu.ItemAbout, menu.ItemResetLayout, menu.ItemQuit},
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newCommandPrinter(cmd)
			logger := logging.For("menu")
			dispatcher := menu.NewDispatcher(menu.JSONLines(cmd.OutOrStdout()), nil, &logger)

			if _, err := dispatcher.Handle(args[0]); err != nil {
				exitErr := output.NewUserErrorWithCause(err.Error(), err)
				printer.Error(exitErr)
				return exitErr
			}
			return nil
		},
	}
}

func newMenuListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the menu items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newCommandPrinter(cmd)
			m := menu.Default()

			if printer.IsJSON() {
				items := make([]map[string]string, 0, len(m.Items))
				for _, item := range m.Items {
					items = append(items, map[string]string{"id": item.ID, "label": item.Label})
				}
				return printer.WriteJSON(map[string]any{"title": m.Title, "items": items})
			}

			printer.Println(m.Title)
			for _, item := range m.Items {
				printer.KeyValue(item.ID, item.Label)
			}
			return nil
		},
	}
}
