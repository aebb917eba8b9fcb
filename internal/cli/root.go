// Package cli provides the command-line interface for tugasku.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tugasku/internal/app"
	"tugasku/internal/tui"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing
// it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tugasku.
// It receives the container for dependency injection and version for
// display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tugasku",
		Short: "Personal task and reminder manager",
		Long: `tugasku is a to-do manager with deadline reminders.

Run without arguments to open the interactive interface. The task
commands below cover the same operations for scripting.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Request notification permission once per run. Denial is
			// logged and never blocks: schedule calls are attempted
			// regardless and dropped by the bridge when undeliverable.
			if ok, err := c.Notifier.RequestPermission(cmd.Context()); err != nil || !ok {
				c.Logger.Warn(0, "notify", "notifications unavailable, reminders will not be delivered")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newEditCommand(c),
		newDoneCommand(c),
		newRemoveCommand(c),
		newSettingsCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newRemindCommand(c),
	)

	return root
}

// launchTUI starts the interactive interface.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.NewModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
