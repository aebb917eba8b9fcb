package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tugasku/internal/app"
	"tugasku/internal/domain"
	"tugasku/internal/usecase"
)

// newSettingsCommand creates the settings command with show/set
// subcommands.
func newSettingsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Short:   "Show or change settings",
		GroupID: groupSetup,
	}
	cmd.AddCommand(newSettingsShowCommand(c), newSettingsSetCommand(c))
	return cmd
}

func newSettingsShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.GetSettingsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			s := out.Settings
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Theme:         %s\n", s.Theme)
			_, _ = fmt.Fprintf(w, "Reminder lead: %d minutes\n", s.DefaultReminderLead)
			_, _ = fmt.Fprintf(w, "Notifications: %v\n", s.NotificationsEnabled)
			return nil
		},
	}
}

func newSettingsSetCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Theme         string
		Lead          int
		Notifications bool
	}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change settings. Only the flags you pass are changed.

Examples:
  tugasku settings set --theme dark
  tugasku settings set --lead 60 --notifications=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}

			current, err := c.GetSettingsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			next := current.Settings
			if cmd.Flags().Changed("theme") {
				next.Theme = domain.Theme(opts.Theme)
			}
			if cmd.Flags().Changed("lead") {
				next.DefaultReminderLead = opts.Lead
			}
			if cmd.Flags().Changed("notifications") {
				next.NotificationsEnabled = opts.Notifications
			}

			out, err := c.UpdateSettingsUseCase().Execute(cmd.Context(), usecase.UpdateSettingsInput{Settings: next})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Settings updated (theme=%s, lead=%d, notifications=%v)\n",
				out.Settings.Theme, out.Settings.DefaultReminderLead, out.Settings.NotificationsEnabled)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Color theme: light or dark")
	cmd.Flags().IntVar(&opts.Lead, "lead", 0, "Default reminder lead in minutes: 5, 15, 30, 60 or 1440")
	cmd.Flags().BoolVar(&opts.Notifications, "notifications", true, "Enable or disable reminders")

	return cmd
}
