package cli

import (
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tugasku/internal/app"
	"tugasku/internal/infra/notify"
	"tugasku/internal/usecase"
)

// newRemindCommand creates the remind daemon command.
func newRemindCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remind",
		Short:   "Run the reminder daemon",
		GroupID: groupSetup,
		Long: `Run the reminder daemon in the foreground.

The daemon polls the task store on an interval (configurable via
[notify] poll_interval) and delivers a desktop notification for every
reminder whose fire time falls inside the elapsed window. Because the
store is re-read on every scan, tasks added or completed by other
tugasku processes are picked up automatically.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Initialize(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			interval := c.Config.PollInterval()
			scanner := c.ScanRemindersUseCase()

			// The scan window advances monotonically so a reminder is
			// delivered at most once even if a tick runs late.
			var mu sync.Mutex
			last := c.Clock.Now()

			poller := notify.NewPoller(time.Local)
			_, err := poller.ScheduleInterval(interval, func() {
				mu.Lock()
				since := last
				until := c.Clock.Now()
				last = until
				mu.Unlock()

				out, err := scanner.Execute(ctx, usecase.ScanRemindersInput{Since: since, Until: until})
				if err != nil {
					c.Logger.Error(0, "remind", "scan reminders: "+err.Error())
					return
				}
				for _, n := range out.Notifications {
					if err := c.Sender.Send(ctx, n); err != nil {
						c.Logger.Warn(n.ID, "remind", "deliver reminder: "+err.Error())
						continue
					}
					c.Logger.Info(n.ID, "remind", "reminder delivered")
				}
			})
			if err != nil {
				return fmt.Errorf("schedule reminder scan: %w", err)
			}

			poller.Start()
			defer poller.Stop()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reminder daemon running (every %s). Ctrl-C to stop.\n", interval)
			<-ctx.Done()
			return nil
		},
	}
	return cmd
}
