// Package notify implements the local notification bridge: a desktop
// sender, an in-process scheduler keyed by task id, and a cron-based
// poller for the reminder daemon.
package notify

import (
	"context"
	"fmt"
	"os/exec"

	"tugasku/internal/domain"
)

// Sender delivers a notification immediately.
type Sender interface {
	// Send delivers the notification. Failures are the caller's to
	// log and swallow; they never affect task state.
	Send(ctx context.Context, n domain.Notification) error

	// Available reports whether notifications can be delivered at all.
	Available() (bool, error)
}

// DesktopSender shells out to a desktop notification program
// (notify-send by default).
type DesktopSender struct {
	runner  domain.CommandRunner
	command string
}

// NewDesktopSender creates a sender using the given program.
func NewDesktopSender(runner domain.CommandRunner, command string) *DesktopSender {
	return &DesktopSender{runner: runner, command: command}
}

// Send delivers the notification via the configured program.
func (s *DesktopSender) Send(ctx context.Context, n domain.Notification) error {
	out, err := s.runner.Run(ctx, s.command, "--app-name=tugasku", n.Title, n.Body)
	if err != nil {
		return fmt.Errorf("send notification: %s: %w", string(out), err)
	}
	return nil
}

// Available probes for the notification program on PATH. This is the
// permission check analog: a missing program means notifications are
// silently dropped, never an error surfaced to mutations.
func (s *DesktopSender) Available() (bool, error) {
	if _, err := exec.LookPath(s.command); err != nil {
		return false, domain.ErrNotifyUnavailable
	}
	return true, nil
}

var _ Sender = (*DesktopSender)(nil)
